package models

import "time"

// MaxRecentActivities bounds the admin activity feed.
const MaxRecentActivities = 10

// Activity is one entry of the admin activity feed.
type Activity struct {
	ID      int64     `json:"id"`
	Type    string    `json:"type"` // user_login, user_logout, subscription_activated, ...
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

// AdminStats is the cached counter block shown on the admin overview. The
// counters are maintained ad hoc by the mutations that affect them and are
// not guaranteed consistent with the underlying collections.
type AdminStats struct {
	TotalUsers          int        `json:"totalUsers"`
	ActiveSubscriptions int        `json:"activeSubscriptions"`
	TotalCourses        int        `json:"totalCourses"`
	MonthlyRevenue      float64    `json:"monthlyRevenue"`
	RecentActivities    []Activity `json:"recentActivities"`
}

// Document is the single serialized object holding every collection. It is
// loaded whole at startup and rewritten whole after every mutation.
type Document struct {
	Users         []User         `json:"users"`
	Courses       []Course       `json:"courses"`
	Lessons       []Lesson       `json:"lessons"`
	Payments      []Payment      `json:"payments"`
	Subscriptions []Subscription `json:"subscriptions"`
	Certificates  []Certificate  `json:"certificates"`
	Notifications []Notification `json:"notifications"`
	UserProgress  []UserProgress `json:"userProgress"`
	Categories    []Category     `json:"categories"`
	Instructors   []Instructor   `json:"instructors"`
	AdminStats    AdminStats     `json:"adminStats"`
}
