package models

import "time"

// Course difficulty levels.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

type Course struct {
	ID              int      `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	FullDescription string   `json:"fullDescription"`
	CategoryID      int      `json:"categoryId"`
	Level           string   `json:"level"` // beginner, intermediate, advanced
	Duration        int      `json:"duration"`
	LessonCount     int      `json:"lessons"`
	Students        int      `json:"students"`
	Rating          float64  `json:"rating"`
	InstructorID    int      `json:"instructorId"`
	Image           string   `json:"image"`
	PreviewVideo    string   `json:"previewVideo"`
	Price           float64  `json:"price"`
	Requirements    []string `json:"requirements"`
	WhatYouWillLearn []string `json:"whatYouWillLearn"`
	Tags            []string `json:"tags"`
	Featured        bool     `json:"featured"`
	CreatedAt       string   `json:"createdAt"`
}

type Lesson struct {
	ID          int      `json:"id"`
	CourseID    int      `json:"courseId"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    int      `json:"duration"`
	VideoURL    string   `json:"videoUrl"`
	Order       int      `json:"order"` // display sequence within the course
	Resources   []string `json:"resources"`
}

type LessonUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Duration    *int    `json:"duration"`
	VideoURL    *string `json:"videoUrl"`
	Order       *int    `json:"order"`
}

type Category struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

type Instructor struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

// UserProgress is the per-(user, course) completion record. Progress is the
// integer percentage of completed lessons over the course's lesson total.
type UserProgress struct {
	UserID           int       `json:"userId"`
	CourseID         int       `json:"courseId"`
	CompletedLessons []int     `json:"completedLessons"`
	Progress         int       `json:"progress"`
	LastAccessed     time.Time `json:"lastAccessed"`
}

type Certificate struct {
	ID       int       `json:"id"`
	UserID   int       `json:"userId"`
	CourseID int       `json:"courseId"`
	Title    string    `json:"title"`
	IssuedAt time.Time `json:"issuedAt"`
}
