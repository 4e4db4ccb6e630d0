package models

import "time"

// User roles.
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// User account statuses. A user starts in pending_payment and becomes
// active once a subscription payment is approved.
const (
	StatusActive         = "active"
	StatusPendingPayment = "pending_payment"
	StatusInactive       = "inactive"
	StatusPaymentFailed  = "payment_failed"
)

type Preferences struct {
	Theme         string `json:"theme"`
	Notifications bool   `json:"notifications"`
	Emails        bool   `json:"emails"`
}

type User struct {
	ID           int         `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"password"`
	Role         string      `json:"role"` // student, admin
	Plan         string      `json:"plan"` // junior, pleno, senior
	Status       string      `json:"status"`
	Avatar       string      `json:"avatar"`
	JoinDate     time.Time   `json:"joinDate"`
	LastLogin    time.Time   `json:"lastLogin"`
	Preferences  Preferences `json:"preferences"`
}

// UserUpdate carries the fields of a shallow user update. Nil fields are
// left untouched; Preferences replaces the whole nested object, so callers
// must always supply it complete.
type UserUpdate struct {
	Name         *string      `json:"name"`
	Email        *string      `json:"email"`
	PasswordHash *string      `json:"-"`
	Plan         *string      `json:"plan"`
	Status       *string      `json:"status"`
	Avatar       *string      `json:"avatar"`
	LastLogin    *time.Time   `json:"-"`
	Preferences  *Preferences `json:"preferences"`
}

type Notification struct {
	ID      int       `json:"id"`
	UserID  int       `json:"userId"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	Type    string    `json:"type"` // info, success, warning, danger
	Date    time.Time `json:"date"`
	Read    bool      `json:"read"`
}
