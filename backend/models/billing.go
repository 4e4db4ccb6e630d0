package models

import "time"

// Payment statuses as recorded in the append-only payment log.
const (
	PaymentPending  = "pending"
	PaymentApproved = "approved"
	PaymentRejected = "rejected"
	PaymentFailed   = "failed"
)

// Subscription statuses.
const (
	SubscriptionActive    = "active"
	SubscriptionCancelled = "cancelled"
)

type Payment struct {
	ID            int       `json:"id"`
	UserID        int       `json:"userId"`
	Amount        float64   `json:"amount"`
	Plan          string    `json:"plan"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"paymentMethod"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type Subscription struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Plan      string    `json:"plan"`
	PaymentID int       `json:"paymentId"`
	Status    string    `json:"status"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
