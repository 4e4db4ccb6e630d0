// Package payments integrates the Mercado Pago checkout service and applies
// the resulting state transitions to users, payments and subscriptions.
package payments

import (
	"context"
	"fmt"
)

// Gateway is the external checkout collaborator. The processor depends only
// on this interface; tests swap in a fake.
type Gateway interface {
	CreatePreference(ctx context.Context, req PreferenceRequest) (*Preference, error)
	PaymentStatus(ctx context.Context, paymentID string) (*PaymentInfo, error)
}

// PreferenceRequest describes the checkout order to create.
type PreferenceRequest struct {
	Amount            float64
	Description       string
	Email             string
	Name              string
	ExternalReference string
}

// Preference is the created checkout order. InitPoint is the URL the payer
// is redirected to.
type Preference struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

// PaymentInfo is the gateway's view of a payment.
type PaymentInfo struct {
	ID                int64  `json:"id"`
	Status            string `json:"status"` // approved, pending, rejected, ...
	ExternalReference string `json:"external_reference"`
}

// StatusApproved is the only gateway status that activates a subscription.
const StatusApproved = "approved"

// FormatReference encodes (userID, paymentID) into the external reference
// sent with the order, so the callback can be traced back to our records.
func FormatReference(userID, paymentID int) string {
	return fmt.Sprintf("user_%d_payment_%d", userID, paymentID)
}

// ParseReference decodes an external reference produced by FormatReference.
func ParseReference(ref string) (userID, paymentID int, err error) {
	n, err := fmt.Sscanf(ref, "user_%d_payment_%d", &userID, &paymentID)
	if err != nil || n != 2 {
		return 0, 0, fmt.Errorf("invalid external reference %q", ref)
	}
	return userID, paymentID, nil
}
