package payments

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/contatonovatek-coder/Novatek-Aulas/backend/config"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/models"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/store"
)

// subscriptionPeriod is the billing cycle of every plan.
const subscriptionPeriod = 30 * 24 * time.Hour

var (
	ErrUnknownUser = errors.New("usuário inválido")
	ErrUnknownPlan = errors.New("plano inválido")
)

// Processor drives the checkout flow: it owns the payment log transitions
// and the user/subscription updates resulting from gateway outcomes.
type Processor struct {
	store   *store.Store
	gateway Gateway
	logger  *log.Logger
}

func NewProcessor(st *store.Store, gateway Gateway, logger *log.Logger) *Processor {
	return &Processor{store: st, gateway: gateway, logger: logger}
}

// CheckoutResult carries the pending payment row and the checkout order the
// payer must be redirected to.
type CheckoutResult struct {
	Payment    *models.Payment `json:"payment"`
	Preference *Preference     `json:"preference"`
}

// StartCheckout records a pending payment and creates the checkout order.
// A gateway failure marks the payment row failed and leaves the user's
// status untouched, so the attempt can simply be retried.
func (p *Processor) StartCheckout(ctx context.Context, userID int, planID, paymentMethod string) (*CheckoutResult, error) {
	user := p.store.UserByID(userID)
	if user == nil {
		return nil, ErrUnknownUser
	}
	plan := config.PlanByID(planID)
	if plan == nil {
		return nil, ErrUnknownPlan
	}
	if paymentMethod == "" {
		paymentMethod = "credit_card"
	}

	payment, err := p.store.CreatePayment(models.Payment{
		UserID:        user.ID,
		Amount:        plan.Price,
		Plan:          plan.ID,
		Status:        models.PaymentPending,
		PaymentMethod: paymentMethod,
		Description:   "Assinatura " + plan.Name + " - NOVATEK DEV",
	})
	if err != nil {
		return nil, err
	}

	pref, err := p.gateway.CreatePreference(ctx, PreferenceRequest{
		Amount:            plan.Price,
		Description:       payment.Description,
		Email:             user.Email,
		Name:              user.Name,
		ExternalReference: FormatReference(user.ID, payment.ID),
	})
	if err != nil {
		p.logger.Printf("checkout: create preference failed for user %d: %v", user.ID, err)
		if _, markErr := p.store.SetPaymentStatus(payment.ID, models.PaymentFailed); markErr != nil {
			return nil, markErr
		}
		return nil, err
	}

	return &CheckoutResult{Payment: payment, Preference: pref}, nil
}

// CallbackResult is the outcome of a processed gateway callback.
type CallbackResult struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
	UserID  int    `json:"-"`
}

// HandleCallback resolves a checkout redirect or notification. The gateway
// is polled for the authoritative status; the redirect's own status query
// parameter is not trusted. On approval the subscription is activated and
// the user unlocked; any other definitive status records the failure.
func (p *Processor) HandleCallback(ctx context.Context, gatewayPaymentID, externalReference string) (*CallbackResult, error) {
	userID, paymentID, err := ParseReference(externalReference)
	if err != nil {
		return nil, err
	}

	info, err := p.gateway.PaymentStatus(ctx, gatewayPaymentID)
	if err != nil {
		// Transient gateway failure: no state transition, caller retries.
		return nil, err
	}

	payment := p.store.PaymentByID(paymentID)
	user := p.store.UserByID(userID)
	if payment == nil || user == nil {
		return nil, ErrUnknownUser
	}

	if info.Status != StatusApproved {
		if _, err := p.store.SetPaymentStatus(payment.ID, info.Status); err != nil {
			return nil, err
		}
		failed := models.StatusPaymentFailed
		if _, err := p.store.UpdateUser(user.ID, models.UserUpdate{Status: &failed}); err != nil {
			return nil, err
		}
		if _, err := p.store.AddNotification(user.ID, "Pagamento não aprovado",
			"Houve um problema com seu pagamento. Por favor, tente novamente.", "danger"); err != nil {
			return nil, err
		}
		return &CallbackResult{Status: info.Status, UserID: user.ID}, nil
	}

	if _, err := p.store.SetPaymentStatus(payment.ID, models.PaymentApproved); err != nil {
		return nil, err
	}

	now := time.Now()
	if _, err := p.store.CreateSubscription(models.Subscription{
		UserID:    user.ID,
		Plan:      payment.Plan,
		PaymentID: payment.ID,
		StartDate: now,
		EndDate:   now.Add(subscriptionPeriod),
	}); err != nil {
		return nil, err
	}

	active := models.StatusActive
	plan := payment.Plan
	if _, err := p.store.UpdateUser(user.ID, models.UserUpdate{Status: &active, Plan: &plan}); err != nil {
		return nil, err
	}
	if err := p.store.AddRevenue(payment.Amount); err != nil {
		return nil, err
	}

	if _, err := p.store.AddNotification(user.ID, "Assinatura ativada!",
		"Sua assinatura foi ativada com sucesso. Bem-vindo à NOVATEK DEV!", "success"); err != nil {
		return nil, err
	}
	if err := p.store.AddActivity("subscription_activated", "Nova assinatura ativada: "+user.Name); err != nil {
		return nil, err
	}

	return &CallbackResult{Success: true, Status: StatusApproved, UserID: user.ID}, nil
}
