package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/contatonovatek-coder/Novatek-Aulas/backend/config"
)

// MercadoPago talks to the real checkout API over HTTP. Requests carry the
// configured client timeout; a timeout surfaces to the caller as a generic
// transient failure and no local state transition happens.
type MercadoPago struct {
	baseURL     string
	accessToken string
	siteURL     string
	client      *http.Client
}

func NewMercadoPago(cfg *config.Config) *MercadoPago {
	return &MercadoPago{
		baseURL:     cfg.MPBaseURL,
		accessToken: cfg.MPAccessToken,
		siteURL:     cfg.SiteURL,
		client:      &http.Client{Timeout: cfg.MPTimeout},
	}
}

type preferenceItem struct {
	Title      string  `json:"title"`
	UnitPrice  float64 `json:"unit_price"`
	Quantity   int     `json:"quantity"`
	CurrencyID string  `json:"currency_id"`
}

type preferencePayer struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type preferenceBackURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

type preferenceBody struct {
	Items               []preferenceItem   `json:"items"`
	Payer               preferencePayer    `json:"payer"`
	BackURLs            preferenceBackURLs `json:"back_urls"`
	AutoReturn          string             `json:"auto_return"`
	NotificationURL     string             `json:"notification_url"`
	ExternalReference   string             `json:"external_reference"`
	StatementDescriptor string             `json:"statement_descriptor"`
}

// CreatePreference creates a checkout order for a single BRL item.
func (m *MercadoPago) CreatePreference(ctx context.Context, req PreferenceRequest) (*Preference, error) {
	body := preferenceBody{
		Items: []preferenceItem{{
			Title:      req.Description,
			UnitPrice:  req.Amount,
			Quantity:   1,
			CurrencyID: "BRL",
		}},
		Payer: preferencePayer{Email: req.Email, Name: req.Name},
		BackURLs: preferenceBackURLs{
			Success: m.siteURL + "/payment-success",
			Failure: m.siteURL + "/payment-failure",
			Pending: m.siteURL + "/payment-pending",
		},
		AutoReturn:          "approved",
		NotificationURL:     m.siteURL + "/api/payments/callback",
		ExternalReference:   req.ExternalReference,
		StatementDescriptor: "NOVATEK DEV",
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/checkout/preferences", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+m.accessToken)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Idempotency-Key", uuid.NewString())

	resp, err := m.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("mercado pago: create preference returned %d: %s", resp.StatusCode, msg)
	}

	var pref Preference
	if err := json.NewDecoder(resp.Body).Decode(&pref); err != nil {
		return nil, err
	}
	return &pref, nil
}

// PaymentStatus fetches the authoritative status of a payment. The callback
// handler relies on this instead of trusting redirect query parameters.
func (m *MercadoPago) PaymentStatus(ctx context.Context, paymentID string) (*PaymentInfo, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, m.baseURL+"/v1/payments/"+paymentID, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+m.accessToken)

	resp, err := m.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("mercado pago: payment status returned %d: %s", resp.StatusCode, msg)
	}

	var info PaymentInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	return &info, nil
}
