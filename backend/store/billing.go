package store

import (
	"time"

	"github.com/contatonovatek-coder/Novatek-Aulas/backend/models"
)

// CreatePayment appends a row to the payment log.
func (s *Store) CreatePayment(payment models.Payment) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	payment.ID = nextID(s.doc.Payments, func(p models.Payment) int { return p.ID })
	payment.CreatedAt = now
	payment.UpdatedAt = now

	s.doc.Payments = append(s.doc.Payments, payment)

	if err := s.save(); err != nil {
		return nil, err
	}
	return &payment, nil
}

// PaymentByID returns a copy of the payment with the given id, or nil.
func (s *Store) PaymentByID(id int) *models.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Payments {
		if s.doc.Payments[i].ID == id {
			p := s.doc.Payments[i]
			return &p
		}
	}
	return nil
}

// PaymentsByUser returns the user's payment history.
func (s *Store) PaymentsByUser(userID int) []models.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()

	var payments []models.Payment
	for _, p := range s.doc.Payments {
		if p.UserID == userID {
			payments = append(payments, p)
		}
	}
	return payments
}

// SetPaymentStatus records the terminal status of a payment for audit.
// The log itself is append-only; only the status field is mutated in place.
func (s *Store) SetPaymentStatus(id int, status string) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Payments {
		if s.doc.Payments[i].ID != id {
			continue
		}
		s.doc.Payments[i].Status = status
		s.doc.Payments[i].UpdatedAt = time.Now()

		if err := s.save(); err != nil {
			return nil, err
		}
		p := s.doc.Payments[i]
		return &p, nil
	}
	return nil, nil
}

// CreateSubscription appends an active subscription and refreshes the
// cached active-subscription counter.
func (s *Store) CreateSubscription(sub models.Subscription) (*models.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	sub.ID = nextID(s.doc.Subscriptions, func(x models.Subscription) int { return x.ID })
	sub.Status = models.SubscriptionActive
	sub.CreatedAt = now
	sub.UpdatedAt = now

	s.doc.Subscriptions = append(s.doc.Subscriptions, sub)
	s.doc.AdminStats.ActiveSubscriptions = s.countActiveSubscriptions()

	if err := s.save(); err != nil {
		return nil, err
	}
	return &sub, nil
}

// ActiveSubscriptionByUser returns the user's active subscription, or nil.
// At most one active row per user is expected but not enforced; the first
// match wins.
func (s *Store) ActiveSubscriptionByUser(userID int) *models.Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Subscriptions {
		if s.doc.Subscriptions[i].UserID == userID && s.doc.Subscriptions[i].Status == models.SubscriptionActive {
			sub := s.doc.Subscriptions[i]
			return &sub
		}
	}
	return nil
}

// UpdateSubscriptionStatus changes the status of the user's active
// subscription, if any.
func (s *Store) UpdateSubscriptionStatus(userID int, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Subscriptions {
		if s.doc.Subscriptions[i].UserID == userID && s.doc.Subscriptions[i].Status == models.SubscriptionActive {
			s.doc.Subscriptions[i].Status = status
			s.doc.Subscriptions[i].UpdatedAt = time.Now()
			s.doc.AdminStats.ActiveSubscriptions = s.countActiveSubscriptions()
			return s.save()
		}
	}
	return nil
}

func (s *Store) countActiveSubscriptions() int {
	count := 0
	for _, sub := range s.doc.Subscriptions {
		if sub.Status == models.SubscriptionActive {
			count++
		}
	}
	return count
}

// CreateCertificate appends a course-completion certificate.
func (s *Store) CreateCertificate(cert models.Certificate) (*models.Certificate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cert.ID = nextID(s.doc.Certificates, func(c models.Certificate) int { return c.ID })
	cert.IssuedAt = time.Now()

	s.doc.Certificates = append(s.doc.Certificates, cert)

	if err := s.save(); err != nil {
		return nil, err
	}
	return &cert, nil
}

// CertificatesByUser returns the user's certificates.
func (s *Store) CertificatesByUser(userID int) []models.Certificate {
	s.mu.Lock()
	defer s.mu.Unlock()

	var certs []models.Certificate
	for _, c := range s.doc.Certificates {
		if c.UserID == userID {
			certs = append(certs, c)
		}
	}
	return certs
}
