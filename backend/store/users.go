package store

import (
	"net/url"
	"time"

	"github.com/contatonovatek-coder/Novatek-Aulas/backend/models"
)

// nextID assigns max(existing)+1, or 1 for an empty collection.
func nextID[T any](items []T, id func(T) int) int {
	max := 0
	for _, item := range items {
		if id(item) > max {
			max = id(item)
		}
	}
	return max + 1
}

// CreateUser appends a new student account in pending_payment status.
// Email uniqueness is the caller's responsibility (checked at registration).
func (s *Store) CreateUser(name, email, passwordHash, plan string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	user := models.User{
		ID:           nextID(s.doc.Users, func(u models.User) int { return u.ID }),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         models.RoleStudent,
		Plan:         plan,
		Status:       models.StatusPendingPayment,
		Avatar:       "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=4F46E5&color=fff",
		JoinDate:     now,
		LastLogin:    now,
		Preferences: models.Preferences{
			Theme:         "light",
			Notifications: true,
			Emails:        true,
		},
	}

	s.doc.Users = append(s.doc.Users, user)
	s.doc.AdminStats.TotalUsers = len(s.doc.Users)

	if err := s.save(); err != nil {
		return nil, err
	}
	return &user, nil
}

// UserByEmail returns a copy of the user with the given email, or nil.
// The match is case-sensitive, as stored.
func (s *Store) UserByEmail(email string) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Users {
		if s.doc.Users[i].Email == email {
			u := s.doc.Users[i]
			return &u
		}
	}
	return nil
}

// UserByID returns a copy of the user with the given id, or nil.
func (s *Store) UserByID(id int) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Users {
		if s.doc.Users[i].ID == id {
			u := s.doc.Users[i]
			return &u
		}
	}
	return nil
}

// UpdateUser shallow-merges the supplied fields over the stored record and
// persists. Returns nil when no user has the given id. Preferences replaces
// the whole nested object: callers must send it complete.
func (s *Store) UpdateUser(id int, updates models.UserUpdate) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Users {
		if s.doc.Users[i].ID != id {
			continue
		}

		u := &s.doc.Users[i]
		if updates.Name != nil {
			u.Name = *updates.Name
		}
		if updates.Email != nil {
			u.Email = *updates.Email
		}
		if updates.PasswordHash != nil {
			u.PasswordHash = *updates.PasswordHash
		}
		if updates.Plan != nil {
			u.Plan = *updates.Plan
		}
		if updates.Status != nil {
			u.Status = *updates.Status
		}
		if updates.Avatar != nil {
			u.Avatar = *updates.Avatar
		}
		if updates.LastLogin != nil {
			u.LastLogin = *updates.LastLogin
		}
		if updates.Preferences != nil {
			u.Preferences = *updates.Preferences
		}

		if err := s.save(); err != nil {
			return nil, err
		}
		updated := *u
		return &updated, nil
	}
	return nil, nil
}

// DeleteUser removes the user and cascades over every collection that
// references the user id: notifications, subscriptions, payments, progress.
func (s *Store) DeleteUser(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	users := s.doc.Users[:0]
	for _, u := range s.doc.Users {
		if u.ID == id {
			found = true
			continue
		}
		users = append(users, u)
	}
	if !found {
		return false, nil
	}
	s.doc.Users = users

	notifications := s.doc.Notifications[:0]
	for _, n := range s.doc.Notifications {
		if n.UserID != id {
			notifications = append(notifications, n)
		}
	}
	s.doc.Notifications = notifications

	subscriptions := s.doc.Subscriptions[:0]
	for _, sub := range s.doc.Subscriptions {
		if sub.UserID != id {
			subscriptions = append(subscriptions, sub)
		}
	}
	s.doc.Subscriptions = subscriptions

	payments := s.doc.Payments[:0]
	for _, p := range s.doc.Payments {
		if p.UserID != id {
			payments = append(payments, p)
		}
	}
	s.doc.Payments = payments

	progress := s.doc.UserProgress[:0]
	for _, up := range s.doc.UserProgress {
		if up.UserID != id {
			progress = append(progress, up)
		}
	}
	s.doc.UserProgress = progress

	s.doc.AdminStats.TotalUsers = len(s.doc.Users)
	s.doc.AdminStats.ActiveSubscriptions = s.countActiveSubscriptions()

	if err := s.save(); err != nil {
		return false, err
	}
	return true, nil
}

// Users returns a copy of the user collection.
func (s *Store) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]models.User, len(s.doc.Users))
	copy(users, s.doc.Users)
	return users
}
