package store

import (
	"sort"
	"time"

	"github.com/contatonovatek-coder/Novatek-Aulas/backend/models"
)

// AddNotification appends a notification for the user. Notifications are
// append-only; only the read flag is ever mutated afterwards.
func (s *Store) AddNotification(userID int, title, message, notificationType string) (*models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := models.Notification{
		ID:      nextID(s.doc.Notifications, func(n models.Notification) int { return n.ID }),
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    notificationType,
		Date:    time.Now(),
	}

	s.doc.Notifications = append(s.doc.Notifications, n)

	if err := s.save(); err != nil {
		return nil, err
	}
	return &n, nil
}

// NotificationsByUser returns the user's notifications, newest first.
func (s *Store) NotificationsByUser(userID int) []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	var notifications []models.Notification
	for _, n := range s.doc.Notifications {
		if n.UserID == userID {
			notifications = append(notifications, n)
		}
	}
	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].Date.After(notifications[j].Date)
	})
	return notifications
}

// UnreadNotificationCount counts the user's unread notifications.
func (s *Store) UnreadNotificationCount(userID int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, n := range s.doc.Notifications {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count
}

// MarkAllNotificationsRead flips the read flag on every notification of the
// user.
func (s *Store) MarkAllNotificationsRead(userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Notifications {
		if s.doc.Notifications[i].UserID == userID {
			s.doc.Notifications[i].Read = true
		}
	}
	return s.save()
}
