package store

import (
	"time"

	"github.com/contatonovatek-coder/Novatek-Aulas/backend/models"
)

// AdminStats returns a copy of the cached counter block.
func (s *Store) AdminStats() models.AdminStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := s.doc.AdminStats
	stats.RecentActivities = make([]models.Activity, len(s.doc.AdminStats.RecentActivities))
	copy(stats.RecentActivities, s.doc.AdminStats.RecentActivities)
	return stats
}

// AddActivity prepends an entry to the activity feed, keeping at most
// MaxRecentActivities entries, newest first.
func (s *Store) AddActivity(activityType, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := models.Activity{
		ID:      time.Now().UnixMilli(),
		Type:    activityType,
		Message: message,
		Time:    time.Now(),
	}

	s.doc.AdminStats.RecentActivities = append([]models.Activity{entry}, s.doc.AdminStats.RecentActivities...)
	if len(s.doc.AdminStats.RecentActivities) > models.MaxRecentActivities {
		s.doc.AdminStats.RecentActivities = s.doc.AdminStats.RecentActivities[:models.MaxRecentActivities]
	}

	return s.save()
}

// RecentActivities returns the activity feed, newest first.
func (s *Store) RecentActivities() []models.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()

	activities := make([]models.Activity, len(s.doc.AdminStats.RecentActivities))
	copy(activities, s.doc.AdminStats.RecentActivities)
	return activities
}

// AddRevenue adds an approved payment's amount to the cached monthly
// revenue counter.
func (s *Store) AddRevenue(amount float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc.AdminStats.MonthlyRevenue += amount
	return s.save()
}
