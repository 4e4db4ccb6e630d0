package store

import (
	"math"
	"time"

	"github.com/contatonovatek-coder/Novatek-Aulas/backend/models"
)

// ProgressFor returns a copy of the (user, course) progress row, or nil.
func (s *Store) ProgressFor(userID, courseID int) *models.UserProgress {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.UserProgress {
		if s.doc.UserProgress[i].UserID == userID && s.doc.UserProgress[i].CourseID == courseID {
			p := s.doc.UserProgress[i]
			return &p
		}
	}
	return nil
}

// UpdateProgress marks a lesson completed for the user. The row is created
// on first touch; adding an already-completed lesson is a no-op for the set,
// so the call is idempotent. Progress is the rounded integer percentage of
// completed lessons over the course's lesson total, 0 for a course with no
// lessons.
func (s *Store) UpdateProgress(userID, courseID, lessonID int) (*models.UserProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := len(s.lessonsByCourse(courseID))

	var row *models.UserProgress
	for i := range s.doc.UserProgress {
		if s.doc.UserProgress[i].UserID == userID && s.doc.UserProgress[i].CourseID == courseID {
			row = &s.doc.UserProgress[i]
			break
		}
	}

	if row == nil {
		s.doc.UserProgress = append(s.doc.UserProgress, models.UserProgress{
			UserID:           userID,
			CourseID:         courseID,
			CompletedLessons: []int{lessonID},
		})
		row = &s.doc.UserProgress[len(s.doc.UserProgress)-1]
	} else {
		completed := false
		for _, id := range row.CompletedLessons {
			if id == lessonID {
				completed = true
				break
			}
		}
		if !completed {
			row.CompletedLessons = append(row.CompletedLessons, lessonID)
		}
	}

	row.LastAccessed = time.Now()
	if total > 0 {
		row.Progress = int(math.Round(float64(len(row.CompletedLessons)) / float64(total) * 100))
	} else {
		row.Progress = 0
	}

	if err := s.save(); err != nil {
		return nil, err
	}
	result := *row
	return &result, nil
}

// ProgressByUser returns every progress row of the user.
func (s *Store) ProgressByUser(userID int) []models.UserProgress {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rows []models.UserProgress
	for _, p := range s.doc.UserProgress {
		if p.UserID == userID {
			rows = append(rows, p)
		}
	}
	return rows
}
