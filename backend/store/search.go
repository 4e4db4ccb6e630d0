package store

import (
	"strings"

	"github.com/contatonovatek-coder/Novatek-Aulas/backend/models"
)

// SearchResult groups the matches of a content search.
type SearchResult struct {
	Courses []models.Course `json:"courses"`
	Lessons []models.Lesson `json:"lessons"`
}

// Search does case-insensitive substring matching over course
// title/description/tags and lesson title/description. No tokenizing, no
// ranking.
func (s *Store) Search(query string) SearchResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	query = strings.ToLower(query)
	result := SearchResult{
		Courses: []models.Course{},
		Lessons: []models.Lesson{},
	}

	for _, c := range s.doc.Courses {
		if strings.Contains(strings.ToLower(c.Title), query) ||
			strings.Contains(strings.ToLower(c.Description), query) ||
			tagsMatch(c.Tags, query) {
			result.Courses = append(result.Courses, c)
		}
	}

	for _, l := range s.doc.Lessons {
		if strings.Contains(strings.ToLower(l.Title), query) ||
			strings.Contains(strings.ToLower(l.Description), query) {
			result.Lessons = append(result.Lessons, l)
		}
	}

	return result
}

func tagsMatch(tags []string, query string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
