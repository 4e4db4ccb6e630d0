package store

import (
	"sort"
	"time"

	"github.com/contatonovatek-coder/Novatek-Aulas/backend/models"
)

// Courses returns a copy of the course catalog.
func (s *Store) Courses() []models.Course {
	s.mu.Lock()
	defer s.mu.Unlock()

	courses := make([]models.Course, len(s.doc.Courses))
	copy(courses, s.doc.Courses)
	return courses
}

// FeaturedCourses returns the courses flagged for the landing page.
func (s *Store) FeaturedCourses() []models.Course {
	s.mu.Lock()
	defer s.mu.Unlock()

	var featured []models.Course
	for _, c := range s.doc.Courses {
		if c.Featured {
			featured = append(featured, c)
		}
	}
	return featured
}

// CourseByID returns a copy of the course with the given id, or nil.
func (s *Store) CourseByID(id int) *models.Course {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Courses {
		if s.doc.Courses[i].ID == id {
			c := s.doc.Courses[i]
			return &c
		}
	}
	return nil
}

// CoursesByCategory returns the courses in the given category.
func (s *Store) CoursesByCategory(categoryID int) []models.Course {
	s.mu.Lock()
	defer s.mu.Unlock()

	var courses []models.Course
	for _, c := range s.doc.Courses {
		if c.CategoryID == categoryID {
			courses = append(courses, c)
		}
	}
	return courses
}

// CreateCourse appends a new course to the catalog.
func (s *Store) CreateCourse(course models.Course) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course.ID = nextID(s.doc.Courses, func(c models.Course) int { return c.ID })
	if course.CreatedAt == "" {
		course.CreatedAt = time.Now().Format("2006-01-02")
	}

	s.doc.Courses = append(s.doc.Courses, course)
	s.doc.AdminStats.TotalCourses = len(s.doc.Courses)

	if err := s.save(); err != nil {
		return nil, err
	}
	return &course, nil
}

// DeleteCourse removes the course and every lesson that belongs to it.
func (s *Store) DeleteCourse(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	courses := s.doc.Courses[:0]
	for _, c := range s.doc.Courses {
		if c.ID == id {
			found = true
			continue
		}
		courses = append(courses, c)
	}
	if !found {
		return false, nil
	}
	s.doc.Courses = courses

	lessons := s.doc.Lessons[:0]
	for _, l := range s.doc.Lessons {
		if l.CourseID != id {
			lessons = append(lessons, l)
		}
	}
	s.doc.Lessons = lessons

	s.doc.AdminStats.TotalCourses = len(s.doc.Courses)

	if err := s.save(); err != nil {
		return false, err
	}
	return true, nil
}

// Categories returns the static category reference data.
func (s *Store) Categories() []models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories := make([]models.Category, len(s.doc.Categories))
	copy(categories, s.doc.Categories)
	return categories
}

// CategoryByID returns the category with the given id, or nil.
func (s *Store) CategoryByID(id int) *models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Categories {
		if s.doc.Categories[i].ID == id {
			c := s.doc.Categories[i]
			return &c
		}
	}
	return nil
}

// InstructorByID returns the instructor with the given id, or nil.
func (s *Store) InstructorByID(id int) *models.Instructor {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Instructors {
		if s.doc.Instructors[i].ID == id {
			ins := s.doc.Instructors[i]
			return &ins
		}
	}
	return nil
}

// LessonsByCourse returns the course's lessons sorted ascending by display
// order.
func (s *Store) LessonsByCourse(courseID int) []models.Lesson {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lessonsByCourse(courseID)
}

func (s *Store) lessonsByCourse(courseID int) []models.Lesson {
	var lessons []models.Lesson
	for _, l := range s.doc.Lessons {
		if l.CourseID == courseID {
			lessons = append(lessons, l)
		}
	}
	sort.Slice(lessons, func(i, j int) bool { return lessons[i].Order < lessons[j].Order })
	return lessons
}

// LessonByID returns a copy of the lesson with the given id, or nil.
func (s *Store) LessonByID(id int) *models.Lesson {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Lessons {
		if s.doc.Lessons[i].ID == id {
			l := s.doc.Lessons[i]
			return &l
		}
	}
	return nil
}

// CreateLesson appends a lesson to a course.
func (s *Store) CreateLesson(lesson models.Lesson) (*models.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lesson.ID = nextID(s.doc.Lessons, func(l models.Lesson) int { return l.ID })
	if lesson.Resources == nil {
		lesson.Resources = []string{}
	}

	s.doc.Lessons = append(s.doc.Lessons, lesson)

	if err := s.save(); err != nil {
		return nil, err
	}
	return &lesson, nil
}

// UpdateLesson shallow-merges the supplied fields over the stored lesson.
// Returns nil when no lesson has the given id.
func (s *Store) UpdateLesson(id int, updates models.LessonUpdate) (*models.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Lessons {
		if s.doc.Lessons[i].ID != id {
			continue
		}

		l := &s.doc.Lessons[i]
		if updates.Title != nil {
			l.Title = *updates.Title
		}
		if updates.Description != nil {
			l.Description = *updates.Description
		}
		if updates.Duration != nil {
			l.Duration = *updates.Duration
		}
		if updates.VideoURL != nil {
			l.VideoURL = *updates.VideoURL
		}
		if updates.Order != nil {
			l.Order = *updates.Order
		}

		if err := s.save(); err != nil {
			return nil, err
		}
		updated := *l
		return &updated, nil
	}
	return nil, nil
}

// DeleteLesson removes a single lesson.
func (s *Store) DeleteLesson(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	lessons := s.doc.Lessons[:0]
	for _, l := range s.doc.Lessons {
		if l.ID == id {
			found = true
			continue
		}
		lessons = append(lessons, l)
	}
	if !found {
		return false, nil
	}
	s.doc.Lessons = lessons

	if err := s.save(); err != nil {
		return false, err
	}
	return true, nil
}
