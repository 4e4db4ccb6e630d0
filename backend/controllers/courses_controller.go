package controllers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/contatonovatek-coder/Novatek-Aulas/backend/config"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/models"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/store"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/utils"
)

type CoursesController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewCoursesController(st *store.Store, cfg *config.Config) *CoursesController {
	return &CoursesController{Store: st, Cfg: cfg}
}

// [+] GetCourses godoc
// @Summary List courses
// @Description Lists the catalog, optionally filtered by category and level
// @Tags courses
// @Produce json
// @Param category query int false "Category ID"
// @Param level query string false "beginner, intermediate or advanced"
// @Success 200 {object} map[string]interface{}
// @Router /courses [get]
func (cc *CoursesController) GetCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if category := c.Query("category"); category != "" {
		categoryID, err := strconv.Atoi(category)
		if err != nil {
			return utils.BadRequest(c, "Invalid category ID")
		}
		courses = cc.Store.CoursesByCategory(categoryID)
	} else {
		courses = cc.Store.Courses()
	}

	if level := strings.ToLower(c.Query("level")); level != "" {
		filtered := courses[:0]
		for _, course := range courses {
			if course.Level == level {
				filtered = append(filtered, course)
			}
		}
		courses = filtered
	}

	return c.JSON(fiber.Map{"courses": courses, "total": len(courses)})
}

func (cc *CoursesController) GetFeaturedCourses(c *fiber.Ctx) error {
	courses := cc.Store.FeaturedCourses()
	return c.JSON(fiber.Map{"courses": courses, "total": len(courses)})
}

// GetCourseDetails returns the course with its lessons in display order and
// the resolved instructor and category records.
func (cc *CoursesController) GetCourseDetails(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	course := cc.Store.CourseByID(id)
	if course == nil {
		return utils.NotFound(c, "Curso não encontrado")
	}

	return c.JSON(fiber.Map{
		"course":     course,
		"lessons":    cc.Store.LessonsByCourse(course.ID),
		"instructor": cc.Store.InstructorByID(course.InstructorID),
		"category":   cc.Store.CategoryByID(course.CategoryID),
	})
}

func (cc *CoursesController) GetLesson(c *fiber.Ctx) error {
	id, err := c.ParamsInt("lessonId")
	if err != nil {
		return utils.BadRequest(c, "Invalid lesson ID")
	}

	lesson := cc.Store.LessonByID(id)
	if lesson == nil {
		return utils.NotFound(c, "Aula não encontrada")
	}
	return c.JSON(fiber.Map{"lesson": lesson})
}

func (cc *CoursesController) GetCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"categories": cc.Store.Categories()})
}

// Search matches the query against course titles, descriptions and tags, and
// lesson titles and descriptions.
func (cc *CoursesController) Search(c *fiber.Ctx) error {
	query := c.Query("q")
	if strings.TrimSpace(query) == "" {
		return utils.BadRequest(c, "Missing search query")
	}
	return c.JSON(cc.Store.Search(query))
}
