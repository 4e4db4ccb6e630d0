package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/contatonovatek-coder/Novatek-Aulas/backend/config"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/middleware"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/models"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/store"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/utils"
)

type AdminController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewAdminController(st *store.Store, cfg *config.Config) *AdminController {
	return &AdminController{Store: st, Cfg: cfg}
}

func (ac *AdminController) GetStats(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"stats": ac.Store.AdminStats()})
}

func (ac *AdminController) GetActivities(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"activities": ac.Store.RecentActivities()})
}

func (ac *AdminController) GetUsers(c *fiber.Ctx) error {
	users := ac.Store.Users()
	out := make([]fiber.Map, 0, len(users))
	for i := range users {
		out = append(out, publicUser(&users[i]))
	}
	return c.JSON(fiber.Map{"users": out, "total": len(out)})
}

func (ac *AdminController) GetUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}

	user := ac.Store.UserByID(id)
	if user == nil {
		return utils.NotFound(c, "Usuário não encontrado")
	}

	return c.JSON(fiber.Map{
		"user":         publicUser(user),
		"payments":     ac.Store.PaymentsByUser(id),
		"subscription": ac.Store.ActiveSubscriptionByUser(id),
		"progress":     ac.Store.ProgressByUser(id),
	})
}

// DeleteUser removes the user and every record keyed to it: notifications,
// subscriptions, payments and progress.
func (ac *AdminController) DeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}

	admin := middleware.CurrentUser(c)
	if admin != nil && admin.ID == id {
		return utils.BadRequest(c, "Você não pode excluir a si mesmo")
	}

	deleted, err := ac.Store.DeleteUser(id)
	if err != nil {
		return utils.InternalServerError(c, "Could not delete user")
	}
	if !deleted {
		return utils.NotFound(c, "Usuário não encontrado")
	}
	return c.JSON(fiber.Map{"success": true})
}

func (ac *AdminController) CreateCourse(c *fiber.Ctx) error {
	var course models.Course
	if err := c.BodyParser(&course); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if course.Title == "" {
		return utils.BadRequest(c, "Informe o título do curso")
	}

	created, err := ac.Store.CreateCourse(course)
	if err != nil {
		return utils.InternalServerError(c, "Could not create course")
	}
	if err := ac.Store.AddActivity("course_created", "Novo curso criado: "+created.Title); err != nil {
		return utils.InternalServerError(c, "Could not record activity")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "course": created})
}

// DeleteCourse removes the course and its lessons.
func (ac *AdminController) DeleteCourse(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	deleted, err := ac.Store.DeleteCourse(id)
	if err != nil {
		return utils.InternalServerError(c, "Could not delete course")
	}
	if !deleted {
		return utils.NotFound(c, "Curso não encontrado")
	}
	return c.JSON(fiber.Map{"success": true})
}

func (ac *AdminController) CreateLesson(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}
	if ac.Store.CourseByID(courseID) == nil {
		return utils.NotFound(c, "Curso não encontrado")
	}

	var lesson models.Lesson
	if err := c.BodyParser(&lesson); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if lesson.Title == "" {
		return utils.BadRequest(c, "Informe o título da aula")
	}
	lesson.CourseID = courseID

	created, err := ac.Store.CreateLesson(lesson)
	if err != nil {
		return utils.InternalServerError(c, "Could not create lesson")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "lesson": created})
}

func (ac *AdminController) UpdateLesson(c *fiber.Ctx) error {
	id, err := c.ParamsInt("lessonId")
	if err != nil {
		return utils.BadRequest(c, "Invalid lesson ID")
	}

	var updates models.LessonUpdate
	if err := c.BodyParser(&updates); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	updated, err := ac.Store.UpdateLesson(id, updates)
	if err != nil {
		return utils.InternalServerError(c, "Could not update lesson")
	}
	if updated == nil {
		return utils.NotFound(c, "Aula não encontrada")
	}
	return c.JSON(fiber.Map{"success": true, "lesson": updated})
}

func (ac *AdminController) DeleteLesson(c *fiber.Ctx) error {
	id, err := c.ParamsInt("lessonId")
	if err != nil {
		return utils.BadRequest(c, "Invalid lesson ID")
	}

	deleted, err := ac.Store.DeleteLesson(id)
	if err != nil {
		return utils.InternalServerError(c, "Could not delete lesson")
	}
	if !deleted {
		return utils.NotFound(c, "Aula não encontrada")
	}
	return c.JSON(fiber.Map{"success": true})
}

// CancelSubscription cancels the user's active subscription and locks the
// account back to inactive.
func (ac *AdminController) CancelSubscription(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}

	user := ac.Store.UserByID(id)
	if user == nil {
		return utils.NotFound(c, "Usuário não encontrado")
	}
	if ac.Store.ActiveSubscriptionByUser(id) == nil {
		return utils.NotFound(c, "Nenhuma assinatura ativa")
	}

	if err := ac.Store.UpdateSubscriptionStatus(id, models.SubscriptionCancelled); err != nil {
		return utils.InternalServerError(c, "Could not cancel subscription")
	}
	inactive := models.StatusInactive
	if _, err := ac.Store.UpdateUser(id, models.UserUpdate{Status: &inactive}); err != nil {
		return utils.InternalServerError(c, "Could not update user")
	}
	if _, err := ac.Store.AddNotification(id, "Assinatura cancelada",
		"Sua assinatura foi cancelada. Entre em contato com o suporte para mais detalhes.", "warning"); err != nil {
		return utils.InternalServerError(c, "Could not notify user")
	}

	return c.JSON(fiber.Map{"success": true})
}

// Broadcast sends one notification to every user.
func (ac *AdminController) Broadcast(c *fiber.Ctx) error {
	var input struct {
		Title   string `json:"title"`
		Message string `json:"message"`
		Type    string `json:"type"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.Title == "" || input.Message == "" {
		return utils.BadRequest(c, "Informe título e mensagem")
	}
	if input.Type == "" {
		input.Type = "info"
	}

	users := ac.Store.Users()
	for _, user := range users {
		if _, err := ac.Store.AddNotification(user.ID, input.Title, input.Message, input.Type); err != nil {
			return utils.InternalServerError(c, "Could not send notifications")
		}
	}
	return c.JSON(fiber.Map{"success": true, "sent": len(users)})
}
