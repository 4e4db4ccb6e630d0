package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/contatonovatek-coder/Novatek-Aulas/backend/config"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/middleware"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/models"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/store"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/utils"
)

type ProgressController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewProgressController(st *store.Store, cfg *config.Config) *ProgressController {
	return &ProgressController{Store: st, Cfg: cfg}
}

// CompleteLesson records a lesson as completed for the current user.
// Completing the same lesson twice leaves the record unchanged; completing
// the last lesson of a course issues the certificate.
func (pc *ProgressController) CompleteLesson(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return utils.Unauthorized(c, "Not authenticated")
	}

	courseID, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}
	lessonID, err := c.ParamsInt("lessonId")
	if err != nil {
		return utils.BadRequest(c, "Invalid lesson ID")
	}

	course := pc.Store.CourseByID(courseID)
	if course == nil {
		return utils.NotFound(c, "Curso não encontrado")
	}
	lesson := pc.Store.LessonByID(lessonID)
	if lesson == nil || lesson.CourseID != courseID {
		return utils.NotFound(c, "Aula não encontrada")
	}

	progress, err := pc.Store.UpdateProgress(user.ID, courseID, lessonID)
	if err != nil {
		return utils.InternalServerError(c, "Could not update progress")
	}

	var certificate *models.Certificate
	if progress.Progress == 100 {
		certificate, err = pc.issueCertificate(user.ID, course)
		if err != nil {
			return utils.InternalServerError(c, "Could not issue certificate")
		}
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"progress":    progress,
		"certificate": certificate,
	})
}

// issueCertificate creates the course certificate once. Re-completing an
// already finished course returns the existing one.
func (pc *ProgressController) issueCertificate(userID int, course *models.Course) (*models.Certificate, error) {
	for _, cert := range pc.Store.CertificatesByUser(userID) {
		if cert.CourseID == course.ID {
			existing := cert
			return &existing, nil
		}
	}

	cert, err := pc.Store.CreateCertificate(models.Certificate{
		UserID:   userID,
		CourseID: course.ID,
		Title:    course.Title,
		IssuedAt: time.Now(),
	})
	if err != nil {
		return nil, err
	}

	if _, err := pc.Store.AddNotification(userID, "Curso concluído!",
		"Parabéns! Você concluiu o curso "+course.Title+" e ganhou um certificado.", "success"); err != nil {
		return nil, err
	}
	return cert, nil
}

func (pc *ProgressController) GetCourseProgress(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return utils.Unauthorized(c, "Not authenticated")
	}

	courseID, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	progress := pc.Store.ProgressFor(user.ID, courseID)
	if progress == nil {
		progress = &models.UserProgress{
			UserID:           user.ID,
			CourseID:         courseID,
			CompletedLessons: []int{},
		}
	}
	return c.JSON(fiber.Map{"progress": progress})
}

func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return utils.Unauthorized(c, "Not authenticated")
	}
	return c.JSON(fiber.Map{"progress": pc.Store.ProgressByUser(user.ID)})
}

func (pc *ProgressController) GetCertificates(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return utils.Unauthorized(c, "Not authenticated")
	}
	return c.JSON(fiber.Map{"certificates": pc.Store.CertificatesByUser(user.ID)})
}
