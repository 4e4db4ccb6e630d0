package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/contatonovatek-coder/Novatek-Aulas/backend/auth"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/config"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/middleware"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/models"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/store"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/utils"
)

type UserController struct {
	Store   *store.Store
	Session *auth.Session
	Cfg     *config.Config
}

func NewUserController(st *store.Store, session *auth.Session, cfg *config.Config) *UserController {
	return &UserController{Store: st, Session: session, Cfg: cfg}
}

// publicUser strips the password hash before a user record leaves the API.
func publicUser(user *models.User) fiber.Map {
	if user == nil {
		return nil
	}
	return fiber.Map{
		"id":          user.ID,
		"name":        user.Name,
		"email":       user.Email,
		"role":        user.Role,
		"plan":        user.Plan,
		"status":      user.Status,
		"avatar":      user.Avatar,
		"joinDate":    user.JoinDate,
		"lastLogin":   user.LastLogin,
		"preferences": user.Preferences,
	}
}

func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return utils.Unauthorized(c, "Not authenticated")
	}
	return c.JSON(fiber.Map{"user": publicUser(user)})
}

func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return utils.Unauthorized(c, "Not authenticated")
	}

	var updates models.UserUpdate
	if err := c.BodyParser(&updates); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	// Plan and status transitions belong to the payment flow.
	updates.Plan = nil
	updates.Status = nil

	updated, err := uc.Store.UpdateUser(user.ID, updates)
	if err != nil {
		return utils.InternalServerError(c, "Could not update profile")
	}
	if updated == nil {
		return utils.NotFound(c, "Usuário não encontrado")
	}
	if err := uc.Session.Sync(updated.ID); err != nil {
		return utils.InternalServerError(c, "Could not refresh session")
	}

	return c.JSON(fiber.Map{"success": true, "user": publicUser(updated)})
}

// UpdatePreferences replaces the whole preferences object. Partial payloads
// would zero the omitted fields, so the client always sends all three.
func (uc *UserController) UpdatePreferences(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return utils.Unauthorized(c, "Not authenticated")
	}

	var prefs models.Preferences
	if err := c.BodyParser(&prefs); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	updated, err := uc.Store.UpdateUser(user.ID, models.UserUpdate{Preferences: &prefs})
	if err != nil {
		return utils.InternalServerError(c, "Could not update preferences")
	}
	if updated == nil {
		return utils.NotFound(c, "Usuário não encontrado")
	}
	if err := uc.Session.Sync(updated.ID); err != nil {
		return utils.InternalServerError(c, "Could not refresh session")
	}

	return c.JSON(fiber.Map{"success": true, "preferences": updated.Preferences})
}
