package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/contatonovatek-coder/Novatek-Aulas/backend/config"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/middleware"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/store"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/utils"
)

type NotificationsController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewNotificationsController(st *store.Store, cfg *config.Config) *NotificationsController {
	return &NotificationsController{Store: st, Cfg: cfg}
}

// GetNotifications lists the current user's notifications, newest first.
func (nc *NotificationsController) GetNotifications(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return utils.Unauthorized(c, "Not authenticated")
	}
	return c.JSON(fiber.Map{
		"notifications": nc.Store.NotificationsByUser(user.ID),
		"unread":        nc.Store.UnreadNotificationCount(user.ID),
	})
}

func (nc *NotificationsController) GetUnreadCount(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return utils.Unauthorized(c, "Not authenticated")
	}
	return c.JSON(fiber.Map{"unread": nc.Store.UnreadNotificationCount(user.ID)})
}

func (nc *NotificationsController) MarkAllRead(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return utils.Unauthorized(c, "Not authenticated")
	}
	if err := nc.Store.MarkAllNotificationsRead(user.ID); err != nil {
		return utils.InternalServerError(c, "Could not mark notifications read")
	}
	return c.JSON(fiber.Map{"success": true})
}
