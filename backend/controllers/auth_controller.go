package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/contatonovatek-coder/Novatek-Aulas/backend/auth"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/config"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/utils"
)

type AuthController struct {
	Session *auth.Session
	Cfg     *config.Config
}

func NewAuthController(session *auth.Session, cfg *config.Config) *AuthController {
	return &AuthController{Session: session, Cfg: cfg}
}

// [+] Register godoc
// @Summary Register a new user
// @Description Creates a pending_payment student account and starts a session
// @Tags auth
// @Accept json
// @Produce json
// @Param user body auth.RegisterInput true "Registration form"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /auth/register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input auth.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	result, err := ac.Session.Register(input)
	if err != nil {
		return utils.InternalServerError(c, "Could not register user")
	}
	if !result.Success {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"reason":  result.Reason,
			"message": result.Message,
		})
	}

	token, err := utils.GenerateJWTToken(result.User.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return c.JSON(fiber.Map{
		"success":           true,
		"redirectToPayment": result.RedirectToPayment,
		"message":           result.Message,
		"token":             token,
		"user":              publicUser(result.User),
	})
}

// [+] Login godoc
// @Summary User login
// @Description Validates credentials; pending_payment users are redirected to checkout without a token
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.Email == "" || input.Password == "" {
		return utils.BadRequest(c, "Preencha e-mail e senha")
	}

	result, err := ac.Session.Login(input.Email, input.Password)
	if err != nil {
		return utils.InternalServerError(c, "Could not log in")
	}

	if result.RedirectToPayment {
		// Payment still pending: no token is issued, the client goes to
		// checkout instead of the dashboard.
		return c.JSON(fiber.Map{
			"success":           false,
			"redirectToPayment": true,
			"message":           result.Message,
			"user":              publicUser(result.User),
		})
	}
	if !result.Success {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"reason":  result.Reason,
			"message": result.Message,
		})
	}

	token, err := utils.GenerateJWTToken(result.User.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user":    publicUser(result.User),
	})
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	if err := ac.Session.Logout(); err != nil {
		return utils.InternalServerError(c, "Could not log out")
	}
	return c.JSON(fiber.Map{"success": true})
}

// Me returns the persisted session snapshot, so a restarted client can
// resume without logging in again.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	user := ac.Session.CurrentUser()
	if user == nil {
		return utils.Unauthorized(c, "Not authenticated")
	}
	return c.JSON(fiber.Map{
		"user":         publicUser(user),
		"selectedPlan": ac.Session.SelectedPlan(),
	})
}
