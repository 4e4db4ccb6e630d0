package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/contatonovatek-coder/Novatek-Aulas/backend/auth"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/config"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/middleware"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/payments"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/store"
	"github.com/contatonovatek-coder/Novatek-Aulas/backend/utils"
)

type PaymentController struct {
	Store     *store.Store
	Session   *auth.Session
	Processor *payments.Processor
	Cfg       *config.Config
}

func NewPaymentController(st *store.Store, session *auth.Session, processor *payments.Processor, cfg *config.Config) *PaymentController {
	return &PaymentController{Store: st, Session: session, Processor: processor, Cfg: cfg}
}

func (pc *PaymentController) GetPlans(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"plans": config.Plans})
}

// [+] Checkout godoc
// @Summary Start a subscription checkout
// @Description Records a pending payment and creates the Mercado Pago order
// @Tags payments
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /payments/checkout [post]
func (pc *PaymentController) Checkout(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return utils.Unauthorized(c, "Not authenticated")
	}

	var input struct {
		Plan          string `json:"plan"`
		PaymentMethod string `json:"paymentMethod"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.Plan == "" {
		// Fall back to the plan chosen at signup.
		input.Plan = pc.Session.SelectedPlan()
	}
	if input.Plan == "" {
		input.Plan = user.Plan
	}

	result, err := pc.Processor.StartCheckout(c.Context(), user.ID, input.Plan, input.PaymentMethod)
	if err != nil {
		if errors.Is(err, payments.ErrUnknownPlan) {
			return utils.BadRequest(c, "Plano inválido")
		}
		if errors.Is(err, payments.ErrUnknownUser) {
			return utils.BadRequest(c, "Usuário inválido")
		}
		return utils.BadGateway(c, "Não foi possível iniciar o pagamento. Tente novamente.")
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"payment":    result.Payment,
		"preference": result.Preference,
		"initPoint":  result.Preference.InitPoint,
	})
}

// Callback handles the gateway's return/notification. The payment status is
// fetched from the gateway rather than read off the query string.
func (pc *PaymentController) Callback(c *fiber.Ctx) error {
	paymentID := c.Query("payment_id")
	if paymentID == "" {
		paymentID = c.Query("collection_id")
	}
	externalReference := c.Query("external_reference")
	if paymentID == "" || externalReference == "" {
		return utils.BadRequest(c, "Missing payment_id or external_reference")
	}

	result, err := pc.Processor.HandleCallback(c.Context(), paymentID, externalReference)
	if err != nil {
		return utils.BadGateway(c, "Não foi possível confirmar o pagamento")
	}

	// The processor mutated the user outside the session; re-sync the
	// snapshot so a logged-in client sees the new status immediately.
	if err := pc.Session.Sync(result.UserID); err != nil {
		return utils.InternalServerError(c, "Could not refresh session")
	}

	return c.JSON(fiber.Map{
		"success": result.Success,
		"status":  result.Status,
	})
}

func (pc *PaymentController) GetPaymentHistory(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return utils.Unauthorized(c, "Not authenticated")
	}
	return c.JSON(fiber.Map{
		"payments":     pc.Store.PaymentsByUser(user.ID),
		"subscription": pc.Store.ActiveSubscriptionByUser(user.ID),
	})
}
