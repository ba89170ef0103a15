package handlers

import (
	"finflow/internal/models"
	"finflow/internal/services/wallet"
	"finflow/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type WalletHandler struct {
	walletService wallet.Service
}

func NewWalletHandler(walletService wallet.Service) *WalletHandler {
	return &WalletHandler{walletService: walletService}
}

// extractUserClaims is a helper function to reduce duplication
func extractUserClaims(c *fiber.Ctx) (*models.UserClaims, error) {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok || claims == nil {
		return nil, fiber.ErrUnauthorized
	}
	return claims, nil
}

// Fund handles POST /api/fund.
func (h *WalletHandler) Fund(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		Amount   float64 `json:"amount" validate:"required,gt=0"`
		Currency string  `json:"currency" validate:"omitempty,oneof=USD EUR GBP"`
		Method   string  `json:"method" validate:"omitempty,oneof=bank card crypto"`
		Source   string  `json:"source"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if details := validateStruct(input); details != nil {
		return utils.ValidationFailed(c, details)
	}

	amount, err := models.MinorUnits(input.Amount)
	if err != nil {
		return utils.ValidationFailed(c, []utils.FieldError{
			{Field: "amount", Message: err.Error()},
		})
	}

	txn, err := h.walletService.Fund(c.Context(), claims.UserID, wallet.FundRequest{
		Amount:   amount,
		Currency: input.Currency,
		Method:   input.Method,
		Source:   utils.Sanitize(input.Source),
	})
	if err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, fiber.Map{
		"success":     true,
		"transaction": transactionJSON(*txn),
	})
}

// GetBalance handles GET /api/balance.
func (h *WalletHandler) GetBalance(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	balance, err := h.walletService.Balance(c.Context(), claims.UserID)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, fiber.Map{
		"balance":  models.MajorUnits(balance),
		"currency": models.CurrencyUSD,
	})
}
