package handlers

import (
	"finflow/internal/models"
	"finflow/internal/services/transfer"
	"finflow/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// TransferHandler exposes the transfer endpoint.
type TransferHandler struct {
	service transfer.Service
}

func NewTransferHandler(s transfer.Service) *TransferHandler { return &TransferHandler{service: s} }

// Transfer handles POST /api/transfer requests.
func (h *TransferHandler) Transfer(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		Amount      float64 `json:"amount" validate:"required,gt=0"`
		Recipient   string  `json:"recipient" validate:"required"`
		Description string  `json:"description"`
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

	txn, err := h.service.Transfer(c.Context(), claims.UserID, transfer.Request{
		Amount:      amount,
		Recipient:   input.Recipient,
		Description: input.Description,
	})
	if err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, fiber.Map{
		"success":     true,
		"transaction": transactionJSON(*txn),
	})
}
