package handlers

import (
	"errors"
	"log"

	"finflow/internal/repositories"
	"finflow/internal/services/transfer"
	"finflow/internal/services/wallet"
	"finflow/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// serviceError maps core errors onto HTTP responses. Validation and limit
// breaches surface their message verbatim; anything unexpected becomes a
// generic 500 with the request id.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, wallet.ErrInvalidAmount),
		errors.Is(err, wallet.ErrInvalidCurrency),
		errors.Is(err, wallet.ErrFundLimitExceeded),
		errors.Is(err, wallet.ErrInsufficientBalance),
		errors.Is(err, transfer.ErrInvalidAmount),
		errors.Is(err, transfer.ErrRecipientRequired),
		errors.Is(err, transfer.ErrTransferLimitExceeded):
		return utils.BadRequest(c, err.Error())

	case errors.Is(err, repositories.ErrTransactionNotFound):
		return utils.NotFound(c, err.Error())

	default:
		log.Printf("internal error on %s %s: %v", c.Method(), c.Path(), err)
		return utils.InternalError(c)
	}
}
