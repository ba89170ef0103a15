package handlers

import (
	"strconv"
	"time"

	"finflow/internal/models"
	"finflow/internal/repositories"
	"finflow/internal/services/export"
	"finflow/internal/services/ledger"
	"finflow/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// TransactionHandler serves the transaction list and CSV export endpoints.
type TransactionHandler struct {
	repo repositories.TransactionRepository
}

func NewTransactionHandler(repo repositories.TransactionRepository) *TransactionHandler {
	return &TransactionHandler{repo: repo}
}

// ListTransactions handles GET /api/transactions. Filters combine with AND;
// unknown query parameters are ignored.
func (h *TransactionHandler) ListTransactions(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	filter := ledger.Filter{
		Status:   c.Query("status"),
		Type:     c.Query("type"),
		Category: c.Query("category"),
	}

	records, err := h.repo.ListAll(c.Context(), claims.UserID)
	if err != nil {
		return serviceError(c, err)
	}

	result := ledger.Query(records, filter, ledger.PageRequest{Page: page, Limit: limit})

	return utils.Success(c, fiber.Map{
		"transactions": transactionList(result.Records),
		"total":        result.Total,
		"page":         result.Page,
		"limit":        result.Limit,
		"totalPages":   result.TotalPages,
	})
}

// ExportTransactions handles GET /api/transactions/export. Same filters as
// the list endpoint, no pagination, capped at the export row limit.
func (h *TransactionHandler) ExportTransactions(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	filter := ledger.Filter{
		Status:   c.Query("status"),
		Type:     c.Query("type"),
		Category: c.Query("category"),
	}

	records, err := h.repo.ListAll(c.Context(), claims.UserID)
	if err != nil {
		return serviceError(c, err)
	}

	result := ledger.Query(records, filter, ledger.PageRequest{Page: 1, Limit: export.MaxRows})
	csv := export.ToCSV(result.Records)

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+export.Filename(time.Now())+`"`)
	return c.SendString(csv)
}

// transactionJSON shapes a record for the API: minor units become decimal
// major units and internal fields stay internal.
func transactionJSON(t models.Transaction) fiber.Map {
	out := fiber.Map{
		"id":          t.ID,
		"type":        t.Type,
		"amount":      models.MajorUnits(t.Amount),
		"currency":    t.Currency,
		"description": t.Description,
		"date":        t.Date.UTC().Format(time.RFC3339),
		"status":      t.Status,
	}
	if t.Category != "" {
		out["category"] = t.Category
	}
	if t.Recipient != "" {
		out["recipient"] = t.Recipient
	}
	return out
}

func transactionList(records []models.Transaction) []fiber.Map {
	out := make([]fiber.Map, len(records))
	for i, t := range records {
		out[i] = transactionJSON(t)
	}
	return out
}
