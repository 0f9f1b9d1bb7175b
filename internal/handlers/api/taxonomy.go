package api

import (
	"github.com/gofiber/fiber/v3"

	"ecaretag/internal/models"
	"ecaretag/internal/taxonomy"
	"ecaretag/internal/validation"
)

// TaxonomyHandler serves the taxonomy table via the JSON API.
type TaxonomyHandler struct {
	table *taxonomy.Table
}

// NewTaxonomyHandler creates a new API taxonomy handler.
func NewTaxonomyHandler(table *taxonomy.Table) *TaxonomyHandler {
	return &TaxonomyHandler{table: table}
}

// List returns every taxonomy entry in table order.
func (h *TaxonomyHandler) List(c fiber.Ctx) error {
	entries := h.table.Entries()
	out := make([]models.TaxonomyEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, models.TaxonomyEntryResponse{
			Code:        e.Code,
			Description: e.Description,
			Keywords:    e.Keywords,
		})
	}
	return jsonSuccess(c, out)
}

// Get returns a single taxonomy entry by code.
func (h *TaxonomyHandler) Get(c fiber.Ctx) error {
	code := c.Params("code")
	if !validation.ValidateCode(code) {
		return jsonError(c, fiber.StatusBadRequest, "invalid code")
	}

	entry, ok := h.table.Get(code)
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "code not found")
	}

	return jsonSuccess(c, models.TaxonomyEntryResponse{
		Code:        entry.Code,
		Description: entry.Description,
		Keywords:    entry.Keywords,
	})
}
