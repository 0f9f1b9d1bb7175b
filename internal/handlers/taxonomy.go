package handlers

import (
	"github.com/gofiber/fiber/v3"

	"ecaretag/internal/config"
	"ecaretag/internal/taxonomy"
)

// TaxonomyHandler renders the taxonomy browse page.
type TaxonomyHandler struct {
	table *taxonomy.Table
	cfg   *config.Config
}

// NewTaxonomyHandler creates a new taxonomy handler.
func NewTaxonomyHandler(table *taxonomy.Table, cfg *config.Config) *TaxonomyHandler {
	return &TaxonomyHandler{table: table, cfg: cfg}
}

// Browse lists every code with its description and trigger keywords.
func (h *TaxonomyHandler) Browse(c fiber.Ctx) error {
	return c.Render("taxonomy", MergeBranding(fiber.Map{
		"Title":   "Taxonomy",
		"Entries": h.table.Entries(),
	}, h.cfg))
}
