package handlers

import (
	"github.com/gofiber/fiber/v3"

	"ecaretag/internal/config"
	"ecaretag/internal/taxonomy"
)

// HomeHandler renders the classification page.
type HomeHandler struct {
	table *taxonomy.Table
	cfg   *config.Config
}

// NewHomeHandler creates a new home handler.
func NewHomeHandler(table *taxonomy.Table, cfg *config.Config) *HomeHandler {
	return &HomeHandler{table: table, cfg: cfg}
}

// Index renders the main page with the text form and the accuracy
// disclaimer.
func (h *HomeHandler) Index(c fiber.Ctx) error {
	return c.Render("index", MergeBranding(fiber.Map{
		"Title":     "Classify",
		"CodeCount": h.table.Len(),
		"UserEmail": c.Locals("user_email"),
	}, h.cfg))
}
