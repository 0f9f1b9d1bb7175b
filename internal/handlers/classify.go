package handlers

import (
	"github.com/gofiber/fiber/v3"

	"ecaretag/internal/classifier"
	"ecaretag/internal/config"
	"ecaretag/internal/metrics"
	"ecaretag/internal/models"
	"ecaretag/internal/validation"
)

// ClassifyHandler handles the form classification endpoint the page script
// posts to.
type ClassifyHandler struct {
	engine *classifier.Classifier
	cfg    *config.Config
}

// NewClassifyHandler creates a new classify handler.
func NewClassifyHandler(engine *classifier.Classifier, cfg *config.Config) *ClassifyHandler {
	return &ClassifyHandler{engine: engine, cfg: cfg}
}

// Classify reads the submitted text and returns the matched codes with their
// reasoning. Zero matches is a normal 200 response with empty codes, so the
// page can render an explicit "no codes matched" state. The blank-input
// check lives here, upstream of the engine, which itself treats empty input
// as a valid no-match.
func (h *ClassifyHandler) Classify(c fiber.Ctx) error {
	text := validation.NormalizeText(c.FormValue("text"))

	if valid, msg := validation.ValidateText(text, h.cfg.MaxTextLen); !valid {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": msg,
		})
	}

	result := h.engine.Classify(text)
	metrics.RecordClassification(result)

	return c.JSON(models.ClassifyResponse{
		Codes:     result.Codes,
		Reasoning: result.Reasoning,
	})
}
