package api

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"ecaretag/internal/classifier"
	"ecaretag/internal/config"
	"ecaretag/internal/metrics"
	"ecaretag/internal/models"
	"ecaretag/internal/validation"
)

// ClassifyHandler handles classification via the JSON API.
type ClassifyHandler struct {
	engine *classifier.Classifier
	cfg    *config.Config
}

// NewClassifyHandler creates a new API classify handler.
func NewClassifyHandler(engine *classifier.Classifier, cfg *config.Config) *ClassifyHandler {
	return &ClassifyHandler{engine: engine, cfg: cfg}
}

// classifyRequest is the JSON request body for Classify.
type classifyRequest struct {
	Text string `json:"text" form:"text"`
}

// Classify classifies the submitted text and returns codes plus reasoning in
// the API envelope, tagged with a request id.
func (h *ClassifyHandler) Classify(c fiber.Ctx) error {
	var req classifyRequest
	if err := c.Bind().Body(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	text := validation.NormalizeText(req.Text)
	if valid, msg := validation.ValidateText(text, h.cfg.MaxTextLen); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	result := h.engine.Classify(text)
	metrics.RecordClassification(result)

	return jsonSuccess(c, models.ClassificationAPIResponse{
		ID:         uuid.New(),
		Codes:      result.Codes,
		Reasoning:  result.Reasoning,
		TextLength: len(text),
	})
}
