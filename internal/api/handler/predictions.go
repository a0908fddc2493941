package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/moodlens/moodlens/internal/domain"
)

// PredictionsHandler serves the recorded prediction history
type PredictionsHandler struct {
	service AnalysisService
	logger  *slog.Logger
}

func NewPredictionsHandler(service AnalysisService, logger *slog.Logger) *PredictionsHandler {
	return &PredictionsHandler{
		service: service,
		logger:  logger,
	}
}

// PredictionsResponse is the payload for GET /predictions
type PredictionsResponse struct {
	Predictions []domain.Prediction `json:"predictions"`
}

// List GET /predictions - newest records first
func (h *PredictionsHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)

	predictions, err := h.service.Recent(c.Context(), limit)
	if err != nil {
		return err
	}

	if predictions == nil {
		predictions = []domain.Prediction{}
	}

	return c.JSON(PredictionsResponse{Predictions: predictions})
}
