package handler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/moodlens/moodlens/internal/domain"
)

// AnalysisService interface for the service
type AnalysisService interface {
	Analyze(ctx context.Context, sub domain.ImageSubmission) (*domain.Prediction, error)
	Recent(ctx context.Context, limit int) ([]domain.Prediction, error)
}

// AnalyzeHandler handles photo analysis requests
type AnalyzeHandler struct {
	service AnalysisService
	logger  *slog.Logger
}

// NewAnalyzeHandler creates a new AnalyzeHandler instance
func NewAnalyzeHandler(service AnalysisService, logger *slog.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		service: service,
		logger:  logger,
	}
}

// AnalyzeResponse is the success payload for POST /analyze
type AnalyzeResponse struct {
	Success   bool   `json:"success"`
	Emotion   string `json:"emotion"`
	Name      string `json:"name"`
	Timestamp string `json:"timestamp"`
}

// Analyze POST /analyze - run one photo through the pipeline
func (h *AnalyzeHandler) Analyze(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.FormValue("name"))
	source := domain.Source(strings.TrimSpace(c.FormValue("source")))

	sub := domain.ImageSubmission{
		Source: source,
		Name:   name,
	}

	// Extraction is keyed on source; an unrecognized value reaches the
	// service untouched and fails validation there, before any file I/O.
	switch source {
	case domain.SourceUpload:
		data, filename, err := extractUploadFile(c)
		if err != nil {
			return fmt.Errorf("analyze: %w", err)
		}
		sub.FileData = data
		sub.Filename = filename

	case domain.SourceWebcam:
		sub.DataURL = c.FormValue("image")
	}

	record, err := h.service.Analyze(c.Context(), sub)
	if err != nil {
		return err
	}

	return c.JSON(AnalyzeResponse{
		Success:   true,
		Emotion:   string(record.PredictedEmotion),
		Name:      record.Name,
		Timestamp: record.Timestamp,
	})
}

// extractUploadFile reads the multipart "file" field. A missing part is an
// invalid-file error, not an internal one.
func extractUploadFile(c *fiber.Ctx) ([]byte, string, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, "", domain.ErrInvalidFile.WithError(err)
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, "", domain.ErrInvalidFile.WithError(err)
	}
	defer func() {
		_ = f.Close()
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", domain.ErrInvalidFile.WithError(err)
	}

	return data, fileHeader.Filename, nil
}
