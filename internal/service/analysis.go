package service

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/moodlens/moodlens/internal/domain"
	"github.com/moodlens/moodlens/internal/provider"
)

// Normalizer turns a submission into a stored image file.
type Normalizer interface {
	Normalize(sub domain.ImageSubmission) (*domain.StoredImage, error)
}

// PredictionRepositoryInterface is the store the orchestrator appends to.
type PredictionRepositoryInterface interface {
	Create(ctx context.Context, prediction *domain.Prediction) error
	ListRecent(ctx context.Context, limit int) ([]domain.Prediction, error)
}

// AnalysisService drives one request through ingress, classification and
// persistence. Each stage's failure short-circuits to an error response,
// except classification, which is downgraded to the sentinel label so the
// request still completes with a durable record (fail-soft).
type AnalysisService struct {
	normalizer  Normalizer
	provider    provider.EmotionProvider
	predictions PredictionRepositoryInterface
	logger      *slog.Logger
	now         func() time.Time
}

func NewAnalysisService(
	normalizer Normalizer,
	emotionProvider provider.EmotionProvider,
	predictions PredictionRepositoryInterface,
	logger *slog.Logger,
) *AnalysisService {
	return &AnalysisService{
		normalizer:  normalizer,
		provider:    emotionProvider,
		predictions: predictions,
		logger:      logger,
		now:         time.Now,
	}
}

// WithClock overrides the timestamp source, for tests.
func (s *AnalysisService) WithClock(now func() time.Time) *AnalysisService {
	s.now = now
	return s
}

// Analyze runs the full pipeline for one submission and returns the
// persisted record.
func (s *AnalysisService) Analyze(ctx context.Context, sub domain.ImageSubmission) (*domain.Prediction, error) {
	// Source validation happens before any file or network I/O.
	if sub.Source != domain.SourceUpload && sub.Source != domain.SourceWebcam {
		return nil, domain.ErrInvalidSource
	}

	stored, err := s.normalizer.Normalize(sub)
	if err != nil {
		return nil, err
	}

	emotion := s.classify(ctx, stored)

	record := domain.NewPrediction(sub.Name, stored.Path, emotion, s.now())
	if err := s.predictions.Create(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info("prediction recorded",
		slog.Int64("id", record.ID),
		slog.String("emotion", string(record.PredictedEmotion)),
		slog.String("source", string(sub.Source)),
		slog.String("image", stored.Filename),
	)

	return record, nil
}

// classify reads the stored image and asks the provider for a label.
// Classification is best-effort: any failure is logged and replaced with
// the sentinel rather than propagated, so the request pipeline never
// crashes on the least reliable stage.
func (s *AnalysisService) classify(ctx context.Context, stored *domain.StoredImage) domain.Emotion {
	data, err := os.ReadFile(stored.Path)
	if err != nil {
		s.logger.Warn("classification skipped: read stored image",
			slog.String("path", stored.Path),
			slog.Any("error", err),
		)
		return domain.EmotionError
	}

	analysis, err := s.provider.AnalyzeEmotions(ctx, data)
	if err != nil {
		s.logger.Warn("classification failed, recording sentinel",
			slog.String("image", stored.Filename),
			slog.Any("error", err),
		)
		return domain.EmotionError
	}

	return analysis.Dominant
}

// Recent returns the latest prediction records.
func (s *AnalysisService) Recent(ctx context.Context, limit int) ([]domain.Prediction, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.predictions.ListRecent(ctx, limit)
}
