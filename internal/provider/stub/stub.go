// Package stub provides a fixed-result EmotionProvider for deployments
// without an inference backend and for tests.
package stub

import (
	"context"

	"github.com/moodlens/moodlens/internal/domain"
	"github.com/moodlens/moodlens/internal/provider"
)

// Provider returns the same score set for every image.
type Provider struct{}

// New creates a stub provider.
func New() *Provider {
	return &Provider{}
}

// AnalyzeEmotions ignores the image and returns fixed percentages.
func (p *Provider) AnalyzeEmotions(ctx context.Context, image []byte) (*provider.Analysis, error) {
	scores := domain.ScoreSet{
		domain.EmotionHappiness: 45.0,
		domain.EmotionSadness:   20.0,
		domain.EmotionNeutral:   25.0,
		domain.EmotionAnger:     10.0,
	}

	return &provider.Analysis{
		Dominant: scores.Dominant(),
		Scores:   scores,
	}, nil
}

var _ provider.EmotionProvider = (*Provider)(nil)
