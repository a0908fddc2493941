package deepface

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/moodlens/moodlens/internal/domain"
	"github.com/moodlens/moodlens/internal/provider"
)

// labelMap remaps DeepFace's raw emotion vocabulary to the application's.
// Labels absent from the table pass through unchanged after validation.
// DeepFace has no "contempt", so that label is never produced.
var labelMap = map[string]domain.Emotion{
	"angry":    domain.EmotionAnger,
	"happy":    domain.EmotionHappiness,
	"sad":      domain.EmotionSadness,
	"disgust":  domain.EmotionDisgust,
	"fear":     domain.EmotionFear,
	"surprise": domain.EmotionSurprise,
	"neutral":  domain.EmotionNeutral,
}

// Provider implements provider.EmotionProvider using the DeepFace API
type Provider struct {
	client *Client
}

// NewProvider creates a new DeepFace provider
func NewProvider(config Config) *Provider {
	return &Provider{
		client: NewClient(config),
	}
}

// AnalyzeEmotions runs DeepFace emotion analysis and normalizes the result.
// When the backend reports several faces the first one is used.
func (p *Provider) AnalyzeEmotions(ctx context.Context, image []byte) (*provider.Analysis, error) {
	imageBase64 := base64.StdEncoding.EncodeToString(image)

	resp, err := p.client.Analyze(ctx, imageBase64)
	if err != nil {
		return nil, fmt.Errorf("analyze emotions: %w", err)
	}

	if len(resp.Results) == 0 {
		return nil, ErrEmptyResponse
	}

	result := resp.Results[0]

	scores := make(domain.ScoreSet, len(result.Emotion))
	for raw, score := range result.Emotion {
		scores[remapLabel(raw)] = score
	}

	dominant := remapLabel(result.DominantEmotion)
	if result.DominantEmotion == "" {
		dominant = scores.Dominant()
	}

	return &provider.Analysis{
		Dominant: dominant,
		Scores:   scores,
	}, nil
}

// remapLabel translates one raw DeepFace label. An unrecognized raw label
// maps to neutral rather than leaking out of the vocabulary.
func remapLabel(raw string) domain.Emotion {
	if mapped, ok := labelMap[raw]; ok {
		return mapped
	}
	return domain.EmotionNeutral
}

// Ensure Provider implements provider.EmotionProvider
var _ provider.EmotionProvider = (*Provider)(nil)
