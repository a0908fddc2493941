package provider

import (
	"context"

	"github.com/moodlens/moodlens/internal/domain"
)

// EmotionProvider is the boundary to the external emotion classifier.
// Implementations must translate their raw label vocabulary into the
// application's domain.Emotion vocabulary before returning; callers never
// see raw labels like "angry" or "HAPPY".
type EmotionProvider interface {
	// AnalyzeEmotions classifies the image and returns the per-label score
	// map plus the dominant label. Absence of a detectable face is not an
	// error: implementations return a best-effort result for the whole
	// frame. Any returned error means inference itself failed.
	AnalyzeEmotions(ctx context.Context, image []byte) (*Analysis, error)
}

// Analysis is the normalized classifier output for one image. When the
// backend reports several faces, it describes the first one.
type Analysis struct {
	Dominant domain.Emotion  `json:"dominant"`
	Scores   domain.ScoreSet `json:"scores"`
}
