package stub

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodlens/moodlens/internal/domain"
)

func TestAnalyzeEmotions(t *testing.T) {
	analysis, err := New().AnalyzeEmotions(context.Background(), []byte("any bytes"))
	require.NoError(t, err)

	assert.Equal(t, domain.EmotionHappiness, analysis.Dominant)
	assert.InDelta(t, 45.0, analysis.Scores[domain.EmotionHappiness], 0.001)
	assert.InDelta(t, 25.0, analysis.Scores[domain.EmotionNeutral], 0.001)
	assert.Len(t, analysis.Scores, 4)

	for label := range analysis.Scores {
		assert.True(t, label.IsValid())
	}
}

func TestAnalyzeEmotions_Deterministic(t *testing.T) {
	a, err := New().AnalyzeEmotions(context.Background(), []byte("one"))
	require.NoError(t, err)
	b, err := New().AnalyzeEmotions(context.Background(), []byte("two"))
	require.NoError(t, err)

	assert.Equal(t, a.Dominant, b.Dominant)
	assert.Equal(t, a.Scores, b.Scores)
}
