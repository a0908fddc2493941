package domain

import (
	"testing"
	"time"
)

func TestScoreSet_Dominant(t *testing.T) {
	tests := []struct {
		name   string
		scores ScoreSet
		want   Emotion
	}{
		{
			name: "clear winner",
			scores: ScoreSet{
				EmotionHappiness: 45.0,
				EmotionSadness:   20.0,
				EmotionNeutral:   25.0,
				EmotionAnger:     10.0,
			},
			want: EmotionHappiness,
		},
		{
			name:   "empty set falls back to neutral",
			scores: ScoreSet{},
			want:   EmotionNeutral,
		},
		{
			name: "tie keeps first label in vocabulary order",
			scores: ScoreSet{
				EmotionFear:    30.0,
				EmotionDisgust: 30.0,
			},
			want: EmotionDisgust,
		},
		{
			name:   "single label",
			scores: ScoreSet{EmotionSurprise: 99.9},
			want:   EmotionSurprise,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.scores.Dominant(); got != tt.want {
				t.Errorf("Dominant() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEmotion_IsValid(t *testing.T) {
	for _, e := range Emotions() {
		if !e.IsValid() {
			t.Errorf("%s should be valid", e)
		}
	}
	if !EmotionError.IsValid() {
		t.Error("sentinel label should be valid")
	}
	if Emotion("angry").IsValid() {
		t.Error("raw provider label must not be in the vocabulary")
	}
	if Emotion("contempt").IsValid() {
		t.Error("contempt is not producible")
	}
}

func TestNewPrediction(t *testing.T) {
	now := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

	p := NewPrediction("", "uploads/x.png", EmotionNeutral, now)
	if p.Name != DefaultName {
		t.Errorf("Name = %q, want %q", p.Name, DefaultName)
	}
	if p.Timestamp != "2025-03-14 15:09:26" {
		t.Errorf("Timestamp = %q", p.Timestamp)
	}

	p = NewPrediction("Ada", "uploads/y.jpg", EmotionError, now)
	if p.Name != "Ada" || p.PredictedEmotion != EmotionError {
		t.Errorf("unexpected record: %+v", p)
	}
}
