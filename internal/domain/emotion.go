package domain

// Emotion is one label from the application's closed vocabulary.
type Emotion string

const (
	EmotionAnger     Emotion = "anger"
	EmotionDisgust   Emotion = "disgust"
	EmotionFear      Emotion = "fear"
	EmotionHappiness Emotion = "happiness"
	EmotionSadness   Emotion = "sadness"
	EmotionSurprise  Emotion = "surprise"
	EmotionNeutral   Emotion = "neutral"

	// EmotionError is the sentinel recorded when classification fails
	// internally; it never comes from a provider's vocabulary.
	EmotionError Emotion = "error"
)

// Emotions lists the classifiable labels (the sentinel excluded).
func Emotions() []Emotion {
	return []Emotion{
		EmotionAnger,
		EmotionDisgust,
		EmotionFear,
		EmotionHappiness,
		EmotionSadness,
		EmotionSurprise,
		EmotionNeutral,
	}
}

// IsValid reports whether e is in the closed vocabulary, sentinel included.
func (e Emotion) IsValid() bool {
	switch e {
	case EmotionAnger, EmotionDisgust, EmotionFear, EmotionHappiness,
		EmotionSadness, EmotionSurprise, EmotionNeutral, EmotionError:
		return true
	}
	return false
}

func (e Emotion) String() string {
	return string(e)
}

// ScoreSet maps emotion labels to non-negative scores for one analysis.
type ScoreSet map[Emotion]float64

// Dominant returns the highest-scoring label. When the set is empty it
// returns EmotionNeutral. Ties keep whichever label was seen first in the
// stable vocabulary order, matching how providers report their own winner.
func (s ScoreSet) Dominant() Emotion {
	if len(s) == 0 {
		return EmotionNeutral
	}

	best := Emotion("")
	bestScore := -1.0
	for _, label := range Emotions() {
		score, ok := s[label]
		if !ok {
			continue
		}
		if score > bestScore {
			best = label
			bestScore = score
		}
	}
	if best == "" {
		return EmotionNeutral
	}
	return best
}
