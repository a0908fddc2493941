package emotion

import (
	"context"
	"strings"
	"testing"

	"github.com/moodlens/moodlens/internal/config"
	"github.com/moodlens/moodlens/internal/provider/deepface"
	"github.com/moodlens/moodlens/internal/provider/stub"
)

func TestNewProvider_Stub(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name            string
		emotionProvider string
	}{
		{name: "explicit stub provider", emotionProvider: "stub"},
		{name: "empty provider defaults to stub", emotionProvider: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{EmotionProvider: tt.emotionProvider}

			prov, err := NewProvider(ctx, cfg)
			if err != nil {
				t.Fatalf("NewProvider() error = %v", err)
			}

			if _, ok := prov.(*stub.Provider); !ok {
				t.Errorf("NewProvider() returned type %T, want *stub.Provider", prov)
			}
		})
	}
}

func TestNewProvider_DeepFace(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		deepFaceURL string
	}{
		{name: "default URL", deepFaceURL: ""},
		{name: "custom URL", deepFaceURL: "http://custom-host:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{
				EmotionProvider: "deepface",
				DeepFaceURL:     tt.deepFaceURL,
			}

			prov, err := NewProvider(ctx, cfg)
			if err != nil {
				t.Fatalf("NewProvider() error = %v", err)
			}

			if _, ok := prov.(*deepface.Provider); !ok {
				t.Errorf("NewProvider() returned type %T, want *deepface.Provider", prov)
			}
		})
	}
}

func TestNewProvider_Unknown(t *testing.T) {
	cfg := &config.Config{EmotionProvider: "printed_photo"}

	_, err := NewProvider(context.Background(), cfg)
	if err == nil {
		t.Fatal("NewProvider() expected error for unknown provider type")
	}
	if !strings.Contains(err.Error(), "unknown provider type") {
		t.Errorf("unexpected error: %v", err)
	}
}
