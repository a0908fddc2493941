package emotion

import (
	"context"
	"fmt"

	"github.com/moodlens/moodlens/internal/config"
	"github.com/moodlens/moodlens/internal/provider"
	"github.com/moodlens/moodlens/internal/provider/deepface"
	"github.com/moodlens/moodlens/internal/provider/rekognition"
	"github.com/moodlens/moodlens/internal/provider/stub"
)

// ProviderType defines supported emotion classifier backends
type ProviderType string

const (
	// ProviderTypeStub is the fixed-result classifier (no inference backend)
	ProviderTypeStub ProviderType = "stub"
	// ProviderTypeDeepFace is the DeepFace HTTP provider (local, for dev/test)
	ProviderTypeDeepFace ProviderType = "deepface"
	// ProviderTypeRekognition is the AWS Rekognition provider (cloud, for prod)
	ProviderTypeRekognition ProviderType = "rekognition"
)

// NewProvider creates an EmotionProvider based on configuration. The choice
// is made once at startup; call sites never probe for a backend.
//
// Environment variables:
//   - EMOTION_PROVIDER: "stub", "deepface" or "rekognition" (default: "stub")
//   - DEEPFACE_URL: DeepFace API URL (default: "http://localhost:5000")
//   - AWS_REGION: AWS region for Rekognition (default: "us-east-1")
//   - AWS credentials via the AWS SDK credential chain
func NewProvider(ctx context.Context, cfg *config.Config) (provider.EmotionProvider, error) {
	providerType := ProviderType(cfg.EmotionProvider)

	switch providerType {
	case ProviderTypeRekognition:
		return createRekognitionProvider(ctx, cfg)

	case ProviderTypeDeepFace:
		return createDeepFaceProvider(cfg), nil

	case ProviderTypeStub, "":
		// Default to the stub so the pipeline works with no backend at all
		return stub.New(), nil

	default:
		return nil, fmt.Errorf("unknown provider type: %s (supported: %s, %s, %s)",
			cfg.EmotionProvider, ProviderTypeStub, ProviderTypeDeepFace, ProviderTypeRekognition)
	}
}

func createRekognitionProvider(ctx context.Context, cfg *config.Config) (provider.EmotionProvider, error) {
	rekogConfig := rekognition.Config{
		Region: cfg.AWSRegion,
	}
	if rekogConfig.Region == "" {
		rekogConfig = rekognition.DefaultConfig()
	}

	prov, err := rekognition.NewProvider(ctx, rekogConfig)
	if err != nil {
		return nil, fmt.Errorf("create rekognition provider: %w", err)
	}

	return prov, nil
}

func createDeepFaceProvider(cfg *config.Config) provider.EmotionProvider {
	deepfaceConfig := deepface.DefaultConfig()
	if cfg.DeepFaceURL != "" {
		deepfaceConfig.BaseURL = cfg.DeepFaceURL
	}

	return deepface.NewProvider(deepfaceConfig)
}
