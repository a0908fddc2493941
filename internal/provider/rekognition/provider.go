package rekognition

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"

	"github.com/moodlens/moodlens/internal/domain"
	"github.com/moodlens/moodlens/internal/provider"
)

const (
	// maxImageSize is the maximum image size supported by AWS Rekognition (5MB)
	maxImageSize = 5 * 1024 * 1024
	// minImageSize is the minimum image size for valid processing
	minImageSize = 100
)

// labelMap remaps Rekognition's emotion vocabulary to the application's.
// CALM is Rekognition's neutral; CONFUSED and UNKNOWN have no counterpart
// in the target vocabulary and fold into neutral.
var labelMap = map[types.EmotionName]domain.Emotion{
	types.EmotionNameAngry:     domain.EmotionAnger,
	types.EmotionNameHappy:     domain.EmotionHappiness,
	types.EmotionNameSad:       domain.EmotionSadness,
	types.EmotionNameDisgusted: domain.EmotionDisgust,
	types.EmotionNameFear:      domain.EmotionFear,
	types.EmotionNameSurprised: domain.EmotionSurprise,
	types.EmotionNameCalm:      domain.EmotionNeutral,
	types.EmotionNameConfused:  domain.EmotionNeutral,
	types.EmotionNameUnknown:   domain.EmotionNeutral,
}

// Provider implements provider.EmotionProvider using AWS Rekognition
type Provider struct {
	client *Client
}

// Ensure Provider implements provider.EmotionProvider at compile time
var _ provider.EmotionProvider = (*Provider)(nil)

// NewProvider creates a new Rekognition emotion provider
func NewProvider(ctx context.Context, cfg Config) (*Provider, error) {
	client, err := NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create rekognition client: %w", err)
	}

	return &Provider{client: client}, nil
}

// validateImage checks if image data is valid for Rekognition processing
func validateImage(image []byte) error {
	if len(image) < minImageSize {
		return fmt.Errorf("%w: image too small (%d bytes, minimum %d)", ErrInvalidImage, len(image), minImageSize)
	}
	if len(image) > maxImageSize {
		return fmt.Errorf("%w: image too large (%d bytes, maximum %d)", ErrInvalidImage, len(image), maxImageSize)
	}
	return nil
}

// AnalyzeEmotions runs DetectFaces requesting emotion attributes only.
// An image without a detectable face is not an error: it yields a
// best-effort neutral result so the pipeline can still complete.
func (p *Provider) AnalyzeEmotions(ctx context.Context, image []byte) (*provider.Analysis, error) {
	if err := validateImage(image); err != nil {
		return nil, err
	}

	input := &rekognition.DetectFacesInput{
		Image: &types.Image{
			Bytes: image,
		},
		Attributes: []types.Attribute{types.AttributeEmotions},
	}

	output, err := p.client.rekognition.DetectFaces(ctx, input)
	if err != nil {
		if isAccessDenied(err) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
		}
		return nil, fmt.Errorf("detect faces: %w", err)
	}

	if len(output.FaceDetails) == 0 {
		return &provider.Analysis{
			Dominant: domain.EmotionNeutral,
			Scores:   domain.ScoreSet{domain.EmotionNeutral: 100.0},
		}, nil
	}

	// Rekognition orders faces by prominence; report on the first.
	return analysisFromFace(output.FaceDetails[0]), nil
}

// analysisFromFace converts one face's emotion list into the normalized
// shape. Several raw labels can fold into the same target label; their
// confidences accumulate.
func analysisFromFace(face types.FaceDetail) *provider.Analysis {
	scores := make(domain.ScoreSet, len(face.Emotions))
	dominant := domain.EmotionNeutral
	best := float32(-1)

	for _, emotion := range face.Emotions {
		if emotion.Confidence == nil {
			continue
		}

		label := labelMap[emotion.Type]
		if label == "" {
			label = domain.EmotionNeutral
		}
		scores[label] += float64(*emotion.Confidence)

		if *emotion.Confidence > best {
			best = *emotion.Confidence
			dominant = label
		}
	}

	if len(scores) == 0 {
		scores[domain.EmotionNeutral] = 100.0
	}

	return &provider.Analysis{
		Dominant: dominant,
		Scores:   scores,
	}
}
