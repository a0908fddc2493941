package domain

import "time"

// TimestampLayout is the fixed textual format stored with every prediction.
const TimestampLayout = "2006-01-02 15:04:05"

// DefaultName is used when a submission carries no subject name.
const DefaultName = "Anonymous"

// Source identifies how the image bytes reached the service.
type Source string

const (
	SourceUpload Source = "upload"
	SourceWebcam Source = "webcam"
)

// ImageSubmission is the transient per-request input to the pipeline.
// Exactly one of FileData (upload) or DataURL (webcam) is set, matching
// Source.
type ImageSubmission struct {
	Source   Source
	Name     string
	Filename string // declared filename, upload only
	FileData []byte // raw multipart bytes, upload only
	DataURL  string // base64 data URL, webcam only
}

// StoredImage is the on-disk result of ingress normalization.
type StoredImage struct {
	Filename string
	Path     string
}

// Prediction is the durable record appended once per completed request.
type Prediction struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Timestamp        string  `json:"timestamp"`
	ImagePath        string  `json:"image_path"`
	PredictedEmotion Emotion `json:"predicted_emotion"`
}

// NewPrediction captures the append-time timestamp in the fixed layout.
func NewPrediction(name, imagePath string, emotion Emotion, now time.Time) *Prediction {
	if name == "" {
		name = DefaultName
	}
	return &Prediction{
		Name:             name,
		Timestamp:        now.Format(TimestampLayout),
		ImagePath:        imagePath,
		PredictedEmotion: emotion,
	}
}
