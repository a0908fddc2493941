package docs

import (
	"github.com/go-swagno/swagno"
	"github.com/go-swagno/swagno/components/endpoint"
	"github.com/go-swagno/swagno/components/http/response"
	"github.com/go-swagno/swagno/components/mime"
	"github.com/go-swagno/swagno/components/parameter"
)

// AnalyzeResponse represents the response for a completed analysis
type AnalyzeResponse struct {
	Success   bool   `json:"success" example:"true"`
	Emotion   string `json:"emotion" example:"happiness"`
	Name      string `json:"name" example:"Alice"`
	Timestamp string `json:"timestamp" example:"2026-08-30 12:00:00"`
}

// PredictionData represents a stored prediction record
type PredictionData struct {
	ID               int64  `json:"id" example:"42"`
	Name             string `json:"name" example:"Alice"`
	Timestamp        string `json:"timestamp" example:"2026-08-30 12:00:00"`
	ImagePath        string `json:"image_path" example:"uploads/20260830_120000_a1b2c3d4_selfie.jpg"`
	PredictedEmotion string `json:"predicted_emotion" example:"happiness"`
}

// PredictionsResponse lists stored prediction records, newest first
type PredictionsResponse struct {
	Predictions []PredictionData `json:"predictions"`
}

// HealthResponse represents a health probe response
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Version string `json:"version,omitempty" example:"0.1.0"`
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error" example:"Invalid image source"`
}

// NewSwagger creates and configures the Swagger documentation
func NewSwagger() *swagno.Swagger {
	sw := swagno.New(swagno.Config{
		Title:       "MoodLens Emotion Analysis API",
		Version:     "v0.1.0",
		Description: "Photo emotion classification service: accepts uploaded photos or webcam frames, classifies the dominant facial emotion and records every prediction",
		Host:        "localhost:3000",
	})

	endpoints := []*endpoint.EndPoint{
		// POST /analyze - run one photo through the pipeline
		endpoint.New(
			endpoint.POST,
			"/analyze",
			endpoint.WithTags("Analysis"),
			endpoint.WithSummary("Analyze a photo"),
			endpoint.WithDescription("Accepts a multipart form with source=upload (file part) or source=webcam (base64 data URL in the image field), stores the image, classifies the dominant emotion and appends a prediction record."),
			endpoint.WithConsume([]mime.MIME{mime.MIME("multipart/form-data")}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(AnalyzeResponse{}, "200", "Analysis completed"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Error: "Invalid image source"}, "400", "Bad Request"),
				response.New(ErrorResponse{Error: "Image exceeds the maximum allowed size"}, "413", "Payload Too Large"),
				response.New(ErrorResponse{Error: "Could not persist prediction record"}, "500", "Internal Server Error"),
			}),
		),

		// GET /predictions - prediction history
		endpoint.New(
			endpoint.GET,
			"/predictions",
			endpoint.WithTags("Analysis"),
			endpoint.WithSummary("List recent predictions"),
			endpoint.WithDescription("Returns the most recent prediction records, newest first"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithParams(
				parameter.IntParam("limit", parameter.Query, parameter.WithDescription("Maximum number of records (1-100, default 20)")),
			),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(PredictionsResponse{}, "200", "Records retrieved"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Error: "An unexpected error occurred"}, "500", "Internal Server Error"),
			}),
		),

		// GET /health - liveness probe
		endpoint.New(
			endpoint.GET,
			"/health",
			endpoint.WithTags("Health"),
			endpoint.WithSummary("Health check"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(HealthResponse{}, "200", "Service is healthy"),
			}),
		),

		// GET /ready - readiness probe
		endpoint.New(
			endpoint.GET,
			"/ready",
			endpoint.WithTags("Health"),
			endpoint.WithSummary("Readiness check"),
			endpoint.WithDescription("Reports ready only when the database answers a ping"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(HealthResponse{}, "200", "Service is ready"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(HealthResponse{Status: "database unavailable"}, "503", "Service Unavailable"),
			}),
		),
	}

	sw.AddEndpoints(endpoints)

	return sw
}
