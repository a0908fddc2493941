package deepface

import (
	"bytes"
	"encoding/json"
)

// AnalyzeRequest for POST /analyze
type AnalyzeRequest struct {
	Img              string   `json:"img"`     // base64 encoded image
	Actions          []string `json:"actions"` // ["emotion"]
	Detector         string   `json:"detector_backend"`
	EnforceDetection bool     `json:"enforce_detection"`
}

// AnalyzeResult is one analyzed face.
type AnalyzeResult struct {
	Region          FacialArea         `json:"region"`
	Emotion         map[string]float64 `json:"emotion"`
	DominantEmotion string             `json:"dominant_emotion"`
}

type FacialArea struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// AnalyzeResponse from POST /analyze. Depending on the serving layer the
// body is {"results": [...]}, a bare single result object, or a top-level
// array; UnmarshalJSON accepts all three and keeps the backend's ordering.
type AnalyzeResponse struct {
	Results []AnalyzeResult `json:"results"`
}

func (r *AnalyzeResponse) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)

	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(trimmed, &r.Results)
	}

	type wrapped AnalyzeResponse
	var w wrapped
	if err := json.Unmarshal(trimmed, &w); err != nil {
		return err
	}
	if len(w.Results) > 0 {
		r.Results = w.Results
		return nil
	}

	// No results field: try the body as a single result.
	var single AnalyzeResult
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return err
	}
	if len(single.Emotion) > 0 || single.DominantEmotion != "" {
		r.Results = []AnalyzeResult{single}
	}
	return nil
}
