package deepface

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(url string, retries int) *Client {
	cfg := DefaultConfig()
	cfg.BaseURL = url
	cfg.Timeout = 2 * time.Second
	cfg.RetryCount = retries
	return NewClient(cfg)
}

func TestClient_Analyze(t *testing.T) {
	tests := []struct {
		name         string
		serverBody   string
		serverStatus int
		wantErr      bool
		validateResp func(*testing.T, *AnalyzeResponse)
	}{
		{
			name: "results wrapper with single face",
			serverBody: `{"results":[{"region":{"x":10,"y":20,"w":100,"h":100},
				"emotion":{"angry":1.5,"happy":90.2,"neutral":8.3},
				"dominant_emotion":"happy"}]}`,
			serverStatus: http.StatusOK,
			validateResp: func(t *testing.T, resp *AnalyzeResponse) {
				require.Len(t, resp.Results, 1)
				assert.Equal(t, "happy", resp.Results[0].DominantEmotion)
				assert.InDelta(t, 90.2, resp.Results[0].Emotion["happy"], 0.001)
				assert.Equal(t, 10, resp.Results[0].Region.X)
			},
		},
		{
			name: "results wrapper with multiple faces preserves order",
			serverBody: `{"results":[
				{"emotion":{"sad":70.0},"dominant_emotion":"sad"},
				{"emotion":{"happy":80.0},"dominant_emotion":"happy"}]}`,
			serverStatus: http.StatusOK,
			validateResp: func(t *testing.T, resp *AnalyzeResponse) {
				require.Len(t, resp.Results, 2)
				assert.Equal(t, "sad", resp.Results[0].DominantEmotion)
				assert.Equal(t, "happy", resp.Results[1].DominantEmotion)
			},
		},
		{
			name:         "bare single result object",
			serverBody:   `{"emotion":{"neutral":99.0},"dominant_emotion":"neutral"}`,
			serverStatus: http.StatusOK,
			validateResp: func(t *testing.T, resp *AnalyzeResponse) {
				require.Len(t, resp.Results, 1)
				assert.Equal(t, "neutral", resp.Results[0].DominantEmotion)
			},
		},
		{
			name:         "top-level array",
			serverBody:   `[{"emotion":{"fear":55.0},"dominant_emotion":"fear"}]`,
			serverStatus: http.StatusOK,
			validateResp: func(t *testing.T, resp *AnalyzeResponse) {
				require.Len(t, resp.Results, 1)
				assert.Equal(t, "fear", resp.Results[0].DominantEmotion)
			},
		},
		{
			name:         "empty body yields no results",
			serverBody:   `{}`,
			serverStatus: http.StatusOK,
			validateResp: func(t *testing.T, resp *AnalyzeResponse) {
				assert.Empty(t, resp.Results)
			},
		},
		{
			name:         "client error is returned",
			serverBody:   `{"error":"bad image"}`,
			serverStatus: http.StatusBadRequest,
			wantErr:      true,
		},
		{
			name:         "invalid json is an error",
			serverBody:   `{{{`,
			serverStatus: http.StatusOK,
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/analyze", r.URL.Path)

				var req AnalyzeRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, []string{"emotion"}, req.Actions)
				assert.False(t, req.EnforceDetection)

				w.WriteHeader(tt.serverStatus)
				_, _ = w.Write([]byte(tt.serverBody))
			}))
			defer server.Close()

			client := testClient(server.URL, 0)
			resp, err := client.Analyze(context.Background(), "aW1hZ2U=")

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			tt.validateResp(t, resp)
		})
	}
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"results":[{"emotion":{"happy":1},"dominant_emotion":"happy"}]}`))
	}))
	defer server.Close()

	client := testClient(server.URL, 1)
	resp, err := client.Analyze(context.Background(), "aW1hZ2U=")

	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
	require.Len(t, resp.Results, 1)
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	client := testClient(server.URL, 3)
	_, err := client.Analyze(context.Background(), "aW1hZ2U=")

	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCalculateBackoff(t *testing.T) {
	assert.Equal(t, time.Second, calculateBackoff(0))
	assert.Equal(t, time.Second, calculateBackoff(1))
	assert.Equal(t, 2*time.Second, calculateBackoff(2))
	assert.Equal(t, 4*time.Second, calculateBackoff(3))
}
