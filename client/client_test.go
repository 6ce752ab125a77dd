package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"legalgpt-portal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIConfig_URL(t *testing.T) {
	assert.Equal(t, "http://localhost:7860/api/predict", DefaultAPIConfig().URL())
	assert.Equal(t, "http://x/api/predict", APIConfig{BaseURL: "http://x/", Endpoint: "api/predict"}.URL())
}

func TestNew_Defaults(t *testing.T) {
	c := New(APIConfig{})
	assert.Equal(t, DefaultAPIConfig(), c.Config())
}

func TestPredict_Success(t *testing.T) {
	id := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/predict", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-API-Key"))

		var req models.ConsultationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "What is due process?", req.Query)
		assert.Equal(t, 40, req.TopK)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": models.Consultation{
				ID:     id,
				Query:  req.Query,
				Answer: "Fundamental fairness.",
			},
		})
	}))
	defer srv.Close()

	c := New(APIConfig{BaseURL: srv.URL, Endpoint: DefaultEndpoint}, WithAPIKey("secret"))
	got, err := c.Predict(context.Background(), models.ConsultationRequest{
		Query:            "What is due process?",
		GenerationParams: models.DefaultGenerationParams(),
	})
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Fundamental fairness.", got.Answer)
}

func TestPredict_ErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"error":{"code":"INVALID_PARAMETERS","message":"top_k out of range"}}`))
	}))
	defer srv.Close()

	c := New(APIConfig{BaseURL: srv.URL})
	_, err := c.Predict(context.Background(), models.ConsultationRequest{Query: "q"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "INVALID_PARAMETERS", apiErr.Code)
	assert.Contains(t, err.Error(), "top_k out of range")
}

func TestPredict_NonJSONFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(APIConfig{BaseURL: srv.URL}).Predict(context.Background(), models.ConsultationRequest{Query: "q"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
}

func TestPredict_EmptyQuery(t *testing.T) {
	_, err := New(DefaultAPIConfig()).Predict(context.Background(), models.ConsultationRequest{Query: "  "})
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestPredict_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(APIConfig{BaseURL: url}).Predict(context.Background(), models.ConsultationRequest{Query: "q"})
	assert.Error(t, err)
}

func TestPredictStream_Chunks(t *testing.T) {
	id := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("Accept"), "text/event-stream")
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = io.WriteString(w, "event:chunk\ndata:{\"text\":\"Separate \"}\n\n")
		_, _ = io.WriteString(w, "event:chunk\ndata:{\"text\":\"is unequal.\"}\n\n")
		_, _ = io.WriteString(w, "event:done\ndata:{\"id\":\""+id.String()+"\",\"query\":\"Brown?\",\"answer\":\"Separate is unequal.\"}\n\n")
	}))
	defer srv.Close()

	var chunks []string
	c := New(APIConfig{BaseURL: srv.URL})
	got, err := c.PredictStream(context.Background(), models.ConsultationRequest{
		Query:            "Brown?",
		GenerationParams: models.DefaultGenerationParams(),
	}, func(s string) { chunks = append(chunks, s) })
	require.NoError(t, err)

	assert.Equal(t, []string{"Separate ", "is unequal."}, chunks)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Separate is unequal.", got.Answer)
}

func TestPredict_CollectsStreamedAnswer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = io.WriteString(w, "event:chunk\ndata:{\"text\":\"ok\"}\n\nevent:done\ndata:{\"answer\":\"ok\"}\n\n")
	}))
	defer srv.Close()

	got, err := New(APIConfig{BaseURL: srv.URL}).Predict(context.Background(), models.ConsultationRequest{Query: "q"})
	require.NoError(t, err)
	assert.Equal(t, "ok", got.Answer)
}

func TestPredictStream_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		code   string
		target error
	}{
		{
			name: "error event",
			body: "event:chunk\ndata:{\"text\":\"The First \"}\n\nevent:error\ndata:{\"code\":\"STREAM_INTERRUPTED\",\"message\":\"interrupted\"}\n\n",
			code: "STREAM_INTERRUPTED",
		},
		{
			name:   "truncated",
			body:   "event:chunk\ndata:{\"text\":\"The First \"}\n\n",
			target: ErrStreamIncomplete,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/event-stream")
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			var streamed string
			_, err := New(APIConfig{BaseURL: srv.URL}).PredictStream(context.Background(),
				models.ConsultationRequest{Query: "q"}, func(s string) { streamed += s })
			require.Error(t, err)
			assert.Equal(t, "The First ", streamed)

			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
				return
			}
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.code, apiErr.Code)
		})
	}
}
