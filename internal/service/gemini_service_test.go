package service

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fadilmartias/careerboost/internal/flow"
	"github.com/fadilmartias/careerboost/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func newTestGemini(t *testing.T, handler http.HandlerFunc) *GeminiService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc, err := NewGeminiServiceWithConfig(context.Background(), &genai.ClientConfig{
		APIKey:      "test-key",
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: srv.URL},
	}, "gemini-test", 5*time.Second)
	require.NoError(t, err)
	return svc
}

func TestGeminiService_Generate(t *testing.T) {
	var body string
	svc := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "gemini-test:generateContent")
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"score\":80}"}]},"finishReason":"STOP"}]}`))
	})

	reply, err := svc.Generate(context.Background(), flow.Request{
		Flow:   "ats_scoring",
		Prompt: "Score this resume.",
		Media:  []flow.Media{{MIMEType: "application/pdf", Data: []byte("%PDF-1.4")}},
		Schema: testSchema,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"score":80}`, reply)
	assert.Contains(t, body, "Score this resume.")
	assert.Contains(t, body, "application/pdf")
	assert.Contains(t, body, "application/json")
}

func TestGeminiService_Generate_Errors(t *testing.T) {
	t.Run("api error", func(t *testing.T) {
		svc := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"error":{"code":503,"message":"overloaded","status":"UNAVAILABLE"}}`))
		})
		_, err := svc.Generate(context.Background(), flow.Request{Flow: "f", Prompt: "p"})
		assert.ErrorIs(t, err, model.ErrModelUnavailable)
	})

	t.Run("no candidates", func(t *testing.T) {
		svc := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"candidates":[]}`))
		})
		_, err := svc.Generate(context.Background(), flow.Request{Flow: "f", Prompt: "p"})
		assert.ErrorIs(t, err, model.ErrModelOutputInvalid)
	})
}

func TestValidateGenerateResponse(t *testing.T) {
	assert.Error(t, validateGenerateResponse(nil))
	assert.Error(t, validateGenerateResponse(&genai.GenerateContentResponse{}))
	assert.Error(t, validateGenerateResponse(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{}}},
	}))
	assert.NoError(t, validateGenerateResponse(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: genai.NewContentFromText("ok", genai.RoleModel)}},
	}))
}
