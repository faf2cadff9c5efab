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
	"github.com/tidwall/gjson"
	"google.golang.org/genai"
)

var testSchema = &genai.Schema{
	Type:     genai.TypeObject,
	Required: []string{"response"},
	Properties: map[string]*genai.Schema{
		"response": {Type: genai.TypeString, MinLength: genai.Ptr[int64](1)},
	},
}

func TestOpenRouterService_Generate(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"response\":\"hi\"}"}}]}`))
	}))
	defer srv.Close()

	svc := NewOpenRouterServiceWithConfig(srv.URL, "secret", "test/model", 5*time.Second)
	reply, err := svc.Generate(context.Background(), flow.Request{
		Flow:   "mock_interview",
		System: "You are an interviewer.",
		Prompt: "Ask a question.",
		Media:  []flow.Media{{MIMEType: "text/plain", Data: []byte("resume body")}},
		Schema: testSchema,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"response":"hi"}`, reply)

	assert.Equal(t, "test/model", gjson.Get(body, "model").String())
	assert.Equal(t, "system", gjson.Get(body, "messages.0.role").String())
	assert.Contains(t, gjson.Get(body, "messages.1.content").String(), "resume body")
	assert.Equal(t, "mock_interview", gjson.Get(body, "response_format.json_schema.name").String())
	assert.Equal(t, "object", gjson.Get(body, "response_format.json_schema.schema.type").String())
	assert.Equal(t, "string", gjson.Get(body, "response_format.json_schema.schema.properties.response.type").String())
}

func TestOpenRouterService_Generate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "upstream failure", status: http.StatusBadGateway, body: `{"error":{"message":"down"}}`, wantErr: model.ErrModelUnavailable},
		{name: "no choices", status: http.StatusOK, body: `{"choices":[]}`, wantErr: model.ErrModelOutputInvalid},
		{name: "blank content", status: http.StatusOK, body: `{"choices":[{"message":{"content":"  "}}]}`, wantErr: model.ErrModelOutputInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			svc := NewOpenRouterServiceWithConfig(srv.URL, "secret", "test/model", 5*time.Second)
			_, err := svc.Generate(context.Background(), flow.Request{Flow: "f", Prompt: "p", Schema: testSchema})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOpenRouterService_Generate_RejectsBinaryMedia(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	svc := NewOpenRouterServiceWithConfig(srv.URL, "secret", "test/model", 5*time.Second)
	_, err := svc.Generate(context.Background(), flow.Request{
		Flow:   "ats_scoring",
		Prompt: "p",
		Media:  []flow.Media{{MIMEType: "application/pdf", Data: []byte("%PDF")}},
	})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	assert.False(t, called)
}

func TestJSONSchema(t *testing.T) {
	s := &genai.Schema{
		Type:     genai.TypeObject,
		Required: []string{"items"},
		Properties: map[string]*genai.Schema{
			"items": {
				Type:     genai.TypeArray,
				MinItems: genai.Ptr[int64](1),
				Items:    &genai.Schema{Type: genai.TypeInteger, Description: "n"},
			},
		},
	}

	got := JSONSchema(s)

	assert.Equal(t, "object", got["type"])
	assert.Equal(t, false, got["additionalProperties"])
	assert.Equal(t, []string{"items"}, got["required"])
	items := got["properties"].(map[string]any)["items"].(map[string]any)
	assert.Equal(t, "array", items["type"])
	assert.NotContains(t, items, "minItems")
	assert.Equal(t, map[string]any{"type": "integer", "description": "n"}, items["items"])
}
