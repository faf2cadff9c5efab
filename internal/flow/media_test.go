package flow

import (
	"testing"

	"github.com/fadilmartias/careerboost/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDataURI(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		wantMIME string
		wantData string
	}{
		{"base64 text", "data:text/plain;base64,aGVsbG8=", "text/plain", "hello"},
		{"base64 with charset", "data:text/plain;charset=utf-8;base64,aGVsbG8=", "text/plain", "hello"},
		{"pdf", "data:application/pdf;base64,JVBERi0=", "application/pdf", "%PDF-"},
		{"percent encoded", "data:,hello%20world", "text/plain", "hello world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseDataURI(tt.uri)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMIME, m.MIMEType)
			assert.Equal(t, tt.wantData, string(m.Data))
		})
	}
}

func TestParseDataURI_Invalid(t *testing.T) {
	uris := []string{
		"",
		"hello",
		"data:text/plain;base64",
		"data:text/plain;base64,@@@",
		"data:text/plain;base64,",
	}

	for _, uri := range uris {
		_, err := ParseDataURI(uri)
		assert.ErrorIs(t, err, model.ErrInvalidInput, uri)
	}
}

func TestEncodeDataURI_RoundTrip(t *testing.T) {
	uri := EncodeDataURI("text/plain", []byte("résumé"))

	m, err := ParseDataURI(uri)
	require.NoError(t, err)
	assert.Equal(t, "résumé", string(m.Data))
	assert.True(t, m.IsText())
}
