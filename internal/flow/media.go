package flow

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"github.com/fadilmartias/careerboost/internal/model"
)

// ParseDataURI decodes "data:<mime>[;base64],<payload>".
func ParseDataURI(uri string) (Media, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return Media{}, fmt.Errorf("%w: resume must be a data URI", model.ErrInvalidInput)
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return Media{}, fmt.Errorf("%w: data URI has no payload", model.ErrInvalidInput)
	}

	mimeType, isBase64 := strings.CutSuffix(meta, ";base64")
	if mimeType == "" {
		mimeType = "text/plain"
	}

	var data []byte
	if isBase64 {
		decoded, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return Media{}, fmt.Errorf("%w: data URI payload is not base64: %v", model.ErrInvalidInput, err)
		}
		data = decoded
	} else {
		unescaped, err := url.PathUnescape(payload)
		if err != nil {
			return Media{}, fmt.Errorf("%w: data URI payload: %v", model.ErrInvalidInput, err)
		}
		data = []byte(unescaped)
	}
	if len(data) == 0 {
		return Media{}, fmt.Errorf("%w: data URI payload is empty", model.ErrInvalidInput)
	}

	// drop parameters such as ";charset=utf-8"
	mimeType, _, _ = strings.Cut(mimeType, ";")
	return Media{MIMEType: mimeType, Data: data}, nil
}

func EncodeDataURI(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// IsText reports whether the media can be inlined into a text prompt.
func (m Media) IsText() bool {
	return strings.HasPrefix(m.MIMEType, "text/")
}
