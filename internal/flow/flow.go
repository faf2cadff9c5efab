// Package flow runs schema-bound prompts against a remote language model.
//
// A flow is declared once as a Definition: prompt templates, the input type
// (which validates itself) and the output schema. Run validates the input,
// renders the templates, calls the Generator and accepts the reply only if
// it satisfies the output schema in full.
package flow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/fadilmartias/careerboost/internal/model"
	"google.golang.org/genai"
)

// Media is a document sent alongside the prompt text.
type Media struct {
	MIMEType string
	Data     []byte
}

// Request is what a Generator receives for one model call.
type Request struct {
	Flow   string
	System string
	Prompt string
	Media  []Media
	Schema *genai.Schema
}

// Generator calls the remote model and returns its raw reply text.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Input is a flow request payload able to check itself before any model call.
type Input interface {
	Validate() error
}

// MediaInput is implemented by inputs that embed documents.
type MediaInput interface {
	Media() ([]Media, error)
}

type Definition[In Input, Out any] struct {
	Name   string
	System *template.Template
	Prompt *template.Template
	Output *genai.Schema
}

// Run executes the flow once. Errors wrap model.ErrInvalidInput,
// model.ErrModelOutputInvalid or whatever the Generator returned.
func (d *Definition[In, Out]) Run(ctx context.Context, gen Generator, in In) (*Out, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", d.Name, err)
	}

	req := Request{Flow: d.Name, Schema: d.Output}
	var err error
	if req.System, err = render(d.System, in); err != nil {
		return nil, fmt.Errorf("%s: render system prompt: %w", d.Name, err)
	}
	if req.Prompt, err = render(d.Prompt, in); err != nil {
		return nil, fmt.Errorf("%s: render prompt: %w", d.Name, err)
	}
	if mi, ok := any(in).(MediaInput); ok {
		if req.Media, err = mi.Media(); err != nil {
			return nil, fmt.Errorf("%s: %w", d.Name, err)
		}
	}

	reply, err := gen.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.Name, err)
	}

	out, err := decode[Out](reply, d.Output)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.Name, err)
	}
	return out, nil
}

func render(tmpl *template.Template, data any) (string, error) {
	if tmpl == nil {
		return "", nil
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func decode[Out any](reply string, schema *genai.Schema) (*Out, error) {
	cleaned := CleanJSON(reply)
	if cleaned == "" {
		return nil, fmt.Errorf("%w: empty reply", model.ErrModelOutputInvalid)
	}
	if err := ValidateReply(cleaned, schema); err != nil {
		return nil, err
	}
	var out Out
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrModelOutputInvalid, err)
	}
	return &out, nil
}
