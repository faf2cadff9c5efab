package flow

import (
	"context"
	"errors"

	"github.com/fadilmartias/careerboost/internal/logging"
	"github.com/fadilmartias/careerboost/internal/model"
)

// Runner binds the flow definitions to one Generator.
type Runner struct {
	gen Generator
	log logging.Logger
}

func NewRunner(gen Generator, log logging.Logger) *Runner {
	return &Runner{gen: gen, log: log}
}

func (r *Runner) ATSScoring(ctx context.Context, in ATSInput) (*ATSOutput, error) {
	return run(ctx, r, ATSScoring, in)
}

func (r *Runner) EnhanceResume(ctx context.Context, in EnhanceInput) (*EnhanceOutput, error) {
	return run(ctx, r, ResumeEnhancement, in)
}

func (r *Runner) GenerateMCQTest(ctx context.Context, in MCQInput) (*MCQOutput, error) {
	return run(ctx, r, MCQGeneration, in)
}

func (r *Runner) MockInterview(ctx context.Context, in InterviewInput) (*InterviewOutput, error) {
	return run(ctx, r, MockInterview, in)
}

func (r *Runner) Tutor(ctx context.Context, in TutoringInput) (*TutoringOutput, error) {
	return run(ctx, r, Tutoring, in)
}

func run[In Input, Out any](ctx context.Context, r *Runner, def *Definition[In, Out], in In) (*Out, error) {
	out, err := def.Run(ctx, r.gen, in)
	switch {
	case err == nil:
		r.log.Debug(ctx, "flow completed", "flow", def.Name)
	case errors.Is(err, model.ErrInvalidInput):
		r.log.Debug(ctx, "flow input rejected", "flow", def.Name, "error", err)
	default:
		r.log.Error(ctx, "flow failed", "flow", def.Name, "error", err)
	}
	return out, err
}
