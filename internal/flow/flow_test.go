package flow

import (
	"context"
	"errors"
	"testing"

	"github.com/fadilmartias/careerboost/internal/logging"
	"github.com/fadilmartias/careerboost/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	reply    string
	err      error
	calls    int
	requests []Request
}

func (f *fakeGenerator) Generate(_ context.Context, req Request) (string, error) {
	f.calls++
	f.requests = append(f.requests, req)
	return f.reply, f.err
}

func newRunner(gen Generator) *Runner {
	return NewRunner(gen, logging.Discard())
}

var resumeURI = EncodeDataURI("text/plain", []byte("Go developer, 5 years"))

func TestRunner_RejectsEmptyRequiredInputWithoutCallingModel(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		run  func(r *Runner) error
	}{
		{"mcq empty job title", func(r *Runner) error {
			_, err := r.GenerateMCQTest(ctx, MCQInput{JobTitle: "   "})
			return err
		}},
		{"ats empty job description", func(r *Runner) error {
			_, err := r.ATSScoring(ctx, ATSInput{ResumeDataURI: resumeURI, JobDescription: ""})
			return err
		}},
		{"ats missing resume", func(r *Runner) error {
			_, err := r.ATSScoring(ctx, ATSInput{JobDescription: "Backend role"})
			return err
		}},
		{"ats resume is not a data uri", func(r *Runner) error {
			_, err := r.ATSScoring(ctx, ATSInput{ResumeDataURI: "plain text", JobDescription: "Backend role"})
			return err
		}},
		{"ats blank text resume", func(r *Runner) error {
			_, err := r.ATSScoring(ctx, ATSInput{
				ResumeDataURI:  EncodeDataURI("text/plain", []byte("   \n ")),
				JobDescription: "Go dev",
			})
			return err
		}},
		{"enhancement empty job description", func(r *Runner) error {
			_, err := r.EnhanceResume(ctx, EnhanceInput{ResumeText: "resume", JobDescription: "\n"})
			return err
		}},
		{"enhancement empty resume", func(r *Runner) error {
			_, err := r.EnhanceResume(ctx, EnhanceInput{JobDescription: "role"})
			return err
		}},
		{"interview bad role", func(r *Runner) error {
			_, err := r.MockInterview(ctx, InterviewInput{
				Resume: "r", JobDescription: "jd",
				History: []Message{{Role: "system", Content: "hi"}},
			})
			return err
		}},
		{"interview empty turn", func(r *Runner) error {
			_, err := r.MockInterview(ctx, InterviewInput{
				Resume: "r", JobDescription: "jd",
				History: []Message{{Role: RoleUser, Content: ""}},
			})
			return err
		}},
		{"tutoring empty role", func(r *Runner) error {
			_, err := r.Tutor(ctx, TutoringInput{UserResume: "r"})
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{reply: `{}`}

			err := tt.run(newRunner(gen))

			assert.ErrorIs(t, err, model.ErrInvalidInput)
			assert.Zero(t, gen.calls)
		})
	}
}

func TestRunner_ATSScoring(t *testing.T) {
	gen := &fakeGenerator{reply: `{"score": 82, "areas_for_improvement": "Add metrics", "match_rate_explanation": "Strong Go match"}`}

	out, err := newRunner(gen).ATSScoring(context.Background(), ATSInput{
		ResumeDataURI:  resumeURI,
		JobDescription: "Senior Go engineer",
	})
	require.NoError(t, err)

	assert.Equal(t, 82, out.Score)
	assert.Equal(t, "Add metrics", out.AreasForImprovement)
	assert.Equal(t, "Strong Go match", out.MatchRateExplanation)

	require.Len(t, gen.requests, 1)
	req := gen.requests[0]
	assert.Equal(t, "ats_scoring", req.Flow)
	assert.Contains(t, req.Prompt, "Senior Go engineer")
	require.Len(t, req.Media, 1)
	assert.Equal(t, "text/plain", req.Media[0].MIMEType)
	assert.Equal(t, "Go developer, 5 years", string(req.Media[0].Data))
	assert.Same(t, ATSScoring.Output, req.Schema)
}

func TestRunner_ModelOutputInvalid(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"empty reply", ""},
		{"not json", "Sure! Here is your score: 80"},
		{"missing field", `{"score": 80, "areas_for_improvement": "x"}`},
		{"wrong type", `{"score": "80", "areas_for_improvement": "x", "match_rate_explanation": "y"}`},
		{"fractional score", `{"score": 80.5, "areas_for_improvement": "x", "match_rate_explanation": "y"}`},
		{"score out of range", `{"score": 140, "areas_for_improvement": "x", "match_rate_explanation": "y"}`},
		{"empty required text", `{"score": 80, "areas_for_improvement": " ", "match_rate_explanation": "y"}`},
		{"array instead of object", `[1, 2, 3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{reply: tt.reply}

			out, err := newRunner(gen).ATSScoring(context.Background(), ATSInput{
				ResumeDataURI:  resumeURI,
				JobDescription: "jd",
			})

			assert.ErrorIs(t, err, model.ErrModelOutputInvalid)
			assert.Nil(t, out)
			assert.Equal(t, 1, gen.calls)
		})
	}
}

func TestRunner_GeneratorErrorPropagates(t *testing.T) {
	gen := &fakeGenerator{err: model.ErrModelUnavailable}

	_, err := newRunner(gen).EnhanceResume(context.Background(), EnhanceInput{ResumeText: "r", JobDescription: "jd"})

	assert.ErrorIs(t, err, model.ErrModelUnavailable)
	assert.Equal(t, 1, gen.calls, "no retries")
}

func TestRunner_GeneratorContextError(t *testing.T) {
	gen := &fakeGenerator{err: context.DeadlineExceeded}

	_, err := newRunner(gen).Tutor(context.Background(), TutoringInput{JobRole: "SRE", UserResume: "r"})

	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestRunner_EnhanceResume_AcceptsFencedJSON(t *testing.T) {
	gen := &fakeGenerator{reply: "```json\n{\"enhanced_resume\": \"Better\", \"suggestions\": \"- quantify impact\"}\n```"}

	out, err := newRunner(gen).EnhanceResume(context.Background(), EnhanceInput{ResumeText: "Old", JobDescription: "Platform engineer"})
	require.NoError(t, err)

	assert.Equal(t, "Better", out.EnhancedResume)
	assert.Equal(t, "- quantify impact", out.Suggestions)
	assert.Contains(t, gen.requests[0].Prompt, "Old")
	assert.Contains(t, gen.requests[0].Prompt, "Platform engineer")
	assert.Empty(t, gen.requests[0].Media)
}

func TestRunner_GenerateMCQTest(t *testing.T) {
	gen := &fakeGenerator{reply: `{"questions": [
		{"question": "Binary search complexity?", "options": ["O(n)", "O(log n)", "O(n^2)", "O(1)"], "correct_answer": "O(log n)"},
		{"question": "HTTP idempotent verb?", "options": ["POST", "PUT"], "correct_answer": "PATCH"}
	]}`}

	out, err := newRunner(gen).GenerateMCQTest(context.Background(), MCQInput{JobTitle: "Software Engineer"})
	require.NoError(t, err)

	require.Len(t, out.Questions, 2)
	assert.True(t, out.Questions[0].HasValidAnswer())
	// membership is the caller's invariant, the schema does not enforce it
	assert.False(t, out.Questions[1].HasValidAnswer())

	assert.Contains(t, gen.requests[0].Prompt, "Generate 30 MCQs")
	assert.Contains(t, gen.requests[0].Prompt, "Software Engineer")
}

func TestRunner_GenerateMCQTest_RejectsMalformedQuestions(t *testing.T) {
	replies := []string{
		`{"questions": []}`,
		`{"questions": [{"question": "Q", "options": ["only"], "correct_answer": "only"}]}`,
		`{"questions": [{"question": "Q", "options": "A,B", "correct_answer": "A"}]}`,
		`{"questions": [{"question": "Q", "options": ["A", "B"]}]}`,
	}

	for _, reply := range replies {
		gen := &fakeGenerator{reply: reply}
		_, err := newRunner(gen).GenerateMCQTest(context.Background(), MCQInput{JobTitle: "QA"})
		assert.ErrorIs(t, err, model.ErrModelOutputInvalid, reply)
	}
}

func TestRunner_MockInterview_RendersHistory(t *testing.T) {
	gen := &fakeGenerator{reply: `{"response": "Tell me about a time you scaled a service."}`}

	out, err := newRunner(gen).MockInterview(context.Background(), InterviewInput{
		Resume:         "Resume body",
		JobDescription: "JD body",
		History: []Message{
			{Role: RoleModel, Content: "Welcome! First question: why Go?"},
			{Role: RoleUser, Content: "Simplicity."},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Tell me about a time you scaled a service.", out.Response)

	req := gen.requests[0]
	assert.Contains(t, req.System, "Resume body")
	assert.Contains(t, req.System, "JD body")
	assert.Contains(t, req.Prompt, "model: Welcome! First question: why Go?\nuser: Simplicity.")
}

func TestRunner_MockInterview_EmptyResponseRejected(t *testing.T) {
	gen := &fakeGenerator{reply: `{"response": ""}`}

	_, err := newRunner(gen).MockInterview(context.Background(), InterviewInput{Resume: "r", JobDescription: "jd"})

	assert.ErrorIs(t, err, model.ErrModelOutputInvalid)
	assert.Contains(t, gen.requests[0].Prompt, "first turn")
}

func TestRunner_Tutor(t *testing.T) {
	gen := &fakeGenerator{reply: `{"tutoring_session": "Welcome! Here is your plan."}`}
	r := newRunner(gen)

	out, err := r.Tutor(context.Background(), TutoringInput{JobRole: "Data Engineer", UserResume: "SQL, Python"})
	require.NoError(t, err)
	assert.Equal(t, "Welcome! Here is your plan.", out.TutoringSession)
	assert.Contains(t, gen.requests[0].Prompt, "learning plan")
	assert.NotContains(t, gen.requests[0].Prompt, "session so far")

	_, err = r.Tutor(context.Background(), TutoringInput{
		JobRole:    "Data Engineer",
		UserResume: "SQL, Python",
		History: []Message{
			{Role: RoleModel, Content: "Welcome! Here is your plan."},
			{Role: RoleUser, Content: "What is a data lake?"},
		},
	})
	require.NoError(t, err)
	assert.Contains(t, gen.requests[1].Prompt, "user: What is a data lake?")
}
