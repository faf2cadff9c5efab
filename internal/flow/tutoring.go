package flow

import "google.golang.org/genai"

// TutoringInput starts a session when History is empty and continues it
// otherwise.
type TutoringInput struct {
	JobRole    string    `json:"job_role"`
	UserResume string    `json:"user_resume"`
	History    []Message `json:"history"`
}

func (in TutoringInput) Validate() error {
	return firstError(
		required("job_role", in.JobRole),
		required("user_resume", in.UserResume),
		validateHistory(in.History),
	)
}

type TutoringOutput struct {
	TutoringSession string `json:"tutoring_session"`
}

var Tutoring = &Definition[TutoringInput, TutoringOutput]{
	Name:   "tutoring",
	Prompt: mustPrompt("tutoring.tmpl"),
	Output: object([]string{"tutoring_session"}, map[string]*genai.Schema{
		"tutoring_session": text("The tutor's response: learning plan and first lesson, or the next step."),
	}),
}
