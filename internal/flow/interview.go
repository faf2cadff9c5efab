package flow

import "google.golang.org/genai"

// InterviewInput carries the whole conversation; the flow keeps no state
// between turns.
type InterviewInput struct {
	Resume         string    `json:"resume"`
	JobDescription string    `json:"job_description"`
	History        []Message `json:"history"`
}

func (in InterviewInput) Validate() error {
	return firstError(
		required("resume", in.Resume),
		required("job_description", in.JobDescription),
		validateHistory(in.History),
	)
}

type InterviewOutput struct {
	Response string `json:"response"`
}

var MockInterview = &Definition[InterviewInput, InterviewOutput]{
	Name:   "mock_interview",
	System: mustPrompt("mock_interview_system.tmpl"),
	Prompt: mustPrompt("mock_interview.tmpl"),
	Output: object([]string{"response"}, map[string]*genai.Schema{
		"response": text("The interviewer's next question or reply."),
	}),
}
