package flow

import "google.golang.org/genai"

type EnhanceInput struct {
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description"`
}

func (in EnhanceInput) Validate() error {
	return firstError(
		required("resume_text", in.ResumeText),
		required("job_description", in.JobDescription),
	)
}

type EnhanceOutput struct {
	EnhancedResume string `json:"enhanced_resume"`
	Suggestions    string `json:"suggestions"`
}

var ResumeEnhancement = &Definition[EnhanceInput, EnhanceOutput]{
	Name:   "resume_enhancement",
	Prompt: mustPrompt("resume_enhancement.tmpl"),
	Output: object([]string{"enhanced_resume", "suggestions"}, map[string]*genai.Schema{
		"enhanced_resume": text("The enhanced resume text."),
		"suggestions":     text("Suggestions on keywords, formatting and content."),
	}),
}
