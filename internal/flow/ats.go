package flow

import (
	"fmt"
	"strings"

	"github.com/fadilmartias/careerboost/internal/model"
	"google.golang.org/genai"
)

type ATSInput struct {
	ResumeDataURI  string `json:"resume_data_uri"`
	JobDescription string `json:"job_description"`
}

func (in ATSInput) Validate() error {
	if err := firstError(
		required("resume_data_uri", in.ResumeDataURI),
		required("job_description", in.JobDescription),
	); err != nil {
		return err
	}
	m, err := ParseDataURI(in.ResumeDataURI)
	if err != nil {
		return err
	}
	if m.IsText() && strings.TrimSpace(string(m.Data)) == "" {
		return fmt.Errorf("%w: resume_data_uri holds no text", model.ErrInvalidInput)
	}
	return nil
}

func (in ATSInput) Media() ([]Media, error) {
	m, err := ParseDataURI(in.ResumeDataURI)
	if err != nil {
		return nil, err
	}
	return []Media{m}, nil
}

type ATSOutput struct {
	Score                int    `json:"score"`
	AreasForImprovement  string `json:"areas_for_improvement"`
	MatchRateExplanation string `json:"match_rate_explanation"`
}

var ATSScoring = &Definition[ATSInput, ATSOutput]{
	Name:   "ats_scoring",
	Prompt: mustPrompt("ats_scoring.tmpl"),
	Output: object([]string{"score", "areas_for_improvement", "match_rate_explanation"}, map[string]*genai.Schema{
		"score": {
			Type:        genai.TypeInteger,
			Description: "ATS compatibility between the resume and the job description, 0-100.",
			Minimum:     genai.Ptr[float64](0),
			Maximum:     genai.Ptr[float64](100),
		},
		"areas_for_improvement":  text("Specific areas of the resume to improve to match the job description."),
		"match_rate_explanation": text("Detailed explanation of the match rate and how it was determined."),
	}),
}
