package dto

import (
	"github.com/fadilmartias/careerboost/internal/flow"
	"github.com/fadilmartias/careerboost/internal/model"
)

// ATSRequest takes the resume either as a data URI (any document type the
// model accepts) or as plain text. With neither, the profile resume is used.
type ATSRequest struct {
	ResumeDataURI  string `json:"resume_data_uri"`
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description"`
}

type MCQSubmitRequest struct {
	JobTitle  string             `json:"job_title"`
	Questions []flow.MCQQuestion `json:"questions"`
	Answers   []string           `json:"answers"`
}

type MCQResultResponse struct {
	Correct    int            `json:"correct"`
	Total      int            `json:"total"`
	Percentage int            `json:"percentage"`
	Awarded    model.ScoreMap `json:"awarded"`
	Scores     model.ScoreMap `json:"scores"`
}
