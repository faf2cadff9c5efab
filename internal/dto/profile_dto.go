package dto

import (
	"strings"

	"github.com/fadilmartias/careerboost/internal/model"
)

type UpdateProfileRequest struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	ResumeText        string `json:"resume_text"`
	ProfilePictureURL string `json:"profile_picture_url"`
}

func (r UpdateProfileRequest) Validate() error {
	errs := map[string]string{}
	if strings.TrimSpace(r.Name) == "" {
		errs["name"] = "Name cannot be empty"
	}
	if strings.TrimSpace(r.Email) == "" {
		errs["email"] = "Email cannot be empty"
	}
	return formError(errs)
}

func (r UpdateProfileRequest) Profile() model.Profile {
	return model.Profile{
		Name:              r.Name,
		Email:             r.Email,
		ResumeText:        r.ResumeText,
		ProfilePictureURL: r.ProfilePictureURL,
	}
}

type UpdateScoresRequest struct {
	Scores model.ScoreMap `json:"scores"`
}

type ScoresResponse struct {
	Scores model.ScoreMap `json:"scores"`
}
