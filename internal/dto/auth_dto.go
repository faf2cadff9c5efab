package dto

import (
	"strings"

	"github.com/fadilmartias/careerboost/internal/model"
	"github.com/fadilmartias/careerboost/internal/util"
)

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r SignupRequest) Validate() error {
	errs := map[string]string{}
	if strings.TrimSpace(r.Name) == "" {
		errs["name"] = "Name is required"
	}
	if strings.TrimSpace(r.Email) == "" {
		errs["email"] = "Email is required"
	}
	if r.Password == "" {
		errs["password"] = "Password is required"
	}
	return formError(errs)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	errs := map[string]string{}
	if strings.TrimSpace(r.Email) == "" {
		errs["email"] = "Email is required"
	}
	if r.Password == "" {
		errs["password"] = "Password is required"
	}
	return formError(errs)
}

type SessionResponse struct {
	IsAuthenticated bool   `json:"is_authenticated"`
	UserID          string `json:"user_id,omitempty"`
}

type UserResponse struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Email             string         `json:"email"`
	ResumeText        string         `json:"resume_text"`
	ProfilePictureURL string         `json:"profile_picture_url"`
	Scores            model.ScoreMap `json:"scores"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:                u.ID.String(),
		Name:              u.Name,
		Email:             u.Email,
		ResumeText:        u.ResumeText,
		ProfilePictureURL: u.ProfilePictureURL,
		Scores:            model.DefaultScores().Merge(u.Scores.Data()),
	}
}

func formError(errs map[string]string) error {
	if len(errs) == 0 {
		return nil
	}
	return util.NewFormError("Validation failed", errs)
}
