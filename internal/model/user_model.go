package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type User struct {
	ID                uuid.UUID                    `gorm:"type:uuid;primaryKey" json:"id"`
	Name              string                       `gorm:"type:varchar(255)" json:"name"`
	Email             string                       `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	PasswordDigest    string                       `gorm:"type:text" json:"-"`
	ResumeText        string                       `gorm:"type:text" json:"resume_text"`
	ProfilePictureURL string                       `gorm:"type:text" json:"profile_picture_url"`
	Scores            datatypes.JSONType[ScoreMap] `json:"scores"`
	CreatedAt         time.Time                    `json:"created_at"`
	UpdatedAt         time.Time                    `json:"updated_at"`
}

func (u *User) TableName() string {
	return "users"
}

// Profile holds the user-editable fields replaced as a unit by a profile update.
type Profile struct {
	Name              string
	Email             string
	ResumeText        string
	ProfilePictureURL string
}
