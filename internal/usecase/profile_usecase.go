package usecase

import (
	"context"
	"fmt"
	"net/http"
	"net/mail"
	"strings"

	"github.com/fadilmartias/careerboost/internal/logging"
	"github.com/fadilmartias/careerboost/internal/model"
	"github.com/fadilmartias/careerboost/internal/repository"
	"github.com/fadilmartias/careerboost/internal/service"
	"github.com/fadilmartias/careerboost/internal/util"
)

const (
	MaxResumeSize  = 5 << 20
	MaxPictureSize = 2 << 20
)

var pictureExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

type ProfileUsecase struct {
	userRepo *repository.UserRepository
	storage  service.ObjectStorage
	log      logging.Logger
}

func NewProfileUsecase(userRepo *repository.UserRepository, storage service.ObjectStorage, log logging.Logger) *ProfileUsecase {
	return &ProfileUsecase{userRepo: userRepo, storage: storage, log: log}
}

func (uc *ProfileUsecase) Get(ctx context.Context, userID string) (*model.User, error) {
	return uc.userRepo.FindByID(ctx, userID)
}

// Update replaces name, email, resume text and picture URL as a unit.
func (uc *ProfileUsecase) Update(ctx context.Context, userID string, profile model.Profile) (*model.User, error) {
	profile.Name = strings.TrimSpace(profile.Name)
	profile.Email = NormalizeEmail(profile.Email)
	profile.ProfilePictureURL = strings.TrimSpace(profile.ProfilePictureURL)
	if profile.Name == "" || profile.Email == "" {
		return nil, fmt.Errorf("%w: name and email are required", model.ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(profile.Email); err != nil {
		return nil, fmt.Errorf("%w: email is not valid", model.ErrInvalidInput)
	}

	if err := uc.userRepo.UpdateProfile(ctx, userID, profile); err != nil {
		return nil, err
	}
	uc.log.Info(ctx, "profile updated", "user_id", userID)
	return uc.userRepo.FindByID(ctx, userID)
}

// UploadResume replaces the stored resume text with the text of the file.
func (uc *ProfileUsecase) UploadResume(ctx context.Context, userID, filename string, data []byte) (*model.User, error) {
	if len(data) > MaxResumeSize {
		return nil, fmt.Errorf("%w: resume must be at most %d MB", model.ErrInvalidInput, MaxResumeSize>>20)
	}
	text, err := util.ExtractResumeText(filename, data)
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile := profileOf(user)
	profile.ResumeText = text
	if err := uc.userRepo.UpdateProfile(ctx, userID, profile); err != nil {
		return nil, err
	}
	uc.log.Info(ctx, "resume uploaded", "user_id", userID, "chars", len(text))
	return uc.userRepo.FindByID(ctx, userID)
}

// UploadPicture stores the image and points the profile at it. The type is
// sniffed from the content, not taken from the client.
func (uc *ProfileUsecase) UploadPicture(ctx context.Context, userID string, data []byte) (*model.User, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: picture is empty", model.ErrInvalidInput)
	}
	if len(data) > MaxPictureSize {
		return nil, fmt.Errorf("%w: picture must be at most %d MB", model.ErrInvalidInput, MaxPictureSize>>20)
	}
	contentType := http.DetectContentType(data)
	ext, ok := pictureExtensions[contentType]
	if !ok {
		return nil, fmt.Errorf("%w: picture must be png, jpeg, webp or gif", model.ErrInvalidInput)
	}

	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	url, err := uc.storage.Upload(ctx, service.PictureKey(userID, ext), contentType, data)
	if err != nil {
		return nil, err
	}

	profile := profileOf(user)
	profile.ProfilePictureURL = url
	if err := uc.userRepo.UpdateProfile(ctx, userID, profile); err != nil {
		return nil, err
	}
	uc.log.Info(ctx, "profile picture uploaded", "user_id", userID, "content_type", contentType)
	return uc.userRepo.FindByID(ctx, userID)
}

func (uc *ProfileUsecase) GetScores(ctx context.Context, userID string) (model.ScoreMap, error) {
	return uc.userRepo.ReadScores(ctx, userID)
}

// UpdateScores raises stored skills to the incoming values; lower values
// never replace a previous best.
func (uc *ProfileUsecase) UpdateScores(ctx context.Context, userID string, incoming model.ScoreMap) (model.ScoreMap, error) {
	scores, err := applyScores(ctx, uc.userRepo, userID, incoming)
	if err != nil {
		return nil, err
	}
	uc.log.Info(ctx, "scores updated", "user_id", userID, "skills", len(incoming))
	return scores, nil
}

func profileOf(u *model.User) model.Profile {
	return model.Profile{
		Name:              u.Name,
		Email:             u.Email,
		ResumeText:        u.ResumeText,
		ProfilePictureURL: u.ProfilePictureURL,
	}
}
