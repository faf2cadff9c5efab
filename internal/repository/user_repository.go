package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fadilmartias/careerboost/internal/model"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db}
}

// Create inserts a user with an empty résumé, no picture and all-zero scores.
// Email uniqueness is checked here; the unique index is a second line.
func (r *UserRepository) Create(ctx context.Context, name, email, passwordDigest string) (*model.User, error) {
	if _, err := r.FindByEmail(ctx, email); err == nil {
		return nil, model.ErrDuplicateUser
	} else if !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	user := model.User{
		ID:             uuid.New(),
		Name:           name,
		Email:          email,
		PasswordDigest: passwordDigest,
		Scores:         datatypes.NewJSONType(model.DefaultScores()),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, model.ErrDuplicateUser
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		return nil, notFound(err, "find user by email")
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, model.ErrNotFound
	}
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", uid).Error; err != nil {
		return nil, notFound(err, "find user by id")
	}
	return &user, nil
}

// UpdateProfile replaces name, email, résumé text and picture URL. Password
// and scores are left alone.
func (r *UserRepository) UpdateProfile(ctx context.Context, id string, profile model.Profile) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return model.ErrNotFound
	}

	var owners int64
	err = r.db.WithContext(ctx).Model(&model.User{}).
		Where("email = ? AND id <> ?", profile.Email, uid).
		Count(&owners).Error
	if err != nil {
		return fmt.Errorf("check email owner: %w", err)
	}
	if owners > 0 {
		return model.ErrDuplicateUser
	}

	res := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", uid).Updates(map[string]any{
		"name":                profile.Name,
		"email":               profile.Email,
		"resume_text":         profile.ResumeText,
		"profile_picture_url": profile.ProfilePictureURL,
		"updated_at":          time.Now(),
	})
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return model.ErrDuplicateUser
		}
		return fmt.Errorf("update profile: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// ReadScores returns the stored scores laid over the all-zero default map.
func (r *UserRepository) ReadScores(ctx context.Context, id string) (model.ScoreMap, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, model.ErrNotFound
	}
	var user model.User
	err = r.db.WithContext(ctx).Select("id", "scores").First(&user, "id = ?", uid).Error
	if err != nil {
		return nil, notFound(err, "read scores")
	}
	return model.DefaultScores().Merge(user.Scores.Data()), nil
}

// WriteScores replaces the scores field. Merging happens in the caller.
func (r *UserRepository) WriteScores(ctx context.Context, id string, scores model.ScoreMap) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return model.ErrNotFound
	}
	res := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", uid).Updates(map[string]any{
		"scores":     datatypes.NewJSONType(scores),
		"updated_at": time.Now(),
	})
	if res.Error != nil {
		return fmt.Errorf("write scores: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func notFound(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
