package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/fadilmartias/careerboost/internal/logging"
	"github.com/fadilmartias/careerboost/internal/model"
	"github.com/fadilmartias/careerboost/internal/repository"
	"github.com/fadilmartias/careerboost/internal/service"
)

type AuthUsecase struct {
	userRepo *repository.UserRepository
	hasher   service.PasswordHasherInterface
	log      logging.Logger
}

func NewAuthUsecase(userRepo *repository.UserRepository, hasher service.PasswordHasherInterface, log logging.Logger) *AuthUsecase {
	return &AuthUsecase{userRepo: userRepo, hasher: hasher, log: log}
}

// Signup registers a new user. The caller opens the session.
func (uc *AuthUsecase) Signup(ctx context.Context, name, email, password string) (*model.User, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", model.ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: email is not valid", model.ErrInvalidInput)
	}

	digest, err := uc.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := uc.userRepo.Create(ctx, name, email, digest)
	if err != nil {
		return nil, err
	}
	uc.log.Info(ctx, "user signed up", "user_id", user.ID)
	return user, nil
}

// Login returns model.ErrInvalidCredentials for both an unknown email and a
// wrong password.
func (uc *AuthUsecase) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := uc.userRepo.FindByEmail(ctx, NormalizeEmail(email))
	if errors.Is(err, model.ErrNotFound) {
		uc.log.Info(ctx, "login rejected", "reason", "unknown email")
		return nil, model.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	ok, err := uc.hasher.Verify(password, user.PasswordDigest)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		uc.log.Info(ctx, "login rejected", "reason", "wrong password", "user_id", user.ID)
		return nil, model.ErrInvalidCredentials
	}

	uc.log.Info(ctx, "user logged in", "user_id", user.ID)
	return user, nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
