package usecase

import (
	"context"
	"testing"

	"github.com/fadilmartias/careerboost/internal/flow"
	"github.com/fadilmartias/careerboost/internal/logging"
	"github.com/fadilmartias/careerboost/internal/model"
	"github.com/fadilmartias/careerboost/internal/repository"
	"github.com/fadilmartias/careerboost/internal/service"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) *repository.UserRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&model.User{}))
	return repository.NewUserRepository(db)
}

func cheapHasher() *service.Argon2Hasher {
	return &service.Argon2Hasher{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}
}

type fakeGenerator struct {
	reply    string
	err      error
	requests []flow.Request
}

func (f *fakeGenerator) Generate(_ context.Context, req flow.Request) (string, error) {
	f.requests = append(f.requests, req)
	return f.reply, f.err
}

type fakeStorage struct {
	key         string
	contentType string
	err         error
}

func (f *fakeStorage) Upload(_ context.Context, key, contentType string, _ []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.key = key
	f.contentType = contentType
	return "https://cdn.example.com/" + key, nil
}

func createUser(t *testing.T, repo *repository.UserRepository, resume string) *model.User {
	t.Helper()
	ctx := context.Background()
	user, err := repo.Create(ctx, "Ada", "ada@x.com", "digest")
	require.NoError(t, err)
	if resume != "" {
		require.NoError(t, repo.UpdateProfile(ctx, user.ID.String(), model.Profile{
			Name: user.Name, Email: user.Email, ResumeText: resume,
		}))
	}
	return user
}

var discard = logging.Discard()
