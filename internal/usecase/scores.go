package usecase

import (
	"context"

	"github.com/fadilmartias/careerboost/internal/model"
	"github.com/fadilmartias/careerboost/internal/repository"
)

// applyScores merges incoming into the stored scores and persists the
// result. Concurrent updates for one user can still race between the read
// and the write.
func applyScores(ctx context.Context, repo *repository.UserRepository, userID string, incoming model.ScoreMap) (model.ScoreMap, error) {
	if err := incoming.Validate(); err != nil {
		return nil, err
	}
	current, err := repo.ReadScores(ctx, userID)
	if err != nil {
		return nil, err
	}
	merged := current.Merge(incoming)
	if err := repo.WriteScores(ctx, userID, merged); err != nil {
		return nil, err
	}
	return merged, nil
}
