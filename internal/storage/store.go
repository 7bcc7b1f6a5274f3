package storage

import (
	"context"

	"balancebot/internal/model"
)

// Store defines persistence operations for model profiles and bench runs.
type Store interface {
	Init(ctx context.Context) error
	SaveModelProfile(ctx context.Context, profile model.ModelProfile) error
	GetModelProfile(ctx context.Context, id string) (model.ModelProfile, bool, error)
	ListModelProfiles(ctx context.Context) ([]string, error)
	SaveRewardHistory(ctx context.Context, runID string, history []float64) error
	GetRewardHistory(ctx context.Context, runID string) ([]float64, bool, error)
	SaveEpisodeDiagnostics(ctx context.Context, runID string, diagnostics []model.EpisodeDiagnostics) error
	GetEpisodeDiagnostics(ctx context.Context, runID string) ([]model.EpisodeDiagnostics, bool, error)
}
