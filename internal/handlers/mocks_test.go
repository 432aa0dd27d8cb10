package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aicl/list-api/internal/content"
	"github.com/aicl/list-api/internal/logic"
	"github.com/aicl/list-api/internal/models"
)

// MockContentSource implements logic.ContentSource
type MockContentSource struct {
	Snap *content.Snapshot
}

func (m *MockContentSource) Snapshot() *content.Snapshot { return m.Snap }

// MockLeaderboardService implements logic.LeaderboardService
type MockLeaderboardService struct {
	LeaderboardFunc func(ctx context.Context) (*logic.LeaderboardResult, error)
}

func (m *MockLeaderboardService) Leaderboard(ctx context.Context) (*logic.LeaderboardResult, error) {
	if m.LeaderboardFunc != nil {
		return m.LeaderboardFunc(ctx)
	}
	return nil, content.ErrNoData
}

// MockPackService implements logic.PackService
type MockPackService struct {
	PacksFunc func(ctx context.Context) ([]models.Pack, error)
}

func (m *MockPackService) Packs(ctx context.Context) ([]models.Pack, error) {
	if m.PacksFunc != nil {
		return m.PacksFunc(ctx)
	}
	return nil, content.ErrNoData
}

// MockChangelogService implements logic.ChangelogService
type MockChangelogService struct {
	EntriesFunc func(ctx context.Context) ([]models.ChangelogEntry, error)
}

func (m *MockChangelogService) Entries(ctx context.Context) ([]models.ChangelogEntry, error) {
	if m.EntriesFunc != nil {
		return m.EntriesFunc(ctx)
	}
	return nil, content.ErrNoData
}

func testSnapshot() *content.Snapshot {
	return &content.Snapshot{
		ID:       uuid.New(),
		LoadedAt: time.Now(),
		Levels: []content.LevelSlot{
			{
				FileName: "alpha",
				Level: &models.Level{
					Name:             "Alpha",
					FileName:         "alpha",
					Verifier:         "Ann",
					PercentToQualify: 60,
					Records:          []models.Record{{User: "Ben", Percent: 100}},
				},
			},
			{
				FileName: "beta",
				Level: &models.Level{
					Name:             "Beta",
					FileName:         "beta",
					Verifier:         "Ben",
					PercentToQualify: 70,
				},
			},
		},
	}
}

func testHandler(cfg Config) *Handler {
	if cfg.Content == nil {
		cfg.Content = &MockContentSource{}
	}
	if cfg.Leaderboard == nil {
		cfg.Leaderboard = &MockLeaderboardService{}
	}
	if cfg.Packs == nil {
		cfg.Packs = &MockPackService{}
	}
	if cfg.Changelog == nil {
		cfg.Changelog = &MockChangelogService{}
	}
	cfg.Logger = zap.NewNop()
	return New(cfg)
}
