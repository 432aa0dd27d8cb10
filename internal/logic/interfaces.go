package logic

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/aicl/list-api/internal/content"
	"github.com/aicl/list-api/internal/models"
)

// ContentSource provides the current content snapshot. Returns nil when
// no content has been loaded yet.
type ContentSource interface {
	Snapshot() *content.Snapshot
}

// RedisClient defines the slice of the Redis client the services use.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// LeaderboardResult is one computed leaderboard plus the level files
// that were excluded because they failed to load.
type LeaderboardResult struct {
	SnapshotID uuid.UUID                 `json:"snapshotId"`
	Entries    []models.LeaderboardEntry `json:"entries"`
	Errors     []string                  `json:"errors"`
}

// LeaderboardService computes and caches the player leaderboard.
type LeaderboardService interface {
	Leaderboard(ctx context.Context) (*LeaderboardResult, error)
}

// PackService exposes the pack list with computed point values.
type PackService interface {
	Packs(ctx context.Context) ([]models.Pack, error)
}

// ChangelogService exposes the list movement feed, newest first, with
// display text attached.
type ChangelogService interface {
	Entries(ctx context.Context) ([]models.ChangelogEntry, error)
}
