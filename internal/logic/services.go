package logic

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aicl/list-api/internal/content"
	"github.com/aicl/list-api/internal/models"
)

const leaderboardCacheKey = "aicl:leaderboard:"

type leaderboardService struct {
	source ContentSource
	cache  RedisClient // nil disables the shared cache
	ttl    time.Duration
	logger *zap.SugaredLogger

	mu     sync.Mutex
	lastID uuid.UUID
	last   *LeaderboardResult
}

// NewLeaderboardService builds the leaderboard service. Aggregation runs
// at most once per snapshot: results are memoized in process, and shared
// through Redis across instances when a client is provided.
func NewLeaderboardService(source ContentSource, cache RedisClient, ttl time.Duration, logger *zap.Logger) LeaderboardService {
	return &leaderboardService{
		source: source,
		cache:  cache,
		ttl:    ttl,
		logger: logger.Sugar(),
	}
}

func (s *leaderboardService) Leaderboard(ctx context.Context) (*LeaderboardResult, error) {
	snap := s.source.Snapshot()
	if snap == nil {
		return nil, content.ErrNoData
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.last != nil && s.lastID == snap.ID {
		return s.last, nil
	}

	key := leaderboardCacheKey + snap.ID.String()
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, key).Bytes(); err == nil {
			result := &LeaderboardResult{}
			if err := json.Unmarshal(data, result); err == nil {
				s.lastID, s.last = snap.ID, result
				return result, nil
			}
			s.logger.Warnw("Discarding unreadable cached leaderboard", "key", key, "error", err)
		}
	}

	start := time.Now()
	entries, errs := Aggregate(snap.Levels, snap.Packs)
	result := &LeaderboardResult{
		SnapshotID: snap.ID,
		Entries:    entries,
		Errors:     errs,
	}
	s.logger.Infow("Leaderboard aggregated",
		"snapshot", snap.ID,
		"players", len(entries),
		"excludedLevels", len(errs),
		"duration", time.Since(start),
	)

	if s.cache != nil {
		if data, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(ctx, key, data, s.ttl).Err(); err != nil {
				s.logger.Warnw("Failed to cache leaderboard", "key", key, "error", err)
			}
		}
	}

	s.lastID, s.last = snap.ID, result
	return result, nil
}

type packService struct {
	source ContentSource
	logger *zap.SugaredLogger

	mu     sync.Mutex
	lastID uuid.UUID
	last   []models.Pack
}

func NewPackService(source ContentSource, logger *zap.Logger) PackService {
	return &packService{source: source, logger: logger.Sugar()}
}

func (s *packService) Packs(ctx context.Context) ([]models.Pack, error) {
	snap := s.source.Snapshot()
	if snap == nil {
		return nil, content.ErrNoData
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.last != nil && s.lastID == snap.ID {
		return s.last, nil
	}

	packs, unresolved := PackPoints(snap.Levels, snap.Packs)
	for id, files := range unresolved {
		s.logger.Warnw("Pack references unknown levels", "pack", id, "files", files)
	}

	s.lastID, s.last = snap.ID, packs
	return packs, nil
}

type changelogService struct {
	source ContentSource

	mu     sync.Mutex
	lastID uuid.UUID
	last   []models.ChangelogEntry
}

func NewChangelogService(source ContentSource) ChangelogService {
	return &changelogService{source: source}
}

func (s *changelogService) Entries(ctx context.Context) ([]models.ChangelogEntry, error) {
	snap := s.source.Snapshot()
	if snap == nil {
		return nil, content.ErrNoData
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.last != nil && s.lastID == snap.ID {
		return s.last, nil
	}

	s.lastID, s.last = snap.ID, Changelog(snap.Changelog)
	return s.last, nil
}
