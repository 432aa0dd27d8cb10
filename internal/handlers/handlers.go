package handlers

import (
	"go.uber.org/zap"

	"github.com/aicl/list-api/internal/logic"
)

// Default and maximum page sizes for paginated endpoints.
const (
	DefaultPageSize = 25
	MaxPageSize     = 100
)

type Config struct {
	Content     logic.ContentSource
	Leaderboard logic.LeaderboardService
	Packs       logic.PackService
	Changelog   logic.ChangelogService
	Logger      *zap.Logger
}

type Handler struct {
	content     logic.ContentSource
	leaderboard logic.LeaderboardService
	packs       logic.PackService
	changelog   logic.ChangelogService
	logger      *zap.SugaredLogger
}

func New(cfg Config) *Handler {
	return &Handler{
		content:     cfg.Content,
		leaderboard: cfg.Leaderboard,
		packs:       cfg.Packs,
		changelog:   cfg.Changelog,
		logger:      cfg.Logger.Sugar(),
	}
}
