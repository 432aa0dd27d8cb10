package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/aicl/list-api/internal/content"
)

// GetLeaderboard returns the computed player leaderboard
// @Summary Player leaderboard
// @Description Players ranked by total score; errors lists level files excluded from scoring
// @Tags Leaderboard
// @Produce json
// @Param limit query int false "Limit" default(25)
// @Param page query int false "Page" default(1)
// @Success 200 {object} map[string]interface{} "Leaderboard"
// @Failure 503 {object} map[string]string "Content not loaded"
// @Router /leaderboard [get]
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.leaderboard.Leaderboard(r.Context())
	if err != nil {
		if errors.Is(err, content.ErrNoData) {
			h.errorResponse(w, http.StatusServiceUnavailable, "Content not loaded")
			return
		}
		h.logger.Errorw("Failed to compute leaderboard", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Leaderboard unavailable")
		return
	}

	limit, page := pageParams(r)
	start, end := paginate(len(result.Entries), limit, page)

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"players": result.Entries[start:end],
		"total":   len(result.Entries),
		"page":    page,
		"errors":  result.Errors,
	})
}

// GetPlayer returns one leaderboard entry by name
// @Summary Player detail
// @Description Case-insensitive lookup of a single player's entry
// @Tags Leaderboard
// @Produce json
// @Param player path string true "Player name"
// @Success 200 {object} models.LeaderboardEntry "Entry"
// @Failure 404 {object} map[string]string "Unknown player"
// @Router /leaderboard/{player} [get]
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	result, err := h.leaderboard.Leaderboard(r.Context())
	if err != nil {
		if errors.Is(err, content.ErrNoData) {
			h.errorResponse(w, http.StatusServiceUnavailable, "Content not loaded")
			return
		}
		h.logger.Errorw("Failed to compute leaderboard", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Leaderboard unavailable")
		return
	}

	player := strings.TrimSpace(chi.URLParam(r, "player"))
	for i := range result.Entries {
		if strings.EqualFold(result.Entries[i].User, player) {
			h.jsonResponse(w, http.StatusOK, result.Entries[i])
			return
		}
	}

	h.errorResponse(w, http.StatusNotFound, "Unknown player")
}
