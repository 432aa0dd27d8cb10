package handlers

import (
	"errors"
	"net/http"

	"github.com/aicl/list-api/internal/content"
)

// GetChangelog returns the list movement feed
// @Summary Changelog
// @Description Movement events (placed/raised/lowered/swapped/removed), newest first
// @Tags Changelog
// @Produce json
// @Param limit query int false "Limit" default(25)
// @Param page query int false "Page" default(1)
// @Success 200 {object} map[string]interface{} "Changelog"
// @Failure 503 {object} map[string]string "Content not loaded"
// @Router /changelog [get]
func (h *Handler) GetChangelog(w http.ResponseWriter, r *http.Request) {
	entries, err := h.changelog.Entries(r.Context())
	if err != nil {
		if errors.Is(err, content.ErrNoData) {
			h.errorResponse(w, http.StatusServiceUnavailable, "Content not loaded")
			return
		}
		h.logger.Errorw("Failed to load changelog", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Changelog unavailable")
		return
	}

	limit, page := pageParams(r)
	start, end := paginate(len(entries), limit, page)

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"entries": entries[start:end],
		"total":   len(entries),
		"page":    page,
	})
}
