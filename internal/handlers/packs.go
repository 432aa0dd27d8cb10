package handlers

import (
	"errors"
	"net/http"

	"github.com/aicl/list-api/internal/content"
)

// GetPacks returns the packs with computed point values
// @Summary Level packs
// @Tags Packs
// @Produce json
// @Success 200 {object} map[string]interface{} "Packs"
// @Failure 503 {object} map[string]string "Content not loaded"
// @Router /packs [get]
func (h *Handler) GetPacks(w http.ResponseWriter, r *http.Request) {
	packs, err := h.packs.Packs(r.Context())
	if err != nil {
		if errors.Is(err, content.ErrNoData) {
			h.errorResponse(w, http.StatusServiceUnavailable, "Content not loaded")
			return
		}
		h.logger.Errorw("Failed to load packs", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Packs unavailable")
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"packs": packs,
		"total": len(packs),
	})
}
