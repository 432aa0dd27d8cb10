package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aicl/list-api/internal/models"
)

// listedLevel is a level as shown in the ranked list view.
type listedLevel struct {
	Rank             int             `json:"rank"`
	Name             string          `json:"name"`
	FileName         string          `json:"fileName"`
	Verifier         string          `json:"verifier"`
	Verification     string          `json:"verification"`
	PercentToQualify float64         `json:"percentToQualify"`
	Records          []models.Record `json:"records"`
}

// GetList returns the ranked level list
// @Summary Ranked level list
// @Description The curated list in rank order, plus files that failed to load
// @Tags List
// @Produce json
// @Success 200 {object} map[string]interface{} "Level list"
// @Failure 503 {object} map[string]string "Content not loaded"
// @Router /list [get]
func (h *Handler) GetList(w http.ResponseWriter, r *http.Request) {
	snap := h.content.Snapshot()
	if snap == nil {
		h.errorResponse(w, http.StatusServiceUnavailable, "Content not loaded")
		return
	}

	levels := make([]listedLevel, 0, len(snap.Levels))
	for i, slot := range snap.Levels {
		if slot.Err != nil {
			continue
		}
		levels = append(levels, listedLevel{
			Rank:             i + 1,
			Name:             slot.Level.Name,
			FileName:         slot.FileName,
			Verifier:         slot.Level.Verifier,
			Verification:     slot.Level.Verification,
			PercentToQualify: slot.Level.PercentToQualify,
			Records:          slot.Level.Records,
		})
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"levels": levels,
		"total":  len(snap.Levels),
		"errors": snap.FailedLevels(),
	})
}

// GetLevel returns one level by file name
// @Summary Level detail
// @Tags List
// @Produce json
// @Param file path string true "Level file name (without .json)"
// @Success 200 {object} map[string]interface{} "Level"
// @Failure 404 {object} map[string]string "Unknown level"
// @Router /list/{file} [get]
func (h *Handler) GetLevel(w http.ResponseWriter, r *http.Request) {
	snap := h.content.Snapshot()
	if snap == nil {
		h.errorResponse(w, http.StatusServiceUnavailable, "Content not loaded")
		return
	}

	file := chi.URLParam(r, "file")
	level, rank := snap.Level(file)
	if level == nil {
		h.errorResponse(w, http.StatusNotFound, "Unknown level")
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"rank":  rank,
		"level": level,
	})
}
