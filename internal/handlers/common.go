package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"
)

// Health check endpoint
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

// Ready check endpoint. Ready means a content snapshot exists; partial
// level load failures do not make the service unready.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	snap := h.content.Snapshot()

	w.Header().Set("Content-Type", "application/json")
	if snap == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"ready": false,
		})
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"ready":      true,
		"snapshot":   snap.ID,
		"loadedAt":   snap.LoadedAt,
		"levels":     len(snap.Levels),
		"loadErrors": len(snap.FailedLevels()),
	})
}

// pageParams reads limit/page query parameters with the usual bounds.
func pageParams(r *http.Request) (limit, page int) {
	limit = DefaultPageSize
	page = 1
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= MaxPageSize {
			limit = parsed
		}
	}
	if p := r.URL.Query().Get("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil && parsed > 0 {
			page = parsed
		}
	}
	return limit, page
}

// paginate clamps a page window onto n items, returning slice bounds.
func paginate(n, limit, page int) (start, end int) {
	start = (page - 1) * limit
	if start > n {
		start = n
	}
	end = start + limit
	if end > n {
		end = n
	}
	return start, end
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}
