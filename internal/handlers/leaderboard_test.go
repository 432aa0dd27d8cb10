package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/aicl/list-api/internal/logic"
	"github.com/aicl/list-api/internal/models"
)

func leaderboardFixture(n int) *logic.LeaderboardResult {
	entries := make([]models.LeaderboardEntry, n)
	for i := range entries {
		entries[i] = models.LeaderboardEntry{
			Rank:  i + 1,
			User:  fmt.Sprintf("player%d", i+1),
			Total: float64(1000 - i),
		}
	}
	return &logic.LeaderboardResult{
		SnapshotID: uuid.New(),
		Entries:    entries,
		Errors:     []string{"lost-level"},
	}
}

func TestGetLeaderboardPagination(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantCount int
		wantFirst string
	}{
		{"Default page", "", 25, "player1"},
		{"Explicit limit", "?limit=10", 10, "player1"},
		{"Second page", "?limit=10&page=2", 10, "player11"},
		{"Limit above max falls back", "?limit=500", 25, "player1"},
		{"Page past the end", "?limit=10&page=99", 0, ""},
	}

	h := testHandler(Config{
		Leaderboard: &MockLeaderboardService{
			LeaderboardFunc: func(ctx context.Context) (*logic.LeaderboardResult, error) {
				return leaderboardFixture(30), nil
			},
		},
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/v1/leaderboard"+tt.query, nil)
			w := httptest.NewRecorder()
			h.GetLeaderboard(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d", w.Code)
			}

			var resp struct {
				Players []models.LeaderboardEntry `json:"players"`
				Total   int                       `json:"total"`
				Errors  []string                  `json:"errors"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatal(err)
			}

			if len(resp.Players) != tt.wantCount {
				t.Errorf("got %d players, want %d", len(resp.Players), tt.wantCount)
			}
			if tt.wantFirst != "" && resp.Players[0].User != tt.wantFirst {
				t.Errorf("first player = %q, want %q", resp.Players[0].User, tt.wantFirst)
			}
			if resp.Total != 30 {
				t.Errorf("total = %d, want 30", resp.Total)
			}
			if len(resp.Errors) != 1 || resp.Errors[0] != "lost-level" {
				t.Errorf("errors = %v, want the excluded level surfaced", resp.Errors)
			}
		})
	}
}

func TestGetLeaderboardNoData(t *testing.T) {
	h := testHandler(Config{})

	req := httptest.NewRequest("GET", "/api/v1/leaderboard", nil)
	w := httptest.NewRecorder()
	h.GetLeaderboard(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
}

func TestGetPlayer(t *testing.T) {
	h := testHandler(Config{
		Leaderboard: &MockLeaderboardService{
			LeaderboardFunc: func(ctx context.Context) (*logic.LeaderboardResult, error) {
				return &logic.LeaderboardResult{
					Entries: []models.LeaderboardEntry{
						{Rank: 1, User: "Alice", Total: 250.5},
					},
				}, nil
			},
		},
	})

	tests := []struct {
		name       string
		player     string
		wantStatus int
	}{
		{"Exact casing", "Alice", http.StatusOK},
		{"Case-insensitive", "aLiCe", http.StatusOK},
		{"Unknown", "Mallory", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/v1/leaderboard/"+tt.player, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("player", tt.player)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()
			h.GetPlayer(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}
