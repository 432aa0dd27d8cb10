package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/aicl/list-api/internal/models"
)

func TestGetList(t *testing.T) {
	h := testHandler(Config{Content: &MockContentSource{Snap: testSnapshot()}})

	req := httptest.NewRequest("GET", "/api/v1/list", nil)
	w := httptest.NewRecorder()
	h.GetList(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Levels []listedLevel `json:"levels"`
		Total  int           `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Total != 2 || len(resp.Levels) != 2 {
		t.Fatalf("total = %d, levels = %d", resp.Total, len(resp.Levels))
	}
	if resp.Levels[0].Rank != 1 || resp.Levels[0].Name != "Alpha" {
		t.Errorf("first level = %+v", resp.Levels[0])
	}
	if resp.Levels[1].Rank != 2 {
		t.Errorf("second level rank = %d, want 2", resp.Levels[1].Rank)
	}
}

func TestGetListNoContent(t *testing.T) {
	h := testHandler(Config{})

	req := httptest.NewRequest("GET", "/api/v1/list", nil)
	w := httptest.NewRecorder()
	h.GetList(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
}

func TestGetLevel(t *testing.T) {
	h := testHandler(Config{Content: &MockContentSource{Snap: testSnapshot()}})

	tests := []struct {
		name       string
		file       string
		wantStatus int
		wantRank   float64
	}{
		{"Known level", "beta", http.StatusOK, 2},
		{"Unknown level", "gamma", http.StatusNotFound, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/v1/list/"+tt.file, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("file", tt.file)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()
			h.GetLevel(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			var resp map[string]interface{}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatal(err)
			}
			if resp["rank"] != tt.wantRank {
				t.Errorf("rank = %v, want %v", resp["rank"], tt.wantRank)
			}
		})
	}
}

func TestGetPacks(t *testing.T) {
	h := testHandler(Config{
		Packs: &MockPackService{
			PacksFunc: func(ctx context.Context) ([]models.Pack, error) {
				return []models.Pack{
					{ID: "p1", Name: "Pack One", Levels: []string{"alpha"}, Points: 33.4},
				}, nil
			},
		},
	})

	req := httptest.NewRequest("GET", "/api/v1/packs", nil)
	w := httptest.NewRecorder()
	h.GetPacks(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Packs []models.Pack `json:"packs"`
		Total int           `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Total != 1 || resp.Packs[0].Points != 33.4 {
		t.Errorf("resp = %+v", resp)
	}
}

func TestGetChangelogPagination(t *testing.T) {
	entries := make([]models.ChangelogEntry, 30)
	for i := range entries {
		entries[i] = models.ChangelogEntry{
			Type:       models.ChangeRemoved,
			Level:      "level",
			ActionText: "Removed level from the list.",
		}
	}

	h := testHandler(Config{
		Changelog: &MockChangelogService{
			EntriesFunc: func(ctx context.Context) ([]models.ChangelogEntry, error) {
				return entries, nil
			},
		},
	})

	req := httptest.NewRequest("GET", "/api/v1/changelog?limit=10&page=3", nil)
	w := httptest.NewRecorder()
	h.GetChangelog(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Entries []models.ChangelogEntry `json:"entries"`
		Total   int                     `json:"total"`
		Page    int                     `json:"page"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Entries) != 10 || resp.Total != 30 || resp.Page != 3 {
		t.Errorf("entries = %d, total = %d, page = %d", len(resp.Entries), resp.Total, resp.Page)
	}
}

func TestReady(t *testing.T) {
	tests := []struct {
		name       string
		source     *MockContentSource
		wantStatus int
	}{
		{"With snapshot", &MockContentSource{Snap: testSnapshot()}, http.StatusOK},
		{"Before first load", &MockContentSource{}, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := testHandler(Config{Content: tt.source})

			req := httptest.NewRequest("GET", "/ready", nil)
			w := httptest.NewRecorder()
			h.Ready(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}
