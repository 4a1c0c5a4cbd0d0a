package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/cinegraph/cinegraph/internal/api"
	"github.com/cinegraph/cinegraph/internal/models"
)

func TestRecommendations(t *testing.T) {
	rec := &mockRecommender{
		recommendFn: func(_ context.Context, userID string, limit int) []models.Recommendation {
			if userID != "alice" {
				t.Errorf("userID = %q, want alice", userID)
			}
			if limit != 3 {
				t.Errorf("limit = %d, want 3", limit)
			}
			return []models.Recommendation{
				{Movie: models.Movie{ID: "1", Title: "Inception"}, Source: models.SourceSimilarity},
			}
		},
	}
	h := api.NewRecommendationHandler(rec, testLogger(), 5)
	r := newTestRouter()
	r.GET("/recommendations", h.Get)

	w := doRequest(r, http.MethodGet, "/recommendations?user_id=alice&limit=3", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Recommendations []models.Recommendation `json:"recommendations"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Recommendations) != 1 || resp.Recommendations[0].Source != "similarity" {
		t.Errorf("unexpected recommendations: %+v", resp.Recommendations)
	}
}

func TestRecommendationsMissingUser(t *testing.T) {
	h := api.NewRecommendationHandler(&mockRecommender{}, testLogger(), 5)
	r := newTestRouter()
	r.GET("/recommendations", h.Get)

	w := doRequest(r, http.MethodGet, "/recommendations", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body: %s", w.Code, w.Body.String())
	}
}

func TestRecommendationsLimitDefaults(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"absent", "", 5},
		{"garbage", "&limit=abc", 5},
		{"negative", "&limit=-3", 5},
		{"oversized clamps", "&limit=999", 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotLimit int
			rec := &mockRecommender{
				recommendFn: func(_ context.Context, _ string, limit int) []models.Recommendation {
					gotLimit = limit
					return []models.Recommendation{}
				},
			}
			h := api.NewRecommendationHandler(rec, testLogger(), 5)
			r := newTestRouter()
			r.GET("/recommendations", h.Get)

			w := doRequest(r, http.MethodGet, "/recommendations?user_id=alice"+tt.query, "")
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
			}
			if gotLimit != tt.want {
				t.Errorf("limit passed = %d, want %d", gotLimit, tt.want)
			}
		})
	}
}

func TestRecommendationsEmptyListIsOK(t *testing.T) {
	rec := &mockRecommender{
		recommendFn: func(_ context.Context, _ string, _ int) []models.Recommendation {
			return []models.Recommendation{}
		},
	}
	h := api.NewRecommendationHandler(rec, testLogger(), 5)
	r := newTestRouter()
	r.GET("/recommendations", h.Get)

	w := doRequest(r, http.MethodGet, "/recommendations?user_id=newcomer", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Recommendations []models.Recommendation `json:"recommendations"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Recommendations == nil || len(resp.Recommendations) != 0 {
		t.Errorf("recommendations = %v, want empty list", resp.Recommendations)
	}
}

func TestHealthLiveness(t *testing.T) {
	store := &mockPinger{
		pingFn: func(_ context.Context) error { return nil },
	}
	h := api.NewHealthHandler(store, testLogger(), "1.2.3")
	r := newTestRouter()
	r.GET("/health", h.Liveness)

	w := doRequest(r, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Status  string `json:"status"`
		Version string `json:"version"`
		Store   string `json:"store"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "ok" || resp.Version != "1.2.3" || resp.Store != "connected" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestHealthLivenessStoreDown(t *testing.T) {
	store := &mockPinger{
		pingFn: func(_ context.Context) error { return errors.New("down") },
	}
	h := api.NewHealthHandler(store, testLogger(), "1.2.3")
	r := newTestRouter()
	r.GET("/health", h.Liveness)

	w := doRequest(r, http.MethodGet, "/health", "")
	// Liveness stays 200; only the store field flips.
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Store string `json:"store"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Store != "disconnected" {
		t.Errorf("store = %q, want disconnected", resp.Store)
	}
}

func TestReadinessStoreDown(t *testing.T) {
	store := &mockPinger{
		pingFn: func(_ context.Context) error { return errors.New("down") },
	}
	h := api.NewHealthHandler(store, testLogger(), "1.2.3")
	r := newTestRouter()
	r.GET("/ready", h.Readiness)

	w := doRequest(r, http.MethodGet, "/ready", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503; body: %s", w.Code, w.Body.String())
	}
}

func TestAdminLoadSamples(t *testing.T) {
	loaded := 0
	loader := &mockLoader{
		addFn: func(_ context.Context, _ models.Movie) error {
			loaded++
			return nil
		},
	}
	h := api.NewAdminHandler(loader, testLogger())
	r := newTestRouter()
	r.POST("/admin/load-samples", h.LoadSamples)

	w := doRequest(r, http.MethodPost, "/admin/load-samples", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Loaded int `json:"loaded"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Loaded != loaded || loaded == 0 {
		t.Errorf("loaded = %d, response = %d, want matching non-zero counts", loaded, resp.Loaded)
	}
}
