package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/cinegraph/cinegraph/internal/api"
	"github.com/cinegraph/cinegraph/internal/models"
)

func noOpinion(_ context.Context, _ string) string { return "" }

func TestMovieList(t *testing.T) {
	repo := &mockMovieRepo{
		listFn: func(_ context.Context) ([]models.Movie, error) {
			return []models.Movie{
				{ID: "1", Title: "Inception", Director: "Christopher Nolan", Genre: "Sci-Fi", Rating: 4.8},
			}, nil
		},
	}
	h := api.NewMovieHandler(repo, &mockRecommender{opinionFn: noOpinion}, testLogger())
	r := newTestRouter()
	r.GET("/movies", h.List)

	w := doRequest(r, http.MethodGet, "/movies", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Movies []models.Movie `json:"movies"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Movies) != 1 || resp.Movies[0].Title != "Inception" {
		t.Errorf("unexpected movies: %+v", resp.Movies)
	}
}

func TestMovieListStoreDown(t *testing.T) {
	repo := &mockMovieRepo{
		listFn: func(_ context.Context) ([]models.Movie, error) {
			return nil, models.ErrStoreUnavailable
		},
	}
	h := api.NewMovieHandler(repo, &mockRecommender{opinionFn: noOpinion}, testLogger())
	r := newTestRouter()
	r.GET("/movies", h.List)

	w := doRequest(r, http.MethodGet, "/movies", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503; body: %s", w.Code, w.Body.String())
	}
}

func TestMovieCreate(t *testing.T) {
	repo := &mockMovieRepo{
		addFn: func(_ context.Context, req models.AddMovieRequest) (*models.Movie, error) {
			return &models.Movie{
				ID: "1718000000000", Title: req.Title, Director: req.Director,
				Genre: req.Genre, Rating: req.Rating,
			}, nil
		},
	}
	h := api.NewMovieHandler(repo, &mockRecommender{opinionFn: noOpinion}, testLogger())
	r := newTestRouter()
	r.POST("/movies", h.Create)

	body := `{"title":"Dune","director":"Denis Villeneuve","genre":"Sci-Fi","rating":4.4}`
	w := doRequest(r, http.MethodPost, "/movies", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", w.Code, w.Body.String())
	}

	var movie models.Movie
	if err := json.Unmarshal(w.Body.Bytes(), &movie); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if movie.ID != "1718000000000" || movie.Title != "Dune" {
		t.Errorf("unexpected movie: %+v", movie)
	}
}

func TestMovieCreateValidation(t *testing.T) {
	called := false
	repo := &mockMovieRepo{
		addFn: func(_ context.Context, _ models.AddMovieRequest) (*models.Movie, error) {
			called = true
			return nil, nil
		},
	}
	h := api.NewMovieHandler(repo, &mockRecommender{opinionFn: noOpinion}, testLogger())
	r := newTestRouter()
	r.POST("/movies", h.Create)

	tests := []struct {
		name string
		body string
	}{
		{"not json", `{{{`},
		{"missing title", `{"director":"d","genre":"g","rating":3}`},
		{"rating out of range", `{"title":"t","director":"d","genre":"g","rating":9}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, http.MethodPost, "/movies", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400; body: %s", w.Code, w.Body.String())
			}
		})
	}

	if called {
		t.Error("repo called on invalid input")
	}
}

func TestMovieGetWithOpinion(t *testing.T) {
	repo := &mockMovieRepo{
		getFn: func(_ context.Context, movieID string) (*models.Movie, error) {
			return &models.Movie{ID: movieID, Title: "Get Out", Genre: "Horror", Rating: 4.3}, nil
		},
	}
	rec := &mockRecommender{
		opinionFn: func(_ context.Context, _ string) string {
			return "This is a Horror movie."
		},
	}
	h := api.NewMovieHandler(repo, rec, testLogger())
	r := newTestRouter()
	r.GET("/movies/:id", h.Get)

	w := doRequest(r, http.MethodGet, "/movies/42", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		models.Movie
		Opinion string `json:"opinion"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != "42" || resp.Opinion != "This is a Horror movie." {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestMovieGetNotFound(t *testing.T) {
	repo := &mockMovieRepo{
		getFn: func(_ context.Context, _ string) (*models.Movie, error) {
			return nil, models.ErrMovieNotFound
		},
	}
	h := api.NewMovieHandler(repo, &mockRecommender{opinionFn: noOpinion}, testLogger())
	r := newTestRouter()
	r.GET("/movies/:id", h.Get)

	w := doRequest(r, http.MethodGet, "/movies/missing", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404; body: %s", w.Code, w.Body.String())
	}
}

func TestMovieGetInvalidID(t *testing.T) {
	repo := &mockMovieRepo{
		getFn: func(_ context.Context, _ string) (*models.Movie, error) {
			return nil, models.ErrInvalidID("movie_id", "bad id")
		},
	}
	h := api.NewMovieHandler(repo, &mockRecommender{opinionFn: noOpinion}, testLogger())
	r := newTestRouter()
	r.GET("/movies/:id", h.Get)

	w := doRequest(r, http.MethodGet, "/movies/bad%20id", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body: %s", w.Code, w.Body.String())
	}
}
