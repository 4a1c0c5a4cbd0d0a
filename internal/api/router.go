package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/cinegraph/cinegraph/internal/middleware"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Log            *logrus.Logger
	Movies         MovieRepository
	Favorites      FavoriteRepository
	Recommender    Recommender
	Store          StorePinger
	Loader         SampleLoader
	CORSOrigins    []string
	Version        string
	RecommendLimit int
}

// maxBodySize bounds request bodies; catalog payloads are tiny.
const maxBodySize = 1 << 20 // 1 MB

// setupMiddleware configures all middleware on the Gin engine.
func setupMiddleware(r *gin.Engine, deps *RouterDeps) {
	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(middleware.RequestID(deps.Log))
	r.Use(ginLogger(deps.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.MaxBodySize(maxBodySize))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		MaxAge:           1 * time.Hour,
		AllowCredentials: false,
	}))
	r.Use(middleware.PrometheusMiddleware())

	// Metrics endpoint (unauthenticated, like health).
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// registerRoutes sets up all API route handlers on the given router group.
func registerRoutes(api *gin.RouterGroup, deps *RouterDeps) {
	log := deps.Log

	health := NewHealthHandler(deps.Store, log, deps.Version)
	movies := NewMovieHandler(deps.Movies, deps.Recommender, log)
	favorites := NewFavoriteHandler(deps.Favorites, log)
	recommendations := NewRecommendationHandler(deps.Recommender, log, deps.RecommendLimit)
	admin := NewAdminHandler(deps.Loader, log)

	api.GET("/health", health.Liveness)
	api.GET("/ready", health.Readiness)

	// Catalog.
	api.GET("/movies", movies.List)
	api.POST("/movies", movies.Create)
	api.GET("/movies/:id", movies.Get)
	api.GET("/movies/:id/favorite", favorites.IsFavorite)

	// Favorites.
	api.GET("/favorites", favorites.List)
	api.POST("/favorites/toggle", favorites.Toggle)

	// Recommendations.
	api.GET("/recommendations", recommendations.Get)

	// Admin.
	api.POST("/admin/load-samples", admin.LoadSamples)
}

// NewRouter creates and configures the Gin engine with all middleware and routes.
func NewRouter(deps *RouterDeps) http.Handler {
	r := gin.New()
	setupMiddleware(r, deps)
	registerRoutes(r.Group("/api/v1"), deps)

	return r
}
