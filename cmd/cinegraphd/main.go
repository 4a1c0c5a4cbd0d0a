// Command cinegraphd runs the Cinegraph HTTP server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/cinegraph/cinegraph/internal/api"
	"github.com/cinegraph/cinegraph/internal/config"
	"github.com/cinegraph/cinegraph/internal/service"
	"github.com/cinegraph/cinegraph/internal/sparql"
	"github.com/cinegraph/cinegraph/internal/store"
)

// Build-time variables set via ldflags.
var (
	version = "0.3.0"
	commit  = ""
)

const (
	startupTimeout  = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("load config")
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithError(err).Fatal("parse log level")
	}
	log.SetLevel(level)

	if err := run(cfg, log); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}

func run(cfg *config.Config, log *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	startupCtx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	// Provision the dataset through the Fuseki admin API. Managed Fuseki
	// deployments often disable the admin endpoint, so a failure here is
	// not fatal as long as the dataset already exists.
	admin := sparql.NewAdmin(cfg.FusekiAdminURL, cfg.FusekiUser, cfg.FusekiPassword.Value())
	if err := admin.EnsureDataset(startupCtx, cfg.FusekiDataset); err != nil {
		log.WithError(err).Warn("ensure dataset; continuing, assuming it exists")
	}

	var opts []sparql.Option
	if cfg.FusekiUser != "" {
		opts = append(opts, sparql.WithBasicAuth(cfg.FusekiUser, cfg.FusekiPassword.Value()))
	}
	client := sparql.NewHTTPClient(cfg.FusekiEndpoint, opts...)

	movieStore := store.NewMovieStore(client, log)
	if err := movieStore.EnsureSchema(startupCtx); err != nil {
		return err
	}

	movies := service.NewMovieService(movieStore, log)
	favorites := service.NewFavoriteService(movieStore, log)
	recommender := service.NewRecommendService(movieStore, log, cfg.MinSimilarRating, cfg.RecommendLimit)

	router := api.NewRouter(&api.RouterDeps{
		Log:            log,
		Movies:         movies,
		Favorites:      favorites,
		Recommender:    recommender,
		Store:          movieStore,
		Loader:         movieStore,
		CORSOrigins:    cfg.CORSOrigins,
		Version:        versionString(),
		RecommendLimit: cfg.RecommendLimit,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.WithFields(logrus.Fields{
			"addr":    srv.Addr,
			"version": versionString(),
		}).Info("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func versionString() string {
	if commit != "" {
		return version + "+" + commit
	}
	return version
}
