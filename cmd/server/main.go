package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"salesperf/internal/admin"
	"salesperf/internal/config"
	"salesperf/internal/employees"
	"salesperf/internal/enrich"
	"salesperf/internal/evaluation"
	"salesperf/internal/kvstore"
	"salesperf/internal/middleware"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()
	backend, err := openBackend(ctx, cfg)
	if err != nil {
		log.Fatalf("open storage backend failed: %v", err)
	}
	defer backend.Close()

	store := evaluation.NewStore(backend)
	enrichClient := enrich.NewClient(newGenerator(cfg))

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := backend.Ping(ctx); err != nil {
			http.Error(w, "storage not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		employeesHandler := employees.NewHandler(store, enrichClient)
		employeesHandler.RegisterRoutes(r)

		adminHandler := admin.NewHandler(store)
		adminHandler.RegisterRoutes(r)
	})

	router.Mount("/", spaHandler{staticPath: cfg.FrontendDir, indexPath: "index.html"})

	log.Printf("sales evaluation server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

func openBackend(ctx context.Context, cfg config.Config) (kvstore.Store, error) {
	if cfg.DatabaseURL != "" {
		return kvstore.OpenPostgres(ctx, cfg.DatabaseURL)
	}
	return kvstore.OpenSQLite(cfg.DataPath)
}

func newGenerator(cfg config.Config) enrich.Generator {
	if !cfg.AIEnabled || cfg.GeminiAPIKey == "" {
		log.Print("ai enrichment disabled, submissions will use the local fallback")
		return nil
	}
	return enrich.NewGeminiGenerator(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.AITimeout)
}

type spaHandler struct {
	staticPath string
	indexPath  string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(h.staticPath, r.URL.Path)
	_, err := os.Stat(path)
	if err == nil {
		http.FileServer(http.Dir(h.staticPath)).ServeHTTP(w, r)
		return
	}

	if os.IsNotExist(err) {
		http.ServeFile(w, r, filepath.Join(h.staticPath, h.indexPath))
		return
	}

	http.NotFound(w, r)
}
