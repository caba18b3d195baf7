// Copyright (c) 2025-2026 BlogHub Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/bloghub/bloghub/internal/audit"
	"github.com/bloghub/bloghub/internal/auth"
	"github.com/bloghub/bloghub/internal/cache"
	"github.com/bloghub/bloghub/internal/config"
	"github.com/bloghub/bloghub/internal/demo"
	"github.com/bloghub/bloghub/internal/handler/api"
	"github.com/bloghub/bloghub/internal/logging"
	"github.com/bloghub/bloghub/internal/markdown"
	"github.com/bloghub/bloghub/internal/middleware"
	"github.com/bloghub/bloghub/internal/session"
	"github.com/bloghub/bloghub/internal/store"
	"github.com/bloghub/bloghub/internal/version"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "BlogHub - Blog publishing platform\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  BLOGHUB_SESSION_SECRET    Session encryption key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  BLOGHUB_DB_PATH           Session database path (default: ./data/bloghub.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  BLOGHUB_SERVER_PORT       Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  BLOGHUB_ENV               Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  BLOGHUB_DEMO_MODE         Periodically reset posts to seed data (default: false)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  BLOGHUB_REDIS_URL         Redis URL for distributed caching (optional)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		_, _ = fmt.Printf("bloghub %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	versionInfo := &version.Info{
		Version:   appVersion,
		GitCommit: appGitCommit,
		BuildTime: appBuildTime,
	}

	// Setup logger
	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	// WARN and ERROR logs are mirrored into the in-memory audit log,
	// browsable from the admin area.
	auditLog := audit.NewLog(cfg.AuditLogSize)
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger := slog.New(logging.NewAuditLogHandler(textHandler, auditLog))
	slog.SetDefault(logger)

	// Ensure data directory exists
	dbDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	// The database holds sessions only; post content is memory-resident.
	slog.Info("initializing session database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	// Session manager backed by the sessions table
	sessionManager := session.New(db, cfg.IsDevelopment())
	slog.Info("session manager initialized")

	// Identity: fixture accounts share one demo secret, hashed at startup
	secretHash, err := auth.HashPassword(cfg.DemoPassword)
	if err != nil {
		return fmt.Errorf("hashing demo password: %w", err)
	}
	users := store.NewUserDirectory(store.FixtureUsers())
	identity := session.NewIdentity(sessionManager, users, secretHash)
	slog.Info("identity service initialized", "accounts", users.Len())

	// Content store, loaded asynchronously to simulate backend latency
	content := store.NewContentStore()
	loaderCtx, cancelLoader := context.WithCancel(context.Background())
	defer cancelLoader()
	store.NewLoader(content, cfg.SeedDelay()).Start(loaderCtx)
	slog.Info("content loader started", "delay", cfg.SeedDelay())

	// Render cache for post HTML
	cacheConfig := cache.Config{
		Type:             "memory",
		RedisURL:         cfg.RedisURL,
		Prefix:           cfg.CachePrefix,
		DefaultTTL:       time.Duration(cfg.CacheTTL) * time.Second,
		MaxSize:          cfg.CacheMaxSize,
		CleanupInterval:  time.Minute,
		FallbackToMemory: true,
	}
	if cfg.UseRedisCache() {
		cacheConfig.Type = "redis"
	}
	renderCache, err := cache.New(cacheConfig)
	if err != nil {
		return fmt.Errorf("initializing cache: %w", err)
	}
	defer func() {
		if err := renderCache.Close(); err != nil {
			slog.Error("error closing cache", "error", err)
		}
	}()
	slog.Info("render cache initialized", "backend", cacheConfig.Type)

	renderer := markdown.New(renderCache, cacheConfig.DefaultTTL)

	// Demo mode resets the post collection on a schedule
	if cfg.DemoMode {
		resetter := demo.New(content, logger)
		if err := resetter.Start(cfg.DemoResetCron); err != nil {
			return fmt.Errorf("starting demo resetter: %w", err)
		}
		defer resetter.Stop()
	}

	// Protection for the login endpoint: per-IP limiter + account lockout
	loginProtection := middleware.NewLoginProtection()
	slog.Info("login protection initialized",
		"max_failed_attempts", middleware.LockoutThreshold,
		"lockout_duration", middleware.LockoutDuration,
	)

	// Defense-in-depth limiter for all public auth routes
	publicRateLimiter := middleware.NewGlobalRateLimiter(10.0, 20)

	apiHandler := api.NewHandler(content, identity, renderer, auditLog, loginProtection)

	csrfConfig := middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), cfg.IsDevelopment())
	csrfMiddleware := middleware.CSRF(csrfConfig)

	// Router
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestPath)
	r.Use(sessionManager.LoadAndSave)

	r.Get("/healthz", apiHandler.Health(versionInfo.Version))

	// Guard landing routes. The SPA owns the real views; these exist so the
	// redirect targets answer something sensible on a direct hit.
	r.Get(middleware.RedirectLogin, func(w http.ResponseWriter, _ *http.Request) {
		api.WriteUnauthorized(w, "Authentication required")
	})
	r.Get(middleware.RedirectUnauthorized, func(w http.ResponseWriter, _ *http.Request) {
		api.WriteError(w, http.StatusForbidden, "forbidden", "Insufficient permissions", nil)
	})

	// Auth routes (public, with CSRF and rate limiting)
	r.Route("/auth", func(r chi.Router) {
		r.Use(publicRateLimiter.Middleware())
		r.Use(csrfMiddleware)
		r.With(loginProtection.Middleware()).Post("/login", apiHandler.Login)
		r.Post("/signup", apiHandler.Signup)
		r.Post("/logout", apiHandler.Logout)
		r.Get("/me", apiHandler.Me)
		r.Put("/profile", apiHandler.UpdateProfile)
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Public read endpoints
		r.Get("/posts", apiHandler.ListPosts)
		r.Get("/posts/trending", apiHandler.TrendingPosts)
		r.Get("/posts/categories", apiHandler.Categories)
		r.Get("/posts/{id}", apiHandler.GetPost)

		// Authenticated endpoints
		r.Group(func(r chi.Router) {
			r.Use(csrfMiddleware)
			r.Use(middleware.Auth(sessionManager))
			r.Use(middleware.LoadUser(sessionManager))
			r.Post("/posts", apiHandler.CreatePost)
			r.Post("/posts/{id}/like", apiHandler.LikePost)
		})

		// Admin endpoints
		r.Route("/admin", func(r chi.Router) {
			r.Use(csrfMiddleware)
			r.Use(middleware.Auth(sessionManager))
			r.Use(middleware.LoadUser(sessionManager))
			r.Use(middleware.RequireAdmin())
			r.Get("/posts", apiHandler.Queue)
			r.Get("/events", apiHandler.Events)
			r.Get("/stats", apiHandler.Stats)
			r.Post("/posts/{id}/approve", apiHandler.ApprovePost)
			r.Post("/posts/{id}/reject", apiHandler.RejectPost)
			r.Delete("/posts/{id}", apiHandler.DeletePost)
		})
	})
	slog.Info("REST API v1 mounted at /api/v1")

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
