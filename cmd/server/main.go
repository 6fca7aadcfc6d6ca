package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	devlog "github.com/goliatone/go-devlog"
	"github.com/goliatone/go-devlog/internal/di"
	devloghttp "github.com/goliatone/go-devlog/internal/http"
	"github.com/goliatone/go-devlog/internal/logging"
	"github.com/goliatone/go-devlog/internal/storage"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; production relies on real environment variables.
	_ = godotenv.Load()

	cfg := loadConfig()

	opts := []di.Option{}
	if cfg.Storage.NormalizedDriver() != "memory" {
		db, err := storage.Open(cfg.Storage)
		if err != nil {
			log.Fatalf("open storage: %v", err)
		}
		defer db.Close()
		if err := devlog.RunMigrations(context.Background(), db); err != nil {
			log.Fatalf("run migrations: %v", err)
		}
		opts = append(opts, di.WithBunDB(db))
	}

	module, err := devlog.New(cfg, opts...)
	if err != nil {
		log.Fatalf("initialise devlog: %v", err)
	}

	mux := http.NewServeMux()

	adminAPI := devloghttp.NewAdminAPI(
		devloghttp.WithBasePath(cfg.Server.AdminBasePath),
		devloghttp.WithContentService(module.Content()),
		devloghttp.WithRegistry(module.Admin()),
		devloghttp.WithAdminLogger(logging.HTTPLogger(module.LoggerProvider())),
	)
	if err := adminAPI.Register(mux); err != nil {
		log.Fatalf("register admin api: %v", err)
	}

	publicAPI := devloghttp.NewPublicAPI(
		devloghttp.WithPublicContentService(module.Content()),
		devloghttp.WithMarkdownRenderer(module.Markdown()),
		devloghttp.WithFeedService(module.Feeds()),
		devloghttp.WithPublicLogger(logging.HTTPLogger(module.LoggerProvider())),
	)
	if err := publicAPI.Register(mux); err != nil {
		log.Fatalf("register public api: %v", err)
	}

	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: mux,
	}

	go func() {
		log.Printf("listening on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown: %v", err)
	}
	log.Println("server exited gracefully")
}

func loadConfig() devlog.Config {
	cfg := devlog.DefaultConfig()
	cfg.Server.Addr = getEnv("DEVLOG_ADDR", cfg.Server.Addr)
	cfg.Server.AdminBasePath = getEnv("DEVLOG_ADMIN_BASE", cfg.Server.AdminBasePath)
	cfg.Storage.Driver = getEnv("DEVLOG_DB_DRIVER", cfg.Storage.Driver)
	cfg.Storage.DSN = getEnv("DEVLOG_DB_DSN", cfg.Storage.DSN)
	cfg.Feed.Title = getEnv("DEVLOG_FEED_TITLE", cfg.Feed.Title)
	cfg.Feed.Description = getEnv("DEVLOG_FEED_DESCRIPTION", cfg.Feed.Description)
	cfg.Feed.BaseURL = getEnv("DEVLOG_BASE_URL", cfg.Feed.BaseURL)
	cfg.Feed.Limit = getEnvAsInt("DEVLOG_FEED_LIMIT", cfg.Feed.Limit)
	cfg.Markdown.HighlightStyle = getEnv("DEVLOG_HIGHLIGHT_STYLE", cfg.Markdown.HighlightStyle)
	cfg.Logging.Provider = getEnv("DEVLOG_LOG_PROVIDER", cfg.Logging.Provider)
	cfg.Logging.Level = getEnv("DEVLOG_LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = getEnv("DEVLOG_LOG_FORMAT", cfg.Logging.Format)
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return parsed
}
