package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
)

var ErrStorageDriverUnknown = errors.New("devlog config: storage driver is invalid")
var ErrStorageDSNRequired = errors.New("devlog config: storage dsn is required")
var ErrFeedBaseURLRequired = errors.New("devlog config: feed base url is required")
var ErrFeedLimitInvalid = errors.New("devlog config: feed limit must be zero or positive")
var ErrServerAddrRequired = errors.New("devlog config: server listen address is required")
var ErrLoggingProviderUnknown = errors.New("devlog config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("devlog config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("devlog config: logging format is invalid")

// Config aggregates runtime bindings for the devlog module. Fields use simple
// types so host applications can populate them from flags or the environment.
type Config struct {
	Server   ServerConfig
	Storage  StorageConfig
	Markdown MarkdownConfig
	Feed     FeedConfig
	Logging  LoggingConfig
}

// ServerConfig captures HTTP listener settings.
type ServerConfig struct {
	Addr          string
	AdminBasePath string
}

// StorageConfig selects the persistence backend. Driver "memory" keeps
// everything in-process and is the default for tests and examples.
type StorageConfig struct {
	Driver string
	DSN    string
}

// MarkdownConfig captures parser and highlighter behaviour for entry bodies.
type MarkdownConfig struct {
	Extensions     []string
	HighlightStyle string
}

// FeedConfig captures RSS channel metadata.
type FeedConfig struct {
	Title       string
	Description string
	BaseURL     string
	Limit       int
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults suitable for local development.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:          ":8080",
			AdminBasePath: "/admin/api",
		},
		Storage: StorageConfig{
			Driver: "memory",
		},
		Markdown: MarkdownConfig{
			Extensions:     []string{"table", "footnote", "definition", "strikethrough", "highlighting"},
			HighlightStyle: "monokai",
		},
		Feed: FeedConfig{
			Title:       "Devlog",
			Description: "Latest development log entries",
			BaseURL:     "http://localhost:8080",
			Limit:       20,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return ErrServerAddrRequired
	}
	driver := normalizeDriver(cfg.Storage.Driver)
	switch driver {
	case "memory":
	case "sqlite", "postgres":
		if strings.TrimSpace(cfg.Storage.DSN) == "" {
			return fmt.Errorf("%w: driver %s", ErrStorageDSNRequired, driver)
		}
	default:
		return fmt.Errorf("%w: %s", ErrStorageDriverUnknown, cfg.Storage.Driver)
	}
	if strings.TrimSpace(cfg.Feed.BaseURL) == "" {
		return ErrFeedBaseURLRequired
	}
	if cfg.Feed.Limit < 0 {
		return ErrFeedLimitInvalid
	}
	provider := normalizeProvider(cfg.Logging.Provider)
	if provider != "" && !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if provider == "gologger" {
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

// NormalizedDriver returns the canonical storage driver name.
func (cfg StorageConfig) NormalizedDriver() string {
	return normalizeDriver(cfg.Driver)
}

func normalizeDriver(driver string) string {
	return strings.ToLower(strings.TrimSpace(driver))
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
