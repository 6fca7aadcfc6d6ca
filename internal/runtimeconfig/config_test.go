package runtimeconfig_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-devlog/internal/runtimeconfig"
)

func TestConfigValidate_AcceptsDefaults(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidate_RequiresServerAddr(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Server.Addr = " "

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrServerAddrRequired) {
		t.Fatalf("expected ErrServerAddrRequired, got %v", err)
	}
}

func TestConfigValidate_RejectsUnknownStorageDriver(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Storage.Driver = "mongo"

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrStorageDriverUnknown) {
		t.Fatalf("expected ErrStorageDriverUnknown, got %v", err)
	}
}

func TestConfigValidate_RequiresDSNForSQLBackends(t *testing.T) {
	for _, driver := range []string{"sqlite", "postgres"} {
		cfg := runtimeconfig.DefaultConfig()
		cfg.Storage.Driver = driver
		cfg.Storage.DSN = ""

		err := cfg.Validate()
		if !errors.Is(err, runtimeconfig.ErrStorageDSNRequired) {
			t.Fatalf("driver %s: expected ErrStorageDSNRequired, got %v", driver, err)
		}
	}
}

func TestConfigValidate_NormalizesDriverCase(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Storage.Driver = " SQLite "
	cfg.Storage.DSN = "file::memory:?cache=shared"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
	if got := cfg.Storage.NormalizedDriver(); got != "sqlite" {
		t.Fatalf("expected normalized driver sqlite, got %q", got)
	}
}

func TestConfigValidate_RequiresFeedBaseURL(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Feed.BaseURL = ""

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrFeedBaseURLRequired) {
		t.Fatalf("expected ErrFeedBaseURLRequired, got %v", err)
	}
}

func TestConfigValidate_RejectsNegativeFeedLimit(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Feed.Limit = -1

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrFeedLimitInvalid) {
		t.Fatalf("expected ErrFeedLimitInvalid, got %v", err)
	}
}

func TestConfigValidate_RejectsUnknownLoggingProvider(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Logging.Provider = "syslog"

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}

func TestConfigValidate_RejectsInvalidLoggingLevel(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Logging.Level = "verbose"

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}
}

func TestConfigValidate_RejectsInvalidLoggingFormat(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}
}
