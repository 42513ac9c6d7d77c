package runtimeconfig

import (
	"errors"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
}

func TestValidateRejectsUnknownStorage(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.Provider = "postgres"
	if err := cfg.Validate(); !errors.Is(err, ErrStorageProviderUnknown) {
		t.Fatalf("expected ErrStorageProviderUnknown, got %v", err)
	}
}

func TestValidateCacheRequiresBun(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cache.Enabled = true
	cfg.Storage.Provider = "memory"
	if err := cfg.Validate(); !errors.Is(err, ErrCacheRequiresBunStorage) {
		t.Fatalf("expected ErrCacheRequiresBunStorage, got %v", err)
	}

	cfg.Storage.Provider = "bun"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("cache over bun storage should validate, got %v", err)
	}
}

func TestValidateRejectsMalformedWidgetKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Widgets.DefaultKeys = []string{"tasks-overview", "Bad Key"}
	if err := cfg.Validate(); !errors.Is(err, ErrWidgetKeyInvalid) {
		t.Fatalf("expected ErrWidgetKeyInvalid, got %v", err)
	}
}

func TestValidateLoggingFeature(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = ""
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingProviderRequired) {
		t.Fatalf("expected ErrLoggingProviderRequired, got %v", err)
	}

	cfg.Logging.Provider = "syslog"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}

	cfg.Logging.Provider = "gologger"
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}

	cfg.Logging.Level = "debug"
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}

	cfg.Logging.Format = "pretty"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("gologger config should validate, got %v", err)
	}
}

func TestValidateNegativeTimeouts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cache.DefaultTTL = -1
	if err := cfg.Validate(); !errors.Is(err, ErrCacheTTLInvalid) {
		t.Fatalf("expected ErrCacheTTLInvalid, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Commands.Timeout = -1
	if err := cfg.Validate(); !errors.Is(err, ErrCommandTimeoutInvalid) {
		t.Fatalf("expected ErrCommandTimeoutInvalid, got %v", err)
	}
}
