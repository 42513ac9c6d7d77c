package runtimeconfig

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ErrStorageProviderUnknown indicates an unsupported document storage provider.
var ErrStorageProviderUnknown = errors.New("landing config: storage provider is invalid")

// ErrCacheRequiresBunStorage ensures the repository cache only wraps the bun provider.
var ErrCacheRequiresBunStorage = errors.New("landing config: repository cache requires bun storage")

var ErrCacheTTLInvalid = errors.New("landing config: cache ttl must be zero or positive")
var ErrCommandTimeoutInvalid = errors.New("landing config: command timeout must be zero or positive")
var ErrWidgetKeyInvalid = errors.New("landing config: widget key is invalid")
var ErrLoggingProviderRequired = errors.New("landing config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("landing config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("landing config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("landing config: logging format is invalid")

var widgetKeyPattern = regexp.MustCompile(`^[a-z-]+$`)

// Config aggregates feature flags and adapter bindings for the landing module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Enabled   bool
	Household HouseholdConfig
	Widgets   WidgetConfig
	Markdown  MarkdownConfig
	Template  TemplateConfig
	Storage   StorageConfig
	Cache     CacheConfig
	Commands  CommandsConfig
	Logging   LoggingConfig
	Features  Features
}

// HouseholdConfig carries defaults applied when the caller omits household context.
type HouseholdConfig struct {
	FallbackName string
}

// WidgetConfig controls which widgets the default landing page carries. An
// empty DefaultKeys list falls back to the built-in defaults.
type WidgetConfig struct {
	DefaultKeys []string
}

// MarkdownConfig mirrors the renderer options for runtime configuration.
type MarkdownConfig struct {
	HardWraps  bool
	Unsafe     bool
	Extensions []string
}

// TemplateConfig points at an optional frontmatter template used for the
// default landing document.
type TemplateConfig struct {
	Path string
}

// StorageConfig selects the document repository backing.
type StorageConfig struct {
	Provider string
	DSN      string
}

// CacheConfig captures repository cache behaviour.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// CommandsConfig captures optional command-layer behaviour.
type CommandsConfig struct {
	Enabled bool
	Timeout time.Duration
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// Features toggles module functionality.
type Features struct {
	Editor   bool
	Commands bool
	Logger   bool
}

// DefaultConfig returns opinionated defaults for an embedded landing module.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Household: HouseholdConfig{
			FallbackName: "",
		},
		Widgets: WidgetConfig{},
		Markdown: MarkdownConfig{
			HardWraps: true,
			Unsafe:    true,
		},
		Storage: StorageConfig{
			Provider: "memory",
		},
		Cache: CacheConfig{
			Enabled:    false,
			DefaultTTL: time.Minute,
		},
		Commands: CommandsConfig{
			Enabled: true,
			Timeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
		Features: Features{
			Editor:   true,
			Commands: true,
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	provider := normalizeProvider(cfg.Storage.Provider)
	if provider != "" && !isSupportedStorage(provider) {
		return fmt.Errorf("%w: %s", ErrStorageProviderUnknown, provider)
	}
	if cfg.Cache.Enabled && provider != "bun" {
		return ErrCacheRequiresBunStorage
	}
	if cfg.Cache.DefaultTTL < 0 {
		return ErrCacheTTLInvalid
	}
	if cfg.Commands.Timeout < 0 {
		return ErrCommandTimeoutInvalid
	}
	for _, key := range cfg.Widgets.DefaultKeys {
		if !widgetKeyPattern.MatchString(key) {
			return fmt.Errorf("%w: %q", ErrWidgetKeyInvalid, key)
		}
	}
	if cfg.Features.Logger {
		logProvider := normalizeProvider(cfg.Logging.Provider)
		if logProvider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedLogProvider(logProvider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, logProvider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if logProvider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedStorage(provider string) bool {
	switch provider {
	case "memory", "bun":
		return true
	default:
		return false
	}
}

func isSupportedLogProvider(provider string) bool {
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
