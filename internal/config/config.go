// Package config loads the service configuration from an optional YAML file
// and environment variables, environment taking precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"tripcore.trainlog.org/internal/geo"
)

// Config holds all the configuration settings for our application.
type Config struct {
	Port      int    `koanf:"port"`
	Env       string `koanf:"env"`
	SentryDSN string `koanf:"sentry_dsn"`

	// SearchLimit caps autocomplete results when a request sets no limit.
	SearchLimit int `koanf:"search_limit"`
	// GapKm is the largest gap left between path points by interpolation.
	GapKm float64 `koanf:"gap_km"`

	// CatalogDir holds cached GTFS bundles named feed_<id>_<version>.zip.
	CatalogDir     string        `koanf:"catalog_dir"`
	Feeds          []string      `koanf:"feeds"`
	CatalogRefresh time.Duration `koanf:"catalog_refresh"`

	MetricsTTL time.Duration `koanf:"metrics_ttl"`

	// DieselShares maps country codes to the share of diesel rail traction.
	DieselShares map[string]float64 `koanf:"diesel_shares"`
}

// Configuration validation errors.
var (
	ErrInvalidPort        = errors.New("port must be a valid integer between 1 and 65535")
	ErrInvalidEnv         = errors.New("env must be one of development, testing, staging, production")
	ErrInvalidSearchLimit = errors.New("search_limit must be positive")
	ErrInvalidGap         = errors.New("gap_km must be at least 0.1")
	ErrInvalidDuration    = errors.New("duration must be a valid Go duration")
	ErrMissingCatalogDir  = errors.New("catalog_dir is required when feeds are configured")
	ErrInvalidDieselShare = errors.New("diesel shares must be between 0 and 1")
)

// Default values.
const (
	DefaultPort           = 4000
	DefaultEnv            = "development"
	DefaultSearchLimit    = 20
	DefaultGapKm          = 50
	DefaultCatalogDir     = "cache"
	DefaultCatalogRefresh = time.Hour
	DefaultMetricsTTL     = 10 * time.Second
)

var validEnvs = map[string]bool{
	"development": true,
	"testing":     true,
	"staging":     true,
	"production":  true,
}

// Load reads configuration from an optional YAML file and environment
// variables. Environment variables take precedence over file values.
// Returns the loaded config and a slice of errors (empty if valid). If the
// config file cannot be loaded, the config is nil.
func Load(configFilePath string) (*Config, []error) {
	k := koanf.New(".")
	var loadErrs []error

	if configFilePath != "" {
		if err := k.Load(file.Provider(configFilePath), yaml.Parser()); err != nil {
			return nil, []error{fmt.Errorf("failed to load config file %s: %w", configFilePath, err)}
		}
	}

	port, err := getEnvIntOrDefault([]string{"TRIPCORE_PORT", "PORT"}, k.Int("port"), DefaultPort)
	if err != nil {
		loadErrs = append(loadErrs, fmt.Errorf("%w: %v", ErrInvalidPort, err))
	}

	searchLimit, err := getEnvIntOrDefault([]string{"TRIPCORE_SEARCH_LIMIT"}, k.Int("search_limit"), DefaultSearchLimit)
	if err != nil {
		loadErrs = append(loadErrs, fmt.Errorf("%w: %v", ErrInvalidSearchLimit, err))
	}

	gapKm, err := getEnvFloatOrDefault("TRIPCORE_GAP_KM", k.Float64("gap_km"), DefaultGapKm)
	if err != nil {
		loadErrs = append(loadErrs, fmt.Errorf("%w: %v", ErrInvalidGap, err))
	}

	catalogRefresh, err := getEnvDurationOrDefault("TRIPCORE_CATALOG_REFRESH", k, "catalog_refresh", DefaultCatalogRefresh)
	if err != nil {
		loadErrs = append(loadErrs, err)
	}

	metricsTTL, err := getEnvDurationOrDefault("TRIPCORE_METRICS_TTL", k, "metrics_ttl", DefaultMetricsTTL)
	if err != nil {
		loadErrs = append(loadErrs, err)
	}

	feeds := k.Strings("feeds")
	if val := os.Getenv("TRIPCORE_FEEDS"); val != "" {
		feeds = splitList(val)
	}

	cfg := &Config{
		Port:           port,
		Env:            getEnvOrDefault([]string{"TRIPCORE_ENV", "ENV"}, k.String("env"), DefaultEnv),
		SentryDSN:      getEnvOrDefault([]string{"SENTRY_DSN"}, k.String("sentry_dsn"), ""),
		SearchLimit:    searchLimit,
		GapKm:          gapKm,
		CatalogDir:     getEnvOrDefault([]string{"TRIPCORE_CATALOG_DIR"}, k.String("catalog_dir"), DefaultCatalogDir),
		Feeds:          feeds,
		CatalogRefresh: catalogRefresh,
		MetricsTTL:     metricsTTL,
		DieselShares:   k.Float64Map("diesel_shares"),
	}

	errs := cfg.Validate()
	errs = append(loadErrs, errs...)

	return cfg, errs
}

// getEnvOrDefault tries multiple environment variable keys in order.
// Returns the first non-empty value found, otherwise the koanf value, or default.
func getEnvOrDefault(envKeys []string, koanfVal string, defaultVal string) string {
	for _, key := range envKeys {
		if val := os.Getenv(key); val != "" {
			return val
		}
	}
	if koanfVal != "" {
		return koanfVal
	}
	return defaultVal
}

// getEnvIntOrDefault tries multiple environment variable keys in order and
// returns the first one set as an int, otherwise the koanf value, or default.
// A zero koanf value counts as unset.
func getEnvIntOrDefault(envKeys []string, koanfVal int, defaultVal int) (int, error) {
	for _, key := range envKeys {
		if val := os.Getenv(key); val != "" {
			i, err := strconv.Atoi(val)
			if err != nil {
				return 0, fmt.Errorf("%s must be a valid integer, got %q", key, val)
			}
			return i, nil
		}
	}
	if koanfVal != 0 {
		return koanfVal, nil
	}
	return defaultVal, nil
}

// getEnvFloatOrDefault returns the environment variable as float64 if set, otherwise the koanf value, or default.
func getEnvFloatOrDefault(envKey string, koanfVal float64, defaultVal float64) (float64, error) {
	if val := os.Getenv(envKey); val != "" {
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0, fmt.Errorf("%s must be a valid number, got %q", envKey, val)
		}
		return f, nil
	}
	if koanfVal != 0 {
		return koanfVal, nil
	}
	return defaultVal, nil
}

// getEnvDurationOrDefault reads a duration such as "90s" or "1h" from the
// environment, then the file, then falls back to defaultVal.
func getEnvDurationOrDefault(envKey string, k *koanf.Koanf, koanfKey string, defaultVal time.Duration) (time.Duration, error) {
	if val := os.Getenv(envKey); val != "" {
		d, err := time.ParseDuration(val)
		if err != nil {
			return 0, fmt.Errorf("%s: %w, got %q", envKey, ErrInvalidDuration, val)
		}
		return d, nil
	}
	if !k.Exists(koanfKey) {
		return defaultVal, nil
	}
	if d := k.Duration(koanfKey); d != 0 {
		return d, nil
	}
	if _, err := time.ParseDuration(k.String(koanfKey)); err != nil && k.String(koanfKey) != "0" {
		return 0, fmt.Errorf("%s: %w, got %q", koanfKey, ErrInvalidDuration, k.String(koanfKey))
	}
	return 0, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate checks the loaded values. Returns a slice of validation errors
// (empty if valid).
func (c *Config) Validate() []error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("%w, got %d", ErrInvalidPort, c.Port))
	}
	if !validEnvs[c.Env] {
		errs = append(errs, fmt.Errorf("%w, got %q", ErrInvalidEnv, c.Env))
	}
	if c.SearchLimit <= 0 {
		errs = append(errs, ErrInvalidSearchLimit)
	}
	if !(c.GapKm >= geo.MinGapKm) {
		errs = append(errs, fmt.Errorf("%w, got %v", ErrInvalidGap, c.GapKm))
	}
	if c.CatalogRefresh < 0 || c.MetricsTTL <= 0 {
		errs = append(errs, ErrInvalidDuration)
	}
	if len(c.Feeds) > 0 && c.CatalogDir == "" {
		errs = append(errs, ErrMissingCatalogDir)
	}
	for cc, share := range c.DieselShares {
		if share < 0 || share > 1 {
			errs = append(errs, fmt.Errorf("%w: %s=%v", ErrInvalidDieselShare, cc, share))
		}
	}

	return errs
}

// LogSummary returns a summary of the configuration suitable for logging.
func (c *Config) LogSummary() map[string]string {
	dsn := "<not set>"
	if c.SentryDSN != "" {
		dsn = "****"
	}
	return map[string]string{
		"port":            strconv.Itoa(c.Port),
		"env":             c.Env,
		"sentry_dsn":      dsn,
		"search_limit":    strconv.Itoa(c.SearchLimit),
		"gap_km":          strconv.FormatFloat(c.GapKm, 'f', -1, 64),
		"catalog_dir":     c.CatalogDir,
		"feeds":           strings.Join(c.Feeds, ","),
		"catalog_refresh": c.CatalogRefresh.String(),
		"metrics_ttl":     c.MetricsTTL.String(),
	}
}
