// Package config provides configuration loading using koanf.
// Precedence: YASLTIME_* environment variables, then compiled defaults.
package config

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// EnvPrefix is stripped from environment variable names before they are
// matched against configuration keys.
const EnvPrefix = "YASLTIME_"

// ErrInvalid is the cause of every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the process configuration.
type Config struct {
	// UTCOffset is the standing offset: "local" for the process zone,
	// "Z" for UTC, or ±HH:MM.
	UTCOffset string `koanf:"utc_offset"`

	// Logging configuration
	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"` // "console" or "json"
}

func defaults() *Config {
	return &Config{
		UTCOffset: "local",
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// Load reads the configuration from the environment on top of the
// compiled defaults and validates it.
func Load(ctx context.Context) (*Config, error) {
	k := koanf.New(".")

	cfg := defaults()

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, "load env vars")
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field without resolving the offset.
func (c *Config) Validate() error {
	if _, err := parseOffset(c.UTCOffset); err != nil {
		return err
	}
	if _, err := zap.ParseAtomicLevel(c.LogLevel); err != nil {
		return errors.Wrapf(ErrInvalid, "log_level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return errors.Wrapf(ErrInvalid, "log_format %q", c.LogFormat)
	}
	return nil
}

var offsetPattern = regexp.MustCompile(`^([+-])(\d{2}):(\d{2})$`)

// parseOffset returns the offset in minutes east of UTC, or nil for
// "local".
func parseOffset(s string) (*int, error) {
	switch strings.ToLower(s) {
	case "local", "":
		return nil, nil
	case "z", "utc":
		zero := 0
		return &zero, nil
	}

	m := offsetPattern.FindStringSubmatch(s)
	if m == nil {
		return nil, errors.Wrapf(ErrInvalid, "utc_offset %q", s)
	}
	h, _ := strconv.Atoi(m[2])
	mm, _ := strconv.Atoi(m[3])
	if h > 23 || mm > 59 {
		return nil, errors.Wrapf(ErrInvalid, "utc_offset %q", s)
	}
	off := h*60 + mm
	if m[1] == "-" {
		off = -off
	}
	return &off, nil
}

// OffsetMinutes resolves the standing offset in minutes east of UTC.
// "local" is read from the process zone at the instant now returns; the
// caller keeps the result rather than calling this again.
func (c *Config) OffsetMinutes(now func() time.Time) (int, error) {
	off, err := parseOffset(c.UTCOffset)
	if err != nil {
		return 0, err
	}
	if off != nil {
		return *off, nil
	}
	_, sec := now().Zone()
	return sec / 60, nil
}

// NewLogger builds the process logger from the logging fields.
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalid, "log_level %q", c.LogLevel)
	}

	zc := zap.NewDevelopmentConfig()
	if c.LogFormat == "json" {
		zc = zap.NewProductionConfig()
	}
	zc.Level = level
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	l, err := zc.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return l, nil
}
