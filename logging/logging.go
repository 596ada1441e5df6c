// Package logging builds the logrus logger handed to graph.WithLogger.
//
// Output goes to stderr unless Config.File is set, in which case it is
// written through a lumberjack rotating file.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config describes the logger. Zero values fall back to the defaults applied
// by Normalize.
type Config struct {
	Level      string `toml:"level"`       // logrus level name, default "info"
	Format     string `toml:"format"`      // "text" (default) or "json"
	File       string `toml:"file"`        // rotate into this file when set
	MaxSizeMB  int    `toml:"max_size_mb"` // per file, default 100
	MaxBackups int    `toml:"max_backups"` // default 7
	MaxAgeDays int    `toml:"max_age_days"`
	Compress   bool   `toml:"compress"`
}

// Normalize fills unset fields with defaults.
func (c *Config) Normalize() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "text"
	}
	if c.MaxSizeMB == 0 {
		c.MaxSizeMB = 100
	}
	if c.MaxBackups == 0 {
		c.MaxBackups = 7
	}
	if c.MaxAgeDays == 0 {
		c.MaxAgeDays = 30
	}
}

// LoadConfig decodes a TOML file holding a Config.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("logging: decode %s: %w", path, err)
	}
	cfg.Normalize()

	return &cfg, nil
}

// New returns a logger configured by cfg. An unknown level or format is an
// error.
//
// When cfg.File is set, logger.Out is a *lumberjack.Logger that opens the
// file on first write and keeps it open for the life of the process. Callers
// that need to release it earlier type-assert logger.Out to io.Closer and
// close it.
func New(cfg Config) (*logrus.Logger, error) {
	cfg.Normalize()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	logger := logrus.New()
	logger.SetLevel(level)

	switch cfg.Format {
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("logging: unknown format %q", cfg.Format)
	}

	logger.SetOutput(output(cfg))

	return logger, nil
}

func output(cfg Config) io.Writer {
	if cfg.File == "" {
		return os.Stderr
	}

	return &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
}
