// Package config loads tabletop settings from the environment
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/tabletop-inventory/internal/errors"
)

// DefaultSaveDirName is the save directory created under the user's home
const DefaultSaveDirName = "tabletop_inventory"

var logLevels = []string{"debug", "info", "warn", "error"}

// Config holds settings shared by every command
type Config struct {
	// SaveDir holds one JSON document per character. Defaults to ~/tabletop_inventory.
	SaveDir           string `env:"TABLETOP_SAVE_DIR"`
	LogLevel          string `env:"TABLETOP_LOG_LEVEL" envDefault:"warn"`
	DefaultGameSystem string `env:"TABLETOP_DEFAULT_GAME_SYSTEM" envDefault:"Generic"`
	// StrictCurrency makes applied conversions refuse to overdraw a denomination
	StrictCurrency bool `env:"TABLETOP_STRICT_CURRENCY" envDefault:"false"`
	WrapWidth      int  `env:"TABLETOP_WRAP_WIDTH" envDefault:"80"`
}

// Load parses the environment, fills in the default save directory and validates the result
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}

	if err := cfg.ResolveSaveDir(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ResolveSaveDir applies the home directory default and expands a leading ~
func (c *Config) ResolveSaveDir() error {
	if c.SaveDir != "" && c.SaveDir != "~" && !strings.HasPrefix(c.SaveDir, "~/") {
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return errors.Wrap(err, "failed to find home directory for the save directory")
	}

	switch c.SaveDir {
	case "":
		c.SaveDir = filepath.Join(home, DefaultSaveDirName)
	case "~":
		c.SaveDir = home
	default:
		c.SaveDir = filepath.Join(home, c.SaveDir[2:])
	}
	return nil
}

// Validate validates the Config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("SaveDir", c.SaveDir, vb)
	errors.ValidateEnum("LogLevel", strings.ToLower(c.LogLevel), logLevels, vb)
	errors.ValidateRange("WrapWidth", c.WrapWidth, 20, 400, vb)

	return vb.Build()
}

// SlogLevel returns the configured log level, or warn if it can't be parsed
func (c *Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelWarn, err
	}
	return level, nil
}
