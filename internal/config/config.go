// Package config loads host settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/JSilva6/PokerDuel/internal/game"
)

// Config holds the settings shared by the PokerDuel hosts. Command-line
// flags override these after loading.
type Config struct {
	Addr      string `env:"POKERDUEL_ADDR" envDefault:":8080"`
	RulesPath string `env:"POKERDUEL_RULES"`
	Seed      int64  `env:"POKERDUEL_SEED"`
	LogLevel  string `env:"POKERDUEL_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"POKERDUEL_LOG_FORMAT" envDefault:"console"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadDotEnv loads the given .env files (".env" when none are named) into
// the environment and then reads Config. Missing files are skipped and
// variables that are already set keep their values.
func LoadDotEnv(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return Load()
}

// Rules loads the configured rules file, or the standard rules when none is set.
func (c Config) Rules() (game.Rules, error) {
	rules, err := game.ParseRulesFile(c.RulesPath)
	if err != nil {
		return game.Rules{}, fmt.Errorf("load rules %q: %w", c.RulesPath, err)
	}
	return rules, nil
}

// NewLogger builds the host logger. Unknown levels fall back to info.
func (c Config) NewLogger() (*zap.Logger, error) {
	var level zapcore.Level
	switch c.LogLevel {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if c.LogFormat == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
