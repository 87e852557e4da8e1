// internal/config/config.go
//
// Runtime configuration for the wordle binary.
// Responsibilities:
//   - Defaults, .env, WORDLE_* environment, YAML config file and flags, in rising precedence.
//   - Validate enumerations and ranges before any command runs.
//   - Map log_level to a zerolog level.

// Package config layers defaults, a .env file, WORDLE_* environment variables,
// an optional YAML config file and command-line flags into one Config.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment key, e.g. WORDLE_MAX_TURNS.
const EnvPrefix = "WORDLE"

// Keys understood by Load. Flags with the same names are bound automatically.
const (
	KeyWords     = "words"
	KeyGoal      = "goal"
	KeySeed      = "seed"
	KeyDaily     = "daily"
	KeyDailySalt = "daily_salt"
	KeyAgent     = "agent"
	KeyOpener    = "opener"
	KeyScript    = "script"
	KeyMaxTurns  = "max_turns"
	KeyFormat    = "format"
	KeyLogLevel  = "log_level"
)

// Config holds the resolved settings for one invocation.
type Config struct {
	Words     string   `mapstructure:"words"`
	Goal      string   `mapstructure:"goal"`
	Seed      int64    `mapstructure:"seed"`
	Daily     bool     `mapstructure:"daily"`
	DailySalt string   `mapstructure:"daily_salt"`
	Agent     string   `mapstructure:"agent"`
	Opener    string   `mapstructure:"opener"`
	Script    []string `mapstructure:"script"`
	MaxTurns  int      `mapstructure:"max_turns"`
	Format    string   `mapstructure:"format"`
	LogLevel  string   `mapstructure:"log_level"`
}

// Formats accepted for history output.
var Formats = []string{"text", "json", "yaml"}

// New returns a viper instance with defaults and environment binding applied.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyWords, "")
	v.SetDefault(KeyGoal, "")
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyDaily, false)
	v.SetDefault(KeyDailySalt, "local_dev_salt")
	v.SetDefault(KeyAgent, "sequential")
	v.SetDefault(KeyOpener, "")
	v.SetDefault(KeyScript, []string{})
	v.SetDefault(KeyMaxTurns, 0)
	v.SetDefault(KeyFormat, "text")
	v.SetDefault(KeyLogLevel, "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadDotEnv reads .env files into the process environment. Missing files are ignored.
func LoadDotEnv(files ...string) {
	_ = godotenv.Load(files...)
}

// Load resolves a Config from v, reading configFile first when it is set.
// Every flag in flags is bound to the key of the same name (dashes become underscores).
func Load(v *viper.Viper, configFile string, flags *pflag.FlagSet) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", configFile, err)
		}
	}
	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			if bindErr != nil {
				return
			}
			bindErr = v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
		})
		if bindErr != nil {
			return nil, fmt.Errorf("config: bind flags: %w", bindErr)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	var errs []error
	if c.MaxTurns < 0 {
		errs = append(errs, fmt.Errorf("config: max_turns must be >= 0, got %d", c.MaxTurns))
	}
	if !contains(Formats, c.Format) {
		errs = append(errs, fmt.Errorf("config: format must be one of %s, got %q", strings.Join(Formats, "|"), c.Format))
	}
	if c.Daily && c.Goal != "" {
		errs = append(errs, errors.New("config: goal and daily are mutually exclusive"))
	}
	return errors.Join(errs...)
}

// Level parses LogLevel, falling back to info.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
