package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(New(), "", nil)
	require.NoError(t, err)
	assert.Equal(t, "sequential", cfg.Agent)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, 0, cfg.MaxTurns)
	assert.Equal(t, "local_dev_salt", cfg.DailySalt)
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("WORDLE_GOAL", "crane")
	t.Setenv("WORDLE_MAX_TURNS", "12")
	t.Setenv("WORDLE_LOG_LEVEL", "debug")

	cfg, err := Load(New(), "", nil)
	require.NoError(t, err)
	assert.Equal(t, "crane", cfg.Goal)
	assert.Equal(t, 12, cfg.MaxTurns)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("WORDLE_FORMAT", "yaml")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("format", "text", "")
	fs.Int("max-turns", 0, "")
	require.NoError(t, fs.Parse([]string{"--format", "json", "--max-turns", "3"}))

	cfg, err := Load(New(), "", fs)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, 3, cfg.MaxTurns)
}

func TestLoad_UnsetFlagKeepsEnv(t *testing.T) {
	t.Setenv("WORDLE_FORMAT", "yaml")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("format", "text", "")
	require.NoError(t, fs.Parse(nil))

	cfg, err := Load(New(), "", fs)
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Format)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordle.yaml")
	require.NoError(t, os.WriteFile(path, []byte("agent: scripted\nscript: [crane, slate]\nseed: 42\n"), 0o644))

	cfg, err := Load(New(), path, nil)
	require.NoError(t, err)
	assert.Equal(t, "scripted", cfg.Agent)
	assert.Equal(t, []string{"crane", "slate"}, cfg.Script)
	assert.Equal(t, int64(42), cfg.Seed)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Config{Format: "xml", MaxTurns: -1, Daily: true, Goal: "crane"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_turns")
	assert.Contains(t, err.Error(), "format")
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestLevel_Invalid(t *testing.T) {
	cfg := Config{LogLevel: "loud"}
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())
}
