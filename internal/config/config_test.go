package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every lookup at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	for _, k := range []string{"EVALUATION_DELAY", "EVALUATION_TIMEOUT", "BANK_FILE", "LOG_FILE", "LOG_LEVEL", "METRICS_FILE"} {
		t.Setenv(EnvPrefix+"_"+k, "")
		os.Unsetenv(EnvPrefix + "_" + k)
	}
	return dir
}

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	dir := isolate(t)
	cfg, err := Load(Options{EnvFile: filepath.Join(dir, "missing.env")})
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.Evaluation.Delay)
	assert.Zero(t, cfg.Evaluation.Timeout)
	assert.Empty(t, cfg.Bank.File)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, filepath.Join(dir, "state", "sheetwise", "sheetwise.log"), cfg.Log.File)
}

func TestLoad_DefaultConfigFile(t *testing.T) {
	dir := isolate(t)
	write(t, filepath.Join(dir, "config", "sheetwise", "config.yaml"), `
evaluation:
  delay: 500ms
  timeout: 3s
bank:
  file: /tmp/bank.yaml
`)
	cfg, err := Load(Options{EnvFile: filepath.Join(dir, "missing.env")})
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, cfg.Evaluation.Delay)
	assert.Equal(t, 3*time.Second, cfg.Evaluation.Timeout)
	assert.Equal(t, "/tmp/bank.yaml", cfg.Bank.File)
}

func TestLoad_ExplicitConfigFileMissing(t *testing.T) {
	dir := isolate(t)
	_, err := Load(Options{ConfigFile: filepath.Join(dir, "nope.yaml"), EnvFile: filepath.Join(dir, "missing.env")})
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	cfgPath := filepath.Join(dir, "custom.yaml")
	write(t, cfgPath, "log:\n  level: warn\n")
	t.Setenv("SHEETWISE_LOG_LEVEL", "debug")

	cfg, err := Load(Options{ConfigFile: cfgPath, EnvFile: filepath.Join(dir, "missing.env")})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	envPath := filepath.Join(dir, "test.env")
	write(t, envPath, "SHEETWISE_METRICS_FILE=/tmp/sheetwise.prom\n")
	t.Cleanup(func() { os.Unsetenv("SHEETWISE_METRICS_FILE") })

	cfg, err := Load(Options{EnvFile: envPath})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/sheetwise.prom", cfg.Metrics.File)
}

func TestLoad_FlagsWin(t *testing.T) {
	dir := isolate(t)
	t.Setenv("SHEETWISE_EVALUATION_DELAY", "5s")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Duration("delay", 0, "")
	fs.String("log-file", "", "")
	require.NoError(t, fs.Parse([]string{"--delay=0s", "--log-file=/tmp/x.log"}))

	cfg, err := Load(Options{Flags: fs, EnvFile: filepath.Join(dir, "missing.env")})
	require.NoError(t, err)
	assert.Zero(t, cfg.Evaluation.Delay)
	assert.Equal(t, "/tmp/x.log", cfg.Log.File)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Evaluation.Delay = -time.Second
	cfg.Evaluation.Timeout = -time.Second
	cfg.Log.Level = "chatty"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "evaluation.delay")
	assert.Contains(t, err.Error(), "evaluation.timeout")
	assert.Contains(t, err.Error(), "log.level")
}

func TestDefaultPaths(t *testing.T) {
	dir := isolate(t)
	p, err := DefaultConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config", "sheetwise", "config.yaml"), p)
}
