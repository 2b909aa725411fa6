// Package config loads sheetwise settings from defaults, an optional YAML
// config file, a .env file, SHEETWISE_* environment variables and command
// line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix is prepended to every environment variable, e.g.
// SHEETWISE_EVALUATION_DELAY.
const EnvPrefix = "SHEETWISE"

const appDir = "sheetwise"

// Config holds all runtime settings.
type Config struct {
	Evaluation EvaluationConfig `mapstructure:"evaluation"`
	Bank       BankConfig       `mapstructure:"bank"`
	Log        LogConfig        `mapstructure:"log"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

// EvaluationConfig controls how answers are scored.
type EvaluationConfig struct {
	// Delay is the simulated grading latency. Default: 2s.
	Delay time.Duration `mapstructure:"delay"`

	// Timeout is a hard deadline per evaluation after which the answer is
	// scored immediately. Zero disables it.
	Timeout time.Duration `mapstructure:"timeout"`
}

// BankConfig selects the question bank.
type BankConfig struct {
	// File is a YAML or JSON question bank. Empty uses the built-in bank.
	File string `mapstructure:"file"`
}

// LogConfig controls the log file.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// MetricsConfig controls the metrics textfile written on exit.
type MetricsConfig struct {
	// File is a Prometheus textfile path. Empty disables it.
	File string `mapstructure:"file"`
}

// DefaultConfig returns a Config with sensible defaults. Log.File is left
// empty and resolved by Load.
func DefaultConfig() Config {
	return Config{
		Evaluation: EvaluationConfig{
			Delay: 2 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	var problems []string
	if c.Evaluation.Delay < 0 {
		problems = append(problems, fmt.Sprintf("evaluation.delay must not be negative (got %s)", c.Evaluation.Delay))
	}
	if c.Evaluation.Timeout < 0 {
		problems = append(problems, fmt.Sprintf("evaluation.timeout must not be negative (got %s)", c.Evaluation.Timeout))
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, fmt.Sprintf("log.level: %v", err))
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Options controls where Load looks for settings.
type Options struct {
	// ConfigFile is an explicit config path. When empty, the default path is
	// read if it exists.
	ConfigFile string

	// EnvFile is a dotenv file loaded into the environment if present.
	// Default: ".env".
	EnvFile string

	// Flags, when set, override file and environment values for the flags
	// listed in flagKeys that were changed on the command line.
	Flags *pflag.FlagSet
}

// flagKeys maps command line flag names to config keys.
var flagKeys = map[string]string{
	"bank":         "bank.file",
	"delay":        "evaluation.delay",
	"timeout":      "evaluation.timeout",
	"log-file":     "log.file",
	"log-level":    "log.level",
	"metrics-file": "metrics.file",
}

// Load resolves the configuration.
func Load(opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	v := viper.New()
	def := DefaultConfig()
	v.SetDefault("evaluation.delay", def.Evaluation.Delay)
	v.SetDefault("evaluation.timeout", def.Evaluation.Timeout)
	v.SetDefault("bank.file", def.Bank.File)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("metrics.file", def.Metrics.File)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := readConfigFile(v, opts.ConfigFile); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if cfg.Log.File == "" {
		p, err := DefaultLogPath()
		if err != nil {
			return nil, err
		}
		cfg.Log.File = p
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func readConfigFile(v *viper.Viper, path string) error {
	explicit := path != ""
	if !explicit {
		p, err := DefaultConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	if _, err := os.Stat(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config file: %w", err)
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

// DefaultConfigPath resolves the config file path:
// 1. $XDG_CONFIG_HOME/sheetwise/config.yaml
// 2. ~/.config/sheetwise/config.yaml
func DefaultConfigPath() (string, error) {
	dir, err := xdgDir("XDG_CONFIG_HOME", ".config")
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir, "config.yaml"), nil
}

// DefaultLogPath resolves the log file path:
// 1. $XDG_STATE_HOME/sheetwise/sheetwise.log
// 2. ~/.local/state/sheetwise/sheetwise.log
func DefaultLogPath() (string, error) {
	dir, err := xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state"))
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir, appDir+".log"), nil
}

func xdgDir(env, fallback string) (string, error) {
	if d := os.Getenv(env); d != "" {
		return d, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, fallback), nil
}
