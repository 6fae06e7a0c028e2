// Package config handles configuration loading and management for Concord.
// It supports XDG config paths, project-level overrides, and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for Concord.
type Config struct {
	Anthropic AnthropicConfig `mapstructure:"anthropic"`
	Repair    RepairConfig    `mapstructure:"repair"`
	Vocab     VocabConfig     `mapstructure:"vocab"`
	Store     StoreConfig     `mapstructure:"store"`
}

// AnthropicConfig holds Anthropic API settings.
type AnthropicConfig struct {
	// APIKey is the Anthropic API key. Supports ${VAR} expansion.
	APIKey string `mapstructure:"api_key"`
	// Model is the model name passed to the API.
	Model string `mapstructure:"model"`
	// UseAWSBedrock routes calls through AWS Bedrock instead of the direct API.
	UseAWSBedrock bool `mapstructure:"use_aws_bedrock"`
	// AWSRegion is the AWS region for Bedrock.
	AWSRegion string `mapstructure:"aws_region"`
	// AWSProfile is the optional AWS profile name.
	AWSProfile string `mapstructure:"aws_profile"`
}

// RepairConfig bounds repair sessions.
type RepairConfig struct {
	// MaxAttempts is the validation-pass ceiling per session.
	MaxAttempts int `mapstructure:"max_attempts"`
	// AttemptTimeout bounds each regeneration call.
	AttemptTimeout time.Duration `mapstructure:"attempt_timeout"`
}

// VocabConfig holds operand vocabulary settings.
type VocabConfig struct {
	// OperandTable is an optional path to a YAML operand table that
	// replaces the built-in registry.
	OperandTable string `mapstructure:"operand_table"`
}

// StoreConfig holds session persistence settings.
type StoreConfig struct {
	// Path is the session database location. Empty means the default
	// XDG data path.
	Path string `mapstructure:"path"`
	// Disabled turns off session persistence entirely.
	Disabled bool `mapstructure:"disabled"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Repair: RepairConfig{
			MaxAttempts:    3,
			AttemptTimeout: 2 * time.Minute,
		},
	}
}

// Load loads configuration from XDG paths, project overrides, and environment variables.
// Precedence (highest to lowest):
// 1. Environment variables (ANTHROPIC_API_KEY, CONCORD_*)
// 2. Project config (.concord.yaml in current directory or parent)
// 3. User config (~/.config/concord/config.yaml)
// 4. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	userConfigDir := getUserConfigDir()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(userConfigDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	// Project config takes precedence over the user config
	projectConfig := findProjectConfig()
	if projectConfig != "" {
		projectViper := viper.New()
		projectViper.SetConfigFile(projectConfig)
		if err := projectViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(projectViper.AllSettings()); err != nil {
				return nil, fmt.Errorf("merging project config: %w", err)
			}
		}
	}

	v.SetEnvPrefix("CONCORD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("anthropic.api_key", "ANTHROPIC_API_KEY")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Expand ${VAR} references
	cfg.Anthropic.APIKey = expandEnv(cfg.Anthropic.APIKey)

	return cfg, nil
}

// LoadFromPath loads configuration from a specific path (for testing).
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.Anthropic.APIKey = expandEnv(cfg.Anthropic.APIKey)

	return cfg, nil
}

// Save writes the current configuration to the user config file.
func Save(cfg *Config) error {
	userConfigDir := getUserConfigDir()
	if err := os.MkdirAll(userConfigDir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	configPath := filepath.Join(userConfigDir, "config.yaml")

	v := viper.New()
	v.SetConfigFile(configPath)

	v.Set("anthropic.api_key", cfg.Anthropic.APIKey)
	v.Set("anthropic.model", cfg.Anthropic.Model)
	v.Set("anthropic.use_aws_bedrock", cfg.Anthropic.UseAWSBedrock)
	v.Set("anthropic.aws_region", cfg.Anthropic.AWSRegion)
	v.Set("anthropic.aws_profile", cfg.Anthropic.AWSProfile)
	v.Set("repair.max_attempts", cfg.Repair.MaxAttempts)
	v.Set("repair.attempt_timeout", cfg.Repair.AttemptTimeout.String())
	v.Set("vocab.operand_table", cfg.Vocab.OperandTable)
	v.Set("store.path", cfg.Store.Path)
	v.Set("store.disabled", cfg.Store.Disabled)

	return v.WriteConfig()
}

// GetUserConfigPath returns the path to the user config file.
func GetUserConfigPath() string {
	return filepath.Join(getUserConfigDir(), "config.yaml")
}

// GetProjectConfigPath returns the path to the project config file if it exists.
func GetProjectConfigPath() string {
	return findProjectConfig()
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("anthropic.api_key", "")
	v.SetDefault("anthropic.model", "")
	v.SetDefault("anthropic.use_aws_bedrock", false)
	v.SetDefault("anthropic.aws_region", "")
	v.SetDefault("anthropic.aws_profile", "")

	v.SetDefault("repair.max_attempts", 3)
	v.SetDefault("repair.attempt_timeout", "2m")

	v.SetDefault("vocab.operand_table", "")

	v.SetDefault("store.path", "")
	v.SetDefault("store.disabled", false)
}

// getUserConfigDir returns the XDG config directory for Concord.
func getUserConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "concord")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "concord")
	}
	return filepath.Join(home, ".config", "concord")
}

// findProjectConfig searches for .concord.yaml in the current directory and parents.
func findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		candidate := filepath.Join(dir, ".concord.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// expandEnv expands ${VAR} references, returning the input unchanged when
// the referenced variable is unset.
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	expanded := os.ExpandEnv(s)
	if expanded == "" && strings.Contains(s, "${") {
		return s
	}
	return expanded
}
