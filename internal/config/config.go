package config

import (
	"path/filepath"
	"strings"

	"als-keeper/internal/env"
	"als-keeper/internal/models"

	"github.com/spf13/viper"
)

/**
 * Server configuration parameters
 * @property {string} address - Server listening address (e.g. "127.0.0.1:8390")
 * @property {string} mode - Application mode (debug/release/test)
 */
type ServerConfig struct {
	Address string `mapstructure:"address"`
	Mode    string `mapstructure:"mode"`
}

/**
 * Logging configuration
 * @property {string} level - Log level (debug/info/warn/error)
 * @property {string} path - Log file path, "console" for stdout only
 */
type LogConfig struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

/**
 * Metrics configuration
 * @property {bool} enabled - Expose the Prometheus /metrics endpoint
 */
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

/**
 * Release feed configuration
 * @property {string} repository - Upstream repository in "owner/name" form
 * @property {string} api_base - Release feed API base URL
 * @property {bool} pre_release - Allow prerelease versions when picking the latest release
 * @property {string} token_env - Environment variable holding an optional API token
 */
type ReleaseConfig struct {
	Repository string `mapstructure:"repository"`
	ApiBase    string `mapstructure:"api_base"`
	PreRelease bool   `mapstructure:"pre_release"`
	TokenEnv   string `mapstructure:"token_env"`
}

/**
 * Language server configuration
 * @property {string} name - Executable and release asset base name
 * @property {string} install_dir - Install root holding one directory per version
 * @property {LanguageServerSettings} settings - Per-project settings payload (binary override + workspace configuration)
 */
type LanguageServerConfig struct {
	Name       string                        `mapstructure:"name"`
	InstallDir string                        `mapstructure:"install_dir"`
	Settings   models.LanguageServerSettings `mapstructure:"settings"`
}

type AppConfig struct {
	Server         ServerConfig         `mapstructure:"server"`
	Log            LogConfig            `mapstructure:"log"`
	Metrics        MetricsConfig        `mapstructure:"metrics"`
	Release        ReleaseConfig        `mapstructure:"release"`
	LanguageServer LanguageServerConfig `mapstructure:"language_server"`
}

/**
 * Load application configuration from YAML file
 * @returns {*AppConfig} Parsed configuration, {error} on read/unmarshal failure
 * @description
 * - Reads als-keeper.yaml from the keeper directory or the working directory
 * - Environment variables with the ALS_ prefix override file values
 * - A missing config file is not an error; defaults apply
 */
func LoadConfig() (*AppConfig, error) {
	viper.SetConfigName("als-keeper")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(env.KeeperDir)
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("ALS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg AppConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

var Config AppConfig

func collectConfig(cfg *AppConfig) *AppConfig {
	if cfg.Server.Address == "" {
		cfg.Server.Address = "127.0.0.1:8390"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Release.Repository == "" {
		cfg.Release.Repository = "arduino/arduino-language-server"
	}
	if cfg.Release.ApiBase == "" {
		cfg.Release.ApiBase = "https://api.github.com"
	}
	if cfg.Release.TokenEnv == "" {
		cfg.Release.TokenEnv = "GITHUB_TOKEN"
	}
	if cfg.LanguageServer.Name == "" {
		cfg.LanguageServer.Name = "arduino-language-server"
	}
	if cfg.LanguageServer.InstallDir == "" {
		cfg.LanguageServer.InstallDir = filepath.Join(env.KeeperDir, "language-server")
	}
	return cfg
}

/**
 * Get per-project language server settings from the loaded configuration
 * @returns {*models.LanguageServerSettings} Settings payload, never nil
 */
func GetLanguageServerSettings() *models.LanguageServerSettings {
	return &Config.LanguageServer.Settings
}

/**
 * Reload configuration from disk, replacing the in-memory copy
 * @returns {error} Returns error if loading fails, nil on success
 */
func ReloadConfig() error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	Config = *collectConfig(cfg)
	return nil
}

func init() {
	cfg, err := LoadConfig()
	if err == nil {
		Config = *cfg
	}
	collectConfig(&Config)
}
