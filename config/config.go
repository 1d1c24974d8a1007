// Package config loads CLI settings from flags, RAYDIUM_* environment
// variables, .env files, an optional YAML config file and the persisted
// network selection, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/chinmay1088/raydium-go/api"
	"github.com/chinmay1088/raydium-go/logging"
)

// Setting keys. Flags use the same names.
const (
	KeyBaseURL   = "base-url"
	KeyNetwork   = "network"
	KeyTimeout   = "timeout"
	KeyOutput    = "output"
	KeyLogLevel  = "log-level"
	KeyLogFormat = "log-format"
)

// EnvPrefix is prepended to every environment variable, e.g. RAYDIUM_BASE_URL.
const EnvPrefix = "RAYDIUM"

// Config holds the resolved CLI settings
type Config struct {
	BaseURL    string
	Network    string
	Timeout    time.Duration
	Output     string
	LogLevel   string
	LogFormat  string
	ConfigFile string
}

// Load resolves settings. configFile may be empty, in which case
// config.yaml is looked up in Dir() and the working directory. flags may be nil.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyNetwork, ReadNetwork())
	v.SetDefault(KeyTimeout, api.DefaultTimeout)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "auto")

	if flags != nil {
		for _, key := range []string{KeyBaseURL, KeyNetwork, KeyTimeout, KeyOutput, KeyLogLevel, KeyLogFormat} {
			if f := flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", key, err)
				}
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := Dir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		BaseURL:    strings.TrimSpace(v.GetString(KeyBaseURL)),
		Network:    strings.ToLower(strings.TrimSpace(v.GetString(KeyNetwork))),
		Timeout:    v.GetDuration(KeyTimeout),
		Output:     strings.ToLower(v.GetString(KeyOutput)),
		LogLevel:   v.GetString(KeyLogLevel),
		LogFormat:  v.GetString(KeyLogFormat),
		ConfigFile: v.ConfigFileUsed(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the network name and timeout.
func (c *Config) Validate() error {
	if c.Network != api.NetworkMainnet && c.Network != api.NetworkDevnet {
		return fmt.Errorf("invalid network: %s. Use 'mainnet' or 'devnet'", c.Network)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("invalid timeout: %s", c.Timeout)
	}
	return nil
}

// Host returns the API host: the explicit base URL if set, otherwise the
// network's host.
func (c *Config) Host() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return api.HostForNetwork(c.Network)
}

// ClientOptions turns the settings into api client options.
func (c *Config) ClientOptions() []api.Option {
	return []api.Option{
		api.WithBaseURL(c.Host()),
		api.WithTimeout(c.Timeout),
		api.WithLogger(api.NewZerologLogger(*logging.Default())),
	}
}

// loadEnvFiles loads .env.local before .env so local values win; neither
// overrides variables already set in the environment.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		if _, err := os.Stat(envFile); err == nil {
			_ = godotenv.Load(envFile)
		}
	}
}

// Dir returns the settings directory, ~/.raydium unless RAYDIUM_HOME is set.
func Dir() (string, error) {
	if dir := os.Getenv(EnvPrefix + "_HOME"); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".raydium"), nil
}
