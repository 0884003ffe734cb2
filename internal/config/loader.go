package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for all environment overrides, e.g.
// BRANDKIT_REGISTRAR_API_KEY maps to registrar.api_key.
const EnvPrefix = "BRANDKIT"

// BindEnvironment configures viper for EnvPrefix-based environment lookup.
func BindEnvironment() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(envKeyReplacer())
	viper.AutomaticEnv()
}

func envKeyReplacer() *strings.Replacer {
	return strings.NewReplacer(".", "_")
}

var (
	appConfig *Config
	configMu  sync.RWMutex
)

// LoadDotenv primes process environment from a .env file when one exists in
// the working directory. Missing files are fine; malformed ones are not.
func LoadDotenv() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}
	if err := godotenv.Load(); err != nil {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// Load unmarshals the merged viper state (defaults, config file, BRANDKIT_*
// environment) into a typed Config. The root command primes viper before any
// subcommand calls Load.
func Load() (*Config, error) {
	cfg := &Config{}

	decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := viper.Unmarshal(cfg, decodeHook); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	setConfig(cfg)
	return cfg, nil
}

// GetConfig returns the current application configuration (thread-safe).
func GetConfig() *Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return appConfig
}

func setConfig(cfg *Config) {
	configMu.Lock()
	defer configMu.Unlock()
	appConfig = cfg
}
