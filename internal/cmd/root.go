package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/brandkit/brandkit/internal/config"
	"github.com/brandkit/brandkit/internal/observability"
)

const appName = "brandkit"

var (
	cfgFile string
	verbose bool

	// Version info set by main package
	versionInfo struct {
		Version   string
		Commit    string
		BuildDate string
	}
)

// SetVersionInfo is called by main package to set version information
func SetVersionInfo(version, commit, buildDate string) {
	versionInfo.Version = version
	versionInfo.Commit = commit
	versionInfo.BuildDate = buildDate
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Check brand name availability across domains and social platforms",
	Long: `brandkit checks whether a brand name is still up for grabs.

Domain availability comes from the Namecheap registrar API; social handle
availability comes from probing public profile URLs. Use the subcommands to
run a specific check, or "check" for the combined report.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", fmt.Sprintf("config file (default is $XDG_CONFIG_HOME/%s/config.yaml)", appName))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (sets log level to debug)")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Initialize CLI logger early so we can use it in config loading
	observability.InitCLILogger(appName, verbose)

	// A .env in the working directory seeds the process environment before
	// viper reads it. Credentials usually arrive this way in development.
	if err := config.LoadDotenv(); err != nil {
		ExitWithCode(observability.CLILogger, foundry.ExitConfigInvalid, "Failed to load .env file", err)
	}

	if cfgFile != "" {
		// Use config file from flag
		viper.SetConfigFile(cfgFile)
	} else {
		if configDir, err := os.UserConfigDir(); err == nil {
			viper.AddConfigPath(filepath.Join(configDir, appName))
		}

		// Also search in current directory
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	config.BindEnvironment()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		if verbose {
			observability.CLILogger.Debug("Using config file", zap.String("path", viper.ConfigFileUsed()))
		}
	} else {
		// It's OK if config file doesn't exist, we have defaults
		if verbose {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				observability.CLILogger.Debug("No config file found, using defaults and environment variables")
			} else {
				observability.CLILogger.Warn("Error reading config file", zap.Error(err))
			}
		}
	}

	// Set defaults
	setDefaults()
}

// setDefaults sets default configuration values. Every config key must be
// registered here so environment-only overrides survive viper.Unmarshal.
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")
	viper.SetDefault("server.shutdown_timeout", "10s")

	// Registrar defaults (credentials come from env or config file)
	viper.SetDefault("registrar.api_user", "")
	viper.SetDefault("registrar.api_key", "")
	viper.SetDefault("registrar.username", "")
	viper.SetDefault("registrar.client_ip", "")
	viper.SetDefault("registrar.base_url", "")
	viper.SetDefault("registrar.timeout", "10s")

	// Social probe defaults
	viper.SetDefault("social.timeout", "10s")
	viper.SetDefault("social.max_body_bytes", 512*1024)

	// RDAP cross-check defaults
	viper.SetDefault("verify.enabled", false)
	viper.SetDefault("verify.timeout", "5s")

	// Logging defaults
	viper.SetDefault("logging.level", "info")

	viper.SetDefault("workers", 4)
}

// loadConfig unmarshals the primed viper state into a typed Config.
// Fatal on failure; commands call this after initConfig has run.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		ExitWithCode(observability.CLILogger, foundry.ExitConfigInvalid, "Failed to load configuration", err)
	}
	return cfg
}

func commandTimeout(cfg *config.Config) time.Duration {
	timeout := cfg.Registrar.Timeout
	if cfg.Social.Timeout > timeout {
		timeout = cfg.Social.Timeout
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	// Headroom for the whole run, not a single request.
	return 3 * timeout
}
