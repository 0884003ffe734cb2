package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoadUnmarshalsViperState(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("server.host", "127.0.0.1")
	viper.Set("server.port", 9999)
	viper.Set("server.read_timeout", "15s")
	viper.Set("registrar.api_user", "apiuser")
	viper.Set("registrar.api_key", "secret")
	viper.Set("registrar.username", "account")
	viper.Set("registrar.client_ip", "203.0.113.10")
	viper.Set("registrar.timeout", "8s")
	viper.Set("social.max_body_bytes", 1024)
	viper.Set("verify.enabled", true)
	viper.Set("workers", 6)

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "127.0.0.1", cfg.Server.Host)
	require.Equal(t, 9999, cfg.Server.Port)
	require.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	require.Equal(t, "apiuser", cfg.Registrar.APIUser)
	require.Equal(t, "secret", cfg.Registrar.APIKey)
	require.Equal(t, "account", cfg.Registrar.Username)
	require.Equal(t, "203.0.113.10", cfg.Registrar.ClientIP)
	require.Equal(t, 8*time.Second, cfg.Registrar.Timeout)
	require.Equal(t, int64(1024), cfg.Social.MaxBodyBytes)
	require.True(t, cfg.Verify.Enabled)
	require.Equal(t, 6, cfg.Workers)

	require.Same(t, cfg, GetConfig())
}

func TestLoadEnvOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.SetEnvPrefix("BRANDKIT")
	viper.SetEnvKeyReplacer(envKeyReplacer())
	viper.AutomaticEnv()
	viper.SetDefault("registrar.api_key", "")

	t.Setenv("BRANDKIT_REGISTRAR_API_KEY", "from-env")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "from-env", cfg.Registrar.APIKey)
}
