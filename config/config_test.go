package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"delivery-console/config"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "admin", cfg.App)
	assert.Equal(t, "http://localhost:8001", cfg.AuthSvcURL)
	assert.Equal(t, "http://localhost:8002", cfg.CatalogSvcURL)
	assert.Equal(t, "http://localhost:8003", cfg.OrderSvcURL)
	assert.Equal(t, 3*time.Second, cfg.NotificationDuration)
	assert.Equal(t, 300*time.Millisecond, cfg.SearchDebounce)
	assert.Equal(t, 10*time.Second, cfg.BadgePollInterval)
	assert.Equal(t, "console-notifications", cfg.NotificationTopic)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP", "storefront")
	t.Setenv("ORDER_SVC_URL", "http://orders:8003")
	t.Setenv("BADGE_POLL_INTERVAL", "2s")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test,http://b.test")

	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "storefront", cfg.App)
	assert.Equal(t, "http://orders:8003", cfg.OrderSvcURL)
	assert.Equal(t, 2*time.Second, cfg.BadgePollInterval)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "console.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app: storefront\nremoval_delay: 1s\nlisten_addr: \":9000\"\n"), 0o600))

	cfg, err := config.Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "storefront", cfg.App)
	assert.Equal(t, time.Second, cfg.RemovalDelay)
	assert.Equal(t, ":9000", cfg.ListenAddr)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown app", env: map[string]string{"APP": "courier"}},
		{name: "empty service url", env: map[string]string{"CATALOG_SVC_URL": " "}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			for key, value := range testCase.env {
				t.Setenv(key, value)
			}
			_, err := config.Load(viper.New(), "")
			assert.Error(t, err)
		})
	}

	_, err := config.Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
