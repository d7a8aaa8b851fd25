package siteshell

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbmgmt/siteshell/analytics"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, "https://sbmgmt.co", cfg.URL)
	assert.Equal(t, "public", cfg.StaticDir)
	assert.Equal(t, 10*time.Minute, cfg.PageCacheTTL)
	assert.Equal(t, analytics.MeasurementID, cfg.AnalyticsID)
	assert.False(t, cfg.DisableAnalytics)
	assert.True(t, cfg.MetricsEnabled)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("SITE_ADDR", ":8080")
	t.Setenv("SITE_URL", "http://localhost:8080/")
	t.Setenv("SITE_PAGE_CACHE_TTL", "30s")
	t.Setenv("SITE_ANALYTICS_ENABLED", "false")
	t.Setenv("SITE_METRICS_ENABLED", "false")
	t.Setenv("SITE_LOG_LEVEL", "DEBUG")

	cfg, err := LoadConfig(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "http://localhost:8080", cfg.URL)
	assert.Equal(t, 30*time.Second, cfg.PageCacheTTL)
	assert.True(t, cfg.DisableAnalytics)
	assert.False(t, cfg.MetricsEnabled)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"addr: \":9090\"\n"+
			"static_dir: /srv/public\n"+
			"page_cache_ttl: 1h\n"+
			"log_level: warn\n"), 0o644))
	t.Setenv("SITE_ADDR", ":7070")

	cfg, err := LoadConfig(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Addr, "env overrides the file")
	assert.Equal(t, "/srv/public", cfg.StaticDir)
	assert.Equal(t, time.Hour, cfg.PageCacheTTL)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
	t.Run("relative url", func(t *testing.T) {
		t.Setenv("SITE_URL", "sbmgmt.co")
		_, err := LoadConfig(viper.New(), "")
		assert.ErrorContains(t, err, "absolute http(s) URL")
	})
	t.Run("unknown log level", func(t *testing.T) {
		t.Setenv("SITE_LOG_LEVEL", "verbose")
		_, err := LoadConfig(viper.New(), "")
		assert.ErrorContains(t, err, "unknown log level")
	})
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, log.DEBUG, logLevel("debug"))
	assert.Equal(t, log.OFF, logLevel("OFF"))
	assert.Equal(t, log.INFO, logLevel("bogus"))
}
