package siteshell

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/spf13/viper"

	"github.com/sbmgmt/siteshell/analytics"
	"github.com/sbmgmt/siteshell/content"
	"github.com/sbmgmt/siteshell/metadata"
)

// SiteConfig holds all runtime configuration for the site. Page metadata is
// not configuration: it lives in package metadata.
type SiteConfig struct {
	Addr      string // Listen address (default ":3000")
	URL       string // Public base URL (default "https://sbmgmt.co")
	StaticDir string // Directory served at the site root (default "public")

	PageCacheTTL time.Duration // Rendered page TTL (default 10min, negative disables)

	AnalyticsID      string // Google tag ID (default analytics.MeasurementID)
	DisableAnalytics bool   // Omit the Google tag entirely
	MetricsEnabled   bool   // Expose /metrics

	LogLevel string // debug, info, warn, error or off (default "info")
}

func (c *SiteConfig) setDefaults() {
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.URL == "" {
		c.URL = "https://sbmgmt.co"
	}
	c.URL = strings.TrimSuffix(c.URL, "/")
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.PageCacheTTL == 0 {
		c.PageCacheTTL = 10 * time.Minute
	}
	if c.AnalyticsID == "" {
		c.AnalyticsID = analytics.MeasurementID
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes, before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory served at the site root (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.Config.StaticDir = dir
	}
}

// WithMetadata replaces the default head descriptor.
func WithMetadata(d metadata.Descriptor) Option {
	return func(a *App) {
		a.Meta = d
	}
}

// WithPages serves lib instead of the embedded pages.
func WithPages(lib *content.Library) Option {
	return func(a *App) {
		a.Pages = lib
	}
}

// envBinding maps a config key to its environment variable.
type envBinding struct {
	Key    string
	EnvVar string
}

var envBindings = []envBinding{
	{"addr", "SITE_ADDR"},
	{"url", "SITE_URL"},
	{"static_dir", "SITE_STATIC_DIR"},
	{"page_cache_ttl", "SITE_PAGE_CACHE_TTL"},
	{"analytics_enabled", "SITE_ANALYTICS_ENABLED"},
	{"metrics_enabled", "SITE_METRICS_ENABLED"},
	{"log_level", "SITE_LOG_LEVEL"},
}

// LoadConfig reads configuration from v: defaults, then the optional config
// file at path, then environment variables, then any flags already bound to v.
func LoadConfig(v *viper.Viper, path string) (SiteConfig, error) {
	v.SetDefault("addr", ":3000")
	v.SetDefault("url", "https://sbmgmt.co")
	v.SetDefault("static_dir", "public")
	v.SetDefault("page_cache_ttl", "10m")
	v.SetDefault("analytics_enabled", true)
	v.SetDefault("metrics_enabled", true)
	v.SetDefault("log_level", "info")

	for _, b := range envBindings {
		if err := v.BindEnv(b.Key, b.EnvVar); err != nil {
			return SiteConfig{}, fmt.Errorf("siteshell: bind %s: %w", b.EnvVar, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return SiteConfig{}, fmt.Errorf("siteshell: read config %s: %w", path, err)
		}
	}

	cfg := SiteConfig{
		Addr:             v.GetString("addr"),
		URL:              v.GetString("url"),
		StaticDir:        v.GetString("static_dir"),
		PageCacheTTL:     v.GetDuration("page_cache_ttl"),
		DisableAnalytics: !v.GetBool("analytics_enabled"),
		MetricsEnabled:   v.GetBool("metrics_enabled"),
		LogLevel:         strings.ToLower(v.GetString("log_level")),
	}
	if err := cfg.validate(); err != nil {
		return SiteConfig{}, err
	}
	cfg.setDefaults()
	return cfg, nil
}

func (c SiteConfig) validate() error {
	u, err := url.Parse(c.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("siteshell: url %q must be an absolute http(s) URL", c.URL)
	}
	if _, ok := logLevels[c.LogLevel]; !ok && c.LogLevel != "" {
		return fmt.Errorf("siteshell: unknown log level %q", c.LogLevel)
	}
	return nil
}

var logLevels = map[string]log.Lvl{
	"debug": log.DEBUG,
	"info":  log.INFO,
	"warn":  log.WARN,
	"error": log.ERROR,
	"off":   log.OFF,
}

func logLevel(name string) log.Lvl {
	if lvl, ok := logLevels[strings.ToLower(name)]; ok {
		return lvl
	}
	return log.INFO
}
