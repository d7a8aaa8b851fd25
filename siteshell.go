// Package siteshell serves the SB Management marketing site: a fixed page
// shell (head metadata, fonts, icons, analytics, navigation and footer)
// wrapped around embedded Markdown pages, built with Go, Echo, and templ.
//
// Sites may replace any component through the ViewFuncs struct; siteshell
// handles routing, caching, middleware and the auxiliary files browsers and
// crawlers ask for (robots.txt, sitemap.xml, site.webmanifest).
package siteshell

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/sbmgmt/siteshell/content"
	"github.com/sbmgmt/siteshell/metadata"
	"github.com/sbmgmt/siteshell/views"
)

// ViewFuncs holds the components the app renders. Nil fields fall back to
// the defaults in package views.
type ViewFuncs struct {
	Layout      func(shell views.Shell, content templ.Component) templ.Component
	Nav         func(brand, currentPath string) templ.Component
	Footer      func(brand string, year int) templ.Component
	Page        func(page content.Page) templ.Component
	NotFound    func() templ.Component
	ServerError func() templ.Component
}

func (v *ViewFuncs) setDefaults() {
	if v.Layout == nil {
		v.Layout = views.Layout
	}
	if v.Nav == nil {
		v.Nav = func(brand, currentPath string) templ.Component {
			return views.NavBar(brand, views.DefaultLinks(), currentPath)
		}
	}
	if v.Footer == nil {
		v.Footer = func(brand string, year int) templ.Component {
			return views.Footer(views.FooterData{
				Name:    brand,
				Tagline: "Premium professional solutions.",
				Year:    year,
				Links:   views.DefaultLinks(),
			})
		}
	}
	if v.Page == nil {
		v.Page = func(page content.Page) templ.Component {
			return views.Article(page.Slug, page.Component())
		}
	}
	if v.NotFound == nil {
		v.NotFound = views.NotFound
	}
	if v.ServerError == nil {
		v.ServerError = views.ServerError
	}
}

// App is the central siteshell application. It wires together the page
// library, render cache, handlers, middleware and views.
type App struct {
	Config SiteConfig
	Meta   metadata.Descriptor
	Echo   *echo.Echo
	Pages  *content.Library
	Cache  *PageCache
	Views  ViewFuncs

	registry     *prometheus.Registry
	metrics      *shellMetrics
	customRoutes []func(*App)
	year         int
	initialized  bool
}

// New creates a siteshell App with the given configuration and view functions.
func New(cfg SiteConfig, v ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()
	v.setDefaults()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	a := &App{
		Config: cfg,
		Meta:   metadata.Default(),
		Echo:   e,
		Views:  v,
		year:   time.Now().Year(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Init loads pages and registers middleware and routes. It is called by
// Start; tests call it directly and drive a.Echo as an http.Handler.
func (a *App) Init() error {
	if a.initialized {
		return nil
	}
	if a.Pages == nil {
		pages, err := content.Load()
		if err != nil {
			return fmt.Errorf("siteshell: load pages: %w", err)
		}
		a.Pages = pages
	}
	if _, ok := a.Pages.Get(content.HomeSlug); !ok {
		return fmt.Errorf("siteshell: page library has no %q page", content.HomeSlug)
	}

	a.Meta = a.Meta.WithBaseURL(a.Config.URL)
	a.Cache = NewPageCache(a.Config.PageCacheTTL)

	a.Echo.Logger.SetPrefix("siteshell")
	a.Echo.Logger.SetLevel(logLevel(a.Config.LogLevel))

	if a.Config.MetricsEnabled {
		a.registry = prometheus.NewRegistry()
		m, err := newShellMetrics(a.registry)
		if err != nil {
			return fmt.Errorf("siteshell: register metrics: %w", err)
		}
		a.metrics = m
	}

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.initialized = true
	return nil
}

// Start initializes the app and serves until the server is shut down.
func (a *App) Start() error {
	if err := a.Init(); err != nil {
		return err
	}
	a.Echo.Logger.Infof("listening on %s (%s)", a.Config.Addr, a.Meta.BaseURL)
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("siteshell: serve: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Framework stylesheet, shipped in the binary.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	e.GET("/assets/*", echo.WrapHandler(http.StripPrefix("/assets/", http.FileServer(http.FS(embeddedFS)))))

	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/site.webmanifest", a.handleManifest)
	e.GET("/healthz", handleHealth)
	if a.registry != nil {
		e.GET("/metrics", a.metricsHandler())
	}

	e.GET("/", a.handlePage)
	e.GET("/:slug/", a.handlePage)

	// Icons, social images and anything else in the user's static dir are
	// served from the site root, where the head declares them.
	e.Static("/", a.Config.StaticDir)
}

func (a *App) shell(page views.PageMeta) views.Shell {
	current := page.Path
	if current == "" {
		current = "/"
	}
	shell := views.Shell{
		Meta:        a.Meta,
		Page:        page,
		Stylesheets: []string{"/assets/globals.css"},
		Nav:         a.Views.Nav(a.Meta.ApplicationName, current),
		Footer:      a.Views.Footer(a.Meta.ApplicationName, a.year),
	}
	if !a.Config.DisableAnalytics {
		shell.AnalyticsID = a.Config.AnalyticsID
	}
	return shell
}
