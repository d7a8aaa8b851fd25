package siteshell

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbmgmt/siteshell/analytics"
	"github.com/sbmgmt/siteshell/content"
	"github.com/sbmgmt/siteshell/metadata"
	"github.com/sbmgmt/siteshell/views"
)

func newTestApp(t *testing.T, cfg SiteConfig, v ViewFuncs, opts ...Option) *App {
	t.Helper()
	if cfg.LogLevel == "" {
		cfg.LogLevel = "off"
	}
	opts = append([]Option{WithStaticDir(t.TempDir())}, opts...)
	a := New(cfg, v, opts...)
	require.NoError(t, a.Init())
	return a
}

func get(t *testing.T, a *App, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)
	return rec
}

func TestHomePage(t *testing.T) {
	a := newTestApp(t, SiteConfig{}, ViewFuncs{})
	rec := get(t, a, "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
	body := rec.Body.String()
	assert.Equal(t, 1, strings.Count(body, "<title>"))
	assert.Contains(t, body, "<title>SB Management | Professional Solutions &amp; Management Services</title>")
	assert.Contains(t, body, analytics.MeasurementID)
	assert.Contains(t, body, "<h1>Premium professional solutions</h1>")
	assert.Less(t, strings.Index(body, `id="site-nav"`), strings.Index(body, `<main id="content"`))
	assert.Less(t, strings.Index(body, `<main id="content"`), strings.Index(body, `id="site-footer"`))

	// "/" emits the descriptor itself, without page overrides.
	d := metadata.Default()
	assert.Contains(t, body, `<meta name="description" content="`+templ.EscapeString(d.Description)+`">`)
	assert.Contains(t, body, `<meta property="og:description" content="`+templ.EscapeString(d.OpenGraph.Description)+`">`)
	assert.Contains(t, body, `<meta name="twitter:description" content="`+templ.EscapeString(d.Twitter.Description)+`">`)
	assert.Contains(t, body, `<meta property="og:title" content="`+templ.EscapeString(d.OpenGraph.Title)+`">`)
	assert.Contains(t, body, `<meta property="og:url" content="https://sbmgmt.co">`)
	assert.Contains(t, body, `<link rel="canonical" href="https://sbmgmt.co/">`)
	assert.Contains(t, body, `href="/" class="`+views.NavLinkClass(true)+`" aria-current="page">Home</a>`)
}

func TestCustomMetadata(t *testing.T) {
	d := metadata.Default()
	d.Title = "Staging | SB Management"
	d.Description = "Preview build."
	d.OpenGraph.Description = ""
	d.Twitter.Description = ""
	a := newTestApp(t, SiteConfig{URL: "https://staging.sbmgmt.co"}, ViewFuncs{}, WithMetadata(d))

	body := get(t, a, "/").Body.String()
	assert.Contains(t, body, "<title>Staging | SB Management</title>")
	assert.Contains(t, body, `<meta property="og:description" content="Preview build.">`)
	assert.Contains(t, body, `<meta name="twitter:description" content="Preview build.">`)
	assert.Contains(t, body, `<link rel="canonical" href="https://staging.sbmgmt.co/">`)

	robots := get(t, a, "/robots.txt").Body.String()
	assert.Contains(t, robots, "Sitemap: https://staging.sbmgmt.co/sitemap.xml")
}

func TestPageCacheServesIdenticalBody(t *testing.T) {
	a := newTestApp(t, SiteConfig{}, ViewFuncs{})

	first := get(t, a, "/services/")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))

	second := get(t, a, "/services/")
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, a.Cache.Len())
}

func TestPageCacheDisabled(t *testing.T) {
	a := newTestApp(t, SiteConfig{PageCacheTTL: -1}, ViewFuncs{})
	get(t, a, "/")
	rec := get(t, a, "/")
	assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))
	assert.Zero(t, a.Cache.Len())
}

func TestContentPageOverridesTitle(t *testing.T) {
	a := newTestApp(t, SiteConfig{}, ViewFuncs{})
	rec := get(t, a, "/about/")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<title>About | SB Management</title>")
	assert.Contains(t, body, `<link rel="canonical" href="https://sbmgmt.co/about/">`)
	assert.Contains(t, body, `href="/about/" class="`)
	assert.Contains(t, body, `aria-current="page">About</a>`)
}

func TestTrailingSlashRedirect(t *testing.T) {
	a := newTestApp(t, SiteConfig{}, ViewFuncs{})
	rec := get(t, a, "/about")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/about/", rec.Header().Get(echo.HeaderLocation))
}

func TestHomeSlugRedirectsToRoot(t *testing.T) {
	a := newTestApp(t, SiteConfig{}, ViewFuncs{})
	rec := get(t, a, "/home/")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
}

func TestNotFoundRendersInShell(t *testing.T) {
	a := newTestApp(t, SiteConfig{}, ViewFuncs{})

	for _, target := range []string{"/missing/", "/nested/deep/"} {
		rec := get(t, a, target)
		require.Equal(t, http.StatusNotFound, rec.Code, target)
		body := rec.Body.String()
		assert.Contains(t, body, "Page not found", target)
		assert.Contains(t, body, `id="site-nav"`, target)
		assert.Contains(t, body, `id="site-footer"`, target)
		assert.Contains(t, body, analytics.MeasurementID, target)
	}
	assert.Zero(t, a.Cache.Len())
}

func TestServerErrorRendersInShell(t *testing.T) {
	a := newTestApp(t, SiteConfig{}, ViewFuncs{}, WithCustomRoutes(func(a *App) {
		a.Echo.GET("/boom/", func(c echo.Context) error {
			return errors.New("boom")
		})
	}))
	rec := get(t, a, "/boom/")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Something went wrong")
	assert.Contains(t, rec.Body.String(), `id="site-nav"`)
}

func TestFailingPageIsNotCached(t *testing.T) {
	failing := ViewFuncs{
		Page: func(page content.Page) templ.Component {
			return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
				return errors.New("render failed")
			})
		},
	}
	a := newTestApp(t, SiteConfig{}, failing)
	rec := get(t, a, "/")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Something went wrong")
	assert.Zero(t, a.Cache.Len())
}

func TestAnalyticsDisabled(t *testing.T) {
	a := newTestApp(t, SiteConfig{DisableAnalytics: true}, ViewFuncs{})
	rec := get(t, a, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "googletagmanager")
}

func TestCustomNav(t *testing.T) {
	v := ViewFuncs{
		Nav: func(brand, currentPath string) templ.Component {
			return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
				_, err := io.WriteString(w, `<nav id="site-nav">custom `+currentPath+`</nav>`)
				return err
			})
		},
	}
	a := newTestApp(t, SiteConfig{}, v)
	rec := get(t, a, "/contact/")
	assert.Contains(t, rec.Body.String(), "custom /contact/")
}

func TestRobots(t *testing.T) {
	a := newTestApp(t, SiteConfig{URL: "http://localhost:3000/"}, ViewFuncs{})
	rec := get(t, a, "/robots.txt")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sitemap: http://localhost:3000/sitemap.xml\n")
	assert.Equal(t, "public, max-age=86400", rec.Header().Get("Cache-Control"))
}

func TestSitemapListsEveryPage(t *testing.T) {
	a := newTestApp(t, SiteConfig{}, ViewFuncs{})
	rec := get(t, a, "/sitemap.xml")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/xml; charset=utf-8", rec.Header().Get(echo.HeaderContentType))
	assert.True(t, strings.HasPrefix(rec.Body.String(), xml.Header+"<urlset"))

	var set sitemapURLSet
	require.NoError(t, xml.Unmarshal(rec.Body.Bytes(), &set))
	require.Len(t, set.URLs, len(a.Pages.Pages()))
	assert.Equal(t, "https://sbmgmt.co/", set.URLs[0].Loc)
	assert.Equal(t, "1.0", set.URLs[0].Priority)

	var locs []string
	for _, u := range set.URLs {
		locs = append(locs, u.Loc)
	}
	assert.Contains(t, locs, "https://sbmgmt.co/about/")
}

func TestManifest(t *testing.T) {
	a := newTestApp(t, SiteConfig{}, ViewFuncs{})
	rec := get(t, a, "/site.webmanifest")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/manifest+json; charset=utf-8", rec.Header().Get(echo.HeaderContentType))
	var m webManifest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	assert.Equal(t, "SB Management", m.Name)
	assert.Equal(t, "/", m.StartURL)
	assert.Len(t, m.Icons, 15)
	for _, icon := range m.Icons {
		assert.True(t, strings.HasSuffix(icon.Src, ".png"), icon.Src)
		assert.Equal(t, "image/png", icon.Type)
	}
}

func TestManifestSkipsUnsizedIcons(t *testing.T) {
	d := metadata.Default()
	d.Icons = metadata.Icons{Icon: []metadata.Icon{
		{Rel: "icon", Href: "/main-icon.png", Sizes: "any"},
		{Rel: "icon", Href: "/icon.svg", Sizes: "32x32"},
		{Rel: "icon", Href: "/a-32x32.png", Sizes: "32x32"},
	}}
	m := buildManifest(d)
	require.Len(t, m.Icons, 1)
	assert.Equal(t, "/a-32x32.png", m.Icons[0].Src)
}

func TestEmbeddedStylesheet(t *testing.T) {
	a := newTestApp(t, SiteConfig{}, ViewFuncs{})
	rec := get(t, a, "/assets/globals.css")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/css")
	assert.Contains(t, rec.Body.String(), ".floating-element")
	assert.Equal(t, "public, max-age=86400", rec.Header().Get("Cache-Control"))
}

func TestStaticIconServedFromRoot(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "favicon-16x16.png"), []byte("png"), 0o644))
	a := newTestApp(t, SiteConfig{}, ViewFuncs{}, WithStaticDir(dir))

	rec := get(t, a, "/favicon-16x16.png")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "png", rec.Body.String())
	assert.Equal(t, "public, max-age=604800", rec.Header().Get("Cache-Control"))
}

func TestHealthz(t *testing.T) {
	a := newTestApp(t, SiteConfig{}, ViewFuncs{})
	rec := get(t, a, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

func TestMetrics(t *testing.T) {
	a := newTestApp(t, SiteConfig{MetricsEnabled: true}, ViewFuncs{})
	get(t, a, "/")
	get(t, a, "/")

	rec := get(t, a, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `siteshell_page_cache_requests_total{result="hit"} 1`)
	assert.Contains(t, body, `siteshell_page_cache_requests_total{result="miss"} 1`)
	assert.Contains(t, body, "siteshell_requests_total")
}

func TestMetricsDisabled(t *testing.T) {
	a := newTestApp(t, SiteConfig{}, ViewFuncs{})
	rec := get(t, a, "/metrics")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInitRequiresHomePage(t *testing.T) {
	lib, err := content.LoadFS(os.DirFS(t.TempDir()))
	require.NoError(t, err)
	a := New(SiteConfig{LogLevel: "off"}, ViewFuncs{}, WithPages(lib))
	assert.Error(t, a.Init())
}

func TestInitIsIdempotent(t *testing.T) {
	a := newTestApp(t, SiteConfig{MetricsEnabled: true}, ViewFuncs{})
	assert.NoError(t, a.Init())
}

func TestCustomRouteRender(t *testing.T) {
	a := newTestApp(t, SiteConfig{}, ViewFuncs{}, WithCustomRoutes(func(a *App) {
		a.Echo.GET("/status/", func(c echo.Context) error {
			return Render(c, templ.Raw("<p>all systems go</p>"))
		})
	}))
	rec := get(t, a, "/status/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<p>all systems go</p>", rec.Body.String())
}
