package siteshell

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sbmgmt/siteshell/content"
	"github.com/sbmgmt/siteshell/views"
)

func (a *App) handlePage(c echo.Context) error {
	slug := c.Param("slug")
	if slug == content.HomeSlug {
		return c.Redirect(http.StatusMovedPermanently, "/")
	}
	if slug == "" {
		slug = content.HomeSlug
	}
	page, ok := a.Pages.Get(slug)
	if !ok {
		return echo.ErrNotFound
	}
	// The home page carries no overrides: "/" renders the descriptor as is.
	var meta views.PageMeta
	if page.Slug != content.HomeSlug {
		meta = views.PageMeta{
			Title:       page.Title,
			Description: page.Description,
			Path:        page.Path(),
		}
	}
	return a.renderCached(c, page.Path(), meta, a.Views.Page(page))
}

// handleRobots generates robots.txt pointing at the sitemap on the public URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s\n", a.Meta.AbsoluteURL("/sitemap.xml"))
	return c.String(http.StatusOK, body)
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c, a.Pages.Pages())
}

func (a *App) handleManifest(c echo.Context) error {
	return a.renderManifest(c)
}

func handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		page := views.PageMeta{Title: "Page not found", Path: c.Request().URL.Path}
		if rerr := a.renderShell(c, http.StatusNotFound, page, a.Views.NotFound()); rerr != nil {
			c.Logger().Errorf("render not found page: %v", rerr)
		}
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		page := views.PageMeta{Title: "Server error", Path: c.Request().URL.Path}
		if rerr := a.renderShell(c, code, page, a.Views.ServerError()); rerr != nil {
			c.Logger().Errorf("render server error page: %v", rerr)
		}
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
