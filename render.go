package siteshell

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/sbmgmt/siteshell/views"
)

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

// renderShell wraps body in the layout and writes it with code, uncached.
func (a *App) renderShell(c echo.Context, code int, page views.PageMeta, body templ.Component) error {
	return RenderStatus(c, code, a.Views.Layout(a.shell(page), body))
}

// renderCached serves a successful page from the cache under key, rendering
// and storing it on a miss. The body is rendered fully before anything is
// written, so a failing component still reaches the error handler.
func (a *App) renderCached(c echo.Context, key string, page views.PageMeta, body templ.Component) error {
	if b, ok := a.Cache.Get(key); ok {
		a.metrics.cacheResult("hit")
		c.Response().Header().Set("X-Cache", "HIT")
		return c.HTMLBlob(http.StatusOK, b)
	}
	a.metrics.cacheResult("miss")

	var buf bytes.Buffer
	if err := a.Views.Layout(a.shell(page), body).Render(c.Request().Context(), &buf); err != nil {
		return err
	}
	a.Cache.Set(key, buf.Bytes())
	c.Response().Header().Set("X-Cache", "MISS")
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}
