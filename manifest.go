package siteshell

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sbmgmt/siteshell/metadata"
)

type webManifest struct {
	Name            string         `json:"name"`
	ShortName       string         `json:"short_name"`
	Description     string         `json:"description,omitempty"`
	StartURL        string         `json:"start_url"`
	Display         string         `json:"display"`
	ThemeColor      string         `json:"theme_color,omitempty"`
	BackgroundColor string         `json:"background_color,omitempty"`
	Icons           []manifestIcon `json:"icons"`
}

type manifestIcon struct {
	Src   string `json:"src"`
	Sizes string `json:"sizes"`
	Type  string `json:"type,omitempty"`
}

// buildManifest lists every PNG icon with explicit dimensions once.
func buildManifest(d metadata.Descriptor) webManifest {
	m := webManifest{
		Name:            d.ApplicationName,
		ShortName:       d.ApplicationName,
		Description:     d.Description,
		StartURL:        "/",
		Display:         "standalone",
		ThemeColor:      d.ThemeColor,
		BackgroundColor: d.BackgroundColor,
		Icons:           []manifestIcon{},
	}
	seen := make(map[string]struct{})
	for _, icon := range d.Icons.All() {
		if _, _, ok := icon.Dimensions(); !ok || !strings.HasSuffix(icon.Href, ".png") {
			continue
		}
		if _, dup := seen[icon.Href]; dup {
			continue
		}
		seen[icon.Href] = struct{}{}
		m.Icons = append(m.Icons, manifestIcon{Src: icon.Href, Sizes: icon.Sizes, Type: "image/png"})
	}
	return m
}

func (a *App) renderManifest(c echo.Context) error {
	b, err := json.Marshal(buildManifest(a.Meta))
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "application/manifest+json; charset=utf-8", b)
}
