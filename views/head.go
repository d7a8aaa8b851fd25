package views

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/sbmgmt/siteshell/analytics"
	"github.com/sbmgmt/siteshell/metadata"
)

// PageTitle returns the <title> for a page: the descriptor title on pages
// without an override, "<page> | <application name>" otherwise.
func PageTitle(meta metadata.Descriptor, page PageMeta) string {
	if page.Title == "" {
		return meta.Title
	}
	name := meta.ApplicationName
	if name == "" {
		return page.Title
	}
	return page.Title + " | " + name
}

func pageDescription(meta metadata.Descriptor, page PageMeta) string {
	if page.Description != "" {
		return page.Description
	}
	return meta.Description
}

func canonicalPath(page PageMeta) string {
	if page.Path == "" {
		return "/"
	}
	return page.Path
}

// Head renders the document <head>.
func Head(shell Shell) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		meta, page := shell.Meta, shell.Page
		title := PageTitle(meta, page)
		description := pageDescription(meta, page)
		canonical := meta.AbsoluteURL(canonicalPath(page))

		hw.raw("<head>")
		hw.open("meta", attr{"charset", "utf-8"})
		hw.open("meta", attr{"name", "viewport"}, attr{"content", "width=device-width, initial-scale=1"})
		hw.element("title", title)
		hw.meta("description", description)
		hw.meta("application-name", meta.ApplicationName)
		for _, a := range meta.Authors {
			if a.URL != "" {
				hw.open("link", attr{"rel", "author"}, attr{"href", a.URL})
			}
			hw.meta("author", a.Name)
		}
		hw.meta("generator", meta.Generator)
		hw.meta("keywords", strings.Join(meta.Keywords, ","))
		hw.meta("creator", meta.Creator)
		hw.meta("publisher", meta.Publisher)
		hw.meta("format-detection", meta.FormatDetection.Disabled())
		hw.meta("theme-color", meta.ThemeColor)
		hw.open("link", attr{"rel", "canonical"}, attr{"href", canonical})

		writeOpenGraph(hw, meta, page, title, description, canonical)
		writeTwitter(hw, meta, page, title, description)
		hw.open("script", attr{"type", "application/ld+json"})
		hw.raw(meta.WebsiteJSONLD())
		hw.close("script")

		for _, icon := range meta.Icons.All() {
			hw.open("link",
				attr{"rel", icon.Rel},
				attr{"href", icon.Href},
				attr{"sizes", icon.Sizes},
				attr{"type", icon.Type},
			)
		}
		if meta.Manifest != "" {
			hw.open("link", attr{"rel", "manifest"}, attr{"href", meta.Manifest})
		}
		for _, tile := range meta.Icons.Tiles {
			hw.meta(tile.Name, tile.Content)
		}

		writeFonts(hw, meta.Fonts)
		for _, href := range shell.Stylesheets {
			hw.open("link", attr{"rel", "stylesheet"}, attr{"href", href})
		}
		if shell.AnalyticsID != "" {
			hw.component(ctx, Analytics(shell.AnalyticsID))
		}
		hw.raw("</head>")
		return hw.err
	})
}

func writeOpenGraph(hw *htmlWriter, meta metadata.Descriptor, page PageMeta, title, description, canonical string) {
	og := meta.OpenGraph
	ogTitle, ogDescription, ogURL := og.Title, og.Description, og.URL
	if page.Title != "" || ogTitle == "" {
		ogTitle = title
	}
	if page.Description != "" || ogDescription == "" {
		ogDescription = description
	}
	if page.Path != "" || ogURL == "" {
		ogURL = canonical
	}
	ogType := og.Type
	if page.OGType != "" {
		ogType = page.OGType
	}
	hw.property("og:title", ogTitle)
	hw.property("og:description", ogDescription)
	hw.property("og:url", ogURL)
	hw.property("og:site_name", og.SiteName)
	hw.property("og:locale", og.Locale)
	for _, img := range og.Images {
		hw.property("og:image", meta.AbsoluteURL(img.URL))
		if img.Width > 0 {
			hw.property("og:image:width", strconv.Itoa(img.Width))
		}
		if img.Height > 0 {
			hw.property("og:image:height", strconv.Itoa(img.Height))
		}
		hw.property("og:image:alt", img.Alt)
	}
	hw.property("og:type", ogType)
}

func writeTwitter(hw *htmlWriter, meta metadata.Descriptor, page PageMeta, title, description string) {
	tw := meta.Twitter
	twTitle, twDescription := tw.Title, tw.Description
	if page.Title != "" || twTitle == "" {
		twTitle = title
	}
	if page.Description != "" || twDescription == "" {
		twDescription = description
	}
	hw.meta("twitter:card", tw.Card)
	hw.meta("twitter:site", tw.Site)
	hw.meta("twitter:creator", tw.Creator)
	hw.meta("twitter:title", twTitle)
	hw.meta("twitter:description", twDescription)
	for _, img := range tw.Images {
		hw.meta("twitter:image", meta.AbsoluteURL(img))
	}
}

func writeFonts(hw *htmlWriter, fonts []metadata.Font) {
	href := metadata.GoogleFontsURL(fonts)
	if href == "" {
		return
	}
	hw.open("link", attr{"rel", "preconnect"}, attr{"href", "https://fonts.googleapis.com"})
	hw.raw(`<link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>`)
	hw.open("link", attr{"rel", "stylesheet"}, attr{"href", href})
	hw.open("style")
	hw.raw(metadata.FontVariablesCSS(fonts))
	hw.close("style")
}

// Analytics renders the gtag.js loader followed by the inline bootstrap.
func Analytics(id string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.open("script", attr{"async", "async"}, attr{"src", analytics.LoaderURL(id)})
		hw.close("script")
		hw.open("script", attr{"id", "google-analytics"})
		hw.raw(analytics.BootstrapScript(id))
		hw.close("script")
		return hw.err
	})
}
