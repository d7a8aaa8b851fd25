package views

import (
	"github.com/a-h/templ"

	"github.com/sbmgmt/siteshell/metadata"
)

// Shell carries everything the document wrapper needs. It is assembled once
// per request from process-wide constants plus the per-page PageMeta.
type Shell struct {
	Meta metadata.Descriptor
	Page PageMeta

	// AnalyticsID enables the Google tag when non-empty.
	AnalyticsID string

	// Stylesheets are site stylesheets linked after the fonts.
	Stylesheets []string

	// Nav and Footer default to NavBar and Footer when nil.
	Nav    templ.Component
	Footer templ.Component
}

// PageMeta carries per-page overrides for the <head>. Empty fields fall back
// to the site descriptor.
type PageMeta struct {
	Title       string
	Description string
	Path        string // canonical + og:url, relative to the base URL
	OGType      string
}

// NavLink is an entry of the main navigation.
type NavLink struct {
	Label string
	Href  string
}

// FooterData feeds the default footer.
type FooterData struct {
	Name    string
	Tagline string
	Year    int
	Links   []NavLink
}
