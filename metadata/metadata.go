// Package metadata holds the static description of the site's document head:
// title and description, social preview cards, icons, and fonts.
//
// A Descriptor is built once at startup and treated as read-only afterwards.
package metadata

import (
	"net/url"
	"strings"
)

// Author names a person or organization credited in the head.
type Author struct {
	Name string
	URL  string
}

// FormatDetection controls whether mobile browsers turn phone numbers,
// e-mail addresses and postal addresses into links.
type FormatDetection struct {
	Telephone bool
	Email     bool
	Address   bool
}

// Disabled returns the format-detection directives for the disabled flags,
// e.g. "telephone=no, email=no". Empty when every flag is enabled.
func (f FormatDetection) Disabled() string {
	var parts []string
	if !f.Telephone {
		parts = append(parts, "telephone=no")
	}
	if !f.Email {
		parts = append(parts, "email=no")
	}
	if !f.Address {
		parts = append(parts, "address=no")
	}
	return strings.Join(parts, ", ")
}

// Image is a social preview image.
type Image struct {
	URL    string
	Width  int
	Height int
	Alt    string
}

// OpenGraph carries og:* properties.
type OpenGraph struct {
	Title       string
	Description string
	URL         string
	SiteName    string
	Images      []Image
	Locale      string
	Type        string // "website" or "article"
}

// Twitter carries twitter:* card properties.
type Twitter struct {
	Card        string
	Title       string
	Description string
	Images      []string
	Creator     string
	Site        string
}

// Descriptor is the full, static head description for the site.
type Descriptor struct {
	Title           string
	Description     string
	Generator       string
	BaseURL         string
	Keywords        []string
	Authors         []Author
	Creator         string
	Publisher       string
	ApplicationName string
	FormatDetection FormatDetection
	OpenGraph       OpenGraph
	Twitter         Twitter
	Icons           Icons
	Manifest        string
	ThemeColor      string
	BackgroundColor string
	Fonts           []Font
}

// Default returns the SB Management descriptor.
func Default() Descriptor {
	return Descriptor{
		Title:       "SB Management | Professional Solutions & Management Services",
		Description: "SB Management offers premium professional solutions tailored to meet your unique requirements. Our streamlined services provide reliable expertise for business growth and success.",
		Generator:   "v0.dev",
		BaseURL:     "https://sbmgmt.co",
		Keywords: []string{
			"management services",
			"professional solutions",
			"business services",
			"premium solutions",
			"business management",
		},
		Authors:         []Author{{Name: "SB Management Group"}},
		Creator:         "SB Management Group",
		Publisher:       "SB Management Group",
		ApplicationName: "SB Management",
		FormatDetection: FormatDetection{Telephone: true, Email: true, Address: true},
		OpenGraph: OpenGraph{
			Title:       "SB Management | Premium Professional Solutions",
			Description: "Professional solutions tailored to meet your unique requirements. Unlock premium services designed for your success.",
			URL:         "https://sbmgmt.co",
			SiteName:    "SB Management",
			Images: []Image{{
				URL:    "/og-image.png",
				Width:  1200,
				Height: 630,
				Alt:    "SB Management Professional Solutions",
			}},
			Locale: "en_US",
			Type:   "website",
		},
		Twitter: Twitter{
			Card:        "summary_large_image",
			Title:       "SB Management | Premium Professional Solutions",
			Description: "Professional solutions tailored to meet your unique requirements.",
			Images:      []string{"/og-image.png"},
			Creator:     "@sbmanagement",
			Site:        "@sbmanagement",
		},
		Icons:           DefaultIcons(),
		Manifest:        "/site.webmanifest",
		ThemeColor:      "#FFFFFF",
		BackgroundColor: "#FFFFFF",
		Fonts:           Fonts(),
	}
}

// WithBaseURL returns a copy of d served from base. The OpenGraph URL follows
// the base when it pointed at the previous one.
func (d Descriptor) WithBaseURL(base string) Descriptor {
	base = strings.TrimSuffix(base, "/")
	if base == "" {
		return d
	}
	if d.OpenGraph.URL == "" || d.OpenGraph.URL == d.BaseURL {
		d.OpenGraph.URL = base
	}
	d.BaseURL = base
	return d
}

// AbsoluteURL resolves ref against the descriptor's base URL. Absolute
// references are returned unchanged.
func (d Descriptor) AbsoluteURL(ref string) string {
	base, err := url.Parse(d.BaseURL)
	if err != nil || d.BaseURL == "" {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(r).String()
}
