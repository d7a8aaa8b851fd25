// Package analytics provides the Google tag bootstrap injected into every page.
package analytics

import (
	"net/url"
	"strconv"
)

// MeasurementID is the site's Google Analytics measurement ID.
const MeasurementID = "G-354H2J10W6"

const loaderBase = "https://www.googletagmanager.com/gtag/js"

// LoaderURL returns the gtag.js loader URL for id.
func LoaderURL(id string) string {
	return loaderBase + "?id=" + url.QueryEscape(id)
}

// BootstrapScript returns the inline script that initializes the dataLayer
// and configures id. The id is emitted as a JavaScript string literal.
func BootstrapScript(id string) string {
	return "window.dataLayer = window.dataLayer || [];\n" +
		"function gtag(){dataLayer.push(arguments);}\n" +
		"gtag('js', new Date());\n" +
		"gtag('config', " + strconv.Quote(id) + ");\n"
}

// CSPSources lists origins the Content-Security-Policy must allow for the
// tag to load and report.
type CSPSources struct {
	Script  []string
	Connect []string
	Img     []string
}

// Sources returns the origins used by gtag.js.
func Sources() CSPSources {
	return CSPSources{
		Script: []string{"https://www.googletagmanager.com"},
		Connect: []string{
			"https://www.google-analytics.com",
			"https://*.google-analytics.com",
			"https://*.analytics.google.com",
			"https://www.googletagmanager.com",
		},
		Img: []string{
			"https://www.google-analytics.com",
			"https://www.googletagmanager.com",
		},
	}
}
