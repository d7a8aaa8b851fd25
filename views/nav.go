package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// DefaultLinks returns the main navigation of the site.
func DefaultLinks() []NavLink {
	return []NavLink{
		{Label: "Home", Href: "/"},
		{Label: "Services", Href: "/services/"},
		{Label: "About", Href: "/about/"},
		{Label: "Contact", Href: "/contact/"},
	}
}

func isActive(href, current string) bool {
	if current == "" {
		current = "/"
	}
	if href == "/" {
		return current == "/"
	}
	return strings.HasPrefix(current, href)
}

// NavLinkClass returns the classes for a navigation link.
func NavLinkClass(active bool) string {
	base := "text-sm font-medium tracking-wide transition-colors hover:text-primary"
	if active {
		return base + " text-primary"
	}
	return base + " text-foreground/80"
}

// NavBar renders the fixed top navigation. current is the request path used
// to mark the active link.
func NavBar(brand string, links []NavLink, current string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.open("header", attr{"id", "site-nav"}, attr{"class", "fixed top-0 inset-x-0 z-50 backdrop-blur bg-background/80 border-b border-border"})
		hw.open("nav", attr{"aria-label", "Main"}, attr{"class", "container mx-auto flex h-16 items-center justify-between px-4"})
		hw.open("a", attr{"href", "/"}, attr{"class", "font-heading text-lg font-bold"})
		hw.text(brand)
		hw.close("a")
		hw.open("ul", attr{"class", "flex items-center gap-6"})
		for _, l := range links {
			active := isActive(l.Href, current)
			ariaCurrent := ""
			if active {
				ariaCurrent = "page"
			}
			hw.open("li")
			hw.open("a", attr{"href", l.Href}, attr{"class", NavLinkClass(active)}, attr{"aria-current", ariaCurrent})
			hw.text(l.Label)
			hw.close("a")
			hw.close("li")
		}
		hw.close("ul")
		hw.close("nav")
		hw.close("header")
		return hw.err
	})
}
