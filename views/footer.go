package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// Footer renders the site footer.
func Footer(data FooterData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.open("footer", attr{"id", "site-footer"}, attr{"class", "border-t border-border bg-background/60 py-10"})
		hw.open("div", attr{"class", "container mx-auto flex flex-col gap-6 px-4 md:flex-row md:justify-between"})

		hw.open("div")
		hw.element("p", data.Name, attr{"class", "font-heading text-lg font-bold"})
		if data.Tagline != "" {
			hw.element("p", data.Tagline, attr{"class", "text-sm text-muted-foreground"})
		}
		hw.close("div")

		if len(data.Links) > 0 {
			hw.open("ul", attr{"class", "flex gap-4 text-sm"})
			for _, l := range data.Links {
				hw.open("li")
				hw.element("a", l.Label, attr{"href", l.Href}, attr{"class", "hover:text-primary"})
				hw.close("li")
			}
			hw.close("ul")
		}
		hw.close("div")

		copyright := "© "
		if data.Year > 0 {
			copyright += strconv.Itoa(data.Year) + " "
		}
		copyright += data.Name + ". All rights reserved."
		hw.element("p", copyright, attr{"class", "mt-6 text-center text-xs text-muted-foreground"})
		hw.close("footer")
		return hw.err
	})
}
