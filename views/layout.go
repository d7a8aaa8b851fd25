package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

const bodyClass = "font-sans bg-background text-foreground bg-main-gradient min-h-screen"

// decorations are the fixed, non-interactive background layers drawn behind
// the page.
var decorations = []struct {
	class string
	style string
}{
	{class: "fixed inset-0 -z-10 bg-main-gradient"},
	{class: "fixed top-1/4 left-1/4 w-1/2 h-1/2 -z-10 bg-accent/5 rounded-full blur-3xl floating-element"},
	{class: "fixed bottom-1/4 right-1/4 w-1/3 h-1/3 -z-10 bg-primary/5 rounded-full blur-3xl floating-element", style: "animation-delay: 2s"},
}

// Layout wraps content in the site document: head, navigation, the content
// slot, footer and decorative background. A nil content leaves the slot empty.
func Layout(shell Shell, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}

		classes := make([]string, 0, len(shell.Meta.Fonts))
		for _, f := range shell.Meta.Fonts {
			classes = append(classes, f.ClassName())
		}

		hw.raw("<!doctype html>")
		hw.open("html", attr{"lang", "en"}, attr{"class", strings.Join(classes, " ")})
		hw.component(ctx, Head(shell))
		hw.open("body", attr{"class", bodyClass})
		hw.open("div", attr{"class", "flex flex-col min-h-screen"})
		hw.component(ctx, orDefault(shell.Nav, NavBar(shell.Meta.ApplicationName, DefaultLinks(), shell.Page.Path)))
		hw.open("main", attr{"id", "content"}, attr{"class", "flex-1 pt-16"})
		hw.component(ctx, content)
		hw.close("main")
		hw.component(ctx, orDefault(shell.Footer, Footer(FooterData{Name: shell.Meta.ApplicationName, Links: DefaultLinks()})))
		hw.close("div")
		for _, d := range decorations {
			hw.open("div", attr{"class", d.class}, attr{"style", d.style}, attr{"aria-hidden", "true"})
			hw.close("div")
		}
		hw.close("body")
		hw.close("html")
		return hw.err
	})
}

func orDefault(c, fallback templ.Component) templ.Component {
	if c != nil {
		return c
	}
	return fallback
}
