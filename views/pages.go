package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Article wraps rendered page content.
func Article(slug string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.open("article", attr{"class", "page container mx-auto px-4 py-12"}, attr{"data-page", slug})
		hw.component(ctx, body)
		hw.close("article")
		return hw.err
	})
}

func message(code, title, text string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.open("section", attr{"class", "container mx-auto px-4 py-24 text-center"})
		hw.element("p", code, attr{"class", "text-sm font-semibold tracking-[0.2em] text-primary"})
		hw.element("h1", title, attr{"class", "mt-4 font-heading text-4xl font-bold"})
		hw.element("p", text, attr{"class", "mt-4 text-muted-foreground"})
		hw.element("a", "Back to home", attr{"href", "/"}, attr{"class", "mt-8 inline-block underline underline-offset-4"})
		hw.close("section")
		return hw.err
	})
}

// NotFound is the content of the 404 page.
func NotFound() templ.Component {
	return message("404", "Page not found", "The page you are looking for does not exist or has moved.")
}

// ServerError is the content of the 500 page.
func ServerError() templ.Component {
	return message("500", "Something went wrong", "We could not load this page. Please try again shortly.")
}
