package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

type attr struct {
	name  string
	value string
}

// htmlWriter writes markup and keeps the first write error, so components
// can emit a sequence of tags and check once at the end.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

func (hw *htmlWriter) text(s string) {
	hw.raw(templ.EscapeString(s))
}

// open writes a start tag. Attributes with an empty value are omitted.
func (hw *htmlWriter) open(name string, attrs ...attr) {
	hw.raw("<" + name)
	for _, a := range attrs {
		if a.value == "" {
			continue
		}
		hw.raw(" " + a.name + "=\"" + templ.EscapeString(a.value) + "\"")
	}
	hw.raw(">")
}

func (hw *htmlWriter) close(name string) {
	hw.raw("</" + name + ">")
}

// element writes a full element with escaped text content.
func (hw *htmlWriter) element(name, content string, attrs ...attr) {
	hw.open(name, attrs...)
	hw.text(content)
	hw.close(name)
}

func (hw *htmlWriter) meta(name, content string) {
	if content == "" {
		return
	}
	hw.open("meta", attr{"name", name}, attr{"content", content})
}

func (hw *htmlWriter) property(property, content string) {
	if content == "" {
		return
	}
	hw.open("meta", attr{"property", property}, attr{"content", content})
}

// component renders a nested templ component into the same writer.
func (hw *htmlWriter) component(ctx context.Context, c templ.Component) {
	if hw.err != nil || c == nil {
		return
	}
	hw.err = c.Render(ctx, hw.w)
}
