package content

import (
	"bytes"
	"context"
	"html"
	"io"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

var (
	reBold       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reItalic     = regexp.MustCompile(`\*([^*]+)\*`)
	reInlineCode = regexp.MustCompile("`([^`]+)`")
	reLink       = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
	reOrdered    = regexp.MustCompile(`^\d+\.\s`)
	reHeading    = regexp.MustCompile(`^(#{1,4})\s+(.*)$`)
)

type block int

const (
	blockNone block = iota
	blockPara
	blockList
	blockOrdered
	blockQuote
)

var blockTags = map[block][2]string{
	blockPara:    {"<p>", "</p>"},
	blockList:    {"<ul>", "</ul>"},
	blockOrdered: {"<ol>", "</ol>"},
	blockQuote:   {"<blockquote>", "</blockquote>"},
}

type renderer struct {
	buf     *bytes.Buffer
	current block
}

func (r *renderer) enter(b block) {
	if r.current == b {
		return
	}
	r.leave()
	r.buf.WriteString(blockTags[b][0])
	r.current = b
}

func (r *renderer) leave() {
	if r.current == blockNone {
		return
	}
	r.buf.WriteString(blockTags[r.current][1])
	r.current = blockNone
}

// Markdown returns a templ.Component rendering src as HTML. Raw HTML in src
// is escaped.
func Markdown(src string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		RenderMarkdown(&buf, src)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// RenderMarkdown writes the HTML for a small Markdown subset: headings,
// paragraphs, ordered and unordered lists, quotes, rules, links, code spans,
// bold and italic.
func RenderMarkdown(buf *bytes.Buffer, src string) {
	r := &renderer{buf: buf}
	for _, raw := range strings.Split(src, "\n") {
		line := strings.TrimRight(raw, "\r ")
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			r.leave()
		case trimmed == "---":
			r.leave()
			buf.WriteString("<hr/>")
		case reHeading.MatchString(trimmed):
			r.leave()
			m := reHeading.FindStringSubmatch(trimmed)
			level := strconv.Itoa(len(m[1]))
			buf.WriteString("<h" + level + ">")
			buf.WriteString(FormatInline(m[2]))
			buf.WriteString("</h" + level + ">")
		case strings.HasPrefix(trimmed, "- "), strings.HasPrefix(trimmed, "* "):
			r.enter(blockList)
			buf.WriteString("<li>" + FormatInline(strings.TrimSpace(trimmed[2:])) + "</li>")
		case reOrdered.MatchString(trimmed):
			r.enter(blockOrdered)
			buf.WriteString("<li>" + FormatInline(reOrdered.ReplaceAllString(trimmed, "")) + "</li>")
		case strings.HasPrefix(trimmed, "> "):
			if r.current == blockQuote {
				buf.WriteString(" ")
			}
			r.enter(blockQuote)
			buf.WriteString(FormatInline(strings.TrimSpace(trimmed[2:])))
		default:
			if r.current == blockPara {
				buf.WriteString(" ")
			}
			r.enter(blockPara)
			buf.WriteString(FormatInline(trimmed))
		}
	}
	r.leave()
}

// applyOutsideTags runs fn on the text between HTML tags only, so emphasis
// patterns never rewrite attribute values.
func applyOutsideTags(s string, fn func(string) string) string {
	var b strings.Builder
	for len(s) > 0 {
		lt := strings.Index(s, "<")
		if lt < 0 {
			b.WriteString(fn(s))
			break
		}
		b.WriteString(fn(s[:lt]))
		gt := strings.Index(s[lt:], ">")
		if gt < 0 {
			b.WriteString(s[lt:])
			break
		}
		b.WriteString(s[lt : lt+gt+1])
		s = s[lt+gt+1:]
	}
	return b.String()
}

// FormatInline escapes s and applies inline formatting.
func FormatInline(s string) string {
	out := html.EscapeString(s)
	var codes []string
	out = reInlineCode.ReplaceAllStringFunc(out, func(m string) string {
		codes = append(codes, "<code>"+reInlineCode.FindStringSubmatch(m)[1]+"</code>")
		return codePlaceholder(len(codes) - 1)
	})
	out = reLink.ReplaceAllStringFunc(out, func(m string) string {
		match := reLink.FindStringSubmatch(m)
		href := SafeURL(match[2])
		if href == "" {
			return match[1]
		}
		attrs := ""
		if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
			attrs = ` target="_blank" rel="noopener noreferrer"`
		}
		return `<a href="` + href + `"` + attrs + `>` + match[1] + `</a>`
	})
	out = applyOutsideTags(out, func(seg string) string {
		seg = reBold.ReplaceAllString(seg, "<strong>$1</strong>")
		return reItalic.ReplaceAllString(seg, "<em>$1</em>")
	})
	for i, c := range codes {
		out = strings.Replace(out, codePlaceholder(i), c, 1)
	}
	return out
}

// codePlaceholder stands in for a code span while emphasis is applied, so
// the span's text is left untouched.
func codePlaceholder(i int) string {
	return "\x00" + strconv.Itoa(i) + "\x00"
}

// SafeURL returns an escaped href for site-relative, fragment, http(s),
// mailto and tel references, and "" for anything else.
func SafeURL(raw string) string {
	val := strings.TrimSpace(html.UnescapeString(raw))
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") {
		if strings.HasPrefix(val, "//") {
			return ""
		}
		return html.EscapeString(val)
	}
	parsed, err := url.Parse(val)
	if err != nil || parsed.Scheme == "" {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto", "tel":
		return html.EscapeString(val)
	default:
		return ""
	}
}
