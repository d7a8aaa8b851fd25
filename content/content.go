// Package content loads the site's Markdown pages. Pages are embedded in the
// binary and rendered into the shell's content slot.
package content

import (
	"bufio"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"
)

//go:embed pages/*.md
var pagesFS embed.FS

// HomeSlug is the slug of the page served at "/".
const HomeSlug = "home"

// Page is a single Markdown page.
type Page struct {
	Slug        string
	Title       string // empty on the home page keeps the site title
	Description string
	Order       int
	Updated     string // YYYY-MM-DD, optional
	Body        string
}

// Path is the URL path the page is served at.
func (p Page) Path() string {
	if p.Slug == HomeSlug {
		return "/"
	}
	return "/" + p.Slug + "/"
}

// Component renders the page body.
func (p Page) Component() templ.Component {
	return Markdown(p.Body)
}

// Library is an immutable set of pages.
type Library struct {
	pages  []Page
	bySlug map[string]Page
}

// Load reads the embedded pages.
func Load() (*Library, error) {
	sub, err := fs.Sub(pagesFS, "pages")
	if err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}
	return LoadFS(sub)
}

// LoadFS reads every *.md file at the root of fsys. The file name without
// extension is the page slug.
func LoadFS(fsys fs.FS) (*Library, error) {
	names, err := fs.Glob(fsys, "*.md")
	if err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}
	lib := &Library{bySlug: make(map[string]Page, len(names))}
	for _, name := range names {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("content: read %s: %w", name, err)
		}
		slug := strings.TrimSuffix(path.Base(name), ".md")
		page, err := parsePage(slug, string(raw))
		if err != nil {
			return nil, fmt.Errorf("content: %s: %w", name, err)
		}
		lib.pages = append(lib.pages, page)
		lib.bySlug[slug] = page
	}
	sort.SliceStable(lib.pages, func(i, j int) bool {
		if lib.pages[i].Order != lib.pages[j].Order {
			return lib.pages[i].Order < lib.pages[j].Order
		}
		return lib.pages[i].Slug < lib.pages[j].Slug
	})
	return lib, nil
}

// parsePage splits the "key: value" header from the body at the first blank
// line.
func parsePage(slug, raw string) (Page, error) {
	p := Page{Slug: slug}
	header, body, _ := strings.Cut(strings.ReplaceAll(raw, "\r\n", "\n"), "\n\n")
	sc := bufio.NewScanner(strings.NewReader(header))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return Page{}, fmt.Errorf("malformed header line %q", line)
		}
		value = strings.TrimSpace(value)
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "title":
			p.Title = value
		case "description":
			p.Description = value
		case "order":
			n, err := strconv.Atoi(value)
			if err != nil {
				return Page{}, fmt.Errorf("invalid order %q: %w", value, err)
			}
			p.Order = n
		case "updated":
			if _, err := time.Parse("2006-01-02", value); err != nil {
				return Page{}, fmt.Errorf("invalid updated date %q: %w", value, err)
			}
			p.Updated = value
		default:
			return Page{}, fmt.Errorf("unknown header %q", key)
		}
	}
	if p.Title == "" && slug != HomeSlug {
		return Page{}, fmt.Errorf("missing title")
	}
	p.Body = strings.TrimSpace(body)
	return p, nil
}

// Get returns the page with slug.
func (l *Library) Get(slug string) (Page, bool) {
	p, ok := l.bySlug[slug]
	return p, ok
}

// Pages returns all pages ordered by their order header, then slug.
func (l *Library) Pages() []Page {
	out := make([]Page, len(l.pages))
	copy(out, l.pages)
	return out
}
