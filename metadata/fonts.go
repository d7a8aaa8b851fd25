package metadata

import (
	"net/url"
	"strings"
)

// Font is a web font loaded once and bound to a CSS custom property.
type Font struct {
	Family   string
	Weights  []string
	Subsets  []string
	Display  string // font-display strategy
	Variable string // CSS custom property, e.g. "--font-inter"
	Fallback string
}

// ClassName is the class placed on <html> to scope the font variable.
func (f Font) ClassName() string {
	return strings.TrimPrefix(f.Variable, "--")
}

// Stack returns the font-family value bound to the variable.
func (f Font) Stack() string {
	stack := "'" + f.Family + "'"
	if f.Fallback != "" {
		stack += ", " + f.Fallback
	}
	return stack
}

// Fonts returns the two site fonts: Inter for body text and Montserrat for
// headings.
func Fonts() []Font {
	return []Font{
		{
			Family:   "Inter",
			Weights:  []string{"400", "500", "600", "700"},
			Subsets:  []string{"latin"},
			Display:  "swap",
			Variable: "--font-inter",
			Fallback: "ui-sans-serif, system-ui, sans-serif",
		},
		{
			Family:   "Montserrat",
			Weights:  []string{"500", "600", "700", "800"},
			Subsets:  []string{"latin"},
			Display:  "swap",
			Variable: "--font-montserrat",
			Fallback: "ui-sans-serif, system-ui, sans-serif",
		},
	}
}

// GoogleFontsURL builds a single css2 stylesheet URL for fonts. All fonts
// must share a display strategy; the first font's is used.
func GoogleFontsURL(fonts []Font) string {
	if len(fonts) == 0 {
		return ""
	}
	q := url.Values{}
	for _, f := range fonts {
		family := f.Family
		if len(f.Weights) > 0 {
			family += ":wght@" + strings.Join(f.Weights, ";")
		}
		q.Add("family", family)
	}
	if fonts[0].Display != "" {
		q.Set("display", fonts[0].Display)
	}
	var subsets []string
	seen := make(map[string]struct{})
	for _, f := range fonts {
		for _, s := range f.Subsets {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			subsets = append(subsets, s)
		}
	}
	if len(subsets) > 0 {
		q.Set("subset", strings.Join(subsets, ","))
	}
	return "https://fonts.googleapis.com/css2?" + q.Encode()
}

// FontVariablesCSS returns the :root rule binding every font variable.
func FontVariablesCSS(fonts []Font) string {
	var b strings.Builder
	b.WriteString(":root{")
	for _, f := range fonts {
		b.WriteString(f.Variable)
		b.WriteString(":")
		b.WriteString(f.Stack())
		b.WriteString(";")
	}
	b.WriteString("}")
	return b.String()
}
