package metadata

import (
	"fmt"
	"strconv"
	"strings"
)

// Icon is a single <link> icon declaration.
type Icon struct {
	Rel   string
	Href  string
	Sizes string // "16x16", "any" or empty
	Type  string // MIME type, may be empty
}

// TileMeta is a Microsoft tile <meta> declaration.
type TileMeta struct {
	Name    string
	Content string
}

// Icons is the icon manifest of the site.
type Icons struct {
	Shortcut []Icon
	Icon     []Icon
	Apple    []Icon
	Tiles    []TileMeta
}

// All returns every link-rendered icon in declaration order.
func (i Icons) All() []Icon {
	out := make([]Icon, 0, len(i.Shortcut)+len(i.Icon)+len(i.Apple))
	out = append(out, i.Shortcut...)
	out = append(out, i.Icon...)
	out = append(out, i.Apple...)
	return out
}

// Dimensions parses a "WxH" sizes value. ok is false for "any", empty, or
// malformed values.
func (i Icon) Dimensions() (w, h int, ok bool) {
	return parseSize(i.Sizes)
}

func parseSize(s string) (int, int, bool) {
	ws, hs, found := strings.Cut(strings.ToLower(s), "x")
	if !found {
		return 0, 0, false
	}
	w, err := strconv.Atoi(ws)
	if err != nil || w <= 0 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}

// TileDimensions returns the size encoded in a tile image name such as
// "/mstile-310x150.png". ok is false when the tile content is not an image.
func (t TileMeta) TileDimensions() (w, h int, ok bool) {
	if !strings.HasSuffix(t.Content, ".png") {
		return 0, 0, false
	}
	name := strings.TrimSuffix(t.Content[strings.LastIndex(t.Content, "/")+1:], ".png")
	idx := strings.LastIndex(name, "-")
	if idx < 0 {
		return 0, 0, false
	}
	return parseSize(name[idx+1:])
}

func sized(rel, prefix string, size int, mime string) Icon {
	return Icon{
		Rel:   rel,
		Href:  fmt.Sprintf("/%s-%dx%d.png", prefix, size, size),
		Sizes: fmt.Sprintf("%dx%d", size, size),
		Type:  mime,
	}
}

// DefaultIcons returns the icon manifest of the SB Management site.
func DefaultIcons() Icons {
	icons := Icons{
		Shortcut: []Icon{
			{Rel: "shortcut icon", Href: "/main-icon.png"},
		},
		Icon: []Icon{
			{Rel: "icon", Href: "/main-icon.png", Sizes: "any"},
		},
		Tiles: []TileMeta{
			{Name: "msapplication-TileColor", Content: "#FFFFFF"},
			{Name: "msapplication-TileImage", Content: "/mstile-144x144.png"},
			{Name: "msapplication-square70x70logo", Content: "/mstile-70x70.png"},
			{Name: "msapplication-square150x150logo", Content: "/mstile-150x150.png"},
			{Name: "msapplication-wide310x150logo", Content: "/mstile-310x150.png"},
			{Name: "msapplication-square310x310logo", Content: "/mstile-310x310.png"},
		},
	}
	for _, s := range []int{16, 32, 96, 128, 196} {
		icons.Icon = append(icons.Icon, sized("icon", "favicon", s, "image/png"))
	}
	for _, s := range []int{57, 60, 72, 76, 114, 120, 144, 152, 167, 180} {
		icons.Apple = append(icons.Apple, sized("apple-touch-icon", "apple-touch-icon", s, ""))
	}
	return icons
}
