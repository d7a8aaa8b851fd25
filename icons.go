package siteshell

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"

	"github.com/sbmgmt/siteshell/metadata"
)

// IconTarget is a raster icon the head declares at a fixed size.
type IconTarget struct {
	Href   string
	Width  int
	Height int
}

// IconTargets lists every PNG the descriptor's icons and tiles reference with
// explicit dimensions, once per href, in declaration order.
func IconTargets(icons metadata.Icons) []IconTarget {
	var targets []IconTarget
	seen := make(map[string]struct{})
	add := func(href string, w, h int) {
		if !strings.HasSuffix(href, ".png") {
			return
		}
		if _, dup := seen[href]; dup {
			return
		}
		seen[href] = struct{}{}
		targets = append(targets, IconTarget{Href: href, Width: w, Height: h})
	}
	for _, icon := range icons.All() {
		if w, h, ok := icon.Dimensions(); ok {
			add(icon.Href, w, h)
		}
	}
	for _, tile := range icons.Tiles {
		if w, h, ok := tile.TileDimensions(); ok {
			add(tile.Content, w, h)
		}
	}
	return targets
}

// GenerateIcons decodes a source image (PNG, JPEG or GIF) and writes every
// icon target into dir as PNG. Non-square targets get the source scaled to
// fit and centered on a transparent canvas. It returns the written paths.
func GenerateIcons(src io.Reader, dir string, icons metadata.Icons) ([]string, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("siteshell: decode icon source: %w", err)
	}
	var written []string
	for _, t := range IconTargets(icons) {
		data, err := renderIcon(img, t.Width, t.Height)
		if err != nil {
			return written, fmt.Errorf("siteshell: render %s: %w", t.Href, err)
		}
		out := filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(t.Href, "/")))
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return written, fmt.Errorf("siteshell: create icon dir: %w", err)
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return written, fmt.Errorf("siteshell: write %s: %w", out, err)
		}
		written = append(written, out)
	}
	return written, nil
}

// renderIcon scales img to fit a w×h canvas, preserving its aspect ratio.
func renderIcon(img image.Image, w, h int) ([]byte, error) {
	bounds := img.Bounds()
	sw, sh := bounds.Dx(), bounds.Dy()
	if sw == 0 || sh == 0 {
		return nil, fmt.Errorf("empty source image")
	}

	fw, fh := w, sh*w/sw
	if fh > h {
		fw, fh = sw*h/sh, h
	}
	if fw < 1 {
		fw = 1
	}
	if fh < 1 {
		fh = 1
	}
	x0, y0 := (w-fw)/2, (h-fh)/2

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, image.Rect(x0, y0, x0+fw, y0+fh), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
