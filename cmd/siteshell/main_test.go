package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	root := rootCommand()
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "siteshell dev\n", out.String())
}

func TestIconsCommand(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "source.png")

	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for x := 0; x < 64; x++ {
		for y := 0; y < 64; y++ {
			img.Set(x, y, color.RGBA{R: 20, G: 60, B: 160, A: 255})
		}
	}
	f, err := os.Create(src)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	out := filepath.Join(dir, "public")
	var stdout bytes.Buffer
	root := rootCommand()
	root.SetOut(&stdout)
	root.SetArgs([]string{"icons", "--source", src, "--out", out})

	require.NoError(t, root.Execute())
	assert.Contains(t, stdout.String(), "icons written to")
	assert.FileExists(t, filepath.Join(out, "favicon-16x16.png"))
	assert.FileExists(t, filepath.Join(out, "apple-touch-icon-180x180.png"))
	assert.FileExists(t, filepath.Join(out, "mstile-310x150.png"))
}

func TestIconsCommandRequiresSource(t *testing.T) {
	root := rootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"icons"})
	assert.Error(t, root.Execute())
}
