package siteshell

import "embed"

// EmbeddedAssets contains static assets shipped with the binary and served
// under /assets/: globals.css.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
