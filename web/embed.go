// Package web embeds the built single-page frontend so the binary ships
// self-contained.
package web

import "embed"

//go:embed static
var StaticFS embed.FS
