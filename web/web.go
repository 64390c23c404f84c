// Package web holds the HTML templates and browser assets.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
