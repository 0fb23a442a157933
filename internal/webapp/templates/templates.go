// Package templates embeds the HTML templates for the web frontend.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
