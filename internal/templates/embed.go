// Package templates renders the server-side HTML pages.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.tmpl
var files embed.FS

// Parse parses the named page together with the shared layout.
func Parse(name string) (*template.Template, error) {
	return template.New(name).ParseFS(files, "layout.html.tmpl", name)
}
