// Package web embeds the HTML pages served by the API.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses every embedded page. Pages share the "header" and
// "footer" blocks from layout.html.
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}
