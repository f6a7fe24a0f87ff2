package api

import (
	"embed"
	"html/template"
)

//go:embed static/dashboard.html.tmpl
var apiStaticFS embed.FS

// pageTemplate renders one mounted dashboard.
var pageTemplate = template.Must(template.ParseFS(apiStaticFS, "static/dashboard.html.tmpl"))
