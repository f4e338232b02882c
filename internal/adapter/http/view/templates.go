package view

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var funcs = template.FuncMap{
	"fieldError": func(errs map[string]string, field string) string {
		return errs[field]
	},
	"selected": func(current, value string) bool {
		return current == value
	},
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.New("taskboard").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
}

func MustTemplates() *template.Template {
	return template.Must(Templates())
}
