package web

import (
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Templates parses the embedded HTML templates used by the server.
func Templates() (*template.Template, error) {
	tmpl := template.New("").Funcs(template.FuncMap{
		"price": formatPrice,
	})
	tmpl, err := tmpl.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return tmpl, nil
}

func formatPrice(cents int64) string {
	return fmt.Sprintf("Rs. %d.%02d", cents/100, cents%100)
}
