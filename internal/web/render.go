package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var funcs = template.FuncMap{
	// cases.Caser is stateful, build one per call
	"title": func(s string) string { return cases.Title(language.English).String(s) },
	"pct":   func(n int) template.CSS { return template.CSS(fmt.Sprintf("%d%%", n)) },
	"ms":    func(n int) template.CSS { return template.CSS(fmt.Sprintf("%dms", n)) },
	"color": func(s string) template.CSS { return template.CSS(s) },
}

type pages map[string]*template.Template

func parsePages(names ...string) (pages, error) {
	out := make(pages, len(names))
	for _, name := range names {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		out[name] = t
	}
	return out, nil
}

// render executes a page into a buffer first so a template error never
// leaves a half written response.
func (p pages) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	t, ok := p[name]
	if !ok {
		log.Printf("render: unknown template name=%s", name)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Printf("render: template=%s error=%v", name, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
