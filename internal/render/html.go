// Package render turns a profile into the preview page and the share card,
// as HTML for browsers and the rasterizer, and as styled text for terminals.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/alexisbeaulieu97/linkforce/internal/profile"
	"github.com/alexisbeaulieu97/linkforce/internal/style"
)

//go:embed templates/*.html
var templateFiles embed.FS

// Template names, usable both with Renderer and with a view engine loaded
// from Templates.
const (
	PreviewTemplate = "preview"
	CardTemplate    = "card"
)

// CardSelector selects the card root element in the card page.
const CardSelector = "#card"

// Templates exposes the page templates, one <name>.html file each.
func Templates() fs.FS {
	sub, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		panic(fmt.Sprintf("render: embedded templates missing: %v", err))
	}
	return sub
}

// Renderer writes HTML pages for a profile.
type Renderer struct {
	catalog style.Catalog
	tmpl    *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer(catalog style.Catalog) (*Renderer, error) {
	tmpl, err := template.ParseFS(Templates(), "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{catalog: catalog, tmpl: tmpl}, nil
}

// Catalog returns the preset catalog the renderer resolves against.
func (r *Renderer) Catalog() style.Catalog {
	return r.catalog
}

// Preview writes the live preview page.
func (r *Renderer) Preview(w io.Writer, p profile.UserProfile) error {
	return r.tmpl.ExecuteTemplate(w, PreviewTemplate+".html", NewPreviewView(r.catalog, p))
}

// Card writes the standalone share card page.
func (r *Renderer) Card(w io.Writer, p profile.UserProfile) error {
	return r.tmpl.ExecuteTemplate(w, CardTemplate+".html", NewCardView(r.catalog, p))
}
