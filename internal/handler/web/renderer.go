package web

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"

	"github.com/labstack/echo/v4"
)

const layoutFile = "layout.html"

// Renderer renders pages as echo.Renderer. Each page is parsed together with the
// layout so that every page can define its own "content" block.
type Renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	// json embeds a value into a <script> block.
	"json": func(v interface{}) (template.JS, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return template.JS(b), nil
	},
}

// NewRenderer parses dir/layout.html plus every other dir/*.html of fsys.
// Pages are addressed by file name without extension.
func NewRenderer(fsys fs.FS, dir string) (*Renderer, error) {
	files, err := fs.Glob(fsys, path.Join(dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	layout := path.Join(dir, layoutFile)
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, f := range files {
		if f == layout {
			continue
		}
		t, err := template.New(layoutFile).Funcs(funcs).ParseFS(fsys, layout, f)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", f, err)
		}
		name := path.Base(f)
		r.pages[name[:len(name)-len(path.Ext(name))]] = t
	}
	if len(r.pages) == 0 {
		return nil, fmt.Errorf("no templates in %s", dir)
	}
	return r, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}
