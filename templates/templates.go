// Package templates holds the embedded html/template views.
package templates

import (
	"embed"
	"errors"
	"html/template"
	"io"
	"io/fs"

	"github.com/labstack/echo/v4"
)

//go:embed html/*.html
var files embed.FS

// Pages lists every renderable page. Each is parsed together with base.html.
var Pages = []string{
	"index.html",
	"group_list.html",
	"profile.html",
	"post_detail.html",
	"create_post.html",
	"groups.html",
	"user-login.html",
	"user-signup.html",
	"admin-groups.html",
	"error.html",
}

type TemplateRegistry struct {
	templates map[string]*template.Template
}

// New parses every page from the embedded files.
func New() (*TemplateRegistry, error) {
	sub, err := fs.Sub(files, "html")
	if err != nil {
		return nil, err
	}
	r := &TemplateRegistry{templates: make(map[string]*template.Template, len(Pages))}
	for _, name := range Pages {
		t, err := template.ParseFS(sub, "base.html", "pagination.html", name)
		if err != nil {
			return nil, err
		}
		r.templates[name] = t
	}
	return r, nil
}

func (t *TemplateRegistry) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	tmpl, ok := t.templates[name]
	if !ok {
		err := errors.New("template not found: " + name)
		return err
	}

	return tmpl.ExecuteTemplate(w, "base.html", data)
}

