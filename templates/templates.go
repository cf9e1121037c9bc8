// Package templates renders every page of the app. Markup lives in embedded
// .gohtml files; each page function returns a templ.Component so handlers
// can render full pages or HTMX content fragments the same way.
package templates

import (
	"context"
	"embed"
	"html/template"
	"io"

	"github.com/a-h/templ"

	"marcenaria/services"
)

//go:embed *.gohtml
var files embed.FS

var tpl = template.Must(
	template.New("").Funcs(template.FuncMap{
		"brl": services.FormatBRL,
	}).ParseFS(files, "*.gohtml"),
)

// content returns a component that renders a single named template,
// which is what HTMX swaps receive.
func content(name string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return tpl.ExecuteTemplate(w, name, data)
	})
}

// page wraps a content template in the shared layout (head, nav, foot).
func page(name string, header HeaderData, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := tpl.ExecuteTemplate(w, "layout_head", header); err != nil {
			return err
		}
		if err := tpl.ExecuteTemplate(w, name, data); err != nil {
			return err
		}
		return tpl.ExecuteTemplate(w, "layout_foot", header)
	})
}

// HeaderData feeds the shared layout: who is signed in and which nav entry
// to highlight.
type HeaderData struct {
	UserName   string
	ActivePath string
}
