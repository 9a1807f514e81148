package views

import (
	"context"
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/a-h/templ"
	"github.com/gofiber/template/html/v2"
)

//go:embed templates
var templateFiles embed.FS

// Engine returns the page template engine backed by the embedded templates
func Engine() *html.Engine {
	sub, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		panic(err)
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	return engine
}

// ToHTML renders a component for embedding into a page template
func ToHTML(ctx context.Context, c templ.Component) (template.HTML, error) {
	return templ.ToGoHTML(ctx, c)
}
