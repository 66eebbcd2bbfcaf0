package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed layouts/*.html library/*.html
var FS embed.FS

const (
	Layout      = "layouts/main"
	LibraryPage = "library/index"
)

// NewEngine builds the html engine over the embedded templates.
func NewEngine() *html.Engine {
	return html.NewFileSystem(http.FS(FS), ".html")
}
