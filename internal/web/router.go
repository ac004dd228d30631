package web

import (
	"embed"
	"html/template"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"hanzi-namer/internal/engine"
)

//go:embed templates/*.html
var templateFS embed.FS

// NewRouter returns the application handler. Hosting processes can mount it
// directly; the serve command wraps it in an http.Server.
func NewRouter(gen *engine.Generator, logger *log.Logger) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), AccessLog(logger), Recovery(logger))

	tmpl := template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
	r.SetHTMLTemplate(tmpl)

	NewHandler(gen, logger).RegisterRoutes(r)
	return r
}
