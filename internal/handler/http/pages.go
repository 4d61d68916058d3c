package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/scies/greenchem/internal/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type pageData struct {
	Version      string
	ContactEmail string
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, name string) {
	log := logger.FromRequest(r)

	data := pageData{
		Version:      h.services.AppInfoService.GetAppVersion(r.Context()),
		ContactEmail: h.services.AppInfoService.GetContactEmail(r.Context()),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		log.Error().Err(err).Str("template", name).Msg("render page template")
	}
}

func (h *Handler) indexPage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "index.html")
}

func (h *Handler) adminPage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "admin.html")
}
