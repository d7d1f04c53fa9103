// Package web serves the bilingual marketing pages and the booking form.
package web

import (
	"html/template"
	"net/http"
	"strings"

	"parkingassist/internal/i18n"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type pageData struct {
	Locale    string
	CleanPath string
}

// T looks up a translation for the page's locale.
func (d pageData) T(key string) string { return i18n.T(d.Locale, key) }

// AltLocale is the other site language, used by the locale switcher.
func (d pageData) AltLocale() string {
	if d.Locale == "fr" {
		return "en"
	}
	return "fr"
}

type PageHandler struct {
	Log zerolog.Logger
}

func NewPageHandler(log zerolog.Logger) *PageHandler {
	return &PageHandler{Log: log}
}

func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, homeTmpl)
}

func (h *PageHandler) Booking(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, bookingTmpl)
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, tmpl *template.Template) {
	locale := i18n.Resolve(mux.Vars(r)["locale"])
	data := pageData{
		Locale:    locale,
		CleanPath: cleanPath(r.URL.Path, locale),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		h.Log.Error().Err(err).Str("path", r.URL.Path).Msg("failed to render page")
	}
}

// cleanPath strips the locale prefix so the switcher can relink the same page
// in the other language.
func cleanPath(p, locale string) string {
	trimmed := strings.TrimPrefix(p, "/"+locale)
	if trimmed == "" {
		return "/"
	}
	return trimmed
}
