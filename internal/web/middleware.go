package web

import (
	"net/http"
	"regexp"
	"strings"

	"parkingassist/internal/i18n"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Paths ending in a file extension are static assets and skip the locale
// redirect.
var assetPath = regexp.MustCompile(`\.[a-zA-Z0-9]+$`)

// LocaleRedirect prefixes unprefixed page URLs with the visitor's locale,
// picked from Accept-Language and defaulting to French. API and asset paths
// pass through untouched.
func LocaleRedirect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := r.URL.Path
		if strings.HasPrefix(p, "/api") || p == "/favicon.ico" || assetPath.MatchString(p) {
			next.ServeHTTP(w, r)
			return
		}
		if _, ok := i18n.FromPath(p); ok {
			next.ServeHTTP(w, r)
			return
		}
		locale := i18n.FromAcceptLanguage(r.Header.Get("Accept-Language"))
		if p == "/" {
			p = ""
		}
		http.Redirect(w, r, "/"+locale+p, http.StatusTemporaryRedirect)
	})
}

// RequestLogger attaches a request-scoped logger carrying a generated request
// id to the context.
func RequestLogger(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestLogger := log.With().
				Str("requestId", uuid.New().String()).
				Str("path", r.URL.Path).
				Logger()
			next.ServeHTTP(w, r.WithContext(requestLogger.WithContext(r.Context())))
		})
	}
}
