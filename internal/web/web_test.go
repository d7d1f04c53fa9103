package web_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"parkingassist/internal/web"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLocaleRedirect(t *testing.T) {
	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	})
	handler := web.LocaleRedirect(next)

	tests := []struct {
		name           string
		path           string
		acceptLanguage string
		wantRedirect   string
	}{
		{"root redirects to accept-language locale", "/", "en-US,en;q=0.9", "/en"},
		{"missing header defaults to french", "/booking", "", "/fr/booking"},
		{"unsupported language defaults to french", "/booking", "de-DE,de;q=0.9", "/fr/booking"},
		{"prefixed path passes through", "/en/booking", "", ""},
		{"api path passes through", "/api/booking", "", ""},
		{"asset path passes through", "/logo.png", "", ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			nextCalled = false
			req := httptest.NewRequest(http.MethodGet, test.path, nil)
			if test.acceptLanguage != "" {
				req.Header.Set("Accept-Language", test.acceptLanguage)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if test.wantRedirect == "" {
				assert.True(t, nextCalled)
				return
			}
			assert.False(t, nextCalled)
			assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
			assert.Equal(t, test.wantRedirect, rec.Header().Get("Location"))
		})
	}
}

func pageRouter() *mux.Router {
	h := web.NewPageHandler(zerolog.Nop())
	r := mux.NewRouter()
	pages := r.PathPrefix("/{locale:en|fr}").Subrouter()
	pages.HandleFunc("", h.Home).Methods("GET")
	pages.HandleFunc("/", h.Home).Methods("GET")
	pages.HandleFunc("/booking", h.Booking).Methods("GET")
	return r
}

func TestPages(t *testing.T) {
	router := pageRouter()

	t.Run("home renders in both languages", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/en", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Reserve your parking spot without the hassle")

		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fr", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Réservez votre place de parking sans stress")
	})

	t.Run("booking page renders the form", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fr/booking", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Demande de réservation de parking")
		assert.Contains(t, body, `name="vehicleDescription"`)
		assert.Contains(t, body, `value="Moving"`)
	})

	t.Run("locale switcher links the same page in the other language", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/en/booking", nil))

		assert.Contains(t, rec.Body.String(), `href="/fr/booking"`)
	})
}
