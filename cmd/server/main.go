package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"parkingassist/internal/api"
	"parkingassist/internal/config"
	"parkingassist/internal/service"
	"parkingassist/internal/web"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

func main() {
	cfg := config.Load()

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		log = log.Level(level)
	}

	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		log.Fatal().Msg("SMTP_HOST, SMTP_USER and SMTP_PASS must be set")
	}
	if cfg.AdminEmail == "" {
		log.Fatal().Msg("ADMIN_EMAIL not set")
	}

	factory := func(tc service.TransportConfig) service.Transport {
		return service.NewSMTPTransport(cfg.SMTPHost, cfg.TLSServerName, cfg.SMTPUser, cfg.SMTPPass, tc)
	}
	dispatcher := service.NewDispatchService(factory, log)
	mailer := service.NewMailer(cfg.MailFrom, cfg.AdminEmail, log)

	bookingHandler := api.NewBookingHandler(mailer, dispatcher, log)
	pageHandler := web.NewPageHandler(log)

	r := mux.NewRouter()
	r.Use(web.RequestLogger(log))

	r.HandleFunc("/api/booking", bookingHandler.SubmitBooking).Methods("POST")

	pages := r.PathPrefix("/{locale:en|fr}").Subrouter()
	pages.HandleFunc("", pageHandler.Home).Methods("GET")
	pages.HandleFunc("/", pageHandler.Home).Methods("GET")
	pages.HandleFunc("/booking", pageHandler.Booking).Methods("GET")

	handler := handlers.CORS(
		handlers.AllowedMethods([]string{"GET", "POST"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(handlers.LoggingHandler(os.Stdout, web.LocaleRedirect(r)))

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-stop
		log.Info().Msg("shutting down server")
		_ = httpServer.Shutdown(context.Background())
	}()

	log.Info().Str("port", cfg.Port).Msg("server listening")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server failed")
	}
}
