package api

import (
	"context"
	"encoding/json"
	"net/http"

	"parkingassist/internal/entities"
	"parkingassist/internal/service"

	"github.com/rs/zerolog"
)

// Dispatcher sends the staff notification and the acknowledgement for one
// booking submission.
type Dispatcher interface {
	SendBookingMails(ctx context.Context, staff, ack entities.MailMessage) error
}

type BookingHandler struct {
	Mailer     *service.Mailer
	Dispatcher Dispatcher
	Log        zerolog.Logger
}

func NewBookingHandler(mailer *service.Mailer, dispatcher Dispatcher, log zerolog.Logger) *BookingHandler {
	return &BookingHandler{Mailer: mailer, Dispatcher: dispatcher, Log: log}
}

// SubmitBooking handles POST /api/booking. The handler is stateless: it
// parses the payload, builds the two mails and hands them to the dispatcher.
func (h *BookingHandler) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	log := h.requestLogger(r)

	var req entities.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error().Err(err).Msg("booking: invalid JSON payload")
		writeJSON(w, http.StatusBadRequest, BookingResponse{OK: false, Error: "invalid_json"})
		return
	}

	staff := h.Mailer.BuildStaffNotification(req)
	ack := h.Mailer.BuildAcknowledgement(req)

	if err := h.Dispatcher.SendBookingMails(r.Context(), staff, ack); err != nil {
		log.Error().Err(err).Str("requester", req.Email).Msg("booking: mail dispatch failed")
		writeJSON(w, http.StatusInternalServerError, BookingResponse{OK: false, Error: service.ErrorCode(err)})
		return
	}

	writeJSON(w, http.StatusOK, BookingResponse{OK: true})
}

// requestLogger prefers the request-scoped logger installed by the router
// middleware, which carries the request id.
func (h *BookingHandler) requestLogger(r *http.Request) *zerolog.Logger {
	if log := zerolog.Ctx(r.Context()); log.GetLevel() != zerolog.Disabled {
		return log
	}
	return &h.Log
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
