package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"parkingassist/internal/api"
	"parkingassist/internal/entities"
	"parkingassist/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type stubDispatcher struct {
	err   error
	calls int
	staff entities.MailMessage
	ack   entities.MailMessage
}

func (s *stubDispatcher) SendBookingMails(ctx context.Context, staff, ack entities.MailMessage) error {
	s.calls++
	s.staff = staff
	s.ack = ack
	return s.err
}

func newHandler(dispatcher api.Dispatcher) *api.BookingHandler {
	mailer := service.NewMailer("noreply@parkingassist.ch", "admin@parkingassist.ch", zerolog.Nop())
	return api.NewBookingHandler(mailer, dispatcher, zerolog.Nop())
}

func samplePayload() entities.BookingRequest {
	return entities.BookingRequest{
		Locale:             "en",
		FirstName:          "A",
		LastName:           "B",
		City:               "Geneva",
		PostalCode:         "1200",
		Address:            "Rue X 1",
		Email:              "a@b.com",
		Phone:              "+41000000",
		Reason:             []string{},
		NumberOfSpots:      "2",
		StartDate:          "2025-06-01",
		StartTime:          "08:00",
		EndDate:            "2025-06-01",
		EndTime:            "18:00",
		VehicleDescription: "Van",
	}
}

func postBooking(t *testing.T, handler *api.BookingHandler, body []byte) (*httptest.ResponseRecorder, api.BookingResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/booking", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.SubmitBooking(rec, req)

	var resp api.BookingResponse
	assert.Nil(t, json.NewDecoder(rec.Body).Decode(&resp))
	return rec, resp
}

func TestSubmitBooking(t *testing.T) {
	t.Run("malformed JSON yields 400 without any send attempt", func(t *testing.T) {
		dispatcher := &stubDispatcher{}
		handler := newHandler(dispatcher)

		rec, resp := postBooking(t, handler, []byte("{not json"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, api.BookingResponse{OK: false, Error: "invalid_json"}, resp)
		assert.Equal(t, 0, dispatcher.calls)
	})

	t.Run("valid payload dispatches staff and acknowledgement mails", func(t *testing.T) {
		dispatcher := &stubDispatcher{}
		handler := newHandler(dispatcher)

		body, _ := json.Marshal(samplePayload())
		rec, resp := postBooking(t, handler, body)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, api.BookingResponse{OK: true}, resp)
		assert.Equal(t, 1, dispatcher.calls)
		assert.Equal(t, "admin@parkingassist.ch", dispatcher.staff.To)
		assert.Equal(t, "a@b.com", dispatcher.staff.ReplyTo)
		assert.Equal(t, "New parking reservation — A B", dispatcher.staff.Subject)
		assert.Equal(t, "a@b.com", dispatcher.ack.To)
	})

	t.Run("posted payload round-trips field for field", func(t *testing.T) {
		payload := samplePayload()
		payload.Company = "ACME SA"
		payload.Reason = []string{"Moving", "Other"}
		body, _ := json.Marshal(payload)

		var decoded entities.BookingRequest
		assert.Nil(t, json.Unmarshal(body, &decoded))
		assert.Equal(t, payload, decoded)
	})

	t.Run("dispatch failure with a protocol code yields 500 with that code", func(t *testing.T) {
		dispatcher := &stubDispatcher{
			err: fmt.Errorf("verify: %w", &textproto.Error{Code: 535, Msg: "authentication failed"}),
		}
		handler := newHandler(dispatcher)

		body, _ := json.Marshal(samplePayload())
		rec, resp := postBooking(t, handler, body)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, api.BookingResponse{OK: false, Error: "535"}, resp)
	})

	t.Run("dispatch failure without a protocol code yields send_error", func(t *testing.T) {
		dispatcher := &stubDispatcher{err: errors.New("dial tcp: timeout")}
		handler := newHandler(dispatcher)

		body, _ := json.Marshal(samplePayload())
		rec, resp := postBooking(t, handler, body)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, api.BookingResponse{OK: false, Error: "send_error"}, resp)
	})

	t.Run("missing or unknown locale defaults the acknowledgement to french", func(t *testing.T) {
		for _, locale := range []string{"", "de"} {
			dispatcher := &stubDispatcher{}
			handler := newHandler(dispatcher)

			payload := samplePayload()
			payload.Locale = locale
			body, _ := json.Marshal(payload)
			rec, _ := postBooking(t, handler, body)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "Nous avons bien reçu votre demande de réservation", dispatcher.ack.Subject, "locale %q", locale)
		}
	})
}

type tierTransport struct {
	sent []entities.MailMessage
}

func (f *tierTransport) Verify(ctx context.Context) error { return nil }

func (f *tierTransport) Send(ctx context.Context, msg entities.MailMessage) error {
	f.sent = append(f.sent, msg)
	return nil
}

func TestSubmitBookingEndToEnd(t *testing.T) {
	// Full pipeline against a stub relay that succeeds on the primary tier:
	// exactly two sends on 587, none on 465.
	primary := &tierTransport{}
	fallback := &tierTransport{}
	var built []int
	factory := func(cfg service.TransportConfig) service.Transport {
		built = append(built, cfg.Port)
		if cfg.Port == 587 {
			return primary
		}
		return fallback
	}
	dispatcher := service.NewDispatchService(factory, zerolog.Nop())
	handler := newHandler(dispatcher)

	body := `{"firstName":"A","lastName":"B","city":"Geneva","postalCode":"1200",` +
		`"address":"Rue X 1","email":"a@b.com","phone":"+41000000","numberOfSpots":"2",` +
		`"startDate":"2025-06-01","startTime":"08:00","endDate":"2025-06-01","endTime":"18:00",` +
		`"vehicleDescription":"Van","reason":[],"locale":"en"}`
	rec, resp := postBooking(t, handler, []byte(body))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, api.BookingResponse{OK: true}, resp)
	assert.Equal(t, []int{587}, built)
	assert.Len(t, primary.sent, 2)
	assert.Empty(t, fallback.sent)
	assert.Equal(t, "admin@parkingassist.ch", primary.sent[0].To)
	assert.Equal(t, "a@b.com", primary.sent[1].To)
	assert.True(t, strings.Contains(primary.sent[1].Subject, "We have received"))
}
