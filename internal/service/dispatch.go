package service

import (
	"context"
	"errors"
	"fmt"
	"net/textproto"
	"strconv"

	"parkingassist/internal/entities"

	"github.com/rs/zerolog"
)

// DispatchService delivers the two booking mails with a two-tier transport
// strategy: the 587 STARTTLS profile first, then 465 implicit TLS if anything
// on the first tier fails. On each tier the relay connection is verified
// before the staff notification and then the acknowledgement are sent, in
// that order. A tier is never retried.
type DispatchService struct {
	factory TransportFactory
	log     zerolog.Logger
}

func NewDispatchService(factory TransportFactory, log zerolog.Logger) *DispatchService {
	return &DispatchService{factory: factory, log: log}
}

// SendBookingMails sends staff then ack, falling back once. When both tiers
// fail, the fallback tier's error is returned; the primary tier's failure is
// only logged.
func (s *DispatchService) SendBookingMails(ctx context.Context, staff, ack entities.MailMessage) error {
	err := s.sendOn(ctx, SubmissionProfile, staff, ack)
	if err == nil {
		return nil
	}
	s.log.Warn().
		Err(err).
		Int("port", SubmissionProfile.Port).
		Msg("primary SMTP profile failed, falling back")

	return s.sendOn(ctx, SMTPSProfile, staff, ack)
}

func (s *DispatchService) sendOn(ctx context.Context, cfg TransportConfig, msgs ...entities.MailMessage) error {
	t := s.factory(cfg)
	if err := t.Verify(ctx); err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	for _, msg := range msgs {
		if err := t.Send(ctx, msg); err != nil {
			return fmt.Errorf("send to %s: %w", msg.To, err)
		}
	}
	return nil
}

// ErrorCode maps a dispatch failure to the code reported to the client: the
// SMTP protocol response code when the relay rejected a command, a generic
// sentinel otherwise.
func ErrorCode(err error) string {
	var protoErr *textproto.Error
	if errors.As(err, &protoErr) {
		return strconv.Itoa(protoErr.Code)
	}
	return "send_error"
}
