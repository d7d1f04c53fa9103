package service

import (
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"parkingassist/internal/entities"
)

// TransportConfig selects one of the two fixed SMTP submission profiles.
type TransportConfig struct {
	Port int
	// SSL means the TLS handshake starts on connect (implicit TLS).
	// Otherwise the connection is upgraded with STARTTLS before AUTH.
	SSL bool
}

var (
	// SubmissionProfile is the primary tier: port 587 with mandatory STARTTLS.
	SubmissionProfile = TransportConfig{Port: 587, SSL: false}
	// SMTPSProfile is the fallback tier: port 465 with implicit TLS.
	SMTPSProfile = TransportConfig{Port: 465, SSL: true}
)

// Transport can pre-flight a relay connection and deliver messages on it.
type Transport interface {
	Verify(ctx context.Context) error
	Send(ctx context.Context, msg entities.MailMessage) error
}

// TransportFactory builds a Transport for one profile.
type TransportFactory func(cfg TransportConfig) Transport

const (
	dialTimeout   = 15 * time.Second
	socketTimeout = 20 * time.Second
)

// SMTPTransport talks to the relay over net/smtp with the profile's TLS mode.
type SMTPTransport struct {
	host       string
	serverName string
	user       string
	pass       string
	cfg        TransportConfig
}

func NewSMTPTransport(host, serverName, user, pass string, cfg TransportConfig) *SMTPTransport {
	return &SMTPTransport{
		host:       host,
		serverName: serverName,
		user:       user,
		pass:       pass,
		cfg:        cfg,
	}
}

// Verify performs the connect/greeting/AUTH handshake and disconnects. A
// failure here counts the same as a send failure for fallback purposes.
func (t *SMTPTransport) Verify(ctx context.Context) error {
	c, err := t.connect(ctx)
	if err != nil {
		return err
	}
	return c.Quit()
}

// Send delivers one message on a fresh connection.
func (t *SMTPTransport) Send(ctx context.Context, msg entities.MailMessage) error {
	c, err := t.connect(ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.Mail(msg.From); err != nil {
		return fmt.Errorf("MAIL FROM: %w", err)
	}
	if err := c.Rcpt(msg.To); err != nil {
		return fmt.Errorf("RCPT TO: %w", err)
	}
	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("DATA: %w", err)
	}
	if _, err := w.Write(formatMessage(msg)); err != nil {
		return fmt.Errorf("writing message body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing message body: %w", err)
	}
	return c.Quit()
}

func (t *SMTPTransport) connect(ctx context.Context) (*smtp.Client, error) {
	addr := net.JoinHostPort(t.host, strconv.Itoa(t.cfg.Port))
	dialer := &net.Dialer{Timeout: dialTimeout}

	var (
		conn net.Conn
		err  error
	)
	if t.cfg.SSL {
		tlsDialer := &tls.Dialer{NetDialer: dialer, Config: t.tlsConfig()}
		conn, err = tlsDialer.DialContext(ctx, "tcp", addr)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	_ = conn.SetDeadline(time.Now().Add(socketTimeout))

	c, err := smtp.NewClient(conn, t.host)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("greeting: %w", err)
	}
	if !t.cfg.SSL {
		if err := c.StartTLS(t.tlsConfig()); err != nil {
			c.Close()
			return nil, fmt.Errorf("starttls: %w", err)
		}
	}
	auth := smtp.PlainAuth("", t.user, t.pass, t.host)
	if err := c.Auth(auth); err != nil {
		c.Close()
		return nil, fmt.Errorf("auth: %w", err)
	}
	return c, nil
}

func (t *SMTPTransport) tlsConfig() *tls.Config {
	return &tls.Config{ServerName: t.serverName}
}

func formatMessage(msg entities.MailMessage) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", msg.From)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	if msg.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", msg.ReplyTo)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTMLBody)
	return []byte(b.String())
}
