// Package bookingform owns the booking form state on the client side of the
// pipeline: field mutation, the reason tag set, validation and the guarded
// HTTP submission.
package bookingform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"parkingassist/internal/entities"
	"parkingassist/internal/i18n"

	"github.com/rs/zerolog"
)

// ReasonTags is the fixed vocabulary for the reason checkboxes.
var ReasonTags = []string{"Moving", "Renovation", "Delivery", "Other"}

// ErrMissingFields is returned when a mandatory field is empty after
// trimming; the submission never reaches the network in that case.
var ErrMissingFields = errors.New("missing required fields")

// Notifier presents a blocking localized message to the user.
type Notifier interface {
	Alert(message string)
}

// Navigator replaces the current page after a successful submission.
type Navigator interface {
	Replace(path string)
}

// Controller holds one form's state. It is single-writer: all mutation goes
// through its methods and it is consumed by at most one submission at a time.
type Controller struct {
	locale   string
	endpoint string
	client   *http.Client
	notifier Notifier
	nav      Navigator
	log      zerolog.Logger

	form     entities.BookingRequest
	reasons  map[string]struct{}
	inFlight bool
}

func NewController(locale, endpoint string, client *http.Client, notifier Notifier, nav Navigator, log zerolog.Logger) *Controller {
	if client == nil {
		client = http.DefaultClient
	}
	return &Controller{
		locale:   i18n.Resolve(locale),
		endpoint: endpoint,
		client:   client,
		notifier: notifier,
		nav:      nav,
		log:      log,
		reasons:  make(map[string]struct{}),
	}
}

// UpdateField sets one scalar field by its payload name. Unknown names are
// ignored.
func (c *Controller) UpdateField(name, value string) {
	switch name {
	case "firstName":
		c.form.FirstName = value
	case "lastName":
		c.form.LastName = value
	case "company":
		c.form.Company = value
	case "city":
		c.form.City = value
	case "postalCode":
		c.form.PostalCode = value
	case "address":
		c.form.Address = value
	case "email":
		c.form.Email = value
	case "phone":
		c.form.Phone = value
	case "numberOfSpots":
		c.form.NumberOfSpots = value
	case "requiredLength":
		c.form.RequiredLength = value
	case "startDate":
		c.form.StartDate = value
	case "startTime":
		c.form.StartTime = value
	case "endDate":
		c.form.EndDate = value
	case "endTime":
		c.form.EndTime = value
	case "vehicleDescription":
		c.form.VehicleDescription = value
	default:
		c.log.Debug().Str("field", name).Msg("ignoring unknown form field")
	}
}

// ToggleReason adds or removes one tag from the reason set. Toggling the same
// tag twice with the same value is a no-op.
func (c *Controller) ToggleReason(tag string, checked bool) {
	if checked {
		c.reasons[tag] = struct{}{}
		return
	}
	delete(c.reasons, tag)
}

// Payload is the current form state as it would be submitted, with the
// enabled reason tags serialized in vocabulary order.
func (c *Controller) Payload() entities.BookingRequest {
	payload := c.form
	payload.Locale = c.locale
	payload.Reason = c.reasonList()
	return payload
}

// Submit validates, serializes and posts the form. While a submission is
// outstanding further calls are no-ops. On success the user is alerted and
// navigated to the locale home page; the in-flight flag stays set since the
// page is left behind. On failure the flag is cleared so the user can retry.
func (c *Controller) Submit(ctx context.Context) error {
	if c.inFlight {
		return nil
	}
	if !c.requiredFieldsFilled() {
		c.notifier.Alert(i18n.T(c.locale, "booking.requiredFields"))
		return ErrMissingFields
	}

	c.inFlight = true

	body, err := json.Marshal(c.Payload())
	if err != nil {
		return c.fail(fmt.Errorf("serializing form: %w", err))
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return c.fail(fmt.Errorf("building request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return c.fail(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text, readErr := io.ReadAll(resp.Body)
		msg := string(text)
		if readErr != nil {
			msg = ""
		}
		if msg == "" {
			msg = fmt.Sprintf("HTTP %d", resp.StatusCode)
		}
		return c.fail(errors.New(msg))
	}

	c.notifier.Alert(i18n.T(c.locale, "booking.sentAlert"))
	c.nav.Replace("/" + c.locale)
	return nil
}

func (c *Controller) fail(err error) error {
	c.log.Error().Err(err).Msg("booking submit failed")
	c.notifier.Alert(i18n.T(c.locale, "booking.errorGeneric"))
	c.inFlight = false
	return err
}

func (c *Controller) requiredFieldsFilled() bool {
	// Company and requiredLength are the only optional fields.
	required := []string{
		c.form.FirstName,
		c.form.LastName,
		c.form.City,
		c.form.PostalCode,
		c.form.Address,
		c.form.Email,
		c.form.Phone,
		c.form.NumberOfSpots,
		c.form.StartDate,
		c.form.StartTime,
		c.form.EndDate,
		c.form.EndTime,
		c.form.VehicleDescription,
	}
	for _, v := range required {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

func (c *Controller) reasonList() []string {
	out := make([]string, 0, len(c.reasons))
	for _, tag := range ReasonTags {
		if _, ok := c.reasons[tag]; ok {
			out = append(out, tag)
		}
	}
	var extra []string
	for tag := range c.reasons {
		if !knownReason(tag) {
			extra = append(extra, tag)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}

func knownReason(tag string) bool {
	for _, t := range ReasonTags {
		if t == tag {
			return true
		}
	}
	return false
}
