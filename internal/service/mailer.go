package service

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"parkingassist/internal/entities"

	"github.com/rs/zerolog"
)

// staffEmailTemplate renders the booking fields into the notification sent to
// the operator mailbox. html/template escapes every interpolated field.
const staffEmailTemplate = `<!doctype html><html><body><h2>Parking reservation request</h2>
<p><b>Name:</b> {{.FirstName}} {{.LastName}}</p>
{{if .Company}}<p><b>Company:</b> {{.Company}}</p>
{{end}}<p><b>City / Postal:</b> {{.City}} {{.PostalCode}}</p>
<p><b>Address:</b> {{.Address}}</p>
<p><b>Email / Phone:</b> {{.Email}} / {{.Phone}}</p>
<p><b>Reason:</b> {{.ReasonLine}}</p>
<p><b>Spots:</b> {{.NumberOfSpots}}</p>
{{if .RequiredLength}}<p><b>Required length:</b> {{.RequiredLength}} m</p>
{{end}}<p><b>From:</b> {{.StartDate}} {{.StartTime}}</p>
<p><b>To:</b> {{.EndDate}} {{.EndTime}}</p>
<p><b>Vehicle:</b> {{.VehicleDescription}}</p>
</body></html>`

const (
	ackBodyFR = `<p>Merci ! Nous avons bien reçu votre demande. Nous la traitons et vous recontacterons très prochainement.</p><p>Si vous avez des questions, contactez-nous au téléphone ou par e-mail en réponse à ce message.</p>`
	ackBodyEN = `<p>Thank you! We’ve received your request. We’re processing it and will contact you shortly.</p><p>If you have questions, call us or reply to this email.</p>`

	ackSubjectFR = "Nous avons bien reçu votre demande de réservation"
	ackSubjectEN = "We have received your reservation request"
)

var staffTmpl = template.Must(template.New("staff_email").Parse(staffEmailTemplate))

// Mailer builds the two MailMessages of one booking submission.
type Mailer struct {
	from  string
	admin string
	log   zerolog.Logger
}

func NewMailer(from, admin string, log zerolog.Logger) *Mailer {
	return &Mailer{from: from, admin: admin, log: log}
}

// BuildStaffNotification addresses the booking details to the operator
// mailbox, with Reply-To pointing at the requester.
func (m *Mailer) BuildStaffNotification(req entities.BookingRequest) entities.MailMessage {
	data := entities.BookingEmailData{
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Company:            req.Company,
		City:               req.City,
		PostalCode:         req.PostalCode,
		Address:            req.Address,
		Email:              req.Email,
		Phone:              req.Phone,
		ReasonLine:         reasonLine(req.Reason),
		NumberOfSpots:      req.NumberOfSpots,
		RequiredLength:     req.RequiredLength,
		StartDate:          req.StartDate,
		StartTime:          req.StartTime,
		EndDate:            req.EndDate,
		EndTime:            req.EndTime,
		VehicleDescription: req.VehicleDescription,
	}

	var body bytes.Buffer
	if err := staffTmpl.Execute(&body, data); err != nil {
		m.log.Error().Err(err).Msg("failed to render staff notification body")
	}

	return entities.MailMessage{
		From:     m.from,
		To:       m.admin,
		ReplyTo:  req.Email,
		Subject:  fmt.Sprintf("New parking reservation — %s %s", req.FirstName, req.LastName),
		HTMLBody: body.String(),
	}
}

// BuildAcknowledgement addresses the confirmation to the requester, worded in
// the requester's locale. Anything other than "en" falls back to French.
func (m *Mailer) BuildAcknowledgement(req entities.BookingRequest) entities.MailMessage {
	subject, body := ackSubjectFR, ackBodyFR
	if req.Locale == "en" {
		subject, body = ackSubjectEN, ackBodyEN
	}

	return entities.MailMessage{
		From:     m.from,
		To:       req.Email,
		Subject:  subject,
		HTMLBody: body,
	}
}

func reasonLine(reason []string) string {
	if len(reason) == 0 {
		return "-"
	}
	return strings.Join(reason, ", ")
}
