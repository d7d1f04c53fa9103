package entities

// MailMessage is one outbound email. Two are built per submission (staff
// notification and requester acknowledgement); neither is ever persisted.
type MailMessage struct {
	From     string
	To       string
	ReplyTo  string
	Subject  string
	HTMLBody string
}
