package interfaces

import "context"

// Mail is one outbound message. Either HTML or Text (or both) is set.
type Mail struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// IMailer abstracts the outbound notification channel (SMTP in
// production). Delivery is best-effort: a send failure must never abort or
// roll back the workflow operation that requested it.
type IMailer interface {
	Send(ctx context.Context, m Mail) error
}
