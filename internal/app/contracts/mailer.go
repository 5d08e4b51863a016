package contracts

import "context"

type EmailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// MailerService enqueues notification emails; delivery happens through the
// mailer queue worker.
type MailerService interface {
	EnqueueEmail(ctx context.Context, payload *EmailPayload) error
}
