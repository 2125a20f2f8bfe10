package domain

// Mailer sends a single email. Either html or text may be empty.
type Mailer interface {
	Send(to, subject, html, text string) error
}
