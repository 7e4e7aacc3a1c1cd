package domain

// Message is the capability the gateway needs from an email transport.
type Message struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	Body    string
}

// Mailer is implemented by the SMTP transport in pkg/email and by test doubles.
type Mailer interface {
	Send(msg Message) error
	// IsConfigured reports whether credentials are present. When false the
	// gateway answers 503 instead of attempting delivery.
	IsConfigured() bool
}
