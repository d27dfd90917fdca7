// Package mail defines the outbound message boundary for contact-form
// submissions.
package mail

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// Message is one outbound contact notification.
type Message struct {
	To      string // Destination address.
	ReplyTo string // Visitor address for replies.
	Subject string // Subject line.
	Body    string // Plain-text body.
}

// Mailer delivers contact notifications. Implementations decide the
// transport; the default just records the message.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// LogMailer is the default Mailer. It logs the message instead of sending
// it, which keeps contact capture working before an SMTP or API transport
// is wired up.
type LogMailer struct{}

// Send records the message at info level.
func (LogMailer) Send(_ context.Context, msg Message) error {
	log.WithFields(log.Fields{
		"to":      msg.To,
		"replyTo": msg.ReplyTo,
		"subject": msg.Subject,
	}).Info("contact message received")
	return nil
}
