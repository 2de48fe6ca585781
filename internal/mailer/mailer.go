// Package mailer provides the outbound email transport
package mailer

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/mail.v2"
)

// MailSender is the interface that wraps the outbound send operation
type MailSender interface {
	// Send delivers one HTML email to a single recipient.
	//
	// "ctx" bounds the send; cancellation or deadline expiry aborts it.
	// "to" is the recipient address, "subject" and "htmlBody" the message.
	//
	// If the message cannot be delivered to the transport, the error will be
	// returned.
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// SMTPSender sends email over SMTP using gopkg.in/mail.v2
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	from     string
	timeout  time.Duration
}

// NewSMTPSender creates a new SMTP sender
func NewSMTPSender(host string, port int, username, password, from string, timeout time.Duration) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		timeout:  timeout,
	}
}

// Send implements MailSender
func (s *SMTPSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	m := mail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := mail.NewDialer(s.host, s.port, s.username, s.password)
	if deadline, ok := ctx.Deadline(); ok {
		d.Timeout = time.Until(deadline)
	} else if s.timeout > 0 {
		d.Timeout = s.timeout
	}

	// DialAndSend has no context support, so run it in a goroutine and
	// race it against ctx. The dialer timeout above bounds the goroutine
	// itself, preventing a leak when ctx wins.
	errChan := make(chan error, 1)
	go func() {
		errChan <- d.DialAndSend(m)
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("send aborted: %w", ctx.Err())
	}
}
