package notification

import (
	"fmt"
	"net/smtp"

	"github.com/rs/zerolog"
)

type Mailer interface {
	Send(msg Message) error
}

// SMTPMailer delivers over plain SMTP. No mail provider SDK is pulled in;
// the hospital relay only needs AUTH PLAIN.
type SMTPMailer struct {
	addr string
	from string
	auth smtp.Auth
}

func NewSMTPMailer(host string, port string, from string, username string, password string) *SMTPMailer {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	return &SMTPMailer{
		addr: host + ":" + port,
		from: from,
		auth: auth,
	}
}

func (m *SMTPMailer) Send(msg Message) error {
	payload := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s",
		m.from, msg.To, msg.Subject, msg.Body,
	)

	return smtp.SendMail(m.addr, m.auth, m.from, []string{msg.To}, []byte(payload))
}

// LogMailer stands in when SMTP is not configured (local development): the
// message is logged and counted as delivered.
type LogMailer struct {
	log zerolog.Logger
}

func NewLogMailer(log zerolog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) Send(msg Message) error {
	m.log.Info().
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Msg("email suppressed, smtp not configured")
	return nil
}
