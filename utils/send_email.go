package utils

import (
	"fmt"
	"net/smtp"

	"github.com/parladach/parladach-api/config"
)

// Mailer envía correos de notificación vía SMTP.
// Si no hay credenciales configuradas, Send es un no-op silencioso.
type Mailer struct {
	host     string
	port     string
	from     string
	password string
}

func NewMailer(s config.Settings) *Mailer {
	return &Mailer{
		host:     s.SMTPHost,
		port:     s.SMTPPort,
		from:     s.SMTPEmail,
		password: s.SMTPPassword,
	}
}

func (m *Mailer) Send(to, subject, body string) error {
	if m.from == "" {
		return nil
	}

	// Headers: soporte UTF-8 y HTML
	msg := ""
	msg += "MIME-Version: 1.0\r\n"
	msg += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	msg += fmt.Sprintf("From: %s\r\n", m.from)
	msg += fmt.Sprintf("To: %s\r\n", to)
	msg += fmt.Sprintf("Subject: %s\r\n", subject)
	msg += "\r\n" + body

	err := smtp.SendMail(
		m.host+":"+m.port,
		smtp.PlainAuth("", m.from, m.password, m.host),
		m.from,
		[]string{to},
		[]byte(msg),
	)
	if err != nil {
		return fmt.Errorf("envío de email falló: %v", err)
	}
	return nil
}
