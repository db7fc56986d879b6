// Package mail implementa el sink SMTP de notificaciones sobre gomail.
package mail

import (
	"gopkg.in/gomail.v2"

	"github.com/tu-usuario/crm-pro/pkg/config"
)

// Sender envía correos vía SMTP. Si la configuración no tiene host, Enabled
// devuelve false y el caller debe omitir el envío.
type Sender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSender construye el sender desde la configuración SMTP. Devuelve nil si
// el host está vacío (envío deshabilitado, las notificaciones solo se persisten).
func NewSender(cfg config.SMTPConfig) *Sender {
	if cfg.Host == "" {
		return nil
	}
	return &Sender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// Send envía un correo de texto plano.
func (s *Sender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	return s.dialer.DialAndSend(m)
}
