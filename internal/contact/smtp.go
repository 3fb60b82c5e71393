package contact

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/smtp"

	"github.com/ranjanoa/portfolio/internal/config"
)

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPSubmitter mails each message to the configured inbox.
type SMTPSubmitter struct {
	cfg  config.SMTP
	send sendFunc
}

func NewSMTPSubmitter(cfg config.SMTP) *SMTPSubmitter {
	return &SMTPSubmitter{cfg: cfg, send: smtp.SendMail}
}

func (s *SMTPSubmitter) Submit(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)
	addr := net.JoinHostPort(s.cfg.Host, s.cfg.Port)
	if err := s.send(addr, auth, s.cfg.User, []string{s.cfg.To}, Compose(s.cfg.User, s.cfg.To, msg)); err != nil {
		log.Printf("Error sending email: %v", err)
		return fmt.Errorf("send contact email: %w", err)
	}

	log.Printf("Email sent successfully from %s (%s)", oneLine(msg.Name), oneLine(msg.Email))
	return nil
}

// Compose builds the RFC 822 message for a submission.
func Compose(from, to string, msg Message) []byte {
	subject := fmt.Sprintf("Portfolio Contact: %s", oneLine(msg.Name))
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, msg.Name, msg.Email, msg.Message)

	return []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"Reply-To: " + oneLine(msg.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}
