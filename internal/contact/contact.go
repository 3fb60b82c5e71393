// Package contact handles messages sent through the page's contact form.
package contact

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/ranjanoa/portfolio/internal/config"
)

// Message is a contact form submission.
type Message struct {
	Name    string `form:"name" binding:"required"`
	Email   string `form:"email" binding:"required,email"`
	Message string `form:"message" binding:"required"`
}

// Submitter delivers contact messages somewhere outside the site.
type Submitter interface {
	Submit(ctx context.Context, msg Message) error
}

// LogSubmitter records messages in the process log and never fails.
type LogSubmitter struct{}

func (LogSubmitter) Submit(ctx context.Context, msg Message) error {
	log.Printf("Contact message %s received from %s (%s), %d bytes",
		uuid.NewString(), oneLine(msg.Name), oneLine(msg.Email), len(msg.Message))
	return nil
}

// NewSubmitter returns an SMTP submitter when credentials are configured and
// a LogSubmitter otherwise.
func NewSubmitter(cfg config.SMTP) Submitter {
	if !cfg.Configured() {
		log.Println("SMTP credentials not configured, contact messages will only be logged")
		return LogSubmitter{}
	}
	return NewSMTPSubmitter(cfg)
}

// oneLine drops CR and LF so user input cannot add mail headers or log lines.
func oneLine(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
