// Package contact stores messages sent through the contact form and drives
// the form's live status line over a websocket.
package contact

import (
	"errors"
	"net/mail"
	"strings"
	"time"
)

// ErrIncomplete is returned when a required field is empty. Its message is
// shown to the visitor as is.
var ErrIncomplete = errors.New("لطفا تمام فیلدها را پر کنید.")

// ErrInvalidEmail is returned when the email field cannot be parsed.
var ErrInvalidEmail = errors.New("ایمیل وارد شده معتبر نیست.")

// Message is one contact form submission.
type Message struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Body       string    `json:"message"`
	RemoteAddr string    `json:"remote_addr,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Validate trims m and checks the required fields.
func (m *Message) Validate() error {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Body = strings.TrimSpace(m.Body)

	if m.Name == "" || m.Email == "" || m.Body == "" {
		return ErrIncomplete
	}
	if _, err := mail.ParseAddress(m.Email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}
