package mocks

import (
	"context"

	"github.com/Devdynamow/Ecommerce-backend-New/domain"
)

// MockMailer implements domain.Mailer for testing
type MockMailer struct {
	SendFunc func(ctx context.Context, to, subject, body string) error

	// Sent records every delivered mail when SendFunc is nil
	Sent []SentMail
}

// SentMail is one recorded delivery
type SentMail struct {
	To      string
	Subject string
	Body    string
}

// NewMockMailer creates a new MockMailer
func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

// Send delivers a mail
func (m *MockMailer) Send(ctx context.Context, to, subject, body string) error {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, to, subject, body)
	}
	// Default behavior: record and succeed
	m.Sent = append(m.Sent, SentMail{To: to, Subject: subject, Body: body})
	return nil
}

// Compile-time interface compliance verification
var _ domain.Mailer = (*MockMailer)(nil)
