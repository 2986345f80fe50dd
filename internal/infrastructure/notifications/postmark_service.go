package notifications

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/mrz1836/postmark"

	"github.com/Devdynamow/Ecommerce-backend-New/domain"
)

// PostmarkServiceImpl implements domain.Mailer
type PostmarkServiceImpl struct {
	client      *postmark.Client
	senderEmail string
}

// NewPostmarkService creates a new Postmark mail service
func NewPostmarkService(serverToken, accountToken, senderEmail string) domain.Mailer {
	var client *postmark.Client
	if serverToken != "" {
		client = postmark.NewClient(serverToken, accountToken)
	}

	return &PostmarkServiceImpl{
		client:      client,
		senderEmail: senderEmail,
	}
}

// Send implements domain.Mailer. When no server token is configured the
// mail is logged instead of sent, so the reset flow stays usable in
// development.
func (p *PostmarkServiceImpl) Send(ctx context.Context, to, subject, body string) error {
	if p.client == nil {
		log.Printf("[MOCK MAIL] To: %s, Subject: %s, Body: %s", to, subject, body)
		return nil
	}

	resp, err := p.client.SendEmail(ctx, postmark.Email{
		From:     p.senderEmail,
		To:       to,
		Subject:  subject,
		TextBody: body,
	})
	if err != nil {
		return errors.Join(domain.ErrMailDelivery, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(domain.ErrMailDelivery,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message))
	}

	return nil
}
