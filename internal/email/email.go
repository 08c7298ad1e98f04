// Package email sends transactional mail through Mailgun. The service is
// disabled unless Mailgun credentials are configured; callers check
// IsEnabled before sending.
package email

import (
	"context"
	"fmt"
	"time"

	"chicchariot/internal/config"
	"chicchariot/internal/models"

	"github.com/mailgun/mailgun-go/v5"
)

type Service struct {
	client      mailgun.Mailgun
	domain      string
	senderEmail string
	senderName  string
	notifyEmail string
	enabled     bool
}

func NewService(cfg *config.Config) *Service {
	enabled := cfg.MailgunDomain != "" && cfg.MailgunAPIKey != "" && cfg.OrderNotifyEmail != ""

	var client mailgun.Mailgun
	if enabled {
		client = mailgun.NewMailgun(cfg.MailgunAPIKey)
	}

	return &Service{
		client:      client,
		domain:      cfg.MailgunDomain,
		senderEmail: cfg.MailgunSenderEmail,
		senderName:  cfg.MailgunSenderName,
		notifyEmail: cfg.OrderNotifyEmail,
		enabled:     enabled,
	}
}

func (s *Service) IsEnabled() bool {
	return s.enabled
}

// SendOrderNotification mails the shop owner about a freshly placed order.
func (s *Service) SendOrderNotification(order *models.Order) error {
	if !s.enabled {
		return fmt.Errorf("email service is not configured")
	}

	subject := fmt.Sprintf("New order %s from %s", order.ID, order.Customer.FullName)
	htmlBody := s.generateOrderHTML(order)
	textBody := s.generateOrderText(order)

	message := mailgun.NewMessage(
		s.domain,
		fmt.Sprintf("%s <%s>", s.senderName, s.senderEmail),
		subject,
		textBody,
		s.notifyEmail,
	)
	message.SetHTML(htmlBody)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := s.client.Send(ctx, message); err != nil {
		return fmt.Errorf("failed to send order notification for %s: %w", order.ID, err)
	}

	return nil
}
