package utils

import (
	"fmt"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// EmailService sends transactional mail through SendGrid. When no API key
// is configured the service is disabled and sends become no-ops, so local
// development does not need an account.
type EmailService struct {
	client *sendgrid.Client
	from   *mail.Email
	logger *zap.Logger
}

func NewEmailService(logger *zap.Logger) *EmailService {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	svc := &EmailService{
		from:   mail.NewEmail("Shopprr", os.Getenv("EMAIL_SENDER")),
		logger: logger,
	}
	if apiKey == "" {
		logger.Warn("SENDGRID_API_KEY not set, outgoing email disabled")
		return svc
	}
	svc.client = sendgrid.NewSendClient(apiKey)
	return svc
}

// SendEmail sends a basic HTML email to the recipient.
func (es *EmailService) SendEmail(toEmail, toName, subject, htmlContent string) error {
	if es.client == nil {
		return nil
	}
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(es.from, subject, to, htmlContent, htmlContent)
	resp, err := es.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("failed to send email: status %d", resp.StatusCode)
	}
	return nil
}

// SendOrderConfirmation sends the post-checkout confirmation email.
func (es *EmailService) SendOrderConfirmation(toEmail, toName, orderID string, totalAmount float64) error {
	subject := "Order Confirmation - Shopprr"
	htmlContent := fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>Thank you for your purchase! Your order (ID: %s) has been placed successfully.<br><br>Total Amount: <strong>$%.2f</strong><br>Payment Method: <strong>Cash on Delivery</strong><br><br>Thank you for shopping with us!",
		toName, orderID, totalAmount,
	)
	return es.SendEmail(toEmail, toName, subject, htmlContent)
}
