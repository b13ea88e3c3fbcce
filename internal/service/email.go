package service

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailNotifier sends the premium approval mail through SendGrid.
type EmailNotifier struct {
	apiKey    string
	fromEmail string
}

var _ Notifier = (*EmailNotifier)(nil)

// NewEmailNotifier returns nil when no API key is configured, which
// disables notifications.
func NewEmailNotifier(apiKey, fromEmail string) *EmailNotifier {
	if apiKey == "" {
		return nil
	}
	if fromEmail == "" {
		fromEmail = "noreply@nikahlink.com"
	}
	return &EmailNotifier{apiKey: apiKey, fromEmail: fromEmail}
}

func (n *EmailNotifier) NotifyPremiumApproved(email string, biodataID int) error {
	subject := "Your premium membership is active"
	body := fmt.Sprintf(`Assalamu alaikum,

Your premium request for biodata #%d has been approved. Premium
visibility and contact details access are now active for your account.

NikahLink Team`, biodataID)

	from := mail.NewEmail("NikahLink", n.fromEmail)
	to := mail.NewEmail("", email)
	message := mail.NewSingleEmail(from, subject, to, body, body)

	client := sendgrid.NewSendClient(n.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d", response.StatusCode)
	}
	log.Printf("[EmailNotifier] approval mail sent to %s (status %d)", email, response.StatusCode)
	return nil
}
