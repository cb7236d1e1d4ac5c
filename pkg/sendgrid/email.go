package sendgrid

import (
	"context"
	"fmt"

	sg "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type Message struct {
	To      string
	ToName  string
	Subject string
	Text    string
	HTML    string
}

type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}

type EmailService struct {
	client    *sg.Client
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey string, fromEmail string, fromName string) *EmailService {
	return &EmailService{client: sg.NewSendClient(apiKey), fromEmail: fromEmail, fromName: fromName}
}

func (e *EmailService) Send(ctx context.Context, msg *Message) error {

	personalization := mail.NewPersonalization()
	personalization.AddTos(mail.NewEmail(msg.ToName, msg.To))
	personalization.Subject = msg.Subject

	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail(e.fromName, e.fromEmail))
	message.AddPersonalizations(personalization)
	message.AddContent(mail.NewContent("text/plain", msg.Text))

	if msg.HTML != "" {
		message.AddContent(mail.NewContent("text/html", msg.HTML))
	}

	response, err := e.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}

	return nil
}

// Client exposes the underlying sendgrid client.
func (e *EmailService) Client() *sg.Client {
	return e.client
}

// Noop discards every message. Used when no API key is configured.
type Noop struct{}

func (Noop) Send(context.Context, *Message) error { return nil }
