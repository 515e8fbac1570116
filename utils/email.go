package utils

import (
	"fmt"
	"html"
	"net/http"
	"time"

	"github.com/keighl/postmark"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"huile-de-sfax/models"
)

const senderName = "Huile de Sfax"

// emailTimeout bounds a single provider API call.
const emailTimeout = 10 * time.Second

type outgoingEmail struct {
	From     string
	To       string
	ReplyTo  string
	Subject  string
	HTMLBody string
	TextBody string
}

type emailSender interface {
	send(email outgoingEmail) error
}

// EmailService sends transactional email through Postmark or SendGrid.
type EmailService struct {
	sender emailSender
	from   string
}

// NewPostmarkEmailService sends through the Postmark server identified by apiToken.
func NewPostmarkEmailService(apiToken, from string) *EmailService {
	client := postmark.NewClient(apiToken, "")
	client.HTTPClient = &http.Client{Timeout: emailTimeout}
	return &EmailService{
		sender: &postmarkSender{client: client},
		from:   from,
	}
}

// NewSendGridEmailService sends through SendGrid with apiKey.
func NewSendGridEmailService(apiKey, from string) *EmailService {
	return &EmailService{
		sender: &sendGridSender{client: sendgrid.NewSendClient(apiKey)},
		from:   from,
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, replyTo, subject, htmlContent, textContent string) error {
	err := es.sender.send(outgoingEmail{
		From:     es.from,
		To:       toEmail,
		ReplyTo:  replyTo,
		Subject:  subject,
		HTMLBody: htmlContent,
		TextBody: textContent,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendContactNotification forwards a contact form submission to the site inbox.
// Replies go straight to the visitor.
func (es *EmailService) SendContactNotification(toEmail string, message models.ContactMessage) error {
	company := ""
	if message.Company != nil {
		company = *message.Company
	}
	subject := "New contact message: " + message.Subject
	htmlContent := fmt.Sprintf(
		"<strong>From:</strong> %s &lt;%s&gt;<br><strong>Company:</strong> %s<br><strong>Subject:</strong> %s<br><br>%s",
		html.EscapeString(message.Name),
		html.EscapeString(message.Email),
		html.EscapeString(company),
		html.EscapeString(message.Subject),
		html.EscapeString(message.Message),
	)
	textContent := fmt.Sprintf(
		"From: %s <%s>\nCompany: %s\nSubject: %s\n\n%s",
		message.Name, message.Email, company, message.Subject, message.Message,
	)
	return es.SendEmail(toEmail, message.Email, subject, htmlContent, textContent)
}

type postmarkSender struct {
	client *postmark.Client
}

func (s *postmarkSender) send(email outgoingEmail) error {
	_, err := s.client.SendEmail(postmark.Email{
		From:     email.From,
		To:       email.To,
		ReplyTo:  email.ReplyTo,
		Subject:  email.Subject,
		HtmlBody: email.HTMLBody,
		TextBody: email.TextBody,
	})
	return err
}

type sendGridSender struct {
	client *sendgrid.Client
}

func (s *sendGridSender) send(email outgoingEmail) error {
	message := mail.NewSingleEmail(
		mail.NewEmail(senderName, email.From),
		email.Subject,
		mail.NewEmail("", email.To),
		email.TextBody,
		email.HTMLBody,
	)
	if email.ReplyTo != "" {
		message.SetReplyTo(mail.NewEmail("", email.ReplyTo))
	}
	response, err := s.client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid responded %d: %s", response.StatusCode, response.Body)
	}
	return nil
}
