package services

import (
	"fmt"
	"html"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"gopkg.in/gomail.v2"

	"evoxabackend/config"
)

// MailSender delivers a single HTML email. Implementations block until
// the relay has accepted or rejected the message; there is no retry.
type MailSender interface {
	Send(to, subject, htmlBody string) error
}

// Mail is the process-wide sender, set once in main. Tests swap in a
// fake.
var Mail MailSender

// NewMailSender picks the provider configured by MAIL_PROVIDER.
func NewMailSender(cfg *config.Config) MailSender {
	if cfg.MailProvider == "sendgrid" {
		return &SendGridSender{APIKey: cfg.SendGridKey, From: cfg.SenderEmail}
	}
	return &SMTPSender{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		From:     cfg.SenderEmail,
		Password: cfg.SenderPassword,
	}
}

// SMTPSender talks to the Zoho relay over implicit TLS (port 465).
type SMTPSender struct {
	Host     string
	Port     int
	From     string
	Password string
}

func (s *SMTPSender) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(s.Host, s.Port, s.From, s.Password)
	d.SSL = true

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}
	return nil
}

// SendGridSender is the API alternative for deployments without SMTP
// credentials.
type SendGridSender struct {
	APIKey string
	From   string
}

func (s *SendGridSender) Send(to, subject, htmlBody string) error {
	from := sgmail.NewEmail("Evoxa", s.From)
	dest := sgmail.NewEmail("", to)
	message := sgmail.NewSingleEmail(from, subject, dest, "", htmlBody)

	client := sendgrid.NewSendClient(s.APIKey)
	resp, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send to %s: %w", to, err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send to %s: status %d", to, resp.StatusCode)
	}
	return nil
}

func verificationEmailBody(link string) string {
	return fmt.Sprintf(`
    <html>
    <body>
        <h2>Verify your Evoxa account</h2>
        <p>Click below to verify your email:</p>
        <a href="%s">Verify Email</a>
    </body>
    </html>
    `, link)
}

func contactEmailBody(name, email, phone, message string) string {
	return fmt.Sprintf(`
    <html>
    <body>
        <h2>New Contact Form Submission</h2>
        <p><strong>Name:</strong> %s</p>
        <p><strong>Email:</strong> %s</p>
        <p><strong>Phone:</strong> %s</p>
        <p><strong>Message:</strong> %s</p>
    </body>
    </html>
    `, html.EscapeString(name), html.EscapeString(email), html.EscapeString(phone), html.EscapeString(message))
}
