package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evoxabackend/config"
)

func TestSubmitContactRejectsMissingFields(t *testing.T) {
	mail := setup(t)

	cases := [][4]string{
		{"", "a@x.com", "123", "hi"},
		{"Ann", "", "123", "hi"},
		{"Ann", "a@x.com", "", "hi"},
		{"Ann", "a@x.com", "123", ""},
	}
	for _, tc := range cases {
		assert.ErrorIs(t, SubmitContact(tc[0], tc[1], tc[2], tc[3]), ErrMissingContactFields)
	}
	assert.Empty(t, mail.sent)
}

func TestSubmitContactMailsOwner(t *testing.T) {
	mail := setup(t)

	require.NoError(t, SubmitContact("Ann", "a@x.com", "123", "hello"))

	require.Len(t, mail.sent, 1)
	assert.Equal(t, "owner@evoxa.co.uk", mail.sent[0].To)
	assert.Equal(t, "New Evoxa Contact Form Submission", mail.sent[0].Subject)
	assert.Contains(t, mail.sent[0].Body, "Ann")
	assert.Contains(t, mail.sent[0].Body, "a@x.com")
	assert.Contains(t, mail.sent[0].Body, "123")
	assert.Contains(t, mail.sent[0].Body, "hello")
}

func TestSubmitContactSurfacesDeliveryFailure(t *testing.T) {
	mail := setup(t)
	mail.err = errSendFailed

	assert.ErrorIs(t, SubmitContact("Ann", "a@x.com", "123", "hello"), errSendFailed)
}

func TestContactBodyEscapesHTML(t *testing.T) {
	body := contactEmailBody("<script>", "a@x.com", "123", "hi & bye")
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
	assert.Contains(t, body, "hi &amp; bye")
}

func TestNewMailSenderPicksProvider(t *testing.T) {
	smtp := NewMailSender(&config.Config{MailProvider: "smtp", SMTPHost: "smtp.zoho.eu", SMTPPort: 465})
	assert.IsType(t, &SMTPSender{}, smtp)

	sg := NewMailSender(&config.Config{MailProvider: "sendgrid", SendGridKey: "k"})
	assert.IsType(t, &SendGridSender{}, sg)
}
