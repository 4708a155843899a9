package services

import "errors"

var ErrMissingContactFields = errors.New("missing fields")

// OwnerEmail receives contact-form notifications, set in main.
var OwnerEmail string

// SubmitContact validates the four form fields and mails the owner.
// Unlike signup, a delivery failure here is surfaced to the caller.
func SubmitContact(name, email, phone, message string) error {
	if name == "" || email == "" || phone == "" || message == "" {
		return ErrMissingContactFields
	}

	body := contactEmailBody(name, email, phone, message)
	if err := Mail.Send(OwnerEmail, "New Evoxa Contact Form Submission", body); err != nil {
		return err
	}

	// Fire-and-forget Slack ping (Non-blocking)
	go NotifySlack(name, email)

	return nil
}
