package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"evoxabackend/config"
	"evoxabackend/store"
)

// fakeMail records every send and can be told to fail.
type fakeMail struct {
	sent []sentMail
	err  error
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

func (f *fakeMail) Send(to, subject, htmlBody string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{To: to, Subject: subject, Body: htmlBody})
	return nil
}

// fakeCompletions replays a canned reply and token count.
type fakeCompletions struct {
	reply  string
	tokens int
	err    error
	calls  int
}

func (f *fakeCompletions) Complete(ctx context.Context, message string) (string, int, error) {
	f.calls++
	if f.err != nil {
		return "", 0, f.err
	}
	return f.reply, f.tokens, nil
}

var errSendFailed = errors.New("relay refused")

// setup points the global tables at a fresh temp directory and swaps
// in a fake mailer.
func setup(t *testing.T) *fakeMail {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{
		UsersFile: filepath.Join(dir, "users.json"),
		UsageFile: filepath.Join(dir, "usage.json"),
	}
	require.NoError(t, store.Init(cfg))

	mail := &fakeMail{}
	Mail = mail
	BaseURL = "https://evoxa.co.uk"
	OwnerEmail = "owner@evoxa.co.uk"
	SlackWebhookURL = ""
	return mail
}
