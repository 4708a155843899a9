package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// SlackWebhookURL enables the owner Slack ping when set.
var SlackWebhookURL string

// NotifySlack posts a short heads-up about a contact submission. It is
// best effort and never blocks the request path.
func NotifySlack(name, email string) {
	// Safety: Recover from any panic to avoid crashing the worker
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Slack panic recovered: %v\n", r)
		}
	}()

	if SlackWebhookURL == "" {
		return
	}

	payload := map[string]string{
		"text": fmt.Sprintf("📬 New contact form submission\n\nName: %s\nEmail: %s", name, email),
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		fmt.Printf("Error marshaling Slack payload: %v\n", err)
		return
	}

	resp, err := http.Post(SlackWebhookURL, "application/json", bytes.NewBuffer(jsonPayload))
	if err != nil {
		fmt.Printf("Error sending Slack request: %v\n", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		fmt.Printf("Slack API error: Status %d\n", resp.StatusCode)
	}
}
