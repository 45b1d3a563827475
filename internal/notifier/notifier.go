package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Notifier raises a local notification. Delivery is best-effort; callers log
// and move on when it fails.
type Notifier interface {
	Notify(ctx context.Context, title string, body string) error
}

type webhookPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Webhook posts notifications to a local notification daemon.
type Webhook struct {
	endpoint string
	client   *http.Client
}

func NewWebhook(endpoint string) *Webhook {
	return &Webhook{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (n *Webhook) Notify(ctx context.Context, title string, body string) error {
	encoded, err := json.Marshal(webhookPayload{Title: title, Body: body})
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("notifier status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}

// Log writes notifications to the process log. Used when no notification
// daemon endpoint is configured.
type Log struct{}

func (Log) Notify(_ context.Context, title string, body string) error {
	log.Printf("notification: %s: %s", title, body)
	return nil
}
