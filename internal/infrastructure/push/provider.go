// Package push delivers mobile push messages through an external gateway.
// Delivery is best effort: a failed push never fails the flow that
// triggered it, so callers log the returned error and move on.
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Message is one push payload addressed to a set of users.
type Message struct {
	UserIDs []uint                 `json:"user_ids,omitempty"`
	Title   string                 `json:"title"`
	Body    string                 `json:"body"`
	Data    map[string]interface{} `json:"data,omitempty"`
}

// Provider sends push messages.
type Provider interface {
	Send(ctx context.Context, msg Message) error
}

// HTTPProvider posts messages to a push gateway endpoint, authenticated
// with a bearer API key.
type HTTPProvider struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewHTTPProvider(endpoint, apiKey string, timeout time.Duration) *HTTPProvider {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPProvider{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
	}
}

func (p *HTTPProvider) Send(ctx context.Context, msg Message) error {
	if p.endpoint == "" {
		return nil
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode push message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("push gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("push gateway returned status %d", resp.StatusCode)
	}
	return nil
}

// NopProvider discards every message. Used when no gateway is configured
// and in tests.
type NopProvider struct{}

func (NopProvider) Send(context.Context, Message) error { return nil }
