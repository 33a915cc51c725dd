package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultDeliveryTimeout bounds a single delivery attempt.
	DefaultDeliveryTimeout = 5 * time.Second

	// maxResponseBody caps how much of an endpoint's response is read when
	// capturing a failure reason.
	maxResponseBody = 64 * 1024

	maxReasonLength = 200
)

// WebhookSender POSTs the notification as JSON to a fixed endpoint. Exactly
// one attempt per dispatch, bounded by the configured timeout; any non-2xx
// status or transport error becomes a not-delivered outcome with the reason
// captured from the response.
type WebhookSender struct {
	url     string
	timeout time.Duration
	client  *http.Client
}

// NewWebhookSender creates a sender for the given endpoint URL. Only http and
// https schemes are accepted. A non-positive timeout falls back to
// DefaultDeliveryTimeout; a nil client gets a pooled default.
func NewWebhookSender(rawURL string, timeout time.Duration, client *http.Client) (*WebhookSender, error) {
	if rawURL == "" {
		return nil, fmt.Errorf("%w: webhook URL is required", ErrInvalidConfig)
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: only http and https webhook URLs are supported", ErrInvalidConfig)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: webhook URL host is required", ErrInvalidConfig)
	}

	if timeout <= 0 {
		timeout = DefaultDeliveryTimeout
	}
	if client == nil {
		client = &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}

	return &WebhookSender{url: rawURL, timeout: timeout, client: client}, nil
}

type webhookPayload struct {
	Channel   Channel `json:"channel"`
	Recipient string  `json:"recipient"`
	Subject   string  `json:"subject"`
	Message   string  `json:"message"`
}

func (s *WebhookSender) Send(ctx context.Context, d Delivery) Outcome {
	payload, err := json.Marshal(webhookPayload{
		Channel:   d.Channel,
		Recipient: d.Recipient,
		Subject:   d.Subject,
		Message:   d.Message,
	})
	if err != nil {
		return Outcome{Mode: ModeWebhook, Result: "encode payload: " + err.Error()}
	}

	// Layer the delivery timeout on top of the caller's context so both
	// deadlines are respected.
	reqCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return Outcome{Mode: ModeWebhook, Result: "build request: " + err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "inventory-service-notifier/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		if reqCtx.Err() == context.DeadlineExceeded {
			return Outcome{Mode: ModeWebhook, Result: "delivery timed out after " + s.timeout.String()}
		}
		return Outcome{Mode: ModeWebhook, Result: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Outcome{Mode: ModeWebhook, Result: failureReason(resp.StatusCode, body)}
	}

	return Outcome{
		Delivered: true,
		Mode:      ModeWebhook,
		Result:    fmt.Sprintf("delivered with status %d", resp.StatusCode),
	}
}

// failureReason formats a status line with a sanitized slice of the response
// body. Newlines are flattened so the reason stays a single log-safe line.
func failureReason(status int, body []byte) string {
	reason := fmt.Sprintf("endpoint returned status %d", status)
	if len(body) == 0 {
		return reason
	}

	detail := strings.ReplaceAll(string(body), "\n", " ")
	if len(detail) > maxReasonLength {
		detail = detail[:maxReasonLength] + "..."
	}
	return reason + ": " + detail
}
