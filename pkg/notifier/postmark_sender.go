package notifier

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/mrz1836/postmark"
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// PostmarkSender delivers email notifications through Postmark's
// transactional API. One send per dispatch; API rejections become
// not-delivered outcomes.
type PostmarkSender struct {
	client  *postmark.Client
	from    string
	timeout time.Duration
}

// NewPostmarkSender creates a Postmark-backed email sender. Both tokens and
// a valid sender address are required so a half-configured transport fails at
// startup instead of at dispatch time.
func NewPostmarkSender(cfg Config) (*PostmarkSender, error) {
	if cfg.PostmarkServerToken == "" {
		return nil, fmt.Errorf("%w: POSTMARK_SERVER_TOKEN is required", ErrInvalidConfig)
	}
	if cfg.PostmarkAccountToken == "" {
		return nil, fmt.Errorf("%w: POSTMARK_ACCOUNT_TOKEN is required", ErrInvalidConfig)
	}
	if cfg.SenderEmail == "" {
		return nil, fmt.Errorf("%w: SENDER_EMAIL is required", ErrInvalidConfig)
	}
	if !emailRegex.MatchString(cfg.SenderEmail) {
		return nil, fmt.Errorf("%w: SENDER_EMAIL must be a valid email address", ErrInvalidConfig)
	}

	timeout := cfg.DeliveryTimeout
	if timeout <= 0 {
		timeout = DefaultDeliveryTimeout
	}

	return &PostmarkSender{
		client:  postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken),
		from:    cfg.SenderEmail,
		timeout: timeout,
	}, nil
}

func (s *PostmarkSender) Send(ctx context.Context, d Delivery) Outcome {
	reqCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.SendEmail(reqCtx, postmark.Email{
		From:     s.from,
		To:       d.Recipient,
		Subject:  d.Subject,
		TextBody: d.Message,
		Tag:      "inventory-notification",
	})
	if err != nil {
		return Outcome{Mode: ModePostmark, Result: err.Error()}
	}
	if resp.ErrorCode > 0 {
		return Outcome{
			Mode:   ModePostmark,
			Result: fmt.Sprintf("postmark error %d: %s", resp.ErrorCode, resp.Message),
		}
	}

	return Outcome{
		Delivered: true,
		Mode:      ModePostmark,
		Result:    "accepted by postmark",
	}
}
