package notifier

import (
	"fmt"
	"log/slog"
	"time"
)

// Config holds notification delivery configuration. Every endpoint is
// optional; a channel without a live transport falls back to the log-only
// sender, which is the normal development setup.
type Config struct {
	EmailWebhookURL      string        `env:"EMAIL_WEBHOOK_URL"`
	SMSWebhookURL        string        `env:"SMS_WEBHOOK_URL"`
	DeliveryTimeout      time.Duration `env:"DELIVERY_TIMEOUT" envDefault:"5s"`
	PostmarkServerToken  string        `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string        `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string        `env:"SENDER_EMAIL"`
}

// SendersFromConfig builds the per-channel sender set. A webhook endpoint
// wins for its channel; the email channel may fall back to Postmark when
// tokens are configured; anything left unconfigured logs only. Half-complete
// Postmark settings are a startup error rather than a silent fallback.
func SendersFromConfig(cfg Config, log *slog.Logger) (map[Channel]ChannelSender, error) {
	fallback := NewLogSender(log)
	senders := map[Channel]ChannelSender{
		ChannelEmail: fallback,
		ChannelSMS:   fallback,
	}

	switch {
	case cfg.EmailWebhookURL != "":
		s, err := NewWebhookSender(cfg.EmailWebhookURL, cfg.DeliveryTimeout, nil)
		if err != nil {
			return nil, fmt.Errorf("email webhook sender: %w", err)
		}
		senders[ChannelEmail] = s
	case cfg.PostmarkServerToken != "":
		s, err := NewPostmarkSender(cfg)
		if err != nil {
			return nil, fmt.Errorf("postmark sender: %w", err)
		}
		senders[ChannelEmail] = s
	}

	if cfg.SMSWebhookURL != "" {
		s, err := NewWebhookSender(cfg.SMSWebhookURL, cfg.DeliveryTimeout, nil)
		if err != nil {
			return nil, fmt.Errorf("sms webhook sender: %w", err)
		}
		senders[ChannelSMS] = s
	}

	return senders, nil
}
