package notifier

import (
	"context"
	"log/slog"

	"github.com/ponabinanth/inventory-service/pkg/logger"
)

// LogSender is the stand-in used when a channel has no live transport
// configured. It logs the would-be delivery and reports it as not delivered,
// which is the expected outcome in development rather than an error.
type LogSender struct {
	log *slog.Logger
}

// NewLogSender creates a log-only sender. A nil logger falls back to
// slog.Default().
func NewLogSender(log *slog.Logger) *LogSender {
	if log == nil {
		log = slog.Default()
	}
	return &LogSender{log: log.With(logger.Component("notifier.log_sender"))}
}

func (s *LogSender) Send(ctx context.Context, d Delivery) Outcome {
	s.log.InfoContext(ctx, "notification logged without delivery",
		logger.Channel(string(d.Channel)),
		slog.String("recipient", d.Recipient),
		slog.String("subject", d.Subject),
	)
	return Outcome{
		Delivered: false,
		Mode:      ModeLogOnly,
		Result:    "no delivery endpoint configured",
	}
}
