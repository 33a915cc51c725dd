package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ponabinanth/inventory-service/pkg/broadcast"
	"github.com/ponabinanth/inventory-service/pkg/logger"
	"github.com/ponabinanth/inventory-service/pkg/validator"
)

// Publisher announces a stored record to event subscribers.
type Publisher interface {
	Publish(ctx context.Context, eventType string, details map[string]any) uint64
}

// Dispatcher routes notifications to per-channel senders and records every
// attempt. Exactly one delivery attempt and one history record per dispatch;
// a failed delivery is reflected in the record, never in the returned error.
type Dispatcher struct {
	senders map[Channel]ChannelSender
	history *History
	hub     Publisher
	log     *slog.Logger
}

// NewDispatcher wires senders, history and the event hub together. Channels
// missing from senders fall back to a log-only sender; hub may be nil when no
// event stream is wanted.
func NewDispatcher(senders map[Channel]ChannelSender, history *History, hub Publisher, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}

	wired := make(map[Channel]ChannelSender, len(Channels()))
	fallback := NewLogSender(log)
	for _, ch := range Channels() {
		if sender, ok := senders[ch]; ok && sender != nil {
			wired[ch] = sender
		} else {
			wired[ch] = fallback
		}
	}

	return &Dispatcher{
		senders: wired,
		history: history,
		hub:     hub,
		log:     log.With(logger.Component("notifier.dispatcher")),
	}
}

// Dispatch validates the request, runs the channel's single delivery
// attempt, appends the resulting record to history, and announces it on the
// hub. The record is returned whether or not delivery succeeded.
func (d *Dispatcher) Dispatch(ctx context.Context, channel Channel, recipient, subject, message string) (Record, error) {
	if !channel.Valid() {
		return Record{}, fmt.Errorf("%w: %q", ErrUnknownChannel, channel)
	}
	if err := validator.Apply(
		validator.Required("recipient", recipient),
		validator.Required("subject", subject),
		validator.Required("message", message),
	); err != nil {
		return Record{}, err
	}

	outcome := d.senders[channel].Send(ctx, Delivery{
		Channel:   channel,
		Recipient: recipient,
		Subject:   subject,
		Message:   message,
	})

	record := Record{
		ID:        uuid.New(),
		Channel:   channel,
		Recipient: recipient,
		Subject:   subject,
		Message:   message,
		Delivered: outcome.Delivered,
		Mode:      outcome.Mode,
		Result:    outcome.Result,
		CreatedAt: time.Now().UTC(),
	}

	if err := d.history.Append(ctx, record); err != nil {
		return Record{}, fmt.Errorf("record notification: %w", err)
	}

	if d.hub != nil {
		d.hub.Publish(ctx, broadcast.EventNotificationSent, map[string]any{
			"id":        record.ID.String(),
			"channel":   string(record.Channel),
			"delivered": record.Delivered,
		})
	}

	d.log.InfoContext(ctx, "notification dispatched",
		logger.NotificationID(record.ID),
		logger.Channel(string(record.Channel)),
		slog.String("mode", string(record.Mode)),
		slog.Bool("delivered", record.Delivered),
	)

	return record, nil
}
