package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// RequestID records the request identifier under the key "request_id".
// If id is nil, it returns an empty Attr.
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

// EventType records the broadcast event type under the key "event_type".
func EventType(eventType string) slog.Attr {
	return slog.String("event_type", eventType)
}

// Revision records a revision counter value under the key "revision".
func Revision(rev uint64) slog.Attr {
	return slog.Uint64("revision", rev)
}

// ProductID records the product identifier under the key "product_id".
// If id is nil, it returns an empty Attr.
func ProductID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("product_id", id)
}

// SKU records a stock keeping unit under the key "sku".
func SKU(sku string) slog.Attr {
	return slog.String("sku", sku)
}

// Channel records a notification channel under the key "channel".
func Channel(channel string) slog.Attr {
	return slog.String("channel", channel)
}

// NotificationID records the notification identifier under the key
// "notification_id". If id is nil, it returns an empty Attr.
func NotificationID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("notification_id", id)
}

// Subscribers records the subscriber count under the key "subscribers".
func Subscribers(n int) slog.Attr {
	return slog.Int("subscribers", n)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}
