package notifier

import "errors"

var (
	// ErrUnknownChannel is returned when a dispatch names a channel that is
	// neither email nor sms.
	ErrUnknownChannel = errors.New("unknown notification channel")

	// ErrInvalidConfig is returned when a live transport is configured with
	// incomplete or malformed settings.
	ErrInvalidConfig = errors.New("invalid notifier configuration")

	// ErrInvalidRecord is returned when a record cannot be appended to history.
	ErrInvalidRecord = errors.New("invalid notification record")
)
