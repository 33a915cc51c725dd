package notifier

import "context"

// Delivery is the payload handed to a channel sender.
type Delivery struct {
	Channel   Channel
	Recipient string
	Subject   string
	Message   string
}

// Outcome reports how a single delivery attempt went. A failed delivery is
// data, not an error: the dispatcher records it and carries on.
type Outcome struct {
	Delivered bool
	Mode      Mode
	Result    string
}

// ChannelSender executes exactly one delivery attempt. Implementations must
// bound their own I/O and never retry.
type ChannelSender interface {
	Send(ctx context.Context, d Delivery) Outcome
}
