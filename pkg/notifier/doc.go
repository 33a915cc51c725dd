// Package notifier implements best-effort notification dispatch over
// pluggable channel transports.
//
// A Dispatcher owns one ChannelSender per channel, selected once at startup:
// a webhook endpoint when configured, Postmark for email when tokens are
// present, and a log-only stand-in otherwise. Every dispatch makes exactly
// one delivery attempt, appends exactly one immutable Record to the
// snapshot-backed History, and announces the record on the broadcast hub.
//
// Delivery failure is treated as data. The Record's Delivered flag and
// Result string carry the outcome; Dispatch returns an error only for invalid
// requests or when the record itself cannot be persisted.
package notifier
