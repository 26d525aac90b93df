package interfaces

import "context"

// ISmsSender abstracts the outbound SMS provider (Twilio).
//
// Send must return a non-nil error unless the provider accepted the message.
type ISmsSender interface {
	Send(ctx context.Context, to, body string) error
}
