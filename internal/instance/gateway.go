package instance

import "context"

// Gateway is the external notification provider. Calls are fallible and
// best-effort; a failure must never abort the state change that triggered
// the notification.
type Gateway interface {
	SendSMS(ctx context.Context, to string, body string) error
}
