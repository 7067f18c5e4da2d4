package interfaces

import "context"

// INotificationSender delivers best-effort emails through the notification
// service. Callers log failures and move on; a failed notification never rolls
// back or fails a transition.
type INotificationSender interface {
	Notify(ctx context.Context, recipient, templateKey string, data map[string]any) error
}
