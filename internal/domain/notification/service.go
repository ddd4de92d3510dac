package notification

import "context"

type Service interface {
	// Notify enqueues a notification. Best effort: delivery failures are
	// logged, never surfaced to the caller.
	Notify(ctx context.Context, req CreateNotificationRequest)
	List(ctx context.Context, recipientID string, unreadOnly bool) (ListResponse, error)
	UnreadCount(ctx context.Context, recipientID string) (int, error)
	MarkRead(ctx context.Context, recipientID string, req MarkReadRequest) error
	MarkAllRead(ctx context.Context, recipientID string) error
	// Shutdown flushes the queue and stops the background workers.
	Shutdown()
}
