package audit

import "context"

type Service interface {
	// Record appends an activity log entry, best effort. Errors are logged
	// and swallowed so the primary action always proceeds.
	Record(ctx context.Context, actorID string, actorRole string, action string, description string)
	ListRecent(ctx context.Context, limit int) ([]Record, error)
}
