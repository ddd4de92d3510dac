package audit

import (
	"context"
	"log/slog"

	"github.com/sinarkarya/leave-backend-go/internal/domain/audit"
)

type serviceImpl struct {
	repo audit.Repository
}

func NewAuditService(repo audit.Repository) audit.Service {
	return &serviceImpl{repo: repo}
}

// Record implements audit.Service. A failed append is logged and swallowed;
// the action being described has already happened.
func (s *serviceImpl) Record(ctx context.Context, actorID, actorRole, action, description string) {
	record := audit.Record{
		ActorID:     actorID,
		ActorRole:   actorRole,
		Action:      action,
		Description: description,
	}
	if err := s.repo.Append(ctx, record); err != nil {
		slog.Error("failed to append activity log",
			"actor_id", actorID, "action", action, "error", err)
	}
}

// ListRecent implements audit.Service.
func (s *serviceImpl) ListRecent(ctx context.Context, limit int) ([]audit.Record, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	records, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []audit.Record{}
	}
	return records, nil
}
