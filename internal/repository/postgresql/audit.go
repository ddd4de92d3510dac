package postgresql

import (
	"context"

	"github.com/sinarkarya/leave-backend-go/internal/domain/audit"
	"github.com/sinarkarya/leave-backend-go/internal/pkg/database"
)

type auditRepositoryImpl struct {
	db *database.DB
}

func NewAuditRepository(db *database.DB) audit.Repository {
	return &auditRepositoryImpl{db: db}
}

// Append implements audit.Repository.
func (r *auditRepositoryImpl) Append(ctx context.Context, record audit.Record) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO activity_logs (id, actor_id, actor_role, action, description, created_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW())
	`, record.ActorID, record.ActorRole, record.Action, record.Description)
	return err
}

// ListRecent implements audit.Repository.
func (r *auditRepositoryImpl) ListRecent(ctx context.Context, limit int) ([]audit.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.actor_id, a.actor_role, a.action, a.description, a.created_at,
			   e.full_name AS actor_name
		FROM activity_logs a
		LEFT JOIN employees e ON a.actor_id = e.id
		ORDER BY a.created_at DESC
		LIMIT $1
	`
	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []audit.Record
	for rows.Next() {
		var rec audit.Record
		err := rows.Scan(&rec.ID, &rec.ActorID, &rec.ActorRole, &rec.Action, &rec.Description, &rec.CreatedAt, &rec.ActorName)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
