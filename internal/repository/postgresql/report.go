package postgresql

import (
	"context"
	"time"

	"github.com/sinarkarya/leave-backend-go/internal/domain/report"
	"github.com/sinarkarya/leave-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.Repository {
	return &reportRepositoryImpl{db: db}
}

// StatusCounts implements report.Repository. The window filters on request
// start date, matching how the summary page frames a period.
func (r *reportRepositoryImpl) StatusCounts(ctx context.Context, from, to time.Time) ([]report.StatusCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT status, COUNT(*)
		FROM leave_requests
		WHERE start_date >= $1 AND start_date <= $2
		GROUP BY status
		ORDER BY status
	`
	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []report.StatusCount
	for rows.Next() {
		var c report.StatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// LeaveTypeUsage implements report.Repository.
func (r *reportRepositoryImpl) LeaveTypeUsage(ctx context.Context, from, to time.Time) ([]report.LeaveTypeUsage, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lt.name, COUNT(*)
		FROM leave_requests lr
		INNER JOIN leave_types lt ON lr.leave_type_id = lt.id
		WHERE lr.start_date >= $1 AND lr.start_date <= $2
		GROUP BY lt.name
		ORDER BY COUNT(*) DESC
	`
	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var usage []report.LeaveTypeUsage
	for rows.Next() {
		var u report.LeaveTypeUsage
		if err := rows.Scan(&u.LeaveType, &u.Count); err != nil {
			return nil, err
		}
		usage = append(usage, u)
	}
	return usage, rows.Err()
}
