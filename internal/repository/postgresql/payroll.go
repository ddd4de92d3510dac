package postgresql

import (
	"context"

	"github.com/sinarkarya/leave-backend-go/internal/domain/payroll"
	"github.com/sinarkarya/leave-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

// Upsert implements payroll.PayrollRepository. A second cash-out in the same
// month replaces the ledger row for that period rather than stacking a
// duplicate, matching the unique (employee_id, period) constraint.
func (r *payrollRepositoryImpl) Upsert(ctx context.Context, record payroll.EncashmentRecord) (payroll.EncashmentRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_records (
			id, employee_id, period, base_salary, days_encashed,
			encashment_amount, net_amount, status, created_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, NOW()
		)
		ON CONFLICT (employee_id, period) DO UPDATE SET
			base_salary = EXCLUDED.base_salary,
			days_encashed = EXCLUDED.days_encashed,
			encashment_amount = EXCLUDED.encashment_amount,
			net_amount = EXCLUDED.net_amount,
			status = EXCLUDED.status,
			created_at = NOW()
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID, record.Period, record.BaseSalary, record.DaysEncashed,
		record.EncashmentAmount, record.NetAmount, record.Status,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return payroll.EncashmentRecord{}, err
	}

	return record, nil
}

// ListEncashments implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListEncashments(ctx context.Context) ([]payroll.EncashmentRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, p.period, p.base_salary, p.days_encashed,
			   p.encashment_amount, p.net_amount, p.status, p.created_at,
			   e.full_name AS employee_name,
			   e.department AS department
		FROM payroll_records p
		INNER JOIN employees e ON p.employee_id = e.id
		ORDER BY p.created_at DESC
	`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []payroll.EncashmentRecord
	for rows.Next() {
		var rec payroll.EncashmentRecord
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Period, &rec.BaseSalary, &rec.DaysEncashed,
			&rec.EncashmentAmount, &rec.NetAmount, &rec.Status, &rec.CreatedAt,
			&rec.EmployeeName,
			&rec.Department,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
