package payroll

import "context"

type PayrollRepository interface {
	// Upsert inserts the encashment row, replacing an existing row for the
	// same (employee, period) as the source system does.
	Upsert(ctx context.Context, record EncashmentRecord) (EncashmentRecord, error)
	ListEncashments(ctx context.Context) ([]EncashmentRecord, error)
}
