package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEncashmentAmount(t *testing.T) {
	tests := []struct {
		name    string
		salary  string
		balance int
		want    string
	}{
		{"even division", "2100000", 10, "1000000"},
		{"rounds down", "1000000", 1, "47619"},
		{"full month of balance", "2100000", 21, "2100000"},
		{"zero balance", "2100000", 0, "0"},
		{"negative balance", "2100000", -3, "0"},
		{"zero salary", "0", 10, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			salary := decimal.RequireFromString(tt.salary)
			got := EncashmentAmount(salary, tt.balance)
			assert.Equal(t, tt.want, got.StringFixed(0))
		})
	}
}

func TestCurrentPeriod(t *testing.T) {
	asOf := time.Date(2024, time.March, 17, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), CurrentPeriod(asOf))

	first := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, first, CurrentPeriod(first))
}
