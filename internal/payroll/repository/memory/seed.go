package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"nexstock/internal/payroll"
)

type seedMember struct {
	id, name, department string
	monthly              string
}

var seedTeam = []seedMember{
	{"EMP-001", "Sarah Johnson", "Operations", "6500.00"},
	{"EMP-002", "Michael Chen", "Inventory", "4666.67"},
	{"EMP-003", "Emily Rodriguez", "Logistics", "5083.33"},
	{"EMP-004", "David Kim", "Operations", "3500.00"},
	{"EMP-005", "Olivia Brown", "Procurement", "5333.33"},
}

// SeedRecords returns October 2024 (mixed statuses) followed by September 2024 (all paid).
// Deductions are 10% of base.
func SeedRecords() []payroll.Record {
	octPaid := time.Date(2024, 10, 31, 0, 0, 0, 0, time.UTC)
	sepPaid := time.Date(2024, 9, 30, 0, 0, 0, 0, time.UTC)
	octBonus := []string{"500", "200", "0", "150", "300"}
	octStatus := []payroll.Status{payroll.StatusPaid, payroll.StatusPending, payroll.StatusProcessing, payroll.StatusPending, payroll.StatusPaid}
	tenth := decimal.NewFromFloat(0.1)

	var records []payroll.Record
	for i, m := range seedTeam {
		base := decimal.RequireFromString(m.monthly)
		rec := payroll.Record{
			ID:         "PR-OCT-" + m.id[4:],
			StaffID:    m.id,
			StaffName:  m.name,
			Department: m.department,
			Month:      "October 2024",
			BaseSalary: base,
			Bonus:      decimal.RequireFromString(octBonus[i]),
			Deductions: base.Mul(tenth).Round(2),
			Status:     octStatus[i],
		}
		if rec.Status == payroll.StatusPaid {
			rec.PaymentDate = &octPaid
		}
		records = append(records, rec)
	}
	for _, m := range seedTeam {
		base := decimal.RequireFromString(m.monthly)
		records = append(records, payroll.Record{
			ID:          "PR-SEP-" + m.id[4:],
			StaffID:     m.id,
			StaffName:   m.name,
			Department:  m.department,
			Month:       "September 2024",
			BaseSalary:  base,
			Bonus:       decimal.Zero,
			Deductions:  base.Mul(tenth).Round(2),
			Status:      payroll.StatusPaid,
			PaymentDate: &sepPaid,
		})
	}
	return records
}
