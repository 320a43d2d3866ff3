package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthLayout is the time layout of Record.Month, e.g. "October 2024".
const MonthLayout = "January 2006"

type Status string

const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusPaid       Status = "Paid"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusProcessing || s == StatusPaid
}

// --- Domain Model ---

// Record is one staff member's pay for one month.
type Record struct {
	ID          string
	StaffID     string
	StaffName   string
	Department  string
	Month       string
	BaseSalary  decimal.Decimal
	Bonus       decimal.Decimal
	Deductions  decimal.Decimal
	Status      Status
	PaymentDate *time.Time
}

// NetPay is base salary plus bonus minus deductions.
func (r Record) NetPay() decimal.Decimal {
	return r.BaseSalary.Add(r.Bonus).Sub(r.Deductions)
}

// --- UseCase Inputs ---

type ListInput struct {
	Month  string
	Search string
}

// CreateInput creates a pending record. A zero BaseSalary is derived from the
// member's annual salary.
type CreateInput struct {
	StaffID    string
	Month      string
	BaseSalary decimal.Decimal
	Bonus      decimal.Decimal
	Deductions decimal.Decimal
}

// --- UseCase Outputs ---

type Summary struct {
	Total         decimal.Decimal
	PendingAmount decimal.Decimal
	PaidCount     int
	PendingCount  int
}

type ListOutput struct {
	Records []Record
	Summary Summary
}
