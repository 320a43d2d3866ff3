package usecase

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"nexstock/internal/payroll"
	repo "nexstock/internal/payroll/repository"
	"nexstock/internal/staff"
)

var monthsPerYear = decimal.NewFromInt(12)

// Create adds a pending record for a staff member, copying their name and department.
func (uc *implUseCase) Create(ctx context.Context, input payroll.CreateInput) (payroll.Record, error) {
	month, err := normalizeMonth(input.Month)
	if err != nil {
		return payroll.Record{}, err
	}
	if input.BaseSalary.IsNegative() || input.Bonus.IsNegative() || input.Deductions.IsNegative() {
		return payroll.Record{}, payroll.ErrNegativeAmount
	}

	member, err := uc.staff.Detail(ctx, input.StaffID)
	if errors.Is(err, staff.ErrMemberNotFound) {
		return payroll.Record{}, payroll.ErrStaffNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create staff.Detail: %v", err)
		return payroll.Record{}, err
	}

	existing, err := uc.repo.GetOneRecord(ctx, repo.GetOneOptions{StaffID: member.ID, Month: month})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneRecord: %v", err)
		return payroll.Record{}, err
	}
	if existing.ID != "" {
		return payroll.Record{}, payroll.ErrDuplicateRecord
	}

	base := input.BaseSalary
	if base.IsZero() {
		base = member.Salary.Div(monthsPerYear).Round(2)
	}

	rec, err := uc.repo.CreateRecord(ctx, payroll.Record{
		StaffID:    member.ID,
		StaffName:  member.Name,
		Department: member.Department,
		Month:      month,
		BaseSalary: base,
		Bonus:      input.Bonus,
		Deductions: input.Deductions,
		Status:     payroll.StatusPending,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateRecord: %v", err)
		return payroll.Record{}, err
	}
	return rec, nil
}

func (uc *implUseCase) List(ctx context.Context, input payroll.ListInput) (payroll.ListOutput, error) {
	records, err := uc.list(ctx, input, "uc.List")
	if err != nil {
		return payroll.ListOutput{}, err
	}
	return payroll.ListOutput{Records: records, Summary: payroll.Summarize(records)}, nil
}

func (uc *implUseCase) Summary(ctx context.Context, input payroll.ListInput) (payroll.Summary, error) {
	records, err := uc.list(ctx, input, "uc.Summary")
	if err != nil {
		return payroll.Summary{}, err
	}
	return payroll.Summarize(records), nil
}

// Months returns the months that have records, latest first.
func (uc *implUseCase) Months(ctx context.Context) ([]string, error) {
	records, err := uc.repo.ListRecords(ctx, repo.ListOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Months ListRecords: %v", err)
		return nil, err
	}

	var months []string
	for _, r := range records {
		if !slices.Contains(months, r.Month) {
			months = append(months, r.Month)
		}
	}
	slices.SortFunc(months, func(a, b string) int {
		ta, _ := time.Parse(payroll.MonthLayout, a)
		tb, _ := time.Parse(payroll.MonthLayout, b)
		return tb.Compare(ta)
	})
	return months, nil
}

func (uc *implUseCase) Detail(ctx context.Context, id string) (payroll.Record, error) {
	rec, err := uc.repo.GetOneRecord(ctx, repo.GetOneOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneRecord: %v", err)
		return payroll.Record{}, err
	}
	if rec.ID == "" {
		return payroll.Record{}, payroll.ErrRecordNotFound
	}
	return rec, nil
}

// Pay marks a record paid today. Paying a paid record fails with ErrAlreadyPaid.
func (uc *implUseCase) Pay(ctx context.Context, id string) (payroll.Record, error) {
	rec, err := uc.Detail(ctx, id)
	if err != nil {
		return payroll.Record{}, err
	}
	if rec.Status == payroll.StatusPaid {
		return payroll.Record{}, payroll.ErrAlreadyPaid
	}
	return uc.setStatus(ctx, rec, payroll.StatusPaid, "uc.Pay")
}

// UpdateStatus sets the status. Payment date is today for Paid and cleared otherwise.
func (uc *implUseCase) UpdateStatus(ctx context.Context, id string, status payroll.Status) (payroll.Record, error) {
	if !status.Valid() {
		return payroll.Record{}, payroll.ErrInvalidStatus
	}
	rec, err := uc.Detail(ctx, id)
	if err != nil {
		return payroll.Record{}, err
	}
	return uc.setStatus(ctx, rec, status, "uc.UpdateStatus")
}

func (uc *implUseCase) setStatus(ctx context.Context, rec payroll.Record, status payroll.Status, op string) (payroll.Record, error) {
	rec.Status = status
	rec.PaymentDate = nil
	if status == payroll.StatusPaid {
		y, m, d := uc.now().Date()
		paid := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		rec.PaymentDate = &paid
	}

	updated, err := uc.repo.UpdateRecord(ctx, rec)
	if err != nil {
		uc.l.Errorf(ctx, "%s UpdateRecord: %v", op, err)
		return payroll.Record{}, err
	}
	if updated.ID == "" {
		return payroll.Record{}, payroll.ErrRecordNotFound
	}
	return updated, nil
}

func (uc *implUseCase) list(ctx context.Context, input payroll.ListInput, op string) ([]payroll.Record, error) {
	month := ""
	if strings.TrimSpace(input.Month) != "" {
		var err error
		if month, err = normalizeMonth(input.Month); err != nil {
			return nil, err
		}
	}

	records, err := uc.repo.ListRecords(ctx, repo.ListOptions{Month: month, Search: input.Search})
	if err != nil {
		uc.l.Errorf(ctx, "%s ListRecords: %v", op, err)
		return nil, err
	}
	return records, nil
}

// normalizeMonth accepts "October 2024" or "2024-10" and returns the former.
func normalizeMonth(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{payroll.MonthLayout, "2006-01"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(payroll.MonthLayout), nil
		}
	}
	return "", payroll.ErrInvalidMonth
}
