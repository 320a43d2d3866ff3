package memory

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"nexstock/internal/payroll"
	repo "nexstock/internal/payroll/repository"
	"nexstock/pkg/memstore"
)

func (r *implRepository) CreateRecord(ctx context.Context, rec payroll.Record) (payroll.Record, error) {
	rec.ID = uuid.NewString()
	if err := r.records.Insert(rec); err != nil {
		r.l.Errorf(ctx, "payroll/repository/memory.CreateRecord: %v", err)
		return payroll.Record{}, repo.ErrFailedToInsert
	}
	return rec, nil
}

func (r *implRepository) GetOneRecord(ctx context.Context, opt repo.GetOneOptions) (payroll.Record, error) {
	if opt.ID != "" {
		rec, _ := r.records.Get(opt.ID)
		return rec, nil
	}
	if opt.StaffID != "" && opt.Month != "" {
		rec, _ := r.records.Find(func(rec payroll.Record) bool {
			return rec.StaffID == opt.StaffID && rec.Month == opt.Month
		})
		return rec, nil
	}
	return payroll.Record{}, nil
}

// ListRecords matches search against staff name and department.
func (r *implRepository) ListRecords(ctx context.Context, opt repo.ListOptions) ([]payroll.Record, error) {
	search := strings.ToLower(strings.TrimSpace(opt.Search))
	return r.records.List(func(rec payroll.Record) bool {
		if opt.Month != "" && rec.Month != opt.Month {
			return false
		}
		return search == "" ||
			strings.Contains(strings.ToLower(rec.StaffName), search) ||
			strings.Contains(strings.ToLower(rec.Department), search)
	}), nil
}

func (r *implRepository) UpdateRecord(ctx context.Context, rec payroll.Record) (payroll.Record, error) {
	updated, err := r.records.Update(rec.ID, func(payroll.Record) (payroll.Record, error) {
		return rec, nil
	})
	if errors.Is(err, memstore.ErrNotFound) {
		return payroll.Record{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "payroll/repository/memory.UpdateRecord: %v", err)
		return payroll.Record{}, repo.ErrFailedToUpdate
	}
	return updated, nil
}
