package memory

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"nexstock/internal/staff"
	repo "nexstock/internal/staff/repository"
	"nexstock/pkg/memstore"
)

func (r *implRepository) CreateMember(ctx context.Context, m staff.Member) (staff.Member, error) {
	m.ID = uuid.NewString()
	if err := r.members.Insert(m); err != nil {
		r.l.Errorf(ctx, "staff/repository/memory.CreateMember: %v", err)
		return staff.Member{}, repo.ErrFailedToInsert
	}
	return m, nil
}

func (r *implRepository) GetOneMember(ctx context.Context, id string) (staff.Member, error) {
	m, _ := r.members.Get(id)
	return m, nil
}

// ListMembers matches search against name, role and email.
func (r *implRepository) ListMembers(ctx context.Context, opt repo.ListMembersOptions) ([]staff.Member, error) {
	search := strings.ToLower(strings.TrimSpace(opt.Search))
	return r.members.List(func(m staff.Member) bool {
		if opt.Department != "" && m.Department != opt.Department {
			return false
		}
		if opt.Status != "" && m.Status != opt.Status {
			return false
		}
		return search == "" ||
			strings.Contains(strings.ToLower(m.Name), search) ||
			strings.Contains(strings.ToLower(m.Role), search) ||
			strings.Contains(strings.ToLower(m.Email), search)
	}), nil
}

func (r *implRepository) UpdateMember(ctx context.Context, m staff.Member) (staff.Member, error) {
	updated, err := r.members.Update(m.ID, func(staff.Member) (staff.Member, error) {
		return m, nil
	})
	if errors.Is(err, memstore.ErrNotFound) {
		return staff.Member{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "staff/repository/memory.UpdateMember: %v", err)
		return staff.Member{}, repo.ErrFailedToUpdate
	}
	return updated, nil
}

func (r *implRepository) DeleteMember(ctx context.Context, id string) error {
	if err := r.members.Delete(id); err != nil && !errors.Is(err, memstore.ErrNotFound) {
		r.l.Errorf(ctx, "staff/repository/memory.DeleteMember: %v", err)
		return repo.ErrFailedToDelete
	}
	return nil
}
