package usecase

import (
	"context"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"nexstock/internal/staff"
	repo "nexstock/internal/staff/repository"
)

// Defaults for new members.
var (
	defaultSalary       = decimal.NewFromInt(50000)
	defaultLeaveBalance = staff.LeaveBalance{Sick: 10, Casual: 10, Paid: 10}
)

const (
	defaultCurrency   = "USD"
	defaultShift      = "09:00 AM - 05:00 PM"
	defaultAttendance = 100
)

func (uc *implUseCase) Create(ctx context.Context, input staff.CreateMemberInput) (staff.Member, error) {
	m := staff.Member{
		Name:         strings.TrimSpace(input.Name),
		Role:         strings.TrimSpace(input.Role),
		Email:        strings.TrimSpace(input.Email),
		Phone:        strings.TrimSpace(input.Phone),
		Status:       input.Status,
		Department:   strings.TrimSpace(input.Department),
		JoinDate:     input.JoinDate,
		Salary:       defaultSalary,
		Currency:     defaultCurrency,
		Shift:        defaultShift,
		LeaveBalance: defaultLeaveBalance,
		Attendance:   defaultAttendance,
	}
	if m.Status == "" {
		m.Status = staff.StatusActive
	}
	if m.JoinDate.IsZero() {
		m.JoinDate = uc.today()
	}
	if err := validateMember(m); err != nil {
		return staff.Member{}, err
	}

	created, err := uc.repo.CreateMember(ctx, m)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateMember: %v", err)
		return staff.Member{}, err
	}
	return created, nil
}

// List returns matching members and the departments present across the whole team.
func (uc *implUseCase) List(ctx context.Context, input staff.ListMembersInput) (staff.ListMembersOutput, error) {
	if input.Status != "" && !input.Status.Valid() {
		return staff.ListMembersOutput{}, staff.ErrInvalidStatus
	}

	members, err := uc.repo.ListMembers(ctx, repo.ListMembersOptions{
		Search:     input.Search,
		Department: input.Department,
		Status:     input.Status,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListMembers: %v", err)
		return staff.ListMembersOutput{}, err
	}
	all, err := uc.repo.ListMembers(ctx, repo.ListMembersOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListMembers: %v", err)
		return staff.ListMembersOutput{}, err
	}

	var departments []string
	for _, m := range all {
		if m.Department != "" && !slices.Contains(departments, m.Department) {
			departments = append(departments, m.Department)
		}
	}
	return staff.ListMembersOutput{Members: members, Departments: departments}, nil
}

func (uc *implUseCase) Detail(ctx context.Context, id string) (staff.Member, error) {
	m, err := uc.repo.GetOneMember(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneMember: %v", err)
		return staff.Member{}, err
	}
	if m.ID == "" {
		return staff.Member{}, staff.ErrMemberNotFound
	}
	return m, nil
}

func (uc *implUseCase) Update(ctx context.Context, input staff.UpdateMemberInput) (staff.Member, error) {
	m, err := uc.Detail(ctx, input.ID)
	if err != nil {
		return staff.Member{}, err
	}

	m.Name = strings.TrimSpace(coalesce(input.Name, m.Name))
	m.Role = coalesce(input.Role, m.Role)
	m.Email = coalesce(input.Email, m.Email)
	m.Phone = coalesce(input.Phone, m.Phone)
	m.Status = coalesce(input.Status, m.Status)
	m.Department = coalesce(input.Department, m.Department)
	m.JoinDate = coalesce(input.JoinDate, m.JoinDate)
	m.Salary = coalesce(input.Salary, m.Salary)
	m.Currency = coalesce(input.Currency, m.Currency)
	m.Shift = coalesce(input.Shift, m.Shift)
	m.LeaveBalance = coalesce(input.LeaveBalance, m.LeaveBalance)
	m.PerformanceRating = coalesce(input.PerformanceRating, m.PerformanceRating)
	m.Attendance = coalesce(input.Attendance, m.Attendance)
	if err := validateMember(m); err != nil {
		return staff.Member{}, err
	}

	updated, err := uc.repo.UpdateMember(ctx, m)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateMember: %v", err)
		return staff.Member{}, err
	}
	if updated.ID == "" {
		return staff.Member{}, staff.ErrMemberNotFound
	}
	return updated, nil
}

// Delete removes a member. Their tasks are kept and show the assignee as unknown.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.Detail(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteMember(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteMember: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) Stats(ctx context.Context) (staff.Stats, error) {
	all, err := uc.repo.ListMembers(ctx, repo.ListMembersOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats ListMembers: %v", err)
		return staff.Stats{}, err
	}

	now := uc.now()
	stats := staff.Stats{Total: len(all)}
	for _, m := range all {
		switch m.Status {
		case staff.StatusActive:
			stats.Active++
		case staff.StatusInactive:
			stats.Inactive++
		}
		if m.JoinDate.Year() == now.Year() && m.JoinDate.Month() == now.Month() {
			stats.NewThisMonth++
		}
	}
	return stats, nil
}
