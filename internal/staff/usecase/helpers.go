package usecase

import (
	"time"

	"nexstock/internal/staff"
)

func coalesce[T any](newVal *T, existing T) T {
	if newVal != nil {
		return *newVal
	}
	return existing
}

func (uc *implUseCase) today() time.Time {
	y, m, d := uc.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validateMember(m staff.Member) error {
	if m.Name == "" {
		return staff.ErrInvalidPayload
	}
	if !m.Status.Valid() {
		return staff.ErrInvalidStatus
	}
	if m.PerformanceRating < 0 || m.PerformanceRating > 5 {
		return staff.ErrInvalidRating
	}
	if m.Attendance < 0 || m.Attendance > 100 {
		return staff.ErrInvalidAttendance
	}
	lb := m.LeaveBalance
	if m.Salary.IsNegative() || lb.Sick < 0 || lb.Casual < 0 || lb.Paid < 0 {
		return staff.ErrNegativeAmount
	}
	return nil
}

func validateTask(t staff.Task) error {
	if t.Title == "" || t.AssigneeID == "" {
		return staff.ErrInvalidPayload
	}
	if !t.Priority.Valid() {
		return staff.ErrInvalidPriority
	}
	if !t.Status.Valid() {
		return staff.ErrInvalidStatus
	}
	if t.DueDate.Before(t.StartDate) {
		return staff.ErrDueBeforeStartDate
	}
	return nil
}
