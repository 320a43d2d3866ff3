package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexstock/internal/staff"
	"nexstock/internal/staff/repository/memory"
	"nexstock/pkg/log"
)

var fixedNow = time.Date(2024, 10, 15, 10, 30, 0, 0, time.UTC)

func newTestUseCase() *implUseCase {
	l := log.NewNop()
	uc := New(memory.New(l), l).(*implUseCase)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func ptr[T any](v T) *T { return &v }

func actions(t staff.Task) []string {
	out := make([]string, len(t.History))
	for i, h := range t.History {
		out[i] = h.Action
	}
	return out
}

func TestCreateMember_Defaults(t *testing.T) {
	uc := newTestUseCase()

	m, err := uc.Create(context.Background(), staff.CreateMemberInput{Name: "Ana Silva", Department: "Inventory"})
	require.NoError(t, err)

	assert.Equal(t, staff.StatusActive, m.Status)
	assert.True(t, m.Salary.Equal(decimal.NewFromInt(50000)))
	assert.Equal(t, "USD", m.Currency)
	assert.Equal(t, staff.LeaveBalance{Sick: 10, Casual: 10, Paid: 10}, m.LeaveBalance)
	assert.Equal(t, 100, m.Attendance)
	assert.Equal(t, 0, m.PerformanceRating)
	assert.Equal(t, "2024-10-15", m.JoinDate.Format(time.DateOnly))

	stats, err := uc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, staff.Stats{Total: 7, Active: 5, Inactive: 1, NewThisMonth: 1}, stats)
}

func TestUpdateMember_Validation(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	tests := []struct {
		name  string
		input staff.UpdateMemberInput
		err   error
	}{
		{"unknown", staff.UpdateMemberInput{ID: "nope"}, staff.ErrMemberNotFound},
		{"blank name", staff.UpdateMemberInput{ID: "EMP-001", Name: ptr(" ")}, staff.ErrInvalidPayload},
		{"rating", staff.UpdateMemberInput{ID: "EMP-001", PerformanceRating: ptr(6)}, staff.ErrInvalidRating},
		{"attendance", staff.UpdateMemberInput{ID: "EMP-001", Attendance: ptr(101)}, staff.ErrInvalidAttendance},
		{"salary", staff.UpdateMemberInput{ID: "EMP-001", Salary: ptr(decimal.NewFromInt(-1))}, staff.ErrNegativeAmount},
		{"status", staff.UpdateMemberInput{ID: "EMP-001", Status: ptr(staff.Status("Fired"))}, staff.ErrInvalidStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Update(ctx, tt.input)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	m, err := uc.Update(ctx, staff.UpdateMemberInput{ID: "EMP-003", Status: ptr(staff.StatusActive)})
	require.NoError(t, err)
	assert.Equal(t, "Emily Rodriguez", m.Name)
	assert.Equal(t, staff.StatusActive, m.Status)
}

func TestListMembers(t *testing.T) {
	uc := newTestUseCase()

	out, err := uc.List(context.Background(), staff.ListMembersInput{Department: "Logistics"})
	require.NoError(t, err)
	assert.Len(t, out.Members, 2)
	assert.Equal(t, []string{"Operations", "Inventory", "Logistics", "Procurement"}, out.Departments)

	out, err = uc.List(context.Background(), staff.ListMembersInput{Search: "CLERK"})
	require.NoError(t, err)
	require.Len(t, out.Members, 1)
	assert.Equal(t, "EMP-006", out.Members[0].ID)
}

func TestCreateTask(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	task, err := uc.CreateTask(ctx, staff.CreateTaskInput{Title: "Label pallets", AssigneeID: "EMP-004"})
	require.NoError(t, err)
	assert.Equal(t, staff.PriorityMedium, task.Priority)
	assert.Equal(t, staff.TaskPending, task.Status)
	assert.Equal(t, "2024-10-16", task.DueDate.Format(time.DateOnly))
	assert.Nil(t, task.CompletedDate)
	assert.Equal(t, []string{"Task created"}, actions(task))

	done, err := uc.CreateTask(ctx, staff.CreateTaskInput{Title: "Done already", AssigneeID: "EMP-004", Status: staff.TaskCompleted})
	require.NoError(t, err)
	require.NotNil(t, done.CompletedDate)
	assert.Equal(t, fixedNow, *done.CompletedDate)

	_, err = uc.CreateTask(ctx, staff.CreateTaskInput{Title: "x", AssigneeID: "EMP-999"})
	assert.ErrorIs(t, err, staff.ErrAssigneeNotFound)

	_, err = uc.CreateTask(ctx, staff.CreateTaskInput{
		Title: "x", AssigneeID: "EMP-001",
		StartDate: time.Date(2024, 10, 10, 0, 0, 0, 0, time.UTC),
		DueDate:   time.Date(2024, 10, 9, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, staff.ErrDueBeforeStartDate)
}

func TestUpdateTask_History(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	task, err := uc.UpdateTask(ctx, staff.UpdateTaskInput{
		ID:         "TSK-002",
		AssigneeID: ptr("EMP-001"),
		Status:     ptr(staff.TaskCompleted),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Task created",
		"Reassigned from Olivia Brown to Sarah Johnson",
		"Status updated to Completed",
	}, actions(task))
	require.NotNil(t, task.CompletedDate)
	assert.Equal(t, staff.Actor, task.History[2].User)

	task, err = uc.UpdateTask(ctx, staff.UpdateTaskInput{ID: "TSK-002", Title: ptr("Reorder chairs")})
	require.NoError(t, err)
	assert.Len(t, task.History, 3)
	assert.NotNil(t, task.CompletedDate)

	task, err = uc.UpdateTask(ctx, staff.UpdateTaskInput{ID: "TSK-002", Status: ptr(staff.TaskInProgress)})
	require.NoError(t, err)
	assert.Nil(t, task.CompletedDate)

	_, err = uc.UpdateTask(ctx, staff.UpdateTaskInput{ID: "TSK-002", AssigneeID: ptr("EMP-404")})
	assert.ErrorIs(t, err, staff.ErrAssigneeNotFound)
}

func TestUpdateTask_ReassignFromDeletedMember(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	require.NoError(t, uc.Delete(ctx, "EMP-003"))

	task, err := uc.UpdateTask(ctx, staff.UpdateTaskInput{ID: "TSK-004", AssigneeID: ptr("EMP-002")})
	require.NoError(t, err)
	assert.Equal(t, "Reassigned from Unknown to Michael Chen", task.History[len(task.History)-1].Action)
}

func TestUpdateTaskStatus(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	task, err := uc.UpdateTaskStatus(ctx, "TSK-001", staff.TaskReview)
	require.NoError(t, err)
	assert.Equal(t, "Status changed to Review", task.History[len(task.History)-1].Action)

	same, err := uc.UpdateTaskStatus(ctx, "TSK-001", staff.TaskReview)
	require.NoError(t, err)
	assert.Len(t, same.History, len(task.History))

	_, err = uc.UpdateTaskStatus(ctx, "TSK-001", "Archived")
	assert.ErrorIs(t, err, staff.ErrInvalidStatus)

	stored, err := uc.DetailTask(ctx, "TSK-001")
	require.NoError(t, err)
	assert.Equal(t, staff.TaskReview, stored.Status)
}

func TestDeleteTask(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	require.NoError(t, uc.DeleteTask(ctx, "TSK-003"))
	assert.ErrorIs(t, uc.DeleteTask(ctx, "TSK-003"), staff.ErrTaskNotFound)

	tasks, err := uc.ListTasks(ctx, staff.ListTasksInput{AssigneeID: "EMP-004"})
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
