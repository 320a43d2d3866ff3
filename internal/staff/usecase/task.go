package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"nexstock/internal/staff"
	repo "nexstock/internal/staff/repository"
)

const unknownAssignee = "Unknown"

// CreateTask assigns a new task. The assignee must exist. Priority defaults to
// Medium, status to Pending, start to today and due date to the day after start.
func (uc *implUseCase) CreateTask(ctx context.Context, input staff.CreateTaskInput) (staff.Task, error) {
	t := staff.Task{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		AssigneeID:  input.AssigneeID,
		Priority:    input.Priority,
		Status:      input.Status,
		StartDate:   input.StartDate,
		DueDate:     input.DueDate,
	}
	if t.Priority == "" {
		t.Priority = staff.PriorityMedium
	}
	if t.Status == "" {
		t.Status = staff.TaskPending
	}
	if t.StartDate.IsZero() {
		t.StartDate = uc.today()
	}
	if t.DueDate.IsZero() {
		t.DueDate = t.StartDate.AddDate(0, 0, 1)
	}
	if err := validateTask(t); err != nil {
		return staff.Task{}, err
	}
	if _, err := uc.assigneeName(ctx, t.AssigneeID); err != nil {
		return staff.Task{}, err
	}

	now := uc.now()
	if t.Status == staff.TaskCompleted {
		t.CompletedDate = &now
	}
	t.History = []staff.HistoryEntry{uc.historyEntry("Task created", now)}

	created, err := uc.repo.CreateTask(ctx, t)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateTask CreateTask: %v", err)
		return staff.Task{}, err
	}
	return created, nil
}

func (uc *implUseCase) ListTasks(ctx context.Context, input staff.ListTasksInput) ([]staff.Task, error) {
	if input.Status != "" && !input.Status.Valid() {
		return nil, staff.ErrInvalidStatus
	}
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{AssigneeID: input.AssigneeID, Status: input.Status})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListTasks ListTasks: %v", err)
		return nil, err
	}
	return tasks, nil
}

func (uc *implUseCase) DetailTask(ctx context.Context, id string) (staff.Task, error) {
	t, err := uc.repo.GetOneTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DetailTask GetOneTask: %v", err)
		return staff.Task{}, err
	}
	if t.ID == "" {
		return staff.Task{}, staff.ErrTaskNotFound
	}
	return t, nil
}

// UpdateTask applies a partial update and records reassignment and status
// changes in the task history.
func (uc *implUseCase) UpdateTask(ctx context.Context, input staff.UpdateTaskInput) (staff.Task, error) {
	t, err := uc.DetailTask(ctx, input.ID)
	if err != nil {
		return staff.Task{}, err
	}
	prev := t

	t.Title = strings.TrimSpace(coalesce(input.Title, t.Title))
	t.Description = coalesce(input.Description, t.Description)
	t.AssigneeID = coalesce(input.AssigneeID, t.AssigneeID)
	t.Priority = coalesce(input.Priority, t.Priority)
	t.Status = coalesce(input.Status, t.Status)
	t.StartDate = coalesce(input.StartDate, t.StartDate)
	t.DueDate = coalesce(input.DueDate, t.DueDate)
	if err := validateTask(t); err != nil {
		return staff.Task{}, err
	}

	now := uc.now()
	if t.AssigneeID != prev.AssigneeID {
		newName, err := uc.assigneeName(ctx, t.AssigneeID)
		if err != nil {
			return staff.Task{}, err
		}
		oldName, err := uc.assigneeName(ctx, prev.AssigneeID)
		if err != nil {
			oldName = unknownAssignee
		}
		t.History = append(t.History, uc.historyEntry(fmt.Sprintf("Reassigned from %s to %s", oldName, newName), now))
	}
	if t.Status != prev.Status {
		t.History = append(t.History, uc.historyEntry(fmt.Sprintf("Status updated to %s", t.Status), now))
		stampCompletion(&t, now)
	}

	return uc.saveTask(ctx, t, "uc.UpdateTask")
}

// UpdateTaskStatus moves a task on the board. Setting the current status is a no-op.
func (uc *implUseCase) UpdateTaskStatus(ctx context.Context, id string, status staff.TaskStatus) (staff.Task, error) {
	if !status.Valid() {
		return staff.Task{}, staff.ErrInvalidStatus
	}
	t, err := uc.DetailTask(ctx, id)
	if err != nil {
		return staff.Task{}, err
	}
	if t.Status == status {
		return t, nil
	}

	now := uc.now()
	t.Status = status
	t.History = append(t.History, uc.historyEntry(fmt.Sprintf("Status changed to %s", status), now))
	stampCompletion(&t, now)

	return uc.saveTask(ctx, t, "uc.UpdateTaskStatus")
}

func (uc *implUseCase) DeleteTask(ctx context.Context, id string) error {
	if _, err := uc.DetailTask(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteTask DeleteTask: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) saveTask(ctx context.Context, t staff.Task, op string) (staff.Task, error) {
	updated, err := uc.repo.UpdateTask(ctx, t)
	if err != nil {
		uc.l.Errorf(ctx, "%s UpdateTask: %v", op, err)
		return staff.Task{}, err
	}
	if updated.ID == "" {
		return staff.Task{}, staff.ErrTaskNotFound
	}
	return updated, nil
}

// assigneeName returns ErrAssigneeNotFound when id is not a known member.
func (uc *implUseCase) assigneeName(ctx context.Context, id string) (string, error) {
	m, err := uc.repo.GetOneMember(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.assigneeName GetOneMember: %v", err)
		return "", err
	}
	if m.ID == "" {
		return "", staff.ErrAssigneeNotFound
	}
	return m.Name, nil
}

func (uc *implUseCase) historyEntry(action string, at time.Time) staff.HistoryEntry {
	return staff.HistoryEntry{ID: uuid.NewString(), Action: action, Timestamp: at, User: staff.Actor}
}

// stampCompletion sets the completion date on entering Completed and clears it otherwise.
func stampCompletion(t *staff.Task, now time.Time) {
	if t.Status == staff.TaskCompleted {
		t.CompletedDate = &now
		return
	}
	t.CompletedDate = nil
}
