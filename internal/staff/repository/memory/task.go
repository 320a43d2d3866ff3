package memory

import (
	"context"
	"errors"
	"slices"

	"github.com/google/uuid"

	"nexstock/internal/staff"
	repo "nexstock/internal/staff/repository"
	"nexstock/pkg/memstore"
)

// cloneTask copies the history slice so stored tasks never share backing arrays with callers.
func cloneTask(t staff.Task) staff.Task {
	t.History = slices.Clone(t.History)
	if t.CompletedDate != nil {
		d := *t.CompletedDate
		t.CompletedDate = &d
	}
	return t
}

func (r *implRepository) CreateTask(ctx context.Context, t staff.Task) (staff.Task, error) {
	t.ID = uuid.NewString()
	if err := r.tasks.Insert(cloneTask(t)); err != nil {
		r.l.Errorf(ctx, "staff/repository/memory.CreateTask: %v", err)
		return staff.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

func (r *implRepository) GetOneTask(ctx context.Context, id string) (staff.Task, error) {
	t, _ := r.tasks.Get(id)
	return cloneTask(t), nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]staff.Task, error) {
	tasks := r.tasks.List(func(t staff.Task) bool {
		if opt.AssigneeID != "" && t.AssigneeID != opt.AssigneeID {
			return false
		}
		return opt.Status == "" || t.Status == opt.Status
	})
	for i := range tasks {
		tasks[i] = cloneTask(tasks[i])
	}
	return tasks, nil
}

func (r *implRepository) UpdateTask(ctx context.Context, t staff.Task) (staff.Task, error) {
	_, err := r.tasks.Update(t.ID, func(staff.Task) (staff.Task, error) {
		return cloneTask(t), nil
	})
	if errors.Is(err, memstore.ErrNotFound) {
		return staff.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "staff/repository/memory.UpdateTask: %v", err)
		return staff.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	if err := r.tasks.Delete(id); err != nil && !errors.Is(err, memstore.ErrNotFound) {
		r.l.Errorf(ctx, "staff/repository/memory.DeleteTask: %v", err)
		return repo.ErrFailedToDelete
	}
	return nil
}
