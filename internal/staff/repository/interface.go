package repository

import (
	"context"

	"nexstock/internal/staff"
)

//go:generate mockery --name Repository
type Repository interface {
	MemberRepository
	TaskRepository
}

type MemberRepository interface {
	CreateMember(ctx context.Context, m staff.Member) (staff.Member, error)
	// GetOneMember returns a zero-value Member when the id is unknown.
	GetOneMember(ctx context.Context, id string) (staff.Member, error)
	ListMembers(ctx context.Context, opt ListMembersOptions) ([]staff.Member, error)
	UpdateMember(ctx context.Context, m staff.Member) (staff.Member, error)
	DeleteMember(ctx context.Context, id string) error
}

type TaskRepository interface {
	CreateTask(ctx context.Context, t staff.Task) (staff.Task, error)
	// GetOneTask returns a zero-value Task when the id is unknown.
	GetOneTask(ctx context.Context, id string) (staff.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]staff.Task, error)
	UpdateTask(ctx context.Context, t staff.Task) (staff.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

type ListMembersOptions struct {
	Search     string
	Department string
	Status     staff.Status
}

type ListTasksOptions struct {
	AssigneeID string
	Status     staff.TaskStatus
}
