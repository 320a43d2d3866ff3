package staff

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateMemberInput) (Member, error)
	List(ctx context.Context, input ListMembersInput) (ListMembersOutput, error)
	Detail(ctx context.Context, id string) (Member, error)
	Update(ctx context.Context, input UpdateMemberInput) (Member, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (Stats, error)

	CreateTask(ctx context.Context, input CreateTaskInput) (Task, error)
	ListTasks(ctx context.Context, input ListTasksInput) ([]Task, error)
	DetailTask(ctx context.Context, id string) (Task, error)
	UpdateTask(ctx context.Context, input UpdateTaskInput) (Task, error)
	UpdateTaskStatus(ctx context.Context, id string, status TaskStatus) (Task, error)
	DeleteTask(ctx context.Context, id string) error
}

// Directory resolves staff members for other domains.
type Directory interface {
	Detail(ctx context.Context, id string) (Member, error)
}
