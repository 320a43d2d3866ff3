package payroll

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (Record, error)
	// List returns the month's records matching search, with a summary of those records.
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Summary(ctx context.Context, input ListInput) (Summary, error)
	Months(ctx context.Context) ([]string, error)
	Detail(ctx context.Context, id string) (Record, error)
	Pay(ctx context.Context, id string) (Record, error)
	UpdateStatus(ctx context.Context, id string, status Status) (Record, error)
}
