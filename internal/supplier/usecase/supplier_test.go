package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexstock/internal/supplier"
	"nexstock/internal/supplier/repository/memory"
	"nexstock/pkg/log"
)

func newTestUseCase(now time.Time) *implUseCase {
	l := log.NewNop()
	uc := New(memory.New(l), l).(*implUseCase)
	uc.now = func() time.Time { return now }
	return uc
}

func ptr[T any](v T) *T { return &v }

func TestCreate_Defaults(t *testing.T) {
	uc := newTestUseCase(time.Date(2024, 10, 15, 13, 0, 0, 0, time.UTC))

	s, err := uc.Create(context.Background(), supplier.CreateInput{Name: "  Acme  "})
	require.NoError(t, err)

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "Acme", s.Name)
	assert.Equal(t, 5, s.Rating)
	assert.Equal(t, supplier.StatusActive, s.Status)
	assert.Equal(t, "2024-10-15", s.JoinDate.Format(time.DateOnly))

	list, err := uc.List(context.Background(), supplier.ListInput{})
	require.NoError(t, err)
	assert.Equal(t, s.ID, list.Suppliers[0].ID)
}

func TestCreate_Validation(t *testing.T) {
	uc := newTestUseCase(time.Now())

	tests := []struct {
		name  string
		input supplier.CreateInput
		err   error
	}{
		{"blank name", supplier.CreateInput{Name: " "}, supplier.ErrInvalidPayload},
		{"rating too high", supplier.CreateInput{Name: "x", Rating: 6}, supplier.ErrInvalidRating},
		{"negative rating", supplier.CreateInput{Name: "x", Rating: -1}, supplier.ErrInvalidRating},
		{"unknown status", supplier.CreateInput{Name: "x", Status: "Blocked"}, supplier.ErrInvalidStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Create(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestList_Filters(t *testing.T) {
	uc := newTestUseCase(time.Now())
	ctx := context.Background()

	out, err := uc.List(ctx, supplier.ListInput{Search: "ELECTRO"})
	require.NoError(t, err)
	assert.Len(t, out.Suppliers, 4)
	assert.Equal(t, []string{"Electronics", "Furniture", "Accessories", "Home"}, out.Categories)

	out, err = uc.List(ctx, supplier.ListInput{Status: supplier.StatusInactive})
	require.NoError(t, err)
	require.Len(t, out.Suppliers, 1)
	assert.Equal(t, "AluWorks", out.Suppliers[0].Name)

	_, err = uc.List(ctx, supplier.ListInput{Status: "nope"})
	assert.ErrorIs(t, err, supplier.ErrInvalidStatus)
}

func TestUpdateDelete(t *testing.T) {
	uc := newTestUseCase(time.Now())
	ctx := context.Background()

	s, err := uc.Update(ctx, supplier.UpdateInput{ID: "SUP-004", Status: ptr(supplier.StatusActive), Rating: ptr(4)})
	require.NoError(t, err)
	assert.Equal(t, supplier.StatusActive, s.Status)
	assert.Equal(t, "VisionInc", s.Name)

	_, err = uc.Update(ctx, supplier.UpdateInput{ID: "SUP-004", Rating: ptr(0)})
	assert.ErrorIs(t, err, supplier.ErrInvalidRating)

	require.NoError(t, uc.Delete(ctx, "SUP-004"))
	_, err = uc.Detail(ctx, "SUP-004")
	assert.ErrorIs(t, err, supplier.ErrSupplierNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, "SUP-004"), supplier.ErrSupplierNotFound)
}

func TestStats(t *testing.T) {
	uc := newTestUseCase(time.Date(2023, 5, 30, 0, 0, 0, 0, time.UTC))

	stats, err := uc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, supplier.Stats{Total: 8, Active: 6, Inactive: 2, NewThisMonth: 1}, stats)
}
