package usecase

import (
	"context"
	"slices"
	"strings"
	"time"

	"nexstock/internal/supplier"
	repo "nexstock/internal/supplier/repository"
)

const defaultRating = 5

// Create adds a supplier. Rating defaults to 5, status to Active and both dates to today.
func (uc *implUseCase) Create(ctx context.Context, input supplier.CreateInput) (supplier.Supplier, error) {
	today := uc.today()
	s := supplier.Supplier{
		Name:          strings.TrimSpace(input.Name),
		ContactPerson: strings.TrimSpace(input.ContactPerson),
		Email:         strings.TrimSpace(input.Email),
		Phone:         strings.TrimSpace(input.Phone),
		Category:      strings.TrimSpace(input.Category),
		Rating:        input.Rating,
		Status:        input.Status,
		LastOrderDate: input.LastOrderDate,
		Location:      strings.TrimSpace(input.Location),
		JoinDate:      input.JoinDate,
	}
	if s.Rating == 0 {
		s.Rating = defaultRating
	}
	if s.Status == "" {
		s.Status = supplier.StatusActive
	}
	if s.LastOrderDate.IsZero() {
		s.LastOrderDate = today
	}
	if s.JoinDate.IsZero() {
		s.JoinDate = today
	}
	if err := validate(s); err != nil {
		return supplier.Supplier{}, err
	}

	created, err := uc.repo.CreateSupplier(ctx, s)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateSupplier: %v", err)
		return supplier.Supplier{}, err
	}
	return created, nil
}

// List returns matching suppliers and the distinct categories across all suppliers.
func (uc *implUseCase) List(ctx context.Context, input supplier.ListInput) (supplier.ListOutput, error) {
	if input.Status != "" && !input.Status.Valid() {
		return supplier.ListOutput{}, supplier.ErrInvalidStatus
	}

	all, err := uc.repo.ListSuppliers(ctx, repo.ListOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListSuppliers: %v", err)
		return supplier.ListOutput{}, err
	}
	matches, err := uc.repo.ListSuppliers(ctx, repo.ListOptions{
		Search:   input.Search,
		Category: input.Category,
		Status:   input.Status,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListSuppliers: %v", err)
		return supplier.ListOutput{}, err
	}

	var categories []string
	for _, s := range all {
		if s.Category != "" && !slices.Contains(categories, s.Category) {
			categories = append(categories, s.Category)
		}
	}

	return supplier.ListOutput{Suppliers: matches, Categories: categories}, nil
}

func (uc *implUseCase) Detail(ctx context.Context, id string) (supplier.Supplier, error) {
	s, err := uc.repo.GetOneSupplier(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneSupplier: %v", err)
		return supplier.Supplier{}, err
	}
	if s.ID == "" {
		return supplier.Supplier{}, supplier.ErrSupplierNotFound
	}
	return s, nil
}

func (uc *implUseCase) Update(ctx context.Context, input supplier.UpdateInput) (supplier.Supplier, error) {
	s, err := uc.Detail(ctx, input.ID)
	if err != nil {
		return supplier.Supplier{}, err
	}

	s.Name = strings.TrimSpace(coalesce(input.Name, s.Name))
	s.ContactPerson = coalesce(input.ContactPerson, s.ContactPerson)
	s.Email = coalesce(input.Email, s.Email)
	s.Phone = coalesce(input.Phone, s.Phone)
	s.Category = coalesce(input.Category, s.Category)
	s.Rating = coalesce(input.Rating, s.Rating)
	s.Status = coalesce(input.Status, s.Status)
	s.LastOrderDate = coalesce(input.LastOrderDate, s.LastOrderDate)
	s.Location = coalesce(input.Location, s.Location)
	s.JoinDate = coalesce(input.JoinDate, s.JoinDate)
	if err := validate(s); err != nil {
		return supplier.Supplier{}, err
	}

	updated, err := uc.repo.UpdateSupplier(ctx, s)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateSupplier: %v", err)
		return supplier.Supplier{}, err
	}
	if updated.ID == "" {
		return supplier.Supplier{}, supplier.ErrSupplierNotFound
	}
	return updated, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.Detail(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteSupplier(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteSupplier: %v", err)
		return err
	}
	return nil
}

// Stats counts suppliers. NewThisMonth uses the join date against the current calendar month.
func (uc *implUseCase) Stats(ctx context.Context) (supplier.Stats, error) {
	all, err := uc.repo.ListSuppliers(ctx, repo.ListOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats ListSuppliers: %v", err)
		return supplier.Stats{}, err
	}

	now := uc.now()
	stats := supplier.Stats{Total: len(all)}
	for _, s := range all {
		switch s.Status {
		case supplier.StatusActive:
			stats.Active++
		case supplier.StatusInactive, supplier.StatusPending:
			stats.Inactive++
		}
		if s.JoinDate.Year() == now.Year() && s.JoinDate.Month() == now.Month() {
			stats.NewThisMonth++
		}
	}
	return stats, nil
}

func (uc *implUseCase) today() time.Time {
	y, m, d := uc.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validate(s supplier.Supplier) error {
	if s.Name == "" {
		return supplier.ErrInvalidPayload
	}
	if s.Rating < 1 || s.Rating > 5 {
		return supplier.ErrInvalidRating
	}
	if !s.Status.Valid() {
		return supplier.ErrInvalidStatus
	}
	return nil
}

func coalesce[T any](newVal *T, existing T) T {
	if newVal != nil {
		return *newVal
	}
	return existing
}
