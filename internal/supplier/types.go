package supplier

import "time"

// Status is the relationship state of a supplier.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
	StatusPending  Status = "Pending"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusPending:
		return true
	}
	return false
}

// --- Domain Model ---

type Supplier struct {
	ID            string
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Category      string
	Rating        int
	Status        Status
	LastOrderDate time.Time
	Location      string
	JoinDate      time.Time
}

// --- UseCase Inputs ---

type CreateInput struct {
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Category      string
	Rating        int
	Status        Status
	LastOrderDate time.Time
	Location      string
	JoinDate      time.Time
}

type ListInput struct {
	Search   string
	Category string
	Status   Status
}

// UpdateInput is a partial update; nil fields keep their current value.
type UpdateInput struct {
	ID            string
	Name          *string
	ContactPerson *string
	Email         *string
	Phone         *string
	Category      *string
	Rating        *int
	Status        *Status
	LastOrderDate *time.Time
	Location      *string
	JoinDate      *time.Time
}

// --- UseCase Outputs ---

type ListOutput struct {
	Suppliers  []Supplier
	Categories []string
}

// Stats counts suppliers by state. Inactive includes pending suppliers.
type Stats struct {
	Total        int
	Active       int
	Inactive     int
	NewThisMonth int
}
