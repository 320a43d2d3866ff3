package staff

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive   Status = "Active"
	StatusOnLeave  Status = "On Leave"
	StatusInactive Status = "Inactive"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusOnLeave, StatusInactive:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
)

func (p TaskPriority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

type TaskStatus string

const (
	TaskPending    TaskStatus = "Pending"
	TaskInProgress TaskStatus = "In Progress"
	TaskReview     TaskStatus = "Review"
	TaskCompleted  TaskStatus = "Completed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskReview, TaskCompleted:
		return true
	}
	return false
}

// Actor is recorded as the user on task history entries.
const Actor = "Admin"

// --- Domain Model ---

type LeaveBalance struct {
	Sick   int
	Casual int
	Paid   int
}

type Member struct {
	ID                string
	Name              string
	Role              string
	Email             string
	Phone             string
	Status            Status
	Department        string
	JoinDate          time.Time
	Salary            decimal.Decimal
	Currency          string
	Shift             string
	LeaveBalance      LeaveBalance
	PerformanceRating int
	Attendance        int
}

type HistoryEntry struct {
	ID        string
	Action    string
	Timestamp time.Time
	User      string
}

type Task struct {
	ID            string
	Title         string
	Description   string
	AssigneeID    string
	Priority      TaskPriority
	Status        TaskStatus
	StartDate     time.Time
	DueDate       time.Time
	CompletedDate *time.Time
	History       []HistoryEntry
}

// --- UseCase Inputs ---

type CreateMemberInput struct {
	Name       string
	Role       string
	Email      string
	Phone      string
	Status     Status
	Department string
	JoinDate   time.Time
}

type ListMembersInput struct {
	Search     string
	Department string
	Status     Status
}

// UpdateMemberInput is a partial update; nil fields keep their current value.
type UpdateMemberInput struct {
	ID                string
	Name              *string
	Role              *string
	Email             *string
	Phone             *string
	Status            *Status
	Department        *string
	JoinDate          *time.Time
	Salary            *decimal.Decimal
	Currency          *string
	Shift             *string
	LeaveBalance      *LeaveBalance
	PerformanceRating *int
	Attendance        *int
}

type CreateTaskInput struct {
	Title       string
	Description string
	AssigneeID  string
	Priority    TaskPriority
	Status      TaskStatus
	StartDate   time.Time
	DueDate     time.Time
}

type ListTasksInput struct {
	AssigneeID string
	Status     TaskStatus
}

// UpdateTaskInput is a partial update; nil fields keep their current value.
type UpdateTaskInput struct {
	ID          string
	Title       *string
	Description *string
	AssigneeID  *string
	Priority    *TaskPriority
	Status      *TaskStatus
	StartDate   *time.Time
	DueDate     *time.Time
}

// --- UseCase Outputs ---

type Stats struct {
	Total        int
	Active       int
	Inactive     int
	NewThisMonth int
}

type ListMembersOutput struct {
	Members     []Member
	Departments []string
}
