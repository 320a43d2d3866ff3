package staff

import "errors"

var (
	ErrMemberNotFound     = errors.New("staff member not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrAssigneeNotFound   = errors.New("assignee not found")
	ErrInvalidPayload     = errors.New("invalid payload")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidPriority    = errors.New("priority must be Low, Medium or High")
	ErrInvalidRating      = errors.New("performance rating must be between 0 and 5")
	ErrInvalidAttendance  = errors.New("attendance must be between 0 and 100")
	ErrNegativeAmount     = errors.New("salary and leave balance must not be negative")
	ErrDueBeforeStartDate = errors.New("due date must not be before start date")
)
