package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"nexstock/internal/staff"
)

const dayShift = "09:00 AM - 05:00 PM"

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SeedMembers returns the demo team.
func SeedMembers() []staff.Member {
	leave := staff.LeaveBalance{Sick: 10, Casual: 8, Paid: 15}
	return []staff.Member{
		{ID: "EMP-001", Name: "Sarah Johnson", Role: "Warehouse Manager", Email: "sarah.j@nexstock.com", Phone: "+1 212 555 0101", Status: staff.StatusActive, Department: "Operations", JoinDate: date(2020, 3, 15), Salary: decimal.NewFromInt(78000), Currency: "USD", Shift: dayShift, LeaveBalance: leave, PerformanceRating: 5, Attendance: 98},
		{ID: "EMP-002", Name: "Michael Chen", Role: "Inventory Specialist", Email: "m.chen@nexstock.com", Phone: "+1 212 555 0102", Status: staff.StatusActive, Department: "Inventory", JoinDate: date(2021, 6, 1), Salary: decimal.NewFromInt(56000), Currency: "USD", Shift: dayShift, LeaveBalance: leave, PerformanceRating: 4, Attendance: 95},
		{ID: "EMP-003", Name: "Emily Rodriguez", Role: "Logistics Coordinator", Email: "emily.r@nexstock.com", Phone: "+1 213 555 0103", Status: staff.StatusOnLeave, Department: "Logistics", JoinDate: date(2022, 1, 10), Salary: decimal.NewFromInt(61000), Currency: "USD", Shift: "07:00 AM - 03:00 PM", LeaveBalance: staff.LeaveBalance{Sick: 2, Casual: 0, Paid: 4}, PerformanceRating: 4, Attendance: 91},
		{ID: "EMP-004", Name: "David Kim", Role: "Forklift Operator", Email: "d.kim@nexstock.com", Phone: "+1 713 555 0104", Status: staff.StatusActive, Department: "Operations", JoinDate: date(2023, 4, 3), Salary: decimal.NewFromInt(42000), Currency: "USD", Shift: "02:00 PM - 10:00 PM", LeaveBalance: leave, PerformanceRating: 3, Attendance: 93},
		{ID: "EMP-005", Name: "Olivia Brown", Role: "Procurement Analyst", Email: "olivia.b@nexstock.com", Phone: "+1 415 555 0105", Status: staff.StatusActive, Department: "Procurement", JoinDate: date(2022, 9, 19), Salary: decimal.NewFromInt(64000), Currency: "USD", Shift: dayShift, LeaveBalance: leave, PerformanceRating: 4, Attendance: 97},
		{ID: "EMP-006", Name: "James Wilson", Role: "Shipping Clerk", Email: "j.wilson@nexstock.com", Phone: "+1 512 555 0106", Status: staff.StatusInactive, Department: "Logistics", JoinDate: date(2019, 11, 25), Salary: decimal.NewFromInt(39000), Currency: "USD", Shift: dayShift, LeaveBalance: staff.LeaveBalance{}, PerformanceRating: 2, Attendance: 82},
	}
}

// SeedTasks returns the demo task board.
func SeedTasks() []staff.Task {
	created := func(d time.Time) []staff.HistoryEntry {
		return []staff.HistoryEntry{{ID: "h-" + d.Format("0102"), Action: "Task created", Timestamp: d, User: staff.Actor}}
	}
	completed := date(2024, 10, 7)
	return []staff.Task{
		{ID: "TSK-001", Title: "Quarterly stock audit", Description: "Cycle count aisles A and B in WH-NY.", AssigneeID: "EMP-002", Priority: staff.PriorityHigh, Status: staff.TaskInProgress, StartDate: date(2024, 10, 1), DueDate: date(2024, 10, 20), History: created(date(2024, 10, 1))},
		{ID: "TSK-002", Title: "Reorder ergonomic chairs", Description: "Raise a PO with OfficeLux for 20 units.", AssigneeID: "EMP-005", Priority: staff.PriorityMedium, Status: staff.TaskPending, StartDate: date(2024, 10, 8), DueDate: date(2024, 10, 12), History: created(date(2024, 10, 8))},
		{ID: "TSK-003", Title: "Forklift safety inspection", Description: "Monthly inspection of WH-TX forklifts.", AssigneeID: "EMP-004", Priority: staff.PriorityLow, Status: staff.TaskCompleted, StartDate: date(2024, 10, 2), DueDate: date(2024, 10, 9), CompletedDate: &completed, History: created(date(2024, 10, 2))},
		{ID: "TSK-004", Title: "Clear customs paperwork", Description: "Shipment TRK-557810 is held at customs.", AssigneeID: "EMP-003", Priority: staff.PriorityHigh, Status: staff.TaskReview, StartDate: date(2024, 10, 10), DueDate: date(2024, 10, 18), History: created(date(2024, 10, 10))},
	}
}
