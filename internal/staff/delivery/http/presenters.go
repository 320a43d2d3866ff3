package http

import (
	"time"

	"github.com/shopspring/decimal"

	"nexstock/internal/staff"
	"nexstock/pkg/response"
)

func parseDate(s string) time.Time {
	t, _ := time.Parse(response.DateFormat, s)
	return t
}

func parseDatePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t := parseDate(*s)
	return &t
}

// --- Member DTOs ---

type createMemberReq struct {
	Name       string `json:"name"       binding:"required,max=255"`
	Role       string `json:"role"       binding:"max=100"`
	Email      string `json:"email"      binding:"omitempty,email"`
	Phone      string `json:"phone"      binding:"max=50"`
	Status     string `json:"status"`
	Department string `json:"department" binding:"max=100"`
	JoinDate   string `json:"joinDate"   binding:"omitempty,datetime=2006-01-02"`
}

func (r createMemberReq) toInput() staff.CreateMemberInput {
	return staff.CreateMemberInput{
		Name:       r.Name,
		Role:       r.Role,
		Email:      r.Email,
		Phone:      r.Phone,
		Status:     staff.Status(r.Status),
		Department: r.Department,
		JoinDate:   parseDate(r.JoinDate),
	}
}

type listMembersReq struct {
	Search     string `form:"search"`
	Department string `form:"department"`
	Status     string `form:"status"`
}

func (r listMembersReq) toInput() staff.ListMembersInput {
	in := staff.ListMembersInput{Search: r.Search, Department: r.Department, Status: staff.Status(r.Status)}
	if r.Department == "All" {
		in.Department = ""
	}
	if r.Status == "All" {
		in.Status = ""
	}
	return in
}

type leaveBalanceDTO struct {
	Sick   int `json:"sick"`
	Casual int `json:"casual"`
	Paid   int `json:"paid"`
}

type updateMemberReq struct {
	ID                string           `json:"-"`
	Name              *string          `json:"name"       binding:"omitempty,max=255"`
	Role              *string          `json:"role"       binding:"omitempty,max=100"`
	Email             *string          `json:"email"      binding:"omitempty,email"`
	Phone             *string          `json:"phone"      binding:"omitempty,max=50"`
	Status            *string          `json:"status"`
	Department        *string          `json:"department" binding:"omitempty,max=100"`
	JoinDate          *string          `json:"joinDate"   binding:"omitempty,datetime=2006-01-02"`
	Salary            *decimal.Decimal `json:"salary" swaggertype:"number"`
	Currency          *string          `json:"currency"   binding:"omitempty,len=3"`
	Shift             *string          `json:"shift"`
	LeaveBalance      *leaveBalanceDTO `json:"leaveBalance"`
	PerformanceRating *int             `json:"performanceRating"`
	Attendance        *int             `json:"attendance"`
}

func (r updateMemberReq) toInput() staff.UpdateMemberInput {
	in := staff.UpdateMemberInput{
		ID:                r.ID,
		Name:              r.Name,
		Role:              r.Role,
		Email:             r.Email,
		Phone:             r.Phone,
		Department:        r.Department,
		JoinDate:          parseDatePtr(r.JoinDate),
		Salary:            r.Salary,
		Currency:          r.Currency,
		Shift:             r.Shift,
		PerformanceRating: r.PerformanceRating,
		Attendance:        r.Attendance,
	}
	if r.Status != nil {
		s := staff.Status(*r.Status)
		in.Status = &s
	}
	if r.LeaveBalance != nil {
		in.LeaveBalance = &staff.LeaveBalance{Sick: r.LeaveBalance.Sick, Casual: r.LeaveBalance.Casual, Paid: r.LeaveBalance.Paid}
	}
	return in
}

type memberResp struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Role              string          `json:"role"`
	Email             string          `json:"email"`
	Phone             string          `json:"phone"`
	Status            staff.Status    `json:"status"`
	Department        string          `json:"department"`
	JoinDate          response.Date   `json:"joinDate" swaggertype:"string"`
	Salary            response.Money  `json:"salary" swaggertype:"number"`
	Currency          string          `json:"currency"`
	Shift             string          `json:"shift"`
	LeaveBalance      leaveBalanceDTO `json:"leaveBalance"`
	PerformanceRating int             `json:"performanceRating"`
	Attendance        int             `json:"attendance"`
}

func newMemberResp(m staff.Member) memberResp {
	return memberResp{
		ID:                m.ID,
		Name:              m.Name,
		Role:              m.Role,
		Email:             m.Email,
		Phone:             m.Phone,
		Status:            m.Status,
		Department:        m.Department,
		JoinDate:          response.Date(m.JoinDate),
		Salary:            response.Money(m.Salary),
		Currency:          m.Currency,
		Shift:             m.Shift,
		LeaveBalance:      leaveBalanceDTO{Sick: m.LeaveBalance.Sick, Casual: m.LeaveBalance.Casual, Paid: m.LeaveBalance.Paid},
		PerformanceRating: m.PerformanceRating,
		Attendance:        m.Attendance,
	}
}

type memberEnvelope struct {
	Member memberResp `json:"member"`
}

type listMembersResp struct {
	Members     []memberResp `json:"members"`
	Departments []string     `json:"departments"`
}

func (h *handler) newListMembersResp(out staff.ListMembersOutput) listMembersResp {
	members := make([]memberResp, len(out.Members))
	for i, m := range out.Members {
		members[i] = newMemberResp(m)
	}
	departments := out.Departments
	if departments == nil {
		departments = []string{}
	}
	return listMembersResp{Members: members, Departments: departments}
}

type statsResp struct {
	Total        int `json:"total"`
	Active       int `json:"active"`
	Inactive     int `json:"inactive"`
	NewThisMonth int `json:"newThisMonth"`
}

// --- Task DTOs ---

type createTaskReq struct {
	Title       string `json:"title"       binding:"required,max=255"`
	Description string `json:"description"`
	AssigneeID  string `json:"assigneeId"  binding:"required"`
	Priority    string `json:"priority"    binding:"omitempty,oneof=Low Medium High"`
	Status      string `json:"status"`
	StartDate   string `json:"startDate"   binding:"omitempty,datetime=2006-01-02"`
	DueDate     string `json:"dueDate"     binding:"omitempty,datetime=2006-01-02"`
}

func (r createTaskReq) toInput() staff.CreateTaskInput {
	return staff.CreateTaskInput{
		Title:       r.Title,
		Description: r.Description,
		AssigneeID:  r.AssigneeID,
		Priority:    staff.TaskPriority(r.Priority),
		Status:      staff.TaskStatus(r.Status),
		StartDate:   parseDate(r.StartDate),
		DueDate:     parseDate(r.DueDate),
	}
}

type listTasksReq struct {
	AssigneeID string `form:"assignee_id"`
	Status     string `form:"status"`
}

type updateTaskReq struct {
	ID          string  `json:"-"`
	Title       *string `json:"title"      binding:"omitempty,max=255"`
	Description *string `json:"description"`
	AssigneeID  *string `json:"assigneeId"`
	Priority    *string `json:"priority"   binding:"omitempty,oneof=Low Medium High"`
	Status      *string `json:"status"`
	StartDate   *string `json:"startDate"  binding:"omitempty,datetime=2006-01-02"`
	DueDate     *string `json:"dueDate"    binding:"omitempty,datetime=2006-01-02"`
}

func (r updateTaskReq) toInput() staff.UpdateTaskInput {
	in := staff.UpdateTaskInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		AssigneeID:  r.AssigneeID,
		StartDate:   parseDatePtr(r.StartDate),
		DueDate:     parseDatePtr(r.DueDate),
	}
	if r.Priority != nil {
		p := staff.TaskPriority(*r.Priority)
		in.Priority = &p
	}
	if r.Status != nil {
		s := staff.TaskStatus(*r.Status)
		in.Status = &s
	}
	return in
}

type updateTaskStatusReq struct {
	Status string `json:"status" binding:"required"`
}

type historyResp struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
	User      string    `json:"user"`
}

type taskResp struct {
	ID            string             `json:"id"`
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	AssigneeID    string             `json:"assigneeId"`
	Priority      staff.TaskPriority `json:"priority"`
	Status        staff.TaskStatus   `json:"status"`
	StartDate     response.Date      `json:"startDate" swaggertype:"string"`
	DueDate       response.Date      `json:"dueDate" swaggertype:"string"`
	CompletedDate *time.Time         `json:"completedDate,omitempty"`
	History       []historyResp      `json:"history"`
}

func newTaskResp(t staff.Task) taskResp {
	history := make([]historyResp, len(t.History))
	for i, e := range t.History {
		history[i] = historyResp{ID: e.ID, Action: e.Action, Timestamp: e.Timestamp, User: e.User}
	}
	return taskResp{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		AssigneeID:    t.AssigneeID,
		Priority:      t.Priority,
		Status:        t.Status,
		StartDate:     response.Date(t.StartDate),
		DueDate:       response.Date(t.DueDate),
		CompletedDate: t.CompletedDate,
		History:       history,
	}
}

type taskEnvelope struct {
	Task taskResp `json:"task"`
}

type listTasksResp struct {
	Tasks []taskResp `json:"tasks"`
}
