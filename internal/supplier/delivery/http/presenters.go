package http

import (
	"time"

	"nexstock/internal/supplier"
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

// --- Request DTOs ---

type createReq struct {
	Name          string `json:"name"          binding:"required,max=255"`
	ContactPerson string `json:"contactPerson" binding:"max=255"`
	Email         string `json:"email"         binding:"omitempty,email"`
	Phone         string `json:"phone"         binding:"max=50"`
	Category      string `json:"category"      binding:"max=100"`
	Rating        int    `json:"rating"        binding:"min=0,max=5"`
	Status        string `json:"status"        binding:"omitempty,oneof=Active Inactive Pending"`
	LastOrderDate string `json:"lastOrderDate" binding:"omitempty,datetime=2006-01-02"`
	Location      string `json:"location"`
	JoinDate      string `json:"joinDate"      binding:"omitempty,datetime=2006-01-02"`
}

func (r createReq) toInput() supplier.CreateInput {
	return supplier.CreateInput{
		Name:          r.Name,
		ContactPerson: r.ContactPerson,
		Email:         r.Email,
		Phone:         r.Phone,
		Category:      r.Category,
		Rating:        r.Rating,
		Status:        supplier.Status(r.Status),
		LastOrderDate: parseDate(r.LastOrderDate),
		Location:      r.Location,
		JoinDate:      parseDate(r.JoinDate),
	}
}

type listReq struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Status   string `form:"status"`
}

func (r listReq) toInput() supplier.ListInput {
	in := supplier.ListInput{Search: r.Search, Category: r.Category, Status: supplier.Status(r.Status)}
	if r.Category == "All" {
		in.Category = ""
	}
	if r.Status == "All" {
		in.Status = ""
	}
	return in
}

type updateReq struct {
	ID            string  `json:"-"`
	Name          *string `json:"name"          binding:"omitempty,max=255"`
	ContactPerson *string `json:"contactPerson" binding:"omitempty,max=255"`
	Email         *string `json:"email"         binding:"omitempty,email"`
	Phone         *string `json:"phone"         binding:"omitempty,max=50"`
	Category      *string `json:"category"      binding:"omitempty,max=100"`
	Rating        *int    `json:"rating"`
	Status        *string `json:"status"        binding:"omitempty,oneof=Active Inactive Pending"`
	LastOrderDate *string `json:"lastOrderDate" binding:"omitempty,datetime=2006-01-02"`
	Location      *string `json:"location"`
	JoinDate      *string `json:"joinDate"      binding:"omitempty,datetime=2006-01-02"`
}

func (r updateReq) toInput() supplier.UpdateInput {
	in := supplier.UpdateInput{
		ID:            r.ID,
		Name:          r.Name,
		ContactPerson: r.ContactPerson,
		Email:         r.Email,
		Phone:         r.Phone,
		Category:      r.Category,
		Rating:        r.Rating,
		LastOrderDate: parseDatePtr(r.LastOrderDate),
		Location:      r.Location,
		JoinDate:      parseDatePtr(r.JoinDate),
	}
	if r.Status != nil {
		status := supplier.Status(*r.Status)
		in.Status = &status
	}
	return in
}

// --- Response DTOs ---

type supplierResp struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	ContactPerson string          `json:"contactPerson"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Category      string          `json:"category"`
	Rating        int             `json:"rating"`
	Status        supplier.Status `json:"status"`
	LastOrderDate response.Date   `json:"lastOrderDate" swaggertype:"string"`
	Location      string          `json:"location"`
	JoinDate      response.Date   `json:"joinDate" swaggertype:"string"`
}

func newSupplierResp(s supplier.Supplier) supplierResp {
	return supplierResp{
		ID:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Email:         s.Email,
		Phone:         s.Phone,
		Category:      s.Category,
		Rating:        s.Rating,
		Status:        s.Status,
		LastOrderDate: response.Date(s.LastOrderDate),
		Location:      s.Location,
		JoinDate:      response.Date(s.JoinDate),
	}
}

type supplierEnvelope struct {
	Supplier supplierResp `json:"supplier"`
}

type listResp struct {
	Suppliers  []supplierResp `json:"suppliers"`
	Categories []string       `json:"categories"`
}

func (h *handler) newListResp(out supplier.ListOutput) listResp {
	suppliers := make([]supplierResp, len(out.Suppliers))
	for i, s := range out.Suppliers {
		suppliers[i] = newSupplierResp(s)
	}
	categories := out.Categories
	if categories == nil {
		categories = []string{}
	}
	return listResp{Suppliers: suppliers, Categories: categories}
}

type statsResp struct {
	Total        int `json:"total"`
	Active       int `json:"active"`
	Inactive     int `json:"inactive"`
	NewThisMonth int `json:"newThisMonth"`
}
