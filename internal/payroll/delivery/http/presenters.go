package http

import (
	"github.com/shopspring/decimal"

	"nexstock/internal/payroll"
	"nexstock/pkg/response"
)

type listReq struct {
	Month  string `form:"month"`
	Search string `form:"search"`
}

func (r listReq) toInput() payroll.ListInput {
	return payroll.ListInput{Month: r.Month, Search: r.Search}
}

type createReq struct {
	StaffID    string          `json:"staffId"    binding:"required"`
	Month      string          `json:"month"      binding:"required"`
	BaseSalary decimal.Decimal `json:"baseSalary" swaggertype:"number"`
	Bonus      decimal.Decimal `json:"bonus"      swaggertype:"number"`
	Deductions decimal.Decimal `json:"deductions" swaggertype:"number"`
}

func (r createReq) toInput() payroll.CreateInput {
	return payroll.CreateInput{
		StaffID:    r.StaffID,
		Month:      r.Month,
		BaseSalary: r.BaseSalary,
		Bonus:      r.Bonus,
		Deductions: r.Deductions,
	}
}

type updateStatusReq struct {
	Status string `json:"status" binding:"required,oneof=Pending Processing Paid"`
}

type recordResp struct {
	ID          string         `json:"id"`
	StaffID     string         `json:"staffId"`
	StaffName   string         `json:"staffName"`
	Department  string         `json:"department"`
	Month       string         `json:"month"`
	BaseSalary  response.Money `json:"baseSalary" swaggertype:"number"`
	Bonus       response.Money `json:"bonus" swaggertype:"number"`
	Deductions  response.Money `json:"deductions" swaggertype:"number"`
	NetPay      response.Money `json:"netPay" swaggertype:"number"`
	Status      payroll.Status `json:"status"`
	PaymentDate *response.Date `json:"paymentDate,omitempty" swaggertype:"string"`
}

func newRecordResp(r payroll.Record) recordResp {
	resp := recordResp{
		ID:         r.ID,
		StaffID:    r.StaffID,
		StaffName:  r.StaffName,
		Department: r.Department,
		Month:      r.Month,
		BaseSalary: response.Money(r.BaseSalary),
		Bonus:      response.Money(r.Bonus),
		Deductions: response.Money(r.Deductions),
		NetPay:     response.Money(r.NetPay()),
		Status:     r.Status,
	}
	if r.PaymentDate != nil {
		d := response.Date(*r.PaymentDate)
		resp.PaymentDate = &d
	}
	return resp
}

type recordEnvelope struct {
	Record recordResp `json:"record"`
}

type summaryResp struct {
	TotalPayroll  response.Money `json:"totalPayroll" swaggertype:"number"`
	PendingAmount response.Money `json:"pendingAmount" swaggertype:"number"`
	PaidCount     int            `json:"paidCount"`
	PendingCount  int            `json:"pendingCount"`
}

func newSummaryResp(s payroll.Summary) summaryResp {
	return summaryResp{
		TotalPayroll:  response.Money(s.Total),
		PendingAmount: response.Money(s.PendingAmount),
		PaidCount:     s.PaidCount,
		PendingCount:  s.PendingCount,
	}
}

type listResp struct {
	Records []recordResp `json:"records"`
	Summary summaryResp  `json:"summary"`
}

func (h *handler) newListResp(out payroll.ListOutput) listResp {
	records := make([]recordResp, len(out.Records))
	for i, r := range out.Records {
		records[i] = newRecordResp(r)
	}
	return listResp{Records: records, Summary: newSummaryResp(out.Summary)}
}

type monthsResp struct {
	Months []string `json:"months"`
}
