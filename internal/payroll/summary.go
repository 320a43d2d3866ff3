package payroll

import "github.com/shopspring/decimal"

// Summarize totals net pay across records and counts paid and pending ones.
// Processing records count toward Total only.
func Summarize(records []Record) Summary {
	s := Summary{Total: decimal.Zero, PendingAmount: decimal.Zero}
	for _, r := range records {
		net := r.NetPay()
		s.Total = s.Total.Add(net)
		switch r.Status {
		case StatusPending:
			s.PendingAmount = s.PendingAmount.Add(net)
			s.PendingCount++
		case StatusPaid:
			s.PaidCount++
		}
	}
	return s
}
