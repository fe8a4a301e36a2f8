package services

import (
	"fmt"

	"github.com/sahilchouksey/edumanage-api/model"
)

// AttendanceStatistics is the read-time attendance rollup for one student.
// Percentage is rendered as a fixed two-decimal string ("80.00"), matching
// what the dashboard clients expect.
type AttendanceStatistics struct {
	TotalDays   int    `json:"totalDays"`
	PresentDays int    `json:"presentDays"`
	AbsentDays  int    `json:"absentDays"`
	Percentage  string `json:"percentage"`
}

// AttendanceSummary computes present/absent counts and the attendance
// percentage over a record set. A student with no records gets "0.00",
// never a division error.
func AttendanceSummary(records []model.Attendance) AttendanceStatistics {
	total := len(records)
	present := 0
	for _, r := range records {
		if r.Status == model.AttendancePresent {
			present++
		}
	}

	percentage := 0.0
	if total > 0 {
		percentage = model.RoundPercentage(float64(present) / float64(total) * 100)
	}

	return AttendanceStatistics{
		TotalDays:   total,
		PresentDays: present,
		AbsentDays:  total - present,
		Percentage:  fmt.Sprintf("%.2f", percentage),
	}
}

// FeesSummaryResult is the read-time fee rollup over a queried record set.
type FeesSummaryResult struct {
	TotalAmount   float64 `json:"totalAmount"`
	PaidAmount    float64 `json:"paidAmount"`
	PendingAmount float64 `json:"pendingAmount"`
}

// FeesSummary reduces a fee record set to its totals. Pending is the simple
// difference of the two sums across every record, not a status-filtered sum.
func FeesSummary(fees []model.Fees) FeesSummaryResult {
	var total, paid float64
	for _, f := range fees {
		total += f.Amount
		paid += f.PaidAmount
	}
	return FeesSummaryResult{
		TotalAmount:   total,
		PaidAmount:    paid,
		PendingAmount: total - paid,
	}
}

// SalarySummaryResult is the rollup returned with a teacher's salary history.
type SalarySummaryResult struct {
	TotalPaid    float64 `json:"totalPaid"`
	TotalPending float64 `json:"totalPending"`
	TotalRecords int     `json:"totalRecords"`
}

// SalarySummary sums net salaries by status over a record set.
func SalarySummary(salaries []model.Salary) SalarySummaryResult {
	out := SalarySummaryResult{TotalRecords: len(salaries)}
	for _, s := range salaries {
		switch s.Status {
		case model.SalaryStatusPaid:
			out.TotalPaid += s.NetSalary
		case model.SalaryStatusPending:
			out.TotalPending += s.NetSalary
		}
	}
	return out
}
