package services

import (
	"testing"

	"github.com/sahilchouksey/edumanage-api/model"
)

func records(statuses ...string) []model.Attendance {
	out := make([]model.Attendance, len(statuses))
	for i, s := range statuses {
		out[i] = model.Attendance{Status: s}
	}
	return out
}

func TestAttendanceSummary(t *testing.T) {
	in := records(
		"Present", "Present", "Present", "Present",
		"Present", "Present", "Present", "Present",
		"Absent", "Absent",
	)

	stats := AttendanceSummary(in)
	if stats.TotalDays != 10 {
		t.Errorf("TotalDays = %d, want 10", stats.TotalDays)
	}
	if stats.PresentDays != 8 {
		t.Errorf("PresentDays = %d, want 8", stats.PresentDays)
	}
	if stats.AbsentDays != 2 {
		t.Errorf("AbsentDays = %d, want 2", stats.AbsentDays)
	}
	if stats.Percentage != "80.00" {
		t.Errorf("Percentage = %q, want \"80.00\"", stats.Percentage)
	}
}

func TestAttendanceSummaryEmpty(t *testing.T) {
	stats := AttendanceSummary(nil)
	if stats.Percentage != "0.00" {
		t.Errorf("Percentage = %q, want \"0.00\"", stats.Percentage)
	}
	if stats.TotalDays != 0 || stats.PresentDays != 0 || stats.AbsentDays != 0 {
		t.Errorf("expected all-zero counts, got %+v", stats)
	}
}

func TestAttendanceSummaryCountsOnlyPresent(t *testing.T) {
	// Late and Excused are not Present for the percentage
	stats := AttendanceSummary(records("Present", "Late", "Excused", "Absent"))
	if stats.PresentDays != 1 {
		t.Errorf("PresentDays = %d, want 1", stats.PresentDays)
	}
	if stats.Percentage != "25.00" {
		t.Errorf("Percentage = %q, want \"25.00\"", stats.Percentage)
	}
}

func TestFeesSummary(t *testing.T) {
	in := []model.Fees{
		{Amount: 1000, PaidAmount: 1000, Status: model.FeeStatusPaid},
		{Amount: 1000, PaidAmount: 1000, Status: model.FeeStatusPaid},
		{Amount: 1000, PaidAmount: 1000, Status: model.FeeStatusPaid},
		{Amount: 500, PaidAmount: 0, Status: model.FeeStatusPending},
		{Amount: 500, PaidAmount: 0, Status: model.FeeStatusPending},
	}

	sum := FeesSummary(in)
	if sum.TotalAmount != 4000 {
		t.Errorf("TotalAmount = %v, want 4000", sum.TotalAmount)
	}
	if sum.PaidAmount != 3000 {
		t.Errorf("PaidAmount = %v, want 3000", sum.PaidAmount)
	}
	if sum.PendingAmount != 1000 {
		t.Errorf("PendingAmount = %v, want 1000", sum.PendingAmount)
	}
}

func TestFeesSummaryIgnoresStatus(t *testing.T) {
	// Pending is the arithmetic difference over every record, a partially
	// paid record contributes its unpaid remainder no matter its status.
	in := []model.Fees{
		{Amount: 1000, PaidAmount: 400, Status: model.FeeStatusPaid},
	}
	sum := FeesSummary(in)
	if sum.PendingAmount != 600 {
		t.Errorf("PendingAmount = %v, want 600", sum.PendingAmount)
	}
}

func TestSalarySummary(t *testing.T) {
	in := []model.Salary{
		{NetSalary: 50000, Status: model.SalaryStatusPaid},
		{NetSalary: 45000, Status: model.SalaryStatusPaid},
		{NetSalary: 48000, Status: model.SalaryStatusPending},
		{NetSalary: 30000, Status: model.SalaryStatusProcessing},
	}

	sum := SalarySummary(in)
	if sum.TotalPaid != 95000 {
		t.Errorf("TotalPaid = %v, want 95000", sum.TotalPaid)
	}
	if sum.TotalPending != 48000 {
		t.Errorf("TotalPending = %v, want 48000", sum.TotalPending)
	}
	if sum.TotalRecords != 4 {
		t.Errorf("TotalRecords = %d, want 4", sum.TotalRecords)
	}
}
