package model

import "testing"

func TestNewSalaryComputesNet(t *testing.T) {
	s := NewSalary(1, "January", 2025, 50000, 5000, 2000, nil)
	if s.NetSalary != 53000 {
		t.Errorf("NetSalary = %v, want 53000", s.NetSalary)
	}
	if s.Status != SalaryStatusPending {
		t.Errorf("Status = %q, want Pending", s.Status)
	}
}

func TestNegativeNetSalaryAllowed(t *testing.T) {
	s := NewSalary(1, "February", 2025, 1000, 0, 5000, nil)
	if s.NetSalary != -4000 {
		t.Errorf("NetSalary = %v, want -4000", s.NetSalary)
	}
}

func TestSalaryRecomputeAfterCorrection(t *testing.T) {
	s := NewSalary(1, "March", 2025, 40000, 0, 0, nil)
	s.Deductions = 1500
	s.Recompute()
	if s.NetSalary != 38500 {
		t.Errorf("NetSalary = %v, want 38500", s.NetSalary)
	}
}
