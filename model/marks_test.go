package model

import (
	"errors"
	"testing"
)

func TestGradeBoundaries(t *testing.T) {
	cases := []struct {
		percentage float64
		want       string
	}{
		{100, "A+"},
		{90, "A+"},
		{89.99, "A"},
		{80, "A"},
		{79.99, "B+"},
		{70, "B+"},
		{60, "B"},
		{50, "C"},
		{40, "D"},
		{39.99, "F"},
		{0, "F"},
	}

	for _, c := range cases {
		if got := GradeFor(c.percentage); got != c.want {
			t.Errorf("GradeFor(%v) = %q, want %q", c.percentage, got, c.want)
		}
	}
}

func TestNewMarksDerivesPercentageAndGrade(t *testing.T) {
	m, err := NewMarks(1, 1, "Mathematics", "Mid Term", 45, 50, nil)
	if err != nil {
		t.Fatalf("NewMarks: %v", err)
	}
	if m.Percentage != 90.00 {
		t.Errorf("Percentage = %v, want 90.00", m.Percentage)
	}
	if m.Grade != "A+" {
		t.Errorf("Grade = %q, want A+", m.Grade)
	}
}

func TestNewMarksRoundsToTwoDecimals(t *testing.T) {
	// 1/3 of 100 would otherwise carry a long tail
	m, err := NewMarks(1, 1, "Physics", "Quiz", 1, 3, nil)
	if err != nil {
		t.Fatalf("NewMarks: %v", err)
	}
	if m.Percentage != 33.33 {
		t.Errorf("Percentage = %v, want 33.33", m.Percentage)
	}
}

func TestNewMarksRejectsNonPositiveTotal(t *testing.T) {
	if _, err := NewMarks(1, 1, "Maths", "Final", 0, 0, nil); !errors.Is(err, ErrInvalidTotalMarks) {
		t.Errorf("err = %v, want ErrInvalidTotalMarks", err)
	}
}

func TestNewMarksRejectsOutOfRange(t *testing.T) {
	if _, err := NewMarks(1, 1, "Maths", "Final", 60, 50, nil); !errors.Is(err, ErrMarksOutOfRange) {
		t.Errorf("err = %v, want ErrMarksOutOfRange", err)
	}
	if _, err := NewMarks(1, 1, "Maths", "Final", -1, 50, nil); !errors.Is(err, ErrMarksOutOfRange) {
		t.Errorf("err = %v, want ErrMarksOutOfRange", err)
	}
}

func TestRecomputeRefreshesStaleGrade(t *testing.T) {
	m, err := NewMarks(1, 1, "Chemistry", "Unit Test", 30, 50, nil)
	if err != nil {
		t.Fatalf("NewMarks: %v", err)
	}
	if m.Grade != "B" {
		t.Fatalf("Grade = %q, want B", m.Grade)
	}

	// A correction raises the obtained marks; the grade must follow
	m.MarksObtained = 48
	if err := m.Recompute(); err != nil {
		t.Fatalf("Recompute: %v", err)
	}
	if m.Percentage != 96.00 {
		t.Errorf("Percentage = %v, want 96.00", m.Percentage)
	}
	if m.Grade != "A+" {
		t.Errorf("Grade = %q, want A+", m.Grade)
	}
}
