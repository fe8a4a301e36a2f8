package model

import (
	"errors"
	"math"
	"time"
)

var (
	// ErrInvalidTotalMarks is returned when a marks record would divide by a
	// non-positive total.
	ErrInvalidTotalMarks = errors.New("totalMarks must be greater than zero")
	// ErrMarksOutOfRange is returned when marksObtained falls outside [0, totalMarks].
	ErrMarksOutOfRange = errors.New("marksObtained must be between 0 and totalMarks")
)

// Marks stores the result a student obtained in one exam. Percentage and
// grade are derived fields: they are computed by NewMarks / Recompute and
// never accepted from the caller.
type Marks struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	StudentID     uint      `gorm:"not null;index" json:"studentId"`
	ExamID        uint      `gorm:"not null;index" json:"examId"`
	Subject       string    `gorm:"not null" json:"subject"`
	ExamType      string    `json:"examType,omitempty"`
	MarksObtained float64   `gorm:"not null" json:"marksObtained"`
	TotalMarks    float64   `gorm:"not null" json:"totalMarks"`
	Percentage    float64   `json:"percentage"`
	Grade         string    `gorm:"type:varchar(2)" json:"grade"`
	Remarks       string    `json:"remarks,omitempty"`
	EnteredByID   *uint     `json:"enteredBy,omitempty"`

	Student   *User `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"student,omitempty"`
	Exam      *Exam `gorm:"foreignKey:ExamID;constraint:OnDelete:CASCADE" json:"exam,omitempty"`
	EnteredBy *User `gorm:"foreignKey:EnteredByID;constraint:OnDelete:SET NULL" json:"-"`
}

// NewMarks builds a marks record with its derived fields computed.
func NewMarks(studentID, examID uint, subject, examType string, marksObtained, totalMarks float64, enteredBy *uint) (*Marks, error) {
	m := &Marks{
		StudentID:     studentID,
		ExamID:        examID,
		Subject:       subject,
		ExamType:      examType,
		MarksObtained: marksObtained,
		TotalMarks:    totalMarks,
		EnteredByID:   enteredBy,
	}
	if err := m.Recompute(); err != nil {
		return nil, err
	}
	return m, nil
}

// Recompute refreshes percentage and grade from the stored marks. It runs on
// create and on every update so the derived fields can never go stale.
func (m *Marks) Recompute() error {
	if m.TotalMarks <= 0 {
		return ErrInvalidTotalMarks
	}
	if m.MarksObtained < 0 || m.MarksObtained > m.TotalMarks {
		return ErrMarksOutOfRange
	}
	m.Percentage = RoundPercentage(m.MarksObtained / m.TotalMarks * 100)
	m.Grade = GradeFor(m.Percentage)
	return nil
}

// RoundPercentage rounds to two decimal places.
func RoundPercentage(p float64) float64 {
	return math.Round(p*100) / 100
}

// GradeFor maps a percentage to a letter grade. Thresholds are evaluated
// high to low, first match wins.
func GradeFor(percentage float64) string {
	switch {
	case percentage >= 90:
		return "A+"
	case percentage >= 80:
		return "A"
	case percentage >= 70:
		return "B+"
	case percentage >= 60:
		return "B"
	case percentage >= 50:
		return "C"
	case percentage >= 40:
		return "D"
	default:
		return "F"
	}
}
