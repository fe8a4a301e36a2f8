package model

import (
	"time"
)

// Salary statuses
const (
	SalaryStatusPending    = "Pending"
	SalaryStatusPaid       = "Paid"
	SalaryStatusProcessing = "Processing"
)

// Salary is one teacher's pay record for a month. NetSalary is derived; the
// compound unique index rejects a second record for the same
// (teacher, month, year) tuple.
type Salary struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	TeacherID     uint       `gorm:"not null;uniqueIndex:idx_salary_teacher_month_year" json:"teacherId"`
	Month         string     `gorm:"type:varchar(20);not null;uniqueIndex:idx_salary_teacher_month_year" json:"month"`
	Year          int        `gorm:"not null;uniqueIndex:idx_salary_teacher_month_year" json:"year"`
	BasicSalary   float64    `gorm:"not null" json:"basicSalary"`
	Allowances    float64    `gorm:"default:0" json:"allowances"`
	Deductions    float64    `gorm:"default:0" json:"deductions"`
	NetSalary     float64    `json:"netSalary"`
	Status        string     `gorm:"type:varchar(20);default:'Pending'" json:"status"` // Pending, Paid, Processing
	PaymentDate   *time.Time `json:"paymentDate,omitempty"`
	PaymentMethod string     `gorm:"type:varchar(20)" json:"paymentMethod,omitempty"` // Bank Transfer, Cash, Cheque
	TransactionID string     `json:"transactionId,omitempty"`
	Remarks       string     `json:"remarks,omitempty"`
	ProcessedByID *uint      `json:"processedBy,omitempty"`

	Teacher     *User `gorm:"foreignKey:TeacherID;constraint:OnDelete:CASCADE" json:"teacher,omitempty"`
	ProcessedBy *User `gorm:"foreignKey:ProcessedByID;constraint:OnDelete:SET NULL" json:"-"`
}

// NewSalary builds a salary record with the net amount computed. A negative
// net (deductions exceeding pay) is stored as-is.
func NewSalary(teacherID uint, month string, year int, basic, allowances, deductions float64, processedBy *uint) *Salary {
	s := &Salary{
		TeacherID:     teacherID,
		Month:         month,
		Year:          year,
		BasicSalary:   basic,
		Allowances:    allowances,
		Deductions:    deductions,
		Status:        SalaryStatusPending,
		ProcessedByID: processedBy,
	}
	s.Recompute()
	return s
}

// Recompute refreshes the derived net salary. Runs on create and update.
func (s *Salary) Recompute() {
	s.NetSalary = s.BasicSalary + s.Allowances - s.Deductions
}

// IsValidSalaryStatus reports whether status is a known salary status.
func IsValidSalaryStatus(status string) bool {
	switch status {
	case SalaryStatusPending, SalaryStatusPaid, SalaryStatusProcessing:
		return true
	}
	return false
}
