package model

import (
	"time"
)

// Fee types and statuses
var (
	FeeTypes    = []string{"Tuition", "Exam", "Library", "Transport", "Sports", "Other"}
	FeeStatuses = []string{"Paid", "Pending", "Overdue", "Partial"}
)

const (
	FeeStatusPaid    = "Paid"
	FeeStatusPending = "Pending"
	FeeStatusOverdue = "Overdue"
	FeeStatusPartial = "Partial"
)

// Fees is a single fee obligation for a student. Status carries no enforced
// transition graph: any value may follow any other, matching how the office
// actually records corrections.
type Fees struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	StudentID     uint       `gorm:"not null;index" json:"studentId"`
	FeeType       string     `gorm:"type:varchar(20);not null" json:"feeType"`
	Amount        float64    `gorm:"not null" json:"amount"`
	DueDate       time.Time  `gorm:"not null" json:"dueDate"`
	Status        string     `gorm:"type:varchar(20);default:'Pending'" json:"status"`
	PaidAmount    float64    `gorm:"default:0" json:"paidAmount"`
	PaymentDate   *time.Time `json:"paymentDate,omitempty"`
	PaymentMethod string     `gorm:"type:varchar(20)" json:"paymentMethod,omitempty"` // Cash, Card, Online, Cheque
	TransactionID string     `json:"transactionId,omitempty"`
	Remarks       string     `json:"remarks,omitempty"`
	AcademicYear  string     `gorm:"not null" json:"academicYear"`
	Semester      string     `json:"semester,omitempty"`

	Student *User `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"student,omitempty"`
}

// IsValidFeeType reports whether feeType is a known fee type.
func IsValidFeeType(feeType string) bool {
	for _, t := range FeeTypes {
		if t == feeType {
			return true
		}
	}
	return false
}

// IsValidFeeStatus reports whether status is a known fee status.
func IsValidFeeStatus(status string) bool {
	for _, s := range FeeStatuses {
		if s == status {
			return true
		}
	}
	return false
}
