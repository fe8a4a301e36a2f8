package model

import (
	"time"
)

// Attendance statuses
const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
	AttendanceLate    = "Late"
	AttendanceExcused = "Excused"
)

// Attendance is one student's record for one calendar day. The compound
// unique index makes the store reject a second record for the same
// (student, date) pair, which also serializes concurrent duplicate writes.
type Attendance struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	StudentID  uint      `gorm:"not null;uniqueIndex:idx_attendance_student_date" json:"studentId"`
	Date       time.Time `gorm:"type:date;not null;uniqueIndex:idx_attendance_student_date" json:"date"`
	Status     string    `gorm:"type:varchar(20);not null" json:"status"` // Present, Absent, Late, Excused
	Subject    string    `json:"subject,omitempty"`
	Remarks    string    `json:"remarks,omitempty"`
	MarkedByID *uint     `json:"markedBy,omitempty"`

	Student  *User `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"student,omitempty"`
	MarkedBy *User `gorm:"foreignKey:MarkedByID;constraint:OnDelete:SET NULL" json:"-"`
}

// IsValidAttendanceStatus reports whether status is a known attendance status.
func IsValidAttendanceStatus(status string) bool {
	switch status {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceExcused:
		return true
	}
	return false
}

// NormalizeAttendanceDate truncates a timestamp to its UTC calendar day so
// the per-day uniqueness constraint compares dates, not instants.
func NormalizeAttendanceDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
