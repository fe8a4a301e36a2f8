package model

import (
	"time"
)

// Exam types
var ExamTypes = []string{"Mid Term", "End Semester", "Unit Test", "Final", "Quiz"}

// Exam represents a scheduled examination for a class
type Exam struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	ExamName     string    `gorm:"not null" json:"examName"`
	ExamType     string    `gorm:"type:varchar(30);not null" json:"examType"`
	Class        string    `gorm:"not null;index" json:"class"`
	Section      string    `gorm:"type:varchar(10)" json:"section,omitempty"`
	Subject      string    `gorm:"not null" json:"subject"`
	ExamDate     time.Time `gorm:"not null" json:"examDate"`
	StartTime    string    `gorm:"not null" json:"startTime"`
	EndTime      string    `gorm:"not null" json:"endTime"`
	Duration     int       `gorm:"not null" json:"duration"` // minutes
	TotalMarks   float64   `gorm:"not null" json:"totalMarks"`
	PassingMarks float64   `gorm:"not null" json:"passingMarks"`
	Room         string    `json:"room,omitempty"`
	AcademicYear string    `gorm:"not null" json:"academicYear"`
	Semester     string    `json:"semester,omitempty"`
	Instructions string    `gorm:"type:text" json:"instructions,omitempty"`
	Syllabus     string    `gorm:"type:text" json:"syllabus,omitempty"`
}

// IsValidExamType reports whether examType is one of the known exam types.
func IsValidExamType(examType string) bool {
	for _, t := range ExamTypes {
		if t == examType {
			return true
		}
	}
	return false
}
