package model

import (
	"time"
)

// Course represents a course offered to a class (e.g., "Mathematics, Class 10")
type Course struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	CourseName   string    `gorm:"not null" json:"courseName"`
	CourseCode   string    `gorm:"uniqueIndex;not null" json:"courseCode"` // stored uppercase
	Description  string    `gorm:"type:text" json:"description,omitempty"`
	Class        string    `gorm:"not null;index" json:"class"`
	Section      string    `gorm:"type:varchar(10)" json:"section,omitempty"`
	TeacherID    *uint     `gorm:"index" json:"teacherId,omitempty"`
	Credits      int       `gorm:"default:3" json:"credits"`
	Duration     string    `json:"duration,omitempty"`
	AcademicYear string    `gorm:"not null" json:"academicYear"`
	Semester     string    `json:"semester,omitempty"`
	Syllabus     string    `gorm:"type:text" json:"syllabus,omitempty"`
	IsActive     bool      `gorm:"default:true" json:"isActive"`

	// Weak reference: deleting the teacher leaves the course in place
	Teacher *User `gorm:"foreignKey:TeacherID;constraint:OnDelete:SET NULL" json:"teacher,omitempty"`
}
