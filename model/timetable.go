package model

import (
	"time"
)

// School days, Monday through Saturday
var TimetableDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// Timetable is one period slot in a class schedule. Teacher double-booking
// across (teacher, day, period) is not rejected on write; the availability
// endpoint lets clients probe for conflicts before saving.
type Timetable struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	Class        string    `gorm:"not null;index" json:"class"`
	Section      string    `gorm:"not null;index" json:"section"`
	Day          string    `gorm:"type:varchar(10);not null" json:"day"`
	Period       int       `gorm:"not null" json:"period"`
	StartTime    string    `gorm:"not null" json:"startTime"`
	EndTime      string    `gorm:"not null" json:"endTime"`
	Subject      string    `gorm:"not null" json:"subject"`
	TeacherID    uint      `gorm:"not null;index" json:"teacherId"`
	Room         string    `json:"room,omitempty"`
	AcademicYear string    `gorm:"not null" json:"academicYear"`
	Semester     string    `json:"semester,omitempty"`

	Teacher *User `gorm:"foreignKey:TeacherID;constraint:OnDelete:CASCADE" json:"teacher,omitempty"`
}

// IsValidTimetableDay reports whether day is a school day.
func IsValidTimetableDay(day string) bool {
	for _, d := range TimetableDays {
		if d == day {
			return true
		}
	}
	return false
}
