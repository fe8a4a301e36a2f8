package model

import (
	"time"
)

// User roles
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// User represents a registered user: an admin, a teacher or a student
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`                              // Never expose password in JSON
	Role         string    `gorm:"type:varchar(20);default:'student'" json:"role"` // admin, teacher, student
	RollNo       string    `gorm:"type:varchar(50)" json:"rollNo,omitempty"`       // students only
	Class        string    `gorm:"type:varchar(50);index" json:"class,omitempty"`
	Section      string    `gorm:"type:varchar(10);index" json:"section,omitempty"`
	Phone        string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Address      string    `gorm:"type:text" json:"address,omitempty"`
	IsActive     bool      `gorm:"default:true" json:"isActive"`
}

// IsValidRole reports whether role is one of the three known roles.
func IsValidRole(role string) bool {
	return role == RoleAdmin || role == RoleTeacher || role == RoleStudent
}
