package model

import (
	"time"

	"github.com/lib/pq"
)

// Event types and audience tags
var (
	EventTypes     = []string{"Academic", "Sports", "Cultural", "Holiday", "Meeting", "Other"}
	AudienceValues = []string{"All", "Students", "Teachers", "Parents", "Staff"}
)

// Event is a school event shown on dashboards. Inactive events are hidden
// from listings rather than deleted.
type Event struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	Title          string         `gorm:"not null" json:"title"`
	Description    string         `gorm:"type:text;not null" json:"description"`
	EventType      string         `gorm:"type:varchar(20);default:'Academic'" json:"eventType"`
	EventDate      time.Time      `gorm:"not null;index" json:"eventDate"`
	StartTime      string         `json:"startTime,omitempty"`
	EndTime        string         `json:"endTime,omitempty"`
	Venue          string         `json:"venue,omitempty"`
	TargetAudience pq.StringArray `gorm:"type:text[]" json:"targetAudience"`
	Organizer      string         `json:"organizer,omitempty"`
	ImageURL       string         `json:"imageUrl,omitempty"`
	IsActive       bool           `gorm:"default:true" json:"isActive"`
	CreatedByID    *uint          `json:"createdBy,omitempty"`

	CreatedBy *User `gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL" json:"-"`
}

// IsValidEventType reports whether eventType is a known event type.
func IsValidEventType(eventType string) bool {
	for _, t := range EventTypes {
		if t == eventType {
			return true
		}
	}
	return false
}

// IsValidAudience reports whether every tag in the audience list is known.
func IsValidAudience(audience []string) bool {
	for _, a := range audience {
		found := false
		for _, v := range AudienceValues {
			if a == v {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
