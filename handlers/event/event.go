package event

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"github.com/sahilchouksey/edumanage-api/model"
	"github.com/sahilchouksey/edumanage-api/services/storage"
	"github.com/sahilchouksey/edumanage-api/utils/middleware"
	"github.com/sahilchouksey/edumanage-api/utils/query"
	"github.com/sahilchouksey/edumanage-api/utils/response"
	"github.com/sahilchouksey/edumanage-api/utils/validation"
	"gorm.io/gorm"
)

// EventHandler handles school events and their images
type EventHandler struct {
	db        *gorm.DB
	validator *validation.Validator
	spaces    *storage.SpacesClient // nil when object storage is not configured
}

// NewEventHandler creates a new event handler
func NewEventHandler(db *gorm.DB, spaces *storage.SpacesClient) *EventHandler {
	return &EventHandler{
		db:        db,
		validator: validation.NewValidator(),
		spaces:    spaces,
	}
}

// CreateEventRequest represents an event creation request
type CreateEventRequest struct {
	Title          string   `json:"title" validate:"required,min=2,max=200"`
	Description    string   `json:"description" validate:"required"`
	EventType      string   `json:"eventType"`
	EventDate      string   `json:"eventDate" validate:"required"` // YYYY-MM-DD
	StartTime      string   `json:"startTime"`
	EndTime        string   `json:"endTime"`
	Venue          string   `json:"venue"`
	TargetAudience []string `json:"targetAudience"`
	Organizer      string   `json:"organizer"`
}

// UpdateEventRequest represents an event update request
type UpdateEventRequest struct {
	Title          string   `json:"title" validate:"omitempty,min=2,max=200"`
	Description    string   `json:"description"`
	EventType      string   `json:"eventType"`
	EventDate      string   `json:"eventDate"`
	StartTime      string   `json:"startTime"`
	EndTime        string   `json:"endTime"`
	Venue          string   `json:"venue"`
	TargetAudience []string `json:"targetAudience"`
	Organizer      string   `json:"organizer"`
	IsActive       *bool    `json:"isActive"`
}

// GetEvents lists active events, upcoming first
func (h *EventHandler) GetEvents(c *fiber.Ctx) error {
	q := h.db.Where("is_active = ?", true)

	if eventType := c.Query("eventType"); eventType != "" {
		q = q.Where("event_type = ?", eventType)
	}

	if offset, limit, paginated := query.Pagination(c); paginated {
		q = q.Offset(offset).Limit(limit)
	}

	var events []model.Event
	if err := q.Order("event_date ASC").Find(&events).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch events")
	}

	return response.SuccessWithCount(c, events, len(events))
}

// GetEvent returns one event by id
func (h *EventHandler) GetEvent(c *fiber.Ctx) error {
	id, ok := query.UintParam(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid event ID")
	}

	var event model.Event
	if err := h.db.First(&event, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Event not found")
		}
		return response.InternalServerError(c, "Failed to fetch event")
	}

	return response.Success(c, event)
}

// CreateEvent creates a school event
func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var req CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(&req); err != nil {
		return response.BadRequest(c, validation.FormatValidationErrors(err))
	}

	eventType := req.EventType
	if eventType == "" {
		eventType = "Academic"
	}
	if !model.IsValidEventType(eventType) {
		return response.BadRequest(c, "Invalid event type")
	}

	audience := req.TargetAudience
	if len(audience) == 0 {
		audience = []string{"All"}
	}
	if !model.IsValidAudience(audience) {
		return response.BadRequest(c, "Invalid target audience")
	}

	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		return response.BadRequest(c, "Event date must be in YYYY-MM-DD format")
	}

	callerID, _ := middleware.GetUserID(c)

	event := model.Event{
		Title:          validation.SanitizeString(req.Title),
		Description:    req.Description,
		EventType:      eventType,
		EventDate:      eventDate,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Venue:          req.Venue,
		TargetAudience: pq.StringArray(audience),
		Organizer:      req.Organizer,
		IsActive:       true,
		CreatedByID:    &callerID,
	}

	if err := h.db.Create(&event).Error; err != nil {
		return response.InternalServerError(c, "Failed to create event")
	}

	return response.Created(c, "Event created successfully", event)
}

// UpdateEvent updates an event
func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	id, ok := query.UintParam(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid event ID")
	}

	var event model.Event
	if err := h.db.First(&event, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Event not found")
		}
		return response.InternalServerError(c, "Failed to fetch event")
	}

	var req UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(&req); err != nil {
		return response.BadRequest(c, validation.FormatValidationErrors(err))
	}

	if req.Title != "" {
		event.Title = validation.SanitizeString(req.Title)
	}
	if req.Description != "" {
		event.Description = req.Description
	}
	if req.EventType != "" {
		if !model.IsValidEventType(req.EventType) {
			return response.BadRequest(c, "Invalid event type")
		}
		event.EventType = req.EventType
	}
	if req.EventDate != "" {
		eventDate, err := time.Parse("2006-01-02", req.EventDate)
		if err != nil {
			return response.BadRequest(c, "Event date must be in YYYY-MM-DD format")
		}
		event.EventDate = eventDate
	}
	if req.StartTime != "" {
		event.StartTime = req.StartTime
	}
	if req.EndTime != "" {
		event.EndTime = req.EndTime
	}
	if req.Venue != "" {
		event.Venue = req.Venue
	}
	if len(req.TargetAudience) > 0 {
		if !model.IsValidAudience(req.TargetAudience) {
			return response.BadRequest(c, "Invalid target audience")
		}
		event.TargetAudience = pq.StringArray(req.TargetAudience)
	}
	if req.Organizer != "" {
		event.Organizer = req.Organizer
	}
	if req.IsActive != nil {
		event.IsActive = *req.IsActive
	}

	if err := h.db.Save(&event).Error; err != nil {
		return response.InternalServerError(c, "Failed to update event")
	}

	return response.SuccessWithMessage(c, "Event updated successfully", event)
}

// UploadEventImage accepts a multipart image, stores it in object storage
// and sets the event's image URL
func (h *EventHandler) UploadEventImage(c *fiber.Ctx) error {
	if h.spaces == nil {
		return response.InternalServerError(c, "Image storage is not configured")
	}

	id, ok := query.UintParam(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid event ID")
	}

	var event model.Event
	if err := h.db.First(&event, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Event not found")
		}
		return response.InternalServerError(c, "Failed to fetch event")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "Image file is required")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	switch contentType {
	case "image/jpeg", "image/png", "image/gif", "image/webp":
	default:
		return response.BadRequest(c, "Image must be JPEG, PNG, GIF or WebP")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.InternalServerError(c, "Failed to read image")
	}
	defer file.Close()

	url, err := h.spaces.UploadEventImage(c.Context(), fileHeader.Filename, file, contentType)
	if err != nil {
		return response.InternalServerError(c, "Failed to upload image")
	}

	event.ImageURL = url
	if err := h.db.Save(&event).Error; err != nil {
		return response.InternalServerError(c, "Failed to save event image")
	}

	return response.SuccessWithMessage(c, "Event image uploaded successfully", event)
}

// DeleteEvent removes an event
func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	id, ok := query.UintParam(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid event ID")
	}

	var event model.Event
	if err := h.db.First(&event, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Event not found")
		}
		return response.InternalServerError(c, "Failed to fetch event")
	}

	if err := h.db.Delete(&event).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete event")
	}

	return response.SuccessWithMessage(c, "Event deleted successfully", nil)
}
