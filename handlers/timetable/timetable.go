package timetable

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/edumanage-api/model"
	"github.com/sahilchouksey/edumanage-api/utils/query"
	"github.com/sahilchouksey/edumanage-api/utils/response"
	"github.com/sahilchouksey/edumanage-api/utils/validation"
	"gorm.io/gorm"
)

// TimetableHandler handles class schedules
type TimetableHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewTimetableHandler creates a new timetable handler
func NewTimetableHandler(db *gorm.DB) *TimetableHandler {
	return &TimetableHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateTimetableRequest represents a period slot creation request
type CreateTimetableRequest struct {
	Class        string `json:"class" validate:"required"`
	Section      string `json:"section" validate:"required"`
	Day          string `json:"day" validate:"required"`
	Period       int    `json:"period" validate:"required,gte=1,lte=12"`
	StartTime    string `json:"startTime" validate:"required"`
	EndTime      string `json:"endTime" validate:"required"`
	Subject      string `json:"subject" validate:"required"`
	TeacherID    uint   `json:"teacherId" validate:"required"`
	Room         string `json:"room"`
	AcademicYear string `json:"academicYear" validate:"required"`
	Semester     string `json:"semester"`
}

// UpdateTimetableRequest represents a period slot update request
type UpdateTimetableRequest struct {
	Day          string `json:"day"`
	Period       int    `json:"period" validate:"omitempty,gte=1,lte=12"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Subject      string `json:"subject"`
	TeacherID    *uint  `json:"teacherId"`
	Room         string `json:"room"`
	AcademicYear string `json:"academicYear"`
	Semester     string `json:"semester"`
}

// AvailabilityResult is the advisory conflict probe response. Conflicts list
// the slots already assigned to the teacher at that day and period.
type AvailabilityResult struct {
	Available bool              `json:"available"`
	Conflicts []model.Timetable `json:"conflicts"`
}

// GetTimetable lists period slots, optionally filtered by class and section
func (h *TimetableHandler) GetTimetable(c *fiber.Ctx) error {
	q := h.db.Preload("Teacher")

	if class := c.Query("class"); class != "" {
		q = q.Where("class = ?", class)
	}
	if section := c.Query("section"); section != "" {
		q = q.Where("section = ?", section)
	}

	if offset, limit, paginated := query.Pagination(c); paginated {
		q = q.Offset(offset).Limit(limit)
	}

	var slots []model.Timetable
	if err := q.Order("day ASC, period ASC").Find(&slots).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch timetable")
	}

	return response.SuccessWithCount(c, slots, len(slots))
}

// GetTimetableEntry returns one period slot by id
func (h *TimetableHandler) GetTimetableEntry(c *fiber.Ctx) error {
	id, ok := query.UintParam(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid timetable ID")
	}

	var slot model.Timetable
	if err := h.db.Preload("Teacher").First(&slot, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Timetable entry not found")
		}
		return response.InternalServerError(c, "Failed to fetch timetable entry")
	}

	return response.Success(c, slot)
}

// CheckAvailability probes whether a teacher already has a slot at the given
// day and period. Advisory only: creation is never blocked on the answer.
func (h *TimetableHandler) CheckAvailability(c *fiber.Ctx) error {
	teacherIDStr := c.Query("teacherId")
	day := c.Query("day")
	periodStr := c.Query("period")

	if teacherIDStr == "" || day == "" || periodStr == "" {
		return response.BadRequest(c, "teacherId, day and period query parameters are required")
	}

	teacherID, err := strconv.ParseUint(teacherIDStr, 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid teacher ID")
	}
	period, err := strconv.Atoi(periodStr)
	if err != nil {
		return response.BadRequest(c, "Invalid period")
	}
	if !model.IsValidTimetableDay(day) {
		return response.BadRequest(c, "Invalid day")
	}

	var conflicts []model.Timetable
	if err := h.db.Where("teacher_id = ? AND day = ? AND period = ?",
		uint(teacherID), day, period).Find(&conflicts).Error; err != nil {
		return response.InternalServerError(c, "Failed to check availability")
	}

	return response.Success(c, AvailabilityResult{
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
	})
}

// CreateTimetableEntry creates a period slot
func (h *TimetableHandler) CreateTimetableEntry(c *fiber.Ctx) error {
	var req CreateTimetableRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(&req); err != nil {
		return response.BadRequest(c, validation.FormatValidationErrors(err))
	}

	if !model.IsValidTimetableDay(req.Day) {
		return response.BadRequest(c, "Day must be a school day, Monday through Saturday")
	}

	var teacher model.User
	if err := h.db.Where("role = ?", model.RoleTeacher).First(&teacher, req.TeacherID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Teacher not found")
		}
		return response.InternalServerError(c, "Failed to fetch teacher")
	}

	slot := model.Timetable{
		Class:        req.Class,
		Section:      req.Section,
		Day:          req.Day,
		Period:       req.Period,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Subject:      req.Subject,
		TeacherID:    req.TeacherID,
		Room:         req.Room,
		AcademicYear: req.AcademicYear,
		Semester:     req.Semester,
	}

	if err := h.db.Create(&slot).Error; err != nil {
		return response.InternalServerError(c, "Failed to create timetable entry")
	}

	return response.Created(c, "Timetable entry created successfully", slot)
}

// UpdateTimetableEntry updates a period slot
func (h *TimetableHandler) UpdateTimetableEntry(c *fiber.Ctx) error {
	id, ok := query.UintParam(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid timetable ID")
	}

	var slot model.Timetable
	if err := h.db.First(&slot, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Timetable entry not found")
		}
		return response.InternalServerError(c, "Failed to fetch timetable entry")
	}

	var req UpdateTimetableRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(&req); err != nil {
		return response.BadRequest(c, validation.FormatValidationErrors(err))
	}

	if req.Day != "" {
		if !model.IsValidTimetableDay(req.Day) {
			return response.BadRequest(c, "Day must be a school day, Monday through Saturday")
		}
		slot.Day = req.Day
	}
	if req.Period != 0 {
		slot.Period = req.Period
	}
	if req.StartTime != "" {
		slot.StartTime = req.StartTime
	}
	if req.EndTime != "" {
		slot.EndTime = req.EndTime
	}
	if req.Subject != "" {
		slot.Subject = req.Subject
	}
	if req.TeacherID != nil {
		var teacher model.User
		if err := h.db.Where("role = ?", model.RoleTeacher).First(&teacher, *req.TeacherID).Error; err != nil {
			return response.BadRequest(c, "Teacher not found")
		}
		slot.TeacherID = *req.TeacherID
	}
	if req.Room != "" {
		slot.Room = req.Room
	}
	if req.AcademicYear != "" {
		slot.AcademicYear = req.AcademicYear
	}
	if req.Semester != "" {
		slot.Semester = req.Semester
	}

	if err := h.db.Save(&slot).Error; err != nil {
		return response.InternalServerError(c, "Failed to update timetable entry")
	}

	return response.SuccessWithMessage(c, "Timetable entry updated successfully", slot)
}

// DeleteTimetableEntry removes a period slot
func (h *TimetableHandler) DeleteTimetableEntry(c *fiber.Ctx) error {
	id, ok := query.UintParam(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid timetable ID")
	}

	var slot model.Timetable
	if err := h.db.First(&slot, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Timetable entry not found")
		}
		return response.InternalServerError(c, "Failed to fetch timetable entry")
	}

	if err := h.db.Delete(&slot).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete timetable entry")
	}

	return response.SuccessWithMessage(c, "Timetable entry deleted successfully", nil)
}
