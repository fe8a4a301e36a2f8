package attendance

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/edumanage-api/database"
	"github.com/sahilchouksey/edumanage-api/model"
	"github.com/sahilchouksey/edumanage-api/services"
	"github.com/sahilchouksey/edumanage-api/utils/middleware"
	"github.com/sahilchouksey/edumanage-api/utils/query"
	"github.com/sahilchouksey/edumanage-api/utils/response"
	"github.com/sahilchouksey/edumanage-api/utils/validation"
	"gorm.io/gorm"
)

// AttendanceHandler handles attendance marking and queries
type AttendanceHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(db *gorm.DB) *AttendanceHandler {
	return &AttendanceHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// MarkAttendanceRequest represents an attendance marking request
type MarkAttendanceRequest struct {
	StudentID uint   `json:"studentId" validate:"required"`
	Date      string `json:"date" validate:"required"` // YYYY-MM-DD
	Status    string `json:"status" validate:"required"`
	Subject   string `json:"subject"`
	Remarks   string `json:"remarks"`
}

// UpdateAttendanceRequest represents an attendance correction request
type UpdateAttendanceRequest struct {
	Status  string `json:"status"`
	Subject string `json:"subject"`
	Remarks string `json:"remarks"`
}

// GetAttendance lists attendance records, optionally filtered by date range
func (h *AttendanceHandler) GetAttendance(c *fiber.Ctx) error {
	q := h.db.Preload("Student")

	if from := c.Query("from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			q = q.Where("date >= ?", model.NormalizeAttendanceDate(t))
		}
	}
	if to := c.Query("to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			q = q.Where("date <= ?", model.NormalizeAttendanceDate(t))
		}
	}

	if offset, limit, paginated := query.Pagination(c); paginated {
		q = q.Offset(offset).Limit(limit)
	}

	var records []model.Attendance
	if err := q.Order("date DESC").Find(&records).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch attendance records")
	}

	return response.SuccessWithCount(c, records, len(records))
}

// GetStudentAttendance returns one student's records plus their attendance
// statistics. Students may only fetch their own.
func (h *AttendanceHandler) GetStudentAttendance(c *fiber.Ctx) error {
	studentID, ok := query.UintParam(c, "studentId")
	if !ok {
		return response.BadRequest(c, "Invalid student ID")
	}

	role, _ := middleware.GetUserRole(c)
	callerID, _ := middleware.GetUserID(c)
	if role == model.RoleStudent && callerID != studentID {
		return response.Forbidden(c, "Not authorized to view another student's attendance")
	}

	var student model.User
	if err := h.db.Where("role = ?", model.RoleStudent).First(&student, studentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Student not found")
		}
		return response.InternalServerError(c, "Failed to fetch student")
	}

	var records []model.Attendance
	if err := h.db.Where("student_id = ?", studentID).Order("date DESC").Find(&records).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch attendance records")
	}

	return response.SuccessWithStatistics(c, records, services.AttendanceSummary(records))
}

// MarkAttendance records one student's attendance for one day. A second
// record for the same day is rejected, concurrent writers included.
func (h *AttendanceHandler) MarkAttendance(c *fiber.Ctx) error {
	var req MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(&req); err != nil {
		return response.BadRequest(c, validation.FormatValidationErrors(err))
	}

	if !model.IsValidAttendanceStatus(req.Status) {
		return response.BadRequest(c, "Status must be one of: Present, Absent, Late, Excused")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return response.BadRequest(c, "Date must be in YYYY-MM-DD format")
	}

	var student model.User
	if err := h.db.Where("role = ?", model.RoleStudent).First(&student, req.StudentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Student not found")
		}
		return response.InternalServerError(c, "Failed to fetch student")
	}

	callerID, _ := middleware.GetUserID(c)

	record := model.Attendance{
		StudentID:  req.StudentID,
		Date:       model.NormalizeAttendanceDate(date),
		Status:     req.Status,
		Subject:    req.Subject,
		Remarks:    req.Remarks,
		MarkedByID: &callerID,
	}

	if err := h.db.Create(&record).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return response.Duplicate(c, "Attendance already marked for this student on this date")
		}
		return response.InternalServerError(c, "Failed to mark attendance")
	}

	return response.Created(c, "Attendance marked successfully", record)
}

// UpdateAttendance corrects an existing record. Student and date are fixed;
// corrections change status, subject or remarks only.
func (h *AttendanceHandler) UpdateAttendance(c *fiber.Ctx) error {
	id, ok := query.UintParam(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid attendance ID")
	}

	var record model.Attendance
	if err := h.db.First(&record, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Attendance record not found")
		}
		return response.InternalServerError(c, "Failed to fetch attendance record")
	}

	var req UpdateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Status != "" {
		if !model.IsValidAttendanceStatus(req.Status) {
			return response.BadRequest(c, "Status must be one of: Present, Absent, Late, Excused")
		}
		record.Status = req.Status
	}
	if req.Subject != "" {
		record.Subject = req.Subject
	}
	if req.Remarks != "" {
		record.Remarks = req.Remarks
	}

	if err := h.db.Save(&record).Error; err != nil {
		return response.InternalServerError(c, "Failed to update attendance record")
	}

	return response.SuccessWithMessage(c, "Attendance updated successfully", record)
}

// DeleteAttendance removes an attendance record
func (h *AttendanceHandler) DeleteAttendance(c *fiber.Ctx) error {
	id, ok := query.UintParam(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid attendance ID")
	}

	var record model.Attendance
	if err := h.db.First(&record, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Attendance record not found")
		}
		return response.InternalServerError(c, "Failed to fetch attendance record")
	}

	if err := h.db.Delete(&record).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete attendance record")
	}

	return response.SuccessWithMessage(c, "Attendance deleted successfully", nil)
}
