package marks

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/edumanage-api/model"
	"github.com/sahilchouksey/edumanage-api/utils/middleware"
	"github.com/sahilchouksey/edumanage-api/utils/query"
	"github.com/sahilchouksey/edumanage-api/utils/response"
	"github.com/sahilchouksey/edumanage-api/utils/validation"
	"gorm.io/gorm"
)

// MarksHandler handles exam result entry and queries
type MarksHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewMarksHandler creates a new marks handler
func NewMarksHandler(db *gorm.DB) *MarksHandler {
	return &MarksHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// EnterMarksRequest represents a marks entry request. Percentage and grade
// never appear here: the server derives them.
type EnterMarksRequest struct {
	StudentID     uint    `json:"studentId" validate:"required"`
	ExamID        uint    `json:"examId" validate:"required"`
	Subject       string  `json:"subject" validate:"required"`
	ExamType      string  `json:"examType"`
	MarksObtained float64 `json:"marksObtained" validate:"gte=0"`
	TotalMarks    float64 `json:"totalMarks" validate:"required,gt=0"`
	Remarks       string  `json:"remarks"`
}

// UpdateMarksRequest represents a marks correction request
type UpdateMarksRequest struct {
	MarksObtained *float64 `json:"marksObtained" validate:"omitempty,gte=0"`
	TotalMarks    *float64 `json:"totalMarks" validate:"omitempty,gt=0"`
	Remarks       string   `json:"remarks"`
}

// GetMarks lists marks records, optionally filtered by exam
func (h *MarksHandler) GetMarks(c *fiber.Ctx) error {
	q := h.db.Preload("Student").Preload("Exam")

	if examID := c.Query("examId"); examID != "" {
		q = q.Where("exam_id = ?", examID)
	}

	if offset, limit, paginated := query.Pagination(c); paginated {
		q = q.Offset(offset).Limit(limit)
	}

	var records []model.Marks
	if err := q.Order("created_at DESC").Find(&records).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch marks")
	}

	return response.SuccessWithCount(c, records, len(records))
}

// GetStudentMarks returns one student's marks history. Students may only
// fetch their own.
func (h *MarksHandler) GetStudentMarks(c *fiber.Ctx) error {
	studentID, ok := query.UintParam(c, "studentId")
	if !ok {
		return response.BadRequest(c, "Invalid student ID")
	}

	role, _ := middleware.GetUserRole(c)
	callerID, _ := middleware.GetUserID(c)
	if role == model.RoleStudent && callerID != studentID {
		return response.Forbidden(c, "Not authorized to view another student's marks")
	}

	var student model.User
	if err := h.db.Where("role = ?", model.RoleStudent).First(&student, studentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Student not found")
		}
		return response.InternalServerError(c, "Failed to fetch student")
	}

	var records []model.Marks
	if err := h.db.Preload("Exam").Where("student_id = ?", studentID).
		Order("created_at DESC").Find(&records).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch marks")
	}

	return response.SuccessWithCount(c, records, len(records))
}

// EnterMarks records a student's result for an exam with the percentage and
// grade derived server-side
func (h *MarksHandler) EnterMarks(c *fiber.Ctx) error {
	var req EnterMarksRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(&req); err != nil {
		return response.BadRequest(c, validation.FormatValidationErrors(err))
	}

	var student model.User
	if err := h.db.Where("role = ?", model.RoleStudent).First(&student, req.StudentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Student not found")
		}
		return response.InternalServerError(c, "Failed to fetch student")
	}

	var exam model.Exam
	if err := h.db.First(&exam, req.ExamID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Exam not found")
		}
		return response.InternalServerError(c, "Failed to fetch exam")
	}

	callerID, _ := middleware.GetUserID(c)

	record, err := model.NewMarks(req.StudentID, req.ExamID, req.Subject, req.ExamType,
		req.MarksObtained, req.TotalMarks, &callerID)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}
	record.Remarks = req.Remarks

	if err := h.db.Create(record).Error; err != nil {
		return response.InternalServerError(c, "Failed to enter marks")
	}

	return response.Created(c, "Marks entered successfully", record)
}

// UpdateMarks corrects a marks record and re-derives percentage and grade
func (h *MarksHandler) UpdateMarks(c *fiber.Ctx) error {
	id, ok := query.UintParam(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid marks ID")
	}

	var record model.Marks
	if err := h.db.First(&record, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Marks record not found")
		}
		return response.InternalServerError(c, "Failed to fetch marks record")
	}

	var req UpdateMarksRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(&req); err != nil {
		return response.BadRequest(c, validation.FormatValidationErrors(err))
	}

	if req.MarksObtained != nil {
		record.MarksObtained = *req.MarksObtained
	}
	if req.TotalMarks != nil {
		record.TotalMarks = *req.TotalMarks
	}
	if req.Remarks != "" {
		record.Remarks = req.Remarks
	}

	if err := record.Recompute(); err != nil {
		if errors.Is(err, model.ErrInvalidTotalMarks) || errors.Is(err, model.ErrMarksOutOfRange) {
			return response.BadRequest(c, err.Error())
		}
		return response.InternalServerError(c, "Failed to update marks")
	}

	if err := h.db.Save(&record).Error; err != nil {
		return response.InternalServerError(c, "Failed to update marks")
	}

	return response.SuccessWithMessage(c, "Marks updated successfully", record)
}

// DeleteMarks removes a marks record
func (h *MarksHandler) DeleteMarks(c *fiber.Ctx) error {
	id, ok := query.UintParam(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid marks ID")
	}

	var record model.Marks
	if err := h.db.First(&record, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Marks record not found")
		}
		return response.InternalServerError(c, "Failed to fetch marks record")
	}

	if err := h.db.Delete(&record).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete marks record")
	}

	return response.SuccessWithMessage(c, "Marks deleted successfully", nil)
}
