package exam

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/edumanage-api/model"
	"github.com/sahilchouksey/edumanage-api/utils/query"
	"github.com/sahilchouksey/edumanage-api/utils/response"
	"github.com/sahilchouksey/edumanage-api/utils/validation"
	"gorm.io/gorm"
)

// ExamHandler handles exam scheduling
type ExamHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewExamHandler creates a new exam handler
func NewExamHandler(db *gorm.DB) *ExamHandler {
	return &ExamHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateExamRequest represents an exam creation request
type CreateExamRequest struct {
	ExamName     string  `json:"examName" validate:"required,min=2,max=100"`
	ExamType     string  `json:"examType" validate:"required"`
	Class        string  `json:"class" validate:"required"`
	Section      string  `json:"section"`
	Subject      string  `json:"subject" validate:"required"`
	ExamDate     string  `json:"examDate" validate:"required"` // YYYY-MM-DD
	StartTime    string  `json:"startTime" validate:"required"`
	EndTime      string  `json:"endTime" validate:"required"`
	Duration     int     `json:"duration" validate:"required,gte=1"`
	TotalMarks   float64 `json:"totalMarks" validate:"required,gt=0"`
	PassingMarks float64 `json:"passingMarks" validate:"required,gte=0"`
	Room         string  `json:"room"`
	AcademicYear string  `json:"academicYear" validate:"required"`
	Semester     string  `json:"semester"`
	Instructions string  `json:"instructions"`
	Syllabus     string  `json:"syllabus"`
}

// UpdateExamRequest represents an exam update request
type UpdateExamRequest struct {
	ExamName     string   `json:"examName" validate:"omitempty,min=2,max=100"`
	ExamType     string   `json:"examType"`
	Class        string   `json:"class"`
	Section      string   `json:"section"`
	Subject      string   `json:"subject"`
	ExamDate     string   `json:"examDate"`
	StartTime    string   `json:"startTime"`
	EndTime      string   `json:"endTime"`
	Duration     int      `json:"duration" validate:"omitempty,gte=1"`
	TotalMarks   *float64 `json:"totalMarks" validate:"omitempty,gt=0"`
	PassingMarks *float64 `json:"passingMarks" validate:"omitempty,gte=0"`
	Room         string   `json:"room"`
	AcademicYear string   `json:"academicYear"`
	Semester     string   `json:"semester"`
	Instructions string   `json:"instructions"`
	Syllabus     string   `json:"syllabus"`
}

// GetExams lists exams, optionally filtered by class
func (h *ExamHandler) GetExams(c *fiber.Ctx) error {
	q := h.db.Model(&model.Exam{})

	if class := c.Query("class"); class != "" {
		q = q.Where("class = ?", class)
	}

	if offset, limit, paginated := query.Pagination(c); paginated {
		q = q.Offset(offset).Limit(limit)
	}

	var exams []model.Exam
	if err := q.Order("exam_date ASC").Find(&exams).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch exams")
	}

	return response.SuccessWithCount(c, exams, len(exams))
}

// GetExam returns one exam by id
func (h *ExamHandler) GetExam(c *fiber.Ctx) error {
	id, ok := query.UintParam(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid exam ID")
	}

	var exam model.Exam
	if err := h.db.First(&exam, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Exam not found")
		}
		return response.InternalServerError(c, "Failed to fetch exam")
	}

	return response.Success(c, exam)
}

// CreateExam schedules a new exam
func (h *ExamHandler) CreateExam(c *fiber.Ctx) error {
	var req CreateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(&req); err != nil {
		return response.BadRequest(c, validation.FormatValidationErrors(err))
	}

	if !model.IsValidExamType(req.ExamType) {
		return response.BadRequest(c, "Invalid exam type")
	}
	if req.PassingMarks > req.TotalMarks {
		return response.BadRequest(c, "Passing marks cannot exceed total marks")
	}

	examDate, err := time.Parse("2006-01-02", req.ExamDate)
	if err != nil {
		return response.BadRequest(c, "Exam date must be in YYYY-MM-DD format")
	}

	exam := model.Exam{
		ExamName:     validation.SanitizeString(req.ExamName),
		ExamType:     req.ExamType,
		Class:        req.Class,
		Section:      req.Section,
		Subject:      req.Subject,
		ExamDate:     examDate,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Duration:     req.Duration,
		TotalMarks:   req.TotalMarks,
		PassingMarks: req.PassingMarks,
		Room:         req.Room,
		AcademicYear: req.AcademicYear,
		Semester:     req.Semester,
		Instructions: req.Instructions,
		Syllabus:     req.Syllabus,
	}

	if err := h.db.Create(&exam).Error; err != nil {
		return response.InternalServerError(c, "Failed to create exam")
	}

	return response.Created(c, "Exam created successfully", exam)
}

// UpdateExam updates an exam
func (h *ExamHandler) UpdateExam(c *fiber.Ctx) error {
	id, ok := query.UintParam(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid exam ID")
	}

	var exam model.Exam
	if err := h.db.First(&exam, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Exam not found")
		}
		return response.InternalServerError(c, "Failed to fetch exam")
	}

	var req UpdateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(&req); err != nil {
		return response.BadRequest(c, validation.FormatValidationErrors(err))
	}

	if req.ExamName != "" {
		exam.ExamName = validation.SanitizeString(req.ExamName)
	}
	if req.ExamType != "" {
		if !model.IsValidExamType(req.ExamType) {
			return response.BadRequest(c, "Invalid exam type")
		}
		exam.ExamType = req.ExamType
	}
	if req.Class != "" {
		exam.Class = req.Class
	}
	if req.Section != "" {
		exam.Section = req.Section
	}
	if req.Subject != "" {
		exam.Subject = req.Subject
	}
	if req.ExamDate != "" {
		examDate, err := time.Parse("2006-01-02", req.ExamDate)
		if err != nil {
			return response.BadRequest(c, "Exam date must be in YYYY-MM-DD format")
		}
		exam.ExamDate = examDate
	}
	if req.StartTime != "" {
		exam.StartTime = req.StartTime
	}
	if req.EndTime != "" {
		exam.EndTime = req.EndTime
	}
	if req.Duration != 0 {
		exam.Duration = req.Duration
	}
	if req.TotalMarks != nil {
		exam.TotalMarks = *req.TotalMarks
	}
	if req.PassingMarks != nil {
		exam.PassingMarks = *req.PassingMarks
	}
	if exam.PassingMarks > exam.TotalMarks {
		return response.BadRequest(c, "Passing marks cannot exceed total marks")
	}
	if req.Room != "" {
		exam.Room = req.Room
	}
	if req.AcademicYear != "" {
		exam.AcademicYear = req.AcademicYear
	}
	if req.Semester != "" {
		exam.Semester = req.Semester
	}
	if req.Instructions != "" {
		exam.Instructions = req.Instructions
	}
	if req.Syllabus != "" {
		exam.Syllabus = req.Syllabus
	}

	if err := h.db.Save(&exam).Error; err != nil {
		return response.InternalServerError(c, "Failed to update exam")
	}

	return response.SuccessWithMessage(c, "Exam updated successfully", exam)
}

// DeleteExam removes an exam and, through cascade, its marks
func (h *ExamHandler) DeleteExam(c *fiber.Ctx) error {
	id, ok := query.UintParam(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid exam ID")
	}

	var exam model.Exam
	if err := h.db.First(&exam, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Exam not found")
		}
		return response.InternalServerError(c, "Failed to fetch exam")
	}

	if err := h.db.Delete(&exam).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete exam")
	}

	return response.SuccessWithMessage(c, "Exam deleted successfully", nil)
}
