package course

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/edumanage-api/database"
	"github.com/sahilchouksey/edumanage-api/model"
	"github.com/sahilchouksey/edumanage-api/utils/query"
	"github.com/sahilchouksey/edumanage-api/utils/response"
	"github.com/sahilchouksey/edumanage-api/utils/validation"
	"gorm.io/gorm"
)

// CourseHandler handles course management
type CourseHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(db *gorm.DB) *CourseHandler {
	return &CourseHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateCourseRequest represents a course creation request
type CreateCourseRequest struct {
	CourseName   string `json:"courseName" validate:"required,min=2,max=100"`
	CourseCode   string `json:"courseCode" validate:"required,min=2,max=20"`
	Description  string `json:"description"`
	Class        string `json:"class" validate:"required"`
	Section      string `json:"section"`
	TeacherID    *uint  `json:"teacherId"`
	Credits      int    `json:"credits" validate:"omitempty,gte=1,lte=10"`
	Duration     string `json:"duration"`
	AcademicYear string `json:"academicYear" validate:"required"`
	Semester     string `json:"semester"`
	Syllabus     string `json:"syllabus"`
}

// UpdateCourseRequest represents a course update request
type UpdateCourseRequest struct {
	CourseName   string `json:"courseName" validate:"omitempty,min=2,max=100"`
	Description  string `json:"description"`
	Class        string `json:"class"`
	Section      string `json:"section"`
	TeacherID    *uint  `json:"teacherId"`
	Credits      int    `json:"credits" validate:"omitempty,gte=1,lte=10"`
	Duration     string `json:"duration"`
	AcademicYear string `json:"academicYear"`
	Semester     string `json:"semester"`
	Syllabus     string `json:"syllabus"`
	IsActive     *bool  `json:"isActive"`
}

// GetCourses lists courses, optionally filtered by class
func (h *CourseHandler) GetCourses(c *fiber.Ctx) error {
	q := h.db.Preload("Teacher")

	if class := c.Query("class"); class != "" {
		q = q.Where("class = ?", class)
	}

	if offset, limit, paginated := query.Pagination(c); paginated {
		q = q.Offset(offset).Limit(limit)
	}

	var courses []model.Course
	if err := q.Order("course_code ASC").Find(&courses).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch courses")
	}

	return response.SuccessWithCount(c, courses, len(courses))
}

// GetCourse returns one course by id
func (h *CourseHandler) GetCourse(c *fiber.Ctx) error {
	id, ok := query.UintParam(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid course ID")
	}

	var course model.Course
	if err := h.db.Preload("Teacher").First(&course, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Course not found")
		}
		return response.InternalServerError(c, "Failed to fetch course")
	}

	return response.Success(c, course)
}

// CreateCourse creates a new course. Course codes are stored uppercase so
// "cs101" and "CS101" collide.
func (h *CourseHandler) CreateCourse(c *fiber.Ctx) error {
	var req CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.CourseName = validation.SanitizeString(req.CourseName)
	req.CourseCode = strings.ToUpper(validation.SanitizeString(req.CourseCode))

	if err := h.validator.ValidateStruct(&req); err != nil {
		return response.BadRequest(c, validation.FormatValidationErrors(err))
	}

	if req.TeacherID != nil {
		var teacher model.User
		if err := h.db.Where("role = ?", model.RoleTeacher).First(&teacher, *req.TeacherID).Error; err != nil {
			return response.BadRequest(c, "Teacher not found")
		}
	}

	var existing model.Course
	if err := h.db.Where("course_code = ?", req.CourseCode).First(&existing).Error; err == nil {
		return response.Duplicate(c, "Course with this code already exists")
	}

	credits := req.Credits
	if credits == 0 {
		credits = 3
	}

	course := model.Course{
		CourseName:   req.CourseName,
		CourseCode:   req.CourseCode,
		Description:  req.Description,
		Class:        req.Class,
		Section:      req.Section,
		TeacherID:    req.TeacherID,
		Credits:      credits,
		Duration:     req.Duration,
		AcademicYear: req.AcademicYear,
		Semester:     req.Semester,
		Syllabus:     req.Syllabus,
		IsActive:     true,
	}

	if err := h.db.Create(&course).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return response.Duplicate(c, "Course with this code already exists")
		}
		return response.InternalServerError(c, "Failed to create course")
	}

	return response.Created(c, "Course created successfully", course)
}

// UpdateCourse updates a course. The course code is immutable once created.
func (h *CourseHandler) UpdateCourse(c *fiber.Ctx) error {
	id, ok := query.UintParam(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid course ID")
	}

	var course model.Course
	if err := h.db.First(&course, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Course not found")
		}
		return response.InternalServerError(c, "Failed to fetch course")
	}

	var req UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(&req); err != nil {
		return response.BadRequest(c, validation.FormatValidationErrors(err))
	}

	if req.CourseName != "" {
		course.CourseName = validation.SanitizeString(req.CourseName)
	}
	if req.Description != "" {
		course.Description = req.Description
	}
	if req.Class != "" {
		course.Class = req.Class
	}
	if req.Section != "" {
		course.Section = req.Section
	}
	if req.TeacherID != nil {
		var teacher model.User
		if err := h.db.Where("role = ?", model.RoleTeacher).First(&teacher, *req.TeacherID).Error; err != nil {
			return response.BadRequest(c, "Teacher not found")
		}
		course.TeacherID = req.TeacherID
	}
	if req.Credits != 0 {
		course.Credits = req.Credits
	}
	if req.Duration != "" {
		course.Duration = req.Duration
	}
	if req.AcademicYear != "" {
		course.AcademicYear = req.AcademicYear
	}
	if req.Semester != "" {
		course.Semester = req.Semester
	}
	if req.Syllabus != "" {
		course.Syllabus = req.Syllabus
	}
	if req.IsActive != nil {
		course.IsActive = *req.IsActive
	}

	if err := h.db.Save(&course).Error; err != nil {
		return response.InternalServerError(c, "Failed to update course")
	}

	return response.SuccessWithMessage(c, "Course updated successfully", course)
}

// DeleteCourse removes a course
func (h *CourseHandler) DeleteCourse(c *fiber.Ctx) error {
	id, ok := query.UintParam(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid course ID")
	}

	var course model.Course
	if err := h.db.First(&course, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Course not found")
		}
		return response.InternalServerError(c, "Failed to fetch course")
	}

	if err := h.db.Delete(&course).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete course")
	}

	return response.SuccessWithMessage(c, "Course deleted successfully", nil)
}
