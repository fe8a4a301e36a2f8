package student

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/edumanage-api/database"
	"github.com/sahilchouksey/edumanage-api/model"
	"github.com/sahilchouksey/edumanage-api/utils/auth"
	"github.com/sahilchouksey/edumanage-api/utils/query"
	"github.com/sahilchouksey/edumanage-api/utils/response"
	"github.com/sahilchouksey/edumanage-api/utils/validation"
	"gorm.io/gorm"
)

// StudentHandler handles student record management
type StudentHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewStudentHandler creates a new student handler
func NewStudentHandler(db *gorm.DB) *StudentHandler {
	return &StudentHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateStudentRequest represents a student creation request
type CreateStudentRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	RollNo   string `json:"rollNo" validate:"required"`
	Class    string `json:"class" validate:"required"`
	Section  string `json:"section"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// UpdateStudentRequest represents a student update request
type UpdateStudentRequest struct {
	Name     string `json:"name" validate:"omitempty,min=2,max=100"`
	RollNo   string `json:"rollNo"`
	Class    string `json:"class"`
	Section  string `json:"section"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	IsActive *bool  `json:"isActive"`
}

// GetStudents lists students, optionally filtered by class and section
func (h *StudentHandler) GetStudents(c *fiber.Ctx) error {
	q := h.db.Where("role = ?", model.RoleStudent)

	if class := c.Query("class"); class != "" {
		q = q.Where("class = ?", class)
	}
	if section := c.Query("section"); section != "" {
		q = q.Where("section = ?", section)
	}

	if offset, limit, paginated := query.Pagination(c); paginated {
		q = q.Offset(offset).Limit(limit)
	}

	var students []model.User
	if err := q.Order("roll_no ASC").Find(&students).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch students")
	}

	return response.SuccessWithCount(c, students, len(students))
}

// GetStudent returns one student by id
func (h *StudentHandler) GetStudent(c *fiber.Ctx) error {
	id, ok := query.UintParam(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid student ID")
	}

	var student model.User
	if err := h.db.Where("role = ?", model.RoleStudent).First(&student, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Student not found")
		}
		return response.InternalServerError(c, "Failed to fetch student")
	}

	return response.Success(c, student)
}

// CreateStudent creates a new student account
func (h *StudentHandler) CreateStudent(c *fiber.Ctx) error {
	var req CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Name = validation.SanitizeString(req.Name)
	req.Email = validation.SanitizeString(req.Email)

	if err := h.validator.ValidateStruct(&req); err != nil {
		return response.BadRequest(c, validation.FormatValidationErrors(err))
	}

	var existing model.User
	if err := h.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return response.Duplicate(c, "User with this email already exists")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	student := model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         model.RoleStudent,
		RollNo:       req.RollNo,
		Class:        req.Class,
		Section:      req.Section,
		Phone:        req.Phone,
		Address:      req.Address,
		IsActive:     true,
	}

	if err := h.db.Create(&student).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return response.Duplicate(c, "User with this email already exists")
		}
		return response.InternalServerError(c, "Failed to create student")
	}

	return response.Created(c, "Student created successfully", student)
}

// UpdateStudent updates a student record
func (h *StudentHandler) UpdateStudent(c *fiber.Ctx) error {
	id, ok := query.UintParam(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid student ID")
	}

	var student model.User
	if err := h.db.Where("role = ?", model.RoleStudent).First(&student, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Student not found")
		}
		return response.InternalServerError(c, "Failed to fetch student")
	}

	var req UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(&req); err != nil {
		return response.BadRequest(c, validation.FormatValidationErrors(err))
	}

	if req.Name != "" {
		student.Name = validation.SanitizeString(req.Name)
	}
	if req.RollNo != "" {
		student.RollNo = req.RollNo
	}
	if req.Class != "" {
		student.Class = req.Class
	}
	if req.Section != "" {
		student.Section = req.Section
	}
	if req.Phone != "" {
		student.Phone = req.Phone
	}
	if req.Address != "" {
		student.Address = req.Address
	}
	if req.IsActive != nil {
		student.IsActive = *req.IsActive
	}

	if err := h.db.Save(&student).Error; err != nil {
		return response.InternalServerError(c, "Failed to update student")
	}

	return response.SuccessWithMessage(c, "Student updated successfully", student)
}

// DeleteStudent removes a student and, through the store's cascade rules,
// their attendance, marks and fee records
func (h *StudentHandler) DeleteStudent(c *fiber.Ctx) error {
	id, ok := query.UintParam(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid student ID")
	}

	var student model.User
	if err := h.db.Where("role = ?", model.RoleStudent).First(&student, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Student not found")
		}
		return response.InternalServerError(c, "Failed to fetch student")
	}

	if err := h.db.Delete(&student).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete student")
	}

	return response.SuccessWithMessage(c, "Student deleted successfully", nil)
}
