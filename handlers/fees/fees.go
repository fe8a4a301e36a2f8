package fees

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/edumanage-api/model"
	"github.com/sahilchouksey/edumanage-api/services"
	"github.com/sahilchouksey/edumanage-api/utils/middleware"
	"github.com/sahilchouksey/edumanage-api/utils/query"
	"github.com/sahilchouksey/edumanage-api/utils/response"
	"github.com/sahilchouksey/edumanage-api/utils/validation"
	"gorm.io/gorm"
)

// FeesHandler handles student fee records
type FeesHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewFeesHandler creates a new fees handler
func NewFeesHandler(db *gorm.DB) *FeesHandler {
	return &FeesHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateFeesRequest represents a fee record creation request
type CreateFeesRequest struct {
	StudentID    uint    `json:"studentId" validate:"required"`
	FeeType      string  `json:"feeType" validate:"required"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
	DueDate      string  `json:"dueDate" validate:"required"` // YYYY-MM-DD
	AcademicYear string  `json:"academicYear" validate:"required"`
	Semester     string  `json:"semester"`
	Remarks      string  `json:"remarks"`
}

// UpdateFeesRequest represents a fee payment or correction request
type UpdateFeesRequest struct {
	Status        string   `json:"status"`
	PaidAmount    *float64 `json:"paidAmount" validate:"omitempty,gte=0"`
	PaymentDate   string   `json:"paymentDate"`
	PaymentMethod string   `json:"paymentMethod"`
	TransactionID string   `json:"transactionId"`
	Remarks       string   `json:"remarks"`
}

// GetFees lists fee records, optionally filtered by status
func (h *FeesHandler) GetFees(c *fiber.Ctx) error {
	q := h.db.Preload("Student")

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	if offset, limit, paginated := query.Pagination(c); paginated {
		q = q.Offset(offset).Limit(limit)
	}

	var records []model.Fees
	if err := q.Order("due_date ASC").Find(&records).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch fee records")
	}

	return response.SuccessWithCount(c, records, len(records))
}

// GetStudentFees returns one student's fee records plus a totals summary.
// Students may only fetch their own.
func (h *FeesHandler) GetStudentFees(c *fiber.Ctx) error {
	studentID, ok := query.UintParam(c, "studentId")
	if !ok {
		return response.BadRequest(c, "Invalid student ID")
	}

	role, _ := middleware.GetUserRole(c)
	callerID, _ := middleware.GetUserID(c)
	if role == model.RoleStudent && callerID != studentID {
		return response.Forbidden(c, "Not authorized to view another student's fees")
	}

	var student model.User
	if err := h.db.Where("role = ?", model.RoleStudent).First(&student, studentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Student not found")
		}
		return response.InternalServerError(c, "Failed to fetch student")
	}

	var records []model.Fees
	if err := h.db.Where("student_id = ?", studentID).Order("due_date ASC").Find(&records).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch fee records")
	}

	return response.SuccessWithSummary(c, records, services.FeesSummary(records))
}

// CreateFees creates a fee obligation for a student
func (h *FeesHandler) CreateFees(c *fiber.Ctx) error {
	var req CreateFeesRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(&req); err != nil {
		return response.BadRequest(c, validation.FormatValidationErrors(err))
	}

	if !model.IsValidFeeType(req.FeeType) {
		return response.BadRequest(c, "Invalid fee type")
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return response.BadRequest(c, "Due date must be in YYYY-MM-DD format")
	}

	var student model.User
	if err := h.db.Where("role = ?", model.RoleStudent).First(&student, req.StudentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Student not found")
		}
		return response.InternalServerError(c, "Failed to fetch student")
	}

	record := model.Fees{
		StudentID:    req.StudentID,
		FeeType:      req.FeeType,
		Amount:       req.Amount,
		DueDate:      dueDate,
		Status:       model.FeeStatusPending,
		AcademicYear: req.AcademicYear,
		Semester:     req.Semester,
		Remarks:      req.Remarks,
	}

	if err := h.db.Create(&record).Error; err != nil {
		return response.InternalServerError(c, "Failed to create fee record")
	}

	return response.Created(c, "Fee record created successfully", record)
}

// UpdateFees records a payment or corrects a fee record. Any status may
// follow any other; the office uses free corrections.
func (h *FeesHandler) UpdateFees(c *fiber.Ctx) error {
	id, ok := query.UintParam(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid fee ID")
	}

	var record model.Fees
	if err := h.db.First(&record, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Fee record not found")
		}
		return response.InternalServerError(c, "Failed to fetch fee record")
	}

	var req UpdateFeesRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(&req); err != nil {
		return response.BadRequest(c, validation.FormatValidationErrors(err))
	}

	if req.Status != "" {
		if !model.IsValidFeeStatus(req.Status) {
			return response.BadRequest(c, "Status must be one of: Paid, Pending, Overdue, Partial")
		}
		record.Status = req.Status
	}
	if req.PaidAmount != nil {
		if *req.PaidAmount > record.Amount {
			return response.BadRequest(c, "Paid amount cannot exceed the fee amount")
		}
		record.PaidAmount = *req.PaidAmount
	}
	if req.PaymentDate != "" {
		paymentDate, err := time.Parse("2006-01-02", req.PaymentDate)
		if err != nil {
			return response.BadRequest(c, "Payment date must be in YYYY-MM-DD format")
		}
		record.PaymentDate = &paymentDate
	}
	if req.PaymentMethod != "" {
		record.PaymentMethod = req.PaymentMethod
	}
	if req.TransactionID != "" {
		record.TransactionID = req.TransactionID
	}
	if req.Remarks != "" {
		record.Remarks = req.Remarks
	}

	if err := h.db.Save(&record).Error; err != nil {
		return response.InternalServerError(c, "Failed to update fee record")
	}

	return response.SuccessWithMessage(c, "Fee record updated successfully", record)
}

// DeleteFees removes a fee record
func (h *FeesHandler) DeleteFees(c *fiber.Ctx) error {
	id, ok := query.UintParam(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid fee ID")
	}

	var record model.Fees
	if err := h.db.First(&record, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Fee record not found")
		}
		return response.InternalServerError(c, "Failed to fetch fee record")
	}

	if err := h.db.Delete(&record).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete fee record")
	}

	return response.SuccessWithMessage(c, "Fee record deleted successfully", nil)
}
