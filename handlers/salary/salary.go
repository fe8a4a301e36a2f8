package salary

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

// SalaryHandler handles teacher payroll records
type SalaryHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewSalaryHandler creates a new salary handler
func NewSalaryHandler(db *gorm.DB) *SalaryHandler {
	return &SalaryHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateSalaryRequest represents a salary record creation request
type CreateSalaryRequest struct {
	TeacherID   uint    `json:"teacherId" validate:"required"`
	Month       string  `json:"month" validate:"required"`
	Year        int     `json:"year" validate:"required,gte=2000,lte=2100"`
	BasicSalary float64 `json:"basicSalary" validate:"required,gt=0"`
	Allowances  float64 `json:"allowances" validate:"gte=0"`
	Deductions  float64 `json:"deductions" validate:"gte=0"`
	Remarks     string  `json:"remarks"`
}

// UpdateSalaryRequest represents a salary payment or correction request
type UpdateSalaryRequest struct {
	BasicSalary   *float64 `json:"basicSalary" validate:"omitempty,gt=0"`
	Allowances    *float64 `json:"allowances" validate:"omitempty,gte=0"`
	Deductions    *float64 `json:"deductions" validate:"omitempty,gte=0"`
	Status        string   `json:"status"`
	PaymentDate   string   `json:"paymentDate"`
	PaymentMethod string   `json:"paymentMethod"`
	TransactionID string   `json:"transactionId"`
	Remarks       string   `json:"remarks"`
}

// SalaryOverview is the payroll aggregate behind /salary/summary/all.
type SalaryOverview struct {
	TotalPaid         float64 `json:"totalPaid"`
	TotalPending      float64 `json:"totalPending"`
	TotalProcessing   float64 `json:"totalProcessing"`
	CurrentMonthCount int64   `json:"currentMonthCount"`
}

// GetSalaries lists salary records, optionally filtered by month and year
func (h *SalaryHandler) GetSalaries(c *fiber.Ctx) error {
	q := h.db.Preload("Teacher")

	if month := c.Query("month"); month != "" {
		q = q.Where("month = ?", month)
	}
	if year := c.Query("year"); year != "" {
		q = q.Where("year = ?", year)
	}

	if offset, limit, paginated := query.Pagination(c); paginated {
		q = q.Offset(offset).Limit(limit)
	}

	var records []model.Salary
	if err := q.Order("year DESC, month ASC").Find(&records).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch salary records")
	}

	return response.SuccessWithCount(c, records, len(records))
}

// GetTeacherSalary returns one teacher's salary history plus a summary.
// Teachers may only fetch their own; students get nothing here.
func (h *SalaryHandler) GetTeacherSalary(c *fiber.Ctx) error {
	teacherID, ok := query.UintParam(c, "teacherId")
	if !ok {
		return response.BadRequest(c, "Invalid teacher ID")
	}

	role, _ := middleware.GetUserRole(c)
	callerID, _ := middleware.GetUserID(c)
	if role == model.RoleStudent {
		return response.Forbidden(c, "Not authorized to view salary records")
	}
	if role == model.RoleTeacher && callerID != teacherID {
		return response.Forbidden(c, "Not authorized to view another teacher's salary")
	}

	var teacher model.User
	if err := h.db.Where("role = ?", model.RoleTeacher).First(&teacher, teacherID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Teacher not found")
		}
		return response.InternalServerError(c, "Failed to fetch teacher")
	}

	var records []model.Salary
	if err := h.db.Where("teacher_id = ?", teacherID).
		Order("year DESC, created_at DESC").Find(&records).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch salary records")
	}

	return response.SuccessWithSummary(c, records, services.SalarySummary(records))
}

// GetSalaryOverview returns payroll totals by status plus this month's
// record count
func (h *SalaryHandler) GetSalaryOverview(c *fiber.Ctx) error {
	var overview SalaryOverview

	rows := []struct {
		Status string
		Total  float64
	}{}
	if err := h.db.Model(&model.Salary{}).
		Select("status, COALESCE(SUM(net_salary), 0) AS total").
		Group("status").Scan(&rows).Error; err != nil {
		return response.InternalServerError(c, "Failed to compute salary summary")
	}
	for _, r := range rows {
		switch r.Status {
		case model.SalaryStatusPaid:
			overview.TotalPaid = r.Total
		case model.SalaryStatusPending:
			overview.TotalPending = r.Total
		case model.SalaryStatusProcessing:
			overview.TotalProcessing = r.Total
		}
	}

	now := time.Now()
	if err := h.db.Model(&model.Salary{}).
		Where("month = ? AND year = ?", now.Month().String(), now.Year()).
		Count(&overview.CurrentMonthCount).Error; err != nil {
		return response.InternalServerError(c, "Failed to compute salary summary")
	}

	return response.Success(c, overview)
}

// CreateSalary creates a teacher's pay record for a month. One record per
// (teacher, month, year); duplicates are rejected, racing writers included.
func (h *SalaryHandler) CreateSalary(c *fiber.Ctx) error {
	var req CreateSalaryRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(&req); err != nil {
		return response.BadRequest(c, validation.FormatValidationErrors(err))
	}

	var teacher model.User
	if err := h.db.Where("role = ?", model.RoleTeacher).First(&teacher, req.TeacherID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Teacher not found")
		}
		return response.InternalServerError(c, "Failed to fetch teacher")
	}

	callerID, _ := middleware.GetUserID(c)

	record := model.NewSalary(req.TeacherID, req.Month, req.Year,
		req.BasicSalary, req.Allowances, req.Deductions, &callerID)
	record.Remarks = req.Remarks

	if err := h.db.Create(record).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return response.Duplicate(c, "Salary record already exists for this teacher in this month/year")
		}
		return response.InternalServerError(c, "Failed to create salary record")
	}

	return response.Created(c, "Salary record created successfully", record)
}

// UpdateSalary records a payment or corrects the pay components. The net
// salary is re-derived on every change.
func (h *SalaryHandler) UpdateSalary(c *fiber.Ctx) error {
	id, ok := query.UintParam(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid salary ID")
	}

	var record model.Salary
	if err := h.db.First(&record, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Salary record not found")
		}
		return response.InternalServerError(c, "Failed to fetch salary record")
	}

	var req UpdateSalaryRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(&req); err != nil {
		return response.BadRequest(c, validation.FormatValidationErrors(err))
	}

	if req.BasicSalary != nil {
		record.BasicSalary = *req.BasicSalary
	}
	if req.Allowances != nil {
		record.Allowances = *req.Allowances
	}
	if req.Deductions != nil {
		record.Deductions = *req.Deductions
	}
	record.Recompute()

	if req.Status != "" {
		if !model.IsValidSalaryStatus(req.Status) {
			return response.BadRequest(c, "Status must be one of: Pending, Paid, Processing")
		}
		record.Status = req.Status
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
		return response.InternalServerError(c, "Failed to update salary record")
	}

	return response.SuccessWithMessage(c, "Salary record updated successfully", record)
}

// DeleteSalary removes a salary record
func (h *SalaryHandler) DeleteSalary(c *fiber.Ctx) error {
	id, ok := query.UintParam(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid salary ID")
	}

	var record model.Salary
	if err := h.db.First(&record, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Salary record not found")
		}
		return response.InternalServerError(c, "Failed to fetch salary record")
	}

	if err := h.db.Delete(&record).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete salary record")
	}

	return response.SuccessWithMessage(c, "Salary record deleted successfully", nil)
}
