package dashboard

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/edumanage-api/model"
	"github.com/sahilchouksey/edumanage-api/services"
	"github.com/sahilchouksey/edumanage-api/utils/middleware"
	"github.com/sahilchouksey/edumanage-api/utils/query"
	"github.com/sahilchouksey/edumanage-api/utils/response"
	"gorm.io/gorm"
)

// DashboardHandler serves the student and admin dashboard aggregates
type DashboardHandler struct {
	db      *gorm.DB
	service *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(db *gorm.DB, service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		db:      db,
		service: service,
	}
}

// GetStudentDashboard returns the student dashboard. Students may only
// fetch their own.
func (h *DashboardHandler) GetStudentDashboard(c *fiber.Ctx) error {
	studentID, ok := query.UintParam(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid student ID")
	}

	role, _ := middleware.GetUserRole(c)
	callerID, _ := middleware.GetUserID(c)
	if role == model.RoleStudent && callerID != studentID {
		return response.Forbidden(c, "Not authorized to view another student's dashboard")
	}

	var student model.User
	if err := h.db.Where("role = ?", model.RoleStudent).First(&student, studentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Student not found")
		}
		return response.InternalServerError(c, "Failed to fetch student")
	}

	board, err := h.service.GetStudentDashboard(c.Context(), studentID)
	if err != nil {
		return response.InternalServerError(c, "Failed to build dashboard")
	}

	return response.Success(c, board)
}

// GetAdminDashboard returns the school-wide admin dashboard
func (h *DashboardHandler) GetAdminDashboard(c *fiber.Ctx) error {
	role, _ := middleware.GetUserRole(c)
	if role != model.RoleAdmin {
		return response.Forbidden(c, "Not authorized to view the admin dashboard")
	}

	board, err := h.service.GetAdminDashboard(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to build dashboard")
	}

	return response.Success(c, board)
}
