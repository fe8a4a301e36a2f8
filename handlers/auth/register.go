package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/edumanage-api/database"
	"github.com/sahilchouksey/edumanage-api/model"
	"github.com/sahilchouksey/edumanage-api/utils/auth"
	"github.com/sahilchouksey/edumanage-api/utils/response"
	"github.com/sahilchouksey/edumanage-api/utils/validation"
)

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=admin teacher student"`
	RollNo   string `json:"rollNo"`
	Class    string `json:"class"`
	Section  string `json:"section"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// Register handles user registration
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Name = validation.SanitizeString(req.Name)
	req.Email = validation.SanitizeString(req.Email)

	if err := h.validator.ValidateStruct(&req); err != nil {
		return response.BadRequest(c, validation.FormatValidationErrors(err))
	}

	if req.Role == "" {
		req.Role = model.RoleStudent
	}

	// Pre-check so the common case gets a clean message
	var existing model.User
	if err := h.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return response.Duplicate(c, "User with this email already exists")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	user := model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		RollNo:       req.RollNo,
		Class:        req.Class,
		Section:      req.Section,
		Phone:        req.Phone,
		Address:      req.Address,
		IsActive:     true,
	}

	if err := h.db.Create(&user).Error; err != nil {
		// Races past the pre-check land here via the unique index
		if database.IsUniqueViolation(err) {
			return response.Duplicate(c, "User with this email already exists")
		}
		return response.InternalServerError(c, "Failed to create user")
	}

	return response.Created(c, "User registered successfully", toUserResponse(user))
}
