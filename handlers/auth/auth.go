package auth

import (
	"github.com/sahilchouksey/edumanage-api/utils/auth"
	"github.com/sahilchouksey/edumanage-api/utils/middleware"
	"github.com/sahilchouksey/edumanage-api/utils/validation"
	"gorm.io/gorm"
)

// AuthHandler handles registration, login and profile requests
type AuthHandler struct {
	db                   *gorm.DB
	jwtManager           *auth.JWTManager
	validator            *validation.Validator
	bruteForceProtection *middleware.BruteForceProtection
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(db *gorm.DB, jwtManager *auth.JWTManager, bfp *middleware.BruteForceProtection) *AuthHandler {
	return &AuthHandler{
		db:                   db,
		jwtManager:           jwtManager,
		validator:            validation.NewValidator(),
		bruteForceProtection: bfp,
	}
}

// UserResponse is the public shape of a user record
type UserResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	RollNo  string `json:"rollNo,omitempty"`
	Class   string `json:"class,omitempty"`
	Section string `json:"section,omitempty"`
	Phone   string `json:"phone,omitempty"`
}
