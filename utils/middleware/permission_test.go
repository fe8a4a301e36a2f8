package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/edumanage-api/utils/policy"
)

// withRole simulates an authenticated request by injecting identity the way
// the auth middleware does.
func withRole(userID uint, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user_id", userID)
		c.Locals("user_role", role)
		return c.Next()
	}
}

func permissionApp(entity policy.Entity, op policy.Operation, pre fiber.Handler) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{}
	if pre != nil {
		handlers = append(handlers, pre)
	}
	handlers = append(handlers, RequirePermission(entity, op), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/probe", handlers...)
	return app
}

func TestRequirePermissionAllowsAdmin(t *testing.T) {
	app := permissionApp(policy.EntityFees, policy.OpCreate, withRole(1, "admin"))

	resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestRequirePermissionForbidsWrongRole(t *testing.T) {
	app := permissionApp(policy.EntityFees, policy.OpCreate, withRole(2, "teacher"))

	resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("status = %d, want 403", resp.StatusCode)
	}
}

func TestRequirePermissionRejectsUnauthenticated(t *testing.T) {
	app := permissionApp(policy.EntityCourse, policy.OpRead, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestRequirePermissionOpenReadAllowsStudent(t *testing.T) {
	app := permissionApp(policy.EntityEvent, policy.OpRead, withRole(3, "student"))

	resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}
