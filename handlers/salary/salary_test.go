package salary

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// scopeApp mounts GetTeacherSalary behind a stub that injects the caller's
// identity. The scope check runs before any store access, so a denied
// request never needs a database.
func scopeApp(callerID uint, role string) *fiber.App {
	h := NewSalaryHandler(nil)
	app := fiber.New()
	app.Get("/salary/teacher/:teacherId", func(c *fiber.Ctx) error {
		c.Locals("user_id", callerID)
		c.Locals("user_role", role)
		return c.Next()
	}, h.GetTeacherSalary)
	return app
}

func TestTeacherCannotReadAnotherTeachersSalary(t *testing.T) {
	app := scopeApp(5, "teacher")

	resp, err := app.Test(httptest.NewRequest("GET", "/salary/teacher/9", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("status = %d, want 403", resp.StatusCode)
	}
}

func TestStudentCannotReadSalaries(t *testing.T) {
	app := scopeApp(5, "student")

	resp, err := app.Test(httptest.NewRequest("GET", "/salary/teacher/5", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("status = %d, want 403", resp.StatusCode)
	}
}

func TestInvalidTeacherIDRejected(t *testing.T) {
	app := scopeApp(1, "admin")

	resp, err := app.Test(httptest.NewRequest("GET", "/salary/teacher/abc", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}
