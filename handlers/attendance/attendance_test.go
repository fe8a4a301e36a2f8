package attendance

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func scopeApp(callerID uint, role string) *fiber.App {
	h := NewAttendanceHandler(nil)
	app := fiber.New()
	app.Get("/attendance/student/:studentId", func(c *fiber.Ctx) error {
		c.Locals("user_id", callerID)
		c.Locals("user_role", role)
		return c.Next()
	}, h.GetStudentAttendance)
	return app
}

func TestStudentCannotReadAnotherStudentsAttendance(t *testing.T) {
	app := scopeApp(3, "student")

	resp, err := app.Test(httptest.NewRequest("GET", "/attendance/student/4", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("status = %d, want 403", resp.StatusCode)
	}
}

func TestInvalidStudentIDRejected(t *testing.T) {
	app := scopeApp(3, "admin")

	resp, err := app.Test(httptest.NewRequest("GET", "/attendance/student/xyz", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}
