package database

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/sahilchouksey/edumanage-api/model"
	"gorm.io/gorm"
)

// integrationDB connects to the Postgres named by the DB_* environment
// variables and migrates the schema. All integration tests share the guard:
// set RUN_INTEGRATION_TESTS=true to run them.
func integrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	if os.Getenv("RUN_INTEGRATION_TESTS") != "true" {
		t.Skip("Skipping integration test. Set RUN_INTEGRATION_TESTS=true to run")
	}

	store, err := StartGORM()
	if err != nil {
		t.Fatalf("StartGORM: %v", err)
	}
	if err := store.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		t.Fatal("GetDB did not return a *gorm.DB")
	}
	return db
}

func createTestStudent(t *testing.T, db *gorm.DB) *model.User {
	t.Helper()
	student := &model.User{
		Name:         "Integration Student",
		Email:        fmt.Sprintf("student-%d@integration.test", time.Now().UnixNano()),
		PasswordHash: "x",
		Role:         model.RoleStudent,
		Class:        "10",
		Section:      "A",
		IsActive:     true,
	}
	if err := db.Create(student).Error; err != nil {
		t.Fatalf("create student: %v", err)
	}
	t.Cleanup(func() { db.Unscoped().Delete(student) })
	return student
}

func createTestTeacher(t *testing.T, db *gorm.DB) *model.User {
	t.Helper()
	teacher := &model.User{
		Name:         "Integration Teacher",
		Email:        fmt.Sprintf("teacher-%d@integration.test", time.Now().UnixNano()),
		PasswordHash: "x",
		Role:         model.RoleTeacher,
		IsActive:     true,
	}
	if err := db.Create(teacher).Error; err != nil {
		t.Fatalf("create teacher: %v", err)
	}
	t.Cleanup(func() { db.Unscoped().Delete(teacher) })
	return teacher
}

func TestAttendanceUniquePerStudentAndDate(t *testing.T) {
	db := integrationDB(t)
	student := createTestStudent(t, db)

	date := model.NormalizeAttendanceDate(time.Now())
	first := model.Attendance{StudentID: student.ID, Date: date, Status: model.AttendancePresent}
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("first attendance record: %v", err)
	}
	t.Cleanup(func() { db.Unscoped().Delete(&first) })

	second := model.Attendance{StudentID: student.ID, Date: date, Status: model.AttendanceAbsent}
	err := db.Create(&second).Error
	if err == nil {
		db.Unscoped().Delete(&second)
		t.Fatal("second record for the same student and date should be rejected")
	}
	if !IsUniqueViolation(err) {
		t.Errorf("expected a unique violation, got %v", err)
	}
}

func TestSalaryUniquePerTeacherMonthYear(t *testing.T) {
	db := integrationDB(t)
	teacher := createTestTeacher(t, db)

	first := model.NewSalary(teacher.ID, "January", 2025, 50000, 0, 0, nil)
	if err := db.Create(first).Error; err != nil {
		t.Fatalf("first salary record: %v", err)
	}
	t.Cleanup(func() { db.Unscoped().Delete(first) })

	second := model.NewSalary(teacher.ID, "January", 2025, 60000, 0, 0, nil)
	err := db.Create(second).Error
	if err == nil {
		db.Unscoped().Delete(second)
		t.Fatal("second record for the same teacher, month and year should be rejected")
	}
	if !IsUniqueViolation(err) {
		t.Errorf("expected a unique violation, got %v", err)
	}

	// A different month for the same teacher is fine
	third := model.NewSalary(teacher.ID, "February", 2025, 50000, 0, 0, nil)
	if err := db.Create(third).Error; err != nil {
		t.Fatalf("different month should be accepted: %v", err)
	}
	db.Unscoped().Delete(third)
}

func TestUserEmailUnique(t *testing.T) {
	db := integrationDB(t)
	student := createTestStudent(t, db)

	dup := &model.User{
		Name:         "Duplicate",
		Email:        student.Email,
		PasswordHash: "x",
		Role:         model.RoleStudent,
	}
	err := db.Create(dup).Error
	if err == nil {
		db.Unscoped().Delete(dup)
		t.Fatal("duplicate email should be rejected")
	}
	if !IsUniqueViolation(err) {
		t.Errorf("expected a unique violation, got %v", err)
	}
}
