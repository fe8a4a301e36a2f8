package policy

import (
	"testing"

	"github.com/sahilchouksey/edumanage-api/model"
)

func TestAdminAllowedEverywhere(t *testing.T) {
	entities := []Entity{
		EntityStudent, EntityCourse, EntityAttendance, EntityExam,
		EntityMarks, EntityFees, EntitySalary, EntityTimetable, EntityEvent,
	}
	ops := []Operation{OpCreate, OpRead, OpUpdate, OpDelete}

	for _, e := range entities {
		for _, op := range ops {
			if !Allows(model.RoleAdmin, e, op) {
				t.Errorf("admin should be allowed to %s %s", op, e)
			}
		}
	}
}

func TestTeacherPermissions(t *testing.T) {
	// Teachers mark attendance and enter marks but never touch money
	if !Allows(model.RoleTeacher, EntityAttendance, OpCreate) {
		t.Error("teacher should create attendance")
	}
	if !Allows(model.RoleTeacher, EntityMarks, OpUpdate) {
		t.Error("teacher should update marks")
	}
	if Allows(model.RoleTeacher, EntityAttendance, OpDelete) {
		t.Error("teacher must not delete attendance")
	}
	if Allows(model.RoleTeacher, EntityFees, OpRead) {
		t.Error("teacher must not read fees")
	}
	if Allows(model.RoleTeacher, EntitySalary, OpRead) {
		t.Error("teacher must not list salaries")
	}
	if Allows(model.RoleTeacher, EntityStudent, OpCreate) {
		t.Error("teacher must not create students")
	}
}

func TestStudentPermissions(t *testing.T) {
	// Students read shared resources and nothing else
	if !Allows(model.RoleStudent, EntityCourse, OpRead) {
		t.Error("student should read courses")
	}
	if !Allows(model.RoleStudent, EntityExam, OpRead) {
		t.Error("student should read exams")
	}
	if !Allows(model.RoleStudent, EntityTimetable, OpRead) {
		t.Error("student should read the timetable")
	}
	if !Allows(model.RoleStudent, EntityEvent, OpRead) {
		t.Error("student should read events")
	}
	if Allows(model.RoleStudent, EntityAttendance, OpRead) {
		t.Error("student must not list all attendance")
	}
	if Allows(model.RoleStudent, EntityMarks, OpCreate) {
		t.Error("student must not enter marks")
	}
	if Allows(model.RoleStudent, EntityCourse, OpUpdate) {
		t.Error("student must not update courses")
	}
}

func TestUnknownEntityOrRoleDenied(t *testing.T) {
	if Allows(model.RoleAdmin, Entity("grades"), OpRead) {
		t.Error("unknown entity must be denied")
	}
	if Allows("superuser", EntityStudent, OpRead) {
		t.Error("unknown role must be denied")
	}
	if Allows("", EntityCourse, OpCreate) {
		t.Error("empty role must be denied")
	}
}
