package policy

import (
	"github.com/sahilchouksey/edumanage-api/model"
)

// Entity names one protected resource kind.
type Entity string

// Operation names one of the four CRUD operations on an entity.
type Operation string

const (
	EntityStudent    Entity = "students"
	EntityCourse     Entity = "courses"
	EntityAttendance Entity = "attendance"
	EntityExam       Entity = "exams"
	EntityMarks      Entity = "marks"
	EntityFees       Entity = "fees"
	EntitySalary     Entity = "salary"
	EntityTimetable  Entity = "timetable"
	EntityEvent      Entity = "events"
)

const (
	OpCreate Operation = "create"
	OpRead   Operation = "read"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// anyRole marks an operation open to every authenticated caller.
const anyRole = "*"

var adminOnly = []string{model.RoleAdmin}
var adminTeacher = []string{model.RoleAdmin, model.RoleTeacher}
var anyAuthenticated = []string{anyRole}

// table is the single role-to-operation matrix every route consults.
// Own-scope reads (a student fetching their own marks, a teacher their own
// salary) use dedicated routes and are checked in the handlers against the
// caller's identity, not here.
var table = map[Entity]map[Operation][]string{
	EntityStudent: {
		OpCreate: adminOnly,
		OpRead:   adminTeacher,
		OpUpdate: adminOnly,
		OpDelete: adminOnly,
	},
	EntityCourse: {
		OpCreate: adminOnly,
		OpRead:   anyAuthenticated,
		OpUpdate: adminOnly,
		OpDelete: adminOnly,
	},
	EntityAttendance: {
		OpCreate: adminTeacher,
		OpRead:   adminTeacher,
		OpUpdate: adminTeacher,
		OpDelete: adminOnly,
	},
	EntityExam: {
		OpCreate: adminOnly,
		OpRead:   anyAuthenticated,
		OpUpdate: adminOnly,
		OpDelete: adminOnly,
	},
	EntityMarks: {
		OpCreate: adminTeacher,
		OpRead:   adminTeacher,
		OpUpdate: adminTeacher,
		OpDelete: adminOnly,
	},
	EntityFees: {
		OpCreate: adminOnly,
		OpRead:   adminOnly,
		OpUpdate: adminOnly,
		OpDelete: adminOnly,
	},
	EntitySalary: {
		OpCreate: adminOnly,
		OpRead:   adminOnly,
		OpUpdate: adminOnly,
		OpDelete: adminOnly,
	},
	EntityTimetable: {
		OpCreate: adminOnly,
		OpRead:   anyAuthenticated,
		OpUpdate: adminOnly,
		OpDelete: adminOnly,
	},
	EntityEvent: {
		OpCreate: adminOnly,
		OpRead:   anyAuthenticated,
		OpUpdate: adminOnly,
		OpDelete: adminOnly,
	},
}

// Allows reports whether a caller with the given role may perform op on
// entity. Unknown entities and operations are denied.
func Allows(role string, entity Entity, op Operation) bool {
	ops, ok := table[entity]
	if !ok {
		return false
	}
	roles, ok := ops[op]
	if !ok {
		return false
	}
	for _, r := range roles {
		if r == anyRole || r == role {
			return true
		}
	}
	return false
}
