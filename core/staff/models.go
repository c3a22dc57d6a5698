package staff

import (
	"github.com/go-playground/validator/v10"

	"github.com/officialmikal/cbc-edutrac-automation/core"
)

// Role is a staff member's access level.
type Role string

const (
	RoleAdmin       Role = "ADMIN"
	RoleTeacher     Role = "TEACHER"
	RoleAccountant  Role = "ACCOUNTANT"
	RoleHeadTeacher Role = "HEAD_TEACHER"
)

var Roles = []Role{RoleAdmin, RoleTeacher, RoleAccountant, RoleHeadTeacher}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleAccountant, RoleHeadTeacher:
		return true
	default:
		return false
	}
}

// View names a console area a role may or may not reach.
type View string

const (
	ViewDashboard View = "dashboard"
	ViewStudents  View = "students"
	ViewMarks     View = "marks"
	ViewReports   View = "reports"
	ViewFinance   View = "finance"
	ViewCalendar  View = "calendar"
	ViewSettings  View = "settings"
)

// viewRoles is the fixed role-gating table: which roles may reach which view.
var viewRoles = map[View][]Role{
	ViewDashboard: {RoleAdmin, RoleHeadTeacher, RoleTeacher, RoleAccountant},
	ViewStudents:  {RoleAdmin, RoleTeacher, RoleHeadTeacher},
	ViewMarks:     {RoleAdmin, RoleTeacher},
	ViewReports:   {RoleAdmin, RoleHeadTeacher, RoleTeacher},
	ViewFinance:   {RoleAdmin, RoleAccountant},
	ViewCalendar:  {RoleAdmin, RoleTeacher, RoleHeadTeacher, RoleAccountant},
	ViewSettings:  {RoleAdmin},
}

// CanAccess consults the gating table.
func (r Role) CanAccess(view View) bool {
	for _, allowed := range viewRoles[view] {
		if r == allowed {
			return true
		}
	}
	return false
}

type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// NewUser contains information needed to create a staff account.
type NewUser struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required,min=3,alphanum_"`
	Role     string `json:"role" validate:"required,role"`
}

func (nu *NewUser) Validate(validate *validator.Validate, svc *Service) error {
	nu.Name = core.CleanString(nu.Name)
	nu.Username = core.CleanString(nu.Username, true /* lower */)

	if err := validate.Struct(nu); err != nil {
		return err
	}
	return svc.checkUniqueness(nu.Username)
}

// Defaults is the seeded staff list used when no accounts have been stored yet.
func Defaults() []User {
	return []User{
		{ID: "u1", Name: "Admin User", Username: "admin", Role: RoleAdmin},
		{ID: "u2", Name: "James Teacher", Username: "teacher", Role: RoleTeacher},
		{ID: "u3", Name: "Sarah Accountant", Username: "cashier", Role: RoleAccountant},
		{ID: "u4", Name: "Grace HeadTeacher", Username: "principal", Role: RoleHeadTeacher},
	}
}
