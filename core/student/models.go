package student

import (
	"github.com/go-playground/validator/v10"

	"github.com/officialmikal/cbc-edutrac-automation/core"
	"github.com/officialmikal/cbc-edutrac-automation/core/school"
)

// Fee schedule: the junior-secondary entry grade carries a higher annual
// target. A simplified per-school rule, not configurable in current scope.
const (
	FeeTargetGrade7  = 35000
	FeeTargetDefault = 22000
)

// FeeTargetForGrade returns the annual fee target a new admission starts with.
func FeeTargetForGrade(grade school.Grade) float64 {
	if grade == school.Grade7 {
		return FeeTargetGrade7
	}
	return FeeTargetDefault
}

type Student struct {
	ID              string       `json:"id"`
	FullName        string       `json:"fullName"`
	AdmissionNumber string       `json:"admissionNumber"`
	Grade           school.Grade `json:"grade"`
	Stream          string       `json:"stream"`
	Gender          string       `json:"gender"`
	ParentName      string       `json:"parentName"`
	PhoneNumber     string       `json:"phoneNumber"`
	Term            int          `json:"term"`
	Year            int          `json:"year"`
	TotalFees       float64      `json:"totalFees"`
	PaidFees        float64      `json:"paidFees"`
}

// Balance is the amount still owed, never negative.
func (s Student) Balance() float64 {
	if bal := s.TotalFees - s.PaidFees; bal > 0 {
		return bal
	}
	return 0
}

// NewStudent contains the admission form data needed to enroll a learner.
type NewStudent struct {
	FullName        string `json:"fullName" validate:"required"`
	AdmissionNumber string `json:"admissionNumber" validate:"required,admnumber"`
	Grade           string `json:"grade" validate:"required,grade"`
	Stream          string `json:"stream"`
	Gender          string `json:"gender" validate:"required,oneof=Male Female Other"`
	ParentName      string `json:"parentName"`
	PhoneNumber     string `json:"phoneNumber" validate:"required,min=7"`
	Term            int    `json:"term" validate:"omitempty,min=1,max=3"`
	Year            int    `json:"year" validate:"omitempty,min=2001,max=2040"`
}

func (ns *NewStudent) Validate(validate *validator.Validate, svc *Service) error {
	ns.FullName = core.CleanString(ns.FullName)
	ns.AdmissionNumber = core.CleanString(ns.AdmissionNumber)
	ns.Stream = core.CleanString(ns.Stream)
	ns.ParentName = core.CleanString(ns.ParentName)
	ns.PhoneNumber = core.CleanString(ns.PhoneNumber)

	if err := validate.Struct(ns); err != nil {
		return err
	}
	return svc.checkAdmissionNumber(ns.AdmissionNumber)
}
