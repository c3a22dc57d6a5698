package student

import (
	"errors"

	"github.com/officialmikal/cbc-edutrac-automation/core"
	"github.com/officialmikal/cbc-edutrac-automation/core/school"
)

var (
	// errors
	ErrNotFound           = errors.New("student not found")
	ErrAdmNumberExists    = errors.New("a learner with this admission number already exists")
	errAdmNumberFieldName = "admissionNumber"
)

type (
	Repository interface {
		CheckAdmissionNumberUniqueness(admissionNumber string) error
		CreateStudent(st Student) (Student, error)
		QueryAllStudents() ([]Student, error)
		GetStudentByID(id string) (Student, error)
		GetStudentByAdmissionNumber(admissionNumber string) (Student, error)
		// FilterStudentsByGrade returns students of the given grade, in admission order.
		FilterStudentsByGrade(grade school.Grade) ([]Student, error)
	}

	Service struct {
		repo Repository
		conf *core.Config
	}
)

func NewService(repo Repository, conf *core.Config) *Service {
	return &Service{repo: repo, conf: conf}
}

func (svc *Service) checkAdmissionNumber(admNo string) error {
	if err := svc.repo.CheckAdmissionNumberUniqueness(admNo); err != nil {
		if errors.Is(err, ErrAdmNumberExists) {
			return core.NewValidationError(err, core.FieldError{Field: errAdmNumberFieldName, Error: err.Error()})
		}
		return err
	}
	return nil
}

// Create admits a new learner. Fees start at the grade's target with nothing
// paid; term/year and the optional form fields fall back to session defaults.
func (svc *Service) Create(ns NewStudent) (Student, error) {
	st := Student{
		FullName:        ns.FullName,
		AdmissionNumber: ns.AdmissionNumber,
		Grade:           school.Grade(ns.Grade),
		Stream:          ns.Stream,
		Gender:          ns.Gender,
		ParentName:      ns.ParentName,
		PhoneNumber:     ns.PhoneNumber,
		Term:            ns.Term,
		Year:            ns.Year,
		TotalFees:       FeeTargetForGrade(school.Grade(ns.Grade)),
		PaidFees:        0,
	}
	if st.Stream == "" {
		st.Stream = "Main"
	}
	if st.ParentName == "" {
		st.ParentName = "Parent Not Set"
	}
	if st.Term == 0 {
		st.Term = svc.conf.School.CurrentTerm
	}
	if st.Year == 0 {
		st.Year = svc.conf.School.CurrentYear
	}
	return svc.repo.CreateStudent(st)
}

func (svc *Service) QueryAll() ([]Student, error) {
	return svc.repo.QueryAllStudents()
}

func (svc *Service) GetByID(id string) (Student, error) {
	return svc.repo.GetStudentByID(id)
}

func (svc *Service) GetByAdmissionNumber(admNo string) (Student, error) {
	return svc.repo.GetStudentByAdmissionNumber(core.CleanString(admNo))
}

func (svc *Service) FilterByGrade(grade school.Grade) ([]Student, error) {
	return svc.repo.FilterStudentsByGrade(grade)
}
