package finance

import (
	"github.com/officialmikal/cbc-edutrac-automation/core/student"
)

type (
	Repository interface {
		// RecordPayment appends the ledger entry (assigning its id and date)
		// and increments the matching student's paid-to-date in one atomic
		// step: no reader may observe one write without the other.
		// student.ErrNotFound when the student id is unknown.
		RecordPayment(p Payment) (Payment, student.Student, error)
		QueryAllPayments() ([]Payment, error)
		FilterPaymentsByStudent(studentID string) ([]Payment, error)
	}

	Service struct {
		repo     Repository
		students student.Repository
	}
)

func NewService(repo Repository, students student.Repository) *Service {
	return &Service{repo: repo, students: students}
}

// Record receives a fee payment for a learner. Validation rejections
// (non-positive amount, unknown method/category) are caught by
// NewPayment.Validate before this is called; an unknown learner surfaces
// as student.ErrNotFound and nothing is recorded.
func (svc *Service) Record(np NewPayment) (Payment, student.Student, error) {
	return svc.repo.RecordPayment(Payment{
		StudentID: np.StudentID,
		Amount:    np.Amount,
		Method:    Method(np.Method),
		Category:  Category(np.Category),
	})
}

func (svc *Service) QueryAll() ([]Payment, error) {
	return svc.repo.QueryAllPayments()
}

func (svc *Service) FilterByStudent(studentID string) ([]Payment, error) {
	return svc.repo.FilterPaymentsByStudent(studentID)
}

// Metrics recomputes the dashboard aggregates from current state.
func (svc *Service) Metrics() (Metrics, error) {
	students, err := svc.students.QueryAllStudents()
	if err != nil {
		return Metrics{}, err
	}
	payments, err := svc.repo.QueryAllPayments()
	if err != nil {
		return Metrics{}, err
	}
	return ComputeMetrics(students, payments), nil
}

// FilterStudents returns the students in the given fee standing.
func (svc *Service) FilterStudents(status Status) ([]student.Student, error) {
	students, err := svc.students.QueryAllStudents()
	if err != nil {
		return nil, err
	}
	return FilterByStatus(students, status), nil
}
