package state

import (
	"github.com/google/uuid"

	"github.com/officialmikal/cbc-edutrac-automation/core/finance"
	"github.com/officialmikal/cbc-edutrac-automation/core/student"
)

type paymentRepository struct {
	db *DB
}

func NewPaymentRepository(db *DB) finance.Repository {
	return &paymentRepository{db: db}
}

// RecordPayment appends the ledger entry and bumps the learner's
// paid-to-date under one critical section; readers either see both
// writes or neither.
func (repo *paymentRepository) RecordPayment(p finance.Payment) (finance.Payment, student.Student, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	idx := -1
	for i, st := range repo.db.students {
		if st.ID == p.StudentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return finance.Payment{}, student.Student{}, student.ErrNotFound
	}

	p.ID = uuid.NewString()
	p.Date = nowFunc().Format(finance.DateLayout)
	repo.db.payments = append(repo.db.payments, p)
	repo.db.students[idx].PaidFees += p.Amount
	repo.db.snapshot()
	return p, repo.db.students[idx], nil
}

func (repo *paymentRepository) QueryAllPayments() ([]finance.Payment, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	payments := make([]finance.Payment, len(repo.db.payments))
	copy(payments, repo.db.payments)
	return payments, nil
}

func (repo *paymentRepository) FilterPaymentsByStudent(studentID string) ([]finance.Payment, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	payments := make([]finance.Payment, 0)
	for _, p := range repo.db.payments {
		if p.StudentID == studentID {
			payments = append(payments, p)
		}
	}
	return payments, nil
}
