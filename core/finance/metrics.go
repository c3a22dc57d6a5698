package finance

import "github.com/officialmikal/cbc-edutrac-automation/core/student"

// Status is a learner's fee standing, derived from comparing paid-to-date
// against the fee target. StatusAll is only a filter wildcard.
type Status string

const (
	StatusAll     Status = "all"
	StatusPaid    Status = "paid"
	StatusPartial Status = "partial"
	StatusUnpaid  Status = "unpaid"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusAll, StatusPaid, StatusPartial, StatusUnpaid:
		return true
	default:
		return false
	}
}

// StatusOf is the single fee-status predicate. Metrics counting and status
// filtering both go through here so the two can never disagree.
func StatusOf(st student.Student) Status {
	switch {
	case st.PaidFees == 0:
		return StatusUnpaid
	case st.PaidFees >= st.TotalFees && st.TotalFees > 0:
		return StatusPaid
	default:
		return StatusPartial
	}
}

// FilterByStatus returns the students matching the given standing,
// preserving order. StatusAll returns the input as-is.
func FilterByStatus(students []student.Student, status Status) []student.Student {
	if status == StatusAll {
		return students
	}
	matched := make([]student.Student, 0, len(students))
	for _, st := range students {
		if StatusOf(st) == status {
			matched = append(matched, st)
		}
	}
	return matched
}

// Metrics are the dashboard aggregates over the whole school.
type Metrics struct {
	TotalStudents    int     `json:"totalStudents"`
	TotalCollected   float64 `json:"totalCollected"`
	TotalOutstanding float64 `json:"totalOutstanding"`
	PaidFull         int     `json:"paidFull"`
	PaidPartial      int     `json:"paidPartial"`
	PaidNone         int     `json:"paidNone"`
}

// ComputeMetrics is pure and runs in one pass over each collection.
// Outstanding never counts overpayments as credit (floored at 0 per student).
func ComputeMetrics(students []student.Student, payments []Payment) Metrics {
	m := Metrics{TotalStudents: len(students)}
	for _, p := range payments {
		m.TotalCollected += p.Amount
	}
	for _, st := range students {
		m.TotalOutstanding += st.Balance()
		switch StatusOf(st) {
		case StatusPaid:
			m.PaidFull++
		case StatusPartial:
			m.PaidPartial++
		case StatusUnpaid:
			m.PaidNone++
		}
	}
	return m
}
