package finance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officialmikal/cbc-edutrac-automation/core/finance"
	"github.com/officialmikal/cbc-edutrac-automation/core/school"
	"github.com/officialmikal/cbc-edutrac-automation/core/student"
	"github.com/officialmikal/cbc-edutrac-automation/storage/state"
	testutil "github.com/officialmikal/cbc-edutrac-automation/tests"
)

func setup(t *testing.T) (*finance.Service, *state.DB) {
	t.Helper()

	db := testutil.OpenDB(t)
	return finance.NewService(state.NewPaymentRepository(db), state.NewStudentRepository(db)), db
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		paid  float64
		want  finance.Status
	}{
		{"nothing paid", 22000, 0, finance.StatusUnpaid},
		{"partially paid", 22000, 10000, finance.StatusPartial},
		{"fully paid", 22000, 22000, finance.StatusPaid},
		{"overpaid", 22000, 30000, finance.StatusPaid},
		{"zero target, nothing paid", 0, 0, finance.StatusUnpaid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := student.Student{TotalFees: tt.total, PaidFees: tt.paid}
			assert.Equal(t, tt.want, finance.StatusOf(st))
		})
	}
}

func TestService_Record(t *testing.T) {
	svc, db := setup(t)
	st := testutil.CreateStudent(t, state.NewStudentRepository(db), "John Kamau", "ADM001", school.Grade4)

	p, refreshed, err := svc.Record(finance.NewPayment{
		StudentID: st.ID, Amount: 8000, Method: "M-Pesa", Category: "Tuition",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.NotEmpty(t, p.Date)
	assert.Equal(t, finance.MethodMpesa, p.Method)
	assert.Equal(t, finance.CategoryTuition, p.Category)
	assert.EqualValues(t, 8000, refreshed.PaidFees)

	t.Run("unknown student", func(t *testing.T) {
		_, _, err := svc.Record(finance.NewPayment{StudentID: "nope", Amount: 100, Method: "Cash", Category: "Lunch"})
		assert.Equal(t, student.ErrNotFound, err)
	})
}

// The ledger sum must always equal the learner's paid-to-date, and the
// standing moves unpaid -> partial -> paid as payments land.
func TestService_Record_feeStanding(t *testing.T) {
	svc, db := setup(t)
	studentRepo := state.NewStudentRepository(db)
	st := testutil.CreateStudent(t, studentRepo, "Mary Atieno", "ADM002", school.Grade7) // target 35000

	assertStatus := func(want finance.Status) {
		t.Helper()
		current, err := studentRepo.GetStudentByID(st.ID)
		require.NoError(t, err)
		assert.Equal(t, want, finance.StatusOf(current))
	}

	assertStatus(finance.StatusUnpaid)

	_, _, err := svc.Record(finance.NewPayment{StudentID: st.ID, Amount: 15000, Method: "Bank", Category: "Tuition"})
	require.NoError(t, err)
	assertStatus(finance.StatusPartial)

	_, _, err = svc.Record(finance.NewPayment{StudentID: st.ID, Amount: 20000, Method: "M-Pesa", Category: "Tuition"})
	require.NoError(t, err)
	assertStatus(finance.StatusPaid)

	payments, err := svc.FilterByStudent(st.ID)
	require.NoError(t, err)
	var sum float64
	for _, p := range payments {
		sum += p.Amount
	}
	current, err := studentRepo.GetStudentByID(st.ID)
	require.NoError(t, err)
	assert.Equal(t, current.PaidFees, sum)
}

func TestService_Metrics(t *testing.T) {
	svc, db := setup(t)
	studentRepo := state.NewStudentRepository(db)

	unpaid := testutil.CreateStudent(t, studentRepo, "A", "ADM001", school.Grade4)   // 22000
	partial := testutil.CreateStudent(t, studentRepo, "B", "ADM002", school.Grade4)  // 22000
	paidFull := testutil.CreateStudent(t, studentRepo, "C", "ADM003", school.Grade7) // 35000
	_ = unpaid

	_, _, err := svc.Record(finance.NewPayment{StudentID: partial.ID, Amount: 10000, Method: "Cash", Category: "Tuition"})
	require.NoError(t, err)
	_, _, err = svc.Record(finance.NewPayment{StudentID: paidFull.ID, Amount: 35000, Method: "Bank", Category: "Tuition"})
	require.NoError(t, err)

	metrics, err := svc.Metrics()
	require.NoError(t, err)

	assert.Equal(t, 3, metrics.TotalStudents)
	assert.EqualValues(t, 45000, metrics.TotalCollected)
	assert.EqualValues(t, 22000+12000, metrics.TotalOutstanding)
	assert.Equal(t, 1, metrics.PaidFull)
	assert.Equal(t, 1, metrics.PaidPartial)
	assert.Equal(t, 1, metrics.PaidNone)
}

// The metrics counters and the status filter share one predicate, so their
// numbers can never drift apart.
func TestService_FilterStudents(t *testing.T) {
	svc, db := setup(t)
	studentRepo := state.NewStudentRepository(db)

	testutil.CreateStudent(t, studentRepo, "A", "ADM001", school.Grade4)
	partial := testutil.CreateStudent(t, studentRepo, "B", "ADM002", school.Grade4)

	_, _, err := svc.Record(finance.NewPayment{StudentID: partial.ID, Amount: 5000, Method: "Cash", Category: "Lunch"})
	require.NoError(t, err)

	metrics, err := svc.Metrics()
	require.NoError(t, err)

	for _, tt := range []struct {
		status finance.Status
		want   int
	}{
		{finance.StatusAll, metrics.TotalStudents},
		{finance.StatusPaid, metrics.PaidFull},
		{finance.StatusPartial, metrics.PaidPartial},
		{finance.StatusUnpaid, metrics.PaidNone},
	} {
		t.Run(string(tt.status), func(t *testing.T) {
			students, err := svc.FilterStudents(tt.status)
			require.NoError(t, err)
			assert.Len(t, students, tt.want)
		})
	}
}
