package assessment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officialmikal/cbc-edutrac-automation/core"
	"github.com/officialmikal/cbc-edutrac-automation/core/assessment"
	"github.com/officialmikal/cbc-edutrac-automation/core/school"
	"github.com/officialmikal/cbc-edutrac-automation/core/student"
	dummyremark "github.com/officialmikal/cbc-edutrac-automation/services/remark/dummy"
	"github.com/officialmikal/cbc-edutrac-automation/storage/state"
	testutil "github.com/officialmikal/cbc-edutrac-automation/tests"
)

func setup(t *testing.T, remarkSvc core.RemarkService) (*assessment.Service, *state.DB) {
	t.Helper()

	db := testutil.OpenDB(t)
	svc := assessment.NewService(
		state.NewAssessmentRepository(db),
		state.NewStudentRepository(db),
		remarkSvc,
	)
	return svc, db
}

func TestService_Upsert(t *testing.T) {
	svc, db := setup(t, dummyremark.NewService("dummy"))
	st := testutil.CreateStudent(t, state.NewStudentRepository(db), "John Kamau", "ADM001", school.Grade4)

	t.Run("derives level and session defaults", func(t *testing.T) {
		a, err := svc.Upsert(assessment.Entry{StudentID: st.ID, SubjectID: "mat", Score: 45})
		require.NoError(t, err)

		assert.Equal(t, school.LevelApproaching, a.PerformanceLevel)
		assert.Equal(t, st.Term, a.Term)
		assert.Equal(t, st.Year, a.Year)
	})

	t.Run("re-scoring keeps existing remarks", func(t *testing.T) {
		key := assessment.Key{StudentID: st.ID, SubjectID: "mat", Term: st.Term, Year: st.Year}
		_, err := svc.GenerateRemark(context.Background(), key)
		require.NoError(t, err)

		a, err := svc.Upsert(assessment.Entry{StudentID: st.ID, SubjectID: "mat", Score: 85})
		require.NoError(t, err)

		assert.Equal(t, 85, a.Score)
		assert.Equal(t, school.LevelExceeding, a.PerformanceLevel)
		assert.Equal(t, "dummy", a.Remarks)
	})

	t.Run("entry remarks win", func(t *testing.T) {
		a, err := svc.Upsert(assessment.Entry{StudentID: st.ID, SubjectID: "mat", Score: 85, Remarks: "teacher says"})
		require.NoError(t, err)
		assert.Equal(t, "teacher says", a.Remarks)
	})

	t.Run("unknown student", func(t *testing.T) {
		_, err := svc.Upsert(assessment.Entry{StudentID: "nope", SubjectID: "mat", Score: 50})
		assert.Equal(t, student.ErrNotFound, err)
	})

	t.Run("subject outside the grade catalog", func(t *testing.T) {
		// a lower-primary learner has no JSS subjects
		_, err := svc.Upsert(assessment.Entry{StudentID: st.ID, SubjectID: "mat_jss", Score: 50})
		require.Error(t, err)

		var vErr *core.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "subjectId", vErr.Fields[0].Field)
	})
}

func TestService_GenerateRemark(t *testing.T) {
	svc, db := setup(t, dummyremark.NewService("Shows steady growth in problem solving."))
	st := testutil.CreateStudent(t, state.NewStudentRepository(db), "Mary Atieno", "ADM002", school.Grade7)

	_, err := svc.Upsert(assessment.Entry{StudentID: st.ID, SubjectID: "mat_jss", Score: 72})
	require.NoError(t, err)

	key := assessment.Key{StudentID: st.ID, SubjectID: "mat_jss", Term: st.Term, Year: st.Year}
	a, err := svc.GenerateRemark(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, "Shows steady growth in problem solving.", a.Remarks)
	assert.Equal(t, 72, a.Score)

	t.Run("unknown assessment", func(t *testing.T) {
		_, err := svc.GenerateRemark(context.Background(), assessment.Key{StudentID: "nope"})
		assert.Equal(t, assessment.ErrNotFound, err)
	})
}

func TestService_GenerateRemarks(t *testing.T) {
	svc, db := setup(t, dummyremark.NewService("bulk remark"))
	st := testutil.CreateStudent(t, state.NewStudentRepository(db), "John Kamau", "ADM001", school.Grade4)

	for _, subjID := range []string{"eng", "kis", "mat"} {
		_, err := svc.Upsert(assessment.Entry{StudentID: st.ID, SubjectID: subjID, Score: 60})
		require.NoError(t, err)
	}

	updated, err := svc.GenerateRemarks(context.Background(), st.ID)
	require.NoError(t, err)
	require.Len(t, updated, 3)
	for _, a := range updated {
		assert.Equal(t, "bulk remark", a.Remarks)
	}

	t.Run("unknown student", func(t *testing.T) {
		_, err := svc.GenerateRemarks(context.Background(), "nope")
		assert.Equal(t, student.ErrNotFound, err)
	})

	t.Run("no assessments yet", func(t *testing.T) {
		other := testutil.CreateStudent(t, state.NewStudentRepository(db), "Mary Atieno", "ADM002", school.Grade4)
		updated, err := svc.GenerateRemarks(context.Background(), other.ID)
		require.NoError(t, err)
		assert.Empty(t, updated)
	})
}

func TestService_ReportCard(t *testing.T) {
	svc, db := setup(t, dummyremark.NewService("dummy"))
	st := testutil.CreateStudent(t, state.NewStudentRepository(db), "John Kamau", "ADM001", school.Grade4)

	_, err := svc.Upsert(assessment.Entry{StudentID: st.ID, SubjectID: "mat", Score: 45, Remarks: "More practice needed."})
	require.NoError(t, err)

	card, err := svc.ReportCard(st.ID)
	require.NoError(t, err)

	assert.Equal(t, st, card.Student)
	assert.Equal(t, st.Term, card.Term)
	assert.Equal(t, st.Year, card.Year)
	require.Len(t, card.Lines, len(school.CBCSubjects))

	for _, line := range card.Lines {
		if line.Subject.ID == "mat" {
			require.NotNil(t, line.Score)
			assert.Equal(t, 45, *line.Score)
			assert.Equal(t, school.LevelApproaching, line.Level)
			assert.Equal(t, "More practice needed.", line.Remarks)
		} else {
			assert.Nil(t, line.Score)
			assert.Empty(t, line.Level)
			assert.Equal(t, "Recording evaluation results.", line.Remarks)
		}
	}

	t.Run("unknown student", func(t *testing.T) {
		_, err := svc.ReportCard("nope")
		assert.Equal(t, student.ErrNotFound, err)
	})
}
