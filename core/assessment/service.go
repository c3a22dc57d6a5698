package assessment

import (
	"context"
	"errors"
	"sync"

	"github.com/officialmikal/cbc-edutrac-automation/core"
	"github.com/officialmikal/cbc-edutrac-automation/core/school"
	"github.com/officialmikal/cbc-edutrac-automation/core/student"
)

var (
	// errors
	ErrNotFound       = errors.New("assessment not found")
	ErrUnknownSubject = errors.New("subject is not in this learner's catalog")
)

type (
	QueryFilter struct {
		StudentID string `query:"studentId"`
		SubjectID string `query:"subjectId"`
		Term      int    `query:"term"`
		Year      int    `query:"year"`
	}

	Repository interface {
		// UpsertAssessment replaces any existing Assessment with the same
		// composite key, otherwise inserts.
		UpsertAssessment(a Assessment) (Assessment, error)
		GetAssessment(key Key) (Assessment, error)
		// FilterAssessments applies AND operation on set QueryFilter fields.
		FilterAssessments(filter QueryFilter) ([]Assessment, error)
		// SetAssessmentRemark updates only the Remarks field of the matching
		// Assessment. ErrNotFound when the key no longer exists; the record
		// is never (re)created by this call.
		SetAssessmentRemark(key Key, remark string) (Assessment, error)
	}

	Service struct {
		repo      Repository
		students  student.Repository
		remarkSvc core.RemarkService
	}
)

func NewService(repo Repository, students student.Repository, remarkSvc core.RemarkService) *Service {
	return &Service{repo: repo, students: students, remarkSvc: remarkSvc}
}

// Upsert records a score for (student, subject, term, year), replacing any
// previous entry for that key. The performance level is always derived from
// the score here; existing remarks are kept unless the entry brings its own.
func (svc *Service) Upsert(e Entry) (Assessment, error) {
	st, err := svc.students.GetStudentByID(e.StudentID)
	if err != nil {
		return Assessment{}, err
	}
	if _, ok := school.SubjectForGrade(st.Grade, e.SubjectID); !ok {
		return Assessment{}, core.NewValidationError(ErrUnknownSubject,
			core.FieldError{Field: "subjectId", Error: ErrUnknownSubject.Error()})
	}

	a := Assessment{
		StudentID:        e.StudentID,
		SubjectID:        e.SubjectID,
		Score:            e.Score,
		PerformanceLevel: school.LevelForScore(e.Score),
		Remarks:          e.Remarks,
		Term:             e.Term,
		Year:             e.Year,
	}
	if a.Term == 0 {
		a.Term = st.Term
	}
	if a.Year == 0 {
		a.Year = st.Year
	}
	if a.Remarks == "" {
		if prev, err := svc.repo.GetAssessment(a.Key()); err == nil {
			a.Remarks = prev.Remarks
		}
	}
	return svc.repo.UpsertAssessment(a)
}

func (svc *Service) Get(key Key) (Assessment, error) {
	return svc.repo.GetAssessment(key)
}

func (svc *Service) Filter(filter QueryFilter) ([]Assessment, error) {
	return svc.repo.FilterAssessments(filter)
}

// GenerateRemark fetches a qualitative remark for one assessment and stores
// it. Only the Remarks field is touched; if the assessment was replaced or
// removed in the meantime the remark is discarded (ErrNotFound).
func (svc *Service) GenerateRemark(ctx context.Context, key Key) (Assessment, error) {
	a, err := svc.repo.GetAssessment(key)
	if err != nil {
		return Assessment{}, err
	}
	st, err := svc.students.GetStudentByID(a.StudentID)
	if err != nil {
		return Assessment{}, err
	}

	remark := svc.remarkSvc.Generate(ctx, remarkRequest(st, a))
	return svc.repo.SetAssessmentRemark(key, remark)
}

// GenerateRemarks fetches remarks for all of a learner's assessments.
// The calls are independent and issued concurrently; results that no longer
// match a stored assessment are dropped silently.
func (svc *Service) GenerateRemarks(ctx context.Context, studentID string) ([]Assessment, error) {
	st, err := svc.students.GetStudentByID(studentID)
	if err != nil {
		return nil, err
	}
	assessments, err := svc.repo.FilterAssessments(QueryFilter{StudentID: studentID})
	if err != nil {
		return nil, err
	}

	remarks := make([]string, len(assessments))
	var wg sync.WaitGroup
	for i, a := range assessments {
		wg.Add(1)
		go func(i int, a Assessment) {
			defer wg.Done()
			remarks[i] = svc.remarkSvc.Generate(ctx, remarkRequest(st, a))
		}(i, a)
	}
	wg.Wait()

	updated := make([]Assessment, 0, len(assessments))
	for i, a := range assessments {
		ua, err := svc.repo.SetAssessmentRemark(a.Key(), remarks[i])
		if err != nil {
			continue // replaced or gone; nothing to apply the remark to
		}
		updated = append(updated, ua)
	}
	return updated, nil
}

func remarkRequest(st student.Student, a Assessment) core.RemarkRequest {
	subjName := "Subject"
	if subj, ok := school.SubjectForGrade(st.Grade, a.SubjectID); ok {
		subjName = subj.Name
	}
	return core.RemarkRequest{
		StudentName: st.FullName,
		SubjectName: subjName,
		Level:       a.PerformanceLevel.String(),
		Score:       a.Score,
	}
}
