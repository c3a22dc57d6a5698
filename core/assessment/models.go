package assessment

import (
	"github.com/go-playground/validator/v10"

	"github.com/officialmikal/cbc-edutrac-automation/core"
	"github.com/officialmikal/cbc-edutrac-automation/core/school"
)

type (
	// Assessment is one learner's recorded score for one subject in one
	// term. Its identity is the composite Key; there is no independent id
	// and exactly one record may exist per key at any time.
	Assessment struct {
		StudentID        string                  `json:"studentId"`
		SubjectID        string                  `json:"subjectId"`
		Score            int                     `json:"score"`
		PerformanceLevel school.PerformanceLevel `json:"performanceLevel"`
		Remarks          string                  `json:"remarks"`
		Term             int                     `json:"term"`
		Year             int                     `json:"year"`
	}

	// Key identifies an Assessment.
	Key struct {
		StudentID string
		SubjectID string
		Term      int
		Year      int
	}
)

func (a Assessment) Key() Key {
	return Key{StudentID: a.StudentID, SubjectID: a.SubjectID, Term: a.Term, Year: a.Year}
}

// Entry is the marks-entry form data for a single subject score.
// The performance level is never part of the input; it is derived.
type Entry struct {
	StudentID string `json:"studentId" validate:"required"`
	SubjectID string `json:"subjectId" validate:"required"`
	Score     int    `json:"score" validate:"min=0,max=100"`
	Remarks   string `json:"remarks"`
	Term      int    `json:"term" validate:"omitempty,min=1,max=3"`
	Year      int    `json:"year" validate:"omitempty,min=2001,max=2040"`
}

func (e *Entry) Validate(validate *validator.Validate) error {
	e.StudentID = core.CleanString(e.StudentID)
	e.SubjectID = core.CleanString(e.SubjectID)
	e.Remarks = core.CleanString(e.Remarks)
	return validate.Struct(e)
}
