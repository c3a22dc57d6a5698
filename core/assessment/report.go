package assessment

import (
	"github.com/officialmikal/cbc-edutrac-automation/core/school"
	"github.com/officialmikal/cbc-edutrac-automation/core/student"
)

// Placeholder shown on a report line with no recorded evaluation yet.
const pendingRemark = "Recording evaluation results."

type (
	// ReportLine is one learning area on a report card. Score and Level are
	// empty when no assessment has been recorded for the subject.
	ReportLine struct {
		Subject school.Subject          `json:"subject"`
		Score   *int                    `json:"score"`
		Level   school.PerformanceLevel `json:"level,omitempty"`
		Remarks string                  `json:"remarks"`
	}

	// ReportCard is a learner's full summative report for their current
	// term: every subject of the grade's catalog, assessed or not.
	ReportCard struct {
		Student student.Student `json:"student"`
		Term    int             `json:"term"`
		Year    int             `json:"year"`
		Lines   []ReportLine    `json:"lines"`
	}
)

// ReportCard assembles the report for the learner's own term and year.
// An unknown student is the only failure; missing assessments render as
// placeholder lines.
func (svc *Service) ReportCard(studentID string) (ReportCard, error) {
	st, err := svc.students.GetStudentByID(studentID)
	if err != nil {
		return ReportCard{}, err
	}

	card := ReportCard{Student: st, Term: st.Term, Year: st.Year}
	for _, subj := range school.SubjectsForGrade(st.Grade) {
		line := ReportLine{Subject: subj, Remarks: pendingRemark}
		key := Key{StudentID: st.ID, SubjectID: subj.ID, Term: st.Term, Year: st.Year}
		if a, err := svc.repo.GetAssessment(key); err == nil {
			score := a.Score
			line.Score = &score
			line.Level = a.PerformanceLevel
			if a.Remarks != "" {
				line.Remarks = a.Remarks
			}
		}
		card.Lines = append(card.Lines, line)
	}
	return card, nil
}
