package state

import (
	"github.com/officialmikal/cbc-edutrac-automation/core/assessment"
)

type assessmentRepository struct {
	db *DB
}

func NewAssessmentRepository(db *DB) assessment.Repository {
	return &assessmentRepository{db: db}
}

// indexOf returns the position of the assessment with the given key, or -1.
// Caller must hold the lock.
func (repo *assessmentRepository) indexOf(key assessment.Key) int {
	for i, a := range repo.db.assessments {
		if a.Key() == key {
			return i
		}
	}
	return -1
}

func (repo *assessmentRepository) UpsertAssessment(a assessment.Assessment) (assessment.Assessment, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if i := repo.indexOf(a.Key()); i >= 0 {
		repo.db.assessments[i] = a
	} else {
		repo.db.assessments = append(repo.db.assessments, a)
	}
	repo.db.snapshot()
	return a, nil
}

func (repo *assessmentRepository) GetAssessment(key assessment.Key) (assessment.Assessment, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if i := repo.indexOf(key); i >= 0 {
		return repo.db.assessments[i], nil
	}
	return assessment.Assessment{}, assessment.ErrNotFound
}

func (repo *assessmentRepository) FilterAssessments(filter assessment.QueryFilter) ([]assessment.Assessment, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	matched := make([]assessment.Assessment, 0)
	for _, a := range repo.db.assessments {
		if filter.StudentID != "" && a.StudentID != filter.StudentID {
			continue
		}
		if filter.SubjectID != "" && a.SubjectID != filter.SubjectID {
			continue
		}
		if filter.Term != 0 && a.Term != filter.Term {
			continue
		}
		if filter.Year != 0 && a.Year != filter.Year {
			continue
		}
		matched = append(matched, a)
	}
	return matched, nil
}

func (repo *assessmentRepository) SetAssessmentRemark(key assessment.Key, remark string) (assessment.Assessment, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	i := repo.indexOf(key)
	if i < 0 {
		return assessment.Assessment{}, assessment.ErrNotFound
	}
	repo.db.assessments[i].Remarks = remark
	repo.db.snapshot()
	return repo.db.assessments[i], nil
}
