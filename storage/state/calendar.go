package state

import (
	"github.com/google/uuid"

	"github.com/officialmikal/cbc-edutrac-automation/core/calendar"
)

type calendarRepository struct {
	db *DB
}

func NewCalendarRepository(db *DB) calendar.Repository {
	return &calendarRepository{db: db}
}

func (repo *calendarRepository) QueryAllTerms() ([]calendar.TermCalendar, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	terms := make([]calendar.TermCalendar, len(repo.db.calendar))
	copy(terms, repo.db.calendar)
	return terms, nil
}

func (repo *calendarRepository) GetTerm(term, year int) (calendar.TermCalendar, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, tc := range repo.db.calendar {
		if tc.Term == term && tc.Year == year {
			return tc, nil
		}
	}
	return calendar.TermCalendar{}, calendar.ErrNotFound
}

func (repo *calendarRepository) AddTermActivity(term, year int, act calendar.Activity) (calendar.TermCalendar, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	act.ID = uuid.NewString()

	idx := -1
	for i, tc := range repo.db.calendar {
		if tc.Term == term && tc.Year == year {
			idx = i
			break
		}
	}
	if idx < 0 {
		repo.db.calendar = append(repo.db.calendar, calendar.TermCalendar{Term: term, Year: year})
		idx = len(repo.db.calendar) - 1
	}
	repo.db.calendar[idx].Activities = append(repo.db.calendar[idx].Activities, act)
	repo.db.snapshot()
	return repo.db.calendar[idx], nil
}
