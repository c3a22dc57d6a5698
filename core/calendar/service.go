package calendar

import "errors"

var ErrNotFound = errors.New("term calendar not found")

type (
	Repository interface {
		QueryAllTerms() ([]TermCalendar, error)
		GetTerm(term, year int) (TermCalendar, error)
		// AddTermActivity appends an activity (assigning its id) to the
		// (term, year) calendar, creating the term entry if absent.
		AddTermActivity(term, year int, act Activity) (TermCalendar, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) All() ([]TermCalendar, error) {
	return svc.repo.QueryAllTerms()
}

func (svc *Service) Get(term, year int) (TermCalendar, error) {
	return svc.repo.GetTerm(term, year)
}

func (svc *Service) AddActivity(na NewActivity) (TermCalendar, error) {
	return svc.repo.AddTermActivity(na.Term, na.Year, Activity{Title: na.Title, Date: na.Date})
}
