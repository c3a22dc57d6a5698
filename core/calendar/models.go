package calendar

import (
	"github.com/go-playground/validator/v10"

	"github.com/officialmikal/cbc-edutrac-automation/core"
)

// DateLayout is the calendar-date format term dates and activities use.
const DateLayout = "2006-01-02"

type (
	Activity struct {
		ID    string `json:"id"`
		Title string `json:"title"`
		Date  string `json:"date"` // DateLayout
	}

	// TermCalendar describes one school term; identity is (Term, Year).
	// Read-mostly reference data maintained by the admin.
	TermCalendar struct {
		Term       int        `json:"term"`
		Year       int        `json:"year"`
		StartDate  string     `json:"startDate"`
		EndDate    string     `json:"endDate"`
		Activities []Activity `json:"activities"`
	}
)

// NewActivity is the add-event form data.
type NewActivity struct {
	Term  int    `json:"term" validate:"required,min=1,max=3"`
	Year  int    `json:"year" validate:"required,min=2001,max=2040"`
	Title string `json:"title" validate:"required"`
	Date  string `json:"date" validate:"required,datetime=2006-01-02"`
}

func (na *NewActivity) Validate(validate *validator.Validate) error {
	na.Title = core.CleanString(na.Title)
	na.Date = core.CleanString(na.Date)
	return validate.Struct(na)
}

// Defaults is the seeded 2024 academic calendar used when no calendar has
// been stored yet.
func Defaults() []TermCalendar {
	return []TermCalendar{
		{
			Term: 1, Year: 2024, StartDate: "2024-01-08", EndDate: "2024-04-05",
			Activities: []Activity{
				{ID: "1", Title: "Opening Day", Date: "2024-01-08"},
				{ID: "2", Title: "Mid-Term Break", Date: "2024-02-28"},
			},
		},
		{
			Term: 2, Year: 2024, StartDate: "2024-04-29", EndDate: "2024-08-02",
			Activities: []Activity{
				{ID: "3", Title: "Term 2 Starts", Date: "2024-04-29"},
			},
		},
		{
			Term: 3, Year: 2024, StartDate: "2024-08-26", EndDate: "2024-10-25",
			Activities: []Activity{
				{ID: "4", Title: "National Exams", Date: "2024-10-20"},
			},
		},
	}
}
