package echoapi

import (
	"net/http"
	"strconv"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/officialmikal/cbc-edutrac-automation/core"
	"github.com/officialmikal/cbc-edutrac-automation/core/calendar"
	"github.com/officialmikal/cbc-edutrac-automation/core/staff"
)

type calendarApi struct {
	svc        *calendar.Service
	validate   *validator.Validate
	translator ut.Translator
}

func registerCalendarAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := calendarApi{
		svc:        deps.CalendarSvc,
		validate:   deps.Validate,
		translator: deps.Translator,
	}

	cg := g.Group("/calendar", jwt)
	cg.GET("", api.query, viewMiddleware(staff.ViewCalendar))
	cg.GET("/:year/:term", api.retrieve, viewMiddleware(staff.ViewCalendar))
	cg.POST("/:year/:term/activities", api.addActivity, viewMiddleware(staff.ViewSettings))
}

// Handlers

func (api *calendarApi) query(ctx echo.Context) error {
	terms, err := api.svc.All()
	if err != nil {
		return errors.Wrap(err, "querying calendar")
	}
	if terms == nil {
		terms = []calendar.TermCalendar{}
	}
	return ctx.JSON(http.StatusOK, terms)
}

func (api *calendarApi) retrieve(ctx echo.Context) error {
	term, year, err := termYearParams(ctx)
	if err != nil {
		return err
	}

	tc, err := api.svc.Get(term, year)
	if err != nil {
		if errors.Cause(err) == calendar.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding term calendar")
	}
	return ctx.JSON(http.StatusOK, tc)
}

func (api *calendarApi) addActivity(ctx echo.Context) error {
	term, year, err := termYearParams(ctx)
	if err != nil {
		return err
	}

	var data NewActivityRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewActivityRequest")
	}

	na := calendar.NewActivity{
		Term:  term,
		Year:  year,
		Title: data.Title,
		Date:  data.Date,
	}
	if err := na.Validate(api.validate); err != nil {
		return err
	}

	tc, err := api.svc.AddActivity(na)
	if err != nil {
		return errors.Wrap(err, "adding activity")
	}
	return ctx.JSON(http.StatusCreated, tc)
}

func termYearParams(ctx echo.Context) (term, year int, err error) {
	if term, err = strconv.Atoi(ctx.Param("term")); err != nil {
		return 0, 0, core.NewValidationError(nil, core.FieldError{Field: "term", Error: "must be a number"})
	}
	if year, err = strconv.Atoi(ctx.Param("year")); err != nil {
		return 0, 0, core.NewValidationError(nil, core.FieldError{Field: "year", Error: "must be a number"})
	}
	return term, year, nil
}

// NewActivityRequest is the body of the add-activity endpoint; term and year
// come from the path.
type NewActivityRequest struct {
	Title string `json:"title"`
	Date  string `json:"date"`
}
