package echoapi

import (
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/officialmikal/cbc-edutrac-automation/core"
	"github.com/officialmikal/cbc-edutrac-automation/core/finance"
	"github.com/officialmikal/cbc-edutrac-automation/core/staff"
	"github.com/officialmikal/cbc-edutrac-automation/core/student"
)

type financeApi struct {
	svc        *finance.Service
	validate   *validator.Validate
	translator ut.Translator
}

func registerFinanceAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := financeApi{
		svc:        deps.FinanceSvc,
		validate:   deps.Validate,
		translator: deps.Translator,
	}

	fg := g.Group("/finance", jwt, viewMiddleware(staff.ViewFinance))
	fg.GET("/metrics", api.metrics)
	fg.GET("/students", api.queryStudents)
	fg.GET("/payments", api.queryPayments)
	fg.POST("/payments", api.record)
}

// Handlers

func (api *financeApi) metrics(ctx echo.Context) error {
	metrics, err := api.svc.Metrics()
	if err != nil {
		return errors.Wrap(err, "computing metrics")
	}
	return ctx.JSON(http.StatusOK, metrics)
}

func (api *financeApi) queryStudents(ctx echo.Context) error {
	status := finance.Status(ctx.QueryParam("status"))
	if status == "" {
		status = finance.StatusAll
	}
	if !status.IsValid() {
		return core.NewValidationError(nil, core.FieldError{Field: "status", Error: "unknown fee status"})
	}

	students, err := api.svc.FilterStudents(status)
	if err != nil {
		return errors.Wrap(err, "filtering students by fee status")
	}
	if students == nil {
		students = []student.Student{}
	}
	return ctx.JSON(http.StatusOK, students)
}

func (api *financeApi) queryPayments(ctx echo.Context) error {
	var payments []finance.Payment
	var err error

	if studentID := ctx.QueryParam("studentId"); studentID != "" {
		payments, err = api.svc.FilterByStudent(studentID)
	} else {
		payments, err = api.svc.QueryAll()
	}
	if err != nil {
		return errors.Wrap(err, "querying payments")
	}
	if payments == nil {
		payments = []finance.Payment{}
	}
	return ctx.JSON(http.StatusOK, payments)
}

func (api *financeApi) record(ctx echo.Context) error {
	var data finance.NewPayment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewPayment")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	p, st, err := api.svc.Record(data)
	if err != nil {
		if errors.Cause(err) == student.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "recording payment")
	}
	return ctx.JSON(http.StatusCreated, PaymentResponse{Payment: p, Student: st})
}

// PaymentResponse carries the recorded payment together with the learner's
// refreshed fee standing.
type PaymentResponse struct {
	Payment finance.Payment `json:"payment"`
	Student student.Student `json:"student"`
}
