package echoapi

import (
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/officialmikal/cbc-edutrac-automation/core"
	"github.com/officialmikal/cbc-edutrac-automation/core/assessment"
	"github.com/officialmikal/cbc-edutrac-automation/core/school"
	"github.com/officialmikal/cbc-edutrac-automation/core/staff"
	"github.com/officialmikal/cbc-edutrac-automation/core/student"
)

type studentApi struct {
	svc           *student.Service
	assessmentSvc *assessment.Service
	validate      *validator.Validate
	translator    ut.Translator
}

func registerStudentAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := studentApi{
		svc:           deps.StudentSvc,
		assessmentSvc: deps.AssessmentSvc,
		validate:      deps.Validate,
		translator:    deps.Translator,
	}

	sg := g.Group("/students", jwt)
	sg.GET("", api.query, viewMiddleware(staff.ViewStudents))
	sg.POST("", api.create, viewMiddleware(staff.ViewStudents))
	sg.GET("/:id", api.retrieve, viewMiddleware(staff.ViewStudents))
	sg.GET("/:id/report", api.report, viewMiddleware(staff.ViewReports))
	sg.POST("/:id/remarks", api.generateRemarks, viewMiddleware(staff.ViewMarks))
}

// Handlers

func (api *studentApi) query(ctx echo.Context) error {
	var students []student.Student
	var err error

	if grade := ctx.QueryParam("grade"); grade != "" {
		g := school.Grade(grade)
		if !g.IsValid() {
			return core.NewValidationError(nil, core.FieldError{Field: "grade", Error: "unknown grade"})
		}
		students, err = api.svc.FilterByGrade(g)
	} else {
		students, err = api.svc.QueryAll()
	}
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	if students == nil {
		students = []student.Student{}
	}
	return ctx.JSON(http.StatusOK, students)
}

func (api *studentApi) create(ctx echo.Context) error {
	var data student.NewStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewStudent")
	}
	if err := data.Validate(api.validate, api.svc); err != nil {
		return err
	}

	st, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating student")
	}
	return ctx.JSON(http.StatusCreated, st)
}

func (api *studentApi) retrieve(ctx echo.Context) error {
	st, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == student.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding student by ID")
	}
	return ctx.JSON(http.StatusOK, st)
}

func (api *studentApi) report(ctx echo.Context) error {
	card, err := api.assessmentSvc.ReportCard(ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == student.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "assembling report card")
	}
	return ctx.JSON(http.StatusOK, card)
}

func (api *studentApi) generateRemarks(ctx echo.Context) error {
	assessments, err := api.assessmentSvc.GenerateRemarks(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == student.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "generating remarks")
	}
	if assessments == nil {
		assessments = []assessment.Assessment{}
	}
	return ctx.JSON(http.StatusOK, assessments)
}
