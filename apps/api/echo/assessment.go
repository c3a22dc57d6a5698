package echoapi

import (
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/officialmikal/cbc-edutrac-automation/core"
	"github.com/officialmikal/cbc-edutrac-automation/core/assessment"
	"github.com/officialmikal/cbc-edutrac-automation/core/staff"
	"github.com/officialmikal/cbc-edutrac-automation/core/student"
)

type assessmentApi struct {
	svc        *assessment.Service
	validate   *validator.Validate
	translator ut.Translator
}

func registerAssessmentAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := assessmentApi{
		svc:        deps.AssessmentSvc,
		validate:   deps.Validate,
		translator: deps.Translator,
	}

	ag := g.Group("/assessments", jwt, viewMiddleware(staff.ViewMarks))
	ag.PUT("", api.upsert)
	ag.GET("", api.query)
	ag.POST("/remarks", api.generateRemark)
}

// Handlers

func (api *assessmentApi) upsert(ctx echo.Context) error {
	var data assessment.Entry
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Entry")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	a, err := api.svc.Upsert(data)
	if err != nil {
		if errors.Cause(err) == student.ErrNotFound {
			return errHttpNotFound
		}
		return err
	}
	return ctx.JSON(http.StatusOK, a)
}

func (api *assessmentApi) query(ctx echo.Context) error {
	filter := new(assessment.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []assessment.Assessment{})
	}

	assessments, err := api.svc.Filter(*filter)
	if err != nil {
		return errors.Wrap(err, "querying assessments")
	}
	if assessments == nil {
		assessments = []assessment.Assessment{}
	}
	return ctx.JSON(http.StatusOK, assessments)
}

func (api *assessmentApi) generateRemark(ctx echo.Context) error {
	var data RemarkRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to RemarkRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	a, err := api.svc.GenerateRemark(ctx.Request().Context(), data.key())
	if err != nil {
		if cause := errors.Cause(err); cause == assessment.ErrNotFound || cause == student.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "generating remark")
	}
	return ctx.JSON(http.StatusOK, a)
}

// RemarkRequest identifies the assessment a remark is wanted for.
type RemarkRequest struct {
	StudentID string `json:"studentId" validate:"required"`
	SubjectID string `json:"subjectId" validate:"required"`
	Term      int    `json:"term" validate:"required,min=1,max=3"`
	Year      int    `json:"year" validate:"required,min=2001,max=2040"`
}

func (rr *RemarkRequest) Validate(validate *validator.Validate) error {
	rr.StudentID = core.CleanString(rr.StudentID)
	rr.SubjectID = core.CleanString(rr.SubjectID)
	return validate.Struct(rr)
}

func (rr *RemarkRequest) key() assessment.Key {
	return assessment.Key{
		StudentID: rr.StudentID,
		SubjectID: rr.SubjectID,
		Term:      rr.Term,
		Year:      rr.Year,
	}
}
