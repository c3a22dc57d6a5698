package student

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/officialmikal/cbc-edutrac-automation/core"
	"github.com/officialmikal/cbc-edutrac-automation/core/school"
)

var (
	gradeTag  = "grade"
	gradeText = "invalid grade"
)

// InitValidators registers this package's custom validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(gradeTag, gradeValidation)
	core.RegisterCustomTranslation(validate, translator, gradeTag, gradeText)
}

// gradeValidation only allows grades on the PP1..Grade 9 ladder.
func gradeValidation(fl validator.FieldLevel) bool {
	return school.Grade(fl.Field().String()).IsValid()
}
