package testutil

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/officialmikal/cbc-edutrac-automation/core"
	"github.com/officialmikal/cbc-edutrac-automation/core/school"
	"github.com/officialmikal/cbc-edutrac-automation/core/staff"
	"github.com/officialmikal/cbc-edutrac-automation/core/student"
	logsvc "github.com/officialmikal/cbc-edutrac-automation/services/logger"
	"github.com/officialmikal/cbc-edutrac-automation/storage/kvstore"
	"github.com/officialmikal/cbc-edutrac-automation/storage/state"
)

// NewConfig returns the app configuration used across tests.
func NewConfig() *core.Config {
	return &core.Config{
		AppName:   "ElimuSmart",
		Env:       "TEST",
		TestMode:  true,
		SecretKey: "poQxiaDoBkWmSAbdGbobSzYoAQFkfhRe",
		Server: core.ServerConfig{
			ShutdownTimeout:    5 * time.Second,
			JWTExpirationDelta: 10 * time.Minute,
		},
		School: core.SchoolConfig{CurrentTerm: 1, CurrentYear: 2024},
	}
}

// NewLogger returns a muted logger.
func NewLogger() core.Logger {
	logger := logsvc.NewStdLogger(log.New(os.Stdout, "TEST : ", log.LstdFlags))
	logger.Enable(false)
	return logger
}

// OpenDB restores a fresh state DB over an in-memory store.
func OpenDB(t *testing.T) *state.DB {
	t.Helper()

	db, err := state.Open(context.Background(), kvstore.OpenInMem(), NewLogger())
	if err != nil {
		t.Fatalf("state.Open(): %v", err)
	}
	return db
}

// NewValidator returns a validator and translator with all custom tags
// registered.
func NewValidator() (*validator.Validate, ut.Translator) {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")

	validate := validator.New()
	core.InitValidators(validate, translator)
	student.InitValidators(validate, translator)
	staff.InitValidators(validate, translator)
	return validate, translator
}

func CreateStudent(t *testing.T, repo student.Repository, name, admNo string, grade school.Grade) student.Student {
	t.Helper()

	st, err := repo.CreateStudent(student.Student{
		FullName:        name,
		AdmissionNumber: admNo,
		Grade:           grade,
		Stream:          "Main",
		Gender:          "Female",
		ParentName:      "Parent Not Set",
		PhoneNumber:     "0700000000",
		Term:            1,
		Year:            2024,
		TotalFees:       student.FeeTargetForGrade(grade),
	})
	if err != nil {
		t.Fatalf("CreateStudent(): %v", err)
	}
	return st
}

func CreateUser(t *testing.T, repo staff.Repository, name, uname string, role staff.Role) staff.User {
	t.Helper()

	usr, err := repo.CreateUser(staff.User{Name: name, Username: uname, Role: role})
	if err != nil {
		t.Fatalf("CreateUser(): %v", err)
	}
	return usr
}
