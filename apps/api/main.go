package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	echoapi "github.com/officialmikal/cbc-edutrac-automation/apps/api/echo"
	"github.com/officialmikal/cbc-edutrac-automation/core"
	"github.com/officialmikal/cbc-edutrac-automation/core/assessment"
	"github.com/officialmikal/cbc-edutrac-automation/core/calendar"
	"github.com/officialmikal/cbc-edutrac-automation/core/finance"
	"github.com/officialmikal/cbc-edutrac-automation/core/staff"
	"github.com/officialmikal/cbc-edutrac-automation/core/student"
	logsvc "github.com/officialmikal/cbc-edutrac-automation/services/logger"
	remarksvc "github.com/officialmikal/cbc-edutrac-automation/services/remark"
	"github.com/officialmikal/cbc-edutrac-automation/storage/kvstore"
	"github.com/officialmikal/cbc-edutrac-automation/storage/state"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()
	ctx := context.Background()

	// set up logger
	var logger core.Logger
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	if conf.Debug || conf.RollbarToken == "" {
		logger = logsvc.NewStdLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, conf)
	}
	logger.Enable(!conf.TestMode)

	// set up storage
	store, err := openStore(ctx, conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("opening store: %v", err), err)
	}
	db, err := state.Open(ctx, store, logger)
	if err != nil {
		logger.Fatal(fmt.Sprintf("restoring state: %v", err), err)
	}

	// set up services
	var remarkSvc core.RemarkService
	if conf.Gemini.APIKey == "" {
		remarkSvc = remarksvc.NewConsoleService()
	} else {
		remarkSvc = remarksvc.NewGeminiService(conf, logger)
	}

	studentRepo := state.NewStudentRepository(db)
	staffSvc := staff.NewService(state.NewStaffRepository(db))
	studentSvc := student.NewService(studentRepo, conf)
	assessmentSvc := assessment.NewService(state.NewAssessmentRepository(db), studentRepo, remarkSvc)
	financeSvc := finance.NewService(state.NewPaymentRepository(db), studentRepo)
	calendarSvc := calendar.NewService(state.NewCalendarRepository(db))

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)
	student.InitValidators(validate, translator)
	staff.InitValidators(validate, translator)

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		conf.Server.Addr,
		echoapi.ServerDeps{
			Conf:          conf,
			Logger:        logger,
			StaffSvc:      staffSvc,
			StudentSvc:    studentSvc,
			AssessmentSvc: assessmentSvc,
			FinanceSvc:    financeSvc,
			CalendarSvc:   calendarSvc,
			Validate:      validate,
			Translator:    translator,
		},
	)

	go func() {
		logger.Info(fmt.Sprintf("API listening on %s", conf.Server.Addr))
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func openStore(ctx context.Context, conf *core.Config) (kvstore.Store, error) {
	switch conf.Storage.Backend {
	case "redis":
		return kvstore.OpenRedis(ctx, conf.Storage)
	case "memory":
		return kvstore.OpenInMem(), nil
	default:
		return kvstore.OpenFile(conf.Storage.DataDir)
	}
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
