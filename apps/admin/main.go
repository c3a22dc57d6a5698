package main

import (
	"context"
	"log"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/officialmikal/cbc-edutrac-automation/core"
	"github.com/officialmikal/cbc-edutrac-automation/core/finance"
	"github.com/officialmikal/cbc-edutrac-automation/core/staff"
	"github.com/officialmikal/cbc-edutrac-automation/core/student"
	logsvc "github.com/officialmikal/cbc-edutrac-automation/services/logger"
	"github.com/officialmikal/cbc-edutrac-automation/storage/kvstore"
	"github.com/officialmikal/cbc-edutrac-automation/storage/state"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()
	ctx := context.Background()

	// set up storage
	store, err := openStore(ctx, conf)
	errAndDie(err)
	db, err := state.Open(ctx, store, logsvc.NewStdLogger(logger))
	errAndDie(err)

	// set up validators
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")

	validate := validator.New()
	core.InitValidators(validate, translator)
	student.InitValidators(validate, translator)
	staff.InitValidators(validate, translator)

	// start CLI
	cli := commandLine{
		staffSvc:   staff.NewService(state.NewStaffRepository(db)),
		financeSvc: finance.NewService(state.NewPaymentRepository(db), state.NewStudentRepository(db)),
		validate:   validate,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
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

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
