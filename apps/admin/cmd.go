package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/officialmikal/cbc-edutrac-automation/core/finance"
	"github.com/officialmikal/cbc-edutrac-automation/core/staff"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	staffSvc   *staff.Service
	financeSvc *finance.Service
	validate   *validator.Validate
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  addstaff -name NAME -username USERNAME -role ROLE - create a staff account")
	fmt.Println("  liststaff - list staff accounts")
	fmt.Println("  metrics - print fee collection aggregates")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addStaffCmd := flag.NewFlagSet("addstaff", flag.ExitOnError)
	addStaffName := addStaffCmd.String("name", "", "The staff member's full name.")
	addStaffUname := addStaffCmd.String("username", "", "The account username.")
	addStaffRole := addStaffCmd.String("role", "", "One of: ADMIN, TEACHER, ACCOUNTANT, HEAD_TEACHER.")

	switch args[1] {
	case "addstaff":
		if err := addStaffCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addStaffName == "" || *addStaffUname == "" || *addStaffRole == "" {
			addStaffCmd.Usage()
			return errHelp
		}
		return cli.addStaff(*addStaffName, *addStaffUname, *addStaffRole)
	case "liststaff":
		return cli.listStaff()
	case "metrics":
		return cli.metrics()
	default:
		cli.printUsage()
		return errHelp
	}
}
