package main

import (
	"testing"

	"github.com/officialmikal/cbc-edutrac-automation/core/finance"
	"github.com/officialmikal/cbc-edutrac-automation/core/staff"
	"github.com/officialmikal/cbc-edutrac-automation/storage/state"
	testutil "github.com/officialmikal/cbc-edutrac-automation/tests"
)

var staffRepo staff.Repository

func setup(t *testing.T) *commandLine {
	db := testutil.OpenDB(t)
	staffRepo = state.NewStaffRepository(db)
	validate, _ := testutil.NewValidator()

	return &commandLine{
		staffSvc:   staff.NewService(staffRepo),
		financeSvc: finance.NewService(state.NewPaymentRepository(db), state.NewStudentRepository(db)),
		validate:   validate,
	}
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
	wantAnyErr bool
}

func Test_commandLine_addStaff(t *testing.T) {
	cli := setup(t)

	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "no args", args: []string{"addstaff"}, wantErr: errHelp},
		{name: "missing role", args: []string{"addstaff", "-name", "New Clerk", "-username", "clerk"}, wantErr: errHelp},
		{name: "unknown role", args: []string{"addstaff", "-name", "New Clerk", "-username", "clerk", "-role", "JANITOR"}, wantAnyErr: true},
		{name: "taken username", args: []string{"addstaff", "-name", "Other Admin", "-username", "admin", "-role", "ADMIN"}, wantErrStr: staff.ErrUsernameExists.Error()},
		{name: "ok", args: []string{"addstaff", "-name", "New Clerk", "-username", "clerk", "-role", "ACCOUNTANT"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(args)
			if err == nil {
				if tt.wantErr != nil || tt.wantErrStr != "" || tt.wantAnyErr {
					t.Errorf("cli.run() expected error, got nil")
				}
				return
			}
			if tt.wantAnyErr {
				return
			}
			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
				}
			} else if tt.wantErrStr != "" {
				if err.Error() != tt.wantErrStr {
					t.Errorf("cli.run() error.Error() = %s, wantErrStr %s", err.Error(), tt.wantErrStr)
				}
			} else {
				t.Errorf("cli.run() unexpected error = %v", err)
			}
		})
	}

	usr, err := staffRepo.GetUserByUsername("clerk")
	if err != nil {
		t.Fatalf("GetUserByUsername(): %v", err)
	}
	if usr.Role != staff.RoleAccountant {
		t.Errorf("created role = %s, want %s", usr.Role, staff.RoleAccountant)
	}
}

func Test_commandLine_listStaff(t *testing.T) {
	cli := setup(t)

	if err := cli.run([]string{"admin", "liststaff"}); err != nil {
		t.Errorf("cli.run() unexpected error = %v", err)
	}
}

func Test_commandLine_metrics(t *testing.T) {
	cli := setup(t)

	if err := cli.run([]string{"admin", "metrics"}); err != nil {
		t.Errorf("cli.run() unexpected error = %v", err)
	}
}
