package main

import (
	"fmt"

	"github.com/officialmikal/cbc-edutrac-automation/core/staff"
)

func (cli *commandLine) addStaff(name, uname, role string) error {
	nu := staff.NewUser{Name: name, Username: uname, Role: role}
	if err := nu.Validate(cli.validate, cli.staffSvc); err != nil {
		return err
	}

	usr, err := cli.staffSvc.Create(nu)
	if err != nil {
		return err
	}
	fmt.Printf("created %s (%s) as %s\n", usr.Name, usr.Username, usr.Role)
	return nil
}

func (cli *commandLine) listStaff() error {
	users, err := cli.staffSvc.QueryAll()
	if err != nil {
		return err
	}
	for _, usr := range users {
		fmt.Printf("%-36s  %-20s  %-12s  %s\n", usr.ID, usr.Name, usr.Username, usr.Role)
	}
	return nil
}
