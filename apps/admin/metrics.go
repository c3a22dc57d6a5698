package main

import "fmt"

func (cli *commandLine) metrics() error {
	m, err := cli.financeSvc.Metrics()
	if err != nil {
		return err
	}
	fmt.Printf("students:    %d\n", m.TotalStudents)
	fmt.Printf("collected:   %.2f\n", m.TotalCollected)
	fmt.Printf("outstanding: %.2f\n", m.TotalOutstanding)
	fmt.Printf("paid full:   %d\n", m.PaidFull)
	fmt.Printf("partial:     %d\n", m.PaidPartial)
	fmt.Printf("unpaid:      %d\n", m.PaidNone)
	return nil
}
