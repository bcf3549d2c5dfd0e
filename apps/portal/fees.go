package main

import (
	"context"
	"flag"
	"strconv"

	"github.com/bluejays/schoolsys/client"
	"github.com/bluejays/schoolsys/core"
	"github.com/bluejays/schoolsys/ui"
)

func (cli *commandLine) fees(ctx context.Context, args []string) error {
	if len(args) == 0 {
		cli.printUsage()
		return errHelp
	}

	svc := cli.client.Fees()
	switch args[0] {
	case "list":
		listCmd := flag.NewFlagSet("fees list", flag.ExitOnError)
		student := listCmd.String("student", "", "Student id to list fee details for.")
		if err := listCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *student == "" {
			cli.printUsage()
			return errHelp
		}
		records, err := svc.ListByStudent(ctx, *student)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(records))
		for _, f := range records {
			rows = append(rows, []string{
				f.ID, core.OrNA(f.Semester),
				strconv.FormatInt(f.SemesterFee, 10),
				strconv.FormatInt(f.SemesterFeesPaid, 10),
				strconv.FormatInt(f.Remaining(), 10),
			})
		}
		return renderTable(cli.out, []string{"ID", "SEMESTER", "FEE", "PAID", "REMAINING"}, rows)

	case "due":
		// branch-wide outstanding balances
		dueCmd := flag.NewFlagSet("fees due", flag.ExitOnError)
		branch := dueCmd.String("branch", "", "Branch id (defaults to the session context).")
		if err := dueCmd.Parse(args[1:]); err != nil {
			return err
		}
		branchID, err := cli.branchContext(*branch)
		if err != nil {
			return err
		}
		screen := ui.NewListScreen(
			func(ctx context.Context) ([]client.FeeDetail, error) { return svc.ListByBranch(ctx, branchID) },
			func(f client.FeeDetail, q string) bool { return core.ContainsFold(f.StudentID, q) },
		)
		if err := screen.Load(ctx); err != nil {
			return err
		}
		rows := make([][]string, 0)
		for _, f := range screen.Items() {
			if f.Remaining() <= 0 {
				continue
			}
			rows = append(rows, []string{f.StudentID, core.OrNA(f.Semester), strconv.FormatInt(f.Remaining(), 10)})
		}
		return renderTable(cli.out, []string{"STUDENT", "SEMESTER", "REMAINING"}, rows)

	default:
		cli.printUsage()
		return errHelp
	}
}
