package main

import (
	"context"
	"flag"
	"strconv"

	"github.com/bluejays/schoolsys/client"
	"github.com/bluejays/schoolsys/core"
	"github.com/bluejays/schoolsys/ui"
)

func (cli *commandLine) staffCmd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		cli.printUsage()
		return errHelp
	}

	svc := cli.client.Staff()
	switch args[0] {
	case "list":
		listCmd := flag.NewFlagSet("staff list", flag.ExitOnError)
		search := listCmd.String("search", "", "Case-insensitive name/designation filter.")
		branch := listCmd.String("branch", "", "Branch id (defaults to the session context).")
		if err := listCmd.Parse(args[1:]); err != nil {
			return err
		}
		branchID, err := cli.branchContext(*branch)
		if err != nil {
			return err
		}
		screen := ui.NewListScreen(
			func(ctx context.Context) ([]client.Staff, error) { return svc.ListByBranch(ctx, branchID) },
			func(s client.Staff, q string) bool {
				return core.ContainsFold(s.Name, q) || core.ContainsFold(s.Designation, q)
			},
		)
		if err := screen.Load(ctx); err != nil {
			return err
		}
		rows := make([][]string, 0)
		for _, s := range screen.Filter(*search) {
			rows = append(rows, []string{
				s.ID, s.Name, s.CNIC, core.OrNA(s.Phone.String), s.Designation,
				strconv.FormatInt(s.Salary, 10),
			})
		}
		return renderTable(cli.out, []string{"ID", "NAME", "CNIC", "PHONE", "DESIGNATION", "SALARY"}, rows)

	case "add":
		addCmd := flag.NewFlagSet("staff add", flag.ExitOnError)
		name := addCmd.String("name", "", "The staff member's name.")
		cnic := addCmd.String("cnic", "", "CNIC; digits are masked into NNNNN-NNNNNNN-N.")
		phone := addCmd.String("phone", "", "Phone; digits are masked into NNNN-NNNNNNN.")
		designation := addCmd.String("designation", "", "The staff member's designation.")
		salary := addCmd.Int64("salary", 0, "Monthly salary.")
		branch := addCmd.String("branch", "", "Branch id (defaults to the session context).")
		if err := addCmd.Parse(args[1:]); err != nil {
			return err
		}
		branchID, err := cli.branchContext(*branch)
		if err != nil {
			return err
		}
		staff, err := svc.Create(ctx, client.StaffDraft{
			Name:        core.CleanString(*name),
			CNIC:        core.MaskCNIC(*cnic),
			Phone:       core.MaskPhone(*phone),
			Designation: core.CleanString(*designation),
			Salary:      *salary,
			BranchID:    branchID,
		})
		if err != nil {
			return err
		}
		cli.logger.Info("staff created", map[string]interface{}{"id": staff.ID})
		return nil

	case "delete":
		if len(args) < 2 {
			cli.printUsage()
			return errHelp
		}
		branchID, err := cli.branchContext("")
		if err != nil {
			return err
		}
		screen := ui.NewListScreen(
			func(ctx context.Context) ([]client.Staff, error) { return svc.ListByBranch(ctx, branchID) },
			func(client.Staff, string) bool { return true },
		)
		_, err = screen.Delete(ctx, args[1], svc.Delete, cli.prompter)
		return err

	default:
		cli.printUsage()
		return errHelp
	}
}
