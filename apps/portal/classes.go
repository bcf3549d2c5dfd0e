package main

import (
	"context"
	"flag"

	"github.com/bluejays/schoolsys/client"
	"github.com/bluejays/schoolsys/core"
	"github.com/bluejays/schoolsys/ui"
)

func (cli *commandLine) classes(ctx context.Context, args []string) error {
	if len(args) == 0 {
		cli.printUsage()
		return errHelp
	}

	svc := cli.client.Classes()
	switch args[0] {
	case "list":
		listCmd := flag.NewFlagSet("classes list", flag.ExitOnError)
		search := listCmd.String("search", "", "Case-insensitive name/description filter.")
		branch := listCmd.String("branch", "", "Branch id (defaults to the session context).")
		if err := listCmd.Parse(args[1:]); err != nil {
			return err
		}
		branchID, err := cli.branchContext(*branch)
		if err != nil {
			return err
		}
		screen := ui.NewListScreen(
			func(ctx context.Context) ([]client.Class, error) { return svc.ListByBranch(ctx, branchID) },
			func(c client.Class, q string) bool {
				return core.ContainsFold(c.ClassName, q) || core.ContainsFold(c.Description.String, q)
			},
		)
		if err := screen.Load(ctx); err != nil {
			return err
		}
		rows := make([][]string, 0)
		for _, c := range screen.Filter(*search) {
			rows = append(rows, []string{c.ID, c.ClassName, core.Truncate(core.OrNA(c.Description.String), 40)})
		}
		return renderTable(cli.out, []string{"ID", "NAME", "DESCRIPTION"}, rows)

	case "add":
		addCmd := flag.NewFlagSet("classes add", flag.ExitOnError)
		name := addCmd.String("name", "", "The class name.")
		description := addCmd.String("description", "", "The class description.")
		branch := addCmd.String("branch", "", "Branch id (defaults to the session context).")
		if err := addCmd.Parse(args[1:]); err != nil {
			return err
		}
		branchID, err := cli.branchContext(*branch)
		if err != nil {
			return err
		}
		class, err := svc.Create(ctx, client.NewClass{
			ClassName:   core.CleanString(*name),
			Description: core.CleanString(*description),
			BranchID:    branchID,
		})
		if err != nil {
			return err
		}
		cli.logger.Info("class created", map[string]interface{}{"id": class.ID, "className": class.ClassName})
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
			func(ctx context.Context) ([]client.Class, error) { return svc.ListByBranch(ctx, branchID) },
			func(client.Class, string) bool { return true },
		)
		_, err = screen.Delete(ctx, args[1], svc.Delete, cli.prompter)
		return err

	default:
		cli.printUsage()
		return errHelp
	}
}
