package main

import (
	"context"
	"flag"

	"github.com/bluejays/schoolsys/client"
	"github.com/bluejays/schoolsys/core"
	"github.com/bluejays/schoolsys/ui"
)

func (cli *commandLine) branches(ctx context.Context, args []string) error {
	if len(args) == 0 {
		cli.printUsage()
		return errHelp
	}

	svc := cli.client.Branches()
	switch args[0] {
	case "list":
		listCmd := flag.NewFlagSet("branches list", flag.ExitOnError)
		search := listCmd.String("search", "", "Case-insensitive name/address filter.")
		if err := listCmd.Parse(args[1:]); err != nil {
			return err
		}
		screen := ui.NewListScreen(
			func(ctx context.Context) ([]client.Branch, error) { return svc.List(ctx) },
			func(b client.Branch, q string) bool {
				return core.ContainsFold(b.BranchName, q) || core.ContainsFold(b.Address.String, q)
			},
		)
		if err := screen.Load(ctx); err != nil {
			return err
		}
		rows := make([][]string, 0)
		for _, b := range screen.Filter(*search) {
			rows = append(rows, []string{b.ID, b.BranchName, core.OrNA(b.Address.String), core.OrNA(b.Phone.String)})
		}
		return renderTable(cli.out, []string{"ID", "NAME", "ADDRESS", "PHONE"}, rows)

	case "add":
		addCmd := flag.NewFlagSet("branches add", flag.ExitOnError)
		name := addCmd.String("name", "", "The branch name.")
		address := addCmd.String("address", "", "The branch address.")
		phone := addCmd.String("phone", "", "The branch phone (NNNN-NNNNNNN).")
		if err := addCmd.Parse(args[1:]); err != nil {
			return err
		}
		branch, err := svc.Create(ctx, client.NewBranch{
			BranchName: core.CleanString(*name),
			Address:    core.CleanString(*address),
			Phone:      core.MaskPhone(*phone),
		})
		if err != nil {
			return err
		}
		cli.logger.Info("branch created", map[string]interface{}{"id": branch.ID})
		return nil

	case "view":
		if len(args) < 2 {
			cli.printUsage()
			return errHelp
		}
		view := ui.DetailView[client.Branch]{
			Title: "Branch Detail",
			Fetch: svc.Get,
			Renderer: func(b client.Branch) []ui.DetailField {
				return []ui.DetailField{
					{Label: "Name", Value: b.BranchName},
					{Label: "Address", Value: b.Address.String},
					{Label: "Phone", Value: b.Phone.String},
					{Label: "Email", Value: b.Email.String},
				}
			},
		}
		return view.Show(ctx, args[1], cli.out)

	case "delete":
		if len(args) < 2 {
			cli.printUsage()
			return errHelp
		}
		screen := ui.NewListScreen(
			func(ctx context.Context) ([]client.Branch, error) { return svc.List(ctx) },
			func(client.Branch, string) bool { return true },
		)
		_, err := screen.Delete(ctx, args[1], svc.Delete, cli.prompter)
		return err

	default:
		cli.printUsage()
		return errHelp
	}
}
