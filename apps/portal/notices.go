package main

import (
	"context"
	"flag"

	"github.com/bluejays/schoolsys/client"
	"github.com/bluejays/schoolsys/core"
	"github.com/bluejays/schoolsys/ui"
)

func (cli *commandLine) notices(ctx context.Context, args []string) error {
	if len(args) == 0 {
		cli.printUsage()
		return errHelp
	}

	noticesCmd := flag.NewFlagSet("notices", flag.ExitOnError)
	teacher := noticesCmd.Bool("teacher", false, "Use the staff-room board instead of the public one.")
	search := noticesCmd.String("search", "", "Case-insensitive title/description filter.")
	title := noticesCmd.String("title", "", "Notice title (add).")
	description := noticesCmd.String("description", "", "Notice body (add).")
	if err := noticesCmd.Parse(args[1:]); err != nil {
		return err
	}

	svc := cli.client.Notices()
	if *teacher {
		svc = cli.client.TeacherNotices()
	}

	switch args[0] {
	case "list":
		screen := ui.NewListScreen(
			func(ctx context.Context) ([]client.Notice, error) { return svc.List(ctx) },
			func(n client.Notice, q string) bool {
				return core.ContainsFold(n.Title, q) || core.ContainsFold(n.Description, q)
			},
		)
		if err := screen.Load(ctx); err != nil {
			return err
		}
		rows := make([][]string, 0)
		for _, n := range screen.Filter(*search) {
			rows = append(rows, []string{n.ID, core.OrNA(n.Date), n.Title, core.Truncate(n.Description, 50)})
		}
		return renderTable(cli.out, []string{"ID", "DATE", "TITLE", "DESCRIPTION"}, rows)

	case "add":
		notice, err := svc.Create(ctx, client.NewNotice{
			Title:       core.CleanString(*title),
			Description: core.CleanString(*description),
		})
		if err != nil {
			return err
		}
		cli.logger.Info("notice created", map[string]interface{}{"id": notice.ID})
		return nil

	case "delete":
		rest := noticesCmd.Args()
		if len(rest) < 1 {
			cli.printUsage()
			return errHelp
		}
		screen := ui.NewListScreen(
			func(ctx context.Context) ([]client.Notice, error) { return svc.List(ctx) },
			func(client.Notice, string) bool { return true },
		)
		_, err := screen.Delete(ctx, rest[0], svc.Delete, cli.prompter)
		return err

	default:
		cli.printUsage()
		return errHelp
	}
}
