package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bluejays/schoolsys/client"
	"github.com/bluejays/schoolsys/core"
	"github.com/bluejays/schoolsys/core/session"
	"github.com/bluejays/schoolsys/ui"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	client   *client.Client
	store    *session.Store
	logger   core.Logger
	prompter *ui.ConsolePrompter
	out      io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  login                                  - sign in and store the session")
	fmt.Fprintln(cli.out, "  logout                                 - wipe the stored session")
	fmt.Fprintln(cli.out, "  whoami                                 - show the signed-in user")
	fmt.Fprintln(cli.out, "  use -branch ID [-class ID] [-section ID] - select the working context")
	fmt.Fprintln(cli.out, "  branches   list|add|view|delete ...    - manage branches")
	fmt.Fprintln(cli.out, "  classes    list|add|delete ...         - manage classes")
	fmt.Fprintln(cli.out, "  students   list|admit|view|card|delete ... - manage students")
	fmt.Fprintln(cli.out, "  staff      list|add|delete ...         - manage staff")
	fmt.Fprintln(cli.out, "  fees       list|due ...                - fee details per student")
	fmt.Fprintln(cli.out, "  notices    list|add|delete ...         - notice board")
	fmt.Fprintln(cli.out, "  timeslots  list|add|delete ...         - daily time slots")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	ctx := context.Background()
	switch args[1] {
	case "login":
		return cli.login(ctx)
	case "logout":
		return cli.logout()
	case "whoami":
		return cli.whoami()
	case "use":
		return cli.use(args[2:])
	case "branches":
		return cli.branches(ctx, args[2:])
	case "classes":
		return cli.classes(ctx, args[2:])
	case "students":
		return cli.students(ctx, args[2:])
	case "staff":
		return cli.staffCmd(ctx, args[2:])
	case "fees":
		return cli.fees(ctx, args[2:])
	case "notices":
		return cli.notices(ctx, args[2:])
	case "timeslots":
		return cli.timeslots(ctx, args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}

// branchContext resolves the branch the command is scoped to: the -branch
// flag when given, else the stored session context. Missing both is a
// terminal error for the command.
func (cli *commandLine) branchContext(flagVal string) (string, error) {
	if flagVal != "" {
		return flagVal, nil
	}
	return cli.store.BranchID()
}
