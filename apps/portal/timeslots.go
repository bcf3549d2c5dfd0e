package main

import (
	"context"
	"flag"

	"github.com/bluejays/schoolsys/client"
)

func (cli *commandLine) timeslots(ctx context.Context, args []string) error {
	if len(args) == 0 {
		cli.printUsage()
		return errHelp
	}

	slotsCmd := flag.NewFlagSet("timeslots", flag.ExitOnError)
	branch := slotsCmd.String("branch", "", "Branch id (defaults to the session context).")
	start := slotsCmd.String("start", "", "Slot start (HH:MM, add).")
	end := slotsCmd.String("end", "", "Slot end (HH:MM, add).")
	if err := slotsCmd.Parse(args[1:]); err != nil {
		return err
	}
	branchID, err := cli.branchContext(*branch)
	if err != nil {
		return err
	}

	svc := cli.client.TimeSlots()
	switch args[0] {
	case "list":
		slots, err := svc.ListByBranch(ctx, branchID)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(slots))
		for _, s := range slots {
			rows = append(rows, []string{s.ID, s.StartTime, s.EndTime})
		}
		return renderTable(cli.out, []string{"ID", "START", "END"}, rows)

	case "add":
		slot, err := svc.Create(ctx, client.NewTimeSlot{
			StartTime: *start,
			EndTime:   *end,
			BranchID:  branchID,
		})
		if err != nil {
			return err
		}
		cli.logger.Info("time slot created", map[string]interface{}{"id": slot.ID})
		return nil

	case "delete":
		rest := slotsCmd.Args()
		if len(rest) < 1 {
			cli.printUsage()
			return errHelp
		}
		if !cli.prompter.Confirm("Delete time slot " + rest[0] + "? This cannot be undone.") {
			return nil
		}
		return svc.Delete(ctx, rest[0])

	default:
		cli.printUsage()
		return errHelp
	}
}
