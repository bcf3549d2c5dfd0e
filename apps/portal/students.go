package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bluejays/schoolsys/client"
	"github.com/bluejays/schoolsys/core"
	"github.com/bluejays/schoolsys/ui"
)

func (cli *commandLine) students(ctx context.Context, args []string) error {
	if len(args) == 0 {
		cli.printUsage()
		return errHelp
	}

	svc := cli.client.Students()
	switch args[0] {
	case "list":
		listCmd := flag.NewFlagSet("students list", flag.ExitOnError)
		search := listCmd.String("search", "", "Case-insensitive name filter.")
		branch := listCmd.String("branch", "", "Branch id (defaults to the session context).")
		if err := listCmd.Parse(args[1:]); err != nil {
			return err
		}
		branchID, err := cli.branchContext(*branch)
		if err != nil {
			return err
		}
		screen := ui.NewListScreen(
			func(ctx context.Context) ([]client.Student, error) { return svc.ListByBranch(ctx, branchID) },
			func(s client.Student, q string) bool {
				return core.ContainsFold(s.Name, q) || core.ContainsFold(s.FatherName.String, q) ||
					core.ContainsFold(s.AdmissionNo, q)
			},
		)
		if err := screen.Load(ctx); err != nil {
			return err
		}
		rows := make([][]string, 0)
		for _, s := range screen.Filter(*search) {
			rows = append(rows, []string{s.ID, s.Name, core.OrNA(s.AdmissionNo), s.ClassID, s.SectionID})
		}
		return renderTable(cli.out, []string{"ID", "NAME", "ADM NO", "CLASS", "SECTION"}, rows)

	case "admit":
		return cli.admitStudent(ctx)

	case "view":
		if len(args) < 2 {
			cli.printUsage()
			return errHelp
		}
		view := ui.DetailView[client.Student]{
			Title: "Student Detail",
			Fetch: svc.Get,
			Renderer: func(s client.Student) []ui.DetailField {
				return []ui.DetailField{
					{Label: "Name", Value: s.Name},
					{Label: "Father Name", Value: s.FatherName.String},
					{Label: "B-Form No", Value: s.BFormNumber.String},
					{Label: "Admission No", Value: s.AdmissionNo},
					{Label: "Class", Value: s.ClassID},
					{Label: "Section", Value: s.SectionID},
					{Label: "Guardian", Value: s.GuardianID},
				}
			},
		}
		return view.Show(ctx, args[1], cli.out)

	case "card":
		if len(args) < 2 {
			cli.printUsage()
			return errHelp
		}
		student, err := svc.Get(ctx, args[1])
		if err != nil {
			return err
		}
		card := ui.PrintCard{
			Branding: "BLUE JAYS SCHOOL SYSTEM",
			Front: []ui.DetailField{
				{Label: "Name", Value: student.Name},
				{Label: "Admission No", Value: student.AdmissionNo},
				{Label: "Class", Value: student.ClassID},
				{Label: "Section", Value: student.SectionID},
			},
			Back: []ui.DetailField{
				{Label: "Father Name", Value: student.FatherName.String},
				{Label: "B-Form No", Value: student.BFormNumber.String},
				{Label: "Guardian", Value: student.GuardianID},
			},
		}
		return card.Render(cli.out)

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
			func(ctx context.Context) ([]client.Student, error) { return svc.ListByBranch(ctx, branchID) },
			func(client.Student, string) bool { return true },
		)
		_, err = screen.Delete(ctx, args[1], svc.Delete, cli.prompter)
		return err

	default:
		cli.printUsage()
		return errHelp
	}
}

// admitStudent walks the three-step admission wizard (Student Info, Guardian
// Info, Fees & Documents). Each step gates the next; the final submit only
// fires once all steps pass.
func (cli *commandLine) admitStudent(ctx context.Context) error {
	branchID, err := cli.store.BranchID()
	if err != nil {
		return err
	}

	draft := client.AdmissionDraft{BranchID: branchID}

	wizard := ui.NewWizard(
		ui.Step{Name: "Student Info", Validate: func() map[string]string {
			return ui.ValidateStruct(struct {
				Name      string `json:"name" validate:"required"`
				ClassID   string `json:"classId" validate:"required"`
				SectionID string `json:"sectionId" validate:"required"`
			}{draft.Name, draft.ClassID, draft.SectionID})
		}},
		ui.Step{Name: "Guardian Info", Validate: func() map[string]string {
			if draft.GuardianID == "" {
				return map[string]string{"guardianId": "guardian lookup has not succeeded"}
			}
			return nil
		}},
		ui.Step{Name: "Fees & Documents", Validate: func() map[string]string {
			if draft.SemesterFee < 0 {
				return map[string]string{"semesterFee": "must not be negative"}
			}
			return nil
		}},
	)

	// step 1: student info
	for {
		fmt.Fprintf(cli.out, "\nStep %d: %s\n", wizard.StepNumber(), wizard.StepName())
		if draft.Name, err = cli.prompter.ReadLine("Student name"); err != nil {
			return err
		}
		if draft.FatherName, err = cli.prompter.ReadLine("Father name (optional)"); err != nil {
			return err
		}
		if draft.ClassID, err = cli.prompter.ReadLine("Class id"); err != nil {
			return err
		}
		if draft.SectionID, err = cli.prompter.ReadLine("Section id"); err != nil {
			return err
		}
		if wizard.Next() {
			break
		}
		cli.printFieldErrors(wizard.Errors())
	}

	// step 2: guardian info; the lookup must succeed before the form advances
	for {
		fmt.Fprintf(cli.out, "\nStep %d: %s\n", wizard.StepNumber(), wizard.StepName())
		raw, err := cli.prompter.ReadLine("Guardian CNIC (NNNNN-NNNNNNN-N)")
		if err != nil {
			return err
		}
		cnic := core.MaskCNIC(raw)
		guardian, err := cli.client.Guardians().LookupByCNIC(ctx, cnic)
		if err != nil {
			fmt.Fprintf(cli.out, "Guardian lookup failed: %s\n", err)
			continue
		}
		fmt.Fprintf(cli.out, "Guardian: %s (%s)\n", guardian.Name, guardian.CNIC)
		draft.GuardianID = guardian.ID
		if wizard.Next() {
			break
		}
		cli.printFieldErrors(wizard.Errors())
	}

	// step 3: fees & documents
	for {
		fmt.Fprintf(cli.out, "\nStep %d: %s\n", wizard.StepNumber(), wizard.StepName())
		feeStr, err := cli.prompter.ReadLine("Semester fee")
		if err != nil {
			return err
		}
		if draft.SemesterFee, err = strconv.ParseInt(core.CleanString(feeStr), 10, 64); err != nil {
			fmt.Fprintln(cli.out, "Semester fee must be a number.")
			continue
		}
		photoPath, err := cli.prompter.ReadLine("Photo file (optional)")
		if err != nil {
			return err
		}
		if photoPath != "" {
			content, err := os.ReadFile(photoPath)
			if err != nil {
				fmt.Fprintf(cli.out, "Reading photo failed: %s\n", err)
				continue
			}
			draft.Photo = &client.Attachment{
				Filename: filepath.Base(photoPath),
				Content:  content,
			}
		}
		if wizard.Next() {
			break
		}
		cli.printFieldErrors(wizard.Errors())
	}

	return wizard.Submit(ctx, func(ctx context.Context) error {
		student, err := cli.client.Students().Admit(ctx, draft)
		if err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "\nAdmitted %s (id %s).\n", student.Name, student.ID)
		return nil
	})
}

func (cli *commandLine) printFieldErrors(errs map[string]string) {
	for field, msg := range errs {
		fmt.Fprintf(cli.out, "  %s: %s\n", field, msg)
	}
}
