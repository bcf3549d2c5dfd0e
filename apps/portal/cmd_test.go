package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bluejays/schoolsys/core"
	"github.com/bluejays/schoolsys/core/session"
	"github.com/bluejays/schoolsys/ui"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

func setupCLI(t *testing.T) (*commandLine, *bytes.Buffer) {
	t.Helper()
	store, err := session.Open(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("session.Open() failed: %v", err)
	}
	var out bytes.Buffer
	cli := &commandLine{
		store:    store,
		logger:   nopLogger{},
		prompter: &ui.ConsolePrompter{In: strings.NewReader(""), Out: &out},
		out:      &out,
	}
	return cli, &out
}

func Test_commandLine_run(t *testing.T) {
	tests := []struct {
		name    string
		args    []string // without program name
		wantErr error
	}{
		{name: "no args prints usage", args: nil, wantErr: errHelp},
		{name: "unknown command prints usage", args: []string{"bogus"}, wantErr: errHelp},
		{name: "use without flags prints usage", args: []string{"use"}, wantErr: errHelp},
		{name: "branches without subcommand", args: []string{"branches"}, wantErr: errHelp},
		{name: "students without subcommand", args: []string{"students"}, wantErr: errHelp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, out := setupCLI(t)
			err := cli.run(append([]string{"portal"}, tt.args...))
			if err != tt.wantErr {
				t.Errorf("run() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr == errHelp && !strings.Contains(out.String(), "Usage:") {
				t.Error("run() did not print usage")
			}
		})
	}
}

func Test_commandLine_use(t *testing.T) {
	cli, _ := setupCLI(t)

	if err := cli.use([]string{"-branch", "b-1", "-class", "c-2"}); err != nil {
		t.Fatalf("use() failed: %v", err)
	}
	branch, err := cli.store.BranchID()
	if err != nil || branch != "b-1" {
		t.Errorf("BranchID() = %q, %v", branch, err)
	}
	class, err := cli.store.ClassID()
	if err != nil || class != "c-2" {
		t.Errorf("ClassID() = %q, %v", class, err)
	}
	// section untouched: scoped screens must still fail loudly
	if _, err := cli.store.SectionID(); !core.IsMissingContext(err) {
		t.Errorf("SectionID() error = %v, want MissingContextError", err)
	}
}

func Test_commandLine_whoamiRequiresToken(t *testing.T) {
	cli, _ := setupCLI(t)
	if err := cli.whoami(); !core.IsMissingContext(err) {
		t.Errorf("whoami() error = %v, want MissingContextError", err)
	}
}
