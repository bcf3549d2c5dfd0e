package main

import (
	"fmt"
	"log"
	"os"

	"github.com/bluejays/schoolsys/client"
	"github.com/bluejays/schoolsys/core"
	"github.com/bluejays/schoolsys/core/session"
	logsvc "github.com/bluejays/schoolsys/services/logger"
	"github.com/bluejays/schoolsys/ui"
)

func main() {
	defer os.Exit(0)

	conf, err := core.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	var logger core.Logger
	if conf.RollbarToken != "" {
		logger = logsvc.NewRollbarLogger(
			log.New(os.Stderr, "PORTAL : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
			conf,
		)
	} else {
		logger = logsvc.NewConsoleLogger("portal", conf.Debug)
	}

	store, err := session.NewStore(conf)
	if err != nil {
		logger.Fatal("opening session store failed", err)
	}

	cli := &commandLine{
		store:    store,
		logger:   logger,
		prompter: &ui.ConsolePrompter{In: os.Stdin, Out: os.Stderr},
		out:      os.Stdout,
	}
	cli.client = client.New(conf, store, logger, client.WithOnUnauthorized(func() {
		// the CLI's "redirect to login": tell the user and stop the command
		fmt.Fprintln(os.Stderr, "Your session has expired. Run `portal login` to sign in again.")
	}))

	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error("command failed", err)
			fmt.Fprintf(os.Stderr, "\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}
