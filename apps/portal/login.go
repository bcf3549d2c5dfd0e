package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/bluejays/schoolsys/client"
	"github.com/bluejays/schoolsys/core"
	"github.com/bluejays/schoolsys/core/session"
)

func (cli *commandLine) login(ctx context.Context) error {
	username, err := cli.prompter.ReadLine("Username")
	if err != nil {
		return err
	}
	password, err := cli.prompter.ReadPassword("Password")
	if err != nil {
		return err
	}

	err = cli.client.Auth().Login(ctx, client.Credentials{
		Username: core.CleanString(username, true /* lower */),
		Password: password,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "Signed in.")
	return cli.whoami()
}

func (cli *commandLine) logout() error {
	if err := cli.client.Auth().Logout(); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "Signed out.")
	return nil
}

func (cli *commandLine) whoami() error {
	token, err := cli.store.Token()
	if err != nil {
		return err
	}
	claims, err := session.ParseClaims(token)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Signed in as %s (%s)\n", claims.Username, claims.Email)
	if len(claims.Roles) > 0 {
		fmt.Fprintf(cli.out, "Roles: %v\n", claims.Roles)
	}
	if claims.Expired() {
		fmt.Fprintln(cli.out, "Warning: the stored session has expired.")
	}
	return nil
}

// use selects the working branch/class/section context that scoped commands
// read from durable storage.
func (cli *commandLine) use(args []string) error {
	useCmd := flag.NewFlagSet("use", flag.ExitOnError)
	branch := useCmd.String("branch", "", "The working branch id.")
	class := useCmd.String("class", "", "The working class id.")
	section := useCmd.String("section", "", "The working section id.")
	if err := useCmd.Parse(args); err != nil {
		return err
	}
	if *branch == "" && *class == "" && *section == "" {
		cli.printUsage()
		return errHelp
	}

	set := map[string]string{
		session.KeyBranchID:  *branch,
		session.KeyClassID:   *class,
		session.KeySectionID: *section,
	}
	for key, val := range set {
		if val == "" {
			continue
		}
		if err := cli.store.Set(key, val); err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "%s = %s\n", key, val)
	}
	return nil
}
