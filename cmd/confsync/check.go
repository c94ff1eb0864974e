package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/confsync/confsync"
)

type checkConfig struct {
	*cli.Command
	Format    string `cli:"name=format aliases=f desc='input format: yaml or xml'"`
	Schema    string `cli:"name=schema aliases=s desc='schema file with element order and keys'"`
	Namespace string `cli:"name=ns desc='default namespace for parsed nodes'"`
	Quiet     bool   `cli:"name=quiet aliases=q desc='no output, exit status only'"`
}

// CheckCommand returns the check subcommand.
func CheckCommand() *cli.Command {
	cfg := &checkConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "check").
		WithSynopsis("check <a> <b> - report whether two configurations are in sync").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *checkConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: check requires 2 args, got %d", cli.ErrUsage, len(args))
	}
	in := &inputOpts{cfg.Format, cfg.Schema, cfg.Namespace}
	a, err := getObjForest(cc, args[0], in)
	if err != nil {
		return err
	}
	b, err := getObjForest(cc, args[1], in)
	if err != nil {
		return err
	}
	if confsync.CheckSyncSets(a, b) {
		if !cfg.Quiet {
			fmt.Fprintln(cc.Out, "in sync")
		}
		return nil
	}
	if !cfg.Quiet {
		fmt.Fprintln(cc.Out, "out of sync")
	}
	return cli.ExitCodeErr(1)
}
