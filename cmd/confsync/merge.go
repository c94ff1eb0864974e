package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/confsync/confsync"
	"github.com/confsync/confsync/encode"
)

type mergeConfig struct {
	*cli.Command
	Format    string `cli:"name=format aliases=f desc='input format: yaml or xml'"`
	Schema    string `cli:"name=schema aliases=s desc='schema file with element order and keys'"`
	Namespace string `cli:"name=ns desc='default namespace for parsed nodes'"`
}

// MergeCommand returns the merge subcommand.
func MergeCommand() *cli.Command {
	cfg := &mergeConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "merge").
		WithSynopsis("merge <a> <b> - synthesize the minimal leaf-level edit taking a to b").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *mergeConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		cfg.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: merge requires 2 args, got %d", cli.ErrUsage, len(args))
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
	edits := confsync.SyncMergeSets(a, b)
	if len(edits) == 0 {
		return nil
	}
	return encode.EncodeSet(edits, cc.Out)
}
