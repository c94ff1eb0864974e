package main

import (
	"encoding/json"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/confsync/confsync"
	"github.com/confsync/confsync/encode"
	"github.com/confsync/confsync/export"
)

type syncConfig struct {
	*cli.Command
	Format    string `cli:"name=format aliases=f desc='input format: yaml or xml'"`
	Schema    string `cli:"name=schema aliases=s desc='schema file with element order and keys'"`
	Namespace string `cli:"name=ns desc='default namespace for parsed nodes'"`
	JSONPatch bool   `cli:"name=json-patch aliases=j desc='emit the edit as an RFC 6902 JSON patch'"`
}

// SyncCommand returns the sync subcommand.
func SyncCommand() *cli.Command {
	cfg := &syncConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "sync").
		WithSynopsis("sync <a> <b> - synthesize the replace-style edit taking a to b").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *syncConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		cfg.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: sync requires 2 args, got %d", cli.ErrUsage, len(args))
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
	edits, err := confsync.SyncSets(a, b)
	if err != nil {
		return err
	}
	if len(edits) == 0 {
		return nil
	}
	if cfg.JSONPatch {
		patch, err := export.JSONPatchSet(edits)
		if err != nil {
			return err
		}
		d, err := json.Marshal(patch)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%s\n", d)
		return nil
	}
	return encode.EncodeSet(edits, cc.Out)
}
