package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/confsync/confsync/encode"
	"github.com/confsync/confsync/eval"
	"github.com/confsync/confsync/tree"
)

type getConfig struct {
	*cli.Command
	Format    string `cli:"name=format aliases=f desc='input format: yaml or xml'"`
	Schema    string `cli:"name=schema aliases=s desc='schema file with element order and keys'"`
	Namespace string `cli:"name=ns desc='default namespace for parsed nodes'"`
	Where     string `cli:"name=where aliases=w desc='expr predicate filtering the selected nodes'"`
}

// GetCommand returns the get subcommand.
func GetCommand() *cli.Command {
	cfg := &getConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "get").
		WithSynopsis("get <path> <file>... - select subtrees by path").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *getConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		cfg.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: get requires a path and at least one file", cli.ErrUsage)
	}
	path, files := args[0], args[1:]
	in := &inputOpts{cfg.Format, cfg.Schema, cfg.Namespace}
	for _, file := range files {
		forest, err := getObjForest(cc, file, in)
		if err != nil {
			return err
		}
		root := tree.WrapForest(forest)
		nodes, err := root.Get(path)
		root.Unwrap()
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", file, path, err)
		}
		if cfg.Where != "" {
			nodes, err = eval.Filter(nodes, cfg.Where)
			if err != nil {
				return err
			}
		}
		if err := encode.EncodeSet(nodes, cc.Out); err != nil {
			return err
		}
	}
	return nil
}
