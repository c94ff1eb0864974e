package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/confsync/confsync/encode"
)

type viewConfig struct {
	*cli.Command
	Format    string `cli:"name=format aliases=f desc='input format: yaml or xml'"`
	Schema    string `cli:"name=schema aliases=s desc='schema file with element order and keys'"`
	Namespace string `cli:"name=ns desc='default namespace for parsed nodes'"`
	Color     string `cli:"name=color aliases=c desc='colorize output: auto, on or off'"`
	Indent    int    `cli:"name=indent aliases=i desc='indent width (default 2)'"`
}

// ViewCommand returns the view subcommand.
func ViewCommand() *cli.Command {
	cfg := &viewConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "view").
		WithSynopsis("view <file>... - parse and re-render configurations").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *viewConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		cfg.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	encOpts, err := cfg.encOpts()
	if err != nil {
		return err
	}
	in := &inputOpts{cfg.Format, cfg.Schema, cfg.Namespace}
	for i, file := range args {
		forest, err := getObjForest(cc, file, in)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(cc.Out, "---")
		}
		if err := encode.EncodeSet(forest, cc.Out, encOpts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}

func (cfg *viewConfig) encOpts() ([]encode.EncodeOption, error) {
	var opts []encode.EncodeOption
	if cfg.Indent > 0 {
		opts = append(opts, encode.EncodeIndent(cfg.Indent))
	}
	switch cfg.Color {
	case "", "auto":
		if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			opts = append(opts, encode.EncodeColors(encode.NewColors()))
		}
	case "on", "always":
		opts = append(opts, encode.EncodeColors(encode.NewColors()))
	case "off", "never":
	default:
		return nil, fmt.Errorf("%w: -color must be auto, on or off, got %q", cli.ErrUsage, cfg.Color)
	}
	return opts, nil
}
