package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/confsync/confsync"
	"github.com/confsync/confsync/encode"
	"github.com/confsync/confsync/tree"
)

type diffConfig struct {
	*cli.Command
	Format    string `cli:"name=format aliases=f desc='input format: yaml or xml'"`
	Schema    string `cli:"name=schema aliases=s desc='schema file with element order and keys'"`
	Namespace string `cli:"name=ns desc='default namespace for parsed nodes'"`
	Text      bool   `cli:"name=text aliases=t desc='line-oriented text diff of the rendered trees'"`
}

// DiffCommand returns the diff subcommand.
func DiffCommand() *cli.Command {
	cfg := &diffConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "diff").
		WithSynopsis("diff <a> <b> - show the four difference buckets between a and b").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *diffConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		cfg.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %d", cli.ErrUsage, len(args))
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
	if cfg.Text {
		return textDiff(cc.Out, a, b)
	}
	d := confsync.GetDiffSets(a, b)
	if d.Empty() {
		return nil
	}
	if err := bucket(cc.Out, "only in "+args[0], d.UniqueA); err != nil {
		return err
	}
	if err := bucket(cc.Out, "only in "+args[1], d.UniqueB); err != nil {
		return err
	}
	if err := bucket(cc.Out, "changed in "+args[0], d.ChangedA); err != nil {
		return err
	}
	if err := bucket(cc.Out, "changed in "+args[1], d.ChangedB); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func bucket(w io.Writer, title string, set tree.NodeSet) error {
	if len(set) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "# %s\n", title); err != nil {
		return err
	}
	return encode.EncodeSet(set, w)
}

// textDiff renders both forests and shows a character-level diff of the
// renderings, for eyeballing rather than machine consumption.
func textDiff(w io.Writer, a, b tree.NodeSet) error {
	aBuf, bBuf := bytes.NewBuffer(nil), bytes.NewBuffer(nil)
	if err := encode.EncodeSet(a, aBuf); err != nil {
		return err
	}
	if err := encode.EncodeSet(b, bBuf); err != nil {
		return err
	}
	if aBuf.String() == bBuf.String() {
		return nil
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(aBuf.String(), bBuf.String(), false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	if _, err := io.WriteString(w, dmp.DiffPrettyText(diffs)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
