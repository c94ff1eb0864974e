package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/confsync/confsync/format"
	"github.com/confsync/confsync/parse"
	"github.com/confsync/confsync/schema"
	"github.com/confsync/confsync/tree"
)

// inputOpts are the flags every config-reading command carries.
type inputOpts struct {
	Format    string
	Schema    string
	Namespace string
}

func (o *inputOpts) parseOpts() ([]parse.ParseOption, error) {
	var opts []parse.ParseOption
	if o.Format != "" {
		f, err := format.ParseFormat(o.Format)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", cli.ErrUsage, err)
		}
		opts = append(opts, parse.ParseFormat(f))
	}
	if o.Schema != "" {
		reg, err := loadRegistry(o.Schema)
		if err != nil {
			return nil, err
		}
		opts = append(opts, parse.ParseRegistry(reg))
	}
	if o.Namespace != "" {
		opts = append(opts, parse.ParseNamespace(o.Namespace))
	}
	return opts, nil
}

func loadRegistry(path string) (*schema.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read schema %q: %w", path, err)
	}
	mod, err := schema.LoadYAML(data)
	if err != nil {
		return nil, fmt.Errorf("error loading schema %q: %w", path, err)
	}
	reg := schema.NewRegistry()
	if err := reg.Register(mod); err != nil {
		return nil, err
	}
	return reg, nil
}

// getObjForest reads and decodes one input; "-" reads stdin. When no format
// flag was given the file suffix decides, defaulting to YAML.
func getObjForest(cc *cli.Context, path string, o *inputOpts) (tree.NodeSet, error) {
	opts, err := o.parseOpts()
	if err != nil {
		return nil, err
	}
	if o.Format == "" {
		for _, f := range format.AllFormats() {
			if strings.HasSuffix(path, f.Suffix()) {
				opts = append(opts, parse.ParseFormat(f))
				break
			}
		}
	}
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	forest, err := parse.ParseForest(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return forest, nil
}
