package main

import (
	"github.com/scott-cotton/cli"
)

const usageText = `confsync - configuration tree comparison and synchronization

Usage:
  confsync check <a> <b>        Report whether two configurations are in sync
  confsync diff <a> <b>         Show the four difference buckets between a and b
  confsync sync <a> <b>         Synthesize the replace-style edit taking a to b
  confsync merge <a> <b>        Synthesize the minimal leaf-level edit taking a to b
  confsync get <path> <file>... Select subtrees by path, optionally filtered
  confsync view <file>...       Parse and re-render configurations

Inputs are YAML or XML documents; "-" reads stdin. A schema file
(-schema) supplies child ordering and list keys per element tag.

Examples:
  confsync check -schema ietf-if.yaml running.yaml candidate.yaml
  confsync diff running.xml candidate.xml
  confsync sync -json-patch running.yaml candidate.yaml
  confsync get 'interfaces/interface[name=eth0]' running.yaml
  confsync get -where 'child("mtu") == "9000"' interfaces/interface running.yaml`

// Root returns the confsync command tree.
func Root() *cli.Command {
	return cli.NewCommand("confsync").
		WithSynopsis("confsync - configuration tree comparison and synchronization").
		WithDescription(usageText).
		WithSubs(
			CheckCommand(),
			DiffCommand(),
			SyncCommand(),
			MergeCommand(),
			GetCommand(),
			ViewCommand(),
		)
}
