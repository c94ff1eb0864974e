// Package debug gates diagnostic logging behind CONFSYNC_DEBUG_* environment
// variables so the engine stays silent unless asked.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Diff  bool
	Sync  bool
	Merge bool
	Parse bool
}

var d *debug

func init() {
	d = &debug{}
	d.Diff = boolEnv("CONFSYNC_DEBUG_DIFF")
	d.Sync = boolEnv("CONFSYNC_DEBUG_SYNC")
	d.Merge = boolEnv("CONFSYNC_DEBUG_MERGE")
	d.Parse = boolEnv("CONFSYNC_DEBUG_PARSE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Diff() bool {
	return d.Diff
}
func Sync() bool {
	return d.Sync
}
func Merge() bool {
	return d.Merge
}
func Parse() bool {
	return d.Parse
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
