// Package debug provides environment-gated diagnostics for confmix.
//
// Set CONFMIX_DEBUG_LOAD, CONFMIX_DEBUG_MERGE or CONFMIX_DEBUG_TEMPLATE to a
// true-ish value to enable the corresponding output on stderr.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Load     bool
	Merge    bool
	Template bool
}

var d *debug

func init() {
	d = &debug{}
	d.Load = boolEnv("CONFMIX_DEBUG_LOAD")
	d.Merge = boolEnv("CONFMIX_DEBUG_MERGE")
	d.Template = boolEnv("CONFMIX_DEBUG_TEMPLATE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Load() bool {
	return d.Load
}

func Merge() bool {
	return d.Merge
}

func Template() bool {
	return d.Template
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
