package cli

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"mailgen/internal/version"
)

// NewFlagSet returns a clean FlagSet with ContinueOnError.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() {}
	return fs
}

// Usage writes the help text and flag defaults to w.
func Usage(fs *pflag.FlagSet, w io.Writer, name string) {
	fmt.Fprintf(w,
		`%s: extract or generate email addresses from pasted contact lists

Reads a text file (or stdin with '-'), pulls out addresses already present,
synthesizes first.last@DOMAIN addresses from name-like records, and writes a
deduplicated table scoped by list title.

Version: %s

Usage:
  %s [flags] <input-file | ->

Flags:
`, name, version.Version, name)
	fmt.Fprint(w, fs.FlagUsages())
}
