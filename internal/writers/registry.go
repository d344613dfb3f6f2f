// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"mailgen/pkg/api"
)

// WriteFunc renders rows already deduplicated and sorted. header toggles the
// header row; simple drops the list column.
type WriteFunc func(w io.Writer, rows []api.EntryV1, header, simple bool) error

// registry maps format name → handler. Writers register in init() blocks.
var registry = map[string]WriteFunc{}

// Register installs a writer for format (idempotent last-wins).
func Register(format string, fn WriteFunc) { registry[format] = fn }

// Formats returns the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(registry))
	for f := range registry {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Write dispatches rows to the writer registered for format.
func Write(format string, w io.Writer, rows []api.EntryV1, header, simple bool) error {
	fn, ok := registry[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, rows, header, simple)
}
