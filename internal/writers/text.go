// internal/writers/text.go
package writers

import (
	"fmt"
	"io"
	"strings"

	"mailgen/pkg/api"
)

func init() { Register("tsv", WriteTSV) }

// WriteTSV emits tab-separated rows for terminal and awk consumption.
func WriteTSV(w io.Writer, rows []api.EntryV1, header, simple bool) error {
	if header {
		if _, err := fmt.Fprintln(w, strings.Join(headerRow(simple), "\t")); err != nil {
			return err
		}
	}
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, strings.Join(cells(r, simple), "\t")); err != nil {
			return err
		}
	}
	return nil
}
