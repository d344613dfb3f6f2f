// internal/writers/csv.go
package writers

import (
	"encoding/csv"
	"io"

	"mailgen/pkg/api"
)

func init() { Register("csv", WriteCSV) }

// WriteCSV emits the header-plus-rows CSV form: List,Email (or a single
// Email column in simple mode).
func WriteCSV(w io.Writer, rows []api.EntryV1, header, simple bool) error {
	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write(headerRow(simple)); err != nil {
			return err
		}
	}
	for _, r := range rows {
		if err := cw.Write(cells(r, simple)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func headerRow(simple bool) []string {
	if simple {
		return []string{"Email"}
	}
	return []string{"List", "Email"}
}

func cells(r api.EntryV1, simple bool) []string {
	if simple {
		return []string{r.Email}
	}
	return []string{r.List, r.Email}
}
