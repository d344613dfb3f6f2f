// internal/writers/json.go
package writers

import (
	"io"

	"mailgen/internal/jsonutil"
	"mailgen/pkg/api"
)

func init() {
	Register("json", WriteJSON)
	Register("jsonl", WriteJSONL)
}

// WriteJSON writes a single pretty-indented JSON array of v1 entries.
// Entries in simple mode omit the list field via the schema's omitempty.
func WriteJSON(w io.Writer, rows []api.EntryV1, _, _ bool) error {
	if rows == nil {
		rows = []api.EntryV1{}
	}
	return jsonutil.EncodePretty(w, rows)
}

// WriteJSONL writes one compact JSON object per line.
func WriteJSONL(w io.Writer, rows []api.EntryV1, _, _ bool) error {
	for _, r := range rows {
		if err := jsonutil.EncodeLine(w, r); err != nil {
			return err
		}
	}
	return nil
}
