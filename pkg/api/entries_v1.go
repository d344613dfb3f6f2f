// pkg/api/entries_v1.go
package api

// EntryV1 is the stable JSON/JSONL schema for resolved addresses.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type EntryV1 struct {
	List  string `json:"list,omitempty"`
	Email string `json:"email"`
}
