// core/roster/roster.go
package roster

import (
	"regexp"
	"sort"
	"strings"

	"mailgen-core/emailaddr"
	"mailgen-core/nameparse"
)

// DefaultList labels entries that appear before any title line.
const DefaultList = "Unknown"

// Entry is one deduplicated output row. The same email under two different
// list titles is two distinct entries.
type Entry struct {
	List  string
	Email string
}

// titleRe matches a label line: word characters and spaces, a colon,
// nothing else. A title line never carries a record.
var titleRe = regexp.MustCompile(`^([\w ]+):$`)

// Process scans text line by line, carrying the current list title forward,
// and resolves each record into zero or more validated addresses. domain is
// used verbatim as the suffix of synthesized addresses. The result is
// deduplicated on the full (list, email) pair and sorted ascending by list
// title, then email.
func Process(text, domain string) []Entry {
	seen := make(map[Entry]struct{})
	var out []Entry
	list := DefaultList
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m := titleRe.FindStringSubmatch(line); m != nil {
			list = strings.TrimSpace(m[1])
			continue
		}
		for _, rec := range splitRecords(line) {
			for _, email := range resolve(rec, domain) {
				e := Entry{List: list, Email: email}
				if _, dup := seen[e]; dup {
					continue
				}
				seen[e] = struct{}{}
				out = append(out, e)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].List != out[j].List {
			return out[i].List < out[j].List
		}
		return out[i].Email < out[j].Email
	})
	return out
}

// splitRecords breaks a line on list separators into atomic records.
func splitRecords(line string) []string {
	var recs []string
	for _, r := range strings.Split(line, ";") {
		if r = strings.TrimSpace(r); r != "" {
			recs = append(recs, r)
		}
	}
	return recs
}

// resolve emits every valid address already present in rec; only when none
// is found does it fall back to synthesis.
func resolve(rec, domain string) []string {
	var found []string
	for _, cand := range emailaddr.FindAll(rec) {
		if emailaddr.Valid(cand) {
			found = append(found, cand)
		}
	}
	if len(found) > 0 {
		return found
	}
	if addr, ok := nameparse.Synthesize(rec, domain); ok {
		return []string{addr}
	}
	return nil
}

// Emails collapses entries to unique addresses, sorted ascending.
func Emails(entries []Entry) []string {
	seen := make(map[string]struct{}, len(entries))
	var out []string
	for _, e := range entries {
		if _, ok := seen[e.Email]; ok {
			continue
		}
		seen[e.Email] = struct{}{}
		out = append(out, e.Email)
	}
	sort.Strings(out)
	return out
}
