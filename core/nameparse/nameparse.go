// core/nameparse/nameparse.go
package nameparse

import (
	"regexp"
	"strings"

	"mailgen-core/emailaddr"
)

var (
	// bracketRe drops (...), <...> and [...] annotations before tokenizing.
	bracketRe = regexp.MustCompile(`\(.*?\)|<.*?>|\[.*?\]`)
	// splitRe tokenizes on whitespace and hyphen runs.
	splitRe = regexp.MustCompile(`[\s-]+`)
	// nonAlpha strips everything outside a-z once a token is lowercased.
	nonAlpha = regexp.MustCompile(`[^a-z]`)
)

// CleanToken lowercases tok and removes every character that is not an
// ASCII letter. Digits, punctuation and accented characters are dropped,
// not transliterated. The result may be empty.
func CleanToken(tok string) string {
	return nonAlpha.ReplaceAllString(strings.ToLower(tok), "")
}

// Tokens reduces a record to name-candidate tokens. Address-shaped
// substrings go first, even invalid ones, then bracketed annotations; the
// remainder is split on whitespace and hyphen runs. Empty tokens and bare
// dash tokens are discarded.
func Tokens(record string) []string {
	s := emailaddr.StripAll(record)
	s = bracketRe.ReplaceAllString(s, "")
	var out []string
	for _, p := range splitRe.Split(s, -1) {
		if p == "" || isDashes(p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func isDashes(s string) bool {
	for _, r := range s {
		switch r {
		case '-', '–', '—':
		default:
			return false
		}
	}
	return true
}

// NameTokens picks the candidate given-name and surname tokens. The
// positional default takes the first token as the given name and the last
// token as the surname. A comma in the first token marks a "Last, First"
// fragment: the part left of the first comma is the surname, and the part
// right of it the given name; when the comma is followed by nothing (the
// record was split as "Smith," "John"), the trailing token supplies the
// given name.
func NameTokens(tokens []string) (first, last string, ok bool) {
	if len(tokens) < 2 {
		return "", "", false
	}
	first, last = tokens[0], tokens[len(tokens)-1]
	if i := strings.IndexByte(tokens[0], ','); i >= 0 {
		last = tokens[0][:i]
		if rest := strings.TrimSpace(tokens[0][i+1:]); rest != "" {
			first = rest
		} else {
			first = tokens[len(tokens)-1]
		}
	}
	return first, last, true
}

// Synthesize builds first.last@domain from the record's name tokens. A
// record that cannot be reduced to two non-empty alphabetic tokens, or
// whose synthesized address fails validation, yields nothing; that is
// best-effort policy, not an error.
func Synthesize(record, domain string) (string, bool) {
	first, last, ok := NameTokens(Tokens(record))
	if !ok {
		return "", false
	}
	f, l := CleanToken(first), CleanToken(last)
	if f == "" || l == "" {
		return "", false
	}
	addr := f + "." + l + "@" + domain
	if !emailaddr.Valid(addr) {
		return "", false
	}
	return addr, true
}
