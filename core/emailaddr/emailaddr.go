// core/emailaddr/emailaddr.go
package emailaddr

import (
	"regexp"
	"strings"
)

// findRe matches anything address-shaped. Candidates still have to pass
// Valid before they may be emitted.
var findRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

// strictRe is the anchored form of findRe.
var strictRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// tldRe requires a dot followed by at least two letters at the end.
var tldRe = regexp.MustCompile(`\.[A-Za-z]{2,}$`)

// FindAll returns every address-shaped substring of s in document order.
func FindAll(s string) []string { return findRe.FindAllString(s, -1) }

// StripAll removes every address-shaped substring from s, valid or not, so
// stray partial addresses are never mistaken for name text.
func StripAll(s string) string { return findRe.ReplaceAllString(s, "") }

// Valid reports whether s is an acceptable address. Addresses found in the
// input and addresses synthesized from name tokens go through this same
// gate. Checks short-circuit in order.
func Valid(s string) bool {
	if s == "" {
		return false
	}
	if strings.Contains(s, "..") {
		return false
	}
	if strings.HasPrefix(s, ".") || strings.HasSuffix(s, ".") {
		return false
	}
	if strings.Contains(s, "@.") || strings.Contains(s, ".@") {
		return false
	}
	if !tldRe.MatchString(s) {
		return false
	}
	return strictRe.MatchString(s)
}
