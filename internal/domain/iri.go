package domain

import (
	"net/url"
	"strings"
)

// forbiddenIRIChars are excluded from IRIREF by the SPARQL grammar.
const forbiddenIRIChars = "<>\"{}|^`\\"

// IsAbsoluteIRI reports whether s is a syntactically valid absolute IRI.
func IsAbsoluteIRI(s string) bool {
	if s == "" || strings.ContainsAny(s, forbiddenIRIChars) {
		return false
	}
	for _, r := range s {
		if r <= 0x20 || r == 0x7f {
			return false
		}
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Scheme == "" {
		return false
	}
	// "urn:x" has an opaque part, "https://x" has a host; "https:" has neither.
	return u.Opaque != "" || u.Host != "" || u.Path != ""
}

// FilterAbsoluteIRIs keeps the valid identifiers of ids in their original order.
func FilterAbsoluteIRIs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if IsAbsoluteIRI(id) {
			out = append(out, id)
		}
	}
	return out
}
