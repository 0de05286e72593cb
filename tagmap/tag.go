package tagmap

import "regexp"

// compileTagPattern builds the tagged-scalar parser for a marker: the
// marker, a word-character name, then optionally a colon and the rest of
// the string (which may itself contain colons or newlines) as the body.
// The match is a prefix match, mirroring the wire convention.
func compileTagPattern(marker string) *regexp.Regexp {
	return regexp.MustCompile(`^` + regexp.QuoteMeta(marker) + `(\w+)(?::((?s:.+)))?`)
}

// parseTag splits a tag-marker-prefixed string into codec name and
// optional body. ok is false when the string does not match the tag
// pattern at all. hasBody distinguishes "$name" from "$name:<body>"; a
// body is never empty, a bare trailing colon parses as no body.
func (t *Transformer) parseTag(s string) (name, body string, hasBody, ok bool) {
	m := t.tagPat.FindStringSubmatch(s)
	if m == nil {
		return "", "", false, false
	}
	name = m[1]
	if m[2] != "" {
		body = m[2]
		hasBody = true
	}
	return name, body, hasBody, true
}
