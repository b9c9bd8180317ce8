// Package htmlsanitize strips markup from text submitted by the public
// forms. Listings and needs are stored and served as plain text.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict removes every element and attribute.
var strict = bluemonday.StrictPolicy()

// PlainText returns s with all markup removed and surrounding space
// trimmed. Entities are decoded when markup was removed. Text inside
// script and style elements is dropped along with the elements. The
// result never contains a tag, even one hidden behind entities.
func PlainText(s string) string {
	if s == "" {
		return ""
	}
	// Decoding can turn escaped markup into real markup, so sanitize
	// again until the decoded text holds no tag.
	for i := 0; i < maxPasses && !IsPlainText(s); i++ {
		s = html.UnescapeString(strict.Sanitize(s))
	}
	if !IsPlainText(s) {
		s = angles.Replace(s)
	}
	return strings.TrimSpace(s)
}

const maxPasses = 4

var angles = strings.NewReplacer("<", "", ">", "")

// Fields applies PlainText to each pointed-to string in place.
func Fields(fields ...*string) {
	for _, f := range fields {
		if f != nil {
			*f = PlainText(*f)
		}
	}
}

// List applies PlainText to each entry and drops entries left empty.
func List(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if v := PlainText(it); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// IsPlainText reports whether s cannot contain a tag.
func IsPlainText(s string) bool {
	return !strings.Contains(s, "<") || !strings.Contains(s, ">")
}
