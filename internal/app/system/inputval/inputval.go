// Package inputval collects field errors for the public submission forms.
package inputval

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/dalemusser/waffle/pantry/validate"
)

// FieldError is one problem with one field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result accumulates FieldErrors in the order checks ran.
type Result struct {
	Errors []FieldError `json:"errors,omitempty"`
}

// HasErrors reports whether any check failed.
func (r *Result) HasErrors() bool { return len(r.Errors) > 0 }

// First returns the first message, or "".
func (r *Result) First() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0].Message
}

// All joins every message with "; ".
func (r *Result) All() string {
	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = e.Message
	}
	return strings.Join(msgs, "; ")
}

func (r *Result) add(field, msg string) {
	r.Errors = append(r.Errors, FieldError{Field: field, Message: msg})
}

// Required fails when v is blank.
func (r *Result) Required(field, label, v string) bool {
	if strings.TrimSpace(v) == "" {
		r.add(field, label+" is required.")
		return false
	}
	return true
}

// MaxLen fails when v is longer than n characters.
func (r *Result) MaxLen(field, label, v string, n int) bool {
	if utf8.RuneCountInString(v) > n {
		r.add(field, fmt.Sprintf("%s must be at most %d characters.", label, n))
		return false
	}
	return true
}

// MaxItems fails when a list holds more than n entries.
func (r *Result) MaxItems(field, label string, count, n int) bool {
	if count > n {
		r.add(field, fmt.Sprintf("%s: at most %d entries are allowed.", label, n))
		return false
	}
	return true
}

// Email fails when v is not a plausible address. Blank values pass; pair
// with Required.
func (r *Result) Email(field, v string) bool {
	if v == "" || IsValidEmail(v) {
		return true
	}
	r.add(field, "A valid email address is required.")
	return false
}

// HTTPURL fails when v is not an absolute http(s) URL. Blank values pass.
func (r *Result) HTTPURL(field, label, v string) bool {
	if v == "" || IsValidHTTPURL(v) {
		return true
	}
	r.add(field, label+" must be a full http:// or https:// address.")
	return false
}

// OneOf fails when v is not one of allowed. Blank values pass.
func (r *Result) OneOf(field, label, v string, allowed []string) bool {
	if v == "" || slices.Contains(allowed, v) {
		return true
	}
	r.add(field, label+" is not one of the offered choices.")
	return false
}

// YearRange fails when y is outside [lo, hi]. Zero passes (unset).
func (r *Result) YearRange(field, label string, y, lo, hi int) bool {
	if y == 0 || (y >= lo && y <= hi) {
		return true
	}
	r.add(field, fmt.Sprintf("%s must be between %d and %d.", label, lo, hi))
	return false
}

// IsValidEmail reports whether s is a plain address without display name.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, " <>") {
		return false
	}
	return validate.SimpleEmailValid(s)
}

// IsValidHTTPURL reports whether s is an absolute http or https URL.
func IsValidHTTPURL(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && urlutil.IsValidAbsHTTPURL(s)
}
