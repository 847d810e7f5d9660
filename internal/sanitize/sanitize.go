// Package sanitize normalises inbound request data before it reaches
// handlers: strings are trimmed and stripped of HTML markup, numeric strings
// are coerced for fields that are numeric by convention, and payload keys
// outside a resource's writable-column allow-list are dropped.
//
// Sanitization is a pure transformation and never rejects input; validation
// belongs to handlers and repositories.
package sanitize

import (
	"html"
	"net/url"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer holds the HTML stripping policy. One instance is shared by all
// requests; bluemonday policies are safe for concurrent use.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// New returns a Sanitizer with the strict policy: every HTML element is
// removed, only text content survives.
func New() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// String trims surrounding whitespace and strips HTML markup from s.
// Entities escaped by the policy are unescaped back so plain text round-trips
// unchanged: "a & b" stays "a & b".
func (s *Sanitizer) String(value string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(value)))
}

// Payload sanitizes a decoded JSON object in place of the original: string
// values are cleaned, numeric strings on numeric-by-convention keys are
// coerced, and keys outside the allow-list are dropped. An empty allow-list
// keeps every key.
func (s *Sanitizer) Payload(fields map[string]any, allowed []string) map[string]any {
	clean := make(map[string]any, len(fields))
	for key, value := range fields {
		if !keyAllowed(key, allowed) {
			continue
		}
		clean[key] = s.value(key, value)
	}
	return clean
}

// Values sanitizes every query-string value.
func (s *Sanitizer) Values(values url.Values) url.Values {
	clean := make(url.Values, len(values))
	for key, list := range values {
		for _, value := range list {
			clean.Add(key, s.String(value))
		}
	}
	return clean
}

func (s *Sanitizer) value(key string, value any) any {
	switch v := value.(type) {
	case string:
		cleaned := s.String(v)
		if numericKey(key) {
			if n, err := strconv.ParseInt(cleaned, 10, 64); err == nil {
				return n
			}
		}
		return cleaned
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = s.value(key, item)
		}
		return out
	default:
		return value
	}
}

func keyAllowed(key string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if key == a {
			return true
		}
	}
	return false
}

// numericKey reports whether the column is numeric by naming convention:
// foreign keys (*_id) and the salary bounds.
func numericKey(key string) bool {
	return strings.HasSuffix(key, "_id") || strings.HasPrefix(key, "salary_")
}
