package profile

import "strings"

// Raw is one vendor-shaped record: string keys, arbitrary JSON values.
// There is no schema to trust, so every accessor treats absence and
// type mismatch as "no value".
type Raw map[string]any

// FirstString returns the first value among keys that is a string with
// non-whitespace content.
func (r Raw) FirstString(keys ...string) string {
	for _, k := range keys {
		if s, ok := r[k].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// StringOr returns the string under key, or fallback when the value is
// absent, mistyped, or blank.
func (r Raw) StringOr(key, fallback string) string {
	if s, ok := r[key].(string); ok && strings.TrimSpace(s) != "" {
		return s
	}
	return fallback
}

// List returns the slice under key, or nil.
func (r Raw) List(key string) []any {
	v, _ := r[key].([]any)
	return v
}

// Map returns the nested object under key, or nil.
func (r Raw) Map(key string) Raw {
	if m, ok := r[key].(map[string]any); ok {
		return Raw(m)
	}
	return nil
}

// Bool returns the boolean under key; absent or mistyped reads false.
func (r Raw) Bool(key string) bool {
	b, _ := r[key].(bool)
	return b
}
