package utils

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Request bodies arrive from a loosely typed frontend, so scalar fields are
// carried as json.RawMessage and coerced here. A nil RawMessage means the
// field was absent from the body; JSON null counts as provided.

func CleanString(v string) string {
	return strings.TrimSpace(v)
}

// StringValue coerces a JSON scalar to trimmed text. Empty results and
// values with no text form fall back, so a blank rename keeps the old name.
func StringValue(raw json.RawMessage, fallback string) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			return trimmed
		}
		return fallback
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}

	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return strconv.FormatBool(b)
	}

	return fallback
}

// TextValue is StringValue without the empty-string fallback: blank input
// stays blank. Used for free-text fields like descriptions.
func TextValue(raw json.RawMessage, fallback string) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}

	return fallback
}

// NumberValue coerces a JSON number or numeric string, never producing NaN:
// anything else yields the caller's fallback.
func NumberValue(raw json.RawMessage, fallback float64) float64 {
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return parsed
		}
	}

	return fallback
}

// BoolValue mirrors loose truthiness: false, 0, "", and null are false,
// everything else is true.
func BoolValue(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}

	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n != 0
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s != ""
	}

	if string(raw) == "null" {
		return false
	}

	return true
}

// NullableString coerces nullable reference and enrichment fields: a
// non-blank string is kept trimmed, a number is stored in its text form,
// and null or blank input clears the field.
func NullableString(raw json.RawMessage) *string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		trimmed := strings.TrimSpace(s)
		if trimmed == "" {
			return nil
		}
		return &trimmed
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		formatted := strconv.FormatFloat(n, 'f', -1, 64)
		return &formatted
	}

	return nil
}
