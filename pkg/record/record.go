// Package record models the property/household rows loaded from the
// spreadsheet endpoint. Values are kept as loosely typed strings; coercions
// (dates, booleans) happen at the point of use.
package record

import (
	"strings"
)

// Record maps a field key to its raw string value. Absent keys read as "".
type Record map[string]string

// Get returns the raw value stored under key, or "" when absent.
func (r Record) Get(key string) string {
	if r == nil {
		return ""
	}
	return r[key]
}

// ID returns the record identifier (house_id).
func (r Record) ID() string {
	return r.Get(FieldID)
}

// IsBlank reports whether the value under key is missing or whitespace only.
func (r Record) IsBlank(key string) bool {
	return IsBlank(r.Get(key))
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// PickerLabel renders the "id / applicant / address" line used by record
// pickers, substituting "-" for blank parts.
func (r Record) PickerLabel() string {
	return strings.Join([]string{
		orDash(r.ID()),
		orDash(r.Get(FieldApplicantName)),
		orDash(r.Get(FieldApplicantAddress)),
	}, " / ")
}

// IsBlank reports whether value is empty after trimming whitespace.
func IsBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// ToChecked coerces a loosely typed spreadsheet flag into a boolean. Only
// "true" and "1" (case-insensitive, surrounding whitespace ignored) count as
// checked.
func ToChecked(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1":
		return true
	default:
		return false
	}
}

func orDash(value string) string {
	if IsBlank(value) {
		return "-"
	}
	return value
}
