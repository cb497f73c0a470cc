// Package filter narrows a record list by status, district and a free-text
// query. Every function is pure and keeps the input order.
package filter

import (
	"slices"
	"strings"

	"github.com/goliatone/go-houseprint/pkg/record"
)

// All is the sentinel option meaning "no constraint on this axis".
const All = "ALL"

// State holds the user-controlled filter inputs.
type State struct {
	Query    string
	Status   string
	District string
}

// Default returns a State with every axis unconstrained.
func Default() State {
	return State{Status: All, District: All}
}

// SearchableFields are the keys scanned by the text query. The set is fixed
// and independent of the selected print template.
var SearchableFields = []string{
	record.FieldApplicantName,
	record.FieldApplicantAddress,
	record.FieldOwnerName,
	record.FieldOwnerAddress,
	record.EmergencyContact(1, "氏名"),
	record.EmergencyContact(1, "住所"),
	record.EmergencyContact(2, "氏名"),
	record.EmergencyContact(2, "住所"),
	record.EmergencyContact(3, "氏名"),
	record.EmergencyContact(3, "住所"),
	record.FieldID,
	record.FieldSiteNo,
}

// Apply returns the records matching st. Status and district compare the
// trimmed field value with the option exactly, the same form DistinctValues
// offers. The trimmed query must appear verbatim (case sensitive) in at least
// one of SearchableFields.
func Apply(records []record.Record, st State) []record.Record {
	out := make([]record.Record, 0, len(records))
	query := strings.TrimSpace(st.Query)
	for _, rec := range records {
		if !optionMatches(rec, record.FieldStatus, st.Status) {
			continue
		}
		if !optionMatches(rec, record.FieldDistrict, st.District) {
			continue
		}
		if query != "" && !Matches(rec, query) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// Matches reports whether any searchable field of rec contains query.
func Matches(rec record.Record, query string) bool {
	for _, key := range SearchableFields {
		if strings.Contains(rec.Get(key), query) {
			return true
		}
	}
	return false
}

// DistinctValues returns the distinct non-blank trimmed values of key, sorted
// and prefixed with All. Callers pass the full store so option lists do not
// shrink as other filters narrow the subset.
func DistinctValues(records []record.Record, key string) []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)
	for _, rec := range records {
		value := strings.TrimSpace(rec.Get(key))
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		values = append(values, value)
	}
	slices.Sort(values)
	return append([]string{All}, values...)
}

// StatusOptions enumerates the status filter options for store.
func StatusOptions(store *record.Store) []string {
	return DistinctValues(store.Records(), record.FieldStatus)
}

// DistrictOptions enumerates the district filter options for store.
func DistrictOptions(store *record.Store) []string {
	return DistinctValues(store.Records(), record.FieldDistrict)
}

func optionMatches(rec record.Record, key, option string) bool {
	return !constrained(option) || strings.TrimSpace(rec.Get(key)) == option
}

func constrained(option string) bool {
	return option != "" && option != All
}
