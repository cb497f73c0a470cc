// Package visibility decides whether a field row is emitted for a record.
package visibility

import "github.com/goliatone/go-houseprint/pkg/record"

// Evaluator reports whether the row for field should be shown for rec.
type Evaluator interface {
	Visible(field string, rec record.Record) bool
}

// EvaluatorFunc adapts a function into an Evaluator.
type EvaluatorFunc func(field string, rec record.Record) bool

// Visible delegates to the underlying function.
func (fn EvaluatorFunc) Visible(field string, rec record.Record) bool {
	return fn(field, rec)
}

// Always shows every row.
var Always Evaluator = EvaluatorFunc(func(string, record.Record) bool { return true })

// HideIfEmpty omits the rows of its fields when their value is blank. Fields
// outside the set are always visible.
type HideIfEmpty struct {
	fields map[string]struct{}
}

// NewHideIfEmpty builds a HideIfEmpty rule over keys.
func NewHideIfEmpty(keys ...string) HideIfEmpty {
	fields := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		fields[key] = struct{}{}
	}
	return HideIfEmpty{fields: fields}
}

// Visible implements Evaluator.
func (h HideIfEmpty) Visible(field string, rec record.Record) bool {
	if !h.Contains(field) {
		return true
	}
	return !record.IsBlank(rec.Get(field))
}

// Contains reports whether field belongs to the rule set.
func (h HideIfEmpty) Contains(field string) bool {
	_, ok := h.fields[field]
	return ok
}

// Fields returns the number of fields covered by the rule.
func (h HideIfEmpty) Fields() int {
	return len(h.fields)
}

// AllOf shows a row only when every evaluator shows it. Nil entries are
// ignored.
func AllOf(evaluators ...Evaluator) Evaluator {
	return EvaluatorFunc(func(field string, rec record.Record) bool {
		for _, eval := range evaluators {
			if eval != nil && !eval.Visible(field, rec) {
				return false
			}
		}
		return true
	})
}
