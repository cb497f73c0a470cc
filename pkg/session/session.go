// Package session owns the browsing state: the loaded store, the filter
// inputs, the selected record and the chosen template. Every mutation
// recomputes the filtered subset and reconciles the selection before
// returning. A Session is meant to be driven by a single goroutine.
package session

import (
	"errors"

	"go.uber.org/zap"

	"github.com/goliatone/go-houseprint/pkg/document"
	"github.com/goliatone/go-houseprint/pkg/filter"
	"github.com/goliatone/go-houseprint/pkg/record"
	"github.com/goliatone/go-houseprint/pkg/selection"
	"github.com/goliatone/go-houseprint/pkg/templates"
)

// DefaultTemplate is selected when no template option is given.
const DefaultTemplate = "emergency"

// NoticeLoading is shown while the initial load is in flight.
const NoticeLoading = "読み込み中..."

// ErrNoMatchingRecords is returned when the filtered subset is empty.
var ErrNoMatchingRecords = errors.New("session: no matching records")

// Option customises a Session.
type Option func(*Session)

// WithLogger attaches a logger. Defaults to zap.NewNop.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTemplate sets the initial template id.
func WithTemplate(id string) Option {
	return func(s *Session) {
		if id != "" {
			s.templateID = id
		}
	}
}

// WithStore seeds the session with an already loaded store.
func WithStore(store *record.Store) Option {
	return func(s *Session) {
		if store != nil {
			s.store = store
		}
	}
}

// Session is the explicit state controller behind every front end.
type Session struct {
	builder    *document.Builder
	logger     *zap.Logger
	store      *record.Store
	state      filter.State
	subset     []record.Record
	selected   string
	templateID string
	loading    bool
	loadErr    error
}

// New returns a session rendering through builder.
func New(builder *document.Builder, opts ...Option) *Session {
	s := &Session{
		builder:    builder,
		logger:     zap.NewNop(),
		store:      record.Empty(),
		state:      filter.Default(),
		templateID: DefaultTemplate,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.recompute()
	return s
}

// BeginLoad marks the initial load as in flight.
func (s *Session) BeginLoad() {
	s.loading = true
	s.loadErr = nil
}

// FinishLoad installs the loaded store. A non-nil err leaves the session with
// an empty store and records the error for the banner; it is never retried.
func (s *Session) FinishLoad(store *record.Store, err error) {
	s.loading = false
	s.loadErr = err
	if err != nil || store == nil {
		store = record.Empty()
	}
	s.store = store
	if err != nil {
		s.logger.Warn("record load failed", zap.Error(err))
	} else {
		s.logger.Info("records loaded", zap.Int("count", store.Len()))
	}
	s.recompute()
}

// Loading reports whether the initial load is still in flight.
func (s *Session) Loading() bool { return s.loading }

// LoadErr returns the error of the last load, if any.
func (s *Session) LoadErr() error { return s.loadErr }

// Store returns the loaded store.
func (s *Session) Store() *record.Store { return s.store }

// State returns the current filter inputs.
func (s *Session) State() filter.State { return s.state }

// SetQuery updates the free-text query.
func (s *Session) SetQuery(query string) {
	s.state.Query = query
	s.recompute()
}

// SetStatus updates the status filter. "" and filter.All clear it.
func (s *Session) SetStatus(value string) {
	s.state.Status = normaliseOption(value)
	s.recompute()
}

// SetDistrict updates the district filter. "" and filter.All clear it.
func (s *Session) SetDistrict(value string) {
	s.state.District = normaliseOption(value)
	s.recompute()
}

// SetFilter replaces every filter input at once.
func (s *Session) SetFilter(st filter.State) {
	s.state = filter.State{
		Query:    st.Query,
		Status:   normaliseOption(st.Status),
		District: normaliseOption(st.District),
	}
	s.recompute()
}

// Reset clears every filter input.
func (s *Session) Reset() {
	s.state = filter.Default()
	s.recompute()
}

// Subset returns a copy of the filtered records.
func (s *Session) Subset() []record.Record {
	return append([]record.Record(nil), s.subset...)
}

// StatusOptions lists the status filter options from the full store.
func (s *Session) StatusOptions() []string {
	return filter.StatusOptions(s.store)
}

// DistrictOptions lists the district filter options from the full store.
func (s *Session) DistrictOptions() []string {
	return filter.DistrictOptions(s.store)
}

// Select makes id the selected record. It is rejected with
// selection.ErrNotInSubset when the current filters exclude it.
func (s *Session) Select(id string) error {
	if err := selection.Validate(id, s.subset); err != nil {
		return err
	}
	s.selected = id
	return nil
}

// SelectedID returns the selected house_id, or "" when the subset is empty.
func (s *Session) SelectedID() string { return s.selected }

// Current returns the selected record.
func (s *Session) Current() (record.Record, error) {
	for _, rec := range s.subset {
		if rec.ID() == s.selected {
			return rec, nil
		}
	}
	return nil, ErrNoMatchingRecords
}

// SetTemplate switches the print template. Unknown ids are accepted and
// surface as a notice document.
func (s *Session) SetTemplate(id string) {
	s.templateID = id
}

// TemplateID returns the current template id.
func (s *Session) TemplateID() string { return s.templateID }

// Templates lists the registered templates in display order.
func (s *Session) Templates() []templates.Template {
	return s.builder.Registry().List()
}

// Document renders the selected record through the current template, or the
// loading / no records notice.
func (s *Session) Document() document.Document {
	if s.loading {
		return document.Document{Notice: NoticeLoading}
	}
	rec, err := s.Current()
	if err != nil {
		return document.NoRecords()
	}
	return s.builder.Render(s.templateID, rec)
}

func (s *Session) recompute() {
	s.subset = filter.Apply(s.store.Records(), s.state)
	prev := s.selected
	s.selected = selection.Reconcile(prev, s.subset)
	if prev != s.selected {
		s.logger.Debug("selection reconciled",
			zap.String("previous", prev),
			zap.String("selected", s.selected),
			zap.Int("subset", len(s.subset)),
		)
	}
}

func normaliseOption(value string) string {
	if value == "" {
		return filter.All
	}
	return value
}
