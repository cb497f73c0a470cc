package document

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-houseprint/pkg/record"
	"github.com/goliatone/go-houseprint/pkg/status"
	"github.com/goliatone/go-houseprint/pkg/templates"
	"github.com/goliatone/go-houseprint/pkg/visibility"
)

var (
	// ErrTemplateNotFound is returned when the template id is not registered.
	ErrTemplateNotFound = errors.New("document: template not found")
	// ErrUnknownComposite is returned when a section references a composite
	// group the rules do not define.
	ErrUnknownComposite = errors.New("document: unknown composite group")
)

// Option customises a Builder.
type Option func(*Builder)

// WithRules replaces the default display policy.
func WithRules(rules Rules) Option {
	return func(b *Builder) {
		b.rules = rules
	}
}

// WithLocation sets the zone used to normalize dates.
func WithLocation(loc *time.Location) Option {
	return func(b *Builder) {
		if loc != nil {
			b.loc = loc
		}
	}
}

// Builder renders records through a template registry.
type Builder struct {
	registry *templates.Registry
	rules    Rules
	loc      *time.Location
}

// NewBuilder returns a Builder over registry using DefaultRules and
// DefaultLocation unless overridden.
func NewBuilder(registry *templates.Registry, opts ...Option) *Builder {
	b := &Builder{
		registry: registry,
		rules:    DefaultRules(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	if b.loc == nil {
		b.loc = DefaultLocation()
	}
	if b.rules.Visibility == nil {
		b.rules.Visibility = visibility.Always
	}
	return b
}

// Registry exposes the template registry backing the builder.
func (b *Builder) Registry() *templates.Registry {
	return b.registry
}

// Location returns the zone used for date normalization.
func (b *Builder) Location() *time.Location {
	return b.loc
}

// Validate checks that every registered template only references composite
// groups known to the rules.
func (b *Builder) Validate() error {
	var errs []error
	for _, tpl := range b.registry.List() {
		for _, section := range tpl.Sections {
			if section.Composite == "" {
				continue
			}
			if _, ok := b.rules.Composites[section.Composite]; !ok {
				errs = append(errs, fmt.Errorf("%w: template %q section %q references %q", ErrUnknownComposite, tpl.ID, section.ID, section.Composite))
			}
		}
	}
	return errors.Join(errs...)
}

// Build renders rec through the template registered under templateID.
func (b *Builder) Build(templateID string, rec record.Record) (Document, error) {
	tpl, ok := b.registry.Template(templateID)
	if !ok {
		return Document{}, fmt.Errorf("%w: %q", ErrTemplateNotFound, templateID)
	}

	doc := Document{
		TemplateID: tpl.ID,
		Title:      tpl.Title,
		Header:     b.header(rec),
		Callout:    b.callout(tpl, rec),
	}

	for _, section := range tpl.Sections {
		built, err := b.section(tpl.ID, section, rec)
		if err != nil {
			return Document{}, err
		}
		doc.Sections = append(doc.Sections, built)
	}
	return doc, nil
}

// Render is Build without an error path: failures become notice documents.
func (b *Builder) Render(templateID string, rec record.Record) Document {
	doc, err := b.Build(templateID, rec)
	if err == nil {
		return doc
	}
	if errors.Is(err, ErrTemplateNotFound) {
		return TemplateNotFound(templateID)
	}
	return Document{TemplateID: templateID, Notice: err.Error()}
}

func (b *Builder) header(rec record.Record) *Header {
	id := rec.ID()
	if record.IsBlank(id) {
		id = MissingValue
	}
	updated := FormatDate(rec.Get(record.FieldUpdatedAt), b.loc)
	if updated == "" {
		updated = MissingValue
	}
	raw := rec.Get(record.FieldStatus)
	if raw == "" {
		raw = UnknownStatus
	}
	category := status.Classify(raw)
	return &Header{
		ID:        id,
		UpdatedAt: updated,
		Status:    raw,
		Category:  category,
		Tag:       category.Tag(),
	}
}

func (b *Builder) callout(tpl templates.Template, rec record.Record) *Callout {
	if tpl.Callout == nil {
		return nil
	}
	value := rec.Get(tpl.Callout.Field)
	if record.IsBlank(value) {
		return nil
	}
	label := tpl.Callout.Label
	if label == "" {
		label = b.registry.Label(tpl.Callout.Field)
	}
	return &Callout{Label: label, Value: value}
}

func (b *Builder) section(templateID string, section templates.Section, rec record.Record) (Section, error) {
	out := Section{ID: section.ID, Title: section.Title, Rows: make([]Row, 0, len(section.Fields)+1)}

	var emitted map[string]struct{}
	if section.Composite != "" {
		group, ok := b.rules.Composites[section.Composite]
		if !ok {
			return Section{}, fmt.Errorf("%w: template %q section %q references %q", ErrUnknownComposite, templateID, section.ID, section.Composite)
		}
		row, members := compositeRow(section.Composite, group, rec)
		out.Rows = append(out.Rows, row)
		emitted = members
	}

	for _, key := range section.Fields {
		if _, done := emitted[key]; done {
			continue
		}
		if !b.rules.Visibility.Visible(key, rec) {
			continue
		}
		out.Rows = append(out.Rows, b.row(key, rec))
	}
	return out, nil
}

func compositeRow(name string, group Composite, rec record.Record) (Row, map[string]struct{}) {
	members := make(map[string]struct{}, len(group.Fields))
	items := make([]Item, 0, len(group.Fields))
	parts := make([]string, 0, len(group.Fields))
	for _, key := range group.Fields {
		checked := record.ToChecked(rec.Get(key))
		glyph := Glyph(checked)
		items = append(items, Item{Key: key, Label: key, Checked: checked, Glyph: glyph})
		parts = append(parts, glyph+" "+key)
		members[key] = struct{}{}
	}
	label := group.Label
	if label == "" {
		label = name
	}
	return Row{
		Key:     name,
		Label:   label,
		Kind:    KindComposite,
		Display: strings.Join(parts, "　"),
		Items:   items,
	}, members
}

func (b *Builder) row(key string, rec record.Record) Row {
	value := rec.Get(key)
	row := Row{Key: key, Label: b.registry.Label(key), Kind: KindText, Value: value}

	switch {
	case key == record.FieldPhoto:
		row.Kind = KindPhoto
		if record.IsBlank(value) {
			row.Value = ""
			row.Display = PhotoPlaceholder
			return row
		}
		row.Value = strings.TrimSpace(value)
		row.Display = PhotoAlt
		row.Hint = PhotoHint
	case key == record.FieldUpdatedAt:
		row.Kind = KindDate
		row.Display = FormatDate(value, b.loc)
	case key == record.FieldStatus:
		category := status.Classify(value)
		row.Kind = KindStatus
		row.Display = value
		row.Category = category
		row.Tag = category.Tag()
	case b.rules.IsCheckbox(key):
		row.Kind = KindCheckbox
		row.Checked = record.ToChecked(value)
		row.Display = Glyph(row.Checked)
	default:
		if !record.IsBlank(value) {
			row.Display = value
		}
	}
	return row
}
