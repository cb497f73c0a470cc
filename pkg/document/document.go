// Package document turns one record and a print template into a renderable
// document tree. Building is pure: no I/O, no logging.
package document

import "github.com/goliatone/go-houseprint/pkg/status"

// Kind identifies how a row is presented.
type Kind string

const (
	KindText      Kind = "text"
	KindDate      Kind = "date"
	KindStatus    Kind = "status"
	KindCheckbox  Kind = "checkbox"
	KindPhoto     Kind = "photo"
	KindComposite Kind = "composite"
)

const (
	// NoticeTemplateNotFound is shown instead of a document when the template
	// id is unknown.
	NoticeTemplateNotFound = "テンプレが見つかりません"
	// NoticeNoRecords is shown when the filtered subset is empty.
	NoticeNoRecords = "該当データがありません。"

	// PhotoPlaceholder is displayed for an empty photo field.
	PhotoPlaceholder = "（なし）"
	// PhotoHint accompanies every photo so a broken link can be diagnosed.
	PhotoHint = "※表示されない場合はURL（公開設定）をご確認ください"
	// PhotoAlt is the alternative text of the photo image.
	PhotoAlt = "物件写真"

	// MissingValue replaces a blank id or date in the header.
	MissingValue = "-"
	// UnknownStatus replaces a blank status in the header.
	UnknownStatus = "不明"

	CheckedGlyph   = "☑"
	UncheckedGlyph = "☐"
)

// Document is the render tree for one record. When Notice is set the document
// carries no header or sections.
type Document struct {
	TemplateID string    `json:"template_id,omitempty"`
	Title      string    `json:"title,omitempty"`
	Header     *Header   `json:"header,omitempty"`
	Callout    *Callout  `json:"callout,omitempty"`
	Sections   []Section `json:"sections,omitempty"`
	Notice     string    `json:"notice,omitempty"`
}

// IsNotice reports whether the document only carries a notice message.
func (d Document) IsNotice() bool {
	return d.Notice != ""
}

// Header is printed above every section.
type Header struct {
	ID        string          `json:"id"`
	UpdatedAt string          `json:"updated_at"`
	Status    string          `json:"status"`
	Category  status.Category `json:"category"`
	Tag       string          `json:"tag"`
}

// Callout highlights a single value next to the header.
type Callout struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Section is a titled table of rows.
type Section struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Rows  []Row  `json:"rows"`
}

// Row is a single labelled line. Value keeps the raw field value while
// Display holds the text a renderer prints.
type Row struct {
	Key      string          `json:"key"`
	Label    string          `json:"label"`
	Kind     Kind            `json:"kind"`
	Value    string          `json:"value"`
	Display  string          `json:"display"`
	Checked  bool            `json:"checked,omitempty"`
	Category status.Category `json:"category,omitempty"`
	Tag      string          `json:"tag,omitempty"`
	Hint     string          `json:"hint,omitempty"`
	Items    []Item          `json:"items,omitempty"`
}

// HasImage reports whether a photo row carries an image reference.
func (r Row) HasImage() bool {
	return r.Kind == KindPhoto && r.Value != ""
}

// Item is one member of a composite row.
type Item struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Checked bool   `json:"checked"`
	Glyph   string `json:"glyph"`
}

// Glyph returns the checkbox glyph for checked.
func Glyph(checked bool) string {
	if checked {
		return CheckedGlyph
	}
	return UncheckedGlyph
}

// NoRecords returns the notice document used for an empty subset.
func NoRecords() Document {
	return Document{Notice: NoticeNoRecords}
}

// TemplateNotFound returns the notice document for an unknown template id.
func TemplateNotFound(templateID string) Document {
	return Document{TemplateID: templateID, Notice: NoticeTemplateNotFound}
}
