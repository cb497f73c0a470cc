package html

import (
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-houseprint/pkg/document"
)

type pageView struct {
	TemplateID string            `json:"template_id"`
	Title      string            `json:"title"`
	Notice     string            `json:"notice,omitempty"`
	Banner     string            `json:"banner,omitempty"`
	Header     *document.Header  `json:"header,omitempty"`
	Callout    *document.Callout `json:"callout,omitempty"`
	Sections   []sectionView     `json:"sections,omitempty"`
	Stylesheet string            `json:"stylesheet"`
	ThemeVars  string            `json:"theme_vars"`
	BadgeTags  []string          `json:"badge_tags"`
	Script     string            `json:"script"`
	AutoPrint  bool              `json:"auto_print"`
}

type sectionView struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Rows  []rowView `json:"rows"`
}

type rowView struct {
	document.Row
	ImageHTML string `json:"image_html,omitempty"`
}

func sectionViews(policy *bluemonday.Policy, sections []document.Section) []sectionView {
	out := make([]sectionView, 0, len(sections))
	for _, section := range sections {
		rows := make([]rowView, 0, len(section.Rows))
		for _, row := range section.Rows {
			view := rowView{Row: row}
			if row.HasImage() {
				view.ImageHTML = photoHTML(policy, row.Value)
			}
			rows = append(rows, view)
		}
		out = append(out, sectionView{ID: section.ID, Title: section.Title, Rows: rows})
	}
	return out
}
