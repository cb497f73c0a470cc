package document

import (
	"github.com/goliatone/go-houseprint/pkg/record"
	"github.com/goliatone/go-houseprint/pkg/visibility"
)

// CompositeBuildingStructure is the composite group used by the house
// template's building section.
const CompositeBuildingStructure = "building_structure"

// Composite is a field group printed as a single row of checkbox glyphs.
type Composite struct {
	Label  string
	Fields []string
}

// Rules hold the per-field display policy shared by every template.
type Rules struct {
	Visibility visibility.Evaluator
	Checkbox   map[string]struct{}
	Composites map[string]Composite
}

// IsCheckbox reports whether key renders as a checkbox glyph.
func (r Rules) IsCheckbox(key string) bool {
	_, ok := r.Checkbox[key]
	return ok
}

// BuildingStructureFields lists the building-structure flags in print order.
var BuildingStructureFields = []string{
	record.FieldSingleStory,
	record.FieldTwoStory,
	record.FieldThreeStory,
	record.FieldHasStorage,
	record.FieldHasYard,
	record.FieldHasGarage,
}

// HideIfEmptyFields returns the fields whose rows disappear when blank:
// emergency contacts ② and ③ and residents ② to ④.
func HideIfEmptyFields() []string {
	var out []string
	for n := 2; n <= 3; n++ {
		for _, attr := range record.EmergencyContactAttributes {
			out = append(out, record.EmergencyContact(n, attr))
		}
	}
	for n := 2; n <= 4; n++ {
		for _, attr := range record.ResidentAttributes {
			out = append(out, record.Resident(n, attr))
		}
	}
	return out
}

// DefaultRules returns the built-in display policy.
func DefaultRules() Rules {
	checkbox := make(map[string]struct{}, len(BuildingStructureFields))
	for _, key := range BuildingStructureFields {
		checkbox[key] = struct{}{}
	}
	return Rules{
		Visibility: visibility.NewHideIfEmpty(HideIfEmptyFields()...),
		Checkbox:   checkbox,
		Composites: map[string]Composite{
			CompositeBuildingStructure: {
				Label:  "建物構成",
				Fields: append([]string(nil), BuildingStructureFields...),
			},
		},
	}
}
