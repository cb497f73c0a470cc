// Package status maps free-form property status strings onto the badge
// categories shown on printed sheets. Classification is display-only; record
// filtering compares raw status strings.
package status

import "strings"

// Category is the visual bucket a status string falls into.
type Category string

const (
	Occupied          Category = "occupied"
	Vacant            Category = "vacant"
	Institutionalized Category = "institutionalized"
	Storage           Category = "storage"
	FoodService       Category = "food_service"
	Retail            Category = "retail"
	Processing        Category = "processing"
	Administrative    Category = "administrative"
	VacationHome      Category = "vacation_home"
	Religious         Category = "religious"
	Demolished        Category = "demolished"
	Neglected         Category = "neglected"
	Designated        Category = "designated"
	Unclassified      Category = "unclassified"
)

// Badge tags. Demolished deliberately shares the unclassified tag.
const (
	TagOrange   = "orange"
	TagYellow   = "yellow"
	TagLime     = "lime"
	TagGreen    = "green"
	TagPink     = "pink"
	TagPurple   = "purple"
	TagCyan     = "cyan"
	TagBlue     = "blue"
	TagBeige    = "beige"
	TagLavender = "lav"
	TagWhite    = "white"
	TagGray     = "gray"
	TagBlack    = "black"
)

var tags = map[Category]string{
	Occupied:          TagOrange,
	Vacant:            TagYellow,
	Institutionalized: TagLime,
	Storage:           TagGreen,
	FoodService:       TagPink,
	Retail:            TagPurple,
	Processing:        TagCyan,
	Administrative:    TagBlue,
	VacationHome:      TagBeige,
	Religious:         TagLavender,
	Demolished:        TagWhite,
	Neglected:         TagGray,
	Designated:        TagBlack,
	Unclassified:      TagWhite,
}

// Tag returns the badge colour tag for the category.
func (c Category) Tag() string {
	if tag, ok := tags[c]; ok {
		return tag
	}
	return TagWhite
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}

// Tags lists every distinct badge tag in rule order.
func Tags() []string {
	seen := make(map[string]struct{}, len(rules)+1)
	out := make([]string, 0, len(rules)+1)
	for _, r := range rules {
		tag := r.category.Tag()
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

type rule struct {
	category Category
	match    func(string) bool
}

func contains(needle string) func(string) bool {
	return func(s string) bool { return strings.Contains(s, needle) }
}

// rules are evaluated in order; the predicates overlap (e.g. "現在居住（別荘）"),
// so the first match wins.
var rules = []rule{
	{Occupied, func(s string) bool { return strings.Contains(s, "現在居住") && !strings.Contains(s, "別荘") }},
	{Vacant, contains("完全空き家")},
	{Institutionalized, contains("施設入居")},
	{Storage, contains("倉庫")},
	{FoodService, contains("飲食")},
	{Retail, contains("商店")},
	{Processing, contains("加工")},
	{Administrative, contains("行政")},
	{VacationHome, contains("別荘")},
	{Religious, func(s string) bool { return strings.Contains(s, "神社") || strings.Contains(s, "寺") }},
	{Demolished, contains("撤去")},
	{Neglected, contains("管理不全")},
	{Designated, contains("特定")},
}

// Classify returns the category for a raw status string. Empty input is
// Unclassified.
func Classify(status string) Category {
	if status == "" {
		return Unclassified
	}
	for _, r := range rules {
		if r.match(status) {
			return r.category
		}
	}
	return Unclassified
}
