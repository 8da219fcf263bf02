// Package category holds the fixed class taxonomy. Categories are not
// derived from the snapshot; they are a static table applied to
// whatever class names the feed carries.
package category

import (
	"sort"
	"strings"
)

// Category is one taxonomy bucket: the matching key and the label shown
// in filter controls.
type Category struct {
	Key   string
	Label string
}

// taxonomy is the declared display order for filter dropdowns. Keys are
// prefix matchers over upper-cased class names.
var taxonomy = []Category{
	{Key: "PARENT & ME", Label: "Parent & Me"},
	{Key: "BEGINNER / ADVANCED BEGINNER", Label: "Beginner / Advanced Beginner"},
	{Key: "BEGINNER", Label: "Beginner"},
	{Key: "ADVANCED BEGINNER", Label: "Advanced Beginner"},
	{Key: "INTERMEDIATE", Label: "Intermediate"},
	{Key: "SWIMMER", Label: "Swimmer"},
	{Key: "STROKE & TURN", Label: "Stroke & Turn"},
	{Key: "ADULT", Label: "Adult"},
	{Key: "MASTER", Label: "Master"},
}

// byDescendingKeyLength is the classification order. The longest key
// wins ties so "BEGINNER / ADVANCED BEGINNER" is tested before plain
// "BEGINNER" and combo classes are never miscategorized.
var byDescendingKeyLength = func() []Category {
	ordered := make([]Category, len(taxonomy))
	copy(ordered, taxonomy)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].Key) > len(ordered[j].Key)
	})
	return ordered
}()

// Classify maps a class name onto the taxonomy. The boolean is false
// when no rule matches; such classes still appear under "all classes"
// but are omitted from the filter dropdown.
func Classify(className string) (Category, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(className))
	for _, candidate := range byDescendingKeyLength {
		if strings.HasPrefix(normalized, candidate.Key) {
			return candidate, true
		}
	}
	return Category{}, false
}

// Matches reports whether the named class classifies under the given
// taxonomy key. An unknown key never matches.
func Matches(key, className string) bool {
	matched, ok := Classify(className)
	return ok && matched.Key == key
}

// PresentIn returns the subset of the taxonomy matched by at least one
// of the given class names, preserving the table's declared order.
func PresentIn(classNames []string) []Category {
	seen := make(map[string]bool, len(taxonomy))
	for _, name := range classNames {
		if matched, ok := Classify(name); ok {
			seen[matched.Key] = true
		}
	}

	present := make([]Category, 0, len(seen))
	for _, candidate := range taxonomy {
		if seen[candidate.Key] {
			present = append(present, candidate)
		}
	}
	return present
}
