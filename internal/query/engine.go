// Package query answers filter and search requests against one
// immutable snapshot. The engine performs no I/O, holds no state, and
// never mutates the document it reads, so calls are safe to repeat and
// to run concurrently with each other.
package query

import (
	"sort"
	"strings"

	"github.com/clearlane/waitboard/backend/internal/category"
	"github.com/clearlane/waitboard/backend/internal/snapshot"
)

// View selects which snapshot bucket is queried.
type View string

const (
	// ViewWaitlist queries the per-class waitlists.
	ViewWaitlist View = "waitlist"
	// ViewAvailable queries classes and camps with open spots.
	ViewAvailable View = "available"
)

// Params are one search request. CategoryKey is empty for no
// restriction or one taxonomy key; Query is the raw free-text input.
type Params struct {
	Query       string
	CategoryKey string
	View        View
}

// ClassResult is one waitlisted class in the empty-query waitlist view.
type ClassResult struct {
	ClassName    string
	WaitingCount int
	Band         Band
}

// StudentResult is one matching waitlist entry in a student search.
type StudentResult struct {
	ClassName string
	Position  int
	Name      string
	Band      Band
}

// OpeningResult is one class or camp with open spots.
type OpeningResult struct {
	Name      string
	OpenSpots int
	ClassID   string
	Waitlist  int
	Band      Band
}

// Result carries exactly one populated slice, selected by the request's
// view and query.
type Result struct {
	Classes  []ClassResult
	Students []StudentResult
	Openings []OpeningResult
}

// Empty reports whether the result carries no rows at all.
func (r Result) Empty() bool {
	return len(r.Classes) == 0 && len(r.Students) == 0 && len(r.Openings) == 0
}

// Search runs one query against the document. The waitlist view returns
// classes for an empty query and matching students otherwise; the
// available view returns openings either way. All returned strings are
// raw feed text, never pre-escaped.
func Search(document *snapshot.Document, params Params) Result {
	switch {
	case params.View == ViewAvailable:
		return Result{Openings: searchOpenings(document, params)}
	case strings.TrimSpace(params.Query) == "":
		return Result{Classes: listClasses(document, params.CategoryKey)}
	default:
		return Result{Students: searchStudents(document, params)}
	}
}

// listClasses returns one row per category-passing class, most crowded
// first. Ties keep input order; no secondary key is defined.
func listClasses(document *snapshot.Document, categoryKey string) []ClassResult {
	names := sortedClassNames(document)

	results := make([]ClassResult, 0, len(names))
	for _, className := range names {
		if !passesFilter(className, categoryKey) {
			continue
		}
		count := document.WaitingCount(className)
		results = append(results, ClassResult{
			ClassName:    className,
			WaitingCount: count,
			Band:         WaitlistBand(count),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].WaitingCount > results[j].WaitingCount
	})
	return results
}

// searchStudents flattens the category-passing waitlists and keeps rows
// whose name matches the query, ordered by ascending position with
// stable ties. Entries are re-sorted by position per class first rather
// than trusting feed order.
func searchStudents(document *snapshot.Document, params Params) []StudentResult {
	var results []StudentResult
	for _, className := range sortedClassNames(document) {
		if !passesFilter(className, params.CategoryKey) {
			continue
		}

		entries := make([]snapshot.WaitEntry, len(document.Waitlists[className]))
		copy(entries, document.Waitlists[className])
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Position < entries[j].Position
		})

		for _, entry := range entries {
			if !MatchesName(entry.Name, params.Query) {
				continue
			}
			results = append(results, StudentResult{
				ClassName: className,
				Position:  entry.Position,
				Name:      entry.Name,
				Band:      PositionBand(entry.Position),
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Position < results[j].Position
	})
	return results
}

// searchOpenings lists classes with open spots plus camp openings,
// most open spots first. Camps carry no category, so they are included
// only while no category filter is active. A non-empty query narrows by
// substring on the class or camp name; student-name token matching does
// not apply here.
func searchOpenings(document *snapshot.Document, params Params) []OpeningResult {
	needle := strings.ToLower(strings.TrimSpace(params.Query))

	var results []OpeningResult
	appendEntries := func(entries []snapshot.OpeningEntry, categorized bool) {
		for _, entry := range entries {
			if categorized && !passesFilter(entry.Name, params.CategoryKey) {
				continue
			}
			if !categorized && params.CategoryKey != "" {
				continue
			}
			if needle != "" && !strings.Contains(strings.ToLower(entry.Name), needle) {
				continue
			}
			results = append(results, OpeningResult{
				Name:      entry.Name,
				OpenSpots: entry.OpenSpots,
				ClassID:   entry.ClassID,
				Waitlist:  entry.Waitlist,
				Band:      OpeningsBand(entry.OpenSpots),
			})
		}
	}

	appendEntries(document.ClassesWithOpenings, true)
	appendEntries(document.CampsWithOpenings, false)

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].OpenSpots > results[j].OpenSpots
	})
	return results
}

// CampWaitlists lists camps carrying a waitlist, longest list first.
// Camps bypass the class taxonomy entirely.
func CampWaitlists(document *snapshot.Document) []OpeningResult {
	results := make([]OpeningResult, 0, len(document.CampsWithWaitlist))
	for _, entry := range document.CampsWithWaitlist {
		results = append(results, OpeningResult{
			Name:     entry.Name,
			Waitlist: entry.Waitlist,
			Band:     WaitlistBand(entry.Waitlist),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Waitlist > results[j].Waitlist
	})
	return results
}

func passesFilter(className, categoryKey string) bool {
	if categoryKey == "" {
		return true
	}
	return category.Matches(categoryKey, className)
}

// sortedClassNames fixes the map iteration order so stable sorts see a
// deterministic input sequence.
func sortedClassNames(document *snapshot.Document) []string {
	names := document.ClassNames()
	sort.Strings(names)
	return names
}
