package render

import (
	"fmt"
	"strings"

	"github.com/clearlane/waitboard/backend/internal/query"
)

// NoResultsMessage builds the context-sensitive empty-state text. The
// wording reflects which inputs are active so users know whether to
// clear a filter, change the query, or just accept an empty bucket.
func NoResultsMessage(params query.Params) string {
	trimmedQuery := strings.TrimSpace(params.Query)
	hasQuery := trimmedQuery != ""
	hasFilter := params.CategoryKey != ""

	switch {
	case hasQuery && hasFilter:
		return fmt.Sprintf("No matches for %q in the selected category.", trimmedQuery)
	case hasQuery:
		return fmt.Sprintf("No matches for %q.", trimmedQuery)
	case hasFilter && params.View == query.ViewAvailable:
		return "No openings in the selected category."
	case hasFilter:
		return "No waitlisted classes in the selected category."
	case params.View == query.ViewAvailable:
		return "No classes or camps with openings right now."
	default:
		return "No waitlisted classes right now."
	}
}

// NotLoadedMessage is shown instead of results before the first
// successful fetch; it is distinct from the no-results empty state.
func NotLoadedMessage() string {
	return "Waitlist data has not loaded yet."
}
