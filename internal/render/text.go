package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/clearlane/waitboard/backend/internal/query"
)

// WriteText renders the result as aligned plain-text columns for
// terminal callers.
func WriteText(w io.Writer, result query.Result, params query.Params) error {
	if result.Empty() {
		_, err := fmt.Fprintln(w, NoResultsMessage(params))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	switch {
	case len(result.Classes) > 0:
		fmt.Fprintln(tw, "CLASS\tWAITING\tBAND")
		for _, row := range result.Classes {
			fmt.Fprintf(tw, "%s\t%d\t%s\n", row.ClassName, row.WaitingCount, row.Band)
		}
	case len(result.Students) > 0:
		fmt.Fprintln(tw, "CLASS\tPOSITION\tNAME\tBAND")
		for _, row := range result.Students {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", row.ClassName, row.Position, row.Name, row.Band)
		}
	default:
		fmt.Fprintln(tw, "CLASS\tOPEN SPOTS\tBAND")
		for _, row := range result.Openings {
			fmt.Fprintf(tw, "%s\t%d\t%s\n", row.Name, row.OpenSpots, row.Band)
		}
	}
	return tw.Flush()
}
