package render

import (
	"strings"
	"testing"

	"github.com/clearlane/waitboard/backend/internal/query"
)

func TestWriteHTMLEscapesDataSuppliedText(t *testing.T) {
	result := query.Result{
		Students: []query.StudentResult{
			{ClassName: "BEGINNER <b>", Position: 1, Name: `<script>alert("x")</script>`, Band: query.BandLow},
		},
	}

	var out strings.Builder
	if err := WriteHTML(&out, result, query.Params{Query: "x", View: query.ViewWaitlist}); err != nil {
		t.Fatalf("expected render to succeed: %v", err)
	}

	rendered := out.String()
	if strings.Contains(rendered, "<script>") {
		t.Fatalf("expected script tag to be escaped, got %s", rendered)
	}
	if !strings.Contains(rendered, "&lt;script&gt;") {
		t.Fatalf("expected escaped script tag in output, got %s", rendered)
	}
	if !strings.Contains(rendered, "BEGINNER &lt;b&gt;") {
		t.Fatalf("expected escaped class name in output, got %s", rendered)
	}
	if !strings.Contains(rendered, `class="band-low"`) {
		t.Fatalf("expected band css class in output, got %s", rendered)
	}
}

func TestWriteHTMLEmitsEmptyStateMessage(t *testing.T) {
	var out strings.Builder
	err := WriteHTML(&out, query.Result{}, query.Params{Query: "sue", View: query.ViewWaitlist})
	if err != nil {
		t.Fatalf("expected render to succeed: %v", err)
	}
	if !strings.Contains(out.String(), "No matches for") {
		t.Fatalf("expected empty-state message, got %s", out.String())
	}
}

func TestNoResultsMessageVariesWithActiveInputs(t *testing.T) {
	cases := []struct {
		params   query.Params
		expected string
	}{
		{query.Params{Query: "sue", CategoryKey: "BEGINNER", View: query.ViewWaitlist}, `No matches for "sue" in the selected category.`},
		{query.Params{Query: "sue", View: query.ViewWaitlist}, `No matches for "sue".`},
		{query.Params{CategoryKey: "BEGINNER", View: query.ViewWaitlist}, "No waitlisted classes in the selected category."},
		{query.Params{CategoryKey: "BEGINNER", View: query.ViewAvailable}, "No openings in the selected category."},
		{query.Params{View: query.ViewAvailable}, "No classes or camps with openings right now."},
		{query.Params{View: query.ViewWaitlist}, "No waitlisted classes right now."},
	}
	for _, c := range cases {
		if got := NoResultsMessage(c.params); got != c.expected {
			t.Fatalf("params %+v: expected %q, got %q", c.params, c.expected, got)
		}
	}
}

func TestWriteTextRendersEachResultShape(t *testing.T) {
	var out strings.Builder
	err := WriteText(&out, query.Result{
		Classes: []query.ClassResult{{ClassName: "BEGINNER / MON", WaitingCount: 9, Band: query.BandMedium}},
	}, query.Params{View: query.ViewWaitlist})
	if err != nil {
		t.Fatalf("expected render to succeed: %v", err)
	}
	if !strings.Contains(out.String(), "BEGINNER / MON") || !strings.Contains(out.String(), "medium") {
		t.Fatalf("unexpected class table output: %s", out.String())
	}

	out.Reset()
	err = WriteText(&out, query.Result{
		Openings: []query.OpeningResult{{Name: "SWIMMER / TUE", OpenSpots: 5, Band: query.BandHigh}},
	}, query.Params{View: query.ViewAvailable})
	if err != nil {
		t.Fatalf("expected render to succeed: %v", err)
	}
	if !strings.Contains(out.String(), "OPEN SPOTS") {
		t.Fatalf("unexpected openings table output: %s", out.String())
	}

	out.Reset()
	if err := WriteText(&out, query.Result{}, query.Params{View: query.ViewWaitlist}); err != nil {
		t.Fatalf("expected render to succeed: %v", err)
	}
	if !strings.Contains(out.String(), "No waitlisted classes right now.") {
		t.Fatalf("expected empty-state message, got %s", out.String())
	}
}
