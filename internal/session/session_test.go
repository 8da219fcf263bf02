package session

import (
	"errors"
	"testing"

	"github.com/clearlane/waitboard/backend/internal/query"
	"github.com/clearlane/waitboard/backend/internal/snapshot"
)

func TestSearchBeforeLoadReturnsNotLoaded(t *testing.T) {
	s := New()
	_, err := s.Search()
	if !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("expected not-loaded error, got %v", err)
	}
	if s.Loaded() {
		t.Fatalf("expected unloaded session")
	}
	if _, err := s.Categories(); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("expected not-loaded error from categories, got %v", err)
	}
}

func TestReplaceSwapsDocumentForSubsequentSearches(t *testing.T) {
	first, err := snapshot.Decode([]byte(`{"waitlists": {"BEGINNER / MON": [{"position": 1, "name": "Doe, Jane"}]}}`))
	if err != nil {
		t.Fatalf("failed to decode fixture: %v", err)
	}
	second, err := snapshot.Decode([]byte(`{"waitlists": {"MASTER / THU": [{"position": 1, "name": "Roe, Sam"}]}}`))
	if err != nil {
		t.Fatalf("failed to decode fixture: %v", err)
	}

	s := New()
	s.Replace(first)
	result, err := s.Search()
	if err != nil {
		t.Fatalf("expected search to succeed: %v", err)
	}
	if len(result.Classes) != 1 || result.Classes[0].ClassName != "BEGINNER / MON" {
		t.Fatalf("unexpected first snapshot result %+v", result.Classes)
	}

	s.Replace(second)
	result, err = s.Search()
	if err != nil {
		t.Fatalf("expected search to succeed: %v", err)
	}
	if len(result.Classes) != 1 || result.Classes[0].ClassName != "MASTER / THU" {
		t.Fatalf("expected replacement snapshot to take effect, got %+v", result.Classes)
	}
}

func TestSessionAppliesCurrentInputs(t *testing.T) {
	document, err := snapshot.Decode([]byte(`{
		"waitlists": {
			"BEGINNER / MON": [{"position": 1, "name": "Doe, Jane"}],
			"MASTER / THU": [{"position": 1, "name": "Roe, Sam"}, {"position": 2, "name": "Roe, Sue"}]
		}
	}`))
	if err != nil {
		t.Fatalf("failed to decode fixture: %v", err)
	}

	s := New()
	s.Replace(document)
	s.SetCategory("MASTER")

	result, err := s.Search()
	if err != nil {
		t.Fatalf("expected search to succeed: %v", err)
	}
	if len(result.Classes) != 1 || result.Classes[0].ClassName != "MASTER / THU" {
		t.Fatalf("expected category filter applied, got %+v", result.Classes)
	}

	s.SetQuery("sue")
	result, err = s.Search()
	if err != nil {
		t.Fatalf("expected search to succeed: %v", err)
	}
	if len(result.Students) != 1 || result.Students[0].Name != "Roe, Sue" {
		t.Fatalf("expected student search applied, got %+v", result.Students)
	}
}

func TestCategoriesFollowTableOrder(t *testing.T) {
	document, err := snapshot.Decode([]byte(`{
		"waitlists": {"MASTER / THU": [{"position": 1, "name": "Roe, Sam"}]},
		"classes_with_openings": [{"name": "BEGINNER / MON", "open_spots": 2}]
	}`))
	if err != nil {
		t.Fatalf("failed to decode fixture: %v", err)
	}

	s := New()
	s.Replace(document)
	categories, err := s.Categories()
	if err != nil {
		t.Fatalf("expected categories to resolve: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %+v", categories)
	}
	if categories[0].Key != "BEGINNER" || categories[1].Key != "MASTER" {
		t.Fatalf("expected declared table order, got %+v", categories)
	}
}

func TestDefaultViewIsWaitlist(t *testing.T) {
	if New().Params().View != query.ViewWaitlist {
		t.Fatalf("expected a new session to start in the waitlist view")
	}
}
