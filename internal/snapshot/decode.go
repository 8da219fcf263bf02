package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidShape indicates a body that is not valid JSON or a JSON
// document missing every recognized waitlist and openings bucket.
var ErrInvalidShape = errors.New("snapshot: invalid document shape")

type wireWaitEntry struct {
	Position int    `json:"position"`
	Name     string `json:"name"`
}

type wireOpening struct {
	Name      string `json:"name"`
	ClassID   string `json:"classId"`
	OpenSpots int    `json:"open_spots"`
	Waitlist  int    `json:"waitlist"`
}

// wireDocument mirrors the feed schema. Every top-level key besides
// last_updated is optional; nil distinguishes an absent key from an
// empty bucket.
type wireDocument struct {
	LastUpdated         string                     `json:"last_updated"`
	Waitlists           map[string][]wireWaitEntry `json:"waitlists"`
	ClassesWithOpenings []wireOpening              `json:"classes_with_openings"`
	CampsWithOpenings   []wireOpening              `json:"camps_with_openings"`
	CampsWithWaitlist   []wireOpening              `json:"camps_with_waitlist"`
}

// Decode parses a fetched body into a Document. The body is valid when
// it is a JSON object carrying at least one of the waitlists map or an
// openings/camps array; anything else fails with ErrInvalidShape.
func Decode(body []byte) (*Document, error) {
	var wire wireDocument
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidShape, err)
	}

	if wire.Waitlists == nil &&
		wire.ClassesWithOpenings == nil &&
		wire.CampsWithOpenings == nil &&
		wire.CampsWithWaitlist == nil {
		return nil, fmt.Errorf("%w: no waitlists or openings present", ErrInvalidShape)
	}

	document := &Document{
		LastUpdated:         wire.LastUpdated,
		Waitlists:           make(map[string][]WaitEntry, len(wire.Waitlists)),
		ClassesWithOpenings: convertOpenings(wire.ClassesWithOpenings),
		CampsWithOpenings:   convertOpenings(wire.CampsWithOpenings),
		CampsWithWaitlist:   convertOpenings(wire.CampsWithWaitlist),
	}

	for className, entries := range wire.Waitlists {
		converted := make([]WaitEntry, 0, len(entries))
		for _, entry := range entries {
			converted = append(converted, WaitEntry{
				Position: entry.Position,
				Name:     entry.Name,
			})
		}
		document.Waitlists[className] = converted
	}

	return document, nil
}

func convertOpenings(entries []wireOpening) []OpeningEntry {
	if entries == nil {
		return nil
	}
	converted := make([]OpeningEntry, 0, len(entries))
	for _, entry := range entries {
		converted = append(converted, OpeningEntry{
			Name:      entry.Name,
			ClassID:   entry.ClassID,
			OpenSpots: entry.OpenSpots,
			Waitlist:  entry.Waitlist,
		})
	}
	return converted
}
