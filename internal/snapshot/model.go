package snapshot

// WaitEntry is one person on a class waitlist. Position is 1-based and
// reflects the person's place in line.
type WaitEntry struct {
	Position int
	Name     string
}

// OpeningEntry is a class or camp with unfilled capacity, or a camp
// carrying its own waitlist count.
type OpeningEntry struct {
	Name      string
	OpenSpots int
	ClassID   string
	Waitlist  int
}

// Document is one fetched waitlist snapshot. A document is immutable
// after Decode; a refresh produces a wholly new Document that replaces
// the old one, never a partial update.
type Document struct {
	LastUpdated         string
	Waitlists           map[string][]WaitEntry
	ClassesWithOpenings []OpeningEntry
	CampsWithOpenings   []OpeningEntry
	CampsWithWaitlist   []OpeningEntry
}

// ClassNames returns the waitlisted class names in unspecified order.
func (d *Document) ClassNames() []string {
	names := make([]string, 0, len(d.Waitlists))
	for name := range d.Waitlists {
		names = append(names, name)
	}
	return names
}

// WaitingCount returns the number of entries on the named class's
// waitlist, zero when the class is unknown.
func (d *Document) WaitingCount(className string) int {
	return len(d.Waitlists[className])
}
