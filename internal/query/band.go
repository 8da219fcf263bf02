package query

// Band grades a count for presentation. The thresholds are fixed
// constants of the engine, not caller configuration.
type Band string

const (
	// BandLow marks short waits and scarce openings.
	BandLow Band = "low"
	// BandMedium marks the middle range.
	BandMedium Band = "medium"
	// BandHigh marks long waits and plentiful openings.
	BandHigh Band = "high"
)

const (
	waitlistMediumFloor = 8
	waitlistHighFloor   = 15
	positionMediumFloor = 5
	positionHighFloor   = 10
	openingsMediumFloor = 3
	openingsHighFloor   = 5
)

// WaitlistBand grades a class's total waiting count.
func WaitlistBand(waitingCount int) Band {
	switch {
	case waitingCount >= waitlistHighFloor:
		return BandHigh
	case waitingCount >= waitlistMediumFloor:
		return BandMedium
	default:
		return BandLow
	}
}

// PositionBand grades an individual student's place in line.
func PositionBand(position int) Band {
	switch {
	case position >= positionHighFloor:
		return BandHigh
	case position >= positionMediumFloor:
		return BandMedium
	default:
		return BandLow
	}
}

// OpeningsBand grades an open-spot count.
func OpeningsBand(openSpots int) Band {
	switch {
	case openSpots >= openingsHighFloor:
		return BandHigh
	case openSpots >= openingsMediumFloor:
		return BandMedium
	default:
		return BandLow
	}
}
