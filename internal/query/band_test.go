package query

import "testing"

func TestWaitlistBandThresholds(t *testing.T) {
	cases := []struct {
		count    int
		expected Band
	}{
		{0, BandLow},
		{7, BandLow},
		{8, BandMedium},
		{14, BandMedium},
		{15, BandHigh},
		{40, BandHigh},
	}
	for _, c := range cases {
		if got := WaitlistBand(c.count); got != c.expected {
			t.Fatalf("count %d: expected %q, got %q", c.count, c.expected, got)
		}
	}
}

func TestPositionBandThresholds(t *testing.T) {
	cases := []struct {
		position int
		expected Band
	}{
		{1, BandLow},
		{4, BandLow},
		{5, BandMedium},
		{9, BandMedium},
		{10, BandHigh},
	}
	for _, c := range cases {
		if got := PositionBand(c.position); got != c.expected {
			t.Fatalf("position %d: expected %q, got %q", c.position, c.expected, got)
		}
	}
}

func TestOpeningsBandThresholds(t *testing.T) {
	cases := []struct {
		spots    int
		expected Band
	}{
		{0, BandLow},
		{2, BandLow},
		{3, BandMedium},
		{4, BandMedium},
		{5, BandHigh},
	}
	for _, c := range cases {
		if got := OpeningsBand(c.spots); got != c.expected {
			t.Fatalf("spots %d: expected %q, got %q", c.spots, c.expected, got)
		}
	}
}
