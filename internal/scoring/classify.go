package scoring

import (
	"fmt"
	"strings"
)

// Band is a severity band. Bands are ordered: Low < Moderate < High < Extreme.
type Band int

const (
	BandLow Band = iota
	BandModerate
	BandHigh
	BandExtreme
)

var bandNames = [...]string{"Low", "Moderate", "High", "Extreme"}

// String returns the band name
func (b Band) String() string {
	if b < BandLow || b > BandExtreme {
		return "Unknown"
	}
	return bandNames[b]
}

// MarshalText encodes the band as its name
func (b Band) MarshalText() ([]byte, error) {
	if b < BandLow || b > BandExtreme {
		return nil, fmt.Errorf("invalid band: %d", int(b))
	}
	return []byte(b.String()), nil
}

// UnmarshalText decodes a band name
func (b *Band) UnmarshalText(text []byte) error {
	parsed, err := ParseBand(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// ParseBand converts a band name (case-insensitive) to a Band
func ParseBand(s string) (Band, error) {
	for i, name := range bandNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Band(i), nil
		}
	}
	return BandLow, fmt.Errorf("unknown band: %q", s)
}

// Bands returns all bands in ascending order
func Bands() []Band {
	return []Band{BandLow, BandModerate, BandHigh, BandExtreme}
}

// Suggested follow-up plans per band
const (
	PlanExtreme  = "12-month continuous-care, frequency adjusted to demand"
	PlanHigh     = "minimum 6–12 months, probable continuous care, frequency reviewed on status change"
	PlanModerate = "6 months"
	PlanLow      = "3 months"
)

// Band lower bounds, inclusive
const (
	ExtremeThreshold  = 31
	HighThreshold     = 24
	ModerateThreshold = 17
)

// BandFromScore returns the severity band of a total score
func BandFromScore(total int) Band {
	switch {
	case total >= ExtremeThreshold:
		return BandExtreme
	case total >= HighThreshold:
		return BandHigh
	case total >= ModerateThreshold:
		return BandModerate
	default:
		return BandLow
	}
}

// Classify maps a total score to its band and suggested plan
func Classify(total int) Classification {
	band := BandFromScore(total)
	return Classification{Band: band, SuggestedPlan: planFor(band)}
}

func planFor(b Band) string {
	switch b {
	case BandExtreme:
		return PlanExtreme
	case BandHigh:
		return PlanHigh
	case BandModerate:
		return PlanModerate
	default:
		return PlanLow
	}
}
