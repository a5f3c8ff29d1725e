package scoring

import (
	"encoding/json"
	"testing"
)

func TestBandFromScore(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		wantBand Band
		wantPlan string
	}{
		{"Extreme - very large", 1000, BandExtreme, PlanExtreme},
		{"Extreme - exact boundary", 31, BandExtreme, PlanExtreme},
		{"High - upper range", 30, BandHigh, PlanHigh},
		{"High - exact boundary", 24, BandHigh, PlanHigh},
		{"Moderate - upper range", 23, BandModerate, PlanModerate},
		{"Moderate - exact boundary", 17, BandModerate, PlanModerate},
		{"Low - boundary", 16, BandLow, PlanLow},
		{"Low - zero", 0, BandLow, PlanLow},
		{"Low - negative", -6, BandLow, PlanLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BandFromScore(tt.score); got != tt.wantBand {
				t.Errorf("BandFromScore(%d) = %v, want %v", tt.score, got, tt.wantBand)
			}
			c := Classify(tt.score)
			if c.Band != tt.wantBand {
				t.Errorf("Classify(%d).Band = %v, want %v", tt.score, c.Band, tt.wantBand)
			}
			if c.SuggestedPlan != tt.wantPlan {
				t.Errorf("Classify(%d).SuggestedPlan = %q, want %q", tt.score, c.SuggestedPlan, tt.wantPlan)
			}
		})
	}
}

func TestBandString(t *testing.T) {
	tests := []struct {
		band Band
		want string
	}{
		{BandLow, "Low"},
		{BandModerate, "Moderate"},
		{BandHigh, "High"},
		{BandExtreme, "Extreme"},
		{Band(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.band.String(); got != tt.want {
			t.Errorf("Band(%d).String() = %q, want %q", int(tt.band), got, tt.want)
		}
	}
}

func TestParseBand(t *testing.T) {
	for _, b := range Bands() {
		got, err := ParseBand(b.String())
		if err != nil {
			t.Fatalf("ParseBand(%q) error: %v", b.String(), err)
		}
		if got != b {
			t.Errorf("ParseBand(%q) = %v", b.String(), got)
		}
	}

	if got, err := ParseBand("  high "); err != nil || got != BandHigh {
		t.Errorf("ParseBand(\"  high \") = %v, %v", got, err)
	}
	if _, err := ParseBand("critical"); err == nil {
		t.Error("ParseBand(\"critical\") should fail")
	}
}

func TestBandOrdering(t *testing.T) {
	bands := Bands()
	for i := 1; i < len(bands); i++ {
		if bands[i-1] >= bands[i] {
			t.Errorf("bands not ascending at %d: %v >= %v", i, bands[i-1], bands[i])
		}
	}
}

func TestBandJSON(t *testing.T) {
	data, err := json.Marshal(Classification{Band: BandHigh, SuggestedPlan: PlanHigh})
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	var decoded Classification
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if decoded.Band != BandHigh {
		t.Errorf("decoded band = %v, want High", decoded.Band)
	}

	if _, err := json.Marshal(Band(-1)); err == nil {
		t.Error("marshaling an invalid band should fail")
	}
}
