package scoring

// MobilityLevel is one step of the IMS (ICU Mobility Scale) with its CCF points
type MobilityLevel struct {
	Value  int    `json:"value"`
	Points int    `json:"points"`
	Label  string `json:"label"`
}

// mobilityLevels is indexed by IMS value.
// Labels are kept as written in the clinical protocol.
var mobilityLevels = [...]MobilityLevel{
	{Value: 0, Points: 4, Label: "passivo"},
	{Value: 1, Points: 4, Label: "restrito ao leito"},
	{Value: 2, Points: 4, Label: "passivo para CR - não realiza OT"},
	{Value: 3, Points: 3, Label: "senta, mas precisa de auxílio"},
	{Value: 4, Points: 3, Label: "assume OT com auxílio"},
	{Value: 5, Points: 3, Label: "participa de transferência para cadeira"},
	{Value: 6, Points: 2, Label: "marcha 4 passos no lugar, com ou sem auxílio"},
	{Value: 7, Points: 2, Label: "deambula 5m com auxílio de 2 pessoas"},
	{Value: 8, Points: 2, Label: "deambula 5m com auxílio de 1 pessoa"},
	{Value: 9, Points: 1, Label: "deambula 5m com DAM"},
	{Value: 10, Points: 1, Label: "deambula 5m independente"},
}

// Mobility index bounds
const (
	MinMobilityIndex = 0
	MaxMobilityIndex = 10
)

func mobilityLevel(ims int) (MobilityLevel, bool) {
	if ims < MinMobilityIndex || ims > MaxMobilityIndex {
		return MobilityLevel{}, false
	}
	return mobilityLevels[ims], true
}

// MobilityScore scores an IMS value by table lookup. Values outside 0-10 score 0.
func MobilityScore(ims int) int {
	level, ok := mobilityLevel(ims)
	if !ok {
		return 0
	}
	return level.Points
}

// MobilityLabel returns the descriptive label of an IMS value
func MobilityLabel(ims int) (string, bool) {
	level, ok := mobilityLevel(ims)
	if !ok {
		return "", false
	}
	return level.Label, true
}

// MobilityLevels returns a copy of the IMS table in ascending order
func MobilityLevels() []MobilityLevel {
	out := make([]MobilityLevel, len(mobilityLevels))
	copy(out, mobilityLevels[:])
	return out
}
