package assessment

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/dotcommander/ccfscore/internal/scoring"
)

// Aliases accepted for enumerated fields, keyed by normalized label.
// Each table holds the canonical codes and the labels used on the paper form.
var (
	diagnosisAliases = map[string]scoring.DiagnosisCategory{
		"stable_chronic":        scoring.DiagnosisStableChronic,
		"chronic":               scoring.DiagnosisChronic,
		"limiting_chronic":      scoring.DiagnosisLimitingChronic,
		"acute_advanced":        scoring.DiagnosisAcuteAdvanced,
		"cid crônico estável":   scoring.DiagnosisStableChronic,
		"cid crônico":           scoring.DiagnosisChronic,
		"cid crônico limitante": scoring.DiagnosisLimitingChronic,
		"cid agudo/avançado":    scoring.DiagnosisAcuteAdvanced,
	}

	hospitalizationAliases = map[string]scoring.Hospitalizations{
		"none":        scoring.HospitalizationsNone,
		"one":         scoring.HospitalizationsOne,
		"two_or_more": scoring.HospitalizationsTwoOrMore,
		"não":         scoring.HospitalizationsNone,
		"0":           scoring.HospitalizationsNone,
		"1":           scoring.HospitalizationsOne,
		"2 ou mais":   scoring.HospitalizationsTwoOrMore,
	}

	frailtyAliases = map[string]scoring.Frailty{
		"robust":     scoring.FrailtyRobust,
		"pre_frail":  scoring.FrailtyPreFrail,
		"frail":      scoring.FrailtyFrail,
		"robusto":    scoring.FrailtyRobust,
		"pré-frágil": scoring.FrailtyPreFrail,
		"frágil":     scoring.FrailtyFrail,
	}

	sarcopeniaAliases = map[string]scoring.Sarcopenia{
		"none":            scoring.SarcopeniaNone,
		"pre_sarcopenic":  scoring.SarcopeniaPre,
		"sarcopenic":      scoring.SarcopeniaSarcopenic,
		"não sarcopênico": scoring.SarcopeniaNone,
		"pré-sarcopênico": scoring.SarcopeniaPre,
		"sarcopênico":     scoring.SarcopeniaSarcopenic,
	}

	fallsAliases = map[string]scoring.Falls{
		"none":        scoring.FallsNone,
		"one":         scoring.FallsOne,
		"two_or_more": scoring.FallsTwoOrMore,
		"nenhuma":     scoring.FallsNone,
		"0":           scoring.FallsNone,
		"1":           scoring.FallsOne,
		"2 ou mais":   scoring.FallsTwoOrMore,
	}

	careBondAliases = map[string]scoring.CareBond{
		"established":          scoring.CareBondEstablished,
		"via_referral_program": scoring.CareBondViaReferralProgram,
		"not_established":      scoring.CareBondNotEstablished,
		"estabelecido":         scoring.CareBondEstablished,
		"via elo":              scoring.CareBondViaReferralProgram,
		"não estabelecido":     scoring.CareBondNotEstablished,
	}

	gaitSpeedAliases = map[string]scoring.GaitSpeed{
		"under_0_4":  scoring.GaitSpeedUnder0_4,
		"0_4_to_0_8": scoring.GaitSpeedFrom0_4To0_8,
		"0_8_to_1":   scoring.GaitSpeedFrom0_8To1,
		"over_1":     scoring.GaitSpeedOver1,
		"< 0.4":      scoring.GaitSpeedUnder0_4,
		"0.4 a 0.8":  scoring.GaitSpeedFrom0_4To0_8,
		"0.8 a 1":    scoring.GaitSpeedFrom0_8To1,
		"> 1":        scoring.GaitSpeedOver1,
	}

	sitToStandAliases = map[string]scoring.SitToStand{
		"as_expected":         scoring.SitToStandAsExpected,
		"worse_than_expected": scoring.SitToStandWorseThanExpected,
		"not_performed":       scoring.SitToStandNotPerformed,
		"esperado":            scoring.SitToStandAsExpected,
		"pior que o esperado": scoring.SitToStandWorseThanExpected,
		"não realiza":         scoring.SitToStandNotPerformed,
	}

	boolAliases = map[string]bool{
		"true":  true,
		"yes":   true,
		"sim":   true,
		"false": false,
		"no":    false,
		"não":   false,
	}
)

// allowedValues lists the canonical codes of each enumerated field in scoring order
var allowedValues = map[string][]string{
	FieldDiagnosis: codes(scoring.DiagnosisStableChronic, scoring.DiagnosisChronic,
		scoring.DiagnosisLimitingChronic, scoring.DiagnosisAcuteAdvanced),
	FieldHospitalizations: codes(scoring.HospitalizationsNone, scoring.HospitalizationsOne,
		scoring.HospitalizationsTwoOrMore),
	FieldFrailty:    codes(scoring.FrailtyRobust, scoring.FrailtyPreFrail, scoring.FrailtyFrail),
	FieldSarcopenia: codes(scoring.SarcopeniaNone, scoring.SarcopeniaPre, scoring.SarcopeniaSarcopenic),
	FieldFalls:      codes(scoring.FallsNone, scoring.FallsOne, scoring.FallsTwoOrMore),
	FieldCareBond: codes(scoring.CareBondEstablished, scoring.CareBondViaReferralProgram,
		scoring.CareBondNotEstablished),
	FieldGaitSpeed: codes(scoring.GaitSpeedUnder0_4, scoring.GaitSpeedFrom0_4To0_8,
		scoring.GaitSpeedFrom0_8To1, scoring.GaitSpeedOver1),
	FieldSitToStand: codes(scoring.SitToStandAsExpected, scoring.SitToStandWorseThanExpected,
		scoring.SitToStandNotPerformed),
	FieldCommunityActive:    {"true", "false"},
	FieldDailyPhysiotherapy: {"true", "false"},
}

func codes[T ~string](values ...T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// resolve maps a label to its canonical value. Unknown labels are passed
// through unchanged so the engine scores them 0.
func resolve[T ~string](aliases map[string]T, label string) T {
	if v, ok := aliases[normalize(label)]; ok {
		return v
	}
	return T(strings.TrimSpace(label))
}

func lookup[T ~string](aliases map[string]T, label string) (string, bool) {
	v, ok := aliases[normalize(label)]
	return string(v), ok
}

// canonicalLabel returns the canonical code of a label. Boolean fields
// yield "true" or "false".
func canonicalLabel(field, label string) (string, bool) {
	switch field {
	case FieldDiagnosis:
		return lookup(diagnosisAliases, label)
	case FieldHospitalizations:
		return lookup(hospitalizationAliases, label)
	case FieldFrailty:
		return lookup(frailtyAliases, label)
	case FieldSarcopenia:
		return lookup(sarcopeniaAliases, label)
	case FieldFalls:
		return lookup(fallsAliases, label)
	case FieldCareBond:
		return lookup(careBondAliases, label)
	case FieldGaitSpeed:
		return lookup(gaitSpeedAliases, label)
	case FieldSitToStand:
		return lookup(sitToStandAliases, label)
	case FieldCommunityActive, FieldDailyPhysiotherapy:
		b, ok := boolAliases[normalize(label)]
		return strconv.FormatBool(b), ok
	}
	return "", false
}

// Known reports whether a label is a recognized value for an enumerated field
func Known(field, label string) bool {
	_, ok := canonicalLabel(field, label)
	return ok
}

// Labels returns every normalized label accepted for an enumerated field, sorted
func Labels(field string) []string {
	switch field {
	case FieldDiagnosis:
		return slices.Sorted(maps.Keys(diagnosisAliases))
	case FieldHospitalizations:
		return slices.Sorted(maps.Keys(hospitalizationAliases))
	case FieldFrailty:
		return slices.Sorted(maps.Keys(frailtyAliases))
	case FieldSarcopenia:
		return slices.Sorted(maps.Keys(sarcopeniaAliases))
	case FieldFalls:
		return slices.Sorted(maps.Keys(fallsAliases))
	case FieldCareBond:
		return slices.Sorted(maps.Keys(careBondAliases))
	case FieldGaitSpeed:
		return slices.Sorted(maps.Keys(gaitSpeedAliases))
	case FieldSitToStand:
		return slices.Sorted(maps.Keys(sitToStandAliases))
	case FieldCommunityActive, FieldDailyPhysiotherapy:
		return slices.Sorted(maps.Keys(boolAliases))
	}
	return nil
}

// AllowedValues returns the canonical codes of an enumerated field, or nil
// for any other field.
func AllowedValues(field string) []string {
	return slices.Clone(allowedValues[field])
}

// IsCountField reports whether a field also accepts a non-negative count
func IsCountField(field string) bool {
	return field == FieldHospitalizations || field == FieldFalls
}
