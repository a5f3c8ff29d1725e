package scoring

// Points per enumerated value. Values missing from a table score 0.
var (
	diagnosisPoints = map[DiagnosisCategory]int{
		DiagnosisAcuteAdvanced:   4,
		DiagnosisLimitingChronic: 3,
		DiagnosisChronic:         2,
		DiagnosisStableChronic:   1,
	}

	hospitalizationPoints = map[Hospitalizations]int{
		HospitalizationsTwoOrMore: 4,
		HospitalizationsOne:       3,
		HospitalizationsNone:      1,
	}

	frailtyPoints = map[Frailty]int{
		FrailtyFrail:    3,
		FrailtyPreFrail: 2,
		FrailtyRobust:   1,
	}

	sarcopeniaPoints = map[Sarcopenia]int{
		SarcopeniaSarcopenic: 3,
		SarcopeniaPre:        2,
		SarcopeniaNone:       1,
	}

	fallsPoints = map[Falls]int{
		FallsTwoOrMore: 3,
		FallsOne:       2,
		FallsNone:      1,
	}

	careBondPoints = map[CareBond]int{
		CareBondNotEstablished:     2,
		CareBondViaReferralProgram: 1,
		CareBondEstablished:        0,
	}

	gaitSpeedPoints = map[GaitSpeed]int{
		GaitSpeedUnder0_4:     4,
		GaitSpeedFrom0_4To0_8: 3,
		GaitSpeedFrom0_8To1:   2,
		GaitSpeedOver1:        1,
	}

	sitToStandPoints = map[SitToStand]int{
		SitToStandNotPerformed:      4,
		SitToStandWorseThanExpected: 3,
		SitToStandAsExpected:        1,
	}
)

// activityBonus is the reduction applied for community activity and daily physiotherapy
const activityBonus = -3

// AgeScore scores age in years. A nil age scores 0.
func AgeScore(age *int) int {
	if age == nil {
		return 0
	}
	switch a := *age; {
	case a >= 90:
		return 3
	case a >= 80:
		return 2
	case a >= 60:
		return 1
	default:
		return 0
	}
}

// DiagnosisScore scores the diagnosis category
func DiagnosisScore(d DiagnosisCategory) int {
	return diagnosisPoints[d]
}

// HospitalizationScore scores hospitalizations in the past year
func HospitalizationScore(h Hospitalizations) int {
	return hospitalizationPoints[h]
}

// FrailtyScore scores the frailty phenotype
func FrailtyScore(f Frailty) int {
	return frailtyPoints[f]
}

// SarcopeniaScore scores the sarcopenia result
func SarcopeniaScore(s Sarcopenia) int {
	return sarcopeniaPoints[s]
}

// FallsScore scores falls in the past year
func FallsScore(f Falls) int {
	return fallsPoints[f]
}

// CommunityActiveScore returns the bonus reduction for a patient active in the community
func CommunityActiveScore(active bool) int {
	if active {
		return activityBonus
	}
	return 0
}

// DailyPhysiotherapyScore returns the bonus reduction for daily physiotherapy
func DailyPhysiotherapyScore(daily bool) int {
	if daily {
		return activityBonus
	}
	return 0
}

// CareBondScore scores the care bond status
func CareBondScore(c CareBond) int {
	return careBondPoints[c]
}

// GaitSpeedScore scores the gait speed band
func GaitSpeedScore(g GaitSpeed) int {
	return gaitSpeedPoints[g]
}

// SitToStandScore scores the sit-to-stand test result
func SitToStandScore(s SitToStand) int {
	return sitToStandPoints[s]
}

// BalanceScore scores the raw SPPB balance sub-score.
// 3 and 4 both score 1; negative values score 0.
func BalanceScore(balance int) int {
	switch {
	case balance < 0:
		return 0
	case balance == 0:
		return 4
	case balance == 1:
		return 3
	case balance == 2:
		return 2
	default:
		return 1
	}
}

// maxPoints returns the highest value in a points table
func maxPoints[K comparable](table map[K]int) int {
	best := 0
	for _, p := range table {
		if p > best {
			best = p
		}
	}
	return best
}
