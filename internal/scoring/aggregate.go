package scoring

// Highest attainable sub-scores with the canonical tables
const (
	MaxClinical   = 22
	MaxFunctional = 16
)

// Breakdown scores every dimension of a record independently
func Breakdown(rec AssessmentRecord) ScoreBreakdown {
	return ScoreBreakdown{
		Age:                AgeScore(rec.Age),
		Diagnosis:          DiagnosisScore(rec.Diagnosis),
		Hospitalizations:   HospitalizationScore(rec.Hospitalizations),
		Frailty:            FrailtyScore(rec.Frailty),
		Sarcopenia:         SarcopeniaScore(rec.Sarcopenia),
		Falls:              FallsScore(rec.Falls),
		CommunityActive:    CommunityActiveScore(rec.CommunityActive),
		DailyPhysiotherapy: DailyPhysiotherapyScore(rec.DailyPhysiotherapy),
		CareBond:           CareBondScore(rec.CareBond),
		MobilityIndex:      MobilityScore(rec.MobilityIndex),
		GaitSpeed:          GaitSpeedScore(rec.GaitSpeed),
		SitToStand:         SitToStandScore(rec.SitToStand),
		Balance:            BalanceScore(rec.BalanceScore),
	}
}

// Clinical sums the clinical-domain dimensions, bonuses included
func (b ScoreBreakdown) Clinical() int {
	return b.Age + b.Diagnosis + b.Hospitalizations + b.Frailty + b.Sarcopenia + b.Falls +
		b.CommunityActive + b.DailyPhysiotherapy + b.CareBond
}

// Functional sums the functional-domain dimensions
func (b ScoreBreakdown) Functional() int {
	return b.MobilityIndex + b.GaitSpeed + b.SitToStand + b.Balance
}

// Metrics lists the breakdown as display metrics, clinical dimensions first
func (b ScoreBreakdown) Metrics() []ScoringMetric {
	return []ScoringMetric{
		{Category: CategoryClinical, Name: "Age", Points: b.Age, MaxPoints: 3},
		{Category: CategoryClinical, Name: "Diagnosis (HD)", Points: b.Diagnosis, MaxPoints: maxPoints(diagnosisPoints)},
		{Category: CategoryClinical, Name: "Hospitalizations", Points: b.Hospitalizations, MaxPoints: maxPoints(hospitalizationPoints)},
		{Category: CategoryClinical, Name: "Frailty", Points: b.Frailty, MaxPoints: maxPoints(frailtyPoints)},
		{Category: CategoryClinical, Name: "Sarcopenia", Points: b.Sarcopenia, MaxPoints: maxPoints(sarcopeniaPoints)},
		{Category: CategoryClinical, Name: "Falls", Points: b.Falls, MaxPoints: maxPoints(fallsPoints)},
		{Category: CategoryClinical, Name: "Community active", Points: b.CommunityActive, MaxPoints: 0, Note: bonusNote(b.CommunityActive)},
		{Category: CategoryClinical, Name: "Daily physiotherapy", Points: b.DailyPhysiotherapy, MaxPoints: 0, Note: bonusNote(b.DailyPhysiotherapy)},
		{Category: CategoryClinical, Name: "Care bond", Points: b.CareBond, MaxPoints: maxPoints(careBondPoints)},
		{Category: CategoryFunctional, Name: "Mobility index (IMS)", Points: b.MobilityIndex, MaxPoints: 4},
		{Category: CategoryFunctional, Name: "Gait speed", Points: b.GaitSpeed, MaxPoints: maxPoints(gaitSpeedPoints)},
		{Category: CategoryFunctional, Name: "Sit-to-stand (TSL 5x)", Points: b.SitToStand, MaxPoints: maxPoints(sitToStandPoints)},
		{Category: CategoryFunctional, Name: "Balance (SPPB)", Points: b.Balance, MaxPoints: 4},
	}
}

func bonusNote(points int) string {
	if points < 0 {
		return "bonus"
	}
	return ""
}

// Score computes both sub-scores and the total. The total is not clamped and
// may be negative when bonuses dominate.
func Score(rec AssessmentRecord) ScoringResult {
	b := Breakdown(rec)
	clinical := b.Clinical()
	functional := b.Functional()
	return ScoringResult{
		Clinical:   clinical,
		Functional: functional,
		Total:      clinical + functional,
		Breakdown:  b,
	}
}

// Evaluate runs the whole pipeline: score, classify and resolve the track
func Evaluate(rec AssessmentRecord) Evaluation {
	result := Score(rec)
	eval := Evaluation{
		Result:         result,
		Classification: Classify(result.Total),
	}
	if track, ok := ResolveTrack(result.Total); ok {
		eval.Track = &track
	}
	return eval
}
