package output

import (
	"github.com/dotcommander/ccfscore/internal/cli"
	"github.com/dotcommander/ccfscore/internal/scoring"
	"github.com/dotcommander/ccfscore/internal/types"
)

func intPtr(v int) *int { return &v }

func lowRecord() scoring.AssessmentRecord {
	return scoring.AssessmentRecord{
		Name:             "Maria",
		Age:              intPtr(75),
		Diagnosis:        scoring.DiagnosisStableChronic,
		Hospitalizations: scoring.HospitalizationsNone,
		Frailty:          scoring.FrailtyRobust,
		Sarcopenia:       scoring.SarcopeniaNone,
		Falls:            scoring.FallsNone,
		CareBond:         scoring.CareBondEstablished,
		MobilityIndex:    10,
		GaitSpeed:        scoring.GaitSpeedOver1,
		SitToStand:       scoring.SitToStandAsExpected,
		BalanceScore:     4,
	}
}

func highRecord() scoring.AssessmentRecord {
	return scoring.AssessmentRecord{
		Name:             "João",
		Age:              intPtr(93),
		Diagnosis:        scoring.DiagnosisAcuteAdvanced,
		Hospitalizations: scoring.HospitalizationsTwoOrMore,
		Frailty:          scoring.FrailtyFrail,
		Sarcopenia:       scoring.SarcopeniaSarcopenic,
		Falls:            scoring.FallsTwoOrMore,
		CareBond:         scoring.CareBondNotEstablished,
		MobilityIndex:    0,
		GaitSpeed:        scoring.GaitSpeedUnder0_4,
		SitToStand:       scoring.SitToStandNotPerformed,
		BalanceScore:     0,
	}
}

// sampleSummary holds a low (10), an extreme (38), an untracked (4) and a failed assessment
func sampleSummary() *cli.Summary {
	low := scoring.Evaluate(lowRecord())
	high := scoring.Evaluate(highRecord())
	active := lowRecord()
	active.Name = ""
	active.CommunityActive = true
	active.DailyPhysiotherapy = true
	bonus := scoring.Evaluate(active)

	s := cli.NewSummary("/clinic", 3)
	s.Duration = 12
	s.Results = []cli.AssessmentResult{
		{File: "maria.ccf.yaml", Name: "Maria", Evaluation: &low, Success: true},
		{File: "ward.ccf.yaml", Document: 0, Name: "João", Evaluation: &high, Success: true,
			Warnings: []types.ValidationError{{File: "ward.ccf.yaml", Field: "care_bond", Message: "Schema validation failed for care_bond: conflicting values",
				Severity: types.SeverityWarning, Source: types.SourceSchema}}},
		{File: "ward.ccf.yaml", Document: 1, Evaluation: &bonus, Success: true},
		{File: "broken.ccf.yaml", Errors: []types.ValidationError{{File: "broken.ccf.yaml", Message: "error parsing broken.ccf.yaml: document 0: yaml: line 1",
			Severity: types.SeverityError, Source: types.SourceDecoder}}},
	}
	s.TotalAssessments = 4
	s.ScoredCount = 3
	s.FailedCount = 1
	s.TotalErrors = 1
	s.TotalWarnings = 1
	s.BandCounts[scoring.BandLow] = 2
	s.BandCounts[scoring.BandExtreme] = 1
	s.TrackCounts["1B"] = 1
	s.TrackCounts["4B"] = 1
	s.TrackedCount = 2
	s.UntrackedCount = 1
	return s
}
