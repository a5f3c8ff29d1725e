package scoring

import (
	"testing"
)

func intPtr(v int) *int {
	return &v
}

func TestAgeScore(t *testing.T) {
	tests := []struct {
		name string
		age  *int
		want int
	}{
		{"nil age", nil, 0},
		{"zero", intPtr(0), 0},
		{"59", intPtr(59), 0},
		{"60 - lower bound", intPtr(60), 1},
		{"79", intPtr(79), 1},
		{"80 - lower bound", intPtr(80), 2},
		{"89", intPtr(89), 2},
		{"90 - lower bound", intPtr(90), 3},
		{"very old", intPtr(112), 3},
		{"negative", intPtr(-4), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AgeScore(tt.age); got != tt.want {
				t.Errorf("AgeScore() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEnumScorers(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"diagnosis stable chronic", DiagnosisScore(DiagnosisStableChronic), 1},
		{"diagnosis chronic", DiagnosisScore(DiagnosisChronic), 2},
		{"diagnosis limiting chronic", DiagnosisScore(DiagnosisLimitingChronic), 3},
		{"diagnosis acute advanced", DiagnosisScore(DiagnosisAcuteAdvanced), 4},
		{"diagnosis unknown", DiagnosisScore("terminal"), 0},

		{"hospitalizations none", HospitalizationScore(HospitalizationsNone), 1},
		{"hospitalizations one", HospitalizationScore(HospitalizationsOne), 3},
		{"hospitalizations two or more", HospitalizationScore(HospitalizationsTwoOrMore), 4},
		{"hospitalizations empty", HospitalizationScore(""), 0},

		{"frailty robust", FrailtyScore(FrailtyRobust), 1},
		{"frailty pre-frail", FrailtyScore(FrailtyPreFrail), 2},
		{"frailty frail", FrailtyScore(FrailtyFrail), 3},
		{"frailty unknown", FrailtyScore("FRAIL"), 0},

		{"sarcopenia none", SarcopeniaScore(SarcopeniaNone), 1},
		{"sarcopenia pre", SarcopeniaScore(SarcopeniaPre), 2},
		{"sarcopenia sarcopenic", SarcopeniaScore(SarcopeniaSarcopenic), 3},

		{"falls none", FallsScore(FallsNone), 1},
		{"falls one", FallsScore(FallsOne), 2},
		{"falls two or more", FallsScore(FallsTwoOrMore), 3},

		{"care bond established", CareBondScore(CareBondEstablished), 0},
		{"care bond via referral", CareBondScore(CareBondViaReferralProgram), 1},
		{"care bond not established", CareBondScore(CareBondNotEstablished), 2},
		{"care bond unknown", CareBondScore("pending"), 0},

		{"gait under 0.4", GaitSpeedScore(GaitSpeedUnder0_4), 4},
		{"gait 0.4 to 0.8", GaitSpeedScore(GaitSpeedFrom0_4To0_8), 3},
		{"gait 0.8 to 1", GaitSpeedScore(GaitSpeedFrom0_8To1), 2},
		{"gait over 1", GaitSpeedScore(GaitSpeedOver1), 1},

		{"sit-to-stand not performed", SitToStandScore(SitToStandNotPerformed), 4},
		{"sit-to-stand worse", SitToStandScore(SitToStandWorseThanExpected), 3},
		{"sit-to-stand expected", SitToStandScore(SitToStandAsExpected), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("score = %d, want %d", tt.got, tt.want)
			}
		})
	}
}

func TestBonusScorers(t *testing.T) {
	if got := CommunityActiveScore(true); got != -3 {
		t.Errorf("CommunityActiveScore(true) = %d, want -3", got)
	}
	if got := CommunityActiveScore(false); got != 0 {
		t.Errorf("CommunityActiveScore(false) = %d, want 0", got)
	}
	if got := DailyPhysiotherapyScore(true); got != -3 {
		t.Errorf("DailyPhysiotherapyScore(true) = %d, want -3", got)
	}
	if got := DailyPhysiotherapyScore(false); got != 0 {
		t.Errorf("DailyPhysiotherapyScore(false) = %d, want 0", got)
	}
}

func TestBalanceScore(t *testing.T) {
	tests := []struct {
		balance int
		want    int
	}{
		{-1, 0},
		{0, 4},
		{1, 3},
		{2, 2},
		{3, 1},
		{4, 1},
		{9, 1},
	}

	for _, tt := range tests {
		if got := BalanceScore(tt.balance); got != tt.want {
			t.Errorf("BalanceScore(%d) = %d, want %d", tt.balance, got, tt.want)
		}
	}
}

func TestDiagnosisOrdering(t *testing.T) {
	if DiagnosisScore(DiagnosisAcuteAdvanced) <= DiagnosisScore(DiagnosisStableChronic) {
		t.Error("acute/advanced diagnosis must score higher than stable chronic")
	}
}

func TestMaxPoints(t *testing.T) {
	if got := maxPoints(diagnosisPoints); got != 4 {
		t.Errorf("maxPoints(diagnosis) = %d, want 4", got)
	}
	if got := maxPoints(careBondPoints); got != 2 {
		t.Errorf("maxPoints(careBond) = %d, want 2", got)
	}
	if got := maxPoints(map[string]int{}); got != 0 {
		t.Errorf("maxPoints(empty) = %d, want 0", got)
	}
}
