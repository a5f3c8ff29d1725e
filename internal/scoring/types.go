// Package scoring implements the CCF (clinical-functional) risk score for
// elderly patients: per-field scorers, the clinical and functional
// sub-scores, the severity classification and the functionality track lookup.
//
// Every function in this package is pure. Lookup tables are package-level
// and never mutated, so callers may score records concurrently.
package scoring

// DiagnosisCategory is the health-condition (HD) category of the patient
type DiagnosisCategory string

const (
	DiagnosisStableChronic   DiagnosisCategory = "stable_chronic"
	DiagnosisChronic         DiagnosisCategory = "chronic"
	DiagnosisLimitingChronic DiagnosisCategory = "limiting_chronic"
	DiagnosisAcuteAdvanced   DiagnosisCategory = "acute_advanced"
)

// Hospitalizations counts non-elective hospital admissions in the past year
type Hospitalizations string

const (
	HospitalizationsNone      Hospitalizations = "none"
	HospitalizationsOne       Hospitalizations = "one"
	HospitalizationsTwoOrMore Hospitalizations = "two_or_more"
)

// Frailty is the frailty phenotype
type Frailty string

const (
	FrailtyRobust   Frailty = "robust"
	FrailtyPreFrail Frailty = "pre_frail"
	FrailtyFrail    Frailty = "frail"
)

// Sarcopenia is the sarcopenia screening result
type Sarcopenia string

const (
	SarcopeniaNone       Sarcopenia = "none"
	SarcopeniaPre        Sarcopenia = "pre_sarcopenic"
	SarcopeniaSarcopenic Sarcopenia = "sarcopenic"
)

// Falls counts falls in the past year
type Falls string

const (
	FallsNone      Falls = "none"
	FallsOne       Falls = "one"
	FallsTwoOrMore Falls = "two_or_more"
)

// CareBond describes whether a care bond with the patient is established
type CareBond string

const (
	CareBondEstablished        CareBond = "established"
	CareBondViaReferralProgram CareBond = "via_referral_program"
	CareBondNotEstablished     CareBond = "not_established"
)

// GaitSpeed is the gait speed band in m/s
type GaitSpeed string

const (
	GaitSpeedUnder0_4     GaitSpeed = "under_0_4"
	GaitSpeedFrom0_4To0_8 GaitSpeed = "0_4_to_0_8"
	GaitSpeedFrom0_8To1   GaitSpeed = "0_8_to_1"
	GaitSpeedOver1        GaitSpeed = "over_1"
)

// SitToStand is the categorized result of the five-times sit-to-stand test (TSL 5x)
type SitToStand string

const (
	SitToStandAsExpected        SitToStand = "as_expected"
	SitToStandWorseThanExpected SitToStand = "worse_than_expected"
	SitToStandNotPerformed      SitToStand = "not_performed"
)

// AssessmentRecord is a single patient assessment.
// The engine assumes the record was validated upstream; values outside an
// enumeration score 0 rather than failing.
type AssessmentRecord struct {
	Name               string            `json:"name,omitempty" yaml:"name,omitempty"` // display only, never scored
	Age                *int              `json:"age,omitempty" yaml:"age,omitempty"`   // nil when not supplied
	Diagnosis          DiagnosisCategory `json:"diagnosis" yaml:"diagnosis"`
	Hospitalizations   Hospitalizations  `json:"hospitalizations" yaml:"hospitalizations"`
	Frailty            Frailty           `json:"frailty" yaml:"frailty"`
	Sarcopenia         Sarcopenia        `json:"sarcopenia" yaml:"sarcopenia"`
	Falls              Falls             `json:"falls" yaml:"falls"`
	CommunityActive    bool              `json:"community_active" yaml:"community_active"`
	DailyPhysiotherapy bool              `json:"daily_physiotherapy" yaml:"daily_physiotherapy"`
	CareBond           CareBond          `json:"care_bond" yaml:"care_bond"`
	MobilityIndex      int               `json:"mobility_index" yaml:"mobility_index"` // IMS 0-10
	GaitSpeed          GaitSpeed         `json:"gait_speed" yaml:"gait_speed"`
	SitToStand         SitToStand        `json:"sit_to_stand" yaml:"sit_to_stand"`
	BalanceScore       int               `json:"balance" yaml:"balance"` // raw SPPB balance 0-4
}

// ScoringMetric represents a single scored dimension
type ScoringMetric struct {
	Category  string `json:"category"`   // clinical, functional
	Name      string `json:"name"`       // Human-readable name
	Points    int    `json:"points"`     // Points contributed (negative for bonuses)
	MaxPoints int    `json:"max_points"` // Highest points the dimension can contribute
	Note      string `json:"note,omitempty"`
}

// Metric categories
const (
	CategoryClinical   = "clinical"
	CategoryFunctional = "functional"
)

// ScoreBreakdown holds the points of every dimension, each independently inspectable
type ScoreBreakdown struct {
	Age                int `json:"age"`
	Diagnosis          int `json:"diagnosis"`
	Hospitalizations   int `json:"hospitalizations"`
	Frailty            int `json:"frailty"`
	Sarcopenia         int `json:"sarcopenia"`
	Falls              int `json:"falls"`
	CommunityActive    int `json:"community_active"`
	DailyPhysiotherapy int `json:"daily_physiotherapy"`
	CareBond           int `json:"care_bond"`
	MobilityIndex      int `json:"mobility_index"`
	GaitSpeed          int `json:"gait_speed"`
	SitToStand         int `json:"sit_to_stand"`
	Balance            int `json:"balance"`
}

// ScoringResult is the output of the aggregator
type ScoringResult struct {
	Clinical   int            `json:"clinical"`
	Functional int            `json:"functional"`
	Total      int            `json:"total"` // always Clinical + Functional
	Breakdown  ScoreBreakdown `json:"breakdown"`
}

// Classification is the severity band of a total score and its suggested plan
type Classification struct {
	Band          Band   `json:"band"`
	SuggestedPlan string `json:"suggested_plan"`
}

// Track is one entry of the functionality track table
type Track struct {
	Tier          Band   `json:"tier"`
	TierLabel     string `json:"tier_label"` // label as written in the track table
	SubTier       string `json:"sub_tier"`
	ScoreRange    string `json:"score_range"`
	Name          string `json:"name"`
	ReviewCadence string `json:"review_cadence"`
	Guidance      string `json:"guidance"`
	DisplayColor  string `json:"display_color"`
	Min           int    `json:"min"`
	Max           int    `json:"max"`
}

// Evaluation bundles everything computed for one record
type Evaluation struct {
	Result         ScoringResult  `json:"result"`
	Classification Classification `json:"classification"`
	Track          *Track         `json:"track,omitempty"` // nil when the total has no track
}
