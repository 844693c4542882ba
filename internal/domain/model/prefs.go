package model

// Category weight bounds. Weights are independent 0-100 sliders and are not
// required to sum to anything.
const (
	MinWeight = 0
	MaxWeight = 100
)

// Housing personas for cost-of-living scoring.
const (
	HousingRenter    = "renter"
	HousingHomeowner = "homeowner"
	HousingBuyer     = "buyer"
)

// Work personas for cost-of-living scoring.
const (
	WorkStandard   = "standard"
	WorkHighEarner = "high-earner"
	WorkRetiree    = "retiree"
)

// Political lean preferences.
const (
	LeanStrongDem = "strong-dem"
	LeanDem       = "lean-dem"
	LeanSwing     = "swing"
	LeanRep       = "lean-rep"
	LeanStrongRep = "strong-rep"
	LeanNeutral   = "neutral"
)

// Age profiles for demographic fit.
const (
	AgeProfileYoung  = "young"
	AgeProfileMixed  = "mixed"
	AgeProfileMature = "mature"
)

// UserPreferences is the full preference profile driving a scoring run.
// The six category weights are top-level sliders; each advanced block
// refines how its category is computed.
type UserPreferences struct {
	ClimateWeight       float64 `koanf:"climate_weight"`
	CostWeight          float64 `koanf:"cost_weight"`
	DemographicsWeight  float64 `koanf:"demographics_weight"`
	QualityWeight       float64 `koanf:"quality_weight"`
	ValuesWeight        float64 `koanf:"values_weight"`
	EntertainmentWeight float64 `koanf:"entertainment_weight"`

	Climate       ClimatePrefs       `koanf:"climate"`
	Cost          CostPrefs          `koanf:"cost"`
	Demographics  DemographicPrefs   `koanf:"demographics"`
	Quality       QualityPrefs       `koanf:"quality"`
	Values        ValuesPrefs        `koanf:"values"`
	Entertainment EntertainmentPrefs `koanf:"entertainment"`
}

// ClimatePrefs weights each climate sub-metric 0-100.
type ClimatePrefs struct {
	ComfortWeight       float64 `koanf:"comfort_weight"`
	HeatWeight          float64 `koanf:"heat_weight"`
	FreezeWeight        float64 `koanf:"freeze_weight"`
	RainWeight          float64 `koanf:"rain_weight"`
	SnowWeight          float64 `koanf:"snow_weight"`
	CloudWeight         float64 `koanf:"cloud_weight"`
	HumidityWeight      float64 `koanf:"humidity_weight"`
	DegreeDayWeight     float64 `koanf:"degree_day_weight"`
	GrowingSeasonWeight float64 `koanf:"growing_season_weight"`
	StabilityWeight     float64 `koanf:"stability_weight"`
	DiurnalWeight       float64 `koanf:"diurnal_weight"`
}

// CostPrefs selects the persona used by the purchasing-power calculator.
type CostPrefs struct {
	HousingPersona string `koanf:"housing_persona"`
	WorkPersona    string `koanf:"work_persona"`
}

// DemographicPrefs tunes population-composition scoring.
type DemographicPrefs struct {
	DiversityWeight   float64 `koanf:"diversity_weight"`
	AgeProfile        string  `koanf:"age_profile"` // young, mixed, mature
	AgeWeight         float64 `koanf:"age_weight"`
	EducationWeight   float64 `koanf:"education_weight"`
	ForeignBornWeight float64 `koanf:"foreign_born_weight"`
	EconomicWeight    float64 `koanf:"economic_weight"`

	// Minority-community presence. Subgroup falls back to the parent group
	// when the city's record lacks the subgroup leaf.
	MinorityGroup      string  `koanf:"minority_group"`    // e.g. "hispanic", "asian", "black"
	MinoritySubgroup   string  `koanf:"minority_subgroup"` // e.g. "mexican", "chinese"
	MinorityMinPct     float64 `koanf:"minority_min_pct"`
	MinorityImportance float64 `koanf:"minority_importance"`

	// Soft population floor; shortfall is penalized proportionally,
	// never a hard cutoff.
	MinPopulation float64 `koanf:"min_population"`

	// Dating favorability blend, 0-100 percent of the category score.
	DatingBlendPct float64     `koanf:"dating_blend_pct"`
	Dating         DatingPrefs `koanf:"dating"`
}

// DatingPrefs tunes the dating-favorability sub-score.
type DatingPrefs struct {
	// SeekingMen is true when a surplus of men in the target age band is
	// favorable, false for a surplus of women.
	SeekingMen bool   `koanf:"seeking_men"`
	AgeBand    string `koanf:"age_band"` // "20s", "30s", "40s"
}

// QualityPrefs weights each quality-of-life sub-metric 0-100.
type QualityPrefs struct {
	WalkabilityWeight float64 `koanf:"walkability_weight"`
	SafetyWeight      float64 `koanf:"safety_weight"`
	AirWeight         float64 `koanf:"air_weight"`
	BroadbandWeight   float64 `koanf:"broadband_weight"`
	EducationWeight   float64 `koanf:"education_weight"`
	HealthcareWeight  float64 `koanf:"healthcare_weight"`

	// MinWalkScore shifts the walkability sub-score by the shortfall below
	// this floor.
	MinWalkScore float64 `koanf:"min_walk_score"`
}

// ValuesPrefs tunes political and religious alignment.
type ValuesPrefs struct {
	PoliticalLean   string  `koanf:"political_lean"` // strong-dem .. strong-rep, swing, neutral
	PoliticalWeight float64 `koanf:"political_weight"`

	ReligionTradition string  `koanf:"religion_tradition"` // key into Cultural.Adherence
	ReligionWeight    float64 `koanf:"religion_weight"`

	DiversityWeight float64 `koanf:"diversity_weight"` // religious diversity
}

// EntertainmentPrefs weights urban-lifestyle sub-metrics 0-100.
type EntertainmentPrefs struct {
	NightlifeWeight  float64 `koanf:"nightlife_weight"`
	ArtsWeight       float64 `koanf:"arts_weight"`
	DiningWeight     float64 `koanf:"dining_weight"`
	SportsWeight     float64 `koanf:"sports_weight"`
	RecreationWeight float64 `koanf:"recreation_weight"`

	NatureWeight   float64 `koanf:"nature_weight"`
	BeachWeight    float64 `koanf:"beach_weight"`
	MountainWeight float64 `koanf:"mountain_weight"`
}

// DefaultPreferences returns a balanced profile: all six categories matter
// equally and every sub-metric carries a moderate weight. Used when the
// caller supplies no profile.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		ClimateWeight:       50,
		CostWeight:          50,
		DemographicsWeight:  50,
		QualityWeight:       50,
		ValuesWeight:        50,
		EntertainmentWeight: 50,
		Climate: ClimatePrefs{
			ComfortWeight:       70,
			HeatWeight:          50,
			FreezeWeight:        50,
			RainWeight:          30,
			SnowWeight:          30,
			CloudWeight:         30,
			HumidityWeight:      40,
			DegreeDayWeight:     30,
			GrowingSeasonWeight: 20,
			StabilityWeight:     20,
			DiurnalWeight:       10,
		},
		Cost: CostPrefs{
			HousingPersona: HousingRenter,
			WorkPersona:    WorkStandard,
		},
		Demographics: DemographicPrefs{
			DiversityWeight:   40,
			AgeProfile:        AgeProfileMixed,
			AgeWeight:         40,
			EducationWeight:   40,
			ForeignBornWeight: 20,
			EconomicWeight:    50,
		},
		Quality: QualityPrefs{
			WalkabilityWeight: 50,
			SafetyWeight:      70,
			AirWeight:         40,
			BroadbandWeight:   40,
			EducationWeight:   40,
			HealthcareWeight:  40,
		},
		Values: ValuesPrefs{
			PoliticalLean:   LeanNeutral,
			PoliticalWeight: 0,
			ReligionWeight:  0,
			DiversityWeight: 30,
		},
		Entertainment: EntertainmentPrefs{
			NightlifeWeight:  40,
			ArtsWeight:       40,
			DiningWeight:     50,
			SportsWeight:     30,
			RecreationWeight: 50,
			NatureWeight:     50,
			BeachWeight:      30,
			MountainWeight:   30,
		},
	}
}

// CategoryWeights returns the six top-level weights in presentation order.
func (p UserPreferences) CategoryWeights() []float64 {
	return []float64{
		p.ClimateWeight, p.CostWeight, p.DemographicsWeight,
		p.QualityWeight, p.ValuesWeight, p.EntertainmentWeight,
	}
}
