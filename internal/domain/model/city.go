// Package model contains domain models passed between layers.
package model

// CityMetrics is the read-only statistics record for a single city.
// Every sub-record and every leaf value is optional: upstream data pulls
// routinely fail per source, and the engine must degrade instead of erroring.
type CityMetrics struct {
	ID    string `json:"id"` // stable city identifier
	Name  string `json:"name"`
	State string `json:"state"`

	Climate       *Climate       `json:"climate,omitempty"`
	Cost          *Cost          `json:"cost,omitempty"`
	Demographics  *Demographics  `json:"demographics,omitempty"`
	QualityOfLife *QualityOfLife `json:"qualityOfLife,omitempty"`
	Cultural      *Cultural      `json:"cultural,omitempty"`
}

// HasData reports whether at least one metric sub-record is present.
// Cities without any data cannot be scored and are excluded from rankings.
func (c *CityMetrics) HasData() bool {
	return c.Climate != nil || c.Cost != nil || c.Demographics != nil ||
		c.QualityOfLife != nil || c.Cultural != nil
}

// Climate holds annualized weather statistics. Day counts are days per year.
type Climate struct {
	ComfortDays        *float64 `json:"comfortDays,omitempty"`        // days with pleasant highs
	ExtremeHeatDays    *float64 `json:"extremeHeatDays,omitempty"`    // days at or above 95F
	FreezeDays         *float64 `json:"freezeDays,omitempty"`         // days at or below 32F
	RainDays           *float64 `json:"rainDays,omitempty"`           // days with measurable precipitation
	SnowDays           *float64 `json:"snowDays,omitempty"`           // days with measurable snowfall
	CloudyDays         *float64 `json:"cloudyDays,omitempty"`         // mostly-cloudy days
	JulyDewpoint       *float64 `json:"julyDewpoint,omitempty"`       // mean July dewpoint, F
	DegreeDays         *float64 `json:"degreeDays,omitempty"`         // heating + cooling degree days
	GrowingSeasonDays  *float64 `json:"growingSeasonDays,omitempty"`  // frost-free days
	SeasonalTempStddev *float64 `json:"seasonalTempStddev,omitempty"` // stddev of monthly mean temps
	DiurnalSwing       *float64 `json:"diurnalSwing,omitempty"`       // mean daily high-low spread, F
}

// Cost holds regional price parity components and tax aggregates.
// RPP values are indexed so 100 = national average.
type Cost struct {
	RPPAllItems           *float64 `json:"rppAllItems,omitempty"`
	RPPGoods              *float64 `json:"rppGoods,omitempty"`
	RPPHousing            *float64 `json:"rppHousing,omitempty"`
	RPPUtilities          *float64 `json:"rppUtilities,omitempty"`
	MedianHomePrice       *float64 `json:"medianHomePrice,omitempty"`
	MedianRent            *float64 `json:"medianRent,omitempty"` // monthly
	PropertyTaxRate       *float64 `json:"propertyTaxRate,omitempty"`
	IncomeTaxTopRate      *float64 `json:"incomeTaxTopRate,omitempty"` // state top marginal, percent
	SalesTaxRate          *float64 `json:"salesTaxRate,omitempty"`
	MedianHouseholdIncome *float64 `json:"medianHouseholdIncome,omitempty"`
}

// Demographics holds population composition statistics.
// All percent fields are on a 0-100 scale.
type Demographics struct {
	Population *float64 `json:"population,omitempty"`

	// Age brackets, percent of population.
	PctUnder18 *float64 `json:"pctUnder18,omitempty"`
	Pct18To34  *float64 `json:"pct18to34,omitempty"`
	Pct35To54  *float64 `json:"pct35to54,omitempty"`
	Pct55Plus  *float64 `json:"pct55plus,omitempty"`
	MedianAge  *float64 `json:"medianAge,omitempty"`

	// Race/ethnicity percentages including named subgroups.
	WhitePct       *float64 `json:"whitePct,omitempty"`
	BlackPct       *float64 `json:"blackPct,omitempty"`
	HispanicPct    *float64 `json:"hispanicPct,omitempty"`
	AsianPct       *float64 `json:"asianPct,omitempty"`
	NativePct      *float64 `json:"nativePct,omitempty"`
	PacificPct     *float64 `json:"pacificPct,omitempty"`
	MultiracialPct *float64 `json:"multiracialPct,omitempty"`

	// Named subgroups within hispanic.
	MexicanPct     *float64 `json:"mexicanPct,omitempty"`
	CubanPct       *float64 `json:"cubanPct,omitempty"`
	PuertoRicanPct *float64 `json:"puertoRicanPct,omitempty"`

	// Named subgroups within asian.
	ChinesePct    *float64 `json:"chinesePct,omitempty"`
	IndianPct     *float64 `json:"indianPct,omitempty"`
	FilipinoPct   *float64 `json:"filipinoPct,omitempty"`
	VietnamesePct *float64 `json:"vietnamesePct,omitempty"`
	KoreanPct     *float64 `json:"koreanPct,omitempty"`

	// Gender ratio by age band: males per 100 females.
	MalesPer100Females20s *float64 `json:"malesPer100Females20s,omitempty"`
	MalesPer100Females30s *float64 `json:"malesPer100Females30s,omitempty"`
	MalesPer100Females40s *float64 `json:"malesPer100Females40s,omitempty"`

	NeverMarriedPct *float64 `json:"neverMarriedPct,omitempty"`

	MedianHouseholdIncome *float64 `json:"medianHouseholdIncome,omitempty"`
	PovertyRate           *float64 `json:"povertyRate,omitempty"`
	BachelorsPlusPct      *float64 `json:"bachelorsPlusPct,omitempty"`
	ForeignBornPct        *float64 `json:"foreignBornPct,omitempty"`
	NonEnglishHomePct     *float64 `json:"nonEnglishHomePct,omitempty"`
}

// QualityOfLife holds livability statistics.
type QualityOfLife struct {
	WalkScore    *float64 `json:"walkScore,omitempty"`    // 0-100, already normalized upstream
	BikeScore    *float64 `json:"bikeScore,omitempty"`    // 0-100
	TransitScore *float64 `json:"transitScore,omitempty"` // 0-100

	ViolentCrimeRate *float64 `json:"violentCrimeRate,omitempty"` // per 100k
	CrimeTrendPct    *float64 `json:"crimeTrendPct,omitempty"`    // 3-year change, negative = falling

	AirQualityGoodPct *float64 `json:"airQualityGoodPct,omitempty"` // percent of healthy AQI days

	FiberCoveragePct   *float64 `json:"fiberCoveragePct,omitempty"`
	BroadbandProviders *float64 `json:"broadbandProviders,omitempty"`

	StudentTeacherRatio *float64 `json:"studentTeacherRatio,omitempty"`
	HSGraduationRate    *float64 `json:"hsGraduationRate,omitempty"` // percent

	PhysiciansPer100k *float64 `json:"physiciansPer100k,omitempty"`
	HPSAScore         *float64 `json:"hpsaScore,omitempty"` // shortage severity, higher = worse

	TrailMiles       *float64 `json:"trailMiles,omitempty"`
	ParkAcresPer10k  *float64 `json:"parkAcresPer10k,omitempty"`
	ProtectedLandPct *float64 `json:"protectedLandPct,omitempty"`
	MilesToCoast     *float64 `json:"milesToCoast,omitempty"`
	ElevationDeltaFt *float64 `json:"elevationDeltaFt,omitempty"` // relief within 30mi
	MilesToSki       *float64 `json:"milesToSki,omitempty"`
}

// Cultural holds civic, religious, and urban-lifestyle statistics.
type Cultural struct {
	PartisanIndex   *float64 `json:"partisanIndex,omitempty"` // -1 (dem) .. +1 (rep)
	VoterTurnoutPct *float64 `json:"voterTurnoutPct,omitempty"`

	// Adherents per 1000 population by tradition.
	Adherence map[string]float64 `json:"adherence,omitempty"`

	BarsClubsPer10k   *float64 `json:"barsClubsPer10k,omitempty"`
	Museums           *float64 `json:"museums,omitempty"`
	RestaurantsPer10k *float64 `json:"restaurantsPer10k,omitempty"`

	// Professional team counts keyed by league (nfl, nba, mlb, nhl, mls).
	Teams map[string]int `json:"teams,omitempty"`
}
