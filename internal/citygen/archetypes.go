package citygen

import (
	"fmt"
	"math/rand"

	"github.com/okian/cityrank/internal/domain/model"
)

// span is an inclusive numeric range a generated value is drawn from.
type span [2]float64

func (s span) draw(rng *rand.Rand) float64 {
	return s[0] + rng.Float64()*(s[1]-s[0])
}

func (s span) ptr(rng *rand.Rand) *float64 {
	v := s.draw(rng)
	return &v
}

// archetype bundles the value ranges a synthetic city is drawn from. The
// set covers the broad U.S. city flavors so ranking output has realistic
// spread: hot cheap metros, cold dense ones, outdoorsy towns, and so on.
type archetype struct {
	name   string
	states []string

	comfortDays span
	heatDays    span
	freezeDays  span
	rainDays    span
	snowDays    span
	cloudyDays  span
	dewpoint    span
	degreeDays  span
	growing     span
	stddev      span
	diurnal     span

	rpp       span
	rppHous   span
	homePrice span
	rent      span
	propTax   span
	incomeTax span

	population span
	pct18to34  span
	pct35to54  span
	pct55plus  span
	whitePct   span
	blackPct   span
	hispanic   span
	asian      span
	income     span
	poverty    span
	bachelors  span
	foreign    span
	neverWed   span
	ratio20s   span

	walk       span
	crime      span
	crimeTrend span
	air        span
	fiber      span
	providers  span
	stRatio    span
	gradRate   span
	physicians span
	hpsa       span
	trails     span
	parkAcres  span
	coastMiles span
	elevation  span
	skiMiles   span

	partisan    span
	turnout     span
	evangelical span
	catholic    span
	bars        span
	museums     span
	restaurants span
	maxTeams    int
}

func (a *archetype) cityName(rng *rand.Rand, i int) string {
	prefix := namePrefixes[rng.Intn(len(namePrefixes))]
	suffix := nameSuffixes[rng.Intn(len(nameSuffixes))]
	return fmt.Sprintf("%s%s %d", prefix, suffix, i)
}

var namePrefixes = []string{"North", "East", "West", "New", "Fort", "Lake", "Port", "Mount"}
var nameSuffixes = []string{"field", "ville", "burg", "ton", "wood", "land", "view", "ridge"}

func (a *archetype) climate(rng *rand.Rand) *model.Climate {
	return &model.Climate{
		ComfortDays:        a.comfortDays.ptr(rng),
		ExtremeHeatDays:    a.heatDays.ptr(rng),
		FreezeDays:         a.freezeDays.ptr(rng),
		RainDays:           a.rainDays.ptr(rng),
		SnowDays:           a.snowDays.ptr(rng),
		CloudyDays:         a.cloudyDays.ptr(rng),
		JulyDewpoint:       a.dewpoint.ptr(rng),
		DegreeDays:         a.degreeDays.ptr(rng),
		GrowingSeasonDays:  a.growing.ptr(rng),
		SeasonalTempStddev: a.stddev.ptr(rng),
		DiurnalSwing:       a.diurnal.ptr(rng),
	}
}

func (a *archetype) cost(rng *rand.Rand) *model.Cost {
	income := a.income.ptr(rng)
	return &model.Cost{
		RPPAllItems:           a.rpp.ptr(rng),
		RPPGoods:              span{92, 108}.ptr(rng),
		RPPHousing:            a.rppHous.ptr(rng),
		RPPUtilities:          span{88, 115}.ptr(rng),
		MedianHomePrice:       a.homePrice.ptr(rng),
		MedianRent:            a.rent.ptr(rng),
		PropertyTaxRate:       a.propTax.ptr(rng),
		IncomeTaxTopRate:      a.incomeTax.ptr(rng),
		SalesTaxRate:          span{4, 10}.ptr(rng),
		MedianHouseholdIncome: income,
	}
}

func (a *archetype) demographics(rng *rand.Rand) *model.Demographics {
	hispanic := a.hispanic.draw(rng)
	asian := a.asian.draw(rng)
	return &model.Demographics{
		Population: a.population.ptr(rng),

		PctUnder18: span{18, 25}.ptr(rng),
		Pct18To34:  a.pct18to34.ptr(rng),
		Pct35To54:  a.pct35to54.ptr(rng),
		Pct55Plus:  a.pct55plus.ptr(rng),
		MedianAge:  span{29, 44}.ptr(rng),

		WhitePct:    a.whitePct.ptr(rng),
		BlackPct:    a.blackPct.ptr(rng),
		HispanicPct: &hispanic,
		AsianPct:    &asian,

		MexicanPct: model.Float(hispanic * 0.6),
		ChinesePct: model.Float(asian * 0.3),
		IndianPct:  model.Float(asian * 0.25),

		MalesPer100Females20s: a.ratio20s.ptr(rng),
		MalesPer100Females30s: span{92, 108}.ptr(rng),
		MalesPer100Females40s: span{90, 104}.ptr(rng),
		NeverMarriedPct:       a.neverWed.ptr(rng),

		MedianHouseholdIncome: a.income.ptr(rng),
		PovertyRate:           a.poverty.ptr(rng),
		BachelorsPlusPct:      a.bachelors.ptr(rng),
		ForeignBornPct:        a.foreign.ptr(rng),
		NonEnglishHomePct:     span{5, 40}.ptr(rng),
	}
}

func (a *archetype) qualityOfLife(rng *rand.Rand) *model.QualityOfLife {
	return &model.QualityOfLife{
		WalkScore:    a.walk.ptr(rng),
		BikeScore:    span{25, 75}.ptr(rng),
		TransitScore: span{15, 65}.ptr(rng),

		ViolentCrimeRate: a.crime.ptr(rng),
		CrimeTrendPct:    a.crimeTrend.ptr(rng),

		AirQualityGoodPct: a.air.ptr(rng),

		FiberCoveragePct:   a.fiber.ptr(rng),
		BroadbandProviders: a.providers.ptr(rng),

		StudentTeacherRatio: a.stRatio.ptr(rng),
		HSGraduationRate:    a.gradRate.ptr(rng),

		PhysiciansPer100k: a.physicians.ptr(rng),
		HPSAScore:         a.hpsa.ptr(rng),

		TrailMiles:       a.trails.ptr(rng),
		ParkAcresPer10k:  a.parkAcres.ptr(rng),
		ProtectedLandPct: span{1, 20}.ptr(rng),
		MilesToCoast:     a.coastMiles.ptr(rng),
		ElevationDeltaFt: a.elevation.ptr(rng),
		MilesToSki:       a.skiMiles.ptr(rng),
	}
}

func (a *archetype) cultural(rng *rand.Rand) *model.Cultural {
	teams := map[string]int{}
	if a.maxTeams > 0 {
		for _, league := range []string{"nfl", "nba", "mlb", "nhl", "mls"} {
			if n := rng.Intn(a.maxTeams + 1); n > 0 {
				teams[league] = n
			}
		}
	}
	return &model.Cultural{
		PartisanIndex:   a.partisan.ptr(rng),
		VoterTurnoutPct: a.turnout.ptr(rng),
		Adherence: map[string]float64{
			"evangelical": a.evangelical.draw(rng),
			"mainline":    span{40, 140}.draw(rng),
			"catholic":    a.catholic.draw(rng),
			"jewish":      span{1, 40}.draw(rng),
			"muslim":      span{1, 25}.draw(rng),
		},
		BarsClubsPer10k:   a.bars.ptr(rng),
		Museums:           a.museums.ptr(rng),
		RestaurantsPer10k: a.restaurants.ptr(rng),
		Teams:             teams,
	}
}

// The archetype table. Values are rough but plausible for each flavor.
var archetypes = []archetype{
	{
		name:   "sunbelt-metro",
		states: []string{"AZ", "TX", "NV", "FL"},

		comfortDays: span{180, 250}, heatDays: span{30, 90}, freezeDays: span{0, 15},
		rainDays: span{35, 70}, snowDays: span{0, 2}, cloudyDays: span{60, 110},
		dewpoint: span{55, 72}, degreeDays: span{2800, 4500}, growing: span{260, 360},
		stddev: span{8, 15}, diurnal: span{18, 30},

		rpp: span{92, 104}, rppHous: span{85, 110}, homePrice: span{280_000, 480_000},
		rent: span{1_300, 2_000}, propTax: span{0.5, 1.2}, incomeTax: span{0, 5},

		population: span{400_000, 2_300_000}, pct18to34: span{22, 28}, pct35to54: span{24, 27},
		pct55plus: span{20, 26}, whitePct: span{40, 60}, blackPct: span{4, 15},
		hispanic: span{20, 45}, asian: span{3, 12}, income: span{58_000, 80_000},
		poverty: span{10, 18}, bachelors: span{28, 40}, foreign: span{10, 25},
		neverWed: span{32, 42}, ratio20s: span{98, 110},

		walk: span{28, 48}, crime: span{350, 650}, crimeTrend: span{-8, 6},
		air: span{75, 90}, fiber: span{40, 75}, providers: span{2, 5},
		stRatio: span{16, 21}, gradRate: span{82, 90}, physicians: span{55, 90},
		hpsa: span{0, 10}, trails: span{40, 180}, parkAcres: span{60, 250},
		coastMiles: span{150, 900}, elevation: span{300, 2500}, skiMiles: span{150, 400},

		partisan: span{-0.2, 0.4}, turnout: span{48, 62},
		evangelical: span{120, 260}, catholic: span{120, 250},
		bars: span{2, 6}, museums: span{8, 35}, restaurants: span{14, 26},
		maxTeams: 2,
	},
	{
		name:   "rustbelt-city",
		states: []string{"OH", "MI", "PA", "IN"},

		comfortDays: span{80, 130}, heatDays: span{2, 15}, freezeDays: span{100, 150},
		rainDays: span{110, 160}, snowDays: span{30, 62}, cloudyDays: span{150, 210},
		dewpoint: span{58, 68}, degreeDays: span{6000, 8200}, growing: span{140, 190},
		stddev: span{18, 26}, diurnal: span{14, 22},

		rpp: span{84, 95}, rppHous: span{65, 88}, homePrice: span{140_000, 260_000},
		rent: span{850, 1_300}, propTax: span{1.3, 2.4}, incomeTax: span{3, 5},

		population: span{250_000, 900_000}, pct18to34: span{20, 25}, pct35to54: span{23, 26},
		pct55plus: span{24, 30}, whitePct: span{50, 70}, blackPct: span{15, 40},
		hispanic: span{3, 12}, asian: span{1, 6}, income: span{42_000, 58_000},
		poverty: span{18, 30}, bachelors: span{18, 30}, foreign: span{3, 10},
		neverWed: span{34, 44}, ratio20s: span{92, 102},

		walk: span{35, 60}, crime: span{500, 800}, crimeTrend: span{-12, 4},
		air: span{78, 92}, fiber: span{25, 55}, providers: span{1, 4},
		stRatio: span{15, 20}, gradRate: span{80, 88}, physicians: span{60, 110},
		hpsa: span{4, 18}, trails: span{30, 120}, parkAcres: span{50, 200},
		coastMiles: span{400, 700}, elevation: span{100, 900}, skiMiles: span{60, 250},

		partisan: span{-0.5, 0.1}, turnout: span{50, 64},
		evangelical: span{80, 180}, catholic: span{180, 320},
		bars: span{3, 8}, museums: span{10, 40}, restaurants: span{12, 22},
		maxTeams: 2,
	},
	{
		name:   "college-town",
		states: []string{"NC", "WI", "IA", "CO"},

		comfortDays: span{120, 180}, heatDays: span{5, 30}, freezeDays: span{40, 120},
		rainDays: span{90, 130}, snowDays: span{5, 40}, cloudyDays: span{110, 170},
		dewpoint: span{52, 66}, degreeDays: span{4500, 7000}, growing: span{160, 230},
		stddev: span{14, 22}, diurnal: span{16, 26},

		rpp: span{88, 98}, rppHous: span{80, 105}, homePrice: span{240_000, 420_000},
		rent: span{1_000, 1_600}, propTax: span{0.8, 1.8}, incomeTax: span{4, 7},

		population: span{90_000, 350_000}, pct18to34: span{28, 38}, pct35to54: span{20, 24},
		pct55plus: span{14, 20}, whitePct: span{60, 80}, blackPct: span{4, 12},
		hispanic: span{4, 14}, asian: span{4, 14}, income: span{52_000, 72_000},
		poverty: span{14, 24}, bachelors: span{40, 60}, foreign: span{6, 15},
		neverWed: span{42, 55}, ratio20s: span{95, 105},

		walk: span{40, 65}, crime: span{150, 400}, crimeTrend: span{-6, 5},
		air: span{85, 97}, fiber: span{50, 85}, providers: span{2, 5},
		stRatio: span{13, 17}, gradRate: span{86, 94}, physicians: span{80, 120},
		hpsa: span{0, 6}, trails: span{80, 250}, parkAcres: span{100, 350},
		coastMiles: span{200, 900}, elevation: span{200, 2000}, skiMiles: span{80, 300},

		partisan: span{-0.7, -0.2}, turnout: span{58, 72},
		evangelical: span{60, 150}, catholic: span{80, 180},
		bars: span{4, 10}, museums: span{6, 25}, restaurants: span{16, 30},
		maxTeams: 0,
	},
	{
		name:   "mountain-town",
		states: []string{"CO", "UT", "MT", "ID"},

		comfortDays: span{110, 170}, heatDays: span{0, 12}, freezeDays: span{90, 160},
		rainDays: span{60, 100}, snowDays: span{35, 65}, cloudyDays: span{90, 140},
		dewpoint: span{45, 55}, degreeDays: span{6500, 9000}, growing: span{120, 170},
		stddev: span{16, 24}, diurnal: span{25, 35},

		rpp: span{95, 110}, rppHous: span{100, 140}, homePrice: span{420_000, 800_000},
		rent: span{1_400, 2_300}, propTax: span{0.4, 0.9}, incomeTax: span{0, 5},

		population: span{40_000, 250_000}, pct18to34: span{24, 32}, pct35to54: span{24, 28},
		pct55plus: span{16, 24}, whitePct: span{75, 90}, blackPct: span{1, 4},
		hispanic: span{6, 18}, asian: span{1, 5}, income: span{60_000, 85_000},
		poverty: span{8, 15}, bachelors: span{35, 55}, foreign: span{4, 10},
		neverWed: span{34, 46}, ratio20s: span{102, 115},

		walk: span{25, 45}, crime: span{100, 300}, crimeTrend: span{-5, 5},
		air: span{88, 99}, fiber: span{35, 70}, providers: span{1, 3},
		stRatio: span{14, 18}, gradRate: span{85, 93}, physicians: span{45, 85},
		hpsa: span{5, 20}, trails: span{200, 400}, parkAcres: span{150, 600},
		coastMiles: span{600, 1_000}, elevation: span{3000, 7000}, skiMiles: span{5, 60},

		partisan: span{-0.3, 0.5}, turnout: span{55, 70},
		evangelical: span{70, 160}, catholic: span{60, 140},
		bars: span{3, 7}, museums: span{3, 12}, restaurants: span{12, 24},
		maxTeams: 0,
	},
	{
		name:   "coastal-metro",
		states: []string{"CA", "WA", "MA", "NY"},

		comfortDays: span{150, 260}, heatDays: span{0, 10}, freezeDays: span{0, 40},
		rainDays: span{60, 150}, snowDays: span{0, 25}, cloudyDays: span{100, 200},
		dewpoint: span{50, 64}, degreeDays: span{3000, 6000}, growing: span{200, 330},
		stddev: span{5, 14}, diurnal: span{10, 18},

		rpp: span{108, 125}, rppHous: span{130, 190}, homePrice: span{650_000, 1_400_000},
		rent: span{2_000, 3_400}, propTax: span{0.6, 1.4}, incomeTax: span{6, 13},

		population: span{600_000, 8_000_000}, pct18to34: span{24, 30}, pct35to54: span{26, 29},
		pct55plus: span{18, 24}, whitePct: span{35, 55}, blackPct: span{5, 20},
		hispanic: span{15, 35}, asian: span{10, 35}, income: span{80_000, 120_000},
		poverty: span{10, 17}, bachelors: span{40, 60}, foreign: span{20, 40},
		neverWed: span{38, 50}, ratio20s: span{96, 106},

		walk: span{55, 90}, crime: span{300, 650}, crimeTrend: span{-10, 3},
		air: span{80, 95}, fiber: span{55, 90}, providers: span{3, 6},
		stRatio: span{14, 19}, gradRate: span{83, 92}, physicians: span{80, 120},
		hpsa: span{0, 8}, trails: span{60, 200}, parkAcres: span{40, 180},
		coastMiles: span{0, 20}, elevation: span{100, 1500}, skiMiles: span{100, 300},

		partisan: span{-0.8, -0.3}, turnout: span{55, 70},
		evangelical: span{30, 100}, catholic: span{150, 300},
		bars: span{4, 11}, museums: span{25, 80}, restaurants: span{18, 40},
		maxTeams: 3,
	},
}
