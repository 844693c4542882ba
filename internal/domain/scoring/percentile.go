package scoring

import (
	"sort"

	"github.com/okian/cityrank/internal/domain/model"
)

// percentileCache holds the sorted distributions backing every
// percentile-ranked sub-metric. It is built once per Rank call from exactly
// the city set being scored and passed by parameter into the category
// scorers; it must never outlive the call or be shared across calls with
// different city sets.
type percentileCache struct {
	diversity    []float64
	education    []float64
	foreignBorn  []float64
	income       []float64
	poverty      []float64
	neverMarried []float64
	disposable   []float64
	religiousMix []float64
}

// buildPercentileCache scans the city set once and sorts each tracked
// distribution. One O(n log n) sort per metric; everything downstream is a
// binary search.
func buildPercentileCache(cities []model.CityMetrics) *percentileCache {
	c := &percentileCache{}
	for i := range cities {
		city := &cities[i]
		if d := city.Demographics; d != nil {
			if v, ok := diversityIndex(d); ok {
				c.diversity = append(c.diversity, v)
			}
			if d.BachelorsPlusPct != nil {
				c.education = append(c.education, *d.BachelorsPlusPct)
			}
			if d.ForeignBornPct != nil {
				c.foreignBorn = append(c.foreignBorn, *d.ForeignBornPct)
			}
			if d.MedianHouseholdIncome != nil {
				c.income = append(c.income, *d.MedianHouseholdIncome)
			}
			if d.PovertyRate != nil {
				c.poverty = append(c.poverty, *d.PovertyRate)
			}
			if d.NeverMarriedPct != nil {
				c.neverMarried = append(c.neverMarried, *d.NeverMarriedPct)
			}
		}
		if v, ok := disposableIncome(city); ok {
			c.disposable = append(c.disposable, v)
		}
		if cu := city.Cultural; cu != nil {
			if v, ok := religiousDiversity(cu); ok {
				c.religiousMix = append(c.religiousMix, v)
			}
		}
	}
	for _, dist := range [][]float64{
		c.diversity, c.education, c.foreignBorn, c.income,
		c.poverty, c.neverMarried, c.disposable, c.religiousMix,
	} {
		sort.Float64s(dist)
	}
	return c
}

// diversityIndex computes 1 - Σ share² over the race/ethnicity groups
// present in the record. Higher means population more evenly mixed.
func diversityIndex(d *model.Demographics) (float64, bool) {
	groups := []*float64{
		d.WhitePct, d.BlackPct, d.HispanicPct, d.AsianPct,
		d.NativePct, d.PacificPct, d.MultiracialPct,
	}
	sum := 0.0
	seen := 0
	for _, g := range groups {
		if g == nil {
			continue
		}
		share := *g / 100
		sum += share * share
		seen++
	}
	if seen < 2 {
		return 0, false
	}
	return 1 - sum, true
}

// disposableIncome estimates monthly income left after rent. Needs both
// the demographic income leaf and the cost rent leaf.
func disposableIncome(city *model.CityMetrics) (float64, bool) {
	if city.Demographics == nil || city.Cost == nil {
		return 0, false
	}
	income := city.Demographics.MedianHouseholdIncome
	rent := city.Cost.MedianRent
	if income == nil || rent == nil {
		return 0, false
	}
	return *income/12 - *rent, true
}

// religiousDiversity computes 1 - Σ share² over adherence rates, the same
// evenness index used for demographic diversity.
func religiousDiversity(cu *model.Cultural) (float64, bool) {
	if len(cu.Adherence) < 2 {
		return 0, false
	}
	total := 0.0
	for _, rate := range cu.Adherence {
		total += rate
	}
	if total <= 0 {
		return 0, false
	}
	sum := 0.0
	for _, rate := range cu.Adherence {
		share := rate / total
		sum += share * share
	}
	return 1 - sum, true
}
