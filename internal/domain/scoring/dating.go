package scoring

import "github.com/okian/cityrank/internal/domain/model"

// Dating favorability component shares. Pool size dominates; economics,
// political fit, and walkable-safe texture split the rest.
const (
	datingPoolShare       = 0.35
	datingEconomicShare   = 0.25
	datingAlignmentShare  = 0.20
	datingWalkSafetyShare = 0.20
)

// Gender-ratio scoring is centered at 100 males per 100 females and
// anchored at a 15-point imbalance either way.
const (
	genderRatioMin = 85
	genderRatioMax = 115
)

// datingScore estimates how favorable a city is for dating: pool size
// (gender balance in the target age band plus never-married share),
// economics (disposable income after rent), political alignment, and a
// walkable-safe component. Each piece degrades independently when its data
// is missing.
func datingScore(city *model.CityMetrics, prefs model.UserPreferences, cache *percentileCache) float64 {
	d := city.Demographics
	if d == nil {
		return neutralScore
	}
	p := prefs.Demographics.Dating
	var acc accumulator

	// Pool: gender ratio in the target band plus the never-married share.
	var pool accumulator
	if ratio := genderRatioLeaf(d, p.AgeBand); ratio != nil {
		// A surplus of the sought gender is favorable.
		pool.add(RangeScore(*ratio, genderRatioMin, genderRatioMax, !p.SeekingMen), 1)
	}
	if d.NeverMarriedPct != nil {
		pool.add(PercentileScore(*d.NeverMarriedPct, cache.neverMarried, true), 1)
	}
	if pool.weight > 0 {
		acc.add(pool.value(), datingPoolShare)
	}

	if v, ok := disposableIncome(city); ok {
		acc.add(PercentileScore(v, cache.disposable, true), datingEconomicShare)
	}

	if city.Cultural != nil && city.Cultural.PartisanIndex != nil {
		acc.add(AlignmentScore(*city.Cultural.PartisanIndex, prefs.Values.PoliticalLean, prefs.Values.PoliticalWeight), datingAlignmentShare)
	}

	if q := city.QualityOfLife; q != nil {
		var ws accumulator
		if q.WalkScore != nil {
			ws.add(clampScore(*q.WalkScore), 1)
		}
		if q.ViolentCrimeRate != nil {
			ws.add(RangeScore(*q.ViolentCrimeRate, crimeRateMin, crimeRateMax, true), 1)
		}
		if ws.weight > 0 {
			acc.add(ws.value(), datingWalkSafetyShare)
		}
	}

	return acc.value()
}

func genderRatioLeaf(d *model.Demographics, band string) *float64 {
	switch band {
	case "20s":
		return d.MalesPer100Females20s
	case "30s":
		return d.MalesPer100Females30s
	case "40s":
		return d.MalesPer100Females40s
	default:
		return nil
	}
}
