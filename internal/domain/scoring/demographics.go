package scoring

import (
	"math"
	"strings"

	"github.com/okian/cityrank/internal/domain/model"
)

// Hand-tuned age-fit tables. Each row is "at or above this percent of the
// relevant bracket, score this much"; rows are checked top down.
type ageBand struct {
	minPct float64
	score  float64
}

var youngAgeTable = []ageBand{
	{30, 95}, {26, 85}, {22, 72}, {18, 58}, {14, 42}, {0, 28},
}

var matureAgeTable = []ageBand{
	{34, 95}, {29, 85}, {25, 72}, {21, 58}, {17, 42}, {0, 28},
}

// mixedAgeTable keys on how far the 35-54 bracket sits from a healthy
// middle (about a quarter of the population): closer is better.
var mixedAgeTable = []ageBand{
	{24, 90}, {21, 78}, {18, 64}, {15, 50}, {0, 35},
}

func lookupAgeTable(table []ageBand, pct float64) float64 {
	for _, row := range table {
		if pct >= row.minPct {
			return row.score
		}
	}
	return table[len(table)-1].score
}

// ageFitScore scores the city's age mix against the user's stated profile.
func ageFitScore(d *model.Demographics, profile string) (float64, bool) {
	switch profile {
	case model.AgeProfileYoung:
		if d.Pct18To34 == nil {
			return 0, false
		}
		return lookupAgeTable(youngAgeTable, *d.Pct18To34), true
	case model.AgeProfileMature:
		if d.Pct55Plus == nil {
			return 0, false
		}
		return lookupAgeTable(matureAgeTable, *d.Pct55Plus), true
	case model.AgeProfileMixed:
		if d.Pct35To54 == nil {
			return 0, false
		}
		return lookupAgeTable(mixedAgeTable, *d.Pct35To54), true
	default:
		return 0, false
	}
}

// minorityShare resolves the population share for the user's chosen group,
// preferring the named subgroup and falling back to the parent group when
// the record lacks the subgroup leaf.
func minorityShare(d *model.Demographics, group, subgroup string) (float64, bool) {
	if sub := minoritySubgroupLeaf(d, subgroup); sub != nil {
		return *sub, true
	}
	var parent *float64
	switch strings.ToLower(group) {
	case "hispanic":
		parent = d.HispanicPct
	case "asian":
		parent = d.AsianPct
	case "black":
		parent = d.BlackPct
	case "white":
		parent = d.WhitePct
	case "native":
		parent = d.NativePct
	case "pacific":
		parent = d.PacificPct
	}
	if parent == nil {
		return 0, false
	}
	return *parent, true
}

func minoritySubgroupLeaf(d *model.Demographics, subgroup string) *float64 {
	switch strings.ToLower(subgroup) {
	case "mexican":
		return d.MexicanPct
	case "cuban":
		return d.CubanPct
	case "puerto-rican", "puertorican":
		return d.PuertoRicanPct
	case "chinese":
		return d.ChinesePct
	case "indian":
		return d.IndianPct
	case "filipino":
		return d.FilipinoPct
	case "vietnamese":
		return d.VietnamesePct
	case "korean":
		return d.KoreanPct
	default:
		return nil
	}
}

// Economic-health blend inside demographics: income percentile matters a
// bit more than poverty percentile.
const (
	economicIncomeShare  = 0.6
	economicPovertyShare = 0.4
)

// Population shortfall below the user floor costs up to this many points,
// proportional to the fractional shortfall. Soft penalty, not a cutoff.
const populationPenaltyMax = 50

// demographicsScore blends diversity, age fit, education, foreign-born
// share, minority-community presence, and economic health, then applies
// the soft population-floor penalty and the optional dating blend.
func demographicsScore(city *model.CityMetrics, prefs model.UserPreferences, cache *percentileCache) float64 {
	d := city.Demographics
	p := prefs.Demographics
	if d == nil {
		return neutralScore
	}
	var acc accumulator

	if v, ok := diversityIndex(d); ok {
		acc.add(PercentileScore(v, cache.diversity, true), p.DiversityWeight)
	}
	if v, ok := ageFitScore(d, p.AgeProfile); ok {
		acc.add(v, p.AgeWeight)
	}
	if d.BachelorsPlusPct != nil {
		acc.add(PercentileScore(*d.BachelorsPlusPct, cache.education, true), p.EducationWeight)
	}
	if d.ForeignBornPct != nil {
		acc.add(PercentileScore(*d.ForeignBornPct, cache.foreignBorn, true), p.ForeignBornWeight)
	}
	if p.MinorityGroup != "" {
		if share, ok := minorityShare(d, p.MinorityGroup, p.MinoritySubgroup); ok {
			acc.add(MinorityPresence(share, p.MinorityMinPct), p.MinorityImportance)
		}
	}
	if eco, ok := economicHealth(d, cache); ok {
		acc.add(eco, p.EconomicWeight)
	}

	score := acc.value()

	if p.MinPopulation > 0 && d.Population != nil && *d.Population < p.MinPopulation {
		shortfall := 1 - *d.Population/p.MinPopulation
		score = clampScore(score - populationPenaltyMax*shortfall)
	}

	if p.DatingBlendPct > 0 {
		blend := math.Min(p.DatingBlendPct, 100) / 100
		score = clampScore(score*(1-blend) + datingScore(city, prefs, cache)*blend)
	}

	return score
}

func economicHealth(d *model.Demographics, cache *percentileCache) (float64, bool) {
	var acc accumulator
	if d.MedianHouseholdIncome != nil {
		acc.add(PercentileScore(*d.MedianHouseholdIncome, cache.income, true), economicIncomeShare)
	}
	if d.PovertyRate != nil {
		acc.add(PercentileScore(*d.PovertyRate, cache.poverty, false), economicPovertyShare)
	}
	if acc.weight == 0 {
		return 0, false
	}
	return acc.value(), true
}
