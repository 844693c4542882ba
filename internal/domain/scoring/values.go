package scoring

import (
	"math"
	"strings"

	"github.com/okian/cityrank/internal/domain/model"
)

// National adherence averages, adherents per 1000 population, used to
// judge how concentrated a tradition is locally.
var nationalAdherencePer1000 = map[string]float64{
	"evangelical": 180,
	"mainline":    110,
	"catholic":    190,
	"orthodox":    8,
	"lds":         16,
	"jewish":      20,
	"muslim":      10,
	"buddhist":    8,
	"hindu":       7,
}

// Tiered bonuses for local concentration relative to the national average.
var adherenceTiers = []struct {
	ratio float64
	score float64
}{
	{2.0, 95},
	{1.5, 85},
	{1.0, 70},
	{0.5, 50},
	{0, 30},
}

// Voter-turnout adjustment to the political sub-score. Centered at 55
// percent turnout, capped either way.
const (
	turnoutCenter = 55
	turnoutSlope  = 0.3
	turnoutCap    = 8
)

// Dealbreaker rule: a political sub-weight above this threshold with a
// sub-score below the floor downgrades the whole category, so a severe
// values conflict cannot be diluted by religious-diversity points.
const (
	dealbreakerWeight = 70
	dealbreakerFloor  = 40
)

// valuesScore blends political alignment (with turnout adjustment),
// religious-tradition presence, and religious diversity, then applies the
// dealbreaker multiplier when a heavily weighted political preference is
// severely unmet.
func valuesScore(cu *model.Cultural, p model.ValuesPrefs, cache *percentileCache) float64 {
	if cu == nil {
		return neutralScore
	}
	var acc accumulator

	political := math.NaN()
	if cu.PartisanIndex != nil && p.PoliticalLean != "" && p.PoliticalLean != model.LeanNeutral {
		political = AlignmentScore(*cu.PartisanIndex, p.PoliticalLean, p.PoliticalWeight)
		if cu.VoterTurnoutPct != nil {
			adj := (*cu.VoterTurnoutPct - turnoutCenter) * turnoutSlope
			political = clampScore(political + math.Max(-turnoutCap, math.Min(turnoutCap, adj)))
		}
		acc.add(political, p.PoliticalWeight)
	}

	if p.ReligionTradition != "" {
		if v, ok := adherencePresence(cu, p.ReligionTradition); ok {
			acc.add(v, p.ReligionWeight)
		}
	}

	if v, ok := religiousDiversity(cu); ok {
		acc.add(PercentileScore(v, cache.religiousMix, true), p.DiversityWeight)
	}

	score := acc.value()

	if p.PoliticalWeight > dealbreakerWeight && !math.IsNaN(political) && political < dealbreakerFloor {
		// Factor runs 0.5 (total mismatch) to 1.0 (at the floor).
		factor := 0.5 + 0.5*(political/dealbreakerFloor)
		score = clampScore(score * factor)
	}

	return score
}

// adherencePresence scores the local concentration of one tradition
// against its national per-1000 average.
func adherencePresence(cu *model.Cultural, tradition string) (float64, bool) {
	key := strings.ToLower(tradition)
	national, ok := nationalAdherencePer1000[key]
	if !ok || national == 0 {
		return 0, false
	}
	local, ok := cu.Adherence[key]
	if !ok {
		return 0, false
	}
	ratio := local / national
	for _, tier := range adherenceTiers {
		if ratio >= tier.ratio {
			return tier.score, true
		}
	}
	return adherenceTiers[len(adherenceTiers)-1].score, true
}
