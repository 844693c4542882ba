package scoring

import (
	"math"
	"sort"
)

// neutralScore is returned whenever a category or sub-metric has no basis
// for an opinion: missing data, zero accumulated weight, or an empty
// percentile distribution.
const neutralScore = 50

// RangeScore maps value into [0,100] against fixed real-world bounds.
// Values outside [min,max] are clamped before mapping. With invert set,
// lower raw values score higher. A degenerate range (min == max) has no
// gradient to map onto and yields the neutral score.
func RangeScore(value, min, max float64, invert bool) float64 {
	if min == max {
		return neutralScore
	}
	clamped := math.Min(math.Max(value, min), max)
	position := (clamped - min) / (max - min)
	if invert {
		position = 1 - position
	}
	return math.Round(position * 100)
}

// PercentileScore ranks value within a sorted ascending distribution drawn
// from the current city set. The result is dataset-relative: the same value
// ranks differently against different comparison sets. An empty
// distribution yields the neutral score.
func PercentileScore(value float64, sorted []float64, higherIsBetter bool) float64 {
	if len(sorted) == 0 {
		return neutralScore
	}
	// SearchFloat64s returns the count of values strictly below value.
	pct := 100 * float64(sort.SearchFloat64s(sorted, value)) / float64(len(sorted))
	if !higherIsBetter {
		return 100 - pct
	}
	return pct
}

// clampScore bounds a computed score to [0,100].
func clampScore(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

// accumulator gathers weighted sub-scores for one category. Sub-metrics
// that are missing from the data or carry no user weight are never added,
// so a category nobody weighted (or with no data at all) degrades to the
// neutral score rather than zero.
type accumulator struct {
	total  float64
	weight float64
}

func (a *accumulator) add(score, weight float64) {
	if weight <= 0 {
		return
	}
	a.total += score * weight
	a.weight += weight
}

func (a *accumulator) value() float64 {
	if a.weight == 0 {
		return neutralScore
	}
	return clampScore(a.total / a.weight)
}
