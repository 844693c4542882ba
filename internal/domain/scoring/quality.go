package scoring

import (
	"math"

	"github.com/okian/cityrank/internal/domain/model"
)

// Anchored ranges for quality-of-life metrics.
const (
	crimeRateMin, crimeRateMax       = 0, 800 // violent crime per 100k
	airHealthyMin, airHealthyMax     = 70, 99 // percent of healthy AQI days
	studentRatioMin, studentRatioMax = 12, 22
	gradRateMin, gradRateMax         = 80, 95
	physiciansMin, physiciansMax     = 40, 120 // per 100k
)

// Crime-trend adjustment: a falling rate earns a bonus, a rising one a
// penalty, capped either way.
const crimeTrendCap = 10

// Broadband competition bonus per provider beyond the first, capped.
const (
	providerBonusStep = 2.5
	providerBonusCap  = 10
)

// Education blend: the student-teacher ratio carries more signal than the
// graduation rate, which clusters tightly upstream.
const (
	educationRatioShare = 0.6
	educationGradShare  = 0.4
)

// HPSA shortage scores run 0-25; subtracted point for point from the
// physician-density score.
const hpsaPenaltyCap = 25

// qualityScore blends walkability, safety, air quality, broadband,
// education, and healthcare access. Walk/bike/transit scores arrive
// already normalized 0-100 and are used raw rather than percentile-ranked,
// to avoid double-penalizing an already-normalized input.
func qualityScore(q *model.QualityOfLife, p model.QualityPrefs) float64 {
	if q == nil {
		return neutralScore
	}
	var acc accumulator

	if q.WalkScore != nil {
		walk := clampScore(*q.WalkScore)
		if p.MinWalkScore > 0 && walk < p.MinWalkScore {
			// Falling below the user's floor counts double.
			walk = clampScore(walk - (p.MinWalkScore - walk))
		}
		acc.add(walk, p.WalkabilityWeight)
	}

	if q.ViolentCrimeRate != nil {
		safety := RangeScore(*q.ViolentCrimeRate, crimeRateMin, crimeRateMax, true)
		if q.CrimeTrendPct != nil {
			adj := math.Min(crimeTrendCap, math.Abs(*q.CrimeTrendPct))
			if *q.CrimeTrendPct < 0 {
				safety += adj
			} else {
				safety -= adj
			}
		}
		acc.add(clampScore(safety), p.SafetyWeight)
	}

	if q.AirQualityGoodPct != nil {
		acc.add(RangeScore(*q.AirQualityGoodPct, airHealthyMin, airHealthyMax, false), p.AirWeight)
	}

	if q.FiberCoveragePct != nil {
		broadband := clampScore(*q.FiberCoveragePct)
		if q.BroadbandProviders != nil && *q.BroadbandProviders > 1 {
			broadband += math.Min(providerBonusCap, (*q.BroadbandProviders-1)*providerBonusStep)
		}
		acc.add(clampScore(broadband), p.BroadbandWeight)
	}

	if edu, ok := educationScore(q); ok {
		acc.add(edu, p.EducationWeight)
	}

	if q.PhysiciansPer100k != nil {
		health := RangeScore(*q.PhysiciansPer100k, physiciansMin, physiciansMax, false)
		if q.HPSAScore != nil {
			health -= math.Min(hpsaPenaltyCap, math.Max(0, *q.HPSAScore))
		}
		acc.add(clampScore(health), p.HealthcareWeight)
	}

	return acc.value()
}

func educationScore(q *model.QualityOfLife) (float64, bool) {
	var acc accumulator
	if q.StudentTeacherRatio != nil {
		acc.add(RangeScore(*q.StudentTeacherRatio, studentRatioMin, studentRatioMax, true), educationRatioShare)
	}
	if q.HSGraduationRate != nil {
		acc.add(RangeScore(*q.HSGraduationRate, gradRateMin, gradRateMax, false), educationGradShare)
	}
	if acc.weight == 0 {
		return 0, false
	}
	return acc.value(), true
}
