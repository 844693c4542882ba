package scoring

import (
	"math"

	"github.com/okian/cityrank/internal/domain/model"
)

// Amenity curve calibration: (min, plateau, max) per amenity. Plateaus sit
// at the density past which more venues stop changing daily life.
const (
	barsMin, barsPlateau, barsMax                      = 0.5, 5, 12 // per 10k
	museumsMin, museumsPlateau, museumsMax             = 2, 30, 80  // absolute count
	restaurantsMin, restaurantsPlateau, restaurantsMax = 3, 20, 45  // per 10k
)

// Sports ladder: flat base per bracket plus a per-team step inside it.
var sportsLadder = []struct {
	minTeams int
	base     float64
	step     float64
}{
	{9, 97, 1},
	{7, 92, 2},
	{5, 80, 5},
	{3, 65, 7},
	{1, 50, 10},
}

const (
	sportsNoTeams        = 30
	leagueDiversityMin   = 3 // leagues needed for the diversity bonus
	leagueDiversityBonus = 5
)

// Recreation anchors.
const (
	trailMilesMin, trailMilesMax     = 0, 400
	parkAcresMin, parkAcresMax       = 20, 600 // per 10k residents
	protectedPctMin, protectedPctMax = 0, 30
	beachEasyMiles                   = 15 // within this, full score
	beachDecayPerMile                = 1.0
	elevationMin, elevationMax       = 500, 7000 // relief ft within 30mi
	skiNearMiles                     = 50
	skiNearBonus                     = 15
	skiDayTripMiles                  = 100
	skiDayTripBonus                  = 8
)

// entertainmentScore blends nightlife, arts, and dining through the
// amenity curve, sports through the team-count ladder, and recreation
// through the nature/beach/mountain profile.
func entertainmentScore(city *model.CityMetrics, p model.EntertainmentPrefs) float64 {
	cu := city.Cultural
	q := city.QualityOfLife
	if cu == nil && q == nil {
		return neutralScore
	}
	var acc accumulator

	if cu != nil {
		if cu.BarsClubsPer10k != nil {
			acc.add(AmenityScore(*cu.BarsClubsPer10k, barsMin, barsPlateau, barsMax), p.NightlifeWeight)
		}
		if cu.Museums != nil {
			acc.add(AmenityScore(*cu.Museums, museumsMin, museumsPlateau, museumsMax), p.ArtsWeight)
		}
		if cu.RestaurantsPer10k != nil {
			acc.add(AmenityScore(*cu.RestaurantsPer10k, restaurantsMin, restaurantsPlateau, restaurantsMax), p.DiningWeight)
		}
		if len(cu.Teams) > 0 {
			acc.add(sportsScore(cu.Teams), p.SportsWeight)
		}
	}

	if q != nil {
		if rec, ok := recreationScore(q, p); ok {
			acc.add(rec, p.RecreationWeight)
		}
	}

	return acc.value()
}

// sportsScore walks the team-count ladder and adds a diversity bonus for
// teams spread across three or more leagues.
func sportsScore(teams map[string]int) float64 {
	total := 0
	leagues := 0
	for _, n := range teams {
		if n > 0 {
			total += n
			leagues++
		}
	}
	if total == 0 {
		return sportsNoTeams
	}
	score := float64(sportsNoTeams)
	for _, rung := range sportsLadder {
		if total >= rung.minTeams {
			score = rung.base + rung.step*float64(total-rung.minTeams)
			break
		}
	}
	if leagues >= leagueDiversityMin {
		score += leagueDiversityBonus
	}
	return clampScore(score)
}

// recreationScore blends nature, beach, and mountain access per the user's
// recreation profile.
func recreationScore(q *model.QualityOfLife, p model.EntertainmentPrefs) (float64, bool) {
	var acc accumulator

	var nature accumulator
	if q.TrailMiles != nil {
		nature.add(RangeScore(*q.TrailMiles, trailMilesMin, trailMilesMax, false), 1)
	}
	if q.ParkAcresPer10k != nil {
		nature.add(RangeScore(*q.ParkAcresPer10k, parkAcresMin, parkAcresMax, false), 1)
	}
	if q.ProtectedLandPct != nil {
		nature.add(RangeScore(*q.ProtectedLandPct, protectedPctMin, protectedPctMax, false), 1)
	}
	if nature.weight > 0 {
		acc.add(nature.value(), p.NatureWeight)
	}

	if q.MilesToCoast != nil {
		beach := 100.0
		if *q.MilesToCoast > beachEasyMiles {
			beach = math.Max(0, 100-(*q.MilesToCoast-beachEasyMiles)*beachDecayPerMile)
		}
		acc.add(beach, p.BeachWeight)
	}

	if q.ElevationDeltaFt != nil {
		mountain := RangeScore(*q.ElevationDeltaFt, elevationMin, elevationMax, false)
		if q.MilesToSki != nil {
			switch {
			case *q.MilesToSki <= skiNearMiles:
				mountain += skiNearBonus
			case *q.MilesToSki <= skiDayTripMiles:
				mountain += skiDayTripBonus
			}
		}
		acc.add(clampScore(mountain), p.MountainWeight)
	}

	if acc.weight == 0 {
		return 0, false
	}
	return acc.value(), true
}
