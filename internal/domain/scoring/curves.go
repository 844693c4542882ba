package scoring

import (
	"math"

	"github.com/okian/cityrank/internal/domain/model"
)

// Amenity curve segment constants.
const (
	amenityFloor       = 30 // any presence at all is worth something
	amenityRampSpan    = 45 // linear ramp from floor toward the plateau
	amenityPlateauBase = 75
	amenityPlateauSpan = 25
)

// AmenityScore maps an amenity density onto a three-segment "more is
// better, with fast-diminishing returns" curve. Below min the score is a
// flat floor, between min and plateau it ramps linearly, and past the
// plateau additional quantity earns only a logarithmic bonus up to max.
func AmenityScore(value, min, plateau, max float64) float64 {
	switch {
	case value <= min:
		return amenityFloor
	case value >= max:
		return 100
	case value >= plateau:
		progress := (value - plateau) / (max - plateau)
		return amenityPlateauBase + amenityPlateauSpan*math.Log10(1+9*progress)
	default:
		return amenityFloor + amenityRampSpan*(value-min)/(plateau-min)
	}
}

// MinorityPresence scores a community's share of the population against the
// user's minimum. At or above the threshold the bonus is logarithmic and
// capped; below it the penalty is linear and steeper, so falling short
// hurts faster than overshooting helps.
func MinorityPresence(actualPct, targetPct float64) float64 {
	if actualPct >= targetPct {
		return math.Min(100, 75+15*math.Log10(1+2*(actualPct-targetPct)))
	}
	return math.Max(0, 75-4*(targetPct-actualPct))
}

// Target partisan index per stated lean.
const (
	targetStrongDem = -0.6
	targetLeanDem   = -0.25
	targetLeanRep   = 0.25
	targetStrongRep = 0.6
)

// Tribal penalty multipliers for a city on the opposite side of center
// from the user's target.
const (
	strongPartisanThreshold = 0.3
	strongCrossPenalty      = 0.85
	mildCrossPenalty        = 0.95
)

// AlignmentScore computes political fit via Gaussian distance decay.
// Importance (the user's 0-100 weight for this sub-preference) steepens the
// decay, so the same ideological distance costs a high-importance user
// more. Crossing sides additionally costs strongly partisan users a
// multiplicative penalty; distance alone governs everyone else.
func AlignmentScore(actual float64, lean string, importance float64) float64 {
	var target float64
	switch lean {
	case model.LeanStrongDem:
		target = targetStrongDem
	case model.LeanDem:
		target = targetLeanDem
	case model.LeanRep:
		target = targetLeanRep
	case model.LeanStrongRep:
		target = targetStrongRep
	case model.LeanSwing:
		// Swing seekers want competitive places: distance from center.
		k := 1.0 + importance/50
		d := math.Abs(actual)
		return clampScore(100 * math.Exp(-k*d*d))
	default:
		// Neutral or unrecognized lean: no opinion.
		return neutralScore
	}

	k := 1.0 + importance/50
	d := math.Abs(actual - target)
	score := 100 * math.Exp(-k*d*d)

	if actual*target < 0 {
		if math.Abs(target) >= strongPartisanThreshold {
			score *= strongCrossPenalty
		} else {
			score *= mildCrossPenalty
		}
	}
	return clampScore(score)
}
