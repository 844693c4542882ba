package scoring

import "github.com/okian/cityrank/internal/domain/model"

// CostCalculator computes a persona-adjusted purchasing-power index from
// regional price parity data. 100 means national-average purchasing power;
// higher means a dollar goes further. Implementations live outside the
// engine; the engine only consumes the index.
type CostCalculator interface {
	PurchasingPower(c *model.Cost, housingPersona, workPersona, state string) (float64, bool)
}

// Purchasing-power index to score mapping: index 100 (national average)
// scores 50, every index point moves the score 0.75.
const costIndexSlope = 0.75

// Fallback anchors for inverse home-price scaling when no purchasing-power
// index can be computed.
const (
	homePriceMin = 150_000
	homePriceMax = 900_000
)

// costScore maps the persona-adjusted purchasing-power index onto [0,100].
// Fallback order as data thins out: purchasing-power index, then simple
// inverse home-price scaling, then neutral.
func (e *Engine) costScore(city *model.CityMetrics, p model.CostPrefs) float64 {
	c := city.Cost
	if c == nil {
		return neutralScore
	}
	if e.costCalc != nil {
		if index, ok := e.costCalc.PurchasingPower(c, p.HousingPersona, p.WorkPersona, city.State); ok {
			return clampScore(neutralScore + (index-100)*costIndexSlope)
		}
	}
	if c.MedianHomePrice != nil {
		return RangeScore(*c.MedianHomePrice, homePriceMin, homePriceMax, true)
	}
	return neutralScore
}
