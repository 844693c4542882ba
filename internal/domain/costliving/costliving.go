// Package costliving computes persona-adjusted purchasing-power indexes
// from regional price parity data. It implements the calculator the
// scoring engine consumes; the engine itself only sees the resulting
// index, where 100 means national-average purchasing power.
package costliving

import (
	"math"

	"github.com/okian/cityrank/internal/domain/model"
)

// National baselines used to translate local figures into index points.
const (
	nationalMedianIncome = 78_000.0
	nationalHomePrice    = 420_000.0
)

// Persona tuning. Housing personas shift how much the housing component of
// RPP matters; work personas shift income and tax sensitivity.
const (
	renterHousingShare    = 0.45
	homeownerHousingShare = 0.25
	buyerHousingShare     = 0.55

	highEarnerTaxDrag = 0.5 // fraction of the top marginal rate that bites
	retireeTaxDrag    = 0.1
)

// Option applies a configuration option to the Calculator.
type Option func(*Calculator)

// WithNationalBaselines overrides the national income and home-price
// baselines, mainly for tests.
func WithNationalBaselines(income, homePrice float64) Option {
	return func(c *Calculator) {
		if income > 0 {
			c.baseIncome = income
		}
		if homePrice > 0 {
			c.baseHomePrice = homePrice
		}
	}
}

// Calculator derives purchasing-power indexes from cost records.
type Calculator struct {
	baseIncome    float64
	baseHomePrice float64
}

// New constructs a Calculator with national baselines.
func New(opts ...Option) *Calculator {
	c := &Calculator{
		baseIncome:    nationalMedianIncome,
		baseHomePrice: nationalHomePrice,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PurchasingPower computes the persona-adjusted index. It needs at least
// the all-items RPP; without it the second return is false and the engine
// falls back to cruder scoring.
func (c *Calculator) PurchasingPower(cost *model.Cost, housingPersona, workPersona, state string) (float64, bool) {
	if cost == nil || cost.RPPAllItems == nil || *cost.RPPAllItems <= 0 {
		return 0, false
	}

	// Start from the inverse of the all-items price level: a city priced
	// at 80% of national average stretches a dollar to 125.
	index := 100 * 100 / *cost.RPPAllItems

	index = c.applyHousing(index, cost, housingPersona)
	index = c.applyWork(index, cost, workPersona)

	return math.Max(10, math.Min(250, index)), true
}

// applyHousing re-weights the housing component of the price level for the
// user's persona and, for owners and buyers, folds in property tax.
func (c *Calculator) applyHousing(index float64, cost *model.Cost, persona string) float64 {
	share := renterHousingShare
	switch persona {
	case model.HousingHomeowner:
		share = homeownerHousingShare
	case model.HousingBuyer:
		share = buyerHousingShare
	}

	if cost.RPPHousing != nil && *cost.RPPHousing > 0 {
		// Blend the housing-specific price level into the index at the
		// persona's share, replacing the all-items average weighting.
		housing := 100 * 100 / *cost.RPPHousing
		index = index*(1-share) + housing*share
	}

	if persona == model.HousingBuyer && cost.MedianHomePrice != nil && *cost.MedianHomePrice > 0 {
		// Buyers feel the sticker price, not just the parity index.
		affordability := c.baseHomePrice / *cost.MedianHomePrice
		index *= math.Pow(affordability, 0.3)
	}

	if persona != model.HousingRenter && cost.PropertyTaxRate != nil {
		// A point of property tax costs roughly three index points.
		index -= *cost.PropertyTaxRate * 3
	}
	return index
}

// applyWork adjusts for how the persona earns: high earners feel state
// income tax, retirees mostly don't, and everyone benefits when local
// incomes run ahead of local prices.
func (c *Calculator) applyWork(index float64, cost *model.Cost, persona string) float64 {
	switch persona {
	case model.WorkHighEarner:
		if cost.IncomeTaxTopRate != nil {
			index *= 1 - (*cost.IncomeTaxTopRate/100)*highEarnerTaxDrag
		}
	case model.WorkRetiree:
		if cost.IncomeTaxTopRate != nil {
			index *= 1 - (*cost.IncomeTaxTopRate/100)*retireeTaxDrag
		}
		// Fixed incomes feel goods and utilities more than wages.
		if cost.RPPGoods != nil && *cost.RPPGoods > 0 {
			goods := 100 * 100 / *cost.RPPGoods
			index = index*0.8 + goods*0.2
		}
	default:
		if cost.MedianHouseholdIncome != nil && *cost.MedianHouseholdIncome > 0 {
			// Local wages relative to national, damped.
			earning := *cost.MedianHouseholdIncome / c.baseIncome
			index *= math.Pow(earning, 0.5)
		}
	}
	return index
}
