package scoring

import "github.com/okian/cityrank/internal/domain/model"

// Calibrated U.S. extremes for climate metrics. Each pair anchors the
// fixed-range normalizer: the observed best and worst values across large
// U.S. metros, so scores are stable regardless of which cities are being
// compared.
const (
	comfortDaysMin, comfortDaysMax         = 50, 280
	extremeHeatDaysMin, extremeHeatDaysMax = 0, 90
	freezeDaysMin, freezeDaysMax           = 0, 160
	rainDaysMin, rainDaysMax               = 30, 180
	snowDaysMin, snowDaysMax               = 0, 65
	cloudyDaysMin, cloudyDaysMax           = 50, 220
	julyDewpointMin, julyDewpointMax       = 45, 75
	degreeDaysMin, degreeDaysMax           = 2000, 9000
	growingSeasonMin, growingSeasonMax     = 120, 365
	seasonalStddevMin, seasonalStddevMax   = 5, 28
	diurnalSwingMin, diurnalSwingMax       = 10, 35
)

// climateScore weighs each present climate metric against its calibrated
// range. All climate sub-scores use fixed bounds, never percentiles, so a
// city's climate score is independent of the comparison set.
func climateScore(c *model.Climate, p model.ClimatePrefs) float64 {
	if c == nil {
		return neutralScore
	}
	var acc accumulator
	addRange := func(v *float64, weight, min, max float64, invert bool) {
		if v == nil {
			return
		}
		acc.add(RangeScore(*v, min, max, invert), weight)
	}

	addRange(c.ComfortDays, p.ComfortWeight, comfortDaysMin, comfortDaysMax, false)
	addRange(c.ExtremeHeatDays, p.HeatWeight, extremeHeatDaysMin, extremeHeatDaysMax, true)
	addRange(c.FreezeDays, p.FreezeWeight, freezeDaysMin, freezeDaysMax, true)
	addRange(c.RainDays, p.RainWeight, rainDaysMin, rainDaysMax, true)
	addRange(c.SnowDays, p.SnowWeight, snowDaysMin, snowDaysMax, true)
	addRange(c.CloudyDays, p.CloudWeight, cloudyDaysMin, cloudyDaysMax, true)
	addRange(c.JulyDewpoint, p.HumidityWeight, julyDewpointMin, julyDewpointMax, true)
	addRange(c.DegreeDays, p.DegreeDayWeight, degreeDaysMin, degreeDaysMax, true)
	addRange(c.GrowingSeasonDays, p.GrowingSeasonWeight, growingSeasonMin, growingSeasonMax, false)
	addRange(c.SeasonalTempStddev, p.StabilityWeight, seasonalStddevMin, seasonalStddevMax, true)
	addRange(c.DiurnalSwing, p.DiurnalWeight, diurnalSwingMin, diurnalSwingMax, true)

	return acc.value()
}
