package scoring_test

import (
	"testing"

	"github.com/okian/cityrank/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClimateScore(t *testing.T) {
	Convey("Given the default climate preferences", t, func() {
		prefs := model.DefaultPreferences()

		Convey("A mild sunbelt city with only three leaves scores high", func() {
			cities := []model.CityMetrics{{
				ID: "sun",
				Climate: &model.Climate{
					ComfortDays:       model.Float(260),
					FreezeDays:        model.Float(2),
					GrowingSeasonDays: model.Float(320),
				},
			}}
			s := scoreOf(rank(cities, prefs), "sun")
			So(s.Climate, ShouldBeGreaterThan, 85)
		})

		Convey("A cold northern city with a full record lands low-middle", func() {
			cities := []model.CityMetrics{{
				ID: "north",
				Climate: &model.Climate{
					ComfortDays:        model.Float(84),
					ExtremeHeatDays:    model.Float(2),
					FreezeDays:         model.Float(148),
					RainDays:           model.Float(117),
					SnowDays:           model.Float(38),
					CloudyDays:         model.Float(160),
					JulyDewpoint:       model.Float(66),
					DegreeDays:         model.Float(7403),
					GrowingSeasonDays:  model.Float(160),
					SeasonalTempStddev: model.Float(23),
					DiurnalSwing:       model.Float(20),
				},
			}}
			s := scoreOf(rank(cities, prefs), "north")
			So(s.Climate, ShouldBeBetween, 20, 55)
			// Hand-computed weighted mean of the eleven rounded sub-scores.
			So(s.Climate, ShouldAlmostEqual, 13170.0/380, 0.01)
		})

		Convey("The same cold city reported with only three leaves scores lower", func() {
			// Sub-scores 15 (comfort), 8 (freeze), 23 (degree days): with
			// every mild-weather leaf missing, nothing offsets them.
			cities := []model.CityMetrics{{
				ID: "sparse",
				Climate: &model.Climate{
					ComfortDays: model.Float(84),
					FreezeDays:  model.Float(148),
					DegreeDays:  model.Float(7403),
				},
			}}
			s := scoreOf(rank(cities, prefs), "sparse")
			So(s.Climate, ShouldAlmostEqual, 2140.0/150, 0.01)
			So(s.Climate, ShouldBeLessThan, 20)
		})

		Convey("More comfort days never lowers the climate score", func() {
			base := model.Climate{
				FreezeDays:   model.Float(40),
				RainDays:     model.Float(100),
				JulyDewpoint: model.Float(60),
			}
			prev := -1.0
			for _, days := range []float64{60, 120, 180, 240, 300} {
				c := base
				c.ComfortDays = model.Float(days)
				cities := []model.CityMetrics{{ID: "c", Climate: &c}}
				s := scoreOf(rank(cities, prefs), "c")
				So(s.Climate, ShouldBeGreaterThanOrEqualTo, prev)
				prev = s.Climate
			}
		})
	})

	Convey("Given a profile that only cares about avoiding heat and humidity", t, func() {
		prefs := model.UserPreferences{
			ClimateWeight: 100,
			Climate: model.ClimatePrefs{
				HeatWeight:     80,
				HumidityWeight: 60,
			},
		}

		Convey("A scorching humid city scores near the floor", func() {
			cities := []model.CityMetrics{{
				ID: "swamp",
				Climate: &model.Climate{
					ComfortDays:     model.Float(250), // unweighted, must not help
					ExtremeHeatDays: model.Float(88),
					JulyDewpoint:    model.Float(74),
				},
			}}
			s := scoreOf(rank(cities, prefs), "swamp")
			So(s.Climate, ShouldBeLessThan, 10)
		})
	})
}
