package scoring_test

import (
	"math"
	"testing"

	"github.com/okian/cityrank/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func valuesOnly(p model.ValuesPrefs) model.UserPreferences {
	return model.UserPreferences{ValuesWeight: 100, Values: p}
}

func valuesOf(cu model.Cultural, prefs model.UserPreferences) float64 {
	cities := []model.CityMetrics{{ID: "v", Cultural: &cu}}
	return scoreOf(rank(cities, prefs), "v").Values
}

func TestValuesPoliticalAlignment(t *testing.T) {
	Convey("Given a strongly partisan profile", t, func() {
		prefs := valuesOnly(model.ValuesPrefs{
			PoliticalLean:   model.LeanStrongDem,
			PoliticalWeight: 100,
		})

		Convey("A city at the target index scores a perfect match", func() {
			got := valuesOf(model.Cultural{PartisanIndex: model.Float(-0.6)}, prefs)
			So(got, ShouldEqual, 100)
		})

		Convey("Low turnout trims the political sub-score, capped", func() {
			mild := valuesOf(model.Cultural{
				PartisanIndex:   model.Float(-0.6),
				VoterTurnoutPct: model.Float(35), // 20 under center -> -6
			}, prefs)
			deep := valuesOf(model.Cultural{
				PartisanIndex:   model.Float(-0.6),
				VoterTurnoutPct: model.Float(20), // would be -10.5, capped at -8
			}, prefs)
			So(mild, ShouldEqual, 94)
			So(deep, ShouldEqual, 92)
		})

		Convey("A neutral lean expresses no political opinion", func() {
			neutral := valuesOnly(model.ValuesPrefs{
				PoliticalLean:   model.LeanNeutral,
				PoliticalWeight: 100,
			})
			got := valuesOf(model.Cultural{PartisanIndex: model.Float(0.9)}, neutral)
			So(got, ShouldEqual, 50)
		})
	})
}

func TestValuesAdherenceTiers(t *testing.T) {
	Convey("Given a profile seeking an LDS community", t, func() {
		prefs := valuesOnly(model.ValuesPrefs{
			ReligionTradition: "lds",
			ReligionWeight:    100,
		})
		// National LDS average is 16 adherents per 1000.
		score := func(local float64) float64 {
			return valuesOf(model.Cultural{Adherence: map[string]float64{"lds": local}}, prefs)
		}

		Convey("Local concentration maps onto the tier ladder", func() {
			So(score(32), ShouldEqual, 95) // 2.0x national
			So(score(24), ShouldEqual, 85) // 1.5x
			So(score(16), ShouldEqual, 70) // at national
			So(score(8), ShouldEqual, 50)  // half
			So(score(2), ShouldEqual, 30)  // scarce
		})

		Convey("An unknown tradition contributes nothing", func() {
			odd := valuesOnly(model.ValuesPrefs{
				ReligionTradition: "druid",
				ReligionWeight:    100,
			})
			got := valuesOf(model.Cultural{Adherence: map[string]float64{"druid": 500}}, odd)
			So(got, ShouldEqual, 50)
		})
	})
}

func TestValuesReligiousDiversity(t *testing.T) {
	Convey("Given a diversity-only profile over two cities", t, func() {
		prefs := valuesOnly(model.ValuesPrefs{DiversityWeight: 100})
		cities := []model.CityMetrics{
			{ID: "even", Cultural: &model.Cultural{
				Adherence: map[string]float64{"catholic": 100, "evangelical": 100},
			}},
			{ID: "lopsided", Cultural: &model.Cultural{
				Adherence: map[string]float64{"catholic": 190, "evangelical": 10},
			}},
		}

		Convey("The evenly mixed city percentile-ranks above the lopsided one", func() {
			ranking := rank(cities, prefs)
			So(scoreOf(ranking, "even").Values, ShouldEqual, 50)
			So(scoreOf(ranking, "lopsided").Values, ShouldEqual, 0)
		})
	})
}

func TestValuesDealbreaker(t *testing.T) {
	Convey("Given a heavily weighted political preference severely unmet", t, func() {
		prefs := valuesOnly(model.ValuesPrefs{
			PoliticalLean:     model.LeanStrongDem,
			PoliticalWeight:   80,
			ReligionTradition: "lds",
			ReligionWeight:    20,
		})
		cu := model.Cultural{
			PartisanIndex: model.Float(0.5),
			Adherence:     map[string]float64{"lds": 32},
		}

		Convey("The whole category is multiplied down, not just the sub-score", func() {
			k := 1.0 + 80.0/50
			d := 0.5 - (-0.6)
			political := 100 * math.Exp(-k*d*d) * 0.85 // crossed sides vs strong target
			blended := (political*80 + 95*20) / 100
			factor := 0.5 + 0.5*(political/40)

			So(valuesOf(cu, prefs), ShouldAlmostEqual, blended*factor, 0.001)
		})

		Convey("At a moderate political weight the rule does not fire", func() {
			soft := valuesOnly(model.ValuesPrefs{
				PoliticalLean:     model.LeanStrongDem,
				PoliticalWeight:   50,
				ReligionTradition: "lds",
				ReligionWeight:    50,
			})
			k := 1.0 + 50.0/50
			d := 0.5 - (-0.6)
			political := 100 * math.Exp(-k*d*d) * 0.85

			So(valuesOf(cu, soft), ShouldAlmostEqual, (political*50+95*50)/100, 0.001)
		})
	})
}
