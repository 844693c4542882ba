package scoring_test

import (
	"math"
	"testing"

	"github.com/okian/cityrank/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func demoOnly(p model.DemographicPrefs) model.UserPreferences {
	return model.UserPreferences{DemographicsWeight: 100, Demographics: p}
}

func TestDemographicsAgeFit(t *testing.T) {
	Convey("Given an age-fit-only profile", t, func() {
		score := func(profile string, d model.Demographics) float64 {
			prefs := demoOnly(model.DemographicPrefs{AgeProfile: profile, AgeWeight: 100})
			cities := []model.CityMetrics{{ID: "d", Demographics: &d}}
			return scoreOf(rank(cities, prefs), "d").Demographics
		}

		Convey("A young profile rewards a large 18-34 bracket", func() {
			So(score(model.AgeProfileYoung, model.Demographics{Pct18To34: model.Float(31)}), ShouldEqual, 95)
			So(score(model.AgeProfileYoung, model.Demographics{Pct18To34: model.Float(20)}), ShouldEqual, 58)
			So(score(model.AgeProfileYoung, model.Demographics{Pct18To34: model.Float(10)}), ShouldEqual, 28)
		})

		Convey("A mature profile keys on the 55+ bracket", func() {
			So(score(model.AgeProfileMature, model.Demographics{Pct55Plus: model.Float(35)}), ShouldEqual, 95)
			So(score(model.AgeProfileMature, model.Demographics{Pct55Plus: model.Float(22)}), ShouldEqual, 58)
		})

		Convey("A mixed profile keys on the middle bracket", func() {
			So(score(model.AgeProfileMixed, model.Demographics{Pct35To54: model.Float(25)}), ShouldEqual, 90)
			So(score(model.AgeProfileMixed, model.Demographics{Pct35To54: model.Float(12)}), ShouldEqual, 35)
		})

		Convey("A missing bracket leaf degrades to neutral", func() {
			So(score(model.AgeProfileYoung, model.Demographics{Pct55Plus: model.Float(30)}), ShouldEqual, 50)
		})
	})
}

func TestDemographicsMinorityPresence(t *testing.T) {
	Convey("Given a profile seeking an asian community of at least 10 percent", t, func() {
		prefs := demoOnly(model.DemographicPrefs{
			MinorityGroup:      "asian",
			MinorityMinPct:     10,
			MinorityImportance: 100,
		})

		Convey("Exceeding the threshold earns a capped logarithmic bonus", func() {
			cities := []model.CityMetrics{{
				ID:           "d",
				Demographics: &model.Demographics{AsianPct: model.Float(12)},
			}}
			s := scoreOf(rank(cities, prefs), "d")
			So(s.Demographics, ShouldAlmostEqual, 75+15*math.Log10(5), 0.001)
		})

		Convey("Falling short is penalized linearly and harder", func() {
			cities := []model.CityMetrics{{
				ID:           "d",
				Demographics: &model.Demographics{AsianPct: model.Float(4)},
			}}
			s := scoreOf(rank(cities, prefs), "d")
			So(s.Demographics, ShouldEqual, 75-4*6)
		})
	})

	Convey("Given a named subgroup the record does not break out", t, func() {
		prefs := demoOnly(model.DemographicPrefs{
			MinorityGroup:      "asian",
			MinoritySubgroup:   "vietnamese",
			MinorityMinPct:     5,
			MinorityImportance: 100,
		})

		Convey("The parent group share is used instead", func() {
			cities := []model.CityMetrics{{
				ID:           "d",
				Demographics: &model.Demographics{AsianPct: model.Float(5)},
			}}
			s := scoreOf(rank(cities, prefs), "d")
			So(s.Demographics, ShouldEqual, 75)
		})

		Convey("But a present subgroup leaf wins over the parent", func() {
			cities := []model.CityMetrics{{
				ID: "d",
				Demographics: &model.Demographics{
					AsianPct:      model.Float(20),
					VietnamesePct: model.Float(1),
				},
			}}
			s := scoreOf(rank(cities, prefs), "d")
			So(s.Demographics, ShouldEqual, 75-4*4)
		})
	})
}

func TestDemographicsEconomicHealth(t *testing.T) {
	Convey("Given an economics-only profile over a two-city set", t, func() {
		prefs := demoOnly(model.DemographicPrefs{EconomicWeight: 100})
		cities := []model.CityMetrics{
			{ID: "rich", Demographics: &model.Demographics{
				MedianHouseholdIncome: model.Float(90_000),
				PovertyRate:           model.Float(8),
			}},
			{ID: "poor", Demographics: &model.Demographics{
				MedianHouseholdIncome: model.Float(50_000),
				PovertyRate:           model.Float(20),
			}},
		}

		Convey("Income percentile outweighs poverty percentile 60/40", func() {
			ranking := rank(cities, prefs)
			So(scoreOf(ranking, "rich").Demographics, ShouldAlmostEqual, 0.6*50+0.4*100, 0.001)
			So(scoreOf(ranking, "poor").Demographics, ShouldAlmostEqual, 0.4*50, 0.001)
		})
	})
}

func TestDemographicsPopulationFloor(t *testing.T) {
	Convey("Given a profile with a population floor", t, func() {
		prefs := demoOnly(model.DemographicPrefs{
			AgeProfile:    model.AgeProfileMixed,
			AgeWeight:     100,
			MinPopulation: 200_000,
		})
		base := model.Demographics{Pct35To54: model.Float(25)} // age fit 90

		Convey("A city at the floor pays nothing", func() {
			d := base
			d.Population = model.Float(200_000)
			cities := []model.CityMetrics{{ID: "d", Demographics: &d}}
			So(scoreOf(rank(cities, prefs), "d").Demographics, ShouldEqual, 90)
		})

		Convey("A city at half the floor pays half the maximum penalty", func() {
			d := base
			d.Population = model.Float(100_000)
			cities := []model.CityMetrics{{ID: "d", Demographics: &d}}
			So(scoreOf(rank(cities, prefs), "d").Demographics, ShouldEqual, 90-25)
		})
	})
}

func TestDemographicsDatingBlend(t *testing.T) {
	Convey("Given a profile blended fully into dating favorability", t, func() {
		score := func(seekingMen bool) float64 {
			prefs := demoOnly(model.DemographicPrefs{
				DatingBlendPct: 100,
				Dating:         model.DatingPrefs{SeekingMen: seekingMen, AgeBand: "20s"},
			})
			cities := []model.CityMetrics{{
				ID: "d",
				Demographics: &model.Demographics{
					MalesPer100Females20s: model.Float(110),
				},
			}}
			return scoreOf(rank(cities, prefs), "d").Demographics
		}

		Convey("A male surplus favors someone seeking men inverted and vice versa", func() {
			So(score(true), ShouldEqual, 83)
			So(score(false), ShouldEqual, 17)
		})
	})

	Convey("Given a half blend", t, func() {
		prefs := demoOnly(model.DemographicPrefs{
			AgeProfile:     model.AgeProfileMixed,
			AgeWeight:      100,
			DatingBlendPct: 50,
			Dating:         model.DatingPrefs{SeekingMen: true, AgeBand: "20s"},
		})
		cities := []model.CityMetrics{{
			ID: "d",
			Demographics: &model.Demographics{
				Pct35To54:             model.Float(25), // age fit 90
				MalesPer100Females20s: model.Float(110),
			},
		}}

		Convey("The category score averages base and dating halves", func() {
			So(scoreOf(rank(cities, prefs), "d").Demographics, ShouldAlmostEqual, 0.5*90+0.5*83, 0.001)
		})
	})
}
