package scoring_test

import (
	"math"
	"testing"

	"github.com/okian/cityrank/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func entOnly(p model.EntertainmentPrefs) model.UserPreferences {
	return model.UserPreferences{EntertainmentWeight: 100, Entertainment: p}
}

func entOf(city model.CityMetrics, prefs model.UserPreferences) float64 {
	city.ID = "e"
	return scoreOf(rank([]model.CityMetrics{city}, prefs), "e").Entertainment
}

func TestEntertainmentSportsLadder(t *testing.T) {
	Convey("Given a sports-only profile", t, func() {
		prefs := entOnly(model.EntertainmentPrefs{SportsWeight: 100})
		score := func(teams map[string]int) float64 {
			return entOf(model.CityMetrics{Cultural: &model.Cultural{Teams: teams}}, prefs)
		}

		Convey("Team count climbs the ladder", func() {
			So(score(map[string]int{"nfl": 0}), ShouldEqual, 30)
			So(score(map[string]int{"nfl": 1}), ShouldEqual, 50)
			So(score(map[string]int{"nfl": 2}), ShouldEqual, 60)
			So(score(map[string]int{"nfl": 5}), ShouldEqual, 80)
			So(score(map[string]int{"nfl": 7}), ShouldEqual, 92)
			So(score(map[string]int{"nfl": 9}), ShouldEqual, 97)
			So(score(map[string]int{"nfl": 12}), ShouldEqual, 100)
		})

		Convey("Spreading teams across three leagues earns a bonus", func() {
			concentrated := score(map[string]int{"nfl": 3})
			spread := score(map[string]int{"nfl": 1, "nba": 1, "mlb": 1})
			So(concentrated, ShouldEqual, 65)
			So(spread, ShouldEqual, 70)
		})
	})
}

func TestEntertainmentAmenityCurves(t *testing.T) {
	Convey("Given a nightlife-only profile", t, func() {
		prefs := entOnly(model.EntertainmentPrefs{NightlifeWeight: 100})
		score := func(perTenK float64) float64 {
			return entOf(model.CityMetrics{Cultural: &model.Cultural{
				BarsClubsPer10k: model.Float(perTenK),
			}}, prefs)
		}

		Convey("The curve floors, ramps, then flattens", func() {
			So(score(0.3), ShouldEqual, 30) // below min: flat floor
			So(score(2), ShouldEqual, 45)   // ramp: 30 + 45*(1.5/4.5)
			So(score(5), ShouldEqual, 75)   // at the plateau
			So(score(8.5), ShouldAlmostEqual, 75+25*math.Log10(5.5), 0.001)
			So(score(12), ShouldEqual, 100)
			So(score(40), ShouldEqual, 100)
		})
	})
}

func TestEntertainmentRecreation(t *testing.T) {
	Convey("Given a beach-only recreation profile", t, func() {
		prefs := entOnly(model.EntertainmentPrefs{RecreationWeight: 100, BeachWeight: 100})
		score := func(miles float64) float64 {
			return entOf(model.CityMetrics{QualityOfLife: &model.QualityOfLife{
				MilesToCoast: model.Float(miles),
			}}, prefs)
		}

		Convey("Within an easy drive the coast scores full, then decays per mile", func() {
			So(score(5), ShouldEqual, 100)
			So(score(15), ShouldEqual, 100)
			So(score(40), ShouldEqual, 75)
			So(score(200), ShouldEqual, 0)
		})
	})

	Convey("Given a mountain-only recreation profile", t, func() {
		prefs := entOnly(model.EntertainmentPrefs{RecreationWeight: 100, MountainWeight: 100})
		score := func(relief float64, ski *float64) float64 {
			return entOf(model.CityMetrics{QualityOfLife: &model.QualityOfLife{
				ElevationDeltaFt: model.Float(relief),
				MilesToSki:       ski,
			}}, prefs)
		}

		Convey("Relief sets the base and nearby skiing adds a bonus", func() {
			So(score(2000, nil), ShouldEqual, 23)
			So(score(2000, model.Float(30)), ShouldEqual, 38)
			So(score(2000, model.Float(80)), ShouldEqual, 31)
			So(score(7000, model.Float(30)), ShouldEqual, 100) // clamped
		})
	})

	Convey("Given a nature-only recreation profile", t, func() {
		prefs := entOnly(model.EntertainmentPrefs{RecreationWeight: 100, NatureWeight: 100})

		Convey("Trail, park, and protected-land leaves average evenly", func() {
			got := entOf(model.CityMetrics{QualityOfLife: &model.QualityOfLife{
				TrailMiles:       model.Float(200), // midpoint -> 50
				ParkAcresPer10k:  model.Float(310), // midpoint -> 50
				ProtectedLandPct: model.Float(15),  // midpoint -> 50
			}}, prefs)
			So(got, ShouldEqual, 50)
		})
	})
}
