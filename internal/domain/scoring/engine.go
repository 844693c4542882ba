// Package scoring turns per-city statistics and a user preference profile
// into six bounded category scores and one composite score. The engine is
// deterministic and side-effect-free: it never fetches, writes, or keeps
// state between calls, so it can run on every preference-slider change and
// concurrently for different city sets.
package scoring

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/okian/cityrank/internal/domain/model"
	"github.com/okian/cityrank/pkg/logger"
	"github.com/okian/cityrank/pkg/metrics"
)

// Reason recorded on rows the engine could not evaluate.
const reasonNoData = "no metric data"

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithCostCalculator sets the purchasing-power collaborator. Without one,
// cost scoring falls back to inverse home-price scaling.
func WithCostCalculator(c CostCalculator) Option {
	return func(e *Engine) {
		e.costCalc = c
	}
}

// WithLogger sets a custom logger for the engine.
func WithLogger(l logger.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithMetrics sets the metrics manager used to instrument scoring runs.
func WithMetrics(m *metrics.Manager) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// Engine scores city sets against preference profiles. Safe for concurrent
// use: all run-scoped state (the percentile cache) lives on the stack of
// each Rank call.
type Engine struct {
	costCalc CostCalculator
	log      logger.Logger
	metrics  *metrics.Manager
}

// New constructs an Engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Rank scores every city in the set against the preference profile and
// returns them sorted descending by total score, with unevaluable rows
// (no metric data) flagged excluded and sorted last.
//
// A profile whose six category weights are all zero produces TotalScore 0
// for every included city; such rows stay included and keep input order.
// Missing data never errors; only malformed preferences do: any negative
// weight in the profile, category or sub-metric, is rejected up front.
func (e *Engine) Rank(ctx context.Context, cities []model.CityMetrics, prefs model.UserPreferences) (model.Ranking, error) {
	if err := validateWeights(prefs); err != nil {
		return model.Ranking{}, err
	}

	start := time.Now()
	ranking := model.Ranking{RunID: uuid.New().String()}

	if e.log != nil {
		e.log.Debug(ctx, "scoring run started",
			logger.String("run_id", ranking.RunID),
			logger.Int("cities", len(cities)))
	}

	// Built from exactly this city set; never reused across calls.
	cache := buildPercentileCache(cities)

	ranking.Scores = make([]model.CityScore, 0, len(cities))
	for i := range cities {
		ranking.Scores = append(ranking.Scores, e.scoreCity(&cities[i], prefs, cache))
	}

	sort.SliceStable(ranking.Scores, func(i, j int) bool {
		a, b := ranking.Scores[i], ranking.Scores[j]
		if a.Excluded != b.Excluded {
			return !a.Excluded
		}
		if a.Excluded {
			return false
		}
		return a.TotalScore > b.TotalScore
	})

	for _, s := range ranking.Scores {
		if s.Excluded {
			ranking.Excluded++
		} else {
			ranking.Included++
		}
	}

	if e.metrics != nil {
		e.metrics.RecordRun(time.Since(start), ranking.Included, ranking.Excluded)
	}
	if e.log != nil {
		e.log.Info(ctx, "scoring run finished",
			logger.String("run_id", ranking.RunID),
			logger.Int("included", ranking.Included),
			logger.Int("excluded", ranking.Excluded))
	}
	return ranking, nil
}

// scoreCity computes the six category scores and the weighted composite
// for one city.
func (e *Engine) scoreCity(city *model.CityMetrics, prefs model.UserPreferences, cache *percentileCache) model.CityScore {
	score := model.CityScore{
		CityID: city.ID,
		Name:   city.Name,
		State:  city.State,
	}
	if !city.HasData() {
		score.Excluded = true
		score.Reason = reasonNoData
		return score
	}

	score.Climate = climateScore(city.Climate, prefs.Climate)
	score.Cost = e.costScore(city, prefs.Cost)
	score.Demographics = demographicsScore(city, prefs, cache)
	score.Quality = qualityScore(city.QualityOfLife, prefs.Quality)
	score.Values = valuesScore(city.Cultural, prefs.Values, cache)
	score.Entertainment = entertainmentScore(city, prefs.Entertainment)

	if e.metrics != nil {
		e.metrics.RecordCategoryScores(score.Climate, score.Cost, score.Demographics,
			score.Quality, score.Values, score.Entertainment)
	}

	var total accumulator
	total.add(score.Climate, prefs.ClimateWeight)
	total.add(score.Cost, prefs.CostWeight)
	total.add(score.Demographics, prefs.DemographicsWeight)
	total.add(score.Quality, prefs.QualityWeight)
	total.add(score.Values, prefs.ValuesWeight)
	total.add(score.Entertainment, prefs.EntertainmentWeight)
	if total.weight > 0 {
		score.TotalScore = total.value()
	}
	// All-zero weights leave TotalScore at 0: ranked last numerically,
	// not excluded.

	return score
}

// validateWeights rejects negative weights at the boundary; these are
// programmer errors, not data gaps. Every weight slider in the profile is
// checked, category and sub-metric alike, so a bad sub-weight fails loudly
// instead of being silently dropped by the accumulators.
func validateWeights(prefs model.UserPreferences) error {
	checks := []struct {
		name  string
		value float64
	}{
		{"climate", prefs.ClimateWeight},
		{"cost", prefs.CostWeight},
		{"demographics", prefs.DemographicsWeight},
		{"quality", prefs.QualityWeight},
		{"values", prefs.ValuesWeight},
		{"entertainment", prefs.EntertainmentWeight},

		{"climate comfort", prefs.Climate.ComfortWeight},
		{"climate heat", prefs.Climate.HeatWeight},
		{"climate freeze", prefs.Climate.FreezeWeight},
		{"climate rain", prefs.Climate.RainWeight},
		{"climate snow", prefs.Climate.SnowWeight},
		{"climate cloud", prefs.Climate.CloudWeight},
		{"climate humidity", prefs.Climate.HumidityWeight},
		{"climate degree-day", prefs.Climate.DegreeDayWeight},
		{"climate growing-season", prefs.Climate.GrowingSeasonWeight},
		{"climate stability", prefs.Climate.StabilityWeight},
		{"climate diurnal", prefs.Climate.DiurnalWeight},

		{"demographics diversity", prefs.Demographics.DiversityWeight},
		{"demographics age", prefs.Demographics.AgeWeight},
		{"demographics education", prefs.Demographics.EducationWeight},
		{"demographics foreign-born", prefs.Demographics.ForeignBornWeight},
		{"demographics economic", prefs.Demographics.EconomicWeight},
		{"minority importance", prefs.Demographics.MinorityImportance},
		{"dating blend", prefs.Demographics.DatingBlendPct},

		{"quality walkability", prefs.Quality.WalkabilityWeight},
		{"quality safety", prefs.Quality.SafetyWeight},
		{"quality air", prefs.Quality.AirWeight},
		{"quality broadband", prefs.Quality.BroadbandWeight},
		{"quality education", prefs.Quality.EducationWeight},
		{"quality healthcare", prefs.Quality.HealthcareWeight},

		{"political", prefs.Values.PoliticalWeight},
		{"religion", prefs.Values.ReligionWeight},
		{"values diversity", prefs.Values.DiversityWeight},

		{"entertainment nightlife", prefs.Entertainment.NightlifeWeight},
		{"entertainment arts", prefs.Entertainment.ArtsWeight},
		{"entertainment dining", prefs.Entertainment.DiningWeight},
		{"entertainment sports", prefs.Entertainment.SportsWeight},
		{"entertainment recreation", prefs.Entertainment.RecreationWeight},
		{"entertainment nature", prefs.Entertainment.NatureWeight},
		{"entertainment beach", prefs.Entertainment.BeachWeight},
		{"entertainment mountain", prefs.Entertainment.MountainWeight},
	}
	for _, c := range checks {
		if c.value < 0 {
			return fmt.Errorf("%w: %s weight %v", ErrNegativeWeight, c.name, c.value)
		}
	}
	return nil
}
