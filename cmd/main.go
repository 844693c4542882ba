package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/okian/cityrank/internal/citygen"
	"github.com/okian/cityrank/internal/config"
	"github.com/okian/cityrank/internal/domain/costliving"
	"github.com/okian/cityrank/internal/domain/model"
	"github.com/okian/cityrank/internal/domain/scoring"
	"github.com/okian/cityrank/pkg/logger"
	"github.com/okian/cityrank/pkg/metrics"
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		// Use stderr for initialization errors since logger isn't available yet
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			os.Stderr.WriteString("failed to sync logger: " + err.Error() + "\n")
		}
	}()

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	cities, err := loadCities(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "failed to load city dataset", logger.Error(err))
		return
	}

	prefs, err := loadProfile(cfg)
	if err != nil {
		log.Error(ctx, "failed to load preference profile", logger.Error(err))
		return
	}

	engine := scoring.New(
		scoring.WithCostCalculator(costliving.New()),
		scoring.WithLogger(log.Named("engine")),
		scoring.WithMetrics(metrics.NewManager(
			metrics.WithPrometheusRegistry(metrics.Registry()),
			metrics.WithSubsystem("runner"),
			metrics.WithMetricsEnabled(cfg.MetricsEnabled),
		)),
	)

	ranking, err := engine.Rank(ctx, cities, prefs)
	if err != nil {
		log.Error(ctx, "scoring run failed", logger.Error(err))
		return
	}

	printRanking(ranking, cfg.TopN)
}

// loadCities reads the dataset file when configured and generates a
// synthetic dataset otherwise.
func loadCities(ctx context.Context, cfg *config.Config, log logger.Logger) ([]model.CityMetrics, error) {
	if cfg.DatasetPath == "" {
		gen := citygen.New(citygen.WithSeed(cfg.Seed), citygen.WithLogger(log.Named("citygen")))
		return gen.Generate(ctx, cfg.CityCount), nil
	}

	data, err := os.ReadFile(cfg.DatasetPath)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	var cities []model.CityMetrics
	if err := json.Unmarshal(data, &cities); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	return cities, nil
}

// loadProfile layers an optional YAML preference profile over the built-in
// balanced defaults.
func loadProfile(cfg *config.Config) (model.UserPreferences, error) {
	prefs := model.DefaultPreferences()
	if cfg.ProfilePath == "" {
		return prefs, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(cfg.ProfilePath), yaml.Parser()); err != nil {
		return prefs, fmt.Errorf("read profile: %w", err)
	}
	if err := k.UnmarshalWithConf("", &prefs, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return prefs, fmt.Errorf("parse profile: %w", err)
	}
	return prefs, nil
}

// printRanking writes the top rows as an aligned table.
func printRanking(ranking model.Ranking, topN int) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tCITY\tSTATE\tTOTAL\tCLIMATE\tCOST\tDEMOGRAPHICS\tQUALITY\tVALUES\tENTERTAINMENT")
	for i, s := range ranking.Scores {
		if topN > 0 && i >= topN {
			break
		}
		if s.Excluded {
			fmt.Fprintf(w, "%d\t%s\t%s\texcluded: %s\n", i+1, s.Name, s.State, s.Reason)
			continue
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%.1f\t%.0f\t%.0f\t%.0f\t%.0f\t%.0f\t%.0f\n",
			i+1, s.Name, s.State, s.TotalScore,
			s.Climate, s.Cost, s.Demographics, s.Quality, s.Values, s.Entertainment)
	}
	_ = w.Flush()
	fmt.Printf("\n%d cities ranked, %d excluded (run %s)\n", ranking.Included, ranking.Excluded, ranking.RunID)
}
