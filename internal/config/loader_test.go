package config_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/okian/cityrank/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
				convey.So(cfg.CityCount, convey.ShouldEqual, 50)
				convey.So(cfg.TopN, convey.ShouldEqual, 20)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("CITYRANK_LOG_LEVEL", "debug")
			_ = os.Setenv("CITYRANK_CITY_COUNT", "200")
			_ = os.Setenv("CITYRANK_TOP_N", "10")
			_ = os.Setenv("CITYRANK_DATASET_PATH", "/tmp/cities.json")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.CityCount, convey.ShouldEqual, 200)
				convey.So(cfg.TopN, convey.ShouldEqual, 10)
				convey.So(cfg.DatasetPath, convey.ShouldEqual, "/tmp/cities.json")
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
log_level: warn
city_count: 120
seed: 7
top_n: 5
metrics_enabled: false
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("CITYRANK_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "warn")
				convey.So(cfg.CityCount, convey.ShouldEqual, 120)
				convey.So(cfg.Seed, convey.ShouldEqual, 7)
				convey.So(cfg.TopN, convey.ShouldEqual, 5)
				convey.So(cfg.MetricsEnabled, convey.ShouldBeFalse)
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			yamlContent := `
log_level: warn
city_count: 120
top_n: 5
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("CITYRANK_CONFIG", tmpFile)
			_ = os.Setenv("CITYRANK_CITY_COUNT", "300") // This should override the file
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.CityCount, convey.ShouldEqual, 300)   // Overridden by env
				convey.So(cfg.LogLevel, convey.ShouldEqual, "warn") // From file
				convey.So(cfg.TopN, convey.ShouldEqual, 5)          // From file
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			invalidYaml := `invalid: yaml: content: [`
			tmpFile := createTempConfigFile(invalidYaml)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("CITYRANK_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the synthetic city count is invalid", func() {
			_ = os.Setenv("CITYRANK_CITY_COUNT", "0")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})
	})
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "cityrank-config-*.yaml")
	if err != nil {
		panic(err)
	}
	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}
	_ = tmpFile.Close()
	return tmpFile.Name()
}

func clearConfigEnvVars() {
	for _, key := range []string{
		"CITYRANK_CONFIG",
		"CITYRANK_LOG_LEVEL",
		"CITYRANK_DATASET_PATH",
		"CITYRANK_PROFILE_PATH",
		"CITYRANK_CITY_COUNT",
		"CITYRANK_SEED",
		"CITYRANK_TOP_N",
		"CITYRANK_METRICS_ENABLED",
	} {
		_ = os.Unsetenv(key)
	}
}
