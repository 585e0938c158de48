package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/mww/fantasy_report/model"
	"go.uber.org/zap/zapcore"
)

const (
	EnvDev  = "development"
	EnvProd = "production"

	FormatCSV  = "csv"
	FormatHTML = "html"
)

type Config struct {
	// Inputs
	DataDir         string `validate:"required"`
	InputFormat     string `validate:"oneof=csv html"`
	LeagueFile      string `validate:"required"`
	Weeks           []int  `validate:"required,min=1,dive,min=1"`
	MatchupsPerWeek int    `validate:"gte=0"`
	// CSVCacheDir receives the converted tables of an html run. Empty
	// disables the cache.
	CSVCacheDir string

	// Loading
	SkipMalformedWeeks bool
	BenchFallback      bool
	PowerRankingWindow int `validate:"gte=1"`

	// Outputs. An empty OutputDir writes no files.
	OutputDir string

	// Server
	Serve          bool
	Port           int `validate:"min=1,max=65535"`
	AllowedOrigins []string

	LogLevel zapcore.Level
	Env      string `validate:"oneof=development production"`
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	env := &envReader{}
	cfg := &Config{
		DataDir:         getEnv("DATA_DIR", "data"),
		InputFormat:     strings.ToLower(getEnv("INPUT_FORMAT", FormatCSV)),
		LeagueFile:      getEnv("LEAGUE_FILE", "league.yaml"),
		MatchupsPerWeek: env.getInt("MATCHUPS_PER_WEEK", 0),
		CSVCacheDir:     getEnv("CSV_CACHE_DIR", ""),

		SkipMalformedWeeks: env.getBool("SKIP_MALFORMED_WEEKS", false),
		BenchFallback:      env.getBool("BENCH_FALLBACK", false),
		PowerRankingWindow: env.getInt("POWER_RANKING_WINDOW", model.DefaultPowerRankingWindow),

		OutputDir: getEnv("OUTPUT_DIR", "output"),

		Serve: env.getBool("SERVE", false),
		Port:  env.getInt("PORT", 3000),

		Env: getEnv("APP_ENV", EnvDev),
	}
	if env.err != nil {
		return nil, env.err
	}

	weeks, err := ParseWeeks(getEnv("WEEKS", ""))
	if err != nil {
		return nil, errors.Wrap(err, "WEEKS")
	}
	cfg.Weeks = weeks

	level, err := zapcore.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, errors.Wrap(err, "LOG_LEVEL")
	}
	cfg.LogLevel = level

	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	for _, o := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

// ParseWeeks reads a week list such as "1-4,6,8-9". The result is sorted
// and free of duplicates.
func ParseWeeks(s string) ([]int, error) {
	seen := make(map[int]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		lo, hi, isRange := strings.Cut(part, "-")
		first, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid week %q", part)
		}
		last := first
		if isRange {
			if last, err = strconv.Atoi(strings.TrimSpace(hi)); err != nil {
				return nil, errors.Wrapf(err, "invalid week range %q", part)
			}
		}
		if first < 1 || last < first {
			return nil, errors.Newf("invalid week range %q", part)
		}
		for w := first; w <= last; w++ {
			seen[w] = true
		}
	}

	weeks := make([]int, 0, len(seen))
	for w := 1; len(weeks) < len(seen); w++ {
		if seen[w] {
			weeks = append(weeks, w)
		}
	}
	return weeks, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// envReader parses typed variables. Values that do not parse are collected
// in err.
type envReader struct {
	err error
}

func (r *envReader) getInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		r.err = errors.CombineErrors(r.err, errors.Wrapf(err, "%s", key))
		return fallback
	}
	return i
}

func (r *envReader) getBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		r.err = errors.CombineErrors(r.err, errors.Wrapf(err, "%s", key))
		return fallback
	}
	return b
}
