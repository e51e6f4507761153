package common

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DBTypeFile   string = "file"
	DBTypeMemory string = "memory"

	WeightsCanonical string = "canonical"
	WeightsLegacy    string = "legacy"

	FireTieringProximity string = "proximity"
	FireTieringCount     string = "count"
)

// Settings holds process-wide settings, populated from environment variables.
type Settings struct {
	DBType       string
	HTTPHostPort string
	// GRPCHostPort is empty when the gRPC listener is disabled.
	GRPCHostPort string

	DefaultRate  float64
	DefaultBurst int

	ScoreInterval     time.Duration
	ScoreWorkers      int
	ScoreLookbackDays int
	ScoreWeights      string
	FireTiering       string

	KafkaBrokers []string
	KafkaTopic   string

	ShutdownTimeout time.Duration
}

// KafkaEnabled reports whether computed records should be published.
func (s *Settings) KafkaEnabled() bool {
	return len(s.KafkaBrokers) > 0
}

// LoadSettings reads settings from environment variables, applying defaults where unset.
func LoadSettings() (*Settings, error) {
	var err error
	s := &Settings{
		DBType:       envOrDefault(EnvKeyFarmDBType, DBTypeFile),
		HTTPHostPort: strings.TrimSpace(envOrDefault(EnvKeyFarmHttpHostPort, ":1080")),
		GRPCHostPort: strings.TrimSpace(os.Getenv(EnvKeyFarmGrpcHostPort)),
		ScoreWeights: envOrDefault(EnvKeyScoreWeights, WeightsCanonical),
		FireTiering:  envOrDefault(EnvKeyFireTiering, FireTieringProximity),
		KafkaBrokers: parseList(os.Getenv(EnvKeyKafkaBrokers)),
		KafkaTopic:   envOrDefault(EnvKeyKafkaTopic, "farm-sustainability-records"),
	}

	if s.DefaultRate, err = strconv.ParseFloat(envOrDefault(EnvKeyFarmDefaultRate, "10"), 64); err != nil || s.DefaultRate <= 0 {
		return nil, fmt.Errorf("invalid %s, should be a positive float64 value", EnvKeyFarmDefaultRate)
	}
	if s.DefaultBurst, err = strconv.Atoi(envOrDefault(EnvKeyFarmDefaultBurst, "20")); err != nil || s.DefaultBurst <= 0 {
		return nil, fmt.Errorf("invalid %s, should be a positive int value", EnvKeyFarmDefaultBurst)
	}
	if s.ScoreInterval, err = parsePositiveDuration(EnvKeyScoreInterval, "24h"); err != nil {
		return nil, err
	}
	if s.ShutdownTimeout, err = parsePositiveDuration(EnvKeyShutdownTimeout, "10s"); err != nil {
		return nil, err
	}
	if s.ScoreWorkers, err = strconv.Atoi(envOrDefault(EnvKeyScoreWorkers, "4")); err != nil || s.ScoreWorkers <= 0 {
		return nil, fmt.Errorf("invalid %s, should be a positive int value", EnvKeyScoreWorkers)
	}
	if s.ScoreLookbackDays, err = strconv.Atoi(envOrDefault(EnvKeyScoreLookbackDays, "7")); err != nil || s.ScoreLookbackDays <= 0 {
		return nil, fmt.Errorf("invalid %s, should be a positive int value", EnvKeyScoreLookbackDays)
	}

	switch s.DBType {
	case DBTypeFile, DBTypeMemory:
	default:
		return nil, fmt.Errorf("unknown %s: %q", EnvKeyFarmDBType, s.DBType)
	}
	switch s.ScoreWeights {
	case WeightsCanonical, WeightsLegacy:
	default:
		return nil, fmt.Errorf("unknown %s: %q", EnvKeyScoreWeights, s.ScoreWeights)
	}
	switch s.FireTiering {
	case FireTieringProximity, FireTieringCount:
	default:
		return nil, fmt.Errorf("unknown %s: %q", EnvKeyFireTiering, s.FireTiering)
	}
	if s.KafkaEnabled() && s.KafkaTopic == "" {
		return nil, errors.New("KAFKA_TOPIC is required when KAFKA_BROKERS is set")
	}

	return s, nil
}

func envOrDefault(key, fallback string) string {
	if v, found := os.LookupEnv(key); found && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func parsePositiveDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, fallback))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s, should be a positive duration", key)
	}
	return d, nil
}

func parseList(raw string) []string {
	items := Mapper(strings.Split(raw, ","), strings.TrimSpace)
	return Filter(items, func(item string) bool { return item != "" })
}
