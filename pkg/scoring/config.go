package scoring

import (
	"errors"
	"fmt"
	"math"

	"liyu1981.xyz/farm-sustainability-service/pkg/models"
)

var ErrInvalidWeights = errors.New("invalid weight set")

const weightSumTolerance = 1e-9

// Scores used when a window holds no readings.
const (
	DefaultSoilHealthScore      = 70.0
	DefaultWaterEfficiencyScore = 70.0
	DefaultAirQualityScore      = 75.0
	DefaultRiskManagementScore  = 100.0

	// Deprecated: resource optimization is only scored by LegacyWeights.
	LegacyResourceOptimizationScore = 80.0
)

// Per-reading fallbacks when a reading lacks the metric.
const (
	FallbackSoilPH       = 7.0
	FallbackSoilMoisture = 50.0
	FallbackNitrogen     = 50.0
	FallbackRainfall     = 0.0
	FallbackHumidity     = 50.0
	FallbackCO2          = 400.0
	FallbackCH4          = 0.0
)

const (
	SoilPHWeight       = 0.4
	SoilMoistureWeight = 0.4
	SoilNitrogenWeight = 0.2

	CropHealthFactor = 0.9

	WaterRainfallThresholdMm = 10.0
	WaterHumidityThreshold   = 60.0
	WaterDryHumidScore       = 85.0
	WaterDryAridScore        = 60.0
	WaterWetScore            = 80.0

	CO2Baseline     = 400.0
	CO2PenaltyPerPP = 0.1
	CH4PenaltyPerPP = 10.0

	RecommendationThreshold = 70.0
)

const (
	CalculationMethodCanonical = "weighted_5_component"
	CalculationMethodLegacy    = "legacy_weighted_5_component"
)

// WeightSet maps each scored component to its share of the overall score.
type WeightSet map[models.ComponentName]float64

var CanonicalWeights = WeightSet{
	models.ComponentSoilHealth:      0.35,
	models.ComponentWaterEfficiency: 0.25,
	models.ComponentAirQuality:      0.20,
	models.ComponentCropHealth:      0.10,
	models.ComponentRiskManagement:  0.10,
}

// Deprecated: LegacyWeights drops air quality in favour of a fixed resource
// optimization component. Use CanonicalWeights.
var LegacyWeights = WeightSet{
	models.ComponentSoilHealth:           0.30,
	models.ComponentWaterEfficiency:      0.25,
	models.ComponentCropHealth:           0.20,
	models.ComponentRiskManagement:       0.15,
	models.ComponentResourceOptimization: 0.10,
}

var knownComponents = map[models.ComponentName]bool{
	models.ComponentSoilHealth:           true,
	models.ComponentWaterEfficiency:      true,
	models.ComponentAirQuality:           true,
	models.ComponentCropHealth:           true,
	models.ComponentRiskManagement:       true,
	models.ComponentResourceOptimization: true,
}

func (w WeightSet) Sum() float64 {
	sum := 0.0
	for _, weight := range w {
		sum += weight
	}
	return sum
}

// Validate checks that every weight is a finite non-negative share of a
// known component and that the shares add up to 1.
func (w WeightSet) Validate() error {
	if len(w) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidWeights)
	}
	for name, weight := range w {
		if !knownComponents[name] {
			return fmt.Errorf("%w: unknown component %q", ErrInvalidWeights, name)
		}
		if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
			return fmt.Errorf("%w: %s weight %v", ErrInvalidWeights, name, weight)
		}
	}
	if sum := w.Sum(); math.Abs(sum-1) > weightSumTolerance {
		return fmt.Errorf("%w: weights sum to %v", ErrInvalidWeights, sum)
	}
	return nil
}

// ScoreBand awards Score when Min <= value <= Max.
type ScoreBand struct {
	Min   float64
	Max   float64
	Score float64
}

// BandTable is evaluated first match wins; Fallback applies when no band
// contains the value.
type BandTable struct {
	Bands    []ScoreBand
	Fallback float64
}

func (t BandTable) Score(value float64) float64 {
	for _, band := range t.Bands {
		if value >= band.Min && value <= band.Max {
			return band.Score
		}
	}
	return t.Fallback
}

var (
	SoilPHBands = BandTable{
		Bands:    []ScoreBand{{6.0, 7.5, 100}, {5.5, 8.0, 80}},
		Fallback: 60,
	}
	SoilMoistureBands = BandTable{
		Bands:    []ScoreBand{{40, 70, 100}, {30, 80, 80}},
		Fallback: 60,
	}
	NitrogenBands = BandTable{
		Bands:    []ScoreBand{{50, 100, 100}, {30, 50, 80}},
		Fallback: 60,
	}
)

// RiskPenalties is subtracted from DefaultRiskManagementScore for the latest
// stored fire-risk tier.
var RiskPenalties = map[models.RiskLevel]float64{
	models.RiskCritical: 40,
	models.RiskHigh:     25,
	models.RiskModerate: 10,
	models.RiskLow:      0,
}

// Config selects the weight set of an Engine.
type Config struct {
	Weights           WeightSet
	CalculationMethod string
}

func DefaultConfig() Config {
	return Config{
		Weights:           CanonicalWeights,
		CalculationMethod: CalculationMethodCanonical,
	}
}

// Deprecated: LegacyConfig scores with LegacyWeights. Use DefaultConfig.
func LegacyConfig() Config {
	return Config{
		Weights:           LegacyWeights,
		CalculationMethod: CalculationMethodLegacy,
	}
}
