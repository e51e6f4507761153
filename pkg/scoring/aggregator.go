package scoring

import (
	"maps"
	"math"
	"slices"

	"gorm.io/datatypes"
	"liyu1981.xyz/farm-sustainability-service/pkg/models"
)

const (
	MaxOverallScore = 1000

	// absorbs binary rounding so that e.g. all components at 80 floor to 800
	overallEpsilon = 1e-9
)

// GradeThreshold awards Grade to overall scores >= Min.
type GradeThreshold struct {
	Min   int
	Grade models.Grade
}

// GradeTable is ordered descending and evaluated first match wins.
var GradeTable = []GradeThreshold{
	{Min: 900, Grade: "A+"},
	{Min: 850, Grade: "A"},
	{Min: 800, Grade: "A-"},
	{Min: 750, Grade: "B+"},
	{Min: 700, Grade: "B"},
	{Min: 650, Grade: "B-"},
	{Min: 600, Grade: "C+"},
}

const LowestGrade models.Grade = "C"

func GradeFor(overall int) models.Grade {
	for _, t := range GradeTable {
		if overall >= t.Min {
			return t.Grade
		}
	}
	return LowestGrade
}

// Aggregate returns floor(10 * sum(w_i * c_i)) bounded to [0,1000]. A weighted
// component missing from the map contributes zero.
func Aggregate(components models.ComponentScores, weights WeightSet) int {
	weighted := 0.0
	for _, name := range slices.Sorted(maps.Keys(weights)) {
		weighted += weights[name] * components[name].Value
	}
	overall := int(math.Floor(weighted*10 + overallEpsilon))
	return max(0, min(MaxOverallScore, overall))
}

type recommendationRule struct {
	Component models.ComponentName
	Message   string
}

var recommendationRules = []recommendationRule{
	{models.ComponentSoilHealth, "Improve soil health through organic matter addition"},
	{models.ComponentWaterEfficiency, "Implement water conservation techniques"},
	{models.ComponentAirQuality, "Reduce on-farm emissions"},
	{models.ComponentRiskManagement, "Enhance disaster preparedness measures"},
}

const RecommendationAllClear = "Excellent work! Continue current practices"

// Recommendations lists an action for every scored component below
// RecommendationThreshold.
func Recommendations(components models.ComponentScores) []string {
	var out []string
	for _, rule := range recommendationRules {
		c, ok := components[rule.Component]
		if ok && c.Value < RecommendationThreshold {
			out = append(out, rule.Message)
		}
	}
	if len(out) == 0 {
		out = append(out, RecommendationAllClear)
	}
	return out
}

// Snapshot is everything the engine needs to score one farm. Windows are
// already time-bounded and ordered most recent first.
type Snapshot struct {
	FarmID      string
	SoilWindow  []models.SensorReading
	WaterWindow []models.SensorReading
	AirWindow   []models.SensorReading
	// LatestRisk is empty when the farm has no stored assessment.
	LatestRisk models.RiskLevel
}

type Engine struct {
	config Config
}

func NewEngine(config Config) (*Engine, error) {
	if err := config.Weights.Validate(); err != nil {
		return nil, err
	}
	if config.CalculationMethod == "" {
		config.CalculationMethod = CalculationMethodCanonical
	}
	return &Engine{config: config}, nil
}

func (e *Engine) Config() Config {
	return e.config
}

// Components computes every sub-score the engine's weight set references.
func (e *Engine) Components(s Snapshot) models.ComponentScores {
	soil := SoilHealth(s.SoilWindow)
	values := map[models.ComponentName]float64{
		models.ComponentSoilHealth:      soil,
		models.ComponentWaterEfficiency: WaterEfficiency(s.WaterWindow),
		models.ComponentAirQuality:      AirQuality(s.AirWindow),
		models.ComponentCropHealth:      CropHealth(soil),
		models.ComponentRiskManagement:  RiskManagement(s.LatestRisk),
	}
	if _, ok := e.config.Weights[models.ComponentResourceOptimization]; ok {
		values[models.ComponentResourceOptimization] = LegacyResourceOptimizationScore
	}

	components := make(models.ComponentScores, len(e.config.Weights))
	for name := range e.config.Weights {
		components[name] = models.ComponentScore{Name: name, Value: values[name]}
	}
	return components
}

// Score computes a sustainability record for the snapshot. The caller assigns
// the record id and timestamp.
func (e *Engine) Score(s Snapshot) *models.SustainabilityScore {
	components := e.Components(s)
	overall := Aggregate(components, e.config.Weights)

	return &models.SustainabilityScore{
		FarmID:            s.FarmID,
		OverallScore:      overall,
		Grade:             GradeFor(overall),
		Components:        datatypes.NewJSONType(components),
		Recommendations:   datatypes.NewJSONType(Recommendations(components)),
		CalculationMethod: e.config.CalculationMethod,
	}
}
