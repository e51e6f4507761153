package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"liyu1981.xyz/farm-sustainability-service/pkg/models"
)

func uniformComponents(weights WeightSet, value float64) models.ComponentScores {
	components := models.ComponentScores{}
	for name := range weights {
		components[name] = models.ComponentScore{Name: name, Value: value}
	}
	return components
}

func TestAggregate(t *testing.T) {
	t.Run("all 80 is 800", func(t *testing.T) {
		assert.Equal(t, 800, Aggregate(uniformComponents(CanonicalWeights, 80), CanonicalWeights))
		assert.Equal(t, 800, Aggregate(uniformComponents(LegacyWeights, 80), LegacyWeights))
	})

	t.Run("floors", func(t *testing.T) {
		assert.Equal(t, 799, Aggregate(uniformComponents(CanonicalWeights, 79.99), CanonicalWeights))
	})

	t.Run("bounds", func(t *testing.T) {
		assert.Equal(t, 1000, Aggregate(uniformComponents(CanonicalWeights, 100), CanonicalWeights))
		assert.Equal(t, 0, Aggregate(uniformComponents(CanonicalWeights, 0), CanonicalWeights))
	})

	t.Run("weighted", func(t *testing.T) {
		components := uniformComponents(CanonicalWeights, 0)
		components[models.ComponentSoilHealth] = models.ComponentScore{Name: models.ComponentSoilHealth, Value: 100}
		assert.Equal(t, 350, Aggregate(components, CanonicalWeights))
	})

	t.Run("missing component contributes zero", func(t *testing.T) {
		components := uniformComponents(CanonicalWeights, 100)
		delete(components, models.ComponentRiskManagement)
		assert.Equal(t, 900, Aggregate(components, CanonicalWeights))
	})
}

func TestGradeFor(t *testing.T) {
	tests := []struct {
		overall int
		want    models.Grade
	}{
		{1000, "A+"},
		{900, "A+"},
		{899, "A"},
		{850, "A"},
		{849, "A-"},
		{800, "A-"},
		{799, "B+"},
		{750, "B+"},
		{700, "B"},
		{699, "B-"},
		{650, "B-"},
		{600, "C+"},
		{599, "C"},
		{0, "C"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GradeFor(tt.overall), "overall %d", tt.overall)
	}
}

func TestGradeTable_Descending(t *testing.T) {
	for i := 1; i < len(GradeTable); i++ {
		assert.Greater(t, GradeTable[i-1].Min, GradeTable[i].Min)
	}
}

func TestRecommendations(t *testing.T) {
	t.Run("all clear", func(t *testing.T) {
		assert.Equal(t, []string{RecommendationAllClear}, Recommendations(uniformComponents(CanonicalWeights, 70)))
	})

	t.Run("weak components", func(t *testing.T) {
		components := uniformComponents(CanonicalWeights, 90)
		components[models.ComponentWaterEfficiency] = models.ComponentScore{Name: models.ComponentWaterEfficiency, Value: 60}
		components[models.ComponentRiskManagement] = models.ComponentScore{Name: models.ComponentRiskManagement, Value: 60}
		assert.Equal(t, []string{
			"Implement water conservation techniques",
			"Enhance disaster preparedness measures",
		}, Recommendations(components))
	})

	t.Run("crop health never recommends", func(t *testing.T) {
		components := uniformComponents(CanonicalWeights, 90)
		components[models.ComponentCropHealth] = models.ComponentScore{Name: models.ComponentCropHealth, Value: 10}
		assert.Equal(t, []string{RecommendationAllClear}, Recommendations(components))
	})
}

func TestNewEngine_InvalidWeights(t *testing.T) {
	_, err := NewEngine(Config{Weights: WeightSet{models.ComponentSoilHealth: 0.9}})
	assert.ErrorIs(t, err, ErrInvalidWeights)
}

func TestEngineScore_EmptySnapshot(t *testing.T) {
	engine, err := NewEngine(DefaultConfig())
	require.NoError(t, err)

	score := engine.Score(Snapshot{FarmID: "FARM001"})

	assert.Equal(t, "FARM001", score.FarmID)
	assert.Empty(t, score.ID)
	assert.True(t, score.Timestamp.IsZero())
	assert.Equal(t, CalculationMethodCanonical, score.CalculationMethod)

	// 0.35*70 + 0.25*70 + 0.20*75 + 0.10*63 + 0.10*100
	assert.Equal(t, 733, score.OverallScore)
	assert.Equal(t, models.Grade("B"), score.Grade)

	soil, ok := score.Component(models.ComponentSoilHealth)
	require.True(t, ok)
	assert.Equal(t, DefaultSoilHealthScore, soil)
	water, _ := score.Component(models.ComponentWaterEfficiency)
	assert.Equal(t, DefaultWaterEfficiencyScore, water)
	air, _ := score.Component(models.ComponentAirQuality)
	assert.Equal(t, DefaultAirQualityScore, air)
	_, ok = score.Component(models.ComponentResourceOptimization)
	assert.False(t, ok)

	assert.Equal(t, []string{RecommendationAllClear}, score.Recommendations.Data())
}

func TestEngineScore_Legacy(t *testing.T) {
	engine, err := NewEngine(LegacyConfig())
	require.NoError(t, err)

	score := engine.Score(Snapshot{FarmID: "FARM002"})

	// 0.30*70 + 0.25*70 + 0.20*63 + 0.15*100 + 0.10*80
	assert.Equal(t, 741, score.OverallScore)
	assert.Equal(t, models.Grade("B"), score.Grade)
	assert.Equal(t, CalculationMethodLegacy, score.CalculationMethod)

	resource, ok := score.Component(models.ComponentResourceOptimization)
	require.True(t, ok)
	assert.Equal(t, LegacyResourceOptimizationScore, resource)
	_, ok = score.Component(models.ComponentAirQuality)
	assert.False(t, ok)
}

func TestEngineScore_Deterministic(t *testing.T) {
	engine, err := NewEngine(DefaultConfig())
	require.NoError(t, err)

	snapshot := Snapshot{
		FarmID:      "FARM003",
		SoilWindow:  []models.SensorReading{soilReading(f(5.6), f(35), f(20))},
		WaterWindow: []models.SensorReading{weatherReading(f(2), f(40))},
		AirWindow:   []models.SensorReading{airReading(f(650), f(1.5))},
		LatestRisk:  models.RiskHigh,
	}

	first := engine.Score(snapshot)
	second := engine.Score(snapshot)

	assert.Equal(t, first.OverallScore, second.OverallScore)
	assert.Equal(t, first.Grade, second.Grade)
	assert.Equal(t, first.Components.Data(), second.Components.Data())
	assert.Equal(t, first.Recommendations.Data(), second.Recommendations.Data())

	// soil 76, water 60, air (75+85)/2 = 80, crop 68.4, risk 75
	// 26.6 + 15 + 16 + 6.84 + 7.5 = 71.94
	assert.Equal(t, 719, first.OverallScore)
	assert.Equal(t, models.Grade("B"), first.Grade)
	assert.Equal(t, []string{"Implement water conservation techniques"}, first.Recommendations.Data())
}
