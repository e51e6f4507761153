package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"liyu1981.xyz/farm-sustainability-service/pkg/models"
)

func TestWeightSets_SumToOne(t *testing.T) {
	for name, weights := range map[string]WeightSet{
		"canonical": CanonicalWeights,
		"legacy":    LegacyWeights,
	} {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, 1.0, weights.Sum(), 1e-9)
			assert.NoError(t, weights.Validate())
		})
	}
}

func TestWeightSet_ValidateRejects(t *testing.T) {
	tests := []struct {
		name    string
		weights WeightSet
	}{
		{"empty", WeightSet{}},
		{"unknown component", WeightSet{models.ComponentSoilHealth: 0.5, "yield": 0.5}},
		{"negative weight", WeightSet{models.ComponentSoilHealth: 1.2, models.ComponentAirQuality: -0.2}},
		{"sum below one", WeightSet{models.ComponentSoilHealth: 0.5, models.ComponentAirQuality: 0.4}},
		{"sum above one", WeightSet{models.ComponentSoilHealth: 0.6, models.ComponentAirQuality: 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.weights.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidWeights)
		})
	}
}

func TestBandTables(t *testing.T) {
	tests := []struct {
		name  string
		table BandTable
		value float64
		want  float64
	}{
		{"ph optimal low edge", SoilPHBands, 6.0, 100},
		{"ph optimal high edge", SoilPHBands, 7.5, 100},
		{"ph adjacent low edge", SoilPHBands, 5.5, 80},
		{"ph adjacent high edge", SoilPHBands, 8.0, 80},
		{"ph acidic", SoilPHBands, 5.4, 60},
		{"ph alkaline", SoilPHBands, 8.1, 60},
		{"moisture optimal", SoilMoistureBands, 55, 100},
		{"moisture adjacent", SoilMoistureBands, 30, 80},
		{"moisture soaked", SoilMoistureBands, 81, 60},
		{"nitrogen shared edge goes to first band", NitrogenBands, 50, 100},
		{"nitrogen adjacent", NitrogenBands, 30, 80},
		{"nitrogen depleted", NitrogenBands, 29.9, 60},
		{"nitrogen excess", NitrogenBands, 100.1, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.table.Score(tt.value))
		})
	}
}

func TestConfigs(t *testing.T) {
	assert.Equal(t, CalculationMethodCanonical, DefaultConfig().CalculationMethod)
	assert.Equal(t, CanonicalWeights, DefaultConfig().Weights)
	assert.Equal(t, CalculationMethodLegacy, LegacyConfig().CalculationMethod)
	assert.Contains(t, LegacyConfig().Weights, models.ComponentResourceOptimization)
}
