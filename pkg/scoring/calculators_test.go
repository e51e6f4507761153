package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"liyu1981.xyz/farm-sustainability-service/pkg/models"
)

func f(v float64) *float64 {
	return &v
}

func soilReading(ph, moisture, nitrogen *float64) models.SensorReading {
	return models.SensorReading{
		SensorType:   models.SensorTypeSoil,
		SoilPH:       ph,
		SoilMoisture: moisture,
		Nitrogen:     nitrogen,
	}
}

func TestSoilHealth(t *testing.T) {
	tests := []struct {
		name   string
		window []models.SensorReading
		want   float64
	}{
		{"empty window", nil, DefaultSoilHealthScore},
		{"all optimal", []models.SensorReading{soilReading(f(6.8), f(55), f(60))}, 100},
		{"fallbacks are optimal", []models.SensorReading{soilReading(nil, nil, nil)}, 100},
		{"adjacent and poor", []models.SensorReading{soilReading(f(5.6), f(35), f(20))}, 76},
		{"averaged across window", []models.SensorReading{
			soilReading(f(5.0), f(55), f(60)),
			soilReading(f(7.0), f(55), f(60)),
		}, 100},
		{"all poor", []models.SensorReading{soilReading(f(4.0), f(10), f(5))}, 60},
		{"malformed reading skipped", []models.SensorReading{
			soilReading(f(math.NaN()), f(10), f(5)),
			soilReading(f(6.8), f(55), f(60)),
		}, 100},
		{"only malformed readings", []models.SensorReading{
			soilReading(f(6.8), f(math.Inf(1)), f(60)),
		}, DefaultSoilHealthScore},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SoilHealth(tt.window), 1e-9)
		})
	}
}

func weatherReading(rainfall, humidity *float64) models.SensorReading {
	return models.SensorReading{
		SensorType: models.SensorTypeWeather,
		Rainfall:   rainfall,
		Humidity:   humidity,
	}
}

func TestWaterEfficiency(t *testing.T) {
	tests := []struct {
		name   string
		window []models.SensorReading
		want   float64
	}{
		{"empty window", nil, DefaultWaterEfficiencyScore},
		{"dry but humid", []models.SensorReading{weatherReading(f(4), f(70)), weatherReading(f(3), f(65))}, 85},
		{"dry and arid", []models.SensorReading{weatherReading(f(4), f(50)), weatherReading(f(3), f(55))}, 60},
		{"humidity exactly at threshold", []models.SensorReading{weatherReading(f(0), f(60))}, 60},
		{"wet regardless of humidity", []models.SensorReading{weatherReading(f(6), f(20)), weatherReading(f(5), f(20))}, 80},
		{"rainfall exactly at threshold", []models.SensorReading{weatherReading(f(10), f(90))}, 80},
		{"fallbacks", []models.SensorReading{weatherReading(nil, nil)}, 60},
		{"malformed skipped", []models.SensorReading{
			weatherReading(f(math.NaN()), f(90)),
			weatherReading(f(1), f(90)),
		}, 85},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, WaterEfficiency(tt.window), 1e-9)
		})
	}
}

func airReading(co2, ch4 *float64) models.SensorReading {
	return models.SensorReading{
		SensorType: models.SensorTypeAirQuality,
		CO2:        co2,
		CH4:        ch4,
	}
}

func TestAirQuality(t *testing.T) {
	tests := []struct {
		name   string
		window []models.SensorReading
		want   float64
	}{
		{"empty window", nil, DefaultAirQualityScore},
		{"baseline", []models.SensorReading{airReading(f(400), f(0))}, 100},
		{"below baseline capped", []models.SensorReading{airReading(f(300), f(0))}, 100},
		{"moderate emissions", []models.SensorReading{airReading(f(600), f(2))}, 80},
		{"co2 floor at zero", []models.SensorReading{airReading(f(1500), f(0))}, 50},
		{"both floors at zero", []models.SensorReading{airReading(f(2000), f(20))}, 0},
		{"averaged", []models.SensorReading{airReading(f(500), f(1)), airReading(f(700), f(3))}, 80},
		{"fallbacks", []models.SensorReading{airReading(nil, nil)}, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, AirQuality(tt.window), 1e-9)
		})
	}
}

func TestCropHealth(t *testing.T) {
	assert.InDelta(t, 90.0, CropHealth(100), 1e-9)
	assert.InDelta(t, 63.0, CropHealth(DefaultSoilHealthScore), 1e-9)
	assert.InDelta(t, 68.4, CropHealth(76), 1e-9)
}

func TestRiskManagement(t *testing.T) {
	tests := []struct {
		level models.RiskLevel
		want  float64
	}{
		{"", 100},
		{models.RiskLow, 100},
		{models.RiskModerate, 90},
		{models.RiskHigh, 75},
		{models.RiskCritical, 60},
	}
	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			assert.Equal(t, tt.want, RiskManagement(tt.level))
		})
	}
}

func TestFinalize(t *testing.T) {
	assert.Equal(t, 100.0, finalize(130))
	assert.Equal(t, 0.0, finalize(-5))
	assert.Equal(t, 72.3, finalize(72.34))
}
