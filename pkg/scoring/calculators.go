package scoring

import (
	"math"

	"liyu1981.xyz/farm-sustainability-service/pkg/common"
	"liyu1981.xyz/farm-sustainability-service/pkg/models"
)

// metricOr returns the metric, or fallback when it is absent. ok is false for
// a non-finite value; the reading carrying it is malformed.
func metricOr(v *float64, fallback float64) (value float64, ok bool) {
	if v == nil {
		return fallback, true
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0, false
	}
	return *v, true
}

// finalize rounds a sub-score to one decimal inside [0,100].
func finalize(v float64) float64 {
	return common.RoundTo(math.Min(100, math.Max(0, v)), 1)
}

// SoilHealth bands the window averages of pH, moisture and nitrogen and
// combines them 0.4/0.4/0.2.
func SoilHealth(window []models.SensorReading) float64 {
	var phSum, moistureSum, nitrogenSum float64
	n := 0
	for _, r := range window {
		ph, ok1 := metricOr(r.SoilPH, FallbackSoilPH)
		moisture, ok2 := metricOr(r.SoilMoisture, FallbackSoilMoisture)
		nitrogen, ok3 := metricOr(r.Nitrogen, FallbackNitrogen)
		if !ok1 || !ok2 || !ok3 {
			continue
		}
		phSum += ph
		moistureSum += moisture
		nitrogenSum += nitrogen
		n++
	}
	if n == 0 {
		return DefaultSoilHealthScore
	}

	count := float64(n)
	score := SoilPHWeight*SoilPHBands.Score(phSum/count) +
		SoilMoistureWeight*SoilMoistureBands.Score(moistureSum/count) +
		SoilNitrogenWeight*NitrogenBands.Score(nitrogenSum/count)
	return finalize(score)
}

// WaterEfficiency compares total rainfall with average humidity.
func WaterEfficiency(window []models.SensorReading) float64 {
	var rainfall, humiditySum float64
	n := 0
	for _, r := range window {
		rain, ok1 := metricOr(r.Rainfall, FallbackRainfall)
		humidity, ok2 := metricOr(r.Humidity, FallbackHumidity)
		if !ok1 || !ok2 {
			continue
		}
		rainfall += rain
		humiditySum += humidity
		n++
	}
	if n == 0 {
		return DefaultWaterEfficiencyScore
	}

	if rainfall >= WaterRainfallThresholdMm {
		return finalize(WaterWetScore)
	}
	if humiditySum/float64(n) > WaterHumidityThreshold {
		return finalize(WaterDryHumidScore)
	}
	return finalize(WaterDryAridScore)
}

// AirQuality penalises average CO2 above baseline and any average CH4.
func AirQuality(window []models.SensorReading) float64 {
	var co2Sum, ch4Sum float64
	n := 0
	for _, r := range window {
		co2, ok1 := metricOr(r.CO2, FallbackCO2)
		ch4, ok2 := metricOr(r.CH4, FallbackCH4)
		if !ok1 || !ok2 {
			continue
		}
		co2Sum += co2
		ch4Sum += ch4
		n++
	}
	if n == 0 {
		return DefaultAirQualityScore
	}

	count := float64(n)
	co2Score := math.Max(0, 100-(co2Sum/count-CO2Baseline)*CO2PenaltyPerPP)
	ch4Score := math.Max(0, 100-(ch4Sum/count)*CH4PenaltyPerPP)
	return finalize(math.Min(100, (co2Score+ch4Score)/2))
}

// CropHealth is a fixed proxy derived from soil health.
func CropHealth(soilHealth float64) float64 {
	return finalize(soilHealth * CropHealthFactor)
}

// RiskManagement deducts the penalty of the latest stored fire-risk tier. An
// empty level means no assessment exists.
func RiskManagement(latest models.RiskLevel) float64 {
	return finalize(DefaultRiskManagementScore - RiskPenalties[latest])
}
