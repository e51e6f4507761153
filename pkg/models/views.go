package models

import "time"

// LiveReadings is the recent activity of one farm.
type LiveReadings struct {
	FarmID          string                       `json:"farm_id"`
	Hours           int                          `json:"hours"`
	Latest          map[SensorType]SensorReading `json:"latest"`
	SensorReadings  []SensorReading              `json:"sensor_readings"`
	WeatherReadings []SensorReading              `json:"weather_readings"`
	TotalCount      int64                        `json:"total_count"`
	GeneratedAt     time.Time                    `json:"generated_at"`
}

type Dashboard struct {
	Farm                *Farm                `json:"farm"`
	SustainabilityScore int                  `json:"sustainability_score"`
	Grade               Grade                `json:"grade"`
	Components          ComponentScores      `json:"components,omitempty"`
	Recommendations     []string             `json:"recommendations,omitempty"`
	ScoredAt            *time.Time           `json:"scored_at"`
	LatestWeather       *SensorReading       `json:"latest_weather"`
	LatestSensor        *SensorReading       `json:"latest_sensor"`
	ActiveAlerts        []FireRiskAssessment `json:"active_alerts"`
	GeneratedAt         time.Time            `json:"generated_at"`
}

// BatchReport summarises one run of the batch scorer.
type BatchReport struct {
	Farms    int              `json:"farms"`
	ScoreIDs []string         `json:"score_ids"`
	Failures []FailureSummary `json:"failures"`
}

type FailureSummary struct {
	FarmID string `json:"farm_id"`
	Error  string `json:"error"`
}
