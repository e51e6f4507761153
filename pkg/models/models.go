package models

import (
	"strings"
	"time"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SRIDWGS84 is the spatial reference of every farm and incident coordinate.
const SRIDWGS84 = 4326

type SensorType string

const (
	SensorTypeSoil           SensorType = "soil"
	SensorTypeWeatherStation SensorType = "weather_station"
	SensorTypeAirQuality     SensorType = "air_quality"
	SensorTypeWeather        SensorType = "weather"
)

var SensorTypes = []SensorType{
	SensorTypeSoil,
	SensorTypeWeatherStation,
	SensorTypeAirQuality,
	SensorTypeWeather,
}

type ComponentName string

const (
	ComponentSoilHealth      ComponentName = "soil_health"
	ComponentWaterEfficiency ComponentName = "water_efficiency"
	ComponentAirQuality      ComponentName = "air_quality"
	ComponentCropHealth      ComponentName = "crop_health"
	ComponentRiskManagement  ComponentName = "risk_management"

	// Deprecated: only scored under the legacy weight set.
	ComponentResourceOptimization ComponentName = "resource_optimization"
)

type Grade string

// RiskLevel is an ordinal fire-risk tier: low < moderate < high < critical.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Rank orders risk levels; unknown levels rank below low.
func (r RiskLevel) Rank() int {
	switch r {
	case RiskLow:
		return 0
	case RiskModerate:
		return 1
	case RiskHigh:
		return 2
	case RiskCritical:
		return 3
	default:
		return -1
	}
}

func (r RiskLevel) Valid() bool {
	return r.Rank() >= 0
}

type Farm struct {
	ID           string  `gorm:"primaryKey" json:"id"`
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Location     string  `json:"location"`
	Crop         string  `json:"crop,omitempty"`
	SoilType     string  `json:"soil_type,omitempty"`
	FarmingType  string  `json:"farming_type,omitempty"`
	AreaHectares float64 `json:"area_hectares,omitempty"`
	Owner        string  `json:"owner,omitempty"`

	Readings  []SensorReading       `gorm:"foreignKey:FarmID;references:ID" json:"-"`
	Scores    []SustainabilityScore `gorm:"foreignKey:FarmID;references:ID" json:"-"`
	FireRisks []FireRiskAssessment  `gorm:"foreignKey:FarmID;references:ID" json:"-"`
}

// Point returns the farm location as an XY point (x = longitude, y = latitude).
func (f *Farm) Point() *geom.Point {
	return geom.NewPointFlat(geom.XY, []float64{f.Longitude, f.Latitude}).SetSRID(SRIDWGS84)
}

// BeforeSave keeps the WKT location column in step with latitude/longitude.
func (f *Farm) BeforeSave(tx *gorm.DB) error {
	location, err := wkt.Marshal(f.Point())
	if err != nil {
		return err
	}
	f.Location = location
	return nil
}

// SensorReading is one device sample. Metric fields are optional; which ones
// are set depends on SensorType.
type SensorReading struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	FarmID     string     `gorm:"index" json:"farm_id"`
	SensorType SensorType `gorm:"type:varchar(20);index;check:sensor_type IN ('soil','weather_station','air_quality','weather')" json:"sensor_type"`
	DeviceID   string     `json:"device_id,omitempty"`
	Timestamp  time.Time  `gorm:"index" json:"timestamp"`

	SoilPH          *float64 `json:"soil_ph,omitempty"`
	SoilMoisture    *float64 `json:"soil_moisture,omitempty"`
	SoilTemperature *float64 `json:"soil_temperature,omitempty"`
	Nitrogen        *float64 `json:"nitrogen,omitempty"`
	Phosphorus      *float64 `json:"phosphorus,omitempty"`
	Potassium       *float64 `json:"potassium,omitempty"`
	OrganicCarbon   *float64 `json:"organic_carbon,omitempty"`

	Temperature *float64 `json:"temperature,omitempty"`
	Humidity    *float64 `json:"humidity,omitempty"`
	Pressure    *float64 `json:"pressure,omitempty"`
	WindSpeed   *float64 `json:"wind_speed,omitempty"`
	Rainfall    *float64 `json:"rainfall,omitempty"`

	CO2  *float64 `json:"co2,omitempty"`
	CH4  *float64 `json:"ch4,omitempty"`
	N2O  *float64 `json:"n2o,omitempty"`
	PM25 *float64 `json:"pm25,omitempty"`

	BatteryLevel *float64 `json:"battery_level,omitempty"`
}

type ComponentScore struct {
	Name  ComponentName `json:"name"`
	Value float64       `json:"value"`
}

type ComponentScores map[ComponentName]ComponentScore

type SustainabilityScore struct {
	ID                string                              `gorm:"primaryKey" json:"id"`
	FarmID            string                              `gorm:"index" json:"farm_id"`
	OverallScore      int                                 `json:"overall_score"`
	Grade             Grade                               `gorm:"type:varchar(2)" json:"grade"`
	Components        datatypes.JSONType[ComponentScores] `json:"components"`
	Recommendations   datatypes.JSONType[[]string]        `json:"recommendations"`
	CalculationMethod string                              `json:"calculation_method"`
	Timestamp         time.Time                           `gorm:"index" json:"timestamp"`
}

// Component returns the value of a named sub-score.
func (s *SustainabilityScore) Component(name ComponentName) (float64, bool) {
	c, ok := s.Components.Data()[name]
	return c.Value, ok
}

func (s *SustainabilityScore) BeforeCreate(tx *gorm.DB) error {
	s.Timestamp, s.ID = assignRecordIdentity(s.FarmID, s.ID, s.Timestamp)
	return nil
}

type FireRiskAssessment struct {
	ID                  string    `gorm:"primaryKey" json:"id"`
	FarmID              string    `gorm:"index" json:"farm_id"`
	RiskLevel           RiskLevel `gorm:"type:varchar(10);check:risk_level IN ('low','moderate','high','critical')" json:"risk_level"`
	NearbyCount         int       `json:"nearby_count"`
	HighConfidenceCount int       `json:"high_confidence_count"`
	ClosestDistanceKm   *float64  `json:"closest_distance_km"`
	Recommendation      string    `json:"recommendation"`
	TieringMethod       string    `json:"tiering_method"`
	Timestamp           time.Time `gorm:"index" json:"timestamp"`
}

func (a *FireRiskAssessment) BeforeCreate(tx *gorm.DB) error {
	a.Timestamp, a.ID = assignRecordIdentity(a.FarmID, a.ID, a.Timestamp)
	return nil
}

var recordIDReplacer = strings.NewReplacer(":", "", "-", "", ".", "")

// RecordID derives a record identifier from the farm id and the record
// timestamp, e.g. "FARM_001_20240426T153000123456".
func RecordID(farmID string, ts time.Time) string {
	if farmID == "" {
		farmID = "unknown"
	}
	return farmID + "_" + recordIDReplacer.Replace(ts.UTC().Format("2006-01-02T15:04:05.000000"))
}

func assignRecordIdentity(farmID, id string, ts time.Time) (time.Time, string) {
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	if id == "" {
		id = RecordID(farmID, ts)
	}
	return ts, id
}
