package farm

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/farm-sustainability-service/pkg/common"
	"liyu1981.xyz/farm-sustainability-service/pkg/models"
)

const (
	DefaultLiveHours   = 24
	liveSensorHistory  = 20
	liveWeatherHistory = 10
)

var ErrInvalidSensorType = errors.New("invalid sensor type")

var (
	weatherSensorTypes = []models.SensorType{models.SensorTypeWeather, models.SensorTypeWeatherStation}
	fieldSensorTypes   = []models.SensorType{models.SensorTypeSoil, models.SensorTypeAirQuality}
)

func (f *Farm) ingestReading(farmID string, input *models.SensorReading) error {
	logger := common.GetCategoryLogger(common.LoggerNameFarmCore, common.LoggerCategoryReading)

	if !slices.Contains(models.SensorTypes, input.SensorType) {
		return fmt.Errorf("%w: %q", ErrInvalidSensorType, input.SensorType)
	}
	if _, err := f.requireFarm(farmID); err != nil {
		return err
	}

	reading := *input
	reading.ID = 0
	reading.FarmID = farmID
	if reading.Timestamp.IsZero() {
		reading.Timestamp = f.now()
	}
	reading.Timestamp = reading.Timestamp.UTC()

	logger.Info("Received reading for farm", zap.Reflect("reading", reading))

	if err := f.Db.Conn.Create(&reading).Error; err != nil {
		return err
	}

	logger.Info("Stored reading for farm", zap.Uint("id", reading.ID), zap.String("farm_id", farmID))

	if f.Metrics != nil {
		f.Metrics.ReadingsIngested.WithLabelValues(string(reading.SensorType)).Inc()
	}
	return nil
}

// readingWindow returns readings of the given types at or after since, most
// recent first. limit <= 0 means no limit.
func (f *Farm) readingWindow(farmID string, types []models.SensorType, since time.Time, limit int) ([]models.SensorReading, error) {
	var readings []models.SensorReading
	query := f.Db.Conn.
		Where("farm_id = ? AND sensor_type IN ? AND timestamp >= ?", farmID, types, since).
		Order("timestamp desc").
		Order("id desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&readings).Error
	return readings, err
}

func (f *Farm) latestReading(farmID string, types []models.SensorType) (*models.SensorReading, error) {
	var reading models.SensorReading
	err := f.Db.Conn.
		Where("farm_id = ? AND sensor_type IN ?", farmID, types).
		Order("timestamp desc").
		Order("id desc").
		First(&reading).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reading, nil
}

func (f *Farm) getLiveReadings(farmID string, hours int) (*models.LiveReadings, error) {
	if hours <= 0 {
		hours = DefaultLiveHours
	}
	if _, err := f.requireFarm(farmID); err != nil {
		return nil, err
	}

	now := f.now()
	since := now.Add(-time.Duration(hours) * time.Hour)

	live := &models.LiveReadings{
		FarmID:      farmID,
		Hours:       hours,
		Latest:      map[models.SensorType]models.SensorReading{},
		GeneratedAt: now,
	}

	for _, sensorType := range models.SensorTypes {
		readings, err := f.readingWindow(farmID, []models.SensorType{sensorType}, since, 1)
		if err != nil {
			return nil, fmt.Errorf("latest %s reading: %w", sensorType, err)
		}
		if len(readings) > 0 {
			live.Latest[sensorType] = readings[0]
		}
	}

	var err error
	if live.SensorReadings, err = f.readingWindow(farmID, fieldSensorTypes, since, liveSensorHistory); err != nil {
		return nil, fmt.Errorf("sensor history: %w", err)
	}
	if live.WeatherReadings, err = f.readingWindow(farmID, weatherSensorTypes, since, liveWeatherHistory); err != nil {
		return nil, fmt.Errorf("weather history: %w", err)
	}

	if err := f.Db.Conn.Model(&models.SensorReading{}).
		Where("farm_id = ? AND timestamp >= ?", farmID, since).
		Count(&live.TotalCount).Error; err != nil {
		return nil, fmt.Errorf("count readings: %w", err)
	}

	return live, nil
}

type IReadingImpl struct {
	farm *Farm
}

func (ir *IReadingImpl) IngestReading(farmID string, input *models.SensorReading) error {
	return ir.farm.ingestReading(farmID, input)
}

func (ir *IReadingImpl) GetLiveReadings(farmID string, hours int) (*models.LiveReadings, error) {
	return ir.farm.getLiveReadings(farmID, hours)
}

func (f *Farm) GetIReading() IReading {
	return &IReadingImpl{farm: f}
}
