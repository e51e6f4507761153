package farm

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/farm-sustainability-service/pkg/common"
	"liyu1981.xyz/farm-sustainability-service/pkg/events"
	"liyu1981.xyz/farm-sustainability-service/pkg/models"
	"liyu1981.xyz/farm-sustainability-service/pkg/scoring"
)

const (
	DefaultScoreHistory = 10
	MaxScoreHistory     = 100
)

// Snapshot implements scoring.SnapshotSource over the reading store.
func (f *Farm) Snapshot(farmID string) (scoring.Snapshot, error) {
	since := f.now().AddDate(0, 0, -f.lookbackDays())
	snapshot := scoring.Snapshot{FarmID: farmID}

	var err error
	if snapshot.SoilWindow, err = f.readingWindow(farmID, []models.SensorType{models.SensorTypeSoil}, since, 0); err != nil {
		return snapshot, fmt.Errorf("soil window: %w", err)
	}
	if snapshot.WaterWindow, err = f.readingWindow(farmID, weatherSensorTypes, since, 0); err != nil {
		return snapshot, fmt.Errorf("water window: %w", err)
	}
	if snapshot.AirWindow, err = f.readingWindow(farmID, []models.SensorType{models.SensorTypeAirQuality}, since, 0); err != nil {
		return snapshot, fmt.Errorf("air window: %w", err)
	}

	latest, err := f.getLatestFireRisk(farmID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
	case err != nil:
		return snapshot, fmt.Errorf("latest fire risk: %w", err)
	default:
		snapshot.LatestRisk = latest.RiskLevel
	}

	return snapshot, nil
}

func (f *Farm) storeScore(score *models.SustainabilityScore) error {
	score.Timestamp = f.now()
	if err := f.Db.Conn.Create(score).Error; err != nil {
		return err
	}
	if f.Metrics != nil {
		f.Metrics.ScoresComputed.WithLabelValues(string(score.Grade)).Inc()
	}
	return nil
}

func (f *Farm) calculateAndStoreScore(farmID string) (*models.SustainabilityScore, error) {
	logger := common.GetCategoryLogger(common.LoggerNameFarmCore, common.LoggerCategoryScore)

	if _, err := f.requireFarm(farmID); err != nil {
		return nil, err
	}

	score, err := f.Engine.ScoreFarm(f, farmID)
	if err != nil {
		return nil, err
	}

	logger.Info("Score calculated", zap.Reflect("score", score))

	if err := f.storeScore(score); err != nil {
		return nil, err
	}

	logger.Info("Score saved", zap.String("id", score.ID), zap.Int("overall", score.OverallScore))

	f.publish(context.Background(), events.ScoreRecord(score))
	return score, nil
}

func (f *Farm) getLatestScore(farmID string) (*models.SustainabilityScore, error) {
	var score models.SustainabilityScore
	err := f.Db.Conn.
		Where("farm_id = ?", farmID).
		Order("timestamp desc").
		First(&score).Error
	if err != nil {
		return nil, err
	}
	return &score, nil
}

func (f *Farm) getScoreHistory(farmID string, limit int) ([]models.SustainabilityScore, error) {
	if limit <= 0 {
		limit = DefaultScoreHistory
	}
	limit = min(limit, MaxScoreHistory)

	var scores []models.SustainabilityScore
	err := f.Db.Conn.
		Where("farm_id = ?", farmID).
		Order("timestamp desc").
		Limit(limit).
		Find(&scores).Error
	return scores, err
}

func (f *Farm) scoreAllFarms(ctx context.Context) (*models.BatchReport, error) {
	logger := common.GetCategoryLogger(common.LoggerNameFarmCore, common.LoggerCategoryBatch)
	started := f.now()

	farms, err := f.listFarms()
	if err != nil {
		return nil, fmt.Errorf("list farms: %w", err)
	}
	farmIDs := common.Mapper(farms, func(farm models.Farm) string { return farm.ID })

	result := f.Engine.ScoreBatch(farmIDs, f, f.workers())

	report := &models.BatchReport{Farms: len(farmIDs), ScoreIDs: []string{}, Failures: []models.FailureSummary{}}
	for _, failure := range result.Failures {
		report.Failures = append(report.Failures, models.FailureSummary{FarmID: failure.FarmID, Error: failure.Err.Error()})
	}

	var records []events.Record
	for _, score := range result.Scores {
		if err := f.storeScore(score); err != nil {
			logger.Error("Failed to store score", zap.String("farm_id", score.FarmID), zap.Error(err))
			report.Failures = append(report.Failures, models.FailureSummary{FarmID: score.FarmID, Error: err.Error()})
			continue
		}
		report.ScoreIDs = append(report.ScoreIDs, score.ID)
		records = append(records, events.ScoreRecord(score))
	}

	f.publish(ctx, records...)

	if f.Metrics != nil {
		f.Metrics.BatchFarms.Observe(float64(len(farmIDs)))
		f.Metrics.BatchDuration.Observe(f.now().Sub(started).Seconds())
		f.Metrics.ScoreFailures.Add(float64(len(report.Failures)))
		f.Metrics.LastBatchFarms.Set(float64(len(report.ScoreIDs)))
	}

	logger.Info("Batch scoring finished",
		zap.Int("farms", report.Farms),
		zap.Int("stored", len(report.ScoreIDs)),
		zap.Int("failed", len(report.Failures)),
	)
	return report, nil
}

type IScoreImpl struct {
	farm *Farm
}

func (is *IScoreImpl) CalculateAndStoreScore(farmID string) (*models.SustainabilityScore, error) {
	return is.farm.calculateAndStoreScore(farmID)
}

func (is *IScoreImpl) GetLatestScore(farmID string) (*models.SustainabilityScore, error) {
	return is.farm.getLatestScore(farmID)
}

func (is *IScoreImpl) GetScoreHistory(farmID string, limit int) ([]models.SustainabilityScore, error) {
	return is.farm.getScoreHistory(farmID, limit)
}

func (is *IScoreImpl) ScoreAllFarms(ctx context.Context) (*models.BatchReport, error) {
	return is.farm.scoreAllFarms(ctx)
}

func (f *Farm) GetIScore() IScore {
	return &IScoreImpl{farm: f}
}
