package farm

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/farm-sustainability-service/pkg/common"
	"liyu1981.xyz/farm-sustainability-service/pkg/models"
)

// Shown until a farm has its first stored score.
const (
	DefaultDashboardScore              = 700
	DefaultDashboardGrade models.Grade = "B"
)

func (f *Farm) getDashboard(farmID string) (*models.Dashboard, error) {
	logger := common.GetCategoryLogger(common.LoggerNameFarmCore, common.LoggerCategoryDashboard)

	farm, err := f.requireFarm(farmID)
	if err != nil {
		return nil, err
	}

	dashboard := &models.Dashboard{
		Farm:                farm,
		SustainabilityScore: DefaultDashboardScore,
		Grade:               DefaultDashboardGrade,
		ActiveAlerts:        []models.FireRiskAssessment{},
		GeneratedAt:         f.now(),
	}

	score, err := f.getLatestScore(farmID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
	case err != nil:
		return nil, fmt.Errorf("latest score: %w", err)
	default:
		dashboard.SustainabilityScore = score.OverallScore
		dashboard.Grade = score.Grade
		dashboard.Components = score.Components.Data()
		dashboard.Recommendations = score.Recommendations.Data()
		dashboard.ScoredAt = &score.Timestamp
	}

	if dashboard.LatestWeather, err = f.latestReading(farmID, weatherSensorTypes); err != nil {
		return nil, fmt.Errorf("latest weather: %w", err)
	}
	if dashboard.LatestSensor, err = f.latestReading(farmID, fieldSensorTypes); err != nil {
		return nil, fmt.Errorf("latest sensor: %w", err)
	}

	assessment, err := f.getLatestFireRisk(farmID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
	case err != nil:
		return nil, fmt.Errorf("latest fire risk: %w", err)
	case assessment.RiskLevel.Rank() >= models.RiskHigh.Rank():
		dashboard.ActiveAlerts = append(dashboard.ActiveAlerts, *assessment)
	}

	logger.Info("Dashboard built",
		zap.String("farm_id", farmID),
		zap.Int("score", dashboard.SustainabilityScore),
		zap.Int("alerts", len(dashboard.ActiveAlerts)),
	)
	return dashboard, nil
}

type IDashboardImpl struct {
	farm *Farm
}

func (id *IDashboardImpl) GetDashboard(farmID string) (*models.Dashboard, error) {
	return id.farm.getDashboard(farmID)
}

func (f *Farm) GetIDashboard() IDashboard {
	return &IDashboardImpl{farm: f}
}
