package farm

import (
	"context"

	"go.uber.org/zap"
	"liyu1981.xyz/farm-sustainability-service/pkg/common"
	"liyu1981.xyz/farm-sustainability-service/pkg/events"
	"liyu1981.xyz/farm-sustainability-service/pkg/models"
	"liyu1981.xyz/farm-sustainability-service/pkg/scoring"
)

func (f *Farm) assessAndStoreFireRisk(farmID string, incidents []models.FireIncident) (*models.FireRiskAssessment, error) {
	logger := common.GetCategoryLogger(common.LoggerNameFarmCore, common.LoggerCategoryFire)

	farm, err := f.requireFarm(farmID)
	if err != nil {
		return nil, err
	}

	logger.Info("Received fire incidents for farm", zap.String("farm_id", farmID), zap.Int("incidents", len(incidents)))

	var assessment *models.FireRiskAssessment
	if f.FireTiering == common.FireTieringCount {
		assessment = scoring.AnalyzeFireRiskByCount(farmID, incidents)
	} else {
		assessment = scoring.AnalyzeFireRisk(farmID, farm.Point(), incidents)
	}
	assessment.Timestamp = f.now()

	logger.Info("Fire risk assessed", zap.Reflect("assessment", assessment))

	if err := f.Db.Conn.Create(assessment).Error; err != nil {
		return nil, err
	}

	logger.Info("Fire risk saved", zap.String("id", assessment.ID))

	if f.Metrics != nil {
		f.Metrics.FireAssessments.WithLabelValues(string(assessment.RiskLevel)).Inc()
	}
	f.publish(context.Background(), events.FireRiskRecord(assessment))
	return assessment, nil
}

func (f *Farm) getLatestFireRisk(farmID string) (*models.FireRiskAssessment, error) {
	var assessment models.FireRiskAssessment
	err := f.Db.Conn.
		Where("farm_id = ?", farmID).
		Order("timestamp desc").
		First(&assessment).Error
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

type IFireImpl struct {
	farm *Farm
}

func (ifi *IFireImpl) AssessAndStoreFireRisk(farmID string, incidents []models.FireIncident) (*models.FireRiskAssessment, error) {
	return ifi.farm.assessAndStoreFireRisk(farmID, incidents)
}

func (ifi *IFireImpl) GetLatestFireRisk(farmID string) (*models.FireRiskAssessment, error) {
	return ifi.farm.getLatestFireRisk(farmID)
}

func (f *Farm) GetIFire() IFire {
	return &IFireImpl{farm: f}
}
