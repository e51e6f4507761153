package farm

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm/clause"
	"liyu1981.xyz/farm-sustainability-service/pkg/common"
	"liyu1981.xyz/farm-sustainability-service/pkg/models"
)

func (f *Farm) upsertFarm(farmID string, input *models.Farm) error {
	logger := common.GetCategoryLogger(common.LoggerNameFarmCore, common.LoggerCategoryProfile)

	farm := models.Farm{
		ID:           farmID,
		Name:         input.Name,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		Crop:         input.Crop,
		SoilType:     input.SoilType,
		FarmingType:  input.FarmingType,
		AreaHectares: input.AreaHectares,
		Owner:        input.Owner,
	}

	logger.Info("Received profile for farm", zap.Reflect("farm", farm))

	err := f.Db.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&farm).Error

	if err == nil {
		logger.Info("Upserted profile for farm", zap.Reflect("farm", farm))
	}

	return err
}

// requireFarm loads the farm or returns a wrapped gorm.ErrRecordNotFound.
func (f *Farm) requireFarm(farmID string) (*models.Farm, error) {
	var farm models.Farm
	if err := f.Db.Conn.First(&farm, "id = ?", farmID).Error; err != nil {
		return nil, fmt.Errorf("farm %s: %w", farmID, err)
	}
	return &farm, nil
}

func (f *Farm) listFarms() ([]models.Farm, error) {
	var farms []models.Farm
	err := f.Db.Conn.Order("id").Find(&farms).Error
	return farms, err
}

type IProfileImpl struct {
	farm *Farm
}

func (ip *IProfileImpl) UpsertFarm(farmID string, input *models.Farm) error {
	return ip.farm.upsertFarm(farmID, input)
}

func (ip *IProfileImpl) GetFarm(farmID string) (*models.Farm, error) {
	return ip.farm.requireFarm(farmID)
}

func (ip *IProfileImpl) ListFarms() ([]models.Farm, error) {
	return ip.farm.listFarms()
}

func (f *Farm) GetIProfile() IProfile {
	return &IProfileImpl{farm: f}
}
