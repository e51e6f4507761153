package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"liyu1981.xyz/farm-sustainability-service/pkg/common"
	"liyu1981.xyz/farm-sustainability-service/pkg/farm"
	"liyu1981.xyz/farm-sustainability-service/pkg/models"
	"liyu1981.xyz/farm-sustainability-service/pkg/scoring"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

// respondError maps service errors onto status codes.
func (rs *RestfulServer) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, farm.ErrInvalidSensorType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		common.GetLoggerWith(common.LoggerNameRestfulServer).Error("Request failed",
			zap.String("path", c.FullPath()),
			zap.String("farm_id", c.Param("farm_id")),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

type FarmRequest struct {
	Name         string  `json:"name" zog:"name"`
	Latitude     float64 `json:"latitude" zog:"latitude"`
	Longitude    float64 `json:"longitude" zog:"longitude"`
	Crop         string  `json:"crop,omitempty" zog:"crop"`
	SoilType     string  `json:"soil_type,omitempty" zog:"soil_type"`
	FarmingType  string  `json:"farming_type,omitempty" zog:"farming_type"`
	AreaHectares float64 `json:"area_hectares,omitempty" zog:"area_hectares"`
	Owner        string  `json:"owner,omitempty" zog:"owner"`
}

var farmRequestSchema = z.Struct(z.Shape{
	"Name":         z.String().Required(),
	"Latitude":     z.Float64().Required().GTE(-90).LTE(90),
	"Longitude":    z.Float64().Required().GTE(-180).LTE(180),
	"Crop":         z.String(),
	"SoilType":     z.String(),
	"FarmingType":  z.String(),
	"AreaHectares": z.Float64().GTE(0),
	"Owner":        z.String(),
})

func (rs *RestfulServer) UpsertFarm(c *gin.Context) {
	farmID := c.Param("farm_id")

	if !rs.CheckFarmLimiter(farmID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req FarmRequest
	if err := farmRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if err := rs.Farm.Profile.UpsertFarm(farmID, &models.Farm{
		Name:         req.Name,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Crop:         req.Crop,
		SoilType:     req.SoilType,
		FarmingType:  req.FarmingType,
		AreaHectares: req.AreaHectares,
		Owner:        req.Owner,
	}); err != nil {
		rs.respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) ListFarms(c *gin.Context) {
	farms, err := rs.Farm.Profile.ListFarms()
	if err != nil {
		rs.respondError(c, err)
		return
	}
	if farms == nil {
		farms = []models.Farm{}
	}

	c.JSON(http.StatusOK, farms)
}

// ReadingRequest carries optional metrics, so the body is bound first and the
// scalar fields validated afterwards.
type ReadingRequest struct {
	SensorType string    `json:"sensor_type" zog:"sensor_type"`
	DeviceID   string    `json:"device_id" zog:"device_id"`
	Timestamp  time.Time `json:"timestamp" zog:"timestamp"`

	SoilPH          *float64 `json:"soil_ph"`
	SoilMoisture    *float64 `json:"soil_moisture"`
	SoilTemperature *float64 `json:"soil_temperature"`
	Nitrogen        *float64 `json:"nitrogen"`
	Phosphorus      *float64 `json:"phosphorus"`
	Potassium       *float64 `json:"potassium"`
	OrganicCarbon   *float64 `json:"organic_carbon"`

	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
	Pressure    *float64 `json:"pressure"`
	WindSpeed   *float64 `json:"wind_speed"`
	Rainfall    *float64 `json:"rainfall"`

	CO2  *float64 `json:"co2"`
	CH4  *float64 `json:"ch4"`
	N2O  *float64 `json:"n2o"`
	PM25 *float64 `json:"pm25"`

	BatteryLevel *float64 `json:"battery_level"`
}

var readingRequestSchema = z.Struct(z.Shape{
	"SensorType": z.String().Required().OneOf(common.Mapper(models.SensorTypes, func(t models.SensorType) string {
		return string(t)
	})),
	"DeviceID": z.String().Max(64),
})

func (rs *RestfulServer) PostReading(c *gin.Context) {
	farmID := c.Param("farm_id")

	if !rs.CheckFarmLimiter(farmID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req ReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errs := readingRequestSchema.Validate(&req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errs})
		return
	}

	if err := rs.Farm.Reading.IngestReading(farmID, &models.SensorReading{
		SensorType:      models.SensorType(req.SensorType),
		DeviceID:        req.DeviceID,
		Timestamp:       req.Timestamp,
		SoilPH:          req.SoilPH,
		SoilMoisture:    req.SoilMoisture,
		SoilTemperature: req.SoilTemperature,
		Nitrogen:        req.Nitrogen,
		Phosphorus:      req.Phosphorus,
		Potassium:       req.Potassium,
		OrganicCarbon:   req.OrganicCarbon,
		Temperature:     req.Temperature,
		Humidity:        req.Humidity,
		Pressure:        req.Pressure,
		WindSpeed:       req.WindSpeed,
		Rainfall:        req.Rainfall,
		CO2:             req.CO2,
		CH4:             req.CH4,
		N2O:             req.N2O,
		PM25:            req.PM25,
		BatteryLevel:    req.BatteryLevel,
	}); err != nil {
		rs.respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

type LiveReadingsQuery struct {
	Hours int `zog:"hours"`
}

var liveReadingsQuerySchema = z.Struct(z.Shape{
	"Hours": z.Int().Default(farm.DefaultLiveHours).GT(0).LTE(24 * 30),
})

func (rs *RestfulServer) GetLiveReadings(c *gin.Context) {
	farmID := c.Param("farm_id")

	if !rs.CheckFarmLimiter(farmID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var query LiveReadingsQuery
	if err := liveReadingsQuerySchema.Parse(zhttp.Request(c.Request), &query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	live, err := rs.Farm.Reading.GetLiveReadings(farmID, query.Hours)
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, live)
}

func (rs *RestfulServer) CalculateScore(c *gin.Context) {
	farmID := c.Param("farm_id")

	if !rs.CheckFarmLimiter(farmID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	score, err := rs.Farm.Score.CalculateAndStoreScore(farmID)
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, score)
}

func (rs *RestfulServer) GetLatestScore(c *gin.Context) {
	farmID := c.Param("farm_id")

	if !rs.CheckFarmLimiter(farmID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	score, err := rs.Farm.Score.GetLatestScore(farmID)
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, score)
}

type ScoreHistoryQuery struct {
	Limit int `zog:"limit"`
}

var scoreHistoryQuerySchema = z.Struct(z.Shape{
	"Limit": z.Int().Default(farm.DefaultScoreHistory).GT(0).LTE(farm.MaxScoreHistory),
})

func (rs *RestfulServer) GetScoreHistory(c *gin.Context) {
	farmID := c.Param("farm_id")

	if !rs.CheckFarmLimiter(farmID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var query ScoreHistoryQuery
	if err := scoreHistoryQuerySchema.Parse(zhttp.Request(c.Request), &query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	scores, err := rs.Farm.Score.GetScoreHistory(farmID, query.Limit)
	if err != nil {
		rs.respondError(c, err)
		return
	}
	if scores == nil {
		scores = []models.SustainabilityScore{}
	}

	c.JSON(http.StatusOK, scores)
}

type FireRiskRequest struct {
	Incidents []models.FireIncident `json:"incidents"`
}

// PostFireRisk accepts either a JSON incident list or a FIRMS CSV export.
func (rs *RestfulServer) PostFireRisk(c *gin.Context) {
	farmID := c.Param("farm_id")

	if !rs.CheckFarmLimiter(farmID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var incidents []models.FireIncident
	if c.ContentType() == "text/csv" {
		parsed, err := scoring.ParseFIRMSCSV(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		incidents = parsed
	} else {
		var req FireRiskRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		incidents = req.Incidents
	}

	assessment, err := rs.Farm.Fire.AssessAndStoreFireRisk(farmID, incidents)
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, assessment)
}

func (rs *RestfulServer) GetLatestFireRisk(c *gin.Context) {
	farmID := c.Param("farm_id")

	if !rs.CheckFarmLimiter(farmID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	assessment, err := rs.Farm.Fire.GetLatestFireRisk(farmID)
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, assessment)
}

func (rs *RestfulServer) GetDashboard(c *gin.Context) {
	farmID := c.Param("farm_id")

	if !rs.CheckFarmLimiter(farmID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	dashboard, err := rs.Farm.Dashboard.GetDashboard(farmID)
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

func (rs *RestfulServer) RunBatchScoring(c *gin.Context) {
	report, err := rs.Farm.Score.ScoreAllFarms(c.Request.Context())
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	farmID := c.Param("farm_id")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(farmID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
