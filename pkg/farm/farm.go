package farm

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"liyu1981.xyz/farm-sustainability-service/pkg/common"
	"liyu1981.xyz/farm-sustainability-service/pkg/db"
	"liyu1981.xyz/farm-sustainability-service/pkg/events"
	"liyu1981.xyz/farm-sustainability-service/pkg/models"
	"liyu1981.xyz/farm-sustainability-service/pkg/observability"
	"liyu1981.xyz/farm-sustainability-service/pkg/scoring"
)

const (
	DefaultLookbackDays = 7
	DefaultWorkers      = 4

	publishTimeout = 5 * time.Second
)

type IProfile interface {
	UpsertFarm(farmID string, input *models.Farm) error
	GetFarm(farmID string) (*models.Farm, error)
	ListFarms() ([]models.Farm, error)
}

type IReading interface {
	IngestReading(farmID string, input *models.SensorReading) error
	GetLiveReadings(farmID string, hours int) (*models.LiveReadings, error)
}

type IScore interface {
	CalculateAndStoreScore(farmID string) (*models.SustainabilityScore, error)
	GetLatestScore(farmID string) (*models.SustainabilityScore, error)
	GetScoreHistory(farmID string, limit int) ([]models.SustainabilityScore, error)
	ScoreAllFarms(ctx context.Context) (*models.BatchReport, error)
}

type IFire interface {
	AssessAndStoreFireRisk(farmID string, incidents []models.FireIncident) (*models.FireRiskAssessment, error)
	GetLatestFireRisk(farmID string) (*models.FireRiskAssessment, error)
}

type IDashboard interface {
	GetDashboard(farmID string) (*models.Dashboard, error)
}

// Farm is the service layer between the scoring engine and storage.
type Farm struct {
	Db        db.DB
	Engine    *scoring.Engine
	Clock     clockwork.Clock
	Publisher events.Publisher
	Metrics   *observability.Metrics

	LookbackDays int
	Workers      int
	FireTiering  string

	Profile   IProfile
	Reading   IReading
	Score     IScore
	Fire      IFire
	Dashboard IDashboard
}

type ServiceOpts struct {
	Profile   IProfile
	Reading   IReading
	Score     IScore
	Fire      IFire
	Dashboard IDashboard
}

func (f *Farm) WithServices(opts ServiceOpts) *Farm {
	if opts.Profile != nil {
		f.Profile = opts.Profile
	}
	if opts.Reading != nil {
		f.Reading = opts.Reading
	}
	if opts.Score != nil {
		f.Score = opts.Score
	}
	if opts.Fire != nil {
		f.Fire = opts.Fire
	}
	if opts.Dashboard != nil {
		f.Dashboard = opts.Dashboard
	}
	return f
}

// WithDefaultServices wires every sub-service to this Farm's own implementation.
func (f *Farm) WithDefaultServices() *Farm {
	return f.WithServices(ServiceOpts{
		Profile:   f.GetIProfile(),
		Reading:   f.GetIReading(),
		Score:     f.GetIScore(),
		Fire:      f.GetIFire(),
		Dashboard: f.GetIDashboard(),
	})
}

func (f *Farm) now() time.Time {
	if f.Clock == nil {
		return time.Now().UTC()
	}
	return f.Clock.Now().UTC()
}

func (f *Farm) lookbackDays() int {
	if f.LookbackDays <= 0 {
		return DefaultLookbackDays
	}
	return f.LookbackDays
}

func (f *Farm) workers() int {
	if f.Workers <= 0 {
		return DefaultWorkers
	}
	return f.Workers
}

// publish hands records to the publisher. Failures are logged and counted,
// never returned.
func (f *Farm) publish(ctx context.Context, records ...events.Record) {
	if f.Publisher == nil || len(records) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := f.Publisher.Publish(ctx, records...); err != nil {
		logger := common.GetCategoryLogger(common.LoggerNameFarmCore, common.LoggerCategoryPublish)
		logger.Warn("Failed to publish records", zap.Int("count", len(records)), zap.Error(err))
		if f.Metrics != nil {
			f.Metrics.PublishErrors.Add(float64(len(records)))
		}
	}
}
