package farm

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"liyu1981.xyz/farm-sustainability-service/pkg/common"
	"liyu1981.xyz/farm-sustainability-service/pkg/models"
	"liyu1981.xyz/farm-sustainability-service/pkg/scoring"
	_ "liyu1981.xyz/farm-sustainability-service/pkg/testing"
)

func TestAssessAndStoreFireRisk(t *testing.T) {
	var buf bytes.Buffer
	common.SetTestCaptureLogger(&buf, zapcore.InfoLevel)

	ctrl, farmObj, _, _, _ := GetMockFarmWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	clock := newTestClock()
	farmObj.Clock = clock
	farmID := createTestFarm(t, farmObj)

	// ~2 km north of the farm, and one far away in another state
	incidents := []models.FireIncident{
		{Latitude: "17.7048", Longitude: "83.2185", Confidence: "60"},
		{Latitude: "28.61", Longitude: "77.20", Confidence: "99"},
	}

	assessment, err := farmObj.Fire.AssessAndStoreFireRisk(farmID, incidents)
	require.NoError(t, err)

	assert.Equal(t, models.RiskCritical, assessment.RiskLevel)
	assert.Equal(t, 1, assessment.NearbyCount)
	assert.Equal(t, 0, assessment.HighConfidenceCount)
	require.NotNil(t, assessment.ClosestDistanceKm)
	assert.Equal(t, 2.0, *assessment.ClosestDistanceKm)
	assert.Equal(t, scoring.FireRecommendations[models.RiskCritical], assessment.Recommendation)
	assert.Equal(t, scoring.TieringProximity, assessment.TieringMethod)
	assert.Equal(t, models.RecordID(farmID, clock.Now()), assessment.ID)
	assert.Equal(t, 1.0, testutil.ToFloat64(farmObj.Metrics.FireAssessments.WithLabelValues("critical")))

	stored, err := farmObj.Fire.GetLatestFireRisk(farmID)
	require.NoError(t, err)
	assert.Equal(t, assessment.ID, stored.ID)
	assert.Equal(t, models.RiskCritical, stored.RiskLevel)

	logs := ParseLogs(&buf)
	found := false
	for _, log := range logs {
		entry := log.(map[string]any)
		if entry["msg"] == "Fire risk saved" {
			found = true
			assert.Equal(t, common.LoggerCategoryFire, entry["category"])
			assert.Equal(t, assessment.ID, entry["id"])
		}
	}
	assert.True(t, found, "expected a fire risk saved log entry")
}

func TestAssessAndStoreFireRisk_Tiers(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, farmObj, _, _, _ := GetMockFarmWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	clock := newTestClock()
	farmObj.Clock = clock
	farmID := createTestFarm(t, farmObj)

	tests := []struct {
		name      string
		incidents []models.FireIncident
		expected  models.RiskLevel
	}{
		{"no incidents", nil, models.RiskLow},
		{
			"malformed only",
			[]models.FireIncident{{Latitude: "n/a", Longitude: "83.2", Confidence: "90"}},
			models.RiskLow,
		},
		{
			// ~33 km away, low confidence
			"distant low confidence",
			[]models.FireIncident{{Latitude: "17.99", Longitude: "83.2185", Confidence: "40"}},
			models.RiskModerate,
		},
		{
			"distant high confidence",
			[]models.FireIncident{{Latitude: "17.99", Longitude: "83.2185", Confidence: "80"}},
			models.RiskHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock.Advance(time.Second)
			assessment, err := farmObj.Fire.AssessAndStoreFireRisk(farmID, tt.incidents)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, assessment.RiskLevel)

			latest, err := farmObj.Fire.GetLatestFireRisk(farmID)
			require.NoError(t, err)
			assert.Equal(t, assessment.ID, latest.ID)
		})
	}
}

func TestAssessAndStoreFireRisk_CountTiering(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, farmObj, _, _, _ := GetMockFarmWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	farmObj.Clock = newTestClock()
	farmObj.FireTiering = common.FireTieringCount
	farmID := createTestFarm(t, farmObj)

	incidents := make([]models.FireIncident, 6)
	for i := range incidents {
		incidents[i] = models.FireIncident{Latitude: "28.61", Longitude: "77.20", Confidence: "10"}
	}

	assessment, err := farmObj.Fire.AssessAndStoreFireRisk(farmID, incidents)
	require.NoError(t, err)
	assert.Equal(t, models.RiskHigh, assessment.RiskLevel, "count tiering ignores distance")
	assert.Equal(t, 6, assessment.NearbyCount)
	assert.Nil(t, assessment.ClosestDistanceKm)
	assert.Equal(t, scoring.TieringCount, assessment.TieringMethod)
}

func TestAssessAndStoreFireRisk_NotFound(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, farmObj, _, _, _ := GetMockFarmWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	_, err := farmObj.Fire.AssessAndStoreFireRisk(uuid.NewString(), nil)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	_, err = farmObj.Fire.GetLatestFireRisk(uuid.NewString())
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestFireService_Mocked(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, farmObj, _, _, mockIFire := GetMockFarmWithMemorySqliteDialector(t, false, false, true)
	defer ctrl.Finish()

	farmID := uuid.NewString()
	mockIFire.EXPECT().
		GetLatestFireRisk(gomock.Eq(farmID)).
		Return(&models.FireRiskAssessment{FarmID: farmID, RiskLevel: models.RiskHigh}, nil).
		Times(1)

	assessment, err := farmObj.Fire.GetLatestFireRisk(farmID)
	require.NoError(t, err)
	assert.Equal(t, models.RiskHigh, assessment.RiskLevel)
}
