package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"liyu1981.xyz/farm-sustainability-service/pkg/farm/mocks"
	_ "liyu1981.xyz/farm-sustainability-service/pkg/testing"

	"liyu1981.xyz/farm-sustainability-service/pkg/common"
	"liyu1981.xyz/farm-sustainability-service/pkg/db"
	"liyu1981.xyz/farm-sustainability-service/pkg/farm"
	"liyu1981.xyz/farm-sustainability-service/pkg/models"
	"liyu1981.xyz/farm-sustainability-service/pkg/observability"
	"liyu1981.xyz/farm-sustainability-service/pkg/scoring"
)

func setupTestServerWithLimiter(t *testing.T, limiter *farm.RateLimiterStore) *RestfulServer {
	engine, err := scoring.NewEngine(scoring.DefaultConfig())
	require.NoError(t, err)

	registry := prometheus.NewRegistry()
	metrics := observability.NewMetricsWithRegistry(registry)

	farmObj := &farm.Farm{
		Db:      *db.GetInstance(db.UseMemorySqliteDialector()),
		Engine:  engine,
		Metrics: metrics,
	}
	farmObj.WithDefaultServices()

	rs := &RestfulServer{
		Server:           gin.Default(),
		Farm:             farmObj,
		RateLimiterStore: limiter,
		Metrics:          metrics,
		Gatherer:         registry,
	}

	rs.Setup()

	return rs
}

func setupTestServer(t *testing.T) *RestfulServer {
	// default we use no limiter, if need, use setupTestServerWithLimiter
	return setupTestServerWithLimiter(t, nil)
}

func doJSON(rs *RestfulServer, method, path string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Reader
	switch p := payload.(type) {
	case nil:
		body = bytes.NewReader(nil)
	case []byte:
		body = bytes.NewReader(p)
	default:
		raw, _ := json.Marshal(p)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	return w
}

func createFarm(t *testing.T, rs *RestfulServer) string {
	t.Helper()
	farmID := uuid.NewString()
	w := doJSON(rs, http.MethodPost, "/farms/"+farmID, FarmRequest{
		Name:      "Farm " + farmID[:8],
		Latitude:  17.6868,
		Longitude: 83.2185,
		Crop:      "rice",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return farmID
}

func TestHealthCheck(t *testing.T) {
	rs := setupTestServer(t)

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	rs.Server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	farmID := createFarm(t, rs)

	w := doJSON(rs, http.MethodPost, "/farms/"+farmID+"/readings", map[string]any{"sensor_type": "soil", "soil_ph": 6.5})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(rs, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `farm_sustainability_readings_ingested_total{sensor_type="soil"} 1`)
}

func TestUpsertAndListFarms(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	farmID := createFarm(t, rs)

	w := doJSON(rs, http.MethodPost, "/farms/"+farmID, FarmRequest{
		Name:      "Renamed",
		Latitude:  18.0,
		Longitude: 83.0,
		SoilType:  "loam",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(rs, http.MethodGet, "/farms", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var farms []models.Farm
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &farms))

	var found *models.Farm
	for i := range farms {
		if farms[i].ID == farmID {
			found = &farms[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "Renamed", found.Name)
	assert.Equal(t, "loam", found.SoilType)
	assert.Equal(t, 18.0, found.Latitude)
}

func TestUpsertFarm_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	{
		rs := setupTestServer(t)
		// empty payload should be rejected
		w := doJSON(rs, http.MethodPost, "/farms/"+uuid.NewString(), []byte("{}"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	{
		rs := setupTestServer(t)
		// latitude out of range
		w := doJSON(rs, http.MethodPost, "/farms/"+uuid.NewString(), map[string]any{
			"name": "Bad", "latitude": 120.0, "longitude": 83.0,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	{
		rs := setupTestServer(t)
		farmID := uuid.NewString()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockIProfile := mocks.NewMockIProfile(ctrl)
		rs.Farm.Profile = mockIProfile
		mockIProfile.EXPECT().
			UpsertFarm(gomock.Eq(farmID), gomock.Any()).
			Return(fmt.Errorf("just causing error")).
			Times(1)

		w := doJSON(rs, http.MethodPost, "/farms/"+farmID, FarmRequest{Name: "X", Latitude: 1, Longitude: 1})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	}
}

func TestPostReadingAndGetLiveReadings(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	farmID := createFarm(t, rs)
	now := time.Now().UTC()

	w := doJSON(rs, http.MethodPost, "/farms/"+farmID+"/readings", map[string]any{
		"sensor_type":   "soil",
		"timestamp":     now.Add(-time.Hour).Format(time.RFC3339Nano),
		"soil_ph":       6.4,
		"soil_moisture": 45.0,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(rs, http.MethodPost, "/farms/"+farmID+"/readings", map[string]any{
		"sensor_type": "weather",
		"temperature": 29.5,
		"humidity":    70.0,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(rs, http.MethodGet, "/farms/"+farmID+"/readings/live", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var live models.LiveReadings
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &live))
	assert.Equal(t, farmID, live.FarmID)
	assert.Equal(t, farm.DefaultLiveHours, live.Hours)
	assert.Equal(t, int64(2), live.TotalCount)
	require.Len(t, live.SensorReadings, 1)
	assert.Equal(t, 6.4, *live.SensorReadings[0].SoilPH)
	require.Len(t, live.WeatherReadings, 1)
	assert.Equal(t, 29.5, *live.WeatherReadings[0].Temperature)

	w = doJSON(rs, http.MethodGet, "/farms/"+farmID+"/readings/live?hours=48", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &live))
	assert.Equal(t, 48, live.Hours)
}

func TestPostReading_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	farmID := createFarm(t, rs)

	{
		// missing sensor type
		w := doJSON(rs, http.MethodPost, "/farms/"+farmID+"/readings", []byte(`{"soil_ph": 6.5}`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	{
		// unknown sensor type
		w := doJSON(rs, http.MethodPost, "/farms/"+farmID+"/readings", []byte(`{"sensor_type": "lidar"}`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	{
		// not json
		w := doJSON(rs, http.MethodPost, "/farms/"+farmID+"/readings", []byte(`soil=1`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	{
		// unknown farm
		w := doJSON(rs, http.MethodPost, "/farms/"+uuid.NewString()+"/readings", []byte(`{"sensor_type": "soil"}`))
		assert.Equal(t, http.StatusNotFound, w.Code)
	}

	{
		w := doJSON(rs, http.MethodGet, "/farms/"+farmID+"/readings/live?hours=-5", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	{
		w := doJSON(rs, http.MethodGet, "/farms/"+uuid.NewString()+"/readings/live", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	}
}

func TestScoreEndpoints(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	farmID := createFarm(t, rs)

	w := doJSON(rs, http.MethodGet, "/farms/"+farmID+"/score", nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "no score yet")

	w = doJSON(rs, http.MethodPost, "/farms/"+farmID+"/score", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var score models.SustainabilityScore
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &score))
	assert.Equal(t, farmID, score.FarmID)
	assert.Equal(t, 733, score.OverallScore)
	assert.Equal(t, models.Grade("B"), score.Grade)
	assert.Equal(t, scoring.CalculationMethodCanonical, score.CalculationMethod)
	soil, ok := score.Component(models.ComponentSoilHealth)
	require.True(t, ok)
	assert.Equal(t, scoring.DefaultSoilHealthScore, soil)

	w = doJSON(rs, http.MethodGet, "/farms/"+farmID+"/score", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var latest models.SustainabilityScore
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &latest))
	assert.Equal(t, score.ID, latest.ID)

	w = doJSON(rs, http.MethodGet, "/farms/"+farmID+"/scores?limit=5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var history []models.SustainabilityScore
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	require.Len(t, history, 1)
	assert.Equal(t, score.ID, history[0].ID)

	w = doJSON(rs, http.MethodGet, "/farms/"+farmID+"/scores?limit=1000", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(rs, http.MethodGet, "/farms/"+uuid.NewString()+"/scores", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = doJSON(rs, http.MethodPost, "/farms/"+uuid.NewString()+"/score", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRunBatchScoring(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	farmID := createFarm(t, rs)

	w := doJSON(rs, http.MethodPost, "/scores/run", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var report models.BatchReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.GreaterOrEqual(t, report.Farms, 1)

	latest, err := rs.Farm.Score.GetLatestScore(farmID)
	require.NoError(t, err)
	assert.Contains(t, report.ScoreIDs, latest.ID)

	{
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockIScore := mocks.NewMockIScore(ctrl)
		rs.Farm.Score = mockIScore
		mockIScore.EXPECT().
			ScoreAllFarms(gomock.Any()).
			Return(nil, fmt.Errorf("just causing error")).
			Times(1)

		w := doJSON(rs, http.MethodPost, "/scores/run", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	}
}

func TestFireRiskEndpoints(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	farmID := createFarm(t, rs)

	w := doJSON(rs, http.MethodGet, "/farms/"+farmID+"/fire-risk", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// numbers and strings are both accepted; the malformed incident is skipped
	w = doJSON(rs, http.MethodPost, "/farms/"+farmID+"/fire-risk", []byte(`{"incidents": [
		{"latitude": 17.99, "longitude": "83.2185", "confidence": 40},
		{"latitude": "bad", "longitude": 83.2, "confidence": 99}
	]}`))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var assessment models.FireRiskAssessment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &assessment))
	assert.Equal(t, models.RiskModerate, assessment.RiskLevel)
	assert.Equal(t, 1, assessment.NearbyCount)

	csvBody := strings.Join([]string{
		"latitude,longitude,bright_ti4,scan,track,acq_date,acq_time,satellite,confidence",
		"17.7048,83.2185,330.1,0.4,0.4,2024-04-26,0745,N,95",
		"17.70",
	}, "\n")
	req := httptest.NewRequest(http.MethodPost, "/farms/"+farmID+"/fire-risk", strings.NewReader(csvBody))
	req.Header.Set("Content-Type", "text/csv; charset=utf-8")
	w = httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &assessment))
	assert.Equal(t, models.RiskCritical, assessment.RiskLevel)
	assert.Equal(t, 1, assessment.HighConfidenceCount)

	w = doJSON(rs, http.MethodGet, "/farms/"+farmID+"/fire-risk", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var latest models.FireRiskAssessment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &latest))
	assert.Equal(t, assessment.ID, latest.ID)

	w = doJSON(rs, http.MethodPost, "/farms/"+farmID+"/fire-risk", []byte(`{"incidents": 3}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(rs, http.MethodPost, "/farms/"+uuid.NewString()+"/fire-risk", []byte(`{"incidents": []}`))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetDashboard(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	farmID := createFarm(t, rs)

	w := doJSON(rs, http.MethodGet, "/farms/"+farmID+"/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var dashboard models.Dashboard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dashboard))
	assert.Equal(t, farm.DefaultDashboardScore, dashboard.SustainabilityScore)
	assert.Equal(t, farm.DefaultDashboardGrade, dashboard.Grade)
	assert.Empty(t, dashboard.ActiveAlerts)

	w = doJSON(rs, http.MethodGet, "/farms/"+uuid.NewString()+"/dashboard", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPostReadingWithLimiter(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServerWithLimiter(t, farm.NewRateLimiterStore(2, 2)) // 2 req/sec, burst 2

	farmID := uuid.NewString()
	require.NoError(t, rs.Farm.Profile.UpsertFarm(farmID, &models.Farm{Name: "Limited", Latitude: 1, Longitude: 1}))

	readingReqBody := []byte(`{"sensor_type": "air_quality", "co2": 410}`)

	// Simulate 3 requests in quick succession, only 2 should be allowed
	for i := range 3 {
		w := doJSON(rs, http.MethodPost, "/farms/"+farmID+"/readings", readingReqBody)

		if i < 2 {
			require.Equal(t, http.StatusOK, w.Code, "request %d should be allowed", i+1)
		} else {
			require.Equal(t, http.StatusTooManyRequests, w.Code, "request %d should be rate limited", i+1)
		}
	}
	assert.Equal(t, 1.0, testutil.ToFloat64(rs.Metrics.RateLimited))

	w := doJSON(rs, http.MethodPost, "/farms/"+farmID+"/limiter", LimiterRequest{Rate: 2, Burst: 2})
	require.Equal(t, http.StatusOK, w.Code, "limiter request should be allowed")

	w = doJSON(rs, http.MethodPost, "/farms/"+farmID+"/readings", readingReqBody)
	require.Equal(t, http.StatusOK, w.Code, "request after limiter reset should be allowed")
}

func TestPostLimiter_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServerWithLimiter(t, farm.NewRateLimiterStore(2, 2))

	// empty payload should be rejected
	w := doJSON(rs, http.MethodPost, "/farms/"+uuid.NewString()+"/limiter", []byte("{}"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLimiter(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServerWithLimiter(t, farm.NewRateLimiterStore(0, 0))

	farmID := uuid.NewString()

	// nothing should pass below
	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/farms/" + farmID + "/readings"},
		{http.MethodGet, "/farms/" + farmID + "/readings/live"},
		{http.MethodPost, "/farms/" + farmID + "/score"},
		{http.MethodGet, "/farms/" + farmID + "/score"},
		{http.MethodGet, "/farms/" + farmID + "/scores"},
		{http.MethodPost, "/farms/" + farmID + "/fire-risk"},
		{http.MethodGet, "/farms/" + farmID + "/fire-risk"},
		{http.MethodGet, "/farms/" + farmID + "/dashboard"},
	} {
		w := doJSON(rs, tc.method, tc.path, nil)
		assert.Equal(t, http.StatusTooManyRequests, w.Code, "%s %s", tc.method, tc.path)
	}
	assert.Equal(t, 8.0, testutil.ToFloat64(rs.Metrics.RateLimited))
}

func TestSetLimiter_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t) // default without limiter store

	farmID := createFarm(t, rs)

	{
		// without limiter store setup limiter should be allowed and just return ok (but no effect)
		w := doJSON(rs, http.MethodPost, "/farms/"+farmID+"/limiter", LimiterRequest{Rate: 2, Burst: 2})
		require.Equal(t, http.StatusOK, w.Code, "limiter request should be allowed")
	}

	{
		// and requests keep flowing instead of too many requests
		for range 5 {
			w := doJSON(rs, http.MethodGet, "/farms/"+farmID+"/dashboard", nil)
			require.Equal(t, http.StatusOK, w.Code)
		}
	}
}
