package farm

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"liyu1981.xyz/farm-sustainability-service/pkg/db"
	"liyu1981.xyz/farm-sustainability-service/pkg/farm/mocks"
	"liyu1981.xyz/farm-sustainability-service/pkg/models"
	"liyu1981.xyz/farm-sustainability-service/pkg/observability"
	"liyu1981.xyz/farm-sustainability-service/pkg/scoring"
)

func GetMockFarmWithMemorySqliteDialector(t *testing.T, useMockIProfile, useMockIScore, useMockIFire bool) (
	*gomock.Controller,
	*Farm,
	*mocks.MockIProfile,
	*mocks.MockIScore,
	*mocks.MockIFire,
) {
	ctrl := gomock.NewController(t)

	mockIProfile := mocks.NewMockIProfile(ctrl)
	mockIScore := mocks.NewMockIScore(ctrl)
	mockIFire := mocks.NewMockIFire(ctrl)

	engine, err := scoring.NewEngine(scoring.DefaultConfig())
	require.NoError(t, err)

	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	farmInstance := &Farm{
		Db:      *dbInstance,
		Engine:  engine,
		Metrics: observability.NewMetricsForTesting(),
	}
	farmInstance.WithDefaultServices()

	opts := ServiceOpts{}
	if useMockIProfile {
		opts.Profile = mockIProfile
	}
	if useMockIScore {
		opts.Score = mockIScore
	}
	if useMockIFire {
		opts.Fire = mockIFire
	}
	farmInstance.WithServices(opts)

	return ctrl, farmInstance, mockIProfile, mockIScore, mockIFire
}

// newTestClock starts a fake clock at the current wall time so record ids
// never collide with those written by other tests on the shared database.
func newTestClock() *clockwork.FakeClock {
	return clockwork.NewFakeClockAt(time.Now().UTC().Truncate(time.Microsecond))
}

// createTestFarm stores a farm near Visakhapatnam under a fresh id.
func createTestFarm(t *testing.T, f *Farm) string {
	t.Helper()
	farmID := uuid.NewString()
	require.NoError(t, f.Profile.UpsertFarm(farmID, &models.Farm{
		Name:      "Test Farm " + farmID[:8],
		Latitude:  17.6868,
		Longitude: 83.2185,
		Crop:      "rice",
	}))
	return farmID
}

func ptr(v float64) *float64 {
	return &v
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
