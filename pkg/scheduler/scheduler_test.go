package scheduler

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"liyu1981.xyz/farm-sustainability-service/pkg/common"
	"liyu1981.xyz/farm-sustainability-service/pkg/observability"
	_ "liyu1981.xyz/farm-sustainability-service/pkg/testing"
)

func waitFor(t *testing.T, ch <-chan string) string {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for job")
		return ""
	}
}

func TestJobScheduler_RunsJobsOnTick(t *testing.T) {
	common.SetTestLoggerNop()

	clock := clockwork.NewFakeClock()
	metrics := observability.NewMetricsForTesting()
	s := NewJobScheduler("scores", time.Hour, clock)
	s.Metrics = metrics

	ran := make(chan string, 10)
	s.AddJob(Job{Name: "first", Run: func(context.Context) error { ran <- "first"; return nil }})
	s.AddJob(Job{Name: "second", Run: func(context.Context) error { ran <- "second"; return nil }})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	assert.Empty(t, ran)

	clock.Advance(time.Hour)
	assert.Equal(t, "first", waitFor(t, ran))
	assert.Equal(t, "second", waitFor(t, ran))

	clock.Advance(time.Hour)
	assert.Equal(t, "first", waitFor(t, ran))
	assert.Equal(t, "second", waitFor(t, ran))

	cancel()
	<-done
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.SchedulerRuns))
}

func TestJobScheduler_FailingJobDoesNotStopOthers(t *testing.T) {
	var buf bytes.Buffer
	common.SetTestCaptureLogger(&buf, zapcore.ErrorLevel)

	clock := clockwork.NewFakeClock()
	s := NewJobScheduler("scores", time.Minute, clock)

	ran := make(chan string, 10)
	s.AddJob(Job{Name: "broken", Run: func(context.Context) error { return errors.New("db locked") }})
	s.AddJob(Job{Name: "healthy", Run: func(context.Context) error { ran <- "healthy"; return nil }})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	clock.Advance(time.Minute)
	assert.Equal(t, "healthy", waitFor(t, ran))

	assert.Contains(t, buf.String(), "Scheduled job failed")
	assert.Contains(t, buf.String(), "db locked")
}

func TestNewJobScheduler_DefaultsToRealClock(t *testing.T) {
	s := NewJobScheduler("x", time.Second, nil)
	assert.NotNil(t, s.Clock)
}
