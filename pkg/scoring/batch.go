package scoring

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"liyu1981.xyz/farm-sustainability-service/pkg/common"
	"liyu1981.xyz/farm-sustainability-service/pkg/models"
)

// SnapshotSource fetches the windows for one farm.
type SnapshotSource interface {
	Snapshot(farmID string) (Snapshot, error)
}

// FarmFailure records a farm that produced no score in a batch.
type FarmFailure struct {
	FarmID string
	Err    error
}

func (f FarmFailure) Error() string {
	return fmt.Sprintf("farm %s: %v", f.FarmID, f.Err)
}

func (f FarmFailure) Unwrap() error {
	return f.Err
}

type BatchResult struct {
	Scores   []*models.SustainabilityScore
	Failures []FarmFailure
}

// ScoreFarm fetches and scores a single farm. A panic anywhere in the chain is
// returned as an error.
func (e *Engine) ScoreFarm(source SnapshotSource, farmID string) (score *models.SustainabilityScore, err error) {
	defer func() {
		if r := recover(); r != nil {
			score = nil
			err = fmt.Errorf("panic while scoring: %v", r)
		}
	}()

	snapshot, err := source.Snapshot(farmID)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	if snapshot.FarmID == "" {
		snapshot.FarmID = farmID
	}
	return e.Score(snapshot), nil
}

// ScoreBatch scores every farm with at most workers farms in flight. Farms
// that fail are reported in Failures and never stop the others. Both slices
// keep the order of farmIDs.
func (e *Engine) ScoreBatch(farmIDs []string, source SnapshotSource, workers int) BatchResult {
	logger := common.GetCategoryLogger(common.LoggerNameScoring, common.LoggerCategoryBatch)

	if workers < 1 {
		workers = 1
	}

	scores := make([]*models.SustainabilityScore, len(farmIDs))
	errs := make([]error, len(farmIDs))

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, farmID := range farmIDs {
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			scores[i], errs[i] = e.ScoreFarm(source, farmID)
		}()
	}
	wg.Wait()

	var result BatchResult
	for i, farmID := range farmIDs {
		if errs[i] != nil {
			logger.Error("No score produced for farm", zap.String("farm_id", farmID), zap.Error(errs[i]))
			result.Failures = append(result.Failures, FarmFailure{FarmID: farmID, Err: errs[i]})
			continue
		}
		result.Scores = append(result.Scores, scores[i])
	}

	logger.Info("Batch scored",
		zap.Int("farms", len(farmIDs)),
		zap.Int("scored", len(result.Scores)),
		zap.Int("failed", len(result.Failures)),
	)
	return result
}
