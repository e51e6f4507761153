package events

import (
	"context"
	"errors"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"liyu1981.xyz/farm-sustainability-service/pkg/common"
	"liyu1981.xyz/farm-sustainability-service/pkg/models"
	_ "liyu1981.xyz/farm-sustainability-service/pkg/testing"
)

type fakeWriter struct {
	written []kafkago.Message
	err     error
	closed  bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	if w.err != nil {
		return w.err
	}
	w.written = append(w.written, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestSerializeToMessage(t *testing.T) {
	now := time.Date(2024, 4, 26, 15, 10, 0, 0, time.UTC)
	score := &models.SustainabilityScore{
		ID:           "FARM001_20240426T151000000000",
		FarmID:       "FARM001",
		OverallScore: 812,
		Grade:        "A-",
		Components: datatypes.NewJSONType(models.ComponentScores{
			models.ComponentSoilHealth: {Name: models.ComponentSoilHealth, Value: 92},
		}),
		Recommendations: datatypes.NewJSONType([]string{"Excellent work! Continue current practices"}),
		Timestamp:       now,
	}

	msg, err := serializeToMessage(ScoreRecord(score))
	require.NoError(t, err)

	assert.Equal(t, []byte("FARM001"), msg.Key)
	assert.Contains(t, string(msg.Value), `"overall_score":812`)
	assert.Contains(t, string(msg.Value), `"soil_health":{"name":"soil_health","value":92}`)
	assert.Len(t, msg.Headers, 2)
	assert.Equal(t, HeaderRecordType, msg.Headers[0].Key)
	assert.Equal(t, []byte(RecordTypeScore), msg.Headers[0].Value)
	assert.Equal(t, HeaderCalculatedAt, msg.Headers[1].Key)
	assert.Equal(t, []byte(now.Format(time.RFC3339)), msg.Headers[1].Value)
}

func TestSerializeToMessage_FireRisk(t *testing.T) {
	assessment := &models.FireRiskAssessment{
		FarmID:    "FARM002",
		RiskLevel: models.RiskLow,
		Timestamp: time.Date(2024, 4, 26, 0, 0, 0, 0, time.UTC),
	}

	msg, err := serializeToMessage(FireRiskRecord(assessment))
	require.NoError(t, err)

	assert.Equal(t, []byte("FARM002"), msg.Key)
	assert.Contains(t, string(msg.Value), `"closest_distance_km":null`)
	assert.Equal(t, []byte(RecordTypeFireRisk), msg.Headers[0].Value)
}

func TestSerializeToMessage_Unmarshalable(t *testing.T) {
	_, err := serializeToMessage(Record{Type: "broken", Payload: make(chan int)})
	assert.ErrorContains(t, err, "serialize broken record")
}

func TestKafkaPublisher_Publish(t *testing.T) {
	common.SetTestLoggerNop()

	writer := &fakeWriter{}
	publisher := &KafkaPublisher{writer: writer, topic: "farm-sustainability-records"}

	require.NoError(t, publisher.Publish(context.Background()))
	assert.Empty(t, writer.written)

	records := []Record{
		ScoreRecord(&models.SustainabilityScore{FarmID: "A"}),
		FireRiskRecord(&models.FireRiskAssessment{FarmID: "B", RiskLevel: models.RiskHigh}),
	}
	require.NoError(t, publisher.Publish(context.Background(), records...))
	require.Len(t, writer.written, 2)
	assert.Equal(t, []byte("A"), writer.written[0].Key)
	assert.Equal(t, []byte("B"), writer.written[1].Key)

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	common.SetTestLoggerNop()

	errBroker := errors.New("broker down")
	publisher := &KafkaPublisher{writer: &fakeWriter{err: errBroker}, topic: "t"}

	err := publisher.Publish(context.Background(), ScoreRecord(&models.SustainabilityScore{FarmID: "A"}))
	assert.ErrorIs(t, err, errBroker)
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), Record{}))
	assert.NoError(t, p.Close())
}
