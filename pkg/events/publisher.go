package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"liyu1981.xyz/farm-sustainability-service/pkg/common"
	"liyu1981.xyz/farm-sustainability-service/pkg/models"
)

const (
	RecordTypeScore    = "sustainability_score"
	RecordTypeFireRisk = "fire_risk_assessment"

	HeaderRecordType   = "record_type"
	HeaderCalculatedAt = "calculated_at"
)

// Record is one computed result handed to downstream consumers.
type Record struct {
	Type         string
	FarmID       string
	CalculatedAt time.Time
	Payload      any
}

func ScoreRecord(score *models.SustainabilityScore) Record {
	return Record{
		Type:         RecordTypeScore,
		FarmID:       score.FarmID,
		CalculatedAt: score.Timestamp,
		Payload:      score,
	}
}

func FireRiskRecord(assessment *models.FireRiskAssessment) Record {
	return Record{
		Type:         RecordTypeFireRisk,
		FarmID:       assessment.FarmID,
		CalculatedAt: assessment.Timestamp,
		Payload:      assessment,
	}
}

type Publisher interface {
	Publish(ctx context.Context, records ...Record) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// KafkaPublisher produces records to a single topic keyed by farm id, so all
// records of a farm land on the same partition.
type KafkaPublisher struct {
	writer messageWriter
	topic  string
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &KafkaPublisher{writer: w, topic: topic}
}

func (p *KafkaPublisher) Publish(ctx context.Context, records ...Record) error {
	if len(records) == 0 {
		return nil
	}
	logger := common.GetCategoryLogger(common.LoggerNameEvents, common.LoggerCategoryPublish)

	msgs := make([]kafkago.Message, len(records))
	for i := range records {
		msg, err := serializeToMessage(records[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("publish %d records to %s: %w", len(msgs), p.topic, err)
	}

	logger.Debug("Published records", zap.String("topic", p.topic), zap.Int("count", len(msgs)))
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops every record. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, ...Record) error { return nil }

func (NopPublisher) Close() error { return nil }

func serializeToMessage(record Record) (kafkago.Message, error) {
	data, err := json.Marshal(record.Payload)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize %s record: %w", record.Type, err)
	}
	return kafkago.Message{
		Key:   []byte(record.FarmID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: HeaderRecordType, Value: []byte(record.Type)},
			{Key: HeaderCalculatedAt, Value: []byte(record.CalculatedAt.UTC().Format(time.RFC3339))},
		},
	}, nil
}
