package repository

import (
	"context"

	"WebHub/internal/domain/models"
	"WebHub/internal/domain/repository"
)

// eventPublisher is satisfied by *pkg/kafka.Producer.
type eventPublisher interface {
	Publish(ctx context.Context, topic string, key []byte, value interface{}) error
	Close() error
}

// KafkaJournal publishes every lookup event to a topic. It cannot read back.
type KafkaJournal struct {
	producer eventPublisher
	topic    string
}

// NewKafkaJournal creates Kafka journal.
func NewKafkaJournal(producer eventPublisher, topic string) *KafkaJournal {
	return &KafkaJournal{producer: producer, topic: topic}
}

// Append keys the message by symbol, or by query when nothing resolved.
func (j *KafkaJournal) Append(ctx context.Context, e *models.LookupEvent) error {
	key := e.Symbol
	if key == "" {
		key = e.Query
	}
	return j.producer.Publish(ctx, j.topic, []byte(key), e)
}

func (j *KafkaJournal) Close() error {
	if j.producer != nil {
		return j.producer.Close()
	}
	return nil
}

var _ repository.Journal = (*KafkaJournal)(nil)
