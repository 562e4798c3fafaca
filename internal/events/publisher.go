package events

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
)

// Publisher emits assessment events.
type Publisher interface {
	PublishCompleted(ctx context.Context, evt AssessmentCompleted) error
}

// NoopPublisher drops every event.
type NoopPublisher struct{}

// PublishCompleted performs no action.
func (NoopPublisher) PublishCompleted(context.Context, AssessmentCompleted) error { return nil }

// MessageWriter is the subset of kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes completion events to a single topic.
type KafkaPublisher struct {
	writer MessageWriter
}

// NewKafkaPublisher creates a KafkaPublisher writing to topic.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return NewPublisherWithWriter(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		RequiredAcks:           kafka.RequireAll,
		Compression:            kafka.Snappy,
		AllowAutoTopicCreation: true,
	})
}

// NewPublisherWithWriter wraps an already configured writer.
func NewPublisherWithWriter(w MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: w}
}

// PublishCompleted writes the event keyed by session so a session's events stay ordered.
func (p *KafkaPublisher) PublishCompleted(ctx context.Context, evt AssessmentCompleted) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte(evt.SessionID),
		Value:   payload,
		Time:    evt.CompletedAt,
		Headers: []kafka.Header{{Key: HeaderEventType, Value: []byte(TypeAssessmentCompleted)}},
	})
}

// Close flushes and releases the writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
