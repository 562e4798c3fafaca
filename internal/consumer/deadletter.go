package consumer

import (
	"context"
	"strconv"

	"github.com/segmentio/kafka-go"
)

// Dead-letter headers added to a rejected message.
const (
	HeaderDLQReason       = "dlq_reason"
	HeaderDLQSourceTopic  = "dlq_source_topic"
	HeaderDLQSourceOffset = "dlq_source_offset"
)

// DeadLetter records messages the handler rejected.
type DeadLetter interface {
	Write(ctx context.Context, msg Message, reason string) error
}

// MessageWriter is the subset of kafka.Writer used by KafkaDeadLetter.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaDeadLetter forwards rejected messages to a dead-letter topic, keeping
// the original key, payload and headers.
type KafkaDeadLetter struct {
	writer MessageWriter
}

// NewKafkaDeadLetter writes to topic on brokers.
func NewKafkaDeadLetter(brokers []string, topic string) *KafkaDeadLetter {
	return &KafkaDeadLetter{writer: &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}}
}

// Write implements DeadLetter.
func (d *KafkaDeadLetter) Write(ctx context.Context, msg Message, reason string) error {
	headers := make([]kafka.Header, 0, len(msg.Headers)+3)
	for k, v := range msg.Headers {
		headers = append(headers, kafka.Header{Key: k, Value: []byte(v)})
	}
	headers = append(headers,
		kafka.Header{Key: HeaderDLQReason, Value: []byte(reason)},
		kafka.Header{Key: HeaderDLQSourceTopic, Value: []byte(msg.Topic)},
		kafka.Header{Key: HeaderDLQSourceOffset, Value: []byte(strconv.FormatInt(msg.Offset, 10))},
	)
	if err := d.writer.WriteMessages(ctx, kafka.Message{
		Key:     msg.Key,
		Value:   msg.Payload,
		Headers: headers,
	}); err != nil {
		return err
	}
	recordDeadLettered(msg)
	return nil
}

// Close releases the writer.
func (d *KafkaDeadLetter) Close() error {
	return d.writer.Close()
}
