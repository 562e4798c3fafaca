// Package consumer streams assessment events from Kafka into aggregate metrics.
package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

// Reader describes the kafka.Reader functions the processor interacts with.
type Reader interface {
	FetchMessage(context.Context) (kafka.Message, error)
	CommitMessages(context.Context, ...kafka.Message) error
	Close() error
}

// Handler processes decoded Kafka messages.
type Handler interface {
	Handle(context.Context, Message) error
}

// Message represents a decoded Kafka record.
type Message struct {
	Topic     string
	Partition int
	Offset    int64
	Key       []byte
	Payload   json.RawMessage
	Timestamp time.Time
	Headers   map[string]string
}

// Option configures processor behaviour.
type Option func(*Processor)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Processor) { p.logger = l }
}

// WithFetchBackoff sets the pause after a failed fetch.
func WithFetchBackoff(d time.Duration) Option {
	return func(p *Processor) { p.backoff = d }
}

// WithDeadLetter forwards rejected messages before they are committed.
func WithDeadLetter(d DeadLetter) Option {
	return func(p *Processor) { p.deadLetter = d }
}

// Processor coordinates the consumer loop.
type Processor struct {
	reader     Reader
	handler    Handler
	deadLetter DeadLetter
	logger     *slog.Logger
	backoff    time.Duration
}

// NewProcessor constructs a processor from a reader/handler pair.
func NewProcessor(reader Reader, handler Handler, opts ...Option) *Processor {
	p := &Processor{reader: reader, handler: handler, logger: slog.Default(), backoff: time.Second}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run consumes messages until ctx cancellation. Every fetched message is
// committed, including those the handler rejects.
func (p *Processor) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		msg, err := p.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			p.logger.Warn("fetch failed", "error", err)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(p.backoff):
			}
			continue
		}

		decoded := decode(msg)
		if err := p.handler.Handle(ctx, decoded); err != nil {
			recordFailed(decoded)
			p.logger.Warn("handler failed", "topic", msg.Topic, "offset", msg.Offset, "error", err)
			if p.deadLetter != nil {
				if dlErr := p.deadLetter.Write(ctx, decoded, err.Error()); dlErr != nil {
					p.logger.Error("dead-letter write failed", "topic", msg.Topic, "offset", msg.Offset, "error", dlErr)
				}
			}
		} else {
			recordProcessed(decoded)
			p.logger.Debug("processed", "topic", msg.Topic, "offset", msg.Offset)
		}

		if err := p.reader.CommitMessages(ctx, msg); err != nil {
			p.logger.Warn("commit failed", "topic", msg.Topic, "offset", msg.Offset, "error", err)
		}
	}
}

func decode(msg kafka.Message) Message {
	decoded := Message{
		Topic:     msg.Topic,
		Partition: msg.Partition,
		Offset:    msg.Offset,
		Key:       msg.Key,
		Payload:   append(json.RawMessage{}, msg.Value...),
		Timestamp: msg.Time,
		Headers:   make(map[string]string, len(msg.Headers)),
	}
	for _, header := range msg.Headers {
		decoded.Headers[header.Key] = string(header.Value)
	}
	return decoded
}
