package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

func TestProcessorCommitsMessages(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	payload := json.RawMessage(`{"session_id":"s-1","activity_level":"active"}`)
	msg := kafka.Message{
		Topic:     "assessment_events",
		Partition: 0,
		Offset:    12,
		Value:     payload,
		Time:      time.Now().UTC(),
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("assessment.completed")},
		},
	}

	reader := &stubReader{msgs: []kafka.Message{msg}, errAfter: context.Canceled}
	handler := &RecordingHandler{}
	proc := NewProcessor(reader, handler)

	err := proc.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, handler.count)
	require.Equal(t, 1, reader.commitCount)
	require.Equal(t, "assessment.completed", handler.last.Headers["event_type"])
	require.JSONEq(t, string(payload), string(handler.last.Payload))
}

func TestProcessorCommitsRejectedMessages(t *testing.T) {
	msgs := []kafka.Message{
		{Topic: "assessment_events", Offset: 1, Value: []byte(`not json`)},
		{Topic: "assessment_events", Offset: 2, Value: []byte(`{}`)},
	}
	reader := &stubReader{msgs: msgs, errAfter: context.Canceled}
	handler := &RecordingHandler{err: errors.New("boom")}

	err := NewProcessor(reader, handler).Run(context.Background())
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 2, handler.count)
	require.Equal(t, 2, reader.commitCount)
}

func TestProcessorRetriesAfterFetchError(t *testing.T) {
	reader := &stubReader{
		msgs:     []kafka.Message{{Topic: "assessment_events", Offset: 3, Value: []byte(`{}`)}},
		failOnce: errors.New("broker unavailable"),
		errAfter: context.Canceled,
	}
	handler := &RecordingHandler{}

	err := NewProcessor(reader, handler, WithFetchBackoff(time.Millisecond)).Run(context.Background())
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, handler.count)
}

type stubReader struct {
	msgs        []kafka.Message
	idx         int
	commitCount int
	failOnce    error
	errAfter    error
}

func (r *stubReader) FetchMessage(context.Context) (kafka.Message, error) {
	if r.failOnce != nil {
		err := r.failOnce
		r.failOnce = nil
		return kafka.Message{}, err
	}
	if r.idx >= len(r.msgs) {
		return kafka.Message{}, r.errAfter
	}
	msg := r.msgs[r.idx]
	r.idx++
	return msg, nil
}

func (r *stubReader) CommitMessages(_ context.Context, _ ...kafka.Message) error {
	r.commitCount++
	return nil
}

func (r *stubReader) Close() error { return nil }

type RecordingHandler struct {
	count int
	last  Message
	err   error
}

var _ Handler = (*RecordingHandler)(nil)

func (h *RecordingHandler) Handle(_ context.Context, msg Message) error {
	h.count++
	h.last = msg
	return h.err
}
