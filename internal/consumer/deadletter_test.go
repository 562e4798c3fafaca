package consumer

import (
	"context"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error { return nil }

type recordingDeadLetter struct {
	reasons []string
}

func (d *recordingDeadLetter) Write(_ context.Context, _ Message, reason string) error {
	d.reasons = append(d.reasons, reason)
	return nil
}

func TestKafkaDeadLetterPreservesMessage(t *testing.T) {
	writer := &recordingWriter{}
	dl := &KafkaDeadLetter{writer: writer}

	err := dl.Write(context.Background(), Message{
		Topic:   "assessment_events",
		Offset:  42,
		Key:     []byte("session-1"),
		Payload: []byte(`{"broken":true}`),
		Headers: map[string]string{"event_type": "assessment.completed"},
	}, "invalid assessment event")
	require.NoError(t, err)
	require.Len(t, writer.msgs, 1)

	got := writer.msgs[0]
	require.Equal(t, []byte("session-1"), got.Key)
	require.JSONEq(t, `{"broken":true}`, string(got.Value))

	headers := make(map[string]string, len(got.Headers))
	for _, h := range got.Headers {
		headers[h.Key] = string(h.Value)
	}
	require.Equal(t, "assessment.completed", headers["event_type"])
	require.Equal(t, "invalid assessment event", headers[HeaderDLQReason])
	require.Equal(t, "assessment_events", headers[HeaderDLQSourceTopic])
	require.Equal(t, "42", headers[HeaderDLQSourceOffset])
}

func TestKafkaDeadLetterPropagatesWriteError(t *testing.T) {
	dl := &KafkaDeadLetter{writer: &recordingWriter{err: errors.New("broker down")}}

	err := dl.Write(context.Background(), Message{Topic: "assessment_events"}, "reason")
	require.Error(t, err)
}

func TestProcessorDeadLettersRejectedMessages(t *testing.T) {
	reader := &stubReader{
		msgs: []kafka.Message{
			{Topic: "assessment_events", Offset: 1, Value: []byte(`{"session_id":"s-1","activity_level":"active"}`)},
			{Topic: "assessment_events", Offset: 2, Value: []byte(`not json`)},
		},
		errAfter: context.Canceled,
	}
	dl := &recordingDeadLetter{}

	err := NewProcessor(reader, NewInsightsHandler(), WithDeadLetter(dl)).Run(context.Background())
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 2, reader.commitCount)
	require.Len(t, dl.reasons, 1)
	require.Contains(t, dl.reasons[0], "decode assessment event")
}
