package events

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SlavaShagalov/car-rental-orders/internal/models"
)

var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeWriter struct {
	errs     []error
	messages []kafka.Message
	calls    int
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.calls++
	if len(w.errs) > 0 {
		err := w.errs[0]
		w.errs = w.errs[1:]
		if err != nil {
			return err
		}
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

type fakeReader struct {
	msg     kafka.Message
	err     error
	offsets []int64
}

func (r *fakeReader) ReadMessage(context.Context) (kafka.Message, error) {
	return r.msg, r.err
}

func (r *fakeReader) SetOffset(offset int64) error {
	r.offsets = append(r.offsets, offset)
	return nil
}

type fakeSaver struct {
	err   error
	saved []models.RentalEvent
}

func (s *fakeSaver) SaveEvent(_ context.Context, event models.RentalEvent) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, event)
	return nil
}

func rentalEvent() models.RentalEvent {
	userID, carID, price := 3, 7, int64(300000)
	return models.NewRentalEvent(models.EventRentalCompleted, models.Rental{
		ID:         11,
		UserID:     &userID,
		CarID:      &carID,
		TotalPrice: &price,
		Status:     models.RentalCompleted,
	}, time.Date(2024, time.January, 3, 10, 0, 0, 0, time.UTC))
}

func TestPublish(t *testing.T) {
	t.Run("keys message by event id", func(t *testing.T) {
		writer := &fakeWriter{}
		bus := NewKafkaEvents(nil, writer, nil, logger)

		require.NoError(t, bus.Publish(context.Background(), rentalEvent()))
		require.Len(t, writer.messages, 1)

		var got models.RentalEvent
		require.NoError(t, json.Unmarshal(writer.messages[0].Value, &got))
		assert.NotEmpty(t, got.ID)
		assert.Equal(t, got.ID, string(writer.messages[0].Key))
		assert.Equal(t, models.EventRentalCompleted, got.Type)
		assert.Equal(t, 11, got.RentalID)
		assert.Equal(t, int64(300000), *got.TotalPrice)
	})

	t.Run("retries unknown topic once", func(t *testing.T) {
		writer := &fakeWriter{errs: []error{kafka.UnknownTopicOrPartition}}
		bus := NewKafkaEvents(nil, writer, nil, logger, WithTopicWait(time.Millisecond))

		require.NoError(t, bus.Publish(context.Background(), rentalEvent()))
		assert.Equal(t, 2, writer.calls)
		assert.Len(t, writer.messages, 1)
	})

	t.Run("topic wait honours context", func(t *testing.T) {
		writer := &fakeWriter{errs: []error{kafka.UnknownTopicOrPartition}}
		bus := NewKafkaEvents(nil, writer, nil, logger, WithTopicWait(time.Hour))

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		started := time.Now()
		err := bus.Publish(ctx, rentalEvent())
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(started), time.Second)
		assert.Equal(t, 1, writer.calls)
	})

	t.Run("breaker opens after consecutive failures", func(t *testing.T) {
		failure := errors.New("broker down")
		writer := &fakeWriter{errs: []error{failure, failure}}
		bus := NewKafkaEvents(nil, writer, nil, logger, WithBreaker(2, time.Minute))

		assert.ErrorIs(t, bus.Publish(context.Background(), rentalEvent()), failure)
		assert.ErrorIs(t, bus.Publish(context.Background(), rentalEvent()), failure)
		assert.ErrorIs(t, bus.Publish(context.Background(), rentalEvent()), gobreaker.ErrOpenState)
		assert.Equal(t, 2, writer.calls)
	})

	t.Run("no writer", func(t *testing.T) {
		bus := NewKafkaEvents(nil, nil, nil, logger)
		assert.Equal(t, ErrNoWriter, bus.Publish(context.Background(), rentalEvent()))
	})
}

func TestConsume(t *testing.T) {
	payload, err := json.Marshal(rentalEvent())
	require.NoError(t, err)

	t.Run("stores event", func(t *testing.T) {
		reader := &fakeReader{msg: kafka.Message{Key: []byte("3f1c"), Value: payload, Offset: 42}}
		saver := &fakeSaver{}
		bus := NewKafkaEvents(reader, nil, saver, logger)

		require.NoError(t, bus.Consume(context.Background()))
		require.Len(t, saver.saved, 1)
		assert.Equal(t, "3f1c", saver.saved[0].ID)
		assert.Equal(t, 11, saver.saved[0].RentalID)
		assert.Empty(t, reader.offsets)
	})

	t.Run("rewinds when store fails", func(t *testing.T) {
		reader := &fakeReader{msg: kafka.Message{Key: []byte("3f1c"), Value: payload, Offset: 42}}
		failure := errors.New("db down")
		bus := NewKafkaEvents(reader, nil, &fakeSaver{err: failure}, logger)

		err := bus.Consume(context.Background())
		assert.ErrorIs(t, err, failure)
		assert.Equal(t, []int64{42}, reader.offsets)
	})

	t.Run("skips malformed message", func(t *testing.T) {
		reader := &fakeReader{msg: kafka.Message{Value: []byte("not json"), Offset: 43}}
		saver := &fakeSaver{}
		bus := NewKafkaEvents(reader, nil, saver, logger)

		assert.Error(t, bus.Consume(context.Background()))
		assert.Empty(t, reader.offsets)
		assert.Empty(t, saver.saved)
	})

	t.Run("read failure", func(t *testing.T) {
		failure := errors.New("connection reset")
		bus := NewKafkaEvents(&fakeReader{err: failure}, nil, &fakeSaver{}, logger)
		assert.ErrorIs(t, bus.Consume(context.Background()), failure)
	})
}
