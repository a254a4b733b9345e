package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"

	"github.com/SlavaShagalov/car-rental-orders/internal/models"
)

type EventsError string

func (e EventsError) Error() string {
	return string(e)
}

const (
	ErrNoWriter EventsError = "events have no writer"
	ErrNoReader EventsError = "events have no reader"
	ErrNoSaver  EventsError = "events have no saver"
)

const (
	defaultMaxFailures = 5
	defaultOpenTimeout = 30 * time.Second
	defaultTopicWait   = 5 * time.Second
)

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type Reader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	SetOffset(offset int64) error
}

type Saver interface {
	SaveEvent(ctx context.Context, event models.RentalEvent) error
}

type KafkaEvents struct {
	reader    Reader
	writer    Writer
	repo      Saver
	logger    *slog.Logger
	breaker   *gobreaker.CircuitBreaker[struct{}]
	topicWait time.Duration
	settings  gobreaker.Settings
}

type Option func(e *KafkaEvents)

// WithBreaker opens the breaker after maxFailures consecutive publish
// failures and keeps it open for timeout.
func WithBreaker(maxFailures uint32, timeout time.Duration) Option {
	return func(e *KafkaEvents) {
		e.settings.ReadyToTrip = tripAfter(maxFailures)
		e.settings.Timeout = timeout
	}
}

// WithTopicWait sets how long Publish waits for an auto-created topic. The
// wait ends early when the publish context is done.
func WithTopicWait(wait time.Duration) Option {
	return func(e *KafkaEvents) {
		e.topicWait = wait
	}
}

// NewKafkaEvents creates the rental event bus. The publisher side needs only
// writer, the consumer side needs reader and repo.
func NewKafkaEvents(reader Reader, writer Writer, repo Saver, logger *slog.Logger, opts ...Option) *KafkaEvents {
	e := &KafkaEvents{
		reader:    reader,
		writer:    writer,
		repo:      repo,
		logger:    logger,
		topicWait: defaultTopicWait,
		settings: gobreaker.Settings{
			Name:        "rental-events",
			Timeout:     defaultOpenTimeout,
			ReadyToTrip: tripAfter(defaultMaxFailures),
		},
	}

	for _, opt := range opts {
		opt(e)
	}

	e.settings.OnStateChange = func(name string, from, to gobreaker.State) {
		logger.Warn("circuit breaker state changed",
			slog.String("name", name),
			slog.String("from", from.String()),
			slog.String("to", to.String()),
		)
	}
	e.breaker = gobreaker.NewCircuitBreaker[struct{}](e.settings)

	return e
}

func tripAfter(maxFailures uint32) func(counts gobreaker.Counts) bool {
	return func(counts gobreaker.Counts) bool {
		return counts.ConsecutiveFailures >= maxFailures
	}
}

func (e *KafkaEvents) Publish(ctx context.Context, event models.RentalEvent) error {
	if e.writer == nil {
		return ErrNoWriter
	}

	if event.ID == "" {
		event.ID = uuid.New().String()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "marshal rental event")
	}

	msg := kafka.Message{
		Key:   []byte(event.ID),
		Value: payload,
	}
	e.logger.Debug("write message to kafka...",
		slog.String("type", string(event.Type)),
		slog.String("key", event.ID),
	)

	_, err = e.breaker.Execute(func() (struct{}, error) {
		err := e.writer.WriteMessages(ctx, msg)
		if errors.Is(err, kafka.UnknownTopicOrPartition) {
			// wait for auto creating topic
			select {
			case <-ctx.Done():
				return struct{}{}, errors.Wrap(ctx.Err(), "wait for topic")
			case <-time.After(e.topicWait):
			}
			err = e.writer.WriteMessages(ctx, msg)
		}
		return struct{}{}, err
	})

	return err
}

// Consume reads one message and stores its event. When storing fails the
// reader is rewound so the message is read again.
func (e *KafkaEvents) Consume(ctx context.Context) (err error) {
	if e.reader == nil {
		return ErrNoReader
	}
	if e.repo == nil {
		return ErrNoSaver
	}

	msg, err := e.reader.ReadMessage(ctx)
	if err != nil {
		return err
	}

	e.logger.Debug("read message from kafka",
		slog.String("topic", msg.Topic),
		slog.Int("partition", msg.Partition),
		slog.Int64("offset", msg.Offset),
		slog.String("key", string(msg.Key)),
	)

	var event models.RentalEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		// malformed messages are skipped
		return errors.Wrap(err, "unmarshal rental event")
	}
	if event.ID == "" {
		event.ID = string(msg.Key)
	}

	defer func() {
		if err != nil {
			err = multierror.Append(err, e.reader.SetOffset(msg.Offset))
		}
	}()

	return e.repo.SaveEvent(ctx, event)
}
