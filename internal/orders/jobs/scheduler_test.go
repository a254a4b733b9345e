package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeNotifier struct {
	calls chan struct{}
	err   error
}

func (n *fakeNotifier) NotifyOverdue(ctx context.Context) (int, error) {
	_, hasDeadline := ctx.Deadline()
	if !hasDeadline {
		return 0, errors.New("missing deadline")
	}
	n.calls <- struct{}{}
	return 2, n.err
}

func TestNewScheduler(t *testing.T) {
	for _, schedule := range []string{"@daily", "@every 1h", "0 3 * * *"} {
		s, err := NewScheduler(schedule, &fakeNotifier{}, logger)
		require.NoError(t, err, schedule)
		assert.Len(t, s.cron.Entries(), 1)
	}

	_, err := NewScheduler("every day", &fakeNotifier{}, logger)
	assert.Error(t, err)
}

func TestNotifyOverdue(t *testing.T) {
	notifier := &fakeNotifier{calls: make(chan struct{}, 1), err: errors.New("db down")}
	s, err := NewScheduler("@daily", notifier, logger)
	require.NoError(t, err)

	s.notifyOverdue()

	select {
	case <-notifier.calls:
	default:
		t.Fatal("notifier was not called")
	}
}

func TestStartStop(t *testing.T) {
	notifier := &fakeNotifier{calls: make(chan struct{}, 8)}
	s, err := NewScheduler("@every 1s", notifier, logger)
	require.NoError(t, err)

	s.Start()

	select {
	case <-notifier.calls:
	case <-time.After(3 * time.Second):
		t.Fatal("overdue job did not run")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, s.Stop(ctx))
}
