package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
)

const overdueRunTimeout = time.Minute

type OverdueNotifier interface {
	NotifyOverdue(ctx context.Context) (int, error)
}

// Scheduler runs periodic rental jobs. Schedules use the standard cron
// format or descriptors such as @daily, evaluated in UTC.
type Scheduler struct {
	cron     *cron.Cron
	notifier OverdueNotifier
	logger   *slog.Logger
}

func NewScheduler(overdueSchedule string, notifier OverdueNotifier, logger *slog.Logger) (*Scheduler, error) {
	cronLogger := slogCronLogger{logger: logger}
	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		notifier: notifier,
		logger:   logger,
	}

	if _, err := s.cron.AddFunc(overdueSchedule, s.notifyOverdue); err != nil {
		return nil, errors.Wrap(err, "register overdue job")
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.logger.Info("starting cron scheduler...", slog.Int("jobs", len(s.cron.Entries())))
	s.cron.Start()
}

// Stop waits for running jobs to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	select {
	case <-s.cron.Stop().Done():
		s.logger.Info("cron scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) notifyOverdue() {
	ctx, cancel := context.WithTimeout(context.Background(), overdueRunTimeout)
	defer cancel()

	count, err := s.notifier.NotifyOverdue(ctx)
	if err != nil {
		s.logger.Error("overdue job failed", slog.String("error", err.Error()))
		return
	}

	s.logger.Info("overdue job finished", slog.Int("overdue", count))
}

type slogCronLogger struct {
	logger *slog.Logger
}

func (l slogCronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l slogCronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, append(keysAndValues, "error", err.Error())...)
}
