// Package scheduler fires the fixed reminder broadcasts.
package scheduler

import (
	"context"
	"time"

	"coursefiles/internal/domain"

	"go.uber.org/zap"
)

// Broadcaster fans one message out to every registered user.
type Broadcaster interface {
	SendToAll(text string) error
}

// Scheduler waits for the next reminder trigger and hands the message to
// the broadcaster. The broadcast itself runs on its own goroutine so a slow
// pass never delays the following trigger.
type Scheduler struct {
	jobs        []domain.ReminderJob
	broadcaster Broadcaster
	logger      *zap.Logger
	now         func() time.Time
}

// New creates a scheduler over a fixed job list.
func New(jobs []domain.ReminderJob, broadcaster Broadcaster, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		jobs:        jobs,
		broadcaster: broadcaster,
		logger:      logger,
		now:         time.Now,
	}
}

// DefaultJobs returns the statically defined reminder set: two daily
// reminders and one weekly recap.
func DefaultJobs() []domain.ReminderJob {
	friday := time.Friday
	return []domain.ReminderJob{
		{
			Name:    "morning_reminder",
			Hour:    9,
			Minute:  0,
			Message: "🌅 Good morning! Your course files are ready — send /start to browse them.",
		},
		{
			Name:    "evening_reminder",
			Hour:    19,
			Minute:  0,
			Message: "📚 Evening study time! Open the bot and pick up where you left off.",
		},
		{
			Name:    "weekly_recap",
			Hour:    12,
			Minute:  0,
			Weekday: &friday,
			Message: "🗓 End of the week — a good moment to review this week's materials.",
		},
	}
}

// Run blocks until ctx is cancelled, firing jobs at their trigger times.
func (s *Scheduler) Run(ctx context.Context) {
	if len(s.jobs) == 0 {
		s.logger.Warn("Scheduler started with no jobs")
		return
	}

	s.logger.Info("Reminder scheduler started", zap.Int("jobs", len(s.jobs)))

	for {
		job, fireAt := s.nextJob()
		timer := time.NewTimer(fireAt.Sub(s.now()))

		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info("Reminder scheduler stopped")
			return
		case <-timer.C:
			s.logger.Info("Reminder triggered",
				zap.String("job", job.Name),
				zap.Time("fired_at", fireAt),
			)
			go s.broadcast(job)
		}
	}
}

// nextJob picks the job with the earliest upcoming trigger.
func (s *Scheduler) nextJob() (domain.ReminderJob, time.Time) {
	now := s.now()
	job := s.jobs[0]
	fireAt := job.Next(now)
	for _, candidate := range s.jobs[1:] {
		if next := candidate.Next(now); next.Before(fireAt) {
			job = candidate
			fireAt = next
		}
	}
	return job, fireAt
}

func (s *Scheduler) broadcast(job domain.ReminderJob) {
	if err := s.broadcaster.SendToAll(job.Message); err != nil {
		s.logger.Error("Reminder broadcast failed",
			zap.String("job", job.Name),
			zap.Error(err),
		)
	}
}
