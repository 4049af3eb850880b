package scheduler

import (
	"fmt"

	"session-booking-backend/internal/service"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Scheduler runs periodic occurrence generation in-process. Deployments
// that generate through the HTTP entry point leave the schedule empty.
type Scheduler struct {
	cron       *cron.Cron
	generation service.GenerationServiceInterface
	horizon    service.Horizon
}

// New creates a scheduler that invokes occurrence generation on the given
// cron schedule.
func New(generation service.GenerationServiceInterface, daysAhead int) *Scheduler {
	return &Scheduler{
		cron:       cron.New(),
		generation: generation,
		horizon:    service.Horizon{DaysAhead: daysAhead},
	}
}

// Start registers the generation job and starts the cron loop. The first
// run happens at the first matching schedule tick, not immediately.
func (s *Scheduler) Start(schedule string) error {
	if schedule == "" {
		return fmt.Errorf("empty cron schedule")
	}

	_, err := s.cron.AddFunc(schedule, s.runGeneration)
	if err != nil {
		return fmt.Errorf("failed to register generation job: %w", err)
	}

	s.cron.Start()
	logrus.WithField("schedule", schedule).Info("Occurrence generation scheduler started")
	return nil
}

// Stop stops the cron loop, waiting for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logrus.Info("Occurrence generation scheduler stopped")
}

func (s *Scheduler) runGeneration() {
	created, err := s.generation.GenerateAll(s.horizon)
	if err != nil {
		logrus.WithError(err).Error("Scheduled occurrence generation failed")
		return
	}
	logrus.WithField("occurrences_created", created).Info("Scheduled occurrence generation completed")
}
