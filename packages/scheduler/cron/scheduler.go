package cron

import (
	"log"
	"time"

	"scheduler/services"

	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cron               *cron.Cron
	propositionService *services.PropositionService
	retention          time.Duration
}

func NewScheduler(propositionService *services.PropositionService, retention time.Duration) *Scheduler {
	c := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(log.Default())))

	return &Scheduler{
		cron:               c,
		propositionService: propositionService,
		retention:          retention,
	}
}

// Start registers and starts the retention job. Runs nightly at 03:00.
func (s *Scheduler) Start() error {
	log.Println("Starting retention scheduler...")

	_, err := s.cron.AddFunc("0 3 * * *", s.runRetention)
	if err != nil {
		log.Printf("Error scheduling retention job: %v", err)
		return err
	}

	s.cron.Start()
	log.Println("Retention scheduler started successfully")

	return nil
}

// Stop gracefully shuts down the scheduler
func (s *Scheduler) Stop() {
	log.Println("Stopping retention scheduler...")
	s.cron.Stop()
	log.Println("Retention scheduler stopped")
}

// runRetention purges availability propositions older than the retention window
func (s *Scheduler) runRetention() {
	cutoff := time.Now().Add(-s.retention)
	log.Printf("Running proposition retention job (cutoff %s)...", cutoff.Format("2006-01-02"))

	purged, err := s.propositionService.PurgeOlderThan(cutoff)
	if err != nil {
		log.Printf("Error during proposition retention: %v", err)
		return
	}

	if purged == 0 {
		log.Println("No stale propositions to purge")
		return
	}

	log.Printf("Purged %d stale propositions", purged)
}

// RunNow manually triggers the retention job (useful for testing)
func (s *Scheduler) RunNow() {
	log.Println("Manually triggering retention job...")
	s.runRetention()
}
