// Package scheduler wires up the cron job that periodically rolls stale
// catalog deadlines forward to the next cycle.
package scheduler

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/tsmith/scholarship-finder/internal/catalog"
)

// Scheduler wraps robfig/cron and manages the maintenance loop.
type Scheduler struct {
	cron  *cron.Cron
	store *catalog.Store
	spec  string // cron spec, e.g. "@every 24h"
}

// New creates a Scheduler that fires every intervalHours hours.
func New(store *catalog.Store, intervalHours int) *Scheduler {
	return &Scheduler{
		cron:  cron.New(cron.WithLogger(cron.DefaultLogger)),
		store: store,
		spec:  fmt.Sprintf("@every %dh", intervalHours),
	}
}

// Start registers the job and starts the scheduler. Also runs one pass
// immediately so a stale catalog is fixed without waiting for the first
// tick.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, s.runRollover)
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	log.Printf("[scheduler] Cron started with spec %s", s.spec)

	// Run immediately on startup (non-blocking)
	go s.runRollover()

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[scheduler] Cron stopped")
}

// runRollover advances past deadlines and logs what changed.
func (s *Scheduler) runRollover() {
	log.Println("[scheduler] Rollover pass started")

	changes, err := s.store.Rollover(time.Now())
	if err != nil {
		log.Printf("[scheduler] Rollover error: %v", err)
		return
	}
	if len(changes) == 0 {
		log.Println("[scheduler] No stale deadlines")
		return
	}

	for _, ch := range changes {
		log.Printf("[scheduler] %s: %s -> %s", ch.Name, ch.Old, ch.New)
	}
	log.Printf("[scheduler] Rollover pass complete, %d deadline(s) advanced", len(changes))
}
