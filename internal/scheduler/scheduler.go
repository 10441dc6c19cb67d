// Package scheduler wires up the cron job that retires old postings.
// A posting past its expiry window is marked inactive, never deleted:
// the owner still sees it under their own listing.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/robfig/cron/v3"
)

// Scheduler wraps robfig/cron and manages the expiry sweep.
type Scheduler struct {
	cron       *cron.Cron
	pool       *pgxpool.Pool
	expiryDays int
}

// New creates a Scheduler that retires postings older than expiryDays.
func New(pool *pgxpool.Pool, expiryDays int) *Scheduler {
	return &Scheduler{
		cron:       cron.New(cron.WithLogger(cron.DefaultLogger)),
		pool:       pool,
		expiryDays: expiryDays,
	}
}

// Start registers the daily sweep and starts the scheduler. Also runs one
// sweep immediately so a restart does not leave stale postings visible
// until the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc("@every 24h", func() {
		s.runSweep(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	log.Printf("[scheduler] Cron started — postings expire after %d day(s)", s.expiryDays)

	// Run immediately on startup (non-blocking)
	go s.runSweep(ctx)

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[scheduler] Cron stopped")
}

// runSweep deactivates every active posting created before the cutoff.
func (s *Scheduler) runSweep(ctx context.Context) {
	cutoff := expiryCutoff(time.Now().UTC(), s.expiryDays)

	tag, err := s.pool.Exec(ctx,
		`UPDATE jobs SET is_active = false WHERE is_active AND created_at < $1`,
		cutoff)
	if err != nil {
		log.Printf("[scheduler] Expiry sweep error: %v", err)
		return
	}

	if n := tag.RowsAffected(); n > 0 {
		log.Printf("[scheduler] Retired %d expired posting(s)", n)
	}
}

// expiryCutoff returns the creation time before which a posting counts as
// expired.
func expiryCutoff(now time.Time, expiryDays int) time.Time {
	return now.AddDate(0, 0, -expiryDays)
}
