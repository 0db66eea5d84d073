package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"AOSocial/internal/ports"
)

// CronScheduler runs a job on a cron expression in a fixed time zone.
type CronScheduler struct {
	spec     string
	location *time.Location

	mu   sync.Mutex
	cron *cron.Cron
	done chan struct{}
}

var _ ports.Scheduler = (*CronScheduler)(nil)

// NewCronScheduler builds a scheduler configured via cron expression string.
func NewCronScheduler(spec string, loc *time.Location) *CronScheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &CronScheduler{spec: spec, location: loc}
}

// Start runs job once immediately and then on every tick of the expression,
// until ctx is done or Stop is called. Starting twice is a no-op.
func (c *CronScheduler) Start(ctx context.Context, job func(time.Time)) error {
	if job == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cron != nil {
		return nil
	}

	cr := cron.New(cron.WithLocation(c.location))
	if _, err := cr.AddFunc(c.spec, func() { job(time.Now().In(c.location)) }); err != nil {
		return fmt.Errorf("schedule %q: %w", c.spec, err)
	}
	c.cron = cr
	c.done = make(chan struct{})

	go job(time.Now().In(c.location))
	cr.Start()

	go func(done <-chan struct{}) {
		select {
		case <-ctx.Done():
			_ = c.Stop(context.Background())
		case <-done:
		}
	}(c.done)

	return nil
}

// Stop halts the cron loop and waits for a running job to finish or ctx to end.
func (c *CronScheduler) Stop(ctx context.Context) error {
	c.mu.Lock()
	cr, done := c.cron, c.done
	c.cron, c.done = nil, nil
	c.mu.Unlock()

	if cr == nil {
		return nil
	}
	close(done)

	select {
	case <-cr.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
