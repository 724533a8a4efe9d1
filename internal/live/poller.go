// Package live polls the backend's live status on a fixed schedule.
package live

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"feeboard/internal/api"
	"feeboard/pkg/logging"
)

const subsystem = "LivePoller"

// DefaultInterval is the time between two polls.
const DefaultInterval = 3 * time.Second

// StatusSource fetches one live status snapshot.
type StatusSource interface {
	LiveStatus(ctx context.Context) (api.LiveStatus, error)
}

// Update is the outcome of one poll. Seq increases with every tick, so a
// consumer can drop a response that arrives after a newer one.
type Update struct {
	Seq    uint64
	At     time.Time
	Status api.LiveStatus
	Err    error
}

// Poller is a scheduled task: it polls immediately on Start and then once
// per interval until Stop. Each poll runs in its own goroutine so a slow
// response never delays the next tick.
type Poller struct {
	source   StatusSource
	interval time.Duration

	mu     sync.Mutex
	out    chan Update
	cancel context.CancelFunc
	done   chan struct{}
	seq    atomic.Uint64
}

// NewPoller creates a poller. A non-positive interval uses DefaultInterval.
func NewPoller(source StatusSource, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{source: source, interval: interval}
}

// Interval returns the time between two polls.
func (p *Poller) Interval() time.Duration {
	return p.interval
}

// Start launches the schedule and returns the update channel, which is
// closed after Stop. Calling Start again returns the same channel.
func (p *Poller) Start(ctx context.Context) <-chan Update {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.out != nil {
		return p.out
	}

	ctx, cancel := context.WithCancel(ctx)
	p.out = make(chan Update, 16)
	p.cancel = cancel
	p.done = make(chan struct{})

	go p.run(ctx)
	logging.Info(subsystem, "Polling live status every %s", p.interval)
	return p.out
}

func (p *Poller) run(ctx context.Context) {
	var inflight sync.WaitGroup
	defer func() {
		inflight.Wait()
		close(p.out)
		close(p.done)
	}()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.tick(ctx, &inflight)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.tick(ctx, &inflight)
		}
	}
}

func (p *Poller) tick(ctx context.Context, inflight *sync.WaitGroup) {
	seq := p.seq.Add(1)
	inflight.Add(1)
	go func() {
		defer inflight.Done()
		st, err := p.source.LiveStatus(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logging.Warn(subsystem, "Live status poll %d failed: %v", seq, err)
		} else {
			logging.Debug(subsystem, "Live status poll %d ok", seq)
		}
		select {
		case p.out <- Update{Seq: seq, At: time.Now(), Status: st, Err: err}:
		case <-ctx.Done():
		}
	}()
}

// Stop cancels the schedule, waits for in-flight polls and closes the
// update channel. It is safe to call more than once, or before Start.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}
