// Package poller periodically re-fetches weather data, diffs it against the
// last known observation, and emits one named event per changed attribute.
package poller

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/voice-weather/internal/events"
	"github.com/i474232898/voice-weather/internal/weather"
)

// Fetcher is the slice of the weather gateway the poller needs.
type Fetcher interface {
	Fetch(ctx context.Context, place, unit string) (weather.Snapshot, error)
}

// Recorder receives every successful cycle's observation, e.g. the
// in-memory history the automation conditions read.
type Recorder interface {
	Append(obs Observation)
}

// Poller drives the change-detection cycle on a fixed interval.
type Poller struct {
	scheduler *gocron.Scheduler
	fetcher   Fetcher
	bus       *events.Bus
	recorder  Recorder
	place     string
	unit      string
	interval  time.Duration

	mu   sync.Mutex
	last Observation
}

// New creates a Poller for one place. recorder may be nil.
func New(fetcher Fetcher, bus *events.Bus, recorder Recorder, place, unit string, interval time.Duration) *Poller {
	return &Poller{
		scheduler: gocron.NewScheduler(time.UTC),
		fetcher:   fetcher,
		bus:       bus,
		recorder:  recorder,
		place:     place,
		unit:      unit,
		interval:  interval,
	}
}

// Start schedules the periodic cycle. The poller never stops on its own; it
// runs until Stop is called at shutdown.
func (p *Poller) Start() error {
	seconds := int(p.interval.Seconds())
	if seconds <= 0 {
		seconds = 60
	}

	if _, err := p.scheduler.Every(seconds).Seconds().Do(p.cycle); err != nil {
		return err
	}
	p.scheduler.StartAsync()
	return nil
}

// Stop cancels future cycles.
func (p *Poller) Stop() {
	if p.scheduler != nil {
		p.scheduler.Stop()
	}
}

// Last returns the most recent observation, if any cycle has succeeded yet.
func (p *Poller) Last() (Observation, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last, p.last.Scalars != nil
}

// cycle runs one fetch/diff/emit round. A failed fetch is logged and
// skipped: no events fire and the previous observation stays the baseline
// for the next diff, so a recovery cycle only reports real changes.
func (p *Poller) cycle() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	snap, err := p.fetcher.Fetch(ctx, p.place, p.unit)
	if err != nil {
		log.Printf("poller: fetch failed for %s: %v", p.place, err)
		return
	}

	next := Reduce(snap)

	p.mu.Lock()
	changes := Diff(p.last, next)
	p.last = next
	p.mu.Unlock()

	for _, c := range changes {
		log.Printf("poller: %s changed to %s", c.Name, c.Value)
		p.bus.Emit(c.Name, c.Value)
	}

	if p.recorder != nil {
		p.recorder.Append(next)
	}
}

// RunCycle executes a single cycle immediately. It exists for callers that
// want a primed observation at startup without waiting a full interval.
func (p *Poller) RunCycle() {
	p.cycle()
}
