// Package collector owns the per-interface rate table and drives sampling.
//
// The collector is the dispatcher the monitoring host polls: every Get call
// checks whether the interface is due for a resample, and if so triggers one
// deadline-bounded entstat invocation that refreshes all four counter kinds
// at once. An interface whose sampler times out is disabled for the rest of
// the process lifetime and never sampled again.
package collector

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vios-tools/entmon/pkg/devices"
	"github.com/vios-tools/entmon/pkg/entstat"
	"github.com/vios-tools/entmon/pkg/rate"
)

// Disabled is the sentinel Get returns for an interface that has been
// isolated after a sampling timeout.
const Disabled = -1.0

// DefaultThreshold is the minimum interval in seconds between entstat
// invocations for one interface.
const DefaultThreshold = 5.0

// DefaultSampleTimeout bounds a single entstat invocation.
const DefaultSampleTimeout = 5 * time.Second

// Options configures a Collector.
type Options struct {
	// Threshold is the per-interface resample threshold in seconds.
	// DefaultThreshold when zero.
	Threshold float64

	// SampleTimeout bounds one sampler call. DefaultSampleTimeout when zero.
	SampleTimeout time.Duration

	Logger *logrus.Logger
}

// device is one interface record. enabled only ever transitions true to
// false; lastSample advances on every sample attempt.
type device struct {
	name         string
	enabled      bool
	threshold    float64
	lastSample   float64
	lastDuration time.Duration
}

// Collector holds the interface records and their rate states. All methods
// are safe for concurrent use; a single mutex serializes sampling, so one
// interface's in-flight sample delays another's getter by at most the
// sample timeout.
type Collector struct {
	mu      sync.Mutex
	sampler entstat.Sampler
	timeout time.Duration
	logger  *logrus.Logger
	clock   func() float64

	devs   []device
	states [][numKinds]rate.State
}

// New enumerates interfaces once and builds the fixed rate table. Each
// interface is sampled a first time to seed its raw counters, and its rates
// start at zero. Zero interfaces is not an error; the collector simply
// exposes nothing.
func New(enumerate devices.Enumerator, sampler entstat.Sampler, opts Options) (*Collector, error) {
	names, err := enumerate()
	if err != nil {
		return nil, err
	}

	if opts.Threshold <= 0 {
		opts.Threshold = DefaultThreshold
	}
	if opts.SampleTimeout <= 0 {
		opts.SampleTimeout = DefaultSampleTimeout
	}
	if opts.Logger == nil {
		opts.Logger = logrus.New()
	}

	start := time.Now()
	c := &Collector{
		sampler: sampler,
		timeout: opts.SampleTimeout,
		logger:  opts.Logger,
		clock:   func() float64 { return time.Since(start).Seconds() },
		devs:    make([]device, len(names)),
		states:  make([][numKinds]rate.State, len(names)),
	}
	for i, name := range names {
		c.devs[i] = device{name: name, enabled: true, threshold: opts.Threshold}
	}

	// Priming pass: seed the raw counters so the first real sample yields a
	// sane delta, then start every rate at zero.
	now := c.clock()
	for i := range c.devs {
		c.sampleLocked(i, 1.0, now)
		for k := range c.states[i] {
			c.states[i][k].LastRate = 0
		}
	}

	return c, nil
}

// Len returns the number of registered interfaces.
func (c *Collector) Len() int {
	return len(c.devs)
}

// Names returns the interface names in registration order.
func (c *Collector) Names() []string {
	names := make([]string, len(c.devs))
	for i := range c.devs {
		names[i] = c.devs[i].name
	}
	return names
}

// Enabled reports whether sampling is still active for the interface.
func (c *Collector) Enabled(index int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return index >= 0 && index < len(c.devs) && c.devs[index].enabled
}

// LastSampleDuration returns how long the interface's most recent sampler
// call took.
func (c *Collector) LastSampleDuration(index int) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.devs) {
		return 0
	}
	return c.devs[index].lastDuration
}

// Get returns the current rate for one interface and kind. When the
// interface is due, a single entstat invocation refreshes all four kinds so
// they always describe the same instant. A disabled interface yields
// Disabled without touching entstat, including on the call whose timeout
// disabled it.
func (c *Collector) Get(index int, kind Kind) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index >= len(c.devs) || kind < 0 || kind >= numKinds {
		return Disabled
	}

	d := &c.devs[index]
	if !d.enabled {
		return Disabled
	}

	now := c.clock()
	if elapsed := now - d.lastSample; elapsed > d.threshold {
		c.sampleLocked(index, elapsed, now)
		if !d.enabled {
			return Disabled
		}
	}

	return c.states[index][kind].LastRate
}

// sampleLocked performs one deadline-bounded sampler call for the interface
// and folds every available counter into its rate state. The caller holds
// c.mu.
//
// The sampler runs on its own goroutine. On timeout the call is abandoned,
// the interface is disabled permanently, and a warning is logged; the
// context deadline also kills the subprocess when the sampler runs one, so
// the worker does not linger.
func (c *Collector) sampleLocked(index int, elapsed, now float64) {
	d := &c.devs[index]

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	type result struct {
		counters entstat.Counters
		err      error
	}
	ch := make(chan result, 1)
	start := time.Now()
	go func() {
		counters, err := c.sampler.Sample(ctx, d.name)
		ch <- result{counters, err}
	}()

	var res result
	select {
	case res = <-ch:
	case <-ctx.Done():
		d.enabled = false
		d.lastSample = now
		d.lastDuration = time.Since(start)
		c.logger.WithFields(logrus.Fields{
			"device":  d.name,
			"timeout": c.timeout,
		}).Warn("Disabling Ethernet adapter: entstat did not respond")
		return
	}

	d.lastSample = now
	d.lastDuration = time.Since(start)

	if res.err != nil {
		// Stale rates are kept; the next due Get retries.
		c.logger.WithFields(logrus.Fields{
			"device": d.name,
			"error":  res.err,
		}).Debug("entstat sample failed")
		return
	}

	for _, k := range Kinds() {
		raw := counterValue(res.counters, k)
		if raw == entstat.Unavailable {
			continue
		}
		c.states[index][k].Update(raw, elapsed)
	}
}
