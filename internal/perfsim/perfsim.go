// Package perfsim produces the simulated performance readings shown on the
// MCP performance tab.
package perfsim

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
)

// Rand is the random source. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// Card is one rendered metric reading.
type Card struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Delta string `json:"delta"`
}

// Snapshot is one "real-time" reading of the four headline metrics.
type Snapshot struct {
	ResponseTimeMS  int       `json:"response_time_ms"`
	ResponseDeltaMS int       `json:"response_delta_ms"`
	Throughput      int       `json:"throughput"`
	ThroughputDelta int       `json:"throughput_delta"`
	ErrorRate       float64   `json:"error_rate"`
	ErrorRateDelta  float64   `json:"error_rate_delta"`
	CPU             int       `json:"cpu"`
	CPUDelta        int       `json:"cpu_delta"`
	At              time.Time `json:"at"`
}

// Cards formats the snapshot as display cards.
func (s Snapshot) Cards() []Card {
	return []Card{
		{Label: "Response Time", Value: fmt.Sprintf("%dms", s.ResponseTimeMS), Delta: fmt.Sprintf("%dms", s.ResponseDeltaMS)},
		{Label: "Throughput", Value: fmt.Sprintf("%d req/s", s.Throughput), Delta: fmt.Sprintf("%d req/s", s.ThroughputDelta)},
		{Label: "Error Rate", Value: fmt.Sprintf("%.2f%%", s.ErrorRate), Delta: fmt.Sprintf("%.2f%%", s.ErrorRateDelta)},
		{Label: "CPU Usage", Value: fmt.Sprintf("%d%%", s.CPU), Delta: fmt.Sprintf("%d%%", s.CPUDelta)},
	}
}

// Trends is a daily series of response time and throughput.
type Trends struct {
	Dates        []time.Time
	ResponseTime []float64
	Throughput   []float64
}

// TrendStart and TrendEnd bound the trend window, both inclusive.
var (
	TrendStart = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	TrendEnd   = time.Date(2024, time.January, 30, 0, 0, 0, 0, time.UTC)
)

// Simulator draws readings from a random source. It is safe for concurrent
// use.
type Simulator struct {
	mu  sync.Mutex
	rng Rand
	now func() time.Time
}

// New creates a Simulator over rng.
func New(rng Rand) *Simulator {
	return &Simulator{rng: rng, now: time.Now}
}

// NewDefault creates a Simulator seeded from the clock.
func NewDefault() *Simulator {
	seed := uint64(time.Now().UnixNano())
	return New(rand.New(rand.NewPCG(seed, seed>>1)))
}

// intRange returns a value in [lo, hi]. Caller holds mu.
func (s *Simulator) intRange(lo, hi int) int {
	return lo + s.rng.IntN(hi-lo+1)
}

// floatRange returns a value in [lo, hi). Caller holds mu.
func (s *Simulator) floatRange(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Snapshot draws a fresh reading.
func (s *Simulator) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		ResponseTimeMS:  s.intRange(45, 120),
		ResponseDeltaMS: s.intRange(-10, 10),
		Throughput:      s.intRange(800, 1200),
		ThroughputDelta: s.intRange(-50, 50),
		ErrorRate:       s.floatRange(0.01, 0.5),
		ErrorRateDelta:  s.floatRange(-0.1, 0.1),
		CPU:             s.intRange(30, 80),
		CPUDelta:        s.intRange(-5, 5),
		At:              s.now().UTC(),
	}
}

// Trends draws one value per day across the trend window.
func (s *Simulator) Trends() Trends {
	s.mu.Lock()
	defer s.mu.Unlock()

	var t Trends
	for d := TrendStart; !d.After(TrendEnd); d = d.AddDate(0, 0, 1) {
		t.Dates = append(t.Dates, d)
	}
	t.ResponseTime = make([]float64, len(t.Dates))
	t.Throughput = make([]float64, len(t.Dates))
	for i := range t.Dates {
		t.ResponseTime[i] = float64(s.intRange(40, 150))
	}
	for i := range t.Dates {
		t.Throughput[i] = float64(s.intRange(700, 1300))
	}
	return t
}

// Stream calls fn with a fresh snapshot immediately and then every interval
// until ctx is done or fn returns an error.
func (s *Simulator) Stream(ctx context.Context, interval time.Duration, fn func(Snapshot) error) error {
	if err := fn(s.Snapshot()); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := fn(s.Snapshot()); err != nil {
				return err
			}
		}
	}
}
