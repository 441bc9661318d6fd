package perfsim

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
	"time"
)

func seeded() *Simulator {
	return New(rand.New(rand.NewPCG(1, 2)))
}

// fixedRand always returns the smallest or largest value.
type fixedRand struct{ max bool }

func (f fixedRand) IntN(n int) int {
	if f.max {
		return n - 1
	}
	return 0
}

func (f fixedRand) Float64() float64 {
	if f.max {
		return 0.999999
	}
	return 0
}

func TestSnapshotRanges(t *testing.T) {
	s := seeded()
	for i := 0; i < 500; i++ {
		snap := s.Snapshot()
		if snap.ResponseTimeMS < 45 || snap.ResponseTimeMS > 120 {
			t.Fatalf("response time %d out of range", snap.ResponseTimeMS)
		}
		if snap.Throughput < 800 || snap.Throughput > 1200 {
			t.Fatalf("throughput %d out of range", snap.Throughput)
		}
		if snap.ErrorRate < 0.01 || snap.ErrorRate > 0.5 {
			t.Fatalf("error rate %f out of range", snap.ErrorRate)
		}
		if snap.CPU < 30 || snap.CPU > 80 {
			t.Fatalf("cpu %d out of range", snap.CPU)
		}
		if snap.ResponseDeltaMS < -10 || snap.ResponseDeltaMS > 10 {
			t.Fatalf("response delta %d out of range", snap.ResponseDeltaMS)
		}
	}
}

func TestSnapshotBounds(t *testing.T) {
	lo := New(fixedRand{}).Snapshot()
	if lo.ResponseTimeMS != 45 || lo.Throughput != 800 || lo.CPU != 30 || lo.ResponseDeltaMS != -10 {
		t.Errorf("low snapshot = %+v", lo)
	}
	hi := New(fixedRand{max: true}).Snapshot()
	if hi.ResponseTimeMS != 120 || hi.Throughput != 1200 || hi.CPU != 80 || hi.CPUDelta != 5 {
		t.Errorf("high snapshot = %+v", hi)
	}
}

func TestSameSeedSameReadings(t *testing.T) {
	a, b := seeded().Snapshot(), seeded().Snapshot()
	a.At, b.At = time.Time{}, time.Time{}
	if a != b {
		t.Errorf("seeded simulators diverged: %+v vs %+v", a, b)
	}
}

func TestCards(t *testing.T) {
	snap := Snapshot{
		ResponseTimeMS: 80, ResponseDeltaMS: -3,
		Throughput: 950, ThroughputDelta: 12,
		ErrorRate: 0.123, ErrorRateDelta: -0.05,
		CPU: 55, CPUDelta: 2,
	}
	cards := snap.Cards()
	want := []Card{
		{"Response Time", "80ms", "-3ms"},
		{"Throughput", "950 req/s", "12 req/s"},
		{"Error Rate", "0.12%", "-0.05%"},
		{"CPU Usage", "55%", "2%"},
	}
	if len(cards) != len(want) {
		t.Fatalf("got %d cards", len(cards))
	}
	for i := range want {
		if cards[i] != want[i] {
			t.Errorf("card %d = %+v, want %+v", i, cards[i], want[i])
		}
	}
}

func TestTrends(t *testing.T) {
	tr := seeded().Trends()
	if len(tr.Dates) != 30 {
		t.Fatalf("expected 30 days, got %d", len(tr.Dates))
	}
	if !tr.Dates[0].Equal(TrendStart) || !tr.Dates[29].Equal(TrendEnd) {
		t.Errorf("window = %v .. %v", tr.Dates[0], tr.Dates[29])
	}
	for i := range tr.Dates {
		if v := tr.ResponseTime[i]; v < 40 || v > 150 {
			t.Errorf("response time[%d] = %v", i, v)
		}
		if v := tr.Throughput[i]; v < 700 || v > 1300 {
			t.Errorf("throughput[%d] = %v", i, v)
		}
	}
}

func TestStreamStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := seeded()

	var got int
	err := s.Stream(ctx, time.Millisecond, func(Snapshot) error {
		got++
		if got == 3 {
			cancel()
		}
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if got < 3 {
		t.Errorf("expected at least 3 snapshots, got %d", got)
	}
}

func TestStreamStopsOnCallbackError(t *testing.T) {
	boom := errors.New("write failed")
	err := seeded().Stream(context.Background(), time.Millisecond, func(Snapshot) error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("expected callback error, got %v", err)
	}
}

func TestCardsLabels(t *testing.T) {
	var labels []string
	for _, c := range seeded().Snapshot().Cards() {
		labels = append(labels, c.Label)
	}
	if got := strings.Join(labels, ","); got != "Response Time,Throughput,Error Rate,CPU Usage" {
		t.Errorf("labels = %s", got)
	}
}
