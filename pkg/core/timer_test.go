package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestFixedStepPacing(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedStep(10)
	fs.now = clock.now

	if !fs.Due() {
		t.Fatal("first call should be due")
	}
	if fs.Due() {
		t.Fatal("no time elapsed, tick should not be due")
	}

	clock.t = clock.t.Add(50 * time.Millisecond)
	if fs.Due() {
		t.Fatal("half a tick elapsed, should not be due")
	}
	if got := fs.Wait(); got != 50*time.Millisecond {
		t.Fatalf("wait = %v, expected 50ms", got)
	}

	clock.t = clock.t.Add(50 * time.Millisecond)
	if !fs.Due() {
		t.Fatal("full tick elapsed, should be due")
	}
}

func TestFixedStepDropsBacklog(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	fs := NewFixedStep(10)
	fs.now = clock.now
	fs.Due()

	clock.t = clock.t.Add(time.Second)
	ticks := 0
	for fs.Due() {
		ticks++
		if ticks > 10 {
			break
		}
	}
	if ticks != 2 {
		t.Fatalf("expected backlog capped to 2 ticks, got %d", ticks)
	}
}

func TestFixedStepDefaultTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != time.Second/DefaultTPS {
		t.Fatalf("interval = %v", fs.Interval())
	}
}

func TestFixedStepMeasuresRate(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	fs := NewFixedStep(10)
	fs.now = clock.now

	for i := 0; i < 10; i++ {
		if !fs.Due() {
			t.Fatalf("tick %d should be due", i)
		}
		if fs.Rate() != 0 {
			t.Fatalf("rate reported before the first window closed: %f", fs.Rate())
		}
		clock.t = clock.t.Add(100 * time.Millisecond)
	}
	fs.Due()
	if got := fs.Rate(); got != 10 {
		t.Fatalf("measured rate %f, expected 10", got)
	}

	// A host that polls only every 200ms manages half the target rate.
	for i := 0; i < 5; i++ {
		clock.t = clock.t.Add(200 * time.Millisecond)
		fs.Due()
	}
	if got := fs.Rate(); got != 5 {
		t.Fatalf("measured rate %f, expected 5", got)
	}
}
