package telemetry

import (
	"testing"

	"github.com/pthm-cable/driftfield/systems"
)

func TestCollectorFlush(t *testing.T) {
	ps := systems.NewParticleSystem(systems.NewNoiseField(3), systems.Bounds{Width: 200, Height: 200})
	ps.SeedGrid(100, 10)

	c := NewCollector(10)
	params := systems.Params{NoiseScale: 0.01, NoiseStrength: 2}

	var tick int32
	for !c.ShouldFlush(tick) {
		ptr := systems.Pointer{X: 100, Y: 100, Pressed: tick%2 == 0}
		ps.Tick(params, ptr)
		c.RecordTick(ptr)
		tick++
	}

	if tick != 10 {
		t.Fatalf("expected flush after 10 ticks, got %d", tick)
	}

	stats := c.Flush(tick, ps)

	if stats.Particles != 100 {
		t.Errorf("expected 100 particles, got %d", stats.Particles)
	}
	if stats.PressedTicks != 5 {
		t.Errorf("expected 5 pressed ticks, got %d", stats.PressedTicks)
	}
	if stats.DriftPhase != ps.DriftPhase() {
		t.Errorf("expected drift phase %f, got %f", ps.DriftPhase(), stats.DriftPhase)
	}
	if stats.WindowStartTick != 0 || stats.WindowEndTick != 10 {
		t.Errorf("unexpected window [%d, %d]", stats.WindowStartTick, stats.WindowEndTick)
	}

	// Counters reset for the next window
	if c.ShouldFlush(tick) {
		t.Error("expected new window to start at flush tick")
	}
	next := c.Flush(tick+1, ps)
	if next.PressedTicks != 0 {
		t.Errorf("expected pressed ticks reset, got %d", next.PressedTicks)
	}
}
