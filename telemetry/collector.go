package telemetry

import "github.com/pthm-cable/driftfield/systems"

// Collector accumulates per-tick observations and produces WindowStats.
type Collector struct {
	windowTicks     int32
	windowStartTick int32

	pressedTicks int

	// Scratch buffers reused across flushes
	scales []float64
	speeds []float64
	ages   []float64
}

// NewCollector creates a collector that flushes every windowTicks ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: int32(windowTicks)}
}

// RecordTick records the pointer state seen by one tick.
func (c *Collector) RecordTick(ptr systems.Pointer) {
	if ptr.Pressed {
		c.pressedTicks++
	}
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Flush samples the population, produces a WindowStats and resets
// counters for the next window.
func (c *Collector) Flush(currentTick int32, ps *systems.ParticleSystem) WindowStats {
	particles := ps.Particles()

	c.scales = c.scales[:0]
	c.speeds = c.speeds[:0]
	c.ages = c.ages[:0]
	for _, p := range particles {
		c.scales = append(c.scales, p.Sprite.Scale)
		c.speeds = append(c.speeds, p.Speed)
		c.ages = append(c.ages, p.Age)
	}

	scale := Describe(c.scales)
	speed := Describe(c.speeds)
	age := Describe(c.ages)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		Particles:       len(particles),
		DriftPhase:      ps.DriftPhase(),
		PressedTicks:    c.pressedTicks,
		ScaleMean:       scale.Mean,
		ScaleStd:        scale.Std,
		ScaleP10:        scale.P10,
		ScaleP50:        scale.P50,
		ScaleP90:        scale.P90,
		SpeedMean:       speed.Mean,
		SpeedStd:        speed.Std,
		AgeMean:         age.Mean,
	}

	c.windowStartTick = currentTick
	c.pressedTicks = 0

	return stats
}

// WindowTicks returns the number of ticks per window.
func (c *Collector) WindowTicks() int32 {
	return c.windowTicks
}
