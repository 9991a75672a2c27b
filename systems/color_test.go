package systems

import (
	"math"
	"testing"
)

func TestSpeedToColorEndpoints(t *testing.T) {
	if c := SpeedToColor(0, SpeedTintMax); !c.AlmostEqualRgb(TintSlow) {
		t.Errorf("expected zero to map to slow tint, got %v", c)
	}
	if c := SpeedToColor(SpeedTintMax, SpeedTintMax); !c.AlmostEqualRgb(TintFast) {
		t.Errorf("expected max to map to fast tint, got %v", c)
	}
}

func TestSpeedToColorSymmetricAndClamped(t *testing.T) {
	for _, v := range []float64{0.5, 2, 5.9} {
		if SpeedToColor(v, 6) != SpeedToColor(-v, 6) {
			t.Errorf("expected sign to be ignored for %f", v)
		}
	}
	if SpeedToColor(60, 6) != SpeedToColor(6, 6) {
		t.Error("expected magnitudes beyond max to saturate")
	}
}

func TestSpeedToColorContinuous(t *testing.T) {
	prev := SpeedToColor(0, 6)
	for i := 1; i <= 600; i++ {
		c := SpeedToColor(float64(i)*0.01, 6)
		if c.DistanceRgb(prev) > 0.02 {
			t.Fatalf("tint jumped by %f at %f", c.DistanceRgb(prev), float64(i)*0.01)
		}
		prev = c
	}
}

func TestSpeedToColorDegenerateMax(t *testing.T) {
	if SpeedToColor(3, 0) != TintSlow {
		t.Error("expected non-positive max to yield the slow tint")
	}
	c := SpeedToColor(math.Inf(1), 6)
	if !c.IsValid() {
		t.Errorf("expected infinite input to saturate to a valid color, got %v", c)
	}
}
