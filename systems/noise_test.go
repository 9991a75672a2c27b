package systems

import (
	"math"
	"testing"
)

func TestNoiseFieldDeterministic(t *testing.T) {
	for _, algo := range []string{NoiseSimplex, NoisePerlin} {
		f, err := NewNoiseFieldFor(algo, 42)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", algo, err)
		}

		a := f.Angle(0, 0, 0.0001)
		b := f.Angle(0, 0, 0.0001)
		if a != b {
			t.Errorf("%s: expected identical angles, got %f and %f", algo, a, b)
		}
	}
}

func TestNoiseFieldSameSeedSameOutput(t *testing.T) {
	f1 := NewNoiseField(7)
	f2 := NewNoiseField(7)

	for i := 0; i < 100; i++ {
		x := float64(i)*13.7 - 400
		y := float64(i)*-5.3 + 250
		if f1.Angle(x, y, 0.01) != f2.Angle(x, y, 0.01) {
			t.Fatalf("seeded fields diverged at (%f, %f)", x, y)
		}
	}
}

func TestNoiseFieldSampleBounded(t *testing.T) {
	for _, algo := range []string{NoiseSimplex, NoisePerlin} {
		f, _ := NewNoiseFieldFor(algo, 1234)

		for i := -200; i < 200; i++ {
			for j := -20; j < 20; j++ {
				x := float64(i) * 0.173
				y := float64(j) * 0.391
				v := f.Sample(x, y)
				if v < -1 || v > 1 {
					t.Fatalf("%s: sample out of range at (%f, %f): %f", algo, x, y, v)
				}
				a := f.Angle(x, y, 1)
				if math.IsNaN(a) || math.IsInf(a, 0) {
					t.Fatalf("%s: non-finite angle at (%f, %f)", algo, x, y)
				}
				if math.Abs(a) > 2*math.Pi {
					t.Fatalf("%s: angle out of range at (%f, %f): %f", algo, x, y, a)
				}
			}
		}
	}
}

func TestNoiseFieldContinuous(t *testing.T) {
	for _, algo := range []string{NoiseSimplex, NoisePerlin} {
		f, _ := NewNoiseFieldFor(algo, 99)

		// Small steps in input should give small steps in output
		const step = 1e-4
		prev := f.Sample(0, 0)
		for i := 1; i < 20000; i++ {
			x := float64(i) * step
			v := f.Sample(x, x*0.5)
			if math.Abs(v-prev) > 0.01 {
				t.Fatalf("%s: jump of %f between consecutive samples at x=%f", algo, v-prev, x)
			}
			prev = v
		}
	}
}

func TestNoiseFieldAngleAppliesScale(t *testing.T) {
	f := NewNoiseField(5)

	got := f.Angle(300, 700, 0.01)
	want := f.Sample(3, 7) * 2 * math.Pi
	if got != want {
		t.Errorf("expected Angle to sample scaled coordinates: got %f, want %f", got, want)
	}
}

func TestNoiseFieldUnknownAlgorithm(t *testing.T) {
	if _, err := NewNoiseFieldFor("worley", 1); err == nil {
		t.Error("expected error for unknown algorithm")
	}
}

// constSampler returns the same value everywhere.
type constSampler float64

func (c constSampler) Sample(x, y float64) float64 { return float64(c) }

func TestNoiseFieldClampsSampler(t *testing.T) {
	f := NewNoiseFieldFrom(constSampler(3))
	if v := f.Sample(0, 0); v != 1 {
		t.Errorf("expected sample clamped to 1, got %f", v)
	}

	f = NewNoiseFieldFrom(constSampler(-3))
	if v := f.Sample(0, 0); v != -1 {
		t.Errorf("expected sample clamped to -1, got %f", v)
	}
}
