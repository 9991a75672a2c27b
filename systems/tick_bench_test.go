package systems

import "testing"

func benchmarkTick(b *testing.B, workers int) {
	s := NewParticleSystem(NewNoiseField(42), Bounds{Width: 1280, Height: 720})
	s.SeedGrid(10000, 10)
	s.SetParallel(workers, 0)
	defer s.Close()

	params := Params{NoiseScale: 0.0001, NoiseStrength: 2, MouseAttraction: 20}
	ptr := Pointer{X: 640, Y: 360}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Tick(params, ptr)
	}
}

func BenchmarkTickSerial(b *testing.B)   { benchmarkTick(b, 1) }
func BenchmarkTickParallel(b *testing.B) { benchmarkTick(b, 0) }
