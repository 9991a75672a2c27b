package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick(1000)
		pc.StartPhase(PhaseInput)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(PhaseField)
		time.Sleep(200 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration")
	}
	if _, ok := stats.PhaseAvg[PhaseInput]; !ok {
		t.Error("expected input phase to be tracked")
	}
	if _, ok := stats.PhaseAvg[PhaseField]; !ok {
		t.Error("expected field phase to be tracked")
	}
	if stats.NsPerParticle <= 0 {
		t.Error("expected positive per-particle cost")
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)

	for i := 0; i < 10; i++ {
		pc.StartTick(10)
		pc.StartPhase(PhaseField)
		pc.EndTick()
	}

	stats := pc.Stats()

	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration after window filled")
	}
	if stats.TicksPerSecond <= 0 {
		t.Error("expected positive ticks per second")
	}
}

func TestPerfCollector_PhasePercentages(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick(1)
		pc.StartPhase(PhaseInput)
		time.Sleep(10 * time.Microsecond)
		pc.StartPhase(PhaseField)
		time.Sleep(100 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	inputPct := stats.PhasePct[PhaseInput]
	fieldPct := stats.PhasePct[PhaseField]
	if fieldPct <= inputPct {
		t.Errorf("expected field phase (%v%%) > input phase (%v%%)", fieldPct, inputPct)
	}

	row := stats.ToCSV(42)
	if row.WindowEnd != 42 || row.FieldPct != fieldPct {
		t.Errorf("unexpected csv row %+v", row)
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	pc := NewPerfCollector(10)

	stats := pc.Stats()

	if stats.AvgTickDuration != 0 {
		t.Error("expected zero avg tick duration for empty collector")
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("expected non-nil phase maps")
	}
	if stats.NsPerParticle != 0 {
		t.Error("expected zero per-particle cost for empty collector")
	}
}

func TestPerfCollector_FrameTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	pc.RecordFrame()
	time.Sleep(16 * time.Millisecond)
	pc.RecordFrame()

	stats := pc.Stats()

	if stats.FrameDuration < 15*time.Millisecond {
		t.Errorf("expected frame duration >= 15ms, got %v", stats.FrameDuration)
	}
	if stats.FPS <= 0 || stats.FPS > 70 {
		t.Errorf("expected FPS in (0, 70] with 16ms frame time, got %v", stats.FPS)
	}
}
