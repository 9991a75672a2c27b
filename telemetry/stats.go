package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated population statistics for a window of ticks.
type WindowStats struct {
	WindowStartTick int32 `csv:"-"`
	WindowEndTick   int32 `csv:"window_end"`

	Particles    int     `csv:"particles"`
	DriftPhase   float64 `csv:"drift_phase"`
	PressedTicks int     `csv:"pressed_ticks"`

	// Visual scale distribution (sampled at window end)
	ScaleMean float64 `csv:"scale_mean"`
	ScaleStd  float64 `csv:"scale_std"`
	ScaleP10  float64 `csv:"scale_p10"`
	ScaleP50  float64 `csv:"scale_p50"`
	ScaleP90  float64 `csv:"scale_p90"`

	// Speed (flow angle) distribution
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`

	AgeMean float64 `csv:"age_mean"`
}

// Distribution summarises a sample of values.
type Distribution struct {
	Mean, Std     float64
	P10, P50, P90 float64
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// Describe computes mean, sample standard deviation and percentiles.
// values is not modified.
func Describe(values []float64) Distribution {
	n := len(values)
	if n == 0 {
		return Distribution{}
	}

	var d Distribution
	if n == 1 {
		d.Mean = values[0]
	} else {
		d.Mean, d.Std = stat.MeanStdDev(values, nil)
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	d.P10 = Percentile(sorted, 0.10)
	d.P50 = Percentile(sorted, 0.50)
	d.P90 = Percentile(sorted, 0.90)
	return d
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Int("particles", s.Particles),
		slog.Float64("drift_phase", s.DriftPhase),
		slog.Int("pressed_ticks", s.PressedTicks),
		slog.Float64("scale_mean", s.ScaleMean),
		slog.Float64("scale_std", s.ScaleStd),
		slog.Float64("scale_p50", s.ScaleP50),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_std", s.SpeedStd),
		slog.Float64("age_mean", s.AgeMean),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
