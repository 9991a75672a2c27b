package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/driftfield/config"
)

// csvLog appends records to one CSV file, writing the header once.
type csvLog struct {
	file          *os.File
	headerWritten bool
}

func openCSVLog(dir, name string) (*csvLog, error) {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", name, err)
	}
	return &csvLog{file: f}, nil
}

// append writes records, including headers on the first call.
func (l *csvLog) append(records any) error {
	var err error
	if l.headerWritten {
		err = gocsv.MarshalWithoutHeaders(records, l.file)
	} else {
		err = gocsv.Marshal(records, l.file)
		l.headerWritten = err == nil
	}
	return err
}

func (l *csvLog) close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

// OutputManager writes run output: effective config, population stats
// and performance CSVs. A nil manager discards everything.
type OutputManager struct {
	dir        string
	population *csvLog
	perf       *csvLog
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	population, err := openCSVLog(dir, "population.csv")
	if err != nil {
		return nil, err
	}

	perf, err := openCSVLog(dir, "perf.csv")
	if err != nil {
		population.close()
		return nil, err
	}

	return &OutputManager{dir: dir, population: population, perf: perf}, nil
}

// WriteConfig saves the configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WritePopulation writes a window stats record to population.csv.
func (om *OutputManager) WritePopulation(stats WindowStats) error {
	if om == nil {
		return nil
	}
	if err := om.population.append([]WindowStats{stats}); err != nil {
		return fmt.Errorf("writing population stats: %w", err)
	}
	return nil
}

// WritePerf writes a performance stats record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, windowEnd int32) error {
	if om == nil {
		return nil
	}
	if err := om.perf.append([]PerfStatsCSV{stats.ToCSV(windowEnd)}); err != nil {
		return fmt.Errorf("writing perf: %w", err)
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	for _, l := range []*csvLog{om.population, om.perf} {
		if err := l.close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
