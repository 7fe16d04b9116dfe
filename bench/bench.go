// Package bench times the control-gate strategies and the QFT phase
// variants over full parameter sweeps, and persists per-run statistics as
// association files for the analysis notebooks.
//
// Timings are wall-clock seconds for a single gate application; the state
// is reinitialized before every trial so no trial sees a predecessor's
// output, and nothing but the application itself sits inside the timed
// region.
package bench

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/qsimlab/statevec"
	"github.com/qsimlab/statevec/assoc"
	"github.com/qsimlab/statevec/internal/sysinfo"
)

const (
	// DefaultOutPrec is the number of digits after the decimal point in
	// persisted reals.
	DefaultOutPrec = 5

	// DefaultNote reminds a reader of the result file that durations are
	// per single application, not totals over the repetitions.
	DefaultNote = "timings are already per-rep"
)

var (
	// ErrInvalidConfig reports a Config that cannot run.
	ErrInvalidConfig = errors.New("bench: invalid config")

	// ErrStrategyDivergence reports that two strategies produced different
	// states from the same input during the pre-sweep cross-check.
	ErrStrategyDivergence = errors.New("bench: strategy results diverge")
)

// Config parameterizes one benchmark run.
type Config struct {
	// NumQubits is the register size; every trial touches up to
	// 2^NumQubits amplitudes.
	NumQubits int

	// NumReps is the number of repetitions per sweep point.
	NumReps int

	// Seed feeds the run's random source. Runs with equal seeds draw
	// identical control sets and input states.
	Seed int64

	// Note overrides the note stored in the result file. Empty means
	// DefaultNote.
	Note string

	// OutPrec is the number of digits after the decimal point in
	// persisted reals. Zero or negative means DefaultOutPrec.
	OutPrec int

	// Log receives progress output. Nil uses the logrus standard logger.
	Log *logrus.Logger
}

func (c Config) validate() error {
	if c.NumQubits < 1 || c.NumQubits > statevec.MaxQubits {
		return fmt.Errorf("%w: numQubits %d, want 1..%d", ErrInvalidConfig, c.NumQubits, statevec.MaxQubits)
	}

	if c.NumReps < 1 {
		return fmt.Errorf("%w: numReps %d, want at least 1", ErrInvalidConfig, c.NumReps)
	}

	return nil
}

func (c Config) logger() *logrus.Logger {
	if c.Log != nil {
		return c.Log
	}

	return logrus.StandardLogger()
}

// RunMeta identifies one benchmark run in the persisted output.
type RunMeta struct {
	RunID      string
	Timestamp  time.Time
	Seed       int64
	NumWorkers int
	GoVersion  string
	Host       sysinfo.Host
}

func newRunMeta(seed int64) RunMeta {
	return RunMeta{
		RunID:      uuid.NewString(),
		Timestamp:  time.Now(),
		Seed:       seed,
		NumWorkers: runtime.GOMAXPROCS(0),
		GoVersion:  runtime.Version(),
		Host:       sysinfo.Describe(),
	}
}

// metaHeader opens an association with the identification fields every
// result file carries.
func metaHeader(meta RunMeta, note, mode string, prec int) *assoc.Builder {
	if note == "" {
		note = DefaultNote
	}

	return assoc.New(prec).
		PutString("note", note).
		PutString("mode", mode).
		PutString("runID", meta.RunID).
		PutString("timestamp", meta.Timestamp.Format(time.RFC3339)).
		PutInt("seed", int(meta.Seed)).
		PutString("cpu", meta.Host.CPU).
		PutInt("physicalCores", meta.Host.PhysicalCores).
		PutInt("logicalCores", meta.Host.LogicalCores).
		PutInt("totalMemoryMB", int(meta.Host.TotalMemory>>20)).
		PutInt("numWorkers", meta.NumWorkers).
		PutString("goVersion", meta.GoVersion)
}

// preflight rejects a statevector footprint of buffers working arrays of
// 2^numQubits amplitudes before anything is allocated. Register sizes past
// 2^52 are rejected outright; shifting their byte count would overflow.
func preflight(numQubits int, bytesPerAmp, buffers uint64) error {
	if numQubits > 52 {
		return fmt.Errorf("statevector of 2^%d amplitudes cannot fit in memory", numQubits)
	}

	return sysinfo.CanAllocate(bytesPerAmp * buffers << numQubits)
}

// MeanVariance returns the sample mean and the Bessel-corrected sample
// variance, computed in two passes. Fewer than two samples have zero
// variance.
func MeanVariance(samples []float64) (mean, variance float64) {
	n := len(samples)
	if n == 0 {
		return 0, 0
	}

	for _, s := range samples {
		mean += s
	}
	mean /= float64(n)

	if n < 2 {
		return mean, 0
	}

	for _, s := range samples {
		d := s - mean
		variance += d * d
	}
	variance /= float64(n - 1)

	return mean, variance
}
