package bench

import (
	"context"
	"math/cmplx"
	"runtime"

	"github.com/qsimlab/statevec"
	"github.com/qsimlab/statevec/internal/clock"
)

// OpStat holds one timed operation's statistics across the repetitions.
type OpStat struct {
	Name string
	Dur  float64 // mean seconds per application
	Var  float64 // sample variance of the per-application seconds
}

// QFTResult is the outcome of a QFT comparison run.
type QFTResult struct {
	Meta      RunMeta
	NumQubits int
	NumReps   int
	Note      string
	OutPrec   int
	Ops       []OpStat

	// MaxDelta is the largest amplitude difference observed between the
	// gate-by-gate circuit and the merged-phase transform across all
	// repetitions. It is computed outside the timed regions.
	MaxDelta float64
}

// WriteFile persists the comparison as a Mathematica association at path.
// A zero Note or OutPrec falls back to the package default.
func (r *QFTResult) WriteFile(path string) error {
	prec := r.OutPrec
	if prec <= 0 {
		prec = DefaultOutPrec
	}

	b := metaHeader(r.Meta, r.Note, "qft", prec).
		PutInt("numQubits", r.NumQubits).
		PutInt("numReps", r.NumReps).
		PutInt("outPrec", prec)

	for _, op := range r.Ops {
		b.PutFloat("dur_"+op.Name, op.Dur).PutFloat("var_"+op.Name, op.Var)
	}

	return b.PutFloat("maxDelta", r.MaxDelta).WriteFile(path)
}

// RunQFT times the phase ladder against its merged form on the top qubit,
// and the full gate-by-gate transform against the merged-phase transform,
// on fresh random states. Every repetition draws a new state; every timed
// operation works on its own copy of it.
func RunQFT(ctx context.Context, cfg Config) (*QFTResult, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	log := cfg.logger()

	// One source state plus two working copies.
	if err := preflight(cfg.NumQubits, 16, 3); err != nil {
		return nil, err
	}

	psi, err := statevec.NewVector[complex128](cfg.NumQubits)
	if err != nil {
		return nil, err
	}
	work, err := statevec.NewVector[complex128](cfg.NumQubits)
	if err != nil {
		return nil, err
	}
	ref, err := statevec.NewVector[complex128](cfg.NumQubits)
	if err != nil {
		return nil, err
	}

	res := &QFTResult{
		Meta:      newRunMeta(cfg.Seed),
		NumQubits: cfg.NumQubits,
		NumReps:   cfg.NumReps,
		Note:      cfg.Note,
		OutPrec:   cfg.OutPrec,
	}

	log.Infof("qft comparison: %d qubits, %d reps, run %s", cfg.NumQubits, cfg.NumReps, res.Meta.RunID)

	top := cfg.NumQubits - 1
	ops := []struct {
		name  string
		apply func([]complex128) error
	}{
		{"chain", func(p []complex128) error { return statevec.ApplyPhaseChain(p, top) }},
		{"merged", func(p []complex128) error { return statevec.ApplyMergedPhase(p, top) }},
		{"circuit", statevec.ApplyQFTCircuit},
		{"qft", statevec.ApplyQFT},
	}

	samples := make([][]float64, len(ops))
	for i := range samples {
		samples[i] = make([]float64, cfg.NumReps)
	}

	rng := statevec.NewRNG(cfg.Seed)
	runtime.GC()

	for rep := range cfg.NumReps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		statevec.FillRandom(rng, psi)

		for i, op := range ops {
			// The circuit output stays in ref so the merged transform
			// right after it can be checked against it.
			buf := work
			if op.name == "circuit" {
				buf = ref
			}

			copy(buf, psi)
			sw := clock.Start()
			if err := op.apply(buf); err != nil {
				return nil, err
			}
			samples[i][rep] = sw.Seconds()
		}

		if d := maxDeltaAmps(ref, work); d > res.MaxDelta {
			res.MaxDelta = d
		}
	}

	for i, op := range ops {
		mean, variance := MeanVariance(samples[i])
		res.Ops = append(res.Ops, OpStat{Name: op.name, Dur: mean, Var: variance})
		log.Infof("op %s: mean %.3es", op.name, mean)
	}
	log.Infof("circuit vs merged transform: max amplitude delta %.3e", res.MaxDelta)

	return res, nil
}

func maxDeltaAmps(a, b []complex128) float64 {
	maxErr := 0.0
	for i := range a {
		if d := cmplx.Abs(a[i] - b[i]); d > maxErr {
			maxErr = d
		}
	}

	return maxErr
}
