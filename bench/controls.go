package bench

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/qsimlab/statevec"
	"github.com/qsimlab/statevec/internal/clock"
)

// standIn is the elementwise transform every timed strategy applies. On the
// canonical all-ones state it maps each touched slot to 1.215, making
// touched and untouched slots distinguishable after the fact.
func standIn(x float64) float64 {
	return 1.5 * (x - 0.1) * (x - 0.1)
}

// Series holds one strategy's per-point statistics across a sweep.
type Series struct {
	Strategy statevec.Strategy

	// Durs and Vars hold, per sweep point, the mean duration of one gate
	// application in seconds and the sample variance of that duration.
	Durs []float64
	Vars []float64
}

// SweepResult is the outcome of a single- or multi-control sweep.
type SweepResult struct {
	Meta      RunMeta
	Mode      string // "single" or "multi"
	NumQubits int
	NumReps   int
	Note      string
	OutPrec   int

	// Points lists the swept parameter: control positions 0..N-1 in single
	// mode, control-set sizes 2..N in multi mode.
	Points []int

	Series []Series
}

// WriteFile persists the sweep as a Mathematica association at path. A
// zero Note or OutPrec falls back to the package default.
func (r *SweepResult) WriteFile(path string) error {
	prec := r.OutPrec
	if prec <= 0 {
		prec = DefaultOutPrec
	}

	b := metaHeader(r.Meta, r.Note, r.Mode, prec).
		PutInt("numQubits", r.NumQubits).
		PutInt("numReps", r.NumReps).
		PutInt("outPrec", prec).
		PutInts("points", r.Points)

	for _, s := range r.Series {
		b.PutFloats("dur_"+s.Strategy.Label(), s.Durs)
		b.PutFloats("var_"+s.Strategy.Label(), s.Vars)
	}

	return b.WriteFile(path)
}

// SingleStrategies lists the strategies a single-control sweep times, in
// output order.
func SingleStrategies() []statevec.Strategy {
	return []statevec.Strategy{
		statevec.StrategyScan,
		statevec.StrategyBlend,
		statevec.StrategyAffix,
		statevec.StrategyPaired,
	}
}

// MultiStrategies lists the strategies a multi-control sweep times, in
// output order. The affix enumeration covers a single control only and is
// absent.
func MultiStrategies() []statevec.Strategy {
	return []statevec.Strategy{
		statevec.StrategyScan,
		statevec.StrategyBlend,
		statevec.StrategyPaired,
	}
}

// RunSingle times every single-control strategy at every control position
// from 0 to NumQubits-1, NumReps trials each. Each trial reinitializes the
// state before the clock starts and times exactly one application.
func RunSingle(ctx context.Context, cfg Config) (*SweepResult, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	log := cfg.logger()

	if err := preflight(cfg.NumQubits, 8, 1); err != nil {
		return nil, err
	}

	strategies := SingleStrategies()
	if err := verifySingleStrategies(ctx, strategies); err != nil {
		return nil, err
	}

	res := &SweepResult{
		Meta:      newRunMeta(cfg.Seed),
		Mode:      "single",
		NumQubits: cfg.NumQubits,
		NumReps:   cfg.NumReps,
		Note:      cfg.Note,
		OutPrec:   cfg.OutPrec,
	}
	for c := range cfg.NumQubits {
		res.Points = append(res.Points, c)
	}

	log.Infof("single-control sweep: %d qubits, %d reps, run %s", cfg.NumQubits, cfg.NumReps, res.Meta.RunID)

	amps, err := statevec.NewVector[float64](cfg.NumQubits)
	if err != nil {
		return nil, err
	}

	samples := make([]float64, cfg.NumReps)

	for _, s := range strategies {
		// Keep collector pauses out of the timed region.
		runtime.GC()

		series := Series{Strategy: s}
		for _, ctrl := range res.Points {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			for rep := range samples {
				statevec.FillOnes(amps)
				sw := clock.Start()
				if err := statevec.ApplyControlled(amps, ctrl, standIn, s); err != nil {
					return nil, err
				}
				samples[rep] = sw.Seconds()
			}

			mean, variance := MeanVariance(samples)
			series.Durs = append(series.Durs, mean)
			series.Vars = append(series.Vars, variance)
			log.Debugf("strategy %s control %d: mean %.3es", s, ctrl, mean)
		}

		res.Series = append(res.Series, series)
		log.Infof("strategy %s done", s)
	}

	return res, nil
}

// RunMulti times the multi-control strategies for every control-set size
// from 2 to NumQubits. Each repetition draws one random control set and
// feeds the same set to every strategy, so strategies are never compared
// on different inputs.
func RunMulti(ctx context.Context, cfg Config) (*SweepResult, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.NumQubits < 2 {
		return nil, fmt.Errorf("%w: multi-control sweep needs at least 2 qubits, got %d", ErrInvalidConfig, cfg.NumQubits)
	}
	log := cfg.logger()

	if err := preflight(cfg.NumQubits, 8, 1); err != nil {
		return nil, err
	}

	strategies := MultiStrategies()
	if err := verifyMultiStrategies(ctx, strategies); err != nil {
		return nil, err
	}

	res := &SweepResult{
		Meta:      newRunMeta(cfg.Seed),
		Mode:      "multi",
		NumQubits: cfg.NumQubits,
		NumReps:   cfg.NumReps,
		Note:      cfg.Note,
		OutPrec:   cfg.OutPrec,
	}
	for k := 2; k <= cfg.NumQubits; k++ {
		res.Points = append(res.Points, k)
	}

	log.Infof("multi-control sweep: %d qubits, %d reps, run %s", cfg.NumQubits, cfg.NumReps, res.Meta.RunID)

	amps, err := statevec.NewVector[float64](cfg.NumQubits)
	if err != nil {
		return nil, err
	}

	rng := statevec.NewRNG(cfg.Seed)
	sets := make([][]int, cfg.NumReps)
	samples := make([]float64, cfg.NumReps)
	durs := make([][]float64, len(strategies))
	vars := make([][]float64, len(strategies))

	for _, numCtrls := range res.Points {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		for rep := range sets {
			sets[rep] = rng.SortedDistinct(numCtrls, cfg.NumQubits)
		}

		runtime.GC()

		for i, s := range strategies {
			for rep := range samples {
				statevec.FillOnes(amps)
				sw := clock.Start()
				if err := statevec.ApplyMultiControlled(amps, sets[rep], standIn, s); err != nil {
					return nil, err
				}
				samples[rep] = sw.Seconds()
			}

			mean, variance := MeanVariance(samples)
			durs[i] = append(durs[i], mean)
			vars[i] = append(vars[i], variance)
			log.Debugf("strategy %s with %d controls: mean %.3es", s, numCtrls, mean)
		}
	}

	for i, s := range strategies {
		res.Series = append(res.Series, Series{Strategy: s, Durs: durs[i], Vars: vars[i]})
	}

	return res, nil
}

// verifySingleStrategies cross-checks the strategies on a small register
// before anything is timed; a sweep comparing diverging implementations
// would be meaningless. One goroutine per challenger.
func verifySingleStrategies(ctx context.Context, strategies []statevec.Strategy) error {
	const checkQubits = 8

	in := checkState(1 << checkQubits)
	ref := strategies[0]

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, s := range strategies[1:] {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			for ctrl := range checkQubits {
				want := append([]float64(nil), in...)
				if err := statevec.ApplyControlled(want, ctrl, standIn, ref); err != nil {
					return err
				}

				got := append([]float64(nil), in...)
				if err := statevec.ApplyControlled(got, ctrl, standIn, s); err != nil {
					return err
				}

				for i := range got {
					if got[i] != want[i] {
						return fmt.Errorf("%w: %s vs %s at control %d, slot %d", ErrStrategyDivergence, s, ref, ctrl, i)
					}
				}
			}

			return nil
		})
	}

	return g.Wait()
}

// verifyMultiStrategies is the multi-control counterpart: the same drawn
// control sets are checked by every challenger.
func verifyMultiStrategies(ctx context.Context, strategies []statevec.Strategy) error {
	const checkQubits = 8

	in := checkState(1 << checkQubits)
	ref := strategies[0]

	rng := statevec.NewRNG(7)
	sets := make([][]int, 0, checkQubits)
	for k := 1; k <= checkQubits; k++ {
		sets = append(sets, rng.SortedDistinct(k, checkQubits))
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, s := range strategies[1:] {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			for _, ctrls := range sets {
				want := append([]float64(nil), in...)
				if err := statevec.ApplyMultiControlled(want, ctrls, standIn, ref); err != nil {
					return err
				}

				got := append([]float64(nil), in...)
				if err := statevec.ApplyMultiControlled(got, ctrls, standIn, s); err != nil {
					return err
				}

				for i := range got {
					if got[i] != want[i] {
						return fmt.Errorf("%w: %s vs %s for controls %v, slot %d", ErrStrategyDivergence, s, ref, ctrls, i)
					}
				}
			}

			return nil
		})
	}

	return g.Wait()
}

// checkState returns a deterministic, slot-varying input so the cross-check
// notices a strategy touching the wrong slots, not just the wrong count.
func checkState(n int) []float64 {
	amps := make([]float64, n)
	for i := range amps {
		amps[i] = 0.5 + 0.1*float64(i%13)
	}

	return amps
}
