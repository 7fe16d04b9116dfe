package bench

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qsimlab/statevec"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)

	return log
}

func TestMeanVarianceConstantSamples(t *testing.T) {
	// A constant-duration timer must yield the constant as mean and an
	// exactly zero variance.
	mean, variance := MeanVariance([]float64{0.25, 0.25, 0.25, 0.25})
	assert.Equal(t, 0.25, mean)
	assert.Zero(t, variance)
}

func TestMeanVariance(t *testing.T) {
	mean, variance := MeanVariance([]float64{1, 2, 3, 4})
	assert.InDelta(t, 2.5, mean, 1e-15)
	assert.InDelta(t, 5.0/3.0, variance, 1e-15)
}

func TestMeanVarianceDegenerate(t *testing.T) {
	mean, variance := MeanVariance(nil)
	assert.Zero(t, mean)
	assert.Zero(t, variance)

	mean, variance = MeanVariance([]float64{0.7})
	assert.Equal(t, 0.7, mean)
	assert.Zero(t, variance)
}

func TestStandInOnOnes(t *testing.T) {
	assert.InDelta(t, 1.215, standIn(1), 1e-12)
}

func TestConfigValidate(t *testing.T) {
	ctx := context.Background()

	for _, cfg := range []Config{
		{NumQubits: 0, NumReps: 1},
		{NumQubits: statevec.MaxQubits + 1, NumReps: 1},
		{NumQubits: 4, NumReps: 0},
	} {
		_, err := RunSingle(ctx, cfg)
		assert.ErrorIs(t, err, ErrInvalidConfig, "config %+v", cfg)
	}
}

func TestRunSingleSmoke(t *testing.T) {
	res, err := RunSingle(context.Background(), Config{
		NumQubits: 4,
		NumReps:   3,
		Seed:      1,
		Log:       quietLogger(),
	})
	require.NoError(t, err)

	assert.Equal(t, "single", res.Mode)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Points)
	assert.NotEmpty(t, res.Meta.RunID)

	require.Len(t, res.Series, len(SingleStrategies()))
	for i, series := range res.Series {
		assert.Equal(t, SingleStrategies()[i], series.Strategy)
		require.Len(t, series.Durs, len(res.Points))
		require.Len(t, series.Vars, len(res.Points))

		for p := range series.Durs {
			assert.GreaterOrEqual(t, series.Durs[p], 0.0)
			assert.GreaterOrEqual(t, series.Vars[p], 0.0)
		}
	}
}

func TestRunMultiSmoke(t *testing.T) {
	res, err := RunMulti(context.Background(), Config{
		NumQubits: 4,
		NumReps:   2,
		Seed:      1,
		Log:       quietLogger(),
	})
	require.NoError(t, err)

	assert.Equal(t, "multi", res.Mode)
	assert.Equal(t, []int{2, 3, 4}, res.Points)

	require.Len(t, res.Series, len(MultiStrategies()))
	for i, series := range res.Series {
		assert.Equal(t, MultiStrategies()[i], series.Strategy)
		require.Len(t, series.Durs, len(res.Points))
		require.Len(t, series.Vars, len(res.Points))
	}
}

func TestRunMultiRejectsTinyRegister(t *testing.T) {
	_, err := RunMulti(context.Background(), Config{NumQubits: 1, NumReps: 1, Log: quietLogger()})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRunQFTSmoke(t *testing.T) {
	res, err := RunQFT(context.Background(), Config{
		NumQubits: 3,
		NumReps:   2,
		Seed:      9,
		Log:       quietLogger(),
	})
	require.NoError(t, err)

	require.Len(t, res.Ops, 4)
	names := make([]string, 0, len(res.Ops))
	for _, op := range res.Ops {
		names = append(names, op.Name)
		assert.GreaterOrEqual(t, op.Dur, 0.0)
		assert.GreaterOrEqual(t, op.Var, 0.0)
	}
	assert.Equal(t, []string{"chain", "merged", "circuit", "qft"}, names)

	// The two transform variants must agree on every repetition.
	assert.LessOrEqual(t, res.MaxDelta, 1e-9)
}

func TestRunHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunSingle(ctx, Config{NumQubits: 4, NumReps: 1, Log: quietLogger()})
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
}

func TestSweepResultWriteFile(t *testing.T) {
	res := &SweepResult{
		Meta:      RunMeta{RunID: "test-run"},
		Mode:      "single",
		NumQubits: 2,
		NumReps:   3,
		Points:    []int{0, 1},
		Series: []Series{
			{Strategy: statevec.StrategyScan, Durs: []float64{1e-6, 2e-6}, Vars: []float64{0, 0}},
			{Strategy: statevec.StrategyBlend, Durs: []float64{3e-6, 4e-6}, Vars: []float64{0, 0}},
		},
	}

	path := filepath.Join(t.TempDir(), "sweep.txt")
	require.NoError(t, res.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	text := string(data)
	assert.True(t, len(text) > 4 && text[:3] == "<|\n" && text[len(text)-3:] == "\n|>", "malformed association: %q", text)
	assert.Contains(t, text, `"note" -> "timings are already per-rep"`)
	assert.Contains(t, text, `"mode" -> "single"`)
	assert.Contains(t, text, `"runID" -> "test-run"`)
	assert.Contains(t, text, `"outPrec" -> 5`)
	assert.Contains(t, text, `"points" -> {0, 1}`)
	assert.Contains(t, text, `"dur_A" -> {1.00000*10^-06, 2.00000*10^-06}`)
	assert.Contains(t, text, `"var_B" -> {0.00000*10^+00, 0.00000*10^+00}`)
}

func TestSweepResultWriteFileCustomNoteAndPrecision(t *testing.T) {
	res := &SweepResult{
		Mode:      "single",
		NumQubits: 1,
		NumReps:   1,
		Note:      "smoke run",
		OutPrec:   2,
		Points:    []int{0},
		Series: []Series{
			{Strategy: statevec.StrategyScan, Durs: []float64{1e-6}, Vars: []float64{0}},
		},
	}

	path := filepath.Join(t.TempDir(), "sweep.txt")
	require.NoError(t, res.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, `"note" -> "smoke run"`)
	assert.Contains(t, text, `"outPrec" -> 2`)
	assert.Contains(t, text, `"dur_A" -> {1.00*10^-06}`)
}

func TestQFTResultWriteFile(t *testing.T) {
	res := &QFTResult{
		Meta:      RunMeta{RunID: "test-run"},
		NumQubits: 3,
		NumReps:   2,
		Ops: []OpStat{
			{Name: "chain", Dur: 1e-5, Var: 0},
			{Name: "merged", Dur: 2e-5, Var: 0},
		},
		MaxDelta: 3e-16,
	}

	path := filepath.Join(t.TempDir(), "qft.txt")
	require.NoError(t, res.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, `"mode" -> "qft"`)
	assert.Contains(t, text, `"dur_chain" -> 1.00000*10^-05`)
	assert.Contains(t, text, `"dur_merged" -> 2.00000*10^-05`)
	assert.Contains(t, text, `"maxDelta" -> 3.00000*10^-16`)
}
