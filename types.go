package statevec

import "github.com/qsimlab/statevec/internal/qtypes"

// Amplitude is the type constraint for statevector element types.
// The canonical definition is in internal/qtypes.
type Amplitude = qtypes.Amplitude

// Strategy selects the index-enumeration scheme used by the controlled
// appliers. The canonical definition is in internal/qtypes.
type Strategy = qtypes.Strategy

// Strategies in benchmark reporting order. StrategyAffix applies to a single
// control only; the multi-control appliers reject it.
const (
	StrategyScan   = qtypes.StrategyScan
	StrategyBlend  = qtypes.StrategyBlend
	StrategyAffix  = qtypes.StrategyAffix
	StrategyPaired = qtypes.StrategyPaired
)
