package qtypes

// Strategy selects how a controlled gate enumerates the amplitudes it must
// transform. All strategies produce identical output; they differ in how much
// of the array they visit and how the target indices are derived.
type Strategy uint32

const (
	// StrategyScan visits every index and branches on the control bit.
	StrategyScan Strategy = iota
	// StrategyBlend visits every index and mixes old and new values with a
	// 0/1 weight instead of branching. The transform runs on every element.
	StrategyBlend
	// StrategyAffix enumerates prefix/suffix pairs around the control bit,
	// touching only amplitudes that satisfy the control.
	StrategyAffix
	// StrategyPaired walks a compressed half-length index space and expands
	// each value by inserting the control bit. Single- and multi-control.
	StrategyPaired
)

// String returns a human-readable name for the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyScan:
		return "scan"
	case StrategyBlend:
		return "blend"
	case StrategyAffix:
		return "affix"
	case StrategyPaired:
		return "paired"
	default:
		return "unknown"
	}
}

// Label returns the short letter used to key result files, matching the
// naming scheme of the downstream analysis notebooks.
func (s Strategy) Label() string {
	switch s {
	case StrategyScan:
		return "A"
	case StrategyBlend:
		return "B"
	case StrategyAffix:
		return "C"
	case StrategyPaired:
		return "D"
	default:
		return "?"
	}
}
