package agglo

import "fmt"

// Strategy selects how the nearest cluster pair is found on each step.
type Strategy string

const (
	StrategyAuto   Strategy = "auto"
	StrategyBrute  Strategy = "brute"
	StrategyMatrix Strategy = "matrix"
)

// DefaultMaxMatrixEntities is the largest entity count for which
// StrategyAuto picks the cached distance matrix (n² float64 values).
const DefaultMaxMatrixEntities = 4096

// ParseStrategy converts a name such as "matrix" into a Strategy.
// The empty string maps to StrategyAuto.
func ParseStrategy(name string) (Strategy, error) {
	switch s := Strategy(name); s {
	case "":
		return StrategyAuto, nil
	case StrategyAuto, StrategyBrute, StrategyMatrix:
		return s, nil
	default:
		return "", fmt.Errorf("%w: unknown strategy %q", ErrInvalidConfig, name)
	}
}

// selectStrategy resolves StrategyAuto into a concrete strategy based on the
// number of entities.
func selectStrategy(cfg Config, n int) Strategy {
	if cfg.Strategy != StrategyAuto {
		return cfg.Strategy
	}
	if n <= cfg.MaxMatrixEntities {
		return StrategyMatrix
	}
	return StrategyBrute
}
