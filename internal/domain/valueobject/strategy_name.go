package valueobject

import "fmt"

// StrategyName identifies a routing strategy. The set of strategies is closed;
// adding one is a deliberate change, not a plugin point.
type StrategyName struct {
	value string
}

var (
	StrategyBestPrice          = StrategyName{"best_price"}
	StrategyHighestReliability = StrategyName{"highest_reliability"}
	StrategyBalanced           = StrategyName{"balanced"}
)

var validStrategies = map[string]StrategyName{
	"best_price":          StrategyBestPrice,
	"highest_reliability": StrategyHighestReliability,
	"balanced":            StrategyBalanced,
}

// UnknownStrategyError reports a strategy identifier that does not exist.
type UnknownStrategyError struct {
	Name string
}

func (e *UnknownStrategyError) Error() string {
	return fmt.Sprintf("unknown routing strategy: %q", e.Name)
}

// NewStrategyName validates and creates a StrategyName from a string.
func NewStrategyName(s string) (StrategyName, error) {
	if name, ok := validStrategies[s]; ok {
		return name, nil
	}
	return StrategyName{}, &UnknownStrategyError{Name: s}
}

// String returns the string representation of the strategy name.
func (n StrategyName) String() string {
	return n.value
}

// IsZero returns true if the strategy name is uninitialized.
func (n StrategyName) IsZero() bool {
	return n.value == ""
}
