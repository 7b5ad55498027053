package shared

import (
	"fmt"
)

const (
	// DateLayout is the format layout for parsing bar dates.
	DateLayout = "2006-01-02"
)

// Timeframe represents the periodicity of a bar series.
type Timeframe int

const (
	Daily Timeframe = iota
	Weekly
	Monthly
)

// String stringifies the provided timeframe.
func (t Timeframe) String() string {
	switch t {
	case Daily:
		return "1d"
	case Weekly:
		return "1wk"
	case Monthly:
		return "1mo"
	default:
		return "unknown"
	}
}

// ParseTimeframe parses a timeframe from the provided resample token.
func ParseTimeframe(token string) (Timeframe, error) {
	switch token {
	case "1d", "daily":
		return Daily, nil
	case "1wk", "weekly":
		return Weekly, nil
	case "1mo", "monthly":
		return Monthly, nil
	default:
		return Daily, fmt.Errorf("%w: %q", ErrInvalidTimeframe, token)
	}
}
