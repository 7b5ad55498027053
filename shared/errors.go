package shared

import (
	"errors"
)

var (
	// ErrInsufficientHistory indicates a series is shorter than an
	// indicator's minimum window.
	ErrInsufficientHistory = errors.New("insufficient history")
	// ErrInvalidTimeframe indicates an unsupported resample token.
	ErrInvalidTimeframe = errors.New("invalid timeframe")
	// ErrNoMarketData indicates the upstream provider returned no data
	// for a symbol.
	ErrNoMarketData = errors.New("no market data")
)
