package shared

import (
	"context"
)

// BarSource defines the requirements for fetching daily market data.
type BarSource interface {
	// FetchDailyHistorical fetches up to lookback daily bars for the
	// provided symbol, oldest first.
	FetchDailyHistorical(ctx context.Context, symbol string, lookback int) ([]Bar, error)
}
