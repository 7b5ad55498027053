package service

import (
	"context"
	"errors"
	"math"
	"sync"

	"github.com/avh/trend/classify"
	"github.com/avh/trend/indicator"
	"github.com/avh/trend/shared"
)

// SymbolAnnotation is a per-symbol quadrant table entry.
type SymbolAnnotation struct {
	Symbol string `json:"symbol"`
	// TrendArrow is the supertrend direction rendered as an arrow.
	TrendArrow string `json:"trend_arrow"`
	// BelowTwentyDMA flags a close below the 20-period moving average.
	BelowTwentyDMA bool `json:"below_20dma"`
	// NearTarget flags a close within reach of the mean-reversion target.
	NearTarget bool `json:"near_target"`
}

// QuadrantTable buckets the provided symbols by {40-week status × MACE
// label}, annotating each entry. Symbols whose series cannot be fetched or
// classified are skipped.
func (a *Analyser) QuadrantTable(ctx context.Context, symbols []string) map[string]map[string][]SymbolAnnotation {
	table := make(map[string]map[string][]SymbolAnnotation)

	var mtx sync.Mutex
	var wg sync.WaitGroup
	for idx := range symbols {
		symbol := symbols[idx]

		a.workers <- struct{}{}
		wg.Add(1)
		go func(symbol string) {
			defer func() {
				<-a.workers
				wg.Done()
			}()

			fortyWeek, mace, annotation, err := a.classifySymbol(ctx, symbol)
			if err != nil {
				if !errors.Is(err, context.Canceled) {
					a.cfg.Logger.Error().Msgf("classifying %s: %v", symbol, err)
				}
				return
			}

			mtx.Lock()
			if table[fortyWeek] == nil {
				table[fortyWeek] = make(map[string][]SymbolAnnotation)
			}
			table[fortyWeek][mace] = append(table[fortyWeek][mace], annotation)
			mtx.Unlock()
		}(symbol)
	}
	wg.Wait()

	return table
}

// classifySymbol derives a symbol's quadrant buckets and annotation from
// its weekly view.
func (a *Analyser) classifySymbol(ctx context.Context, symbol string) (string, string, SymbolAnnotation, error) {
	daily, err := a.cfg.Cache.GetOrFetch(ctx, symbol)
	if err != nil {
		return "", "", SymbolAnnotation{}, err
	}

	weekly := daily.Resample(shared.Weekly)
	closes := weekly.Closes()

	ma40 := indicator.SMA(closes, 40)
	fortyWeek := lastLabel(classify.FortyWeekSeries(closes, ma40, indicator.Slope(ma40)))

	mace := lastLabel(classify.MACESeries(
		indicator.SMA(closes, 50),
		indicator.SMA(closes, 100),
		indicator.SMA(closes, 200)))

	annotation := SymbolAnnotation{Symbol: symbol}

	states := indicator.Supertrend(weekly.Highs(), weekly.Lows(), closes,
		indicator.SupertrendATRPeriod, indicator.SupertrendFactor)
	if len(states) > 0 && states[len(states)-1].Signal == indicator.TrendBuy {
		annotation.TrendArrow = "↑"
	} else {
		annotation.TrendArrow = "↓"
	}

	dailyCloses := daily.Closes()
	dma20 := indicator.SMA(dailyCloses, 20)
	if len(dma20) > 0 && !math.IsNaN(dma20[len(dma20)-1]) {
		annotation.BelowTwentyDMA = dailyCloses[len(dailyCloses)-1] < dma20[len(dma20)-1]
	}

	target := projectionTarget(daily)
	if !math.IsNaN(target) && target != 0 {
		last := dailyCloses[len(dailyCloses)-1]
		annotation.NearTarget = math.Abs(last-target)/target <= nearTargetPercent
	}

	return fortyWeek, mace, annotation, nil
}

// projectionTarget returns the mean-reversion target of the provided daily
// series, NaN when still in progress.
func projectionTarget(daily *shared.Series) float64 {
	ma := indicator.SMA(daily.Closes(), classify.DefaultMeanRevPeriod)
	if len(ma) == 0 {
		return math.NaN()
	}

	return ma[len(ma)-1]
}

// lastLabel returns the final label of the provided series as a string.
func lastLabel[T interface{ String() string }](labels []T) string {
	if len(labels) == 0 {
		return ""
	}

	return labels[len(labels)-1].String()
}
