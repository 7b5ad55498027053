package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/avh/trend/classify"
	"github.com/avh/trend/database"
	"github.com/avh/trend/indicator"
	"github.com/avh/trend/pivot"
	"github.com/avh/trend/projection"
	"github.com/avh/trend/shared"
	"github.com/avh/trend/store"
	"github.com/avh/trend/strategy"
	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"
)

const (
	// maxWorkers is the maximum number of concurrent scan workers.
	maxWorkers = 8

	// zigzagWindow is the symmetric lookaround window of the swing detector.
	zigzagWindow = 5
	// zigzagThreshold is the minimum swing fraction between pivots.
	zigzagThreshold = 0.03
	// nearTargetPercent is the proximity fraction for the near-target flag.
	nearTargetPercent = 0.05
)

// Strategy names.
const (
	TrendInvestorProName = "TrendInvestorPro"
	StClairName          = "StClair"
	NorthStarName        = "NorthStar"
	StClairLongTermName  = "StClairLongTerm"
)

// AnalyserConfig represents the configuration for the analyser service.
type AnalyserConfig struct {
	// Watchlist represents the tracked symbols.
	Watchlist []string
	// Cache is the bar series cache.
	Cache *store.Cache
	// Storer records strategy output, optional.
	Storer database.SignalStorer
	// JobScheduler schedules periodic watchlist scans, optional.
	JobScheduler gocron.Scheduler
	// ScanSchedule is the cron expression for periodic watchlist scans.
	ScanSchedule string
	// Logger represents the service logger.
	Logger zerolog.Logger
}

// Analyser derives indicator metrics, classifications and strategy signals
// for watched symbols.
type Analyser struct {
	cfg     *AnalyserConfig
	workers chan struct{}
}

// NewAnalyser initializes a new analyser service.
func NewAnalyser(cfg *AnalyserConfig) (*Analyser, error) {
	if cfg.Cache == nil {
		return nil, fmt.Errorf("analyser cache cannot be nil")
	}

	return &Analyser{
		cfg:     cfg,
		workers: make(chan struct{}, maxWorkers),
	}, nil
}

// Report holds the full analysis output for a symbol and timeframe.
type Report struct {
	Symbol     string                           `json:"symbol"`
	Timeframe  string                           `json:"timeframe"`
	Metrics    map[string]shared.MetricSnapshot `json:"metrics"`
	Overlays   map[string][]shared.Point        `json:"overlays"`
	Markers    map[string][]shared.SignalMarker `json:"markers"`
	Summaries  map[string]strategy.Summary      `json:"summaries"`
	Targets    PriceTargets                     `json:"price_targets"`
	WaveCount  *projection.WaveProjection       `json:"wave_count,omitempty"`
	WaveStatus string                           `json:"wave_status,omitempty"`
}

// PriceTargets bundles the mean-reversion and fibonacci projections.
type PriceTargets struct {
	MeanReversion *projection.MeanReversionTarget `json:"mean_reversion,omitempty"`
	Fibonacci     *projection.FibProjection       `json:"fibonacci,omitempty"`
	FibStatus     string                          `json:"fibonacci_status,omitempty"`
}

// Analyse computes the full report for the provided symbol and timeframe.
func (a *Analyser) Analyse(ctx context.Context, symbol string, timeframe shared.Timeframe) (*Report, error) {
	daily, err := a.cfg.Cache.GetOrFetch(ctx, symbol)
	if err != nil {
		return nil, err
	}

	series := daily.Resample(timeframe)
	report := &Report{
		Symbol:    symbol,
		Timeframe: timeframe.String(),
		Metrics:   a.buildMetrics(series, timeframe),
		Overlays:  a.buildOverlays(series),
		Markers:   make(map[string][]shared.SignalMarker),
		Summaries: make(map[string]strategy.Summary),
	}

	markers := map[string][]shared.SignalMarker{
		TrendInvestorProName: strategy.TrendInvestorPro(series),
		StClairName:          strategy.StClair(daily, series),
		NorthStarName:        strategy.NorthStar(series),
		StClairLongTermName:  strategy.StClairLongTerm(daily),
	}
	for name := range markers {
		report.Markers[name] = markers[name]
		report.Summaries[name] = strategy.Summarize(strategy.PairTrades(markers[name]))
	}

	report.Targets = a.buildTargets(series)
	a.buildWaveCount(series, report)

	if a.cfg.Storer != nil {
		for name := range markers {
			err := a.cfg.Storer.PersistMarkers(ctx, symbol, name, markers[name])
			if err != nil {
				a.cfg.Logger.Error().Msgf("persisting markers for %s/%s: %v", symbol, name, err)
			}

			err = a.cfg.Storer.PersistScanSummary(ctx, symbol, name, report.Summaries[name])
			if err != nil {
				a.cfg.Logger.Error().Msgf("persisting scan summary for %s/%s: %v", symbol, name, err)
			}
		}
	}

	return report, nil
}

// buildMetrics assembles the metric snapshot table for the provided series.
func (a *Analyser) buildMetrics(series *shared.Series, timeframe shared.Timeframe) map[string]shared.MetricSnapshot {
	closes := series.Closes()
	highs := series.Highs()
	lows := series.Lows()

	rsi := indicator.RSI(closes, indicator.DefaultRSIPeriod)
	di := indicator.ADX(highs, lows, closes, indicator.DefaultADXPeriod)
	bbwp := indicator.BBWP(closes, indicator.BollingerLength, indicator.DefaultBBWPWindow)
	cmf := indicator.CMF(highs, lows, closes, series.Volumes(), indicator.DefaultCMFWindow)

	maShort := indicator.SMA(closes, 50)
	maMedium := indicator.SMA(closes, 100)
	maLong := indicator.SMA(closes, 200)
	ma40 := indicator.SMA(closes, 40)
	ma50 := indicator.SMA(closes, 50)
	ma150 := indicator.SMA(closes, 150)

	cloud := indicator.Ichimoku(highs, lows).CloudPositions(closes)
	supertrend := indicator.SupertrendSignals(indicator.Supertrend(highs, lows, closes,
		indicator.SupertrendATRPeriod, indicator.SupertrendFactor))
	divergences := classify.Divergences(closes, rsi,
		classify.NewDivergenceConfig(timeframe == shared.Monthly))

	metrics := map[string]shared.MetricSnapshot{
		"close":          shared.NewNumericSnapshot(closes),
		"rsi":            shared.NewNumericSnapshot(rsi),
		"adx":            shared.NewNumericSnapshot(di.ADX),
		"bbwp":           shared.NewNumericSnapshot(bbwp),
		"cmf":            shared.NewNumericSnapshot(cmf),
		"mace":           shared.NewLabelSnapshot(stringify(classify.MACESeries(maShort, maMedium, maLong)), classify.MACEUnclassified.String()),
		"forty_week":     shared.NewLabelSnapshot(stringify(classify.FortyWeekSeries(closes, ma40, indicator.Slope(ma40))), classify.FortyWeekUnknown.String()),
		"dma_trend":      shared.NewLabelSnapshot(stringify(classify.DMASeries(closes, ma50, ma150)), classify.DMAUnknown.String()),
		"adx_trend":      shared.NewLabelSnapshot(stringify(classify.ADXSeries(di)), classify.ADXUnknown.String()),
		"bbwp_band":      shared.NewLabelSnapshot(stringify(classify.BBWPSeries(bbwp)), classify.BBWPUnknown.String()),
		"mean_reversion": meanRevSnapshot(closes),
		"divergence":     shared.NewLabelSnapshot(stringify(divergences), ""),
		"ichimoku":       shared.NewLabelSnapshot(stringify(cloud), indicator.CloudUndefined.String()),
		"supertrend":     shared.NewLabelSnapshot(stringify(supertrend), indicator.TrendUndefined.String()),
	}

	return metrics
}

// meanRevSnapshot samples the mean-reversion band over the snapshot offsets
// by truncating the series at each offset.
func meanRevSnapshot(closes []float64) shared.MetricSnapshot {
	sample := func(offset int) shared.Value {
		end := len(closes) - offset
		if end <= 0 {
			return shared.Insufficient()
		}

		band := classify.MeanReversion(closes[:end], classify.DefaultMeanRevPeriod)
		if band == classify.MeanRevUnknown {
			return shared.Insufficient()
		}

		return shared.LabelValue(band.String())
	}

	return shared.MetricSnapshot{
		Current: sample(0),
		Lag7:    sample(shared.LagSeven),
		Lag14:   sample(shared.LagFourteen),
		Lag21:   sample(shared.LagTwentyOne),
	}
}

// buildOverlays assembles the exported chart lines for the provided series.
// Lines below their minimum window are omitted with a logged insufficient
// history failure.
func (a *Analyser) buildOverlays(series *shared.Series) map[string][]shared.Point {
	closes := series.Closes()
	overlays := map[string][]shared.Point{
		"sma_20":  shared.OverlayPoints(series, indicator.SMA(closes, 20)),
		"sma_50":  shared.OverlayPoints(series, indicator.SMA(closes, 50)),
		"sma_200": shared.OverlayPoints(series, indicator.SMA(closes, 200)),
	}

	bbwp, err := a.bbwpLine(series)
	if err != nil {
		a.cfg.Logger.Debug().Msgf("omitting bbwp overlay for %s: %v", series.Market, err)
	} else {
		overlays["bbwp"] = bbwp
	}

	cmf, err := a.cmfLine(series)
	if err != nil {
		a.cfg.Logger.Debug().Msgf("omitting cmf overlay for %s: %v", series.Market, err)
	} else {
		overlays["cmf"] = cmf
	}

	return overlays
}

// bbwpLine builds the BBWP chart line. Chart lines have no sentinel
// fallback, series below the minimum length are a hard failure.
func (a *Analyser) bbwpLine(series *shared.Series) ([]shared.Point, error) {
	if series.Len() < indicator.BollingerLength+1 {
		return nil, fmt.Errorf("%w: bbwp requires %d bars, got %d",
			shared.ErrInsufficientHistory, indicator.BollingerLength+1, series.Len())
	}

	bbwp := indicator.BBWP(series.Closes(), indicator.BollingerLength, indicator.DefaultBBWPWindow)
	return shared.OverlayPoints(series, bbwp), nil
}

// cmfLine builds the CMF chart line, failing hard below the minimum window.
func (a *Analyser) cmfLine(series *shared.Series) ([]shared.Point, error) {
	if series.Len() < indicator.DefaultCMFWindow {
		return nil, fmt.Errorf("%w: cmf requires %d bars, got %d",
			shared.ErrInsufficientHistory, indicator.DefaultCMFWindow, series.Len())
	}

	cmf := indicator.CMF(series.Highs(), series.Lows(), series.Closes(), series.Volumes(),
		indicator.DefaultCMFWindow)
	return shared.OverlayPoints(series, cmf), nil
}

// buildTargets assembles the price-target bundle for the provided series.
func (a *Analyser) buildTargets(series *shared.Series) PriceTargets {
	targets := PriceTargets{
		MeanReversion: projection.MeanReversion(series, classify.DefaultMeanRevPeriod),
	}

	pivots := pivot.Zigzag(series.Closes(), zigzagWindow, zigzagThreshold)
	fib, err := projection.Fibonacci(series, pivots, projection.DefaultFibRatios)
	if err != nil {
		targets.FibStatus = "not enough pivot points"
		return targets
	}
	targets.Fibonacci = fib

	return targets
}

// buildWaveCount attaches the heuristic wave projection to the report.
func (a *Analyser) buildWaveCount(series *shared.Series, report *Report) {
	last, ok := series.Last()
	if !ok {
		return
	}

	pivots := pivot.Zigzag(series.Closes(), zigzagWindow, zigzagThreshold)
	wave, err := projection.Elliott(pivots, last.Close)
	if err != nil {
		report.WaveStatus = err.Error()
		return
	}

	report.WaveCount = wave
}

// ScanWatchlist analyses every watched symbol on independent workers.
// Workers share no mutable state beyond the read-only cache.
func (a *Analyser) ScanWatchlist(ctx context.Context, timeframe shared.Timeframe) map[string]*Report {
	reports := make(map[string]*Report)

	var mtx sync.Mutex
	var wg sync.WaitGroup
	for idx := range a.cfg.Watchlist {
		symbol := a.cfg.Watchlist[idx]

		a.workers <- struct{}{}
		wg.Add(1)
		go func(symbol string) {
			defer func() {
				<-a.workers
				wg.Done()
			}()

			report, err := a.Analyse(ctx, symbol, timeframe)
			if err != nil {
				if !errors.Is(err, context.Canceled) {
					a.cfg.Logger.Error().Msgf("analysing %s: %v", symbol, err)
				}
				return
			}

			mtx.Lock()
			reports[symbol] = report
			mtx.Unlock()
		}(symbol)
	}
	wg.Wait()

	return reports
}

// Run schedules periodic watchlist scans and blocks until the provided
// context is cancelled.
func (a *Analyser) Run(ctx context.Context) error {
	if a.cfg.JobScheduler != nil && a.cfg.ScanSchedule != "" {
		_, err := a.cfg.JobScheduler.NewJob(
			gocron.CronJob(a.cfg.ScanSchedule, false),
			gocron.NewTask(func() {
				reports := a.ScanWatchlist(ctx, shared.Daily)
				a.cfg.Logger.Info().Msgf("watchlist scan complete: %d symbols", len(reports))
			}),
		)
		if err != nil {
			return fmt.Errorf("scheduling watchlist scan: %w", err)
		}

		a.cfg.JobScheduler.Start()
		defer func() {
			err := a.cfg.JobScheduler.Shutdown()
			if err != nil {
				a.cfg.Logger.Error().Msgf("shutting down job scheduler: %v", err)
			}
		}()
	}

	<-ctx.Done()
	return nil
}

// stringify renders the provided label series as strings.
func stringify[T fmt.Stringer](labels []T) []string {
	out := make([]string, len(labels))
	for idx := range labels {
		out[idx] = labels[idx].String()
	}

	return out
}
