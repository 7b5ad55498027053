package indicator

import (
	"math"
)

// Ichimoku cloud periods.
const (
	TenkanPeriod = 9
	KijunPeriod  = 26
	SpanBPeriod  = 52
	CloudShift   = 26
)

// CloudPosition represents the position of price relative to the cloud.
type CloudPosition int

const (
	CloudUndefined CloudPosition = iota
	AboveCloud
	InsideCloud
	BelowCloud
)

// String stringifies the provided cloud position.
func (p CloudPosition) String() string {
	switch p {
	case AboveCloud:
		return "Above"
	case InsideCloud:
		return "Inside"
	case BelowCloud:
		return "Below"
	default:
		return "Undefined"
	}
}

// IchimokuLines holds the aligned ichimoku lines. Span A and span B are
// shifted forward by the cloud shift, so each slot holds the span bounding
// the cloud at that index.
type IchimokuLines struct {
	Tenkan []float64
	Kijun  []float64
	SpanA  []float64
	SpanB  []float64
}

// midpoint computes the rolling high/low midpoint over the provided period.
func midpoint(highs []float64, lows []float64, period int) []float64 {
	out := nanSlice(len(highs))
	for idx := period - 1; idx < len(highs); idx++ {
		hi := math.Inf(-1)
		lo := math.Inf(1)
		for j := idx - period + 1; j <= idx; j++ {
			hi = math.Max(hi, highs[j])
			lo = math.Min(lo, lows[j])
		}
		out[idx] = (hi + lo) / 2
	}

	return out
}

// Ichimoku computes the ichimoku lines for the provided highs and lows.
func Ichimoku(highs []float64, lows []float64) IchimokuLines {
	size := len(highs)
	lines := IchimokuLines{
		Tenkan: midpoint(highs, lows, TenkanPeriod),
		Kijun:  midpoint(highs, lows, KijunPeriod),
		SpanA:  nanSlice(size),
		SpanB:  nanSlice(size),
	}

	spanB := midpoint(highs, lows, SpanBPeriod)
	for idx := range lines.Tenkan {
		shifted := idx + CloudShift
		if shifted >= size {
			break
		}

		if !math.IsNaN(lines.Tenkan[idx]) && !math.IsNaN(lines.Kijun[idx]) {
			lines.SpanA[shifted] = (lines.Tenkan[idx] + lines.Kijun[idx]) / 2
		}
		if !math.IsNaN(spanB[idx]) {
			lines.SpanB[shifted] = spanB[idx]
		}
	}

	return lines
}

// CloudPositions labels the position of each close relative to the cloud
// bounds at the same index as the shifted spans.
func (l IchimokuLines) CloudPositions(closes []float64) []CloudPosition {
	out := make([]CloudPosition, len(closes))
	for idx := range closes {
		if idx >= len(l.SpanA) || math.IsNaN(l.SpanA[idx]) || math.IsNaN(l.SpanB[idx]) {
			continue
		}

		upper := math.Max(l.SpanA[idx], l.SpanB[idx])
		lower := math.Min(l.SpanA[idx], l.SpanB[idx])
		switch {
		case closes[idx] > upper:
			out[idx] = AboveCloud
		case closes[idx] < lower:
			out[idx] = BelowCloud
		default:
			out[idx] = InsideCloud
		}
	}

	return out
}
