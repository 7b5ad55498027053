package classify

import (
	"math"

	"github.com/avh/trend/indicator"
)

const (
	// weakADXThreshold is the ADX level at or below which a trend is weak.
	weakADXThreshold = 20
	// strongDIThreshold is the DI level from which a rising trend is strong.
	strongDIThreshold = 35
)

// ADXTrend represents the directional strength bucket of a bar.
type ADXTrend int

const (
	ADXUnknown ADXTrend = iota
	ADXWeak
	ADXStrongBullish
	ADXBullish
	ADXStrongBearish
	ADXBearish
	ADXModerate
)

// String stringifies the provided ADX trend.
func (t ADXTrend) String() string {
	switch t {
	case ADXWeak:
		return "Weak"
	case ADXStrongBullish:
		return "Strong Bullish"
	case ADXBullish:
		return "Bullish"
	case ADXStrongBearish:
		return "Strong Bearish"
	case ADXBearish:
		return "Bearish"
	case ADXModerate:
		return "Moderate"
	default:
		return "Unknown"
	}
}

// ADXBar classifies a bar's directional strength from its ADX value, the
// prior bar's ADX value and the directional indicator pair.
func ADXBar(adx float64, prevADX float64, plusDI float64, minusDI float64) ADXTrend {
	if math.IsNaN(adx) || math.IsNaN(plusDI) || math.IsNaN(minusDI) {
		return ADXUnknown
	}

	if adx <= weakADXThreshold {
		return ADXWeak
	}

	rising := !math.IsNaN(prevADX) && adx > prevADX
	if !rising {
		return ADXModerate
	}

	switch {
	case plusDI >= minusDI && plusDI >= strongDIThreshold:
		return ADXStrongBullish
	case plusDI >= minusDI:
		return ADXBullish
	case minusDI >= strongDIThreshold:
		return ADXStrongBearish
	default:
		return ADXBearish
	}
}

// ADXSeries classifies the provided directional index per bar.
func ADXSeries(di indicator.DirectionalIndex) []ADXTrend {
	out := make([]ADXTrend, len(di.ADX))
	for idx := range di.ADX {
		prev := math.NaN()
		if idx > 0 {
			prev = di.ADX[idx-1]
		}
		out[idx] = ADXBar(di.ADX[idx], prev, di.PlusDI[idx], di.MinusDI[idx])
	}

	return out
}
