package shared

import (
	"encoding/json"
	"math"
)

const (
	// InsufficientData is the sentinel reported when a metric offset falls
	// outside the available history.
	InsufficientData = "insufficient data"
)

// valueKind discriminates the variants of a metric value.
type valueKind int

const (
	insufficientValue valueKind = iota
	numericValue
	labelValue
)

// Value is a tagged metric value: a number, a classification label or the
// insufficient data sentinel.
type Value struct {
	kind  valueKind
	num   float64
	label string
}

// NumericValue returns a numeric metric value. A NaN resolves to the
// insufficient data sentinel.
func NumericValue(v float64) Value {
	if math.IsNaN(v) {
		return Value{}
	}

	return Value{kind: numericValue, num: v}
}

// LabelValue returns a classification label metric value.
func LabelValue(label string) Value {
	return Value{kind: labelValue, label: label}
}

// Insufficient returns the insufficient data sentinel value.
func Insufficient() Value {
	return Value{}
}

// IsInsufficient reports whether the value is the insufficient data sentinel.
func (v Value) IsInsufficient() bool {
	return v.kind == insufficientValue
}

// Float returns the numeric variant of the value if set.
func (v Value) Float() (float64, bool) {
	if v.kind != numericValue {
		return 0, false
	}

	return v.num, true
}

// Label returns the label variant of the value if set.
func (v Value) Label() (string, bool) {
	if v.kind != labelValue {
		return "", false
	}

	return v.label, true
}

// Round2 rounds the provided value to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// MarshalJSON encodes the value as a 2-decimal-rounded number, a label
// string or the insufficient data sentinel string.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case numericValue:
		return json.Marshal(Round2(v.num))
	case labelValue:
		return json.Marshal(v.label)
	default:
		return json.Marshal(InsufficientData)
	}
}

// Metric snapshot lag offsets, in bars.
const (
	LagSeven     = 7
	LagFourteen  = 14
	LagTwentyOne = 21
)

// MetricSnapshot samples a metric at fixed backward bar offsets.
type MetricSnapshot struct {
	Current Value `json:"current"`
	Lag7    Value `json:"lag_7"`
	Lag14   Value `json:"lag_14"`
	Lag21   Value `json:"lag_21"`
}

// snapshotAt resolves a backward offset into the provided length, returning
// false when the offset falls outside the available history.
func snapshotAt(length int, offset int) (int, bool) {
	idx := length - 1 - offset
	if idx < 0 {
		return 0, false
	}

	return idx, true
}

// NewNumericSnapshot samples the provided aligned numeric series at the
// snapshot offsets. NaN samples resolve to the insufficient data sentinel.
func NewNumericSnapshot(vals []float64) MetricSnapshot {
	sample := func(offset int) Value {
		idx, ok := snapshotAt(len(vals), offset)
		if !ok {
			return Insufficient()
		}

		return NumericValue(vals[idx])
	}

	return MetricSnapshot{
		Current: sample(0),
		Lag7:    sample(LagSeven),
		Lag14:   sample(LagFourteen),
		Lag21:   sample(LagTwentyOne),
	}
}

// NewLabelSnapshot samples the provided aligned label series at the snapshot
// offsets. Labels equal to the unknown label resolve to the sentinel.
func NewLabelSnapshot(labels []string, unknown string) MetricSnapshot {
	sample := func(offset int) Value {
		idx, ok := snapshotAt(len(labels), offset)
		if !ok || labels[idx] == unknown {
			return Insufficient()
		}

		return LabelValue(labels[idx])
	}

	return MetricSnapshot{
		Current: sample(0),
		Lag7:    sample(LagSeven),
		Lag14:   sample(LagFourteen),
		Lag21:   sample(LagTwentyOne),
	}
}

// Point is a unit overlay sample exported for charting.
type Point struct {
	Time  int64   `json:"time"`
	Value float64 `json:"value"`
}

// OverlayPoints exports the provided aligned indicator line as chart points.
// NaN samples are omitted, not nulled.
func OverlayPoints(series *Series, vals []float64) []Point {
	points := make([]Point, 0, len(vals))
	for idx := range vals {
		if idx >= len(series.Bars) {
			break
		}
		if math.IsNaN(vals[idx]) {
			continue
		}

		points = append(points, Point{
			Time:  series.Bars[idx].Date.Unix(),
			Value: Round2(vals[idx]),
		})
	}

	return points
}
