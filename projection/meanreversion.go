package projection

import (
	"math"

	"github.com/avh/trend/classify"
	"github.com/avh/trend/indicator"
	"github.com/avh/trend/shared"
)

const (
	// InProgressStatus is reported while deviation history is too short for
	// percentile bands.
	InProgressStatus = "in progress"
)

// MeanReversionTarget holds the percentile deviation bands and the
// projected reversion price of a series.
type MeanReversionTarget struct {
	Band            classify.MeanRevBand `json:"-"`
	BandLabel       string               `json:"band"`
	DeviationPct    float64              `json:"deviation_percent"`
	LowerPercentile float64              `json:"lower_percentile"`
	UpperPercentile float64              `json:"upper_percentile"`
	Target          float64              `json:"projected_target"`
	Status          string               `json:"status,omitempty"`
}

// MeanReversion computes the deviation percentile bands of the provided
// series against its moving average and projects the reversion target (the
// current average). Short histories report an in-progress status.
func MeanReversion(series *shared.Series, period int) *MeanReversionTarget {
	closes := series.Closes()
	deviations := classify.Deviations(closes, period)

	var observed int
	for idx := range deviations {
		if !math.IsNaN(deviations[idx]) {
			observed++
		}
	}
	if observed < classify.MinMeanRevObservations {
		return &MeanReversionTarget{Status: InProgressStatus}
	}

	band := classify.MeanReversion(closes, period)
	ma := indicator.SMA(closes, period)

	return &MeanReversionTarget{
		Band:            band,
		BandLabel:       band.String(),
		DeviationPct:    shared.Round2(deviations[len(deviations)-1]),
		LowerPercentile: shared.Round2(classify.Percentile(deviations, 0.05)),
		UpperPercentile: shared.Round2(classify.Percentile(deviations, 0.95)),
		Target:          shared.Round2(ma[len(ma)-1]),
	}
}
