package classify

import (
	"math"
	"testing"

	"github.com/peterldowns/testy/assert"
)

func TestBBWPBucket(t *testing.T) {
	tests := []struct {
		name string
		bbwp float64
		want BBWPBand
	}{
		{
			name: "blue band at the top percentile",
			bbwp: 95,
			want: BlueBand,
		},
		{
			name: "blue band at the boundary",
			bbwp: 90,
			want: BlueBand,
		},
		{
			name: "red band at the bottom percentile",
			bbwp: 5,
			want: RedBand,
		},
		{
			name: "red band at the boundary",
			bbwp: 10,
			want: RedBand,
		},
		{
			name: "normal band",
			bbwp: 50,
			want: NormalBand,
		},
		{
			name: "nan is unknown",
			bbwp: math.NaN(),
			want: BBWPUnknown,
		},
	}

	for _, test := range tests {
		got := BBWPBucket(test.bbwp)
		if got != test.want {
			t.Errorf("%s: expected %v, got %v", test.name, test.want, got)
		}
	}
}

func TestBBWPSeries(t *testing.T) {
	got := BBWPSeries([]float64{math.NaN(), 95, 5, 50})

	assert.Equal(t, got, []BBWPBand{BBWPUnknown, BlueBand, RedBand, NormalBand})
}
