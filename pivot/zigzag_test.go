package pivot

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/peterldowns/testy/assert"
)

func TestZigzagThresholdFiltering(t *testing.T) {
	// The swings off the 105 pivot fall short of the 5% threshold, so only
	// the first candidate survives.
	vals := []float64{100, 105, 100, 110, 95}

	got := Zigzag(vals, 1, 0.05)

	want := []Pivot{{Index: 1, Price: 105, Kind: High}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected pivots (-want +got): %s", diff)
	}
}

func TestZigzagAlternatingSwings(t *testing.T) {
	vals := []float64{100, 120, 100, 130, 100, 140, 100}

	got := Zigzag(vals, 1, 0.05)

	want := []Pivot{
		{Index: 1, Price: 120, Kind: High},
		{Index: 2, Price: 100, Kind: Low},
		{Index: 3, Price: 130, Kind: High},
		{Index: 4, Price: 100, Kind: Low},
		{Index: 5, Price: 140, Kind: High},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected pivots (-want +got): %s", diff)
	}
}

func TestZigzagPlateauIsNotStrict(t *testing.T) {
	// The flat top never forms a strict window extremum.
	vals := []float64{100, 110, 110, 110, 100}

	got := Zigzag(vals, 1, 0.01)

	assert.Equal(t, len(got), 0)
}

func TestZigzagInsufficientHistory(t *testing.T) {
	got := Zigzag([]float64{100, 105}, 1, 0.05)

	assert.Nil(t, got)
}

func TestZigzagIndicesUnique(t *testing.T) {
	vals := []float64{10, 12, 9, 14, 8, 16, 7, 18, 6}

	got := Zigzag(vals, 1, 0.02)

	seen := make(map[int]bool)
	for _, p := range got {
		assert.False(t, seen[p.Index])
		seen[p.Index] = true
	}
	assert.GreaterThan(t, len(got), 1)
}

func TestRecent(t *testing.T) {
	pivots := []Pivot{{Index: 1}, {Index: 2}, {Index: 3}}

	assert.Equal(t, len(Recent(pivots, 2)), 2)
	assert.Equal(t, Recent(pivots, 2)[0].Index, 2)
	assert.Equal(t, len(Recent(pivots, 5)), 3)
}

func TestLocalExtrema(t *testing.T) {
	vals := []float64{10, 12, 9, 14, 8}

	ext := LocalExtrema(vals, 1)

	assert.True(t, ext.Highs[1])
	assert.True(t, ext.Lows[2])
	assert.True(t, ext.Highs[3])
	assert.False(t, ext.Highs[0])
	assert.False(t, ext.Lows[4])
}

func TestKindString(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		want string
	}{
		{
			name: "high pivot",
			kind: High,
			want: "high",
		},
		{
			name: "low pivot",
			kind: Low,
			want: "low",
		},
		{
			name: "unknown kind",
			kind: Kind(9),
			want: "unknown",
		},
	}

	for _, test := range tests {
		got := test.kind.String()
		if got != test.want {
			t.Errorf("%s: expected %s, got %s", test.name, test.want, got)
		}
	}
}
