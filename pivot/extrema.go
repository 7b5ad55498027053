package pivot

// Extrema holds the strict local extremum index sets of a series.
type Extrema struct {
	Highs map[int]bool
	Lows  map[int]bool
}

// LocalExtrema extracts the strict local extrema of the provided series
// using a symmetric lookaround window of strength bars on each side.
func LocalExtrema(vals []float64, strength int) Extrema {
	ext := Extrema{
		Highs: make(map[int]bool),
		Lows:  make(map[int]bool),
	}
	if strength <= 0 {
		return ext
	}

	for idx := strength; idx < len(vals)-strength; idx++ {
		kind, ok := windowExtremum(vals, idx, strength)
		if !ok {
			continue
		}

		switch kind {
		case High:
			ext.Highs[idx] = true
		case Low:
			ext.Lows[idx] = true
		}
	}

	return ext
}
