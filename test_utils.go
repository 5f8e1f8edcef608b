package flagkit

import "math"

// Rounding helpers for test comparisons of computed bucket ranges and
// weights.

func roundFloat(f float64) float64 {
	return math.Round(f*1e6) / 1e6
}

func roundArr(fs []float64) []float64 {
	res := make([]float64, len(fs))
	for i, f := range fs {
		res[i] = roundFloat(f)
	}
	return res
}

func roundRanges(ranges []BucketRange) []BucketRange {
	res := make([]BucketRange, len(ranges))
	for i, r := range ranges {
		res[i] = BucketRange{roundFloat(r.Min), roundFloat(r.Max)}
	}
	return res
}
