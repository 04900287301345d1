package aggregation

import "math"

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Mean averages the finite values only. ok is false when nothing was averaged,
// so callers can drop the group instead of treating it as a zero score.
func Mean(values []float64) (avg float64, ok bool) {
	var sum float64
	n := 0
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// mean2 is Mean rounded to two decimals.
func mean2(values []float64) (float64, bool) {
	avg, ok := Mean(values)
	if !ok {
		return 0, false
	}
	return Round2(avg), true
}
