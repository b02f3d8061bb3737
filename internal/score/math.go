package score

import "math"

// safeDiv returns num/den, or 0 when den is zero. Every formula in the engine
// divides through this so the degenerate-input default lives in one place.
func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0.0
	}
	return num / den
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0.0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// pstdev is the population standard deviation (divisor N, not N-1).
func pstdev(xs []float64) float64 {
	if len(xs) == 0 {
		return 0.0
	}
	m := mean(xs)
	var ss float64
	for _, x := range xs {
		d := x - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)))
}

// norm01 rescales x from [lo, hi] to [0, 1], saturating outside the range.
// A degenerate range (hi <= lo) maps everything to 0.
func norm01(x, lo, hi float64) float64 {
	if hi <= lo {
		return 0.0
	}
	v := (x - lo) / (hi - lo)
	return math.Max(0.0, math.Min(1.0, v))
}
