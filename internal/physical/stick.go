package physical

import "math"

// CircleToSquare stretches a stick reading outward so that a circular
// physical gate fills the square logical range. At 100 percent a diagonal
// deflection at the circular limit reaches the corner of the square; at 0
// percent the reading passes through unchanged.
func CircleToSquare(x, y int16, percent uint32) (int16, int16) {
	if percent == 0 || (x == 0 && y == 0) {
		return x, y
	}
	if percent > 100 {
		percent = 100
	}

	fx := float64(x)
	fy := float64(y)
	// Multiplier that would project the current angle onto the unit square.
	denom := math.Max(math.Abs(fx), math.Abs(fy))
	mult := math.Hypot(fx, fy) / denom
	mult = 1.0 + (mult-1.0)*float64(percent)/100.0

	return clampStick(fx * mult), clampStick(fy * mult)
}

func clampStick(v float64) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}
