package vmath

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Abs returns the absolute value of an int
func Abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// StepToward moves v one unit toward target, staying inside [lo, hi]
func StepToward(v, target, lo, hi int) int {
	switch {
	case v < target && v < hi:
		return v + 1
	case v > target && v > lo:
		return v - 1
	}
	return v
}
