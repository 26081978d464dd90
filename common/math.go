package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Approach moves current toward target by at most step.
func Approach(current, target, step float64) float64 {
	if step <= 0 {
		return current
	}
	if math.Abs(target-current) <= step {
		return target
	}
	if target > current {
		return current + step
	}
	return current - step
}

// Mod returns the non-negative remainder of a modulo m.
func Mod(a, m int) int {
	return ((a % m) + m) % m
}
