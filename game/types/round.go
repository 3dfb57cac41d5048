package types

import "math"

// Round rounds half away from zero to the nearest integer.
func Round(x float64) int {
	return int(math.Round(x))
}
