package permute

import "math"

// Offset returns round(GoldenRatio * width * height), rounding halves to
// even. The product is evaluated left to right so the result is bit-for-bit
// identical to other implementations of the scheme.
//
// Examples: Offset(2,1)=1, Offset(4,4)=10, Offset(100,37)=2287.
func Offset(width, height int) int {
	return int(math.RoundToEven(GoldenRatio * float64(width) * float64(height)))
}
