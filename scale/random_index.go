// SPDX-License-Identifier: MIT

package scale

import "github.com/katalvlaran/ahp/modelerr"

const (
	// MinOrder is the smallest matrix order with a Random Index.
	MinOrder = 1
	// MaxOrder is the largest tabulated order; larger matrices are rejected.
	MaxOrder = 15
)

// randomIndex[n] is Saaty's Random Index for order n; index 0 is unused.
// Values are empirical and not monotone (RI(12) < RI(11)).
var randomIndex = [MaxOrder + 1]float64{
	0,
	0.00, 0.00, 0.58, 0.90, 1.12,
	1.24, 1.32, 1.41, 1.45, 1.49,
	1.51, 1.48, 1.56, 1.57, 1.59,
}

// RandomIndex returns RI(n). Orders outside [MinOrder, MaxOrder] fail with
// modelerr.ErrStructure instead of being extrapolated.
func RandomIndex(n int) (float64, error) {
	if n < MinOrder || n > MaxOrder {
		return 0, modelerr.Newf(modelerr.KindStructure, "scale.RandomIndex",
			"matrix order %d outside Random Index table [%d, %d]", n, MinOrder, MaxOrder)
	}

	return randomIndex[n], nil
}

// RandomIndexTable returns a copy of the table keyed by order.
func RandomIndexTable() map[int]float64 {
	out := make(map[int]float64, MaxOrder)
	for n := MinOrder; n <= MaxOrder; n++ {
		out[n] = randomIndex[n]
	}

	return out
}
