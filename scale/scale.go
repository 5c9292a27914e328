// SPDX-License-Identifier: MIT

package scale

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/ahp/modelerr"
)

const (
	// Tolerance is the absolute tolerance for scale membership and for
	// comparing a new judgment against a recorded one.
	Tolerance = 1e-6

	// Size is the number of legal magnitudes.
	Size = 17
)

// allowed holds the legal magnitudes in ascending order.
var allowed = [Size]float64{
	1.0 / 9, 1.0 / 8, 1.0 / 7, 1.0 / 6, 1.0 / 5, 1.0 / 4, 1.0 / 3, 1.0 / 2,
	1,
	2, 3, 4, 5, 6, 7, 8, 9,
}

// pretty mirrors allowed index by index.
var pretty = [Size]string{
	"1/9", "1/8", "1/7", "1/6", "1/5", "1/4", "1/3", "1/2",
	"1",
	"2", "3", "4", "5", "6", "7", "8", "9",
}

// AllowedValues returns a copy of the 17 legal magnitudes, ascending.
func AllowedValues() []float64 {
	return append([]float64(nil), allowed[:]...)
}

// PrettyScale returns the human-readable magnitudes, ascending ("1/9" … "9").
func PrettyScale() []string {
	return append([]string(nil), pretty[:]...)
}

// lookup returns the index of the allowed magnitude within Tolerance of x.
func lookup(x float64) (int, bool) {
	if !(x > 0) || math.IsInf(x, 0) {
		return 0, false
	}
	for k, v := range allowed {
		if math.Abs(x-v) <= Tolerance {
			return k, true
		}
	}

	return 0, false
}

// IsValid reports whether x > 0 and x is within Tolerance of a legal magnitude.
// Non-positive, NaN and off-scale values return false.
func IsValid(x float64) bool {
	_, ok := lookup(x)

	return ok
}

// Reciprocal returns 1/x for an on-scale x.
// Fails with modelerr.ErrInvalidSaatyScale when IsValid(x) is false.
func Reciprocal(x float64) (float64, error) {
	if !IsValid(x) {
		return 0, invalidValue("scale.Reciprocal", x)
	}

	return 1.0 / x, nil
}

// Format renders x as its scale spelling ("1/3") when on-scale, otherwise
// as the shortest float representation.
func Format(x float64) string {
	if k, ok := lookup(x); ok {
		return pretty[k]
	}

	return strconv.FormatFloat(x, 'g', -1, 64)
}

// Parse reads a judgment written either as a number ("3", "0.5") or as a
// fraction ("1/3"). It checks syntax only; scale membership is enforced when
// the judgment is applied, where the offending labels are known.
func Parse(s string) (float64, error) {
	s = strings.TrimSpace(s)
	num, den, isFrac := strings.Cut(s, "/")
	if !isFrac {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, modelerr.Newf(modelerr.KindInvalidScale, "scale.Parse", "cannot parse %q", s).Wrap(err)
		}

		return v, nil
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return 0, modelerr.Newf(modelerr.KindInvalidScale, "scale.Parse", "cannot parse numerator of %q", s).Wrap(err)
	}
	d, err := strconv.ParseFloat(strings.TrimSpace(den), 64)
	if err != nil {
		return 0, modelerr.Newf(modelerr.KindInvalidScale, "scale.Parse", "cannot parse denominator of %q", s).Wrap(err)
	}
	if d == 0 {
		return 0, modelerr.Newf(modelerr.KindInvalidScale, "scale.Parse", "zero denominator in %q", s)
	}

	return n / d, nil
}

func invalidValue(op string, x float64) *modelerr.Error {
	return modelerr.Newf(modelerr.KindInvalidScale, op, "%s is not on the Saaty scale", Format(x)).
		WithValues(x).
		WithAllowed(PrettyScale())
}
