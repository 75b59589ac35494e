package window

import (
	"github.com/cwbudde/algo-vecmath"
)

// Coefficients configures f for a frame of length n and returns the dense
// coefficient slice, one weight per sample.
//
// This is the bridge from the streaming Begin/Factor contract to callers
// that want a precomputed buffer, such as FFT front-ends that window whole
// frames at once.
func Coefficients(f Function, n int) ([]float64, error) {
	if err := validateLength(n); err != nil {
		return nil, err
	}

	f.Begin(n)

	out := make([]float64, n)
	for i := range out {
		out[i] = f.Factor(i)
	}

	return out, nil
}

// Apply windows buf in place using f. An empty buffer is a no-op.
func Apply(f Function, buf []float64) error {
	if len(buf) == 0 {
		return nil
	}

	coeffs, err := Coefficients(f, len(buf))
	if err != nil {
		return err
	}

	vecmath.MulBlockInPlace(buf, coeffs)

	return nil
}

// ApplyCoefficients multiplies samples with coefficients and returns a new slice.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

// ApplyCoefficientsInPlace multiplies samples with coefficients in place.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}
