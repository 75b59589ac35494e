package window

import (
	"math"

	algofft "github.com/cwbudde/algo-fft"
)

// gridOversample controls the zero-padding factor of the coarse spectrum
// grid used by Analyze.
const gridOversample = 8

// Analysis holds numerically computed spectral properties of a window.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// Bandwidth3dB is the 3 dB (half-power) main lobe width in bins.
	Bandwidth3dB float64
	// HighestSidelobedB is the highest sidelobe level relative to DC in dB.
	HighestSidelobedB float64
	// FirstMinimumBins is the first null (minimum) position in bins.
	FirstMinimumBins float64
	// ScallopLossdB is the worst-case amplitude error for an off-bin signal.
	ScallopLossdB float64
}

// Analyze computes spectral properties of the given window coefficients.
//
// A zero-padded FFT provides the dense magnitude grid for the coarse null
// and sidelobe searches; refinement at fractional frequencies uses direct
// DFT evaluation.
func Analyze(coeffs []float64) Analysis {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}
	}

	sum := 0.0
	sumSq := 0.0
	for _, c := range coeffs {
		sum += c
		sumSq += c * c
	}

	// DC reference: |DFT(0)|^2 = sum^2.
	dcRef := sum * sum
	if dcRef == 0 {
		return Analysis{}
	}

	coherentGain := sum / float64(n)
	enbw := float64(n) * sumSq / (sum * sum)

	// Scallop loss: response at a half-bin offset.
	halfBinMagSq := dftMagSq(coeffs, 0.5/float64(n))
	scallopLoss := 0.0
	if halfBinMagSq > 0 {
		scallopLoss = 10 * math.Log10(halfBinMagSq/dcRef)
	}

	grid := magSqGrid(coeffs)
	nf := float64(n)

	firstMinFreq := searchFirstMinimum(coeffs, grid)
	sidelobe := searchHighestSidelobe(coeffs, grid, dcRef, firstMinFreq)
	bw3dB := searchBandwidth(coeffs, dcRef)

	return Analysis{
		CoherentGain:      coherentGain,
		ENBW:              enbw,
		Bandwidth3dB:      bw3dB * nf,
		HighestSidelobedB: sidelobe,
		FirstMinimumBins:  firstMinFreq * nf,
		ScallopLossdB:     scallopLoss,
	}
}

// EquivalentNoiseBandwidth returns the ENBW in bins for a window.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	sumSquares := 0.0

	for _, c := range coeffs {
		sum += c
		sumSquares += c * c
	}

	if sum == 0 {
		return 0, errZeroCoherentGain
	}

	return float64(len(coeffs)) * sumSquares / (sum * sum), nil
}

// magSqGrid returns |DFT|^2 of coeffs zero-padded to an oversampled
// power-of-two length, covering normalized frequencies [0, 0.5] with
// spacing 1/fftSize. Falls back to direct DFT evaluation when no FFT plan
// is available for the padded size.
func magSqGrid(coeffs []float64) []float64 {
	fftSize := nextPow2(len(coeffs)) * gridOversample
	half := fftSize/2 + 1

	if plan, err := algofft.NewPlan64(fftSize); err == nil {
		in := make([]complex128, fftSize)
		for i, c := range coeffs {
			in[i] = complex(c, 0)
		}

		out := make([]complex128, fftSize)
		if err := plan.Forward(out, in); err == nil {
			grid := make([]float64, half)
			for i := range grid {
				re := real(out[i])
				im := imag(out[i])
				grid[i] = re*re + im*im
			}

			return grid
		}
	}

	grid := make([]float64, half)
	for i := range grid {
		grid[i] = dftMagSq(coeffs, float64(i)/float64(fftSize))
	}

	return grid
}

// dftMagSq evaluates |DFT(freq)|^2 at an arbitrary normalized frequency.
func dftMagSq(coeffs []float64, freq float64) float64 {
	re, im := 0.0, 0.0
	w := 2 * math.Pi * freq

	for k, c := range coeffs {
		phase := w * float64(k)
		re += c * math.Cos(phase)
		im -= c * math.Sin(phase)
	}

	return re*re + im*im
}

// searchFirstMinimum locates the first spectral null as a normalized
// frequency: a coarse outward scan on the grid followed by golden-section
// refinement on the true spectrum.
func searchFirstMinimum(coeffs, grid []float64) float64 {
	step := 0.5 / float64(len(grid)-1)

	// Require descent below 10% of DC before looking for a turn-around, so
	// the wide main lobe plateau of flat-top windows is not mistaken for a
	// null.
	threshold := grid[0] * 0.1
	coarse := step
	prev := grid[0]

	for i := 1; i < len(grid); i++ {
		v := grid[i]
		if prev < threshold && v > prev {
			coarse = float64(i-1) * step
			break
		}
		prev = v
	}

	a := coarse - 2*step
	b := coarse + 2*step
	if a < 0 {
		a = 0
	}
	if b > 0.5 {
		b = 0.5
	}

	const phi = 0.6180339887498949 // (sqrt(5)-1)/2
	c := b - phi*(b-a)
	d := a + phi*(b-a)

	for i := 0; i < 80; i++ {
		fc := dftMagSq(coeffs, c)
		fd := dftMagSq(coeffs, d)
		if fc < fd {
			b = d
		} else {
			a = c
		}
		c = b - phi*(b-a)
		d = a + phi*(b-a)
	}

	return (a + b) / 2
}

// searchHighestSidelobe finds the peak sidelobe level in dB relative to DC,
// scanning the grid from the first null to Nyquist and refining around the
// coarse peak with direct DFT evaluation.
func searchHighestSidelobe(coeffs, grid []float64, dcRef, startFreq float64) float64 {
	step := 0.5 / float64(len(grid)-1)
	start := int(math.Ceil(startFreq / step))
	if start < 1 {
		start = 1
	}

	peakVal := 0.0
	peakFreq := startFreq

	for i := start; i < len(grid); i++ {
		if grid[i] > peakVal {
			peakVal = grid[i]
			peakFreq = float64(i) * step
		}
	}

	fineStep := step / 32
	refined := peakVal

	for freq := peakFreq - step; freq <= peakFreq+step; freq += fineStep {
		if freq < 0 {
			continue
		}
		if v := dftMagSq(coeffs, freq); v > refined {
			refined = v
		}
	}

	if refined <= 0 || dcRef <= 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(refined/dcRef)
}

// searchBandwidth finds the two-sided 3 dB (half-power) main lobe width as a
// normalized frequency span, using bisection on the magnitude response.
func searchBandwidth(coeffs []float64, dcRef float64) float64 {
	invRef := 1.0 / dcRef

	lo := 0.0
	hi := 0.5

	for i := 0; i < 80; i++ {
		mid := (lo + hi) / 2
		if dftMagSq(coeffs, mid)*invRef > 0.5 {
			lo = mid
		} else {
			hi = mid
		}
	}

	return 2 * lo
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
