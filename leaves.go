package window

import "math"

const (
	twoPi  = 2 * math.Pi
	fourPi = 4 * math.Pi
	sixPi  = 6 * math.Pi
)

// Rectangle is the trivial all-pass window: 1.0 for every sample in the frame.
type Rectangle struct{ state }

// NewRectangle returns a Rectangle window.
func NewRectangle() *Rectangle { return &Rectangle{} }

// Factor returns the attenuation weight for the sample at idx.
func (w *Rectangle) Factor(idx int) float64 {
	return clamp1(w.factorInternal(w.mirror(idx)))
}

func (w *Rectangle) factorInternal(idx int) float64 {
	if idx < 0 || idx >= w.samples {
		return 0
	}

	return 1
}

// Name identifies the window implementation.
func (w *Rectangle) Name() string { return "Rectangle" }

// Hamming is the classic raised-cosine window 0.54 - 0.46*cos(2*pi*r).
type Hamming struct{ state }

// NewHamming returns a Hamming window.
func NewHamming() *Hamming { return &Hamming{} }

// Factor returns the attenuation weight for the sample at idx.
func (w *Hamming) Factor(idx int) float64 {
	return clamp1(w.factorInternal(w.mirror(idx)))
}

func (w *Hamming) factorInternal(idx int) float64 {
	return 0.54 - 0.46*math.Cos(twoPi*w.ratio(idx))
}

// Name identifies the window implementation.
func (w *Hamming) Name() string { return "Hamming" }

// Hann computes 0.54*(1 - cos(2*pi*r)).
//
// The leading coefficient is 0.54 rather than the canonical 0.5, matching
// Hamming's leading coefficient. The deviation is kept as-is; the center
// value overshoots to 1.08 and is handled by the 1.0 clamp.
type Hann struct{ state }

// NewHann returns a Hann window.
func NewHann() *Hann { return &Hann{} }

// Factor returns the attenuation weight for the sample at idx.
func (w *Hann) Factor(idx int) float64 {
	return clamp1(w.factorInternal(w.mirror(idx)))
}

func (w *Hann) factorInternal(idx int) float64 {
	return 0.54 * (1 - math.Cos(twoPi*w.ratio(idx)))
}

// Name identifies the window implementation.
func (w *Hann) Name() string { return "Hann" }

// Triangle is a triangular taper. The formula carries an idx-1 offset, so
// the ramp is centered half a sample late and the first sample dips slightly
// below zero.
type Triangle struct{ state }

// NewTriangle returns a Triangle window.
func NewTriangle() *Triangle { return &Triangle{} }

// Factor returns the attenuation weight for the sample at idx.
func (w *Triangle) Factor(idx int) float64 {
	return clamp1(w.factorInternal(w.mirror(idx)))
}

func (w *Triangle) factorInternal(idx int) float64 {
	center := w.samplesMinus1 / 2

	return 1 - 2*math.Abs(float64(idx-1)-center)/w.samplesMinus1
}

// Name identifies the window implementation.
func (w *Triangle) Name() string { return "Triangle" }

// Nuttall is the 4-term Nuttall window.
type Nuttall struct{ state }

// NewNuttall returns a Nuttall window.
func NewNuttall() *Nuttall { return &Nuttall{} }

// Factor returns the attenuation weight for the sample at idx.
func (w *Nuttall) Factor(idx int) float64 {
	return clamp1(w.factorInternal(w.mirror(idx)))
}

func (w *Nuttall) factorInternal(idx int) float64 {
	r := w.ratio(idx)

	return 0.355768 - 0.487396*math.Cos(twoPi*r) +
		0.144232*math.Cos(fourPi*r) - 0.012604*math.Cos(sixPi*r)
}

// Name identifies the window implementation.
func (w *Nuttall) Name() string { return "Nuttall" }

// Blackman is a 3-term Blackman window.
type Blackman struct{ state }

// NewBlackman returns a Blackman window.
func NewBlackman() *Blackman { return &Blackman{} }

// Factor returns the attenuation weight for the sample at idx.
func (w *Blackman) Factor(idx int) float64 {
	return clamp1(w.factorInternal(w.mirror(idx)))
}

func (w *Blackman) factorInternal(idx int) float64 {
	r := w.ratio(idx)

	return 0.42323 - 0.49755*math.Cos(twoPi*r) + 0.07922*math.Cos(fourPi*r)
}

// Name identifies the window implementation.
func (w *Blackman) Name() string { return "Blackman" }

// BlackmanNuttall is the 4-term Blackman-Nuttall window.
type BlackmanNuttall struct{ state }

// NewBlackmanNuttall returns a BlackmanNuttall window.
func NewBlackmanNuttall() *BlackmanNuttall { return &BlackmanNuttall{} }

// Factor returns the attenuation weight for the sample at idx.
func (w *BlackmanNuttall) Factor(idx int) float64 {
	return clamp1(w.factorInternal(w.mirror(idx)))
}

func (w *BlackmanNuttall) factorInternal(idx int) float64 {
	r := w.ratio(idx)

	return 0.3635819 - 0.4891775*math.Cos(twoPi*r) +
		0.1365995*math.Cos(fourPi*r) - 0.0106411*math.Cos(sixPi*r)
}

// Name identifies the window implementation.
func (w *BlackmanNuttall) Name() string { return "BlackmanNuttall" }

// BlackmanHarris is the 4-term Blackman-Harris window.
type BlackmanHarris struct{ state }

// NewBlackmanHarris returns a BlackmanHarris window.
func NewBlackmanHarris() *BlackmanHarris { return &BlackmanHarris{} }

// Factor returns the attenuation weight for the sample at idx.
func (w *BlackmanHarris) Factor(idx int) float64 {
	return clamp1(w.factorInternal(w.mirror(idx)))
}

func (w *BlackmanHarris) factorInternal(idx int) float64 {
	r := w.ratio(idx)

	return 0.35875 - 0.48829*math.Cos(twoPi*r) +
		0.14128*math.Cos(fourPi*r) - 0.01168*math.Cos(sixPi*r)
}

// Name identifies the window implementation.
func (w *BlackmanHarris) Name() string { return "BlackmanHarris" }

// FlatTop is a 3-term flat-top window for amplitude-accurate measurement.
type FlatTop struct{ state }

// NewFlatTop returns a FlatTop window.
func NewFlatTop() *FlatTop { return &FlatTop{} }

// Factor returns the attenuation weight for the sample at idx.
func (w *FlatTop) Factor(idx int) float64 {
	return clamp1(w.factorInternal(w.mirror(idx)))
}

func (w *FlatTop) factorInternal(idx int) float64 {
	r := w.ratio(idx)

	return 0.2810639 - 0.5208972*math.Cos(twoPi*r) + 0.1980399*math.Cos(fourPi*r)
}

// Name identifies the window implementation.
func (w *FlatTop) Name() string { return "FlatTop" }

// Welch is a parabolic taper. Like Triangle it evaluates at idx-1, so the
// parabola is centered half a sample late and the first sample dips below
// zero.
type Welch struct{ state }

// NewWelch returns a Welch window.
func NewWelch() *Welch { return &Welch{} }

// Factor returns the attenuation weight for the sample at idx.
func (w *Welch) Factor(idx int) float64 {
	return clamp1(w.factorInternal(w.mirror(idx)))
}

func (w *Welch) factorInternal(idx int) float64 {
	half := w.samplesMinus1 / 2
	t := (float64(idx-1) - half) / half

	return 1 - t*t
}

// Name identifies the window implementation.
func (w *Welch) Name() string { return "Welch" }
