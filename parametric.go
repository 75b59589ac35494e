package window

import "math"

// Default parameters used when a constructor receives an out-of-range value.
const (
	defaultKaiserBeta = 8.6
	defaultTukeyAlpha = 0.5
	defaultGaussAlpha = 2.5
)

// Cosine computes sin(pi*r), a single half-cycle of a sine.
type Cosine struct{ state }

// NewCosine returns a Cosine window.
func NewCosine() *Cosine { return &Cosine{} }

// Factor returns the attenuation weight for the sample at idx.
func (w *Cosine) Factor(idx int) float64 {
	return clamp1(w.factorInternal(w.mirror(idx)))
}

func (w *Cosine) factorInternal(idx int) float64 {
	return math.Sin(math.Pi * w.ratio(idx))
}

// Name identifies the window implementation.
func (w *Cosine) Name() string { return "Cosine" }

// Gauss is a Gaussian taper exp(-ln2*((2r-1)*alpha)^2). Larger alpha narrows
// the bell.
type Gauss struct {
	state
	alpha float64
}

// NewGauss returns a Gauss window. A non-positive alpha falls back to the
// default of 2.5.
func NewGauss(alpha float64) *Gauss {
	if alpha <= 0 {
		alpha = defaultGaussAlpha
	}

	return &Gauss{alpha: alpha}
}

// Factor returns the attenuation weight for the sample at idx.
func (w *Gauss) Factor(idx int) float64 {
	return clamp1(w.factorInternal(w.mirror(idx)))
}

func (w *Gauss) factorInternal(idx int) float64 {
	v := (2*w.ratio(idx) - 1) * w.alpha

	return math.Exp(-math.Ln2 * v * v)
}

// Name identifies the window implementation.
func (w *Gauss) Name() string { return "Gauss" }

// Kaiser is the Kaiser-Bessel window with shape parameter beta. Beta trades
// main lobe width against sidelobe suppression; beta 0 degenerates to the
// rectangular window.
type Kaiser struct {
	state
	beta    float64
	invI0   float64
	haveInv bool
}

// NewKaiser returns a Kaiser window. A negative beta falls back to the
// default of 8.6.
func NewKaiser(beta float64) *Kaiser {
	if beta < 0 {
		beta = defaultKaiserBeta
	}

	return &Kaiser{beta: beta}
}

// Factor returns the attenuation weight for the sample at idx.
func (w *Kaiser) Factor(idx int) float64 {
	return clamp1(w.factorInternal(w.mirror(idx)))
}

func (w *Kaiser) factorInternal(idx int) float64 {
	if w.beta == 0 {
		return 1
	}

	if !w.haveInv {
		w.invI0 = 1 / besselI0(w.beta)
		w.haveInv = true
	}

	r := 2*w.ratio(idx) - 1
	term := math.Sqrt(math.Max(0, 1-r*r))

	return besselI0(w.beta*term) * w.invI0
}

// Name identifies the window implementation.
func (w *Kaiser) Name() string { return "Kaiser" }

// Tukey is a cosine-tapered window: flat over the center, raised-cosine
// ramps over the outer alpha fraction of the frame. Alpha 0 degenerates to
// rectangular, alpha 1 to the canonical Hann shape.
type Tukey struct {
	state
	alpha float64
}

// NewTukey returns a Tukey window. An alpha outside [0,1] falls back to the
// default of 0.5.
func NewTukey(alpha float64) *Tukey {
	if alpha < 0 || alpha > 1 {
		alpha = defaultTukeyAlpha
	}

	return &Tukey{alpha: alpha}
}

// Factor returns the attenuation weight for the sample at idx.
func (w *Tukey) Factor(idx int) float64 {
	return clamp1(w.factorInternal(w.mirror(idx)))
}

func (w *Tukey) factorInternal(idx int) float64 {
	x := w.ratio(idx)

	if w.alpha <= 0 {
		return 1
	}

	if w.alpha >= 1 {
		return 0.5 * (1 - math.Cos(twoPi*x))
	}

	// Mirroring keeps x in the first half, so only the leading ramp and the
	// flat plateau are ever evaluated.
	if x < w.alpha/2 {
		return 0.5 * (1 + math.Cos(math.Pi*(2*x/w.alpha-1)))
	}

	return 1
}

// Name identifies the window implementation.
func (w *Tukey) Name() string { return "Tukey" }

// besselI0 returns a numerical approximation of the modified Bessel function
// of the first kind, order zero.
func besselI0(x float64) float64 {
	ax := math.Abs(x)
	if ax < 3.75 {
		y := x / 3.75
		y *= y

		return 1.0 + y*(3.5156229+y*(3.0899424+y*(1.2067492+y*(0.2659732+y*(0.0360768+y*0.0045813)))))
	}

	y := 3.75 / ax

	return (math.Exp(ax) / math.Sqrt(ax)) *
		(0.39894228 + y*(0.01328592+y*(0.00225319+y*(-0.00157565+y*(0.00916281+y*(-0.02057706+y*(0.02635537+y*(-0.01647633+y*0.00392377))))))))
}
