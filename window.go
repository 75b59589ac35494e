package window

// Function is the capability contract implemented by every window shape.
//
// Begin must be called with the frame length before the first Factor call
// and again whenever the frame length changes. Factor then returns the
// attenuation weight for a sample index in [0, N).
type Function interface {
	Begin(samples int)
	Factor(idx int) float64
	Samples() int
	Name() string
}

// state holds the frame configuration shared by all window implementations.
// It is embedded by the formula leaves and by Buffered, and provides the
// symmetric index mirroring and the normalized-position helper.
type state struct {
	samples       int
	halfSamples   int
	samplesMinus1 float64
}

// Begin records the frame length and derives the half length. It is cheap
// and does not allocate.
func (s *state) Begin(samples int) {
	s.samples = samples
	s.halfSamples = samples / 2
	s.samplesMinus1 = float64(samples) - 1
}

// Samples returns the frame length set by the last Begin call.
func (s *state) Samples() int { return s.samples }

// ratio returns the normalized position idx/(N-1), the argument of every
// trigonometric window formula.
func (s *state) ratio(idx int) float64 {
	return float64(idx) / s.samplesMinus1
}

// mirror maps idx into the first half of the frame. Indices past the center
// are reflected, exploiting the symmetry of all supported shapes.
//
// A zero or inconsistent half length means Begin was skipped or state was
// corrupted; that is programmer error, not a runtime condition, and panics.
func (s *state) mirror(idx int) int {
	if s.samples <= 0 || s.halfSamples != s.samples/2 {
		panic("window: Factor called before Begin")
	}

	if idx <= s.halfSamples {
		return idx
	}

	return s.samples - idx - 1
}

// clamp1 caps v at 1.0.
func clamp1(v float64) float64 {
	if v > 1 {
		return 1
	}

	return v
}
