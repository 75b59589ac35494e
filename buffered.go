package window

// bufferedNameLimit bounds the display name built from the wrapped window.
const bufferedNameLimit = 79

// Buffered wraps another Function and serves Factor lookups from a cached
// copy of the wrapped window's first half. The wrapped window's formula is
// evaluated at most halfSamples+1 times per distinct frame length, no matter
// how often Factor is called.
type Buffered struct {
	state
	wrapped Function
	cache   []float64
}

// NewBuffered returns a Buffered decorator around f.
func NewBuffered(f Function) *Buffered {
	return &Buffered{wrapped: f}
}

// Begin configures the decorator and, when the wrapped window's configured
// length differs, reconfigures it and refills the half-window cache. The
// cache slice is reused when its required size is unchanged.
func (b *Buffered) Begin(samples int) {
	b.state.Begin(samples)

	if b.wrapped.Samples() == samples {
		return
	}

	b.wrapped.Begin(samples)

	need := b.halfSamples + 1
	if len(b.cache) != need {
		b.cache = ensureLen(b.cache, need)
		for j := 0; j <= b.halfSamples; j++ {
			b.cache[j] = b.wrapped.Factor(j)
		}
	}
}

// Factor returns the attenuation weight for the sample at idx, served from
// the cache.
func (b *Buffered) Factor(idx int) float64 {
	return clamp1(b.factorInternal(b.mirror(idx)))
}

func (b *Buffered) factorInternal(idx int) float64 {
	if idx < 0 || idx >= len(b.cache) {
		return 0
	}

	return b.cache[idx]
}

// Name returns "Buffered " plus the wrapped window's name, truncated to a
// fixed display-length bound.
func (b *Buffered) Name() string {
	name := "Buffered " + b.wrapped.Name()
	if len(name) > bufferedNameLimit {
		name = name[:bufferedNameLimit]
	}

	return name
}

// ensureLen returns a slice with the requested length, reusing buf capacity
// if possible.
func ensureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}

	if cap(buf) >= n {
		return buf[:n]
	}

	return make([]float64, n)
}
