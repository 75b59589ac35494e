// Package window provides window functions for pre-multiplying a signal
// frame before an FFT to reduce spectral leakage.
//
// The package is built around a streaming capability contract: a caller
// configures a window once per frame length with Begin and then queries the
// per-sample attenuation weight with Factor. All supported shapes are
// symmetric around the frame center, so only the first half of the window is
// evaluated; the second half is served by mirroring the index. Factor results
// are capped at 1.0: the Hann variant's 0.54 coefficient overshoots to 1.08
// at the center, and other formulas can exceed 1.0 by a rounding error there.
//
// Buffered wraps any Function and caches the half-window, so an expensive
// formula is evaluated at most N/2+1 times per distinct frame length. Slice
// helpers (Coefficients, Apply) bridge to callers that want dense
// coefficient buffers instead of per-sample queries:
//
//	w := window.NewBuffered(window.NewBlackmanHarris())
//	w.Begin(frameLen)
//	for i := range frame {
//		frame[i] *= w.Factor(i)
//	}
//
// The package intentionally does not implement FFT itself; it only produces
// the attenuation weights consumed by an FFT front-end.
package window
