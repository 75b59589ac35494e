package window

import (
	"math"
	"testing"
)

func TestAnalyzeRectangle(t *testing.T) {
	coeffs, err := Coefficients(NewRectangle(), 256)
	if err != nil {
		t.Fatal(err)
	}

	a := Analyze(coeffs)

	if a.CoherentGain != 1 {
		t.Fatalf("CoherentGain = %v, want 1", a.CoherentGain)
	}

	if !almostEqual(a.ENBW, 1.0, 1e-9) {
		t.Fatalf("ENBW = %v, want 1.0", a.ENBW)
	}

	// Dirichlet kernel reference values.
	if !almostEqual(a.FirstMinimumBins, 1.0, 0.05) {
		t.Fatalf("FirstMinimumBins = %v, want ~1.0", a.FirstMinimumBins)
	}

	if !almostEqual(a.HighestSidelobedB, -13.26, 0.5) {
		t.Fatalf("HighestSidelobedB = %v, want ~-13.26", a.HighestSidelobedB)
	}

	if !almostEqual(a.Bandwidth3dB, 0.886, 0.05) {
		t.Fatalf("Bandwidth3dB = %v, want ~0.886", a.Bandwidth3dB)
	}

	if !almostEqual(a.ScallopLossdB, -3.92, 0.1) {
		t.Fatalf("ScallopLossdB = %v, want ~-3.92", a.ScallopLossdB)
	}
}

func TestAnalyzeHannENBW(t *testing.T) {
	// ENBW is invariant under coefficient scaling, but the 0.54 Hann is not
	// just a scaled Hann: the clamp flattens the center samples whose raw
	// value exceeds 1, which narrows the ENBW from the canonical 1.5 bins
	// to about 1.486.
	coeffs, err := Coefficients(NewHann(), 2048)
	if err != nil {
		t.Fatal(err)
	}

	a := Analyze(coeffs)

	if !almostEqual(a.ENBW, 1.486, 0.005) {
		t.Fatalf("ENBW = %v, want ~1.486", a.ENBW)
	}
}

func TestHannClampNarrowsENBW(t *testing.T) {
	// ENBW of an unclipped scaled Hann stays at the canonical value; the
	// clamped 0.54 variant must come out measurably narrower.
	const n = 2048

	canonical := make([]float64, n)
	for i := range canonical {
		canonical[i] = 0.54 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}

	ref, err := EquivalentNoiseBandwidth(canonical)
	if err != nil {
		t.Fatal(err)
	}

	if !almostEqual(ref, 1.5, 0.01) {
		t.Fatalf("unclipped ENBW = %v, want ~1.5", ref)
	}

	coeffs, err := Coefficients(NewHann(), n)
	if err != nil {
		t.Fatal(err)
	}

	got, err := EquivalentNoiseBandwidth(coeffs)
	if err != nil {
		t.Fatal(err)
	}

	if got >= ref {
		t.Fatalf("clamped ENBW = %v, want below unclipped %v", got, ref)
	}
}

func TestAnalyzeHammingSidelobe(t *testing.T) {
	coeffs, err := Coefficients(NewHamming(), 1024)
	if err != nil {
		t.Fatal(err)
	}

	a := Analyze(coeffs)

	if a.HighestSidelobedB > -40 || a.HighestSidelobedB < -46 {
		t.Fatalf("HighestSidelobedB = %v, want roughly -42.7", a.HighestSidelobedB)
	}

	if !almostEqual(a.ENBW, 1.36, 0.02) {
		t.Fatalf("ENBW = %v, want ~1.36", a.ENBW)
	}
}

func TestAnalyzeBlackmanHarrisSidelobe(t *testing.T) {
	coeffs, err := Coefficients(NewBlackmanHarris(), 1024)
	if err != nil {
		t.Fatal(err)
	}

	a := Analyze(coeffs)

	// 4-term Blackman-Harris suppresses sidelobes to roughly -92 dB.
	if a.HighestSidelobedB > -85 {
		t.Fatalf("HighestSidelobedB = %v, want below -85", a.HighestSidelobedB)
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	a := Analyze(nil)
	if a != (Analysis{}) {
		t.Fatalf("Analyze(nil) = %+v, want zero value", a)
	}

	a = Analyze([]float64{0, 0, 0})
	if a != (Analysis{}) {
		t.Fatalf("Analyze(zeros) = %+v, want zero value", a)
	}
}

func TestEquivalentNoiseBandwidth(t *testing.T) {
	coeffs, err := Coefficients(NewHann(), 2048)
	if err != nil {
		t.Fatal(err)
	}

	enbw, err := EquivalentNoiseBandwidth(coeffs)
	if err != nil {
		t.Fatal(err)
	}

	// Clamped 0.54 Hann, see TestAnalyzeHannENBW.
	if !almostEqual(enbw, 1.486, 0.005) {
		t.Fatalf("enbw = %v, want ~1.486", enbw)
	}

	if _, err := EquivalentNoiseBandwidth(nil); err == nil {
		t.Fatal("expected empty coeffs error")
	}

	if _, err := EquivalentNoiseBandwidth([]float64{0, 0, 0}); err == nil {
		t.Fatal("expected zero coherent gain error")
	}
}

func TestMagSqGridMatchesDirectDFT(t *testing.T) {
	coeffs, err := Coefficients(NewHamming(), 48)
	if err != nil {
		t.Fatal(err)
	}

	grid := magSqGrid(coeffs)
	fftSize := nextPow2(48) * gridOversample

	if len(grid) != fftSize/2+1 {
		t.Fatalf("grid len = %d, want %d", len(grid), fftSize/2+1)
	}

	for _, i := range []int{0, 1, 7, len(grid) / 2, len(grid) - 1} {
		want := dftMagSq(coeffs, float64(i)/float64(fftSize))
		if math.Abs(grid[i]-want) > 1e-6*(1+want) {
			t.Fatalf("bin %d: grid %v, direct DFT %v", i, grid[i], want)
		}
	}
}
