package skymatch

import (
	"math"
	"testing"
)

const floatTol = 1e-9

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestGreatCircleDistanceArcsec_OneDegreeDec(t *testing.T) {
	d := greatCircleDistanceArcsec(0, 0, 0, 1)
	if !almostEqual(d, 3600.0, 1e-6) {
		t.Errorf("expected 3600.0 arcsec, got %v", d)
	}
}

func TestGreatCircleDistanceArcsec_IdenticalPoints(t *testing.T) {
	d := greatCircleDistanceArcsec(123.456, -45.678, 123.456, -45.678)
	if !almostEqual(d, 0, floatTol) {
		t.Errorf("expected 0, got %v", d)
	}
}

func TestGreatCircleDistanceArcsec_Antipodal(t *testing.T) {
	d := greatCircleDistanceArcsec(0, 0, 180, 0)
	expected := 180.0 * 3600.0
	if !almostEqual(d, expected, 1e-3) {
		t.Errorf("expected %v, got %v", expected, d)
	}
}

func TestProxyMonotoneWithTrueDistance(t *testing.T) {
	origin := point{ra: 0, dec: 0, cosDec: 1}
	prevProxy := -1.0
	prevTrue := -1.0
	for decDeg := 0.1; decDeg <= 10; decDeg += 0.1 {
		p := toPoints([]float64{0}, []float64{decDeg})[0]
		pr := proxy(origin, p)
		tr := greatCircleDistanceArcsec(0, 0, 0, decDeg)
		if pr <= prevProxy {
			t.Fatalf("proxy not increasing at dec=%v", decDeg)
		}
		if tr <= prevTrue {
			t.Fatalf("true distance not increasing at dec=%v", decDeg)
		}
		prevProxy, prevTrue = pr, tr
	}
}

func TestProxyArcsecRoundTrip(t *testing.T) {
	for _, arcsec := range []float64{0, 1, 100, 3600, 180 * 3600} {
		p := arcsecToProxy(arcsec)
		back := proxyToArcsec(p)
		if !almostEqual(back, arcsec, 1e-6*math.Max(1, arcsec)) {
			t.Errorf("round-trip mismatch for %v arcsec: got %v", arcsec, back)
		}
	}
}

func TestToPointsPrecomputesCosDec(t *testing.T) {
	pts := toPoints([]float64{10}, []float64{60})
	want := math.Cos(60 * degToRad)
	if !almostEqual(pts[0].cosDec, want, floatTol) {
		t.Errorf("expected cosDec %v, got %v", want, pts[0].cosDec)
	}
}
