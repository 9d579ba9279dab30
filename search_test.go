package skymatch

import "testing"

func TestSearcher_ForwardSearchFindsNearestNeighbor(t *testing.T) {
	ra1 := []float64{10}
	dec1 := []float64{0}
	ra2 := []float64{10.1, 10.0003, 50}
	dec2 := []float64{0, 0, 0}

	g := buildGrid(ra1, dec1, ra2, dec2, 4)
	pts1 := toPoints(ra1, dec1)
	pts2 := toPoints(ra2, dec2)
	proto := newDepthCache(g.cellArcsec)
	s := newSearcher(g, ra1, dec1, ra2, dec2, pts1, pts2, proto, false)

	reg := newTopKRegister(1)
	s.forwardSearch(0, reg)

	if reg.ids[0] != 1 {
		t.Fatalf("expected nearest neighbor index 1, got %v", reg.ids[0])
	}
}

func TestSearcher_ForwardSearchExcludesSelfInSelfMode(t *testing.T) {
	ra := []float64{10, 10.0001, 10.5}
	dec := []float64{0, 0, 0}

	g := buildGrid(ra, dec, ra, dec, 4)
	pts := toPoints(ra, dec)
	proto := newDepthCache(g.cellArcsec)
	s := newSearcher(g, ra, dec, ra, dec, pts, pts, proto, true)

	reg := newTopKRegister(1)
	s.forwardSearch(0, reg)

	if reg.ids[0] == 0 {
		t.Fatalf("self pair should have been excluded")
	}
	if reg.ids[0] != 1 {
		t.Fatalf("expected nearest non-self neighbor index 1, got %v", reg.ids[0])
	}
}

func TestSearcher_ForwardMatchesBruteForce(t *testing.T) {
	ra1 := []float64{0, 12, 45, 90, 180, 270, 359}
	dec1 := []float64{0, -10, 20, 45, -45, 60, -60}
	ra2 := []float64{1, 13, 44, 91, 179, 271, 0}
	dec2 := []float64{0.5, -9.5, 19.5, 45.5, -44.5, 60.5, -59.5}

	g := buildGrid(ra1, dec1, ra2, dec2, 2)
	pts1 := toPoints(ra1, dec1)
	pts2 := toPoints(ra2, dec2)
	proto := newDepthCache(g.cellArcsec)
	s := newSearcher(g, ra1, dec1, ra2, dec2, pts1, pts2, proto, false)

	for i := range ra1 {
		bucketedReg := newTopKRegister(2)
		s.forwardSearch(i, bucketedReg)

		bruteReg := newTopKRegister(2)
		for j := range pts2 {
			bruteReg.offer(uint32(j), proxy(pts1[i], pts2[j]))
		}

		for k := 0; k < 2; k++ {
			if bucketedReg.ids[k] != bruteReg.ids[k] {
				t.Errorf("point %d, k=%d: bucketed id %v != brute-force id %v", i, k, bucketedReg.ids[k], bruteReg.ids[k])
			}
		}
	}
}

func TestSearcher_ReverseSearchFindsNearestNeighbor(t *testing.T) {
	ra1 := []float64{10.1, 10.0003, 50}
	dec1 := []float64{0, 0, 0}
	ra2 := []float64{10}
	dec2 := []float64{0}

	g := buildGrid(ra1, dec1, ra2, dec2, 4)
	pts1 := toPoints(ra1, dec1)
	pts2 := toPoints(ra2, dec2)
	proto := newDepthCache(g.cellArcsec)
	s := newSearcher(g, ra1, dec1, ra2, dec2, pts1, pts2, proto, false)

	reg := newTopKRegister(1)
	s.reverseSearch(0, reg)

	if reg.ids[0] != 1 {
		t.Fatalf("expected nearest catalog-1 neighbor index 1, got %v", reg.ids[0])
	}
}
