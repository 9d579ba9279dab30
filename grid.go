package skymatch

import "math"

// bbox is an axis-aligned (ra, dec) bounding rectangle in degrees.
type bbox struct {
	raMin, raMax, decMin, decMax float64
}

func boundingBox(ra, dec []float64) bbox {
	b := bbox{raMin: math.Inf(1), raMax: math.Inf(-1), decMin: math.Inf(1), decMax: math.Inf(-1)}
	for i := range ra {
		if ra[i] < b.raMin {
			b.raMin = ra[i]
		}
		if ra[i] > b.raMax {
			b.raMax = ra[i]
		}
		if dec[i] < b.decMin {
			b.decMin = dec[i]
		}
		if dec[i] > b.decMax {
			b.decMax = dec[i]
		}
	}
	return b
}

func (b bbox) union(o bbox) bbox {
	return bbox{
		raMin:  math.Min(b.raMin, o.raMin),
		raMax:  math.Max(b.raMax, o.raMax),
		decMin: math.Min(b.decMin, o.decMin),
		decMax: math.Max(b.decMax, o.decMax),
	}
}

// area returns the rectangle's area via the convex-hull area of its four
// corners — for an axis-aligned box that is simply width*height, per spec
// §4.3 step 3.
func (b bbox) area() float64 {
	w := b.raMax - b.raMin
	h := b.decMax - b.decMin
	return w * h
}

// bucket holds the catalog-1 and catalog-2 point indices that fall into one
// grid cell.
type bucket struct {
	cat1 []uint32
	cat2 []uint32
}

// grid is the rectangular bucket index of spec §4.3: a regular array of
// (ra, dec) cells, each holding the indices of catalog-1 and catalog-2
// points that fall inside it. It is built once, owned by the scheduler, and
// shared read-only across all workers.
type grid struct {
	ra0, dec0  float64 // degrees, lower-left corner after padding
	dra, ddec  float64 // degrees, per-axis cell edge
	cellArcsec float64 // arcsec, the uniform sky-projected cell edge C
	nx, ny     int
	buckets    []bucket // row-major, index = iy*nx + ix
}

const minCellArcsec = 1e-6

// buildGrid sizes and fills the bucket grid for the given catalogs. nth is
// the requested neighbor count K (spec §4.3 step 2's "nth"), post-clamp.
func buildGrid(ra1, dec1, ra2, dec2 []float64, nth int) *grid {
	bb1 := boundingBox(ra1, dec1)
	bb2 := boundingBox(ra2, dec2)
	union := bb1.union(bb2)

	// A zero-extent box (e.g. a single point, or two coincident points)
	// would divide by zero below; pad by a tiny margin first.
	union = padBBoxMargin(union, 1e-6)
	bb2 = padBBoxMargin(bb2, 1e-6)

	n2 := len(ra2)
	ncells := int(math.Ceil(0.5 * math.Sqrt(math.Pi*float64(n2)/float64(max(nth, 1))/overgrowth)))
	if ncells < 1 {
		ncells = 1
	}

	area := bb2.area()
	if area <= 0 {
		area = minCellArcsec
	}
	cellArcsec := 3600 * math.Sqrt(area) / float64(ncells)
	if cellArcsec < minCellArcsec {
		cellArcsec = minCellArcsec
	}

	meanDec2 := meanOf(dec2)
	cosMeanDec := math.Abs(math.Cos(meanDec2 * degToRad))
	if cosMeanDec < 1e-6 {
		cosMeanDec = 1e-6 // near the pole: avoid a degenerate zero-width RA cell
	}
	dra := cellArcsec * cosMeanDec / 3600
	ddec := cellArcsec / 3600

	// Pad the bounding box outward by one cell on every side to prevent
	// boundary-bucket underflow (spec §4.3 step 5).
	ra0 := union.raMin - dra
	raMax := union.raMax + dra
	dec0 := union.decMin - ddec
	decMax := union.decMax + ddec

	nx := int(math.Ceil((raMax - ra0) / dra))
	ny := int(math.Ceil((decMax - dec0) / ddec))
	if nx < 1 {
		nx = 1
	}
	if ny < 1 {
		ny = 1
	}

	g := &grid{
		ra0: ra0, dec0: dec0,
		dra: dra, ddec: ddec,
		cellArcsec: cellArcsec,
		nx:         nx, ny: ny,
		buckets: make([]bucket, nx*ny),
	}

	for i := range ra1 {
		ix, iy := g.cellIndex(ra1[i], dec1[i])
		b := &g.buckets[iy*nx+ix]
		b.cat1 = append(b.cat1, uint32(i))
	}
	for j := range ra2 {
		ix, iy := g.cellIndex(ra2[j], dec2[j])
		b := &g.buckets[iy*nx+ix]
		b.cat2 = append(b.cat2, uint32(j))
	}

	return g
}

func padBBoxMargin(b bbox, margin float64) bbox {
	if b.raMax-b.raMin < margin {
		b.raMin -= margin / 2
		b.raMax += margin / 2
	}
	if b.decMax-b.decMin < margin {
		b.decMin -= margin / 2
		b.decMax += margin / 2
	}
	return b
}

func meanOf(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	var sum float64
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}

// cellIndex maps a degree-valued (ra, dec) coordinate to its grid cell.
// Assignment is floor-based, making a point that lands exactly on a cell
// boundary canonical and deterministic (spec §7).
func (g *grid) cellIndex(ra, dec float64) (ix, iy int) {
	ix = int(math.Floor((ra - g.ra0) / g.dra))
	iy = int(math.Floor((dec - g.dec0) / g.ddec))
	if ix < 0 {
		ix = 0
	}
	if ix >= g.nx {
		ix = g.nx - 1
	}
	if iy < 0 {
		iy = 0
	}
	if iy >= g.ny {
		iy = g.ny - 1
	}
	return ix, iy
}

// cellCenter returns the (ra, dec) of the center of cell (ix, iy), in
// degrees.
func (g *grid) cellCenter(ix, iy int) (ra, dec float64) {
	ra = g.ra0 + (float64(ix)+0.5)*g.dra
	dec = g.dec0 + (float64(iy)+0.5)*g.ddec
	return ra, dec
}

// at returns the bucket at (ix, iy), or nil if the coordinates fall
// outside the grid.
func (g *grid) at(ix, iy int) *bucket {
	if ix < 0 || ix >= g.nx || iy < 0 || iy >= g.ny {
		return nil
	}
	return &g.buckets[iy*g.nx+ix]
}
