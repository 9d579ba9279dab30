package skymatch

import "math"

// cellOffset is an integer (dx, dy) displacement between grid cells.
type cellOffset struct {
	dx, dy int
}

// depthRing lists the cell offsets newly reached at one depth, together
// with the euclidean radius (in grid-cell units scaled by the cell's
// arcsecond edge length) guaranteed to be enclosed once the ring has been
// fully scanned.
type depthRing struct {
	offsets []cellOffset
	maxDist float64 // arcsec
}

// depthCache is the lazily grown catalog of concentric bucket-offset rings
// described in spec §4.2. It is built against a specific grid cell edge
// length (cellArcsec) and is append-only and monotone: rings[d].maxDist <
// rings[d+1].maxDist.
//
// The cache is stateful during growth (it tracks which offsets have
// already been assigned to a ring), so each worker must operate on its own
// Clone rather than sharing one cache concurrently.
type depthCache struct {
	cellArcsec float64
	rings      []depthRing
	visited    map[cellOffset]bool
}

// newDepthCache creates an empty cache for a grid whose cells have edge
// length cellArcsec (arcseconds) and pre-grows it through depth seedDepth
// (seedDepth+1 rings, counting ring 0), to amortize ring growth in the hot
// loop.
func newDepthCache(cellArcsec float64) *depthCache {
	dc := &depthCache{
		cellArcsec: cellArcsec,
		visited:    make(map[cellOffset]bool),
	}
	dc.growRing0()
	dc.Grow(seedDepth)
	return dc
}

func (dc *depthCache) growRing0() {
	origin := cellOffset{0, 0}
	dc.visited[origin] = true
	dc.rings = append(dc.rings, depthRing{
		offsets: []cellOffset{origin},
		maxDist: dc.cellArcsec * 0.5,
	})
}

// Grow extends the cache so that Ring(depth) is valid, generating any
// missing intermediate rings. It is a no-op if the cache already reaches
// that depth.
func (dc *depthCache) Grow(depth int) {
	for len(dc.rings) <= depth {
		dc.growNextRing()
	}
}

// growNextRing builds the next ring (spec §4.2): enumerates every integer
// offset (x, y) with max(|x|, |y|) <= d not yet assigned to a ring, whose
// corner distance to the origin (cellMinDist, in cell units) is <= d+0.5;
// the ring's stored maxDist is that bound scaled to arcsec, C*(d+0.5). Because
// that bound is measured to the nearest corner rather than the nearest
// edge, a diagonal offset can fail it even when max(|x|, |y|) == d, and
// is picked up by a later ring instead. It scans one quadrant (x, y >= 0)
// and mirrors accepted offsets to the other three quadrants via
// 90-degree rotation, the visited mask preventing any offset — including
// ones an orbit's rotation lands back on — from appearing in more than
// one ring.
func (dc *depthCache) growNextRing() {
	d := len(dc.rings)
	threshold := dc.cellArcsec * (float64(d) + 0.5)
	cellThreshold := float64(d) + 0.5 // cellMinDist is in cell units, not arcsec

	var added []cellOffset
	for x := 0; x <= d; x++ {
		for y := 0; y <= d; y++ {
			o := cellOffset{x, y}
			if dc.visited[o] {
				continue
			}
			if cellMinDist(x, y) > cellThreshold {
				continue
			}
			for _, off := range [4]cellOffset{{x, y}, {-y, x}, {-x, -y}, {y, -x}} {
				if !dc.visited[off] {
					dc.visited[off] = true
					added = append(added, off)
				}
			}
		}
	}

	dc.rings = append(dc.rings, depthRing{offsets: added, maxDist: threshold})
}

// cellMinDist computes the euclidean distance, in cell units, from the
// origin point (0,0) to the nearest of the four corners of the unit cell
// centered at offset (dx, dy): the corners sit at (dx±0.5, dy±0.5), and
// the closest one along each axis independently is at |dx|-0.5 / |dy|-0.5
// (matching qxmatch.hpp's depth_cache::grow, which minimizes
// sqr(x±0.5)+sqr(y±0.5) over the four corners rather than the box-to-box
// gap between two unit cells).
func cellMinDist(dx, dy int) float64 {
	cx := math.Abs(float64(dx)) - 0.5
	cy := math.Abs(float64(dy)) - 0.5
	return math.Sqrt(cx*cx + cy*cy)
}

// Ring returns the ring at the given depth, growing the cache first if
// necessary.
func (dc *depthCache) Ring(depth int) depthRing {
	dc.Grow(depth)
	return dc.rings[depth]
}

// Clone produces a private, independently-growable copy of the cache for
// a single worker. Growth mutates the visited mask and appends rings, so
// sharing one cache across concurrent workers would race.
func (dc *depthCache) Clone() *depthCache {
	clone := &depthCache{
		cellArcsec: dc.cellArcsec,
		rings:      make([]depthRing, len(dc.rings)),
		visited:    make(map[cellOffset]bool, len(dc.visited)),
	}
	copy(clone.rings, dc.rings)
	for k, v := range dc.visited {
		clone.visited[k] = v
	}
	return clone
}
