package skymatch

// searcher bundles the read-only state a single worker needs to run the
// forward and reverse search kernels: the shared bucket grid, the
// catalogs' radian points (with precomputed cos(dec)), the degree-valued
// coordinates needed for cell lookups and cell-center distances, and a
// private, independently-growable depth cache.
//
// A searcher is single-owner: the scheduler clones one depth cache per
// worker (spec §4.2's concurrency note) and hands each worker its own
// searcher built from the shared grid and catalogs.
type searcher struct {
	g *grid

	ra1, dec1 []float64 // degrees
	ra2, dec2 []float64 // degrees
	pts1      []point   // radians, precomputed cos(dec)
	pts2      []point

	depth *depthCache
	self  bool
}

// newSearcher builds a searcher sharing g, ra/dec and the radian point
// caches (read-only), with its own cloned depth cache.
func newSearcher(g *grid, ra1, dec1, ra2, dec2 []float64, pts1, pts2 []point, proto *depthCache, self bool) *searcher {
	return &searcher{
		g: g,
		ra1: ra1, dec1: dec1,
		ra2: ra2, dec2: dec2,
		pts1: pts1, pts2: pts2,
		depth: proto.Clone(),
		self:  self,
	}
}

// maxUsefulDepth bounds ring growth to the point where a ring can no
// longer reach any grid cell at all (the ring radius then exceeds the
// entire grid's extent), which prevents an unbounded loop when fewer than
// K real neighbors exist for a query point (spec §7's soft "fewer than K
// neighbors ever found" condition — the remaining register slots are left
// at the MISSING/+Inf sentinel).
func (s *searcher) maxUsefulDepth() int {
	return s.g.nx + s.g.ny + 2
}

// forwardSearch finds the K nearest catalog-2 neighbors of catalog-1 point
// i, per spec §4.4, writing the sorted result into reg (reused across
// calls by the caller to avoid per-point allocation).
func (s *searcher) forwardSearch(i int, reg *topKRegister) {
	reg.reset()

	ix, iy := s.g.cellIndex(s.ra1[i], s.dec1[i])
	cra, cdec := s.g.cellCenter(ix, iy)
	cellDist := greatCircleDistanceArcsec(s.ra1[i], s.dec1[i], cra, cdec)

	maxDepth := s.maxUsefulDepth()
	for d := 0; ; d++ {
		ring := s.depth.Ring(d)
		for _, off := range ring.offsets {
			b := s.g.at(ix+off.dx, iy+off.dy)
			if b == nil {
				continue
			}
			for _, j := range b.cat2 {
				if s.self && int(j) == i {
					continue
				}
				reg.offer(j, proxy(s.pts1[i], s.pts2[j]))
			}
		}

		reached := ring.maxDist - 2*cellDist
		if reached < 0 {
			reached = 0
		}
		reachedProxy := arcsecToProxy(reached)

		if reg.worst() <= reachedProxy {
			break
		}
		if d >= maxDepth {
			break
		}
	}
}

// reverseSearch finds the single nearest catalog-1 point of catalog-2
// point j, per spec §4.5. Identical ring-expansion structure to
// forwardSearch, but maintains only a best-1 pair and scans catalog-1
// indices. Never invoked in self-match mode (spec §4.5 / §4.9: the forward
// result with K=1 already is the reverse map in that case).
func (s *searcher) reverseSearch(j int, reg *topKRegister) {
	reg.reset()

	ix, iy := s.g.cellIndex(s.ra2[j], s.dec2[j])
	cra, cdec := s.g.cellCenter(ix, iy)
	cellDist := greatCircleDistanceArcsec(s.ra2[j], s.dec2[j], cra, cdec)

	maxDepth := s.maxUsefulDepth()
	for d := 0; ; d++ {
		ring := s.depth.Ring(d)
		for _, off := range ring.offsets {
			b := s.g.at(ix+off.dx, iy+off.dy)
			if b == nil {
				continue
			}
			for _, i := range b.cat1 {
				reg.offer(i, proxy(s.pts2[j], s.pts1[i]))
			}
		}

		reached := ring.maxDist - 2*cellDist
		if reached < 0 {
			reached = 0
		}
		reachedProxy := arcsecToProxy(reached)

		if reg.worst() <= reachedProxy {
			break
		}
		if d >= maxDepth {
			break
		}
	}
}
