package skymatch

// topKRegister is the insertion-sorted top-K candidate buffer described in
// spec §4.4: ids/proxies kept sorted ascending by proxy distance, with
// proxies[k-1] acting as the current pruning radius. Unlike kdtree.go's
// knnHeap (a container/heap max-heap), offer uses an explicit backward
// bubble-swap because spec §4.4 mandates "insertion-sorted... maintained
// under a tightening radius bound" rather than heap semantics; for the
// small, fixed K values this kernel is tuned for, the straight-line
// insertion sort is also simply cheaper than heap bookkeeping.
type topKRegister struct {
	k       int
	ids     []uint32
	proxies []float64
}

// newTopKRegister returns a register of width k with every slot set to the
// MISSING/+Inf sentinel pair, using proxy distance 1.0 (the maximum
// possible proxy value, corresponding to antipodal points) as "worse than
// anything real" before the first real conversion at the end.
func newTopKRegister(k int) *topKRegister {
	r := &topKRegister{
		k:       k,
		ids:     make([]uint32, k),
		proxies: make([]float64, k),
	}
	r.reset()
	return r
}

func (r *topKRegister) reset() {
	for i := 0; i < r.k; i++ {
		r.ids[i] = MISSING
		r.proxies[i] = 1.0
	}
}

// worst returns the current pruning radius in proxy units: the largest
// proxy distance still held in the register.
func (r *topKRegister) worst() float64 {
	return r.proxies[r.k-1]
}

// offer inserts (id, p) into the register if p improves on the current
// worst slot, bubbling it backward into sorted position by swapping pairs
// while predecessors are larger (spec §4.4 step 3).
func (r *topKRegister) offer(id uint32, p float64) {
	if p >= r.proxies[r.k-1] {
		return
	}
	pos := r.k - 1
	r.ids[pos] = id
	r.proxies[pos] = p
	for pos > 0 && r.proxies[pos-1] > r.proxies[pos] {
		r.ids[pos-1], r.ids[pos] = r.ids[pos], r.ids[pos-1]
		r.proxies[pos-1], r.proxies[pos] = r.proxies[pos], r.proxies[pos-1]
		pos--
	}
}

// hasMissing reports whether any slot is still unfilled.
func (r *topKRegister) hasMissing() bool {
	return r.ids[r.k-1] == MISSING
}

// writeInto converts the register's proxy distances to arcseconds and
// writes the K x N1 flat column for catalog-1 point i into id/d.
func (r *topKRegister) writeInto(id []uint32, d []float64, n1, i int) {
	for k := 0; k < r.k; k++ {
		id[k*n1+i] = r.ids[k]
		if r.ids[k] == MISSING {
			d[k*n1+i] = inf
		} else {
			d[k*n1+i] = proxyToArcsec(r.proxies[k])
		}
	}
}
