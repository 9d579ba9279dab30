package skymatch

// reverseAccumulator tracks the proxy-distance-valued running best match
// into catalog 1 for every catalog-2 point, used by the brute-force kernel
// (and by the brute-force parallel merge, spec §4.7) to maintain rd/rid
// while scanning in proxy units, converting to arcseconds only once at the
// very end — never inside the hot loop.
type reverseAccumulator struct {
	rid   []uint32
	proxy []float64
}

func newReverseAccumulator(n2 int) *reverseAccumulator {
	ra := &reverseAccumulator{
		rid:   make([]uint32, n2),
		proxy: make([]float64, n2),
	}
	for j := range ra.rid {
		ra.rid[j] = MISSING
		ra.proxy[j] = 1.0
	}
	return ra
}

// offer records (i, p) as catalog-2 point j's best match so far if p
// improves on the current one.
func (ra *reverseAccumulator) offer(j int, i uint32, p float64) {
	if p < ra.proxy[j] {
		ra.proxy[j] = p
		ra.rid[j] = i
	}
}

// mergeBest writes, for every j, whichever of acc's candidates has the
// smallest proxy distance into the shared rid/rd (converted to arcsec).
// This is the brute-force parallel path's merge policy of spec §4.7: each
// worker touches every catalog-2 index, so the merge picks the minimum
// across workers rather than copying disjoint slices.
func mergeBest(accs []*reverseAccumulator, rid []uint32, rd []float64) {
	n2 := len(rid)
	for j := 0; j < n2; j++ {
		bestProxy := 1.0
		bestID := MISSING
		for _, acc := range accs {
			if acc == nil {
				continue
			}
			if acc.proxy[j] < bestProxy {
				bestProxy = acc.proxy[j]
				bestID = acc.rid[j]
			}
		}
		rid[j] = bestID
		if bestID == MISSING {
			rd[j] = inf
		} else {
			rd[j] = proxyToArcsec(bestProxy)
		}
	}
}

// bruteForceRange runs the brute-force kernel of spec §4.6 over catalog-1
// points [beg, end): a double nested scan against the whole of catalog 2,
// applying the same proxy and the same top-k insertion as the bucketed
// path, additionally feeding every candidate into acc so the reverse pass
// can be derived from the same scan (acc is nil in self-match mode, where
// the reverse pass is not computed at all).
func bruteForceRange(pts1, pts2 []point, beg, end int, self bool, reg *topKRegister, res *Result, acc *reverseAccumulator, tick func(int)) {
	n2 := len(pts2)
	n := 0
	for i := beg; i < end; i++ {
		reg.reset()
		for j := 0; j < n2; j++ {
			if self && i == j {
				continue
			}
			p := proxy(pts1[i], pts2[j])
			reg.offer(uint32(j), p)
			if acc != nil {
				acc.offer(j, uint32(i), p)
			}
		}
		reg.writeInto(res.ID, res.D, res.N1, i)
		n++
		if n%progressChunk == 0 {
			tick(progressChunk)
		}
	}
	tick(n % progressChunk)
}
