package skymatch

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// partitionRanges splits [0, n) into up to numWorkers contiguous ranges,
// the last range absorbing the remainder — the same division the teacher
// uses in parallel.go: rowsPerWorker := (n + numWorkers - 1) / numWorkers.
func partitionRanges(n, numWorkers int) [][2]int {
	if n <= 0 {
		return nil
	}
	if numWorkers < 1 {
		numWorkers = 1
	}
	perWorker := (n + numWorkers - 1) / numWorkers

	ranges := make([][2]int, 0, numWorkers)
	for beg := 0; beg < n; beg += perWorker {
		end := beg + perWorker
		if end > n {
			end = n
		}
		ranges = append(ranges, [2]int{beg, end})
	}
	return ranges
}

// runRanges executes work once per range in ranges. A single range runs
// inline on the calling goroutine (spec §4.7: "If T <= 1, run the chosen
// kernel inline on the caller thread"); more than one range fans out on an
// errgroup.Group, chosen over a bare sync.WaitGroup (as the teacher's
// parallel.go uses) so a worker-local error has somewhere to go — see
// SPEC_FULL.md's scheduler design note.
func runRanges(ranges [][2]int, work func(beg, end int) error) error {
	if len(ranges) <= 1 {
		for _, r := range ranges {
			if err := work(r[0], r[1]); err != nil {
				return err
			}
		}
		return nil
	}

	g, _ := errgroup.WithContext(context.Background())
	for _, r := range ranges {
		beg, end := r[0], r[1]
		g.Go(func() error {
			return work(beg, end)
		})
	}
	return g.Wait()
}

// runBucketed runs the grid-accelerated forward pass over catalog 1 and,
// unless self-matching, the reverse pass over catalog 2. Each worker writes
// its results directly into its own disjoint column range of res, so no
// merge step follows. Each worker owns a private topKRegister and a private
// cloned depth cache; progress is a shared atomic counter incremented in
// batches of progressChunk points.
func runBucketed(ra1, dec1, ra2, dec2 []float64, pts1, pts2 []point, g *grid, p Params, k int, res *Result, tick func(int)) error {
	forwardRanges := partitionRanges(res.N1, p.Threads)
	proto := newDepthCache(g.cellArcsec)

	err := runRanges(forwardRanges, func(beg, end int) error {
		s := newSearcher(g, ra1, dec1, ra2, dec2, pts1, pts2, proto, p.Self)
		reg := newTopKRegister(k)
		n := 0
		for i := beg; i < end; i++ {
			s.forwardSearch(i, reg)
			reg.writeInto(res.ID, res.D, res.N1, i)
			n++
			if n%progressChunk == 0 {
				tick(progressChunk)
			}
		}
		tick(n % progressChunk)
		return nil
	})
	if err != nil {
		return err
	}

	if p.Self {
		return nil
	}

	reverseRanges := partitionRanges(res.N2, p.Threads)
	return runRanges(reverseRanges, func(beg, end int) error {
		s := newSearcher(g, ra1, dec1, ra2, dec2, pts1, pts2, proto, false)
		reg := newTopKRegister(1)
		n := 0
		for j := beg; j < end; j++ {
			s.reverseSearch(j, reg)
			res.RID[j] = reg.ids[0]
			if reg.ids[0] == MISSING {
				res.RD[j] = inf
			} else {
				res.RD[j] = proxyToArcsec(reg.proxies[0])
			}
			n++
			if n%progressChunk == 0 {
				tick(progressChunk)
			}
		}
		tick(n % progressChunk)
		return nil
	})
}

// runBruteForce runs the double-nested-loop kernel of spec §4.6,
// partitioning catalog 1 the same way the bucketed path does. Each worker
// also accumulates its own view of the reverse best-match, which the
// brute-force parallel path then merges by per-column minimum (spec §4.7)
// rather than by disjoint-slice copy, because every worker touches every
// catalog-2 index.
func runBruteForce(pts1, pts2 []point, p Params, k int, res *Result, tick func(int)) error {
	ranges := partitionRanges(res.N1, p.Threads)

	accs := make([]*reverseAccumulator, len(ranges))
	err := runRanges(ranges, func(beg, end int) error {
		idx := rangeIndex(ranges, beg)
		reg := newTopKRegister(k)
		var acc *reverseAccumulator
		if !p.Self {
			acc = newReverseAccumulator(res.N2)
			accs[idx] = acc
		}
		bruteForceRange(pts1, pts2, beg, end, p.Self, reg, res, acc, tick)
		return nil
	})
	if err != nil {
		return err
	}

	if !p.Self {
		mergeBest(accs, res.RID, res.RD)
	}
	return nil
}

// rangeIndex returns the position of the range starting at beg within
// ranges, used only to give each brute-force worker a stable slot in accs.
func rangeIndex(ranges [][2]int, beg int) int {
	for i, r := range ranges {
		if r[0] == beg {
			return i
		}
	}
	return 0
}

// progressChunk batches progress-counter increments so verbose runs don't
// contend an atomic on every single point.
const progressChunk = 256
