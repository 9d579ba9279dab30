package skymatch

// Result holds the four output arrays of a CrossMatch call.
//
// ID and D are flat row-major matrices of shape K x N1, mirroring the
// teacher's flat row-major point-data convention (kdtree.go's `data []float64`
// indexed as ptIdx*dims+d) rather than a slice of slices: ID[k*N1+i] is the
// index into catalog 2 of the k-th nearest neighbor of catalog-1 point i,
// and D[k*N1+i] is the matching distance in arcseconds. Columns (fixed i,
// varying k) are ascending: D[k*N1+i] <= D[(k+1)*N1+i].
//
// RID and RD have length N2: RID[j] is the index into catalog 1 of the
// single nearest point to catalog-2 point j, and RD[j] is the matching
// distance in arcseconds. In self-match mode RID and RD are left nil — the
// caller should treat ID/D with K=1 as the reverse map (spec's Self-mode
// reverse pass design note).
type Result struct {
	K, N1, N2 int

	ID []uint32
	D  []float64

	RID []uint32
	RD  []float64
}

// newResult allocates a Result with ID/D filled with MISSING/+Inf sentinels
// and RID/RD filled the same way (unless self is true, in which case RID/RD
// are left nil).
func newResult(k, n1, n2 int, self bool) Result {
	r := Result{K: k, N1: n1, N2: n2}
	r.ID = make([]uint32, k*n1)
	r.D = make([]float64, k*n1)
	for i := range r.ID {
		r.ID[i] = MISSING
		r.D[i] = inf
	}
	if !self {
		r.RID = make([]uint32, n2)
		r.RD = make([]float64, n2)
		for j := range r.RID {
			r.RID[j] = MISSING
			r.RD[j] = inf
		}
	}
	return r
}

// IDAt returns the k-th nearest neighbor of catalog-1 point i.
func (r Result) IDAt(k, i int) uint32 { return r.ID[k*r.N1+i] }

// DAt returns the distance (arcsec) matching IDAt(k, i).
func (r Result) DAt(k, i int) float64 { return r.D[k*r.N1+i] }
