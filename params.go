package skymatch

// overgrowth is the empirical divisor used when sizing the bucket grid:
// buildGrid takes ceil(0.5*sqrt(pi*N2/K/overgrowth)) cells along one axis of
// catalog 2's footprint, so a larger value gives fewer, fuller cells. The
// worker count plays no part in the sizing.
const overgrowth = 10

// seedDepth is how far the depth cache is pre-grown before the first
// search, to amortize ring growth in the hot loop (spec §4.2).
const seedDepth = 10

// progressPollInterval is how often the scheduler's calling goroutine polls
// the shared atomic progress counter to repaint the progress bar.
const progressPollInterval = 200 // milliseconds

// Params configures a CrossMatch call. Start with DefaultParams and
// override the fields you need.
type Params struct {
	// Threads is the number of parallel workers. Values <= 1 run inline
	// on the calling goroutine. Default: 1.
	Threads int

	// K is the number of nearest neighbors to return per catalog-1 point
	// ("nth" in the underlying search). Must be > 0. Default: 1.
	K int

	// Self treats catalog 2 as equal to catalog 1: i==j pairs are skipped
	// in the forward search, and the reverse pass is not run (the forward
	// result with K=1 is the reverse map). Default: false.
	Self bool

	// BruteForce selects the double-nested-loop kernel instead of the
	// bucketed grid search. Useful for validating the bucketed path and
	// for small catalogs where grid overhead is unjustified. Default: false.
	BruteForce bool

	// Verbose emits a progress bar to standard output while workers run.
	// I/O errors while writing it are ignored. Default: false.
	Verbose bool
}

// DefaultParams returns a Params with reasonable defaults: a single
// inline worker, one nearest neighbor, no self-match, bucketed search,
// silent.
func DefaultParams() Params {
	return Params{
		Threads: 1,
		K:       1,
	}
}

// applyDefaults fills in zero-valued Params fields with their defaults.
// K is deliberately left untouched here: K<=0 is a validation error
// (ErrInvalidK), not a value with a silent default, so CrossMatch checks it
// before this is called.
func applyDefaults(p *Params) {
	if p.Threads <= 0 {
		p.Threads = 1
	}
}

// Catalog exposes a catalog's coordinates to the (catalog1, catalog2,
// params) convenience call shape.
type Catalog interface {
	RA() []float64
	Dec() []float64
}

// Points is the simplest Catalog implementation: two parallel degree-valued
// coordinate slices.
type Points struct {
	RAValues  []float64
	DecValues []float64
}

func (p Points) RA() []float64  { return p.RAValues }
func (p Points) Dec() []float64 { return p.DecValues }
