// Package skymatch implements a parallel k-nearest-neighbor cross-matcher
// for catalogs of points on the celestial sphere.
//
// Given two catalogs of equatorial coordinates (right ascension and
// declination, in degrees), CrossMatch returns, for every point of catalog
// 1, the identifiers and angular distances (in arcseconds) of its K nearest
// points in catalog 2, and symmetrically, for every point of catalog 2, the
// identifier and distance of its single nearest point in catalog 1.
//
// Basic usage:
//
//	p := skymatch.DefaultParams()
//	p.Threads = 4
//	p.K = 5
//	res, err := skymatch.CrossMatch(ra1, dec1, ra2, dec2, p)
//	// res.IDAt(k, i) is the index into catalog 2 of the k-th nearest
//	// neighbor of catalog-1 point i; res.DAt(k, i) is the matching distance.
//
// # Self-match
//
// Set Params.Self to true to cross-match a catalog against itself. Self
// pairs (i == j) are excluded from the forward search, and the reverse pass
// is skipped entirely — with K=1, the forward result already is the
// reverse map.
//
// # Spherical bucketing
//
// The search is accelerated by a rectangular grid of (ra, dec) cells and a
// lazily-grown cache of concentric cell-offset rings ("depth"), used to
// expand the neighbor search outward from a query point's own cell until a
// guaranteed-searched radius bound exceeds the current worst candidate.
// Brute-force double-loop search is available via Params.BruteForce for
// validation and for small catalogs where grid overhead is unjustified.
//
// # RA seam
//
// This package does not auto-detect or correct catalogs that straddle the
// 0°/360° right-ascension boundary. Callers whose catalog wraps that seam
// must pre-unwrap it (e.g. by shifting RA values into a contiguous range)
// before calling CrossMatch; no option silently rotates coordinates.
package skymatch
