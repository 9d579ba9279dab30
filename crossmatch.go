package skymatch

import (
	"os"
	"sync/atomic"
	"time"

	"github.com/andromeda-survey/skymatch/internal/progressbar"
)

// CrossMatch finds, for every point of catalog 1, the K nearest points of
// catalog 2 (forward search), and, unless p.Self, the single nearest
// catalog-1 point of every catalog-2 point (reverse search).
//
// ra1/dec1 and ra2/dec2 are degree-valued equatorial coordinates; ra2/dec2
// is ignored when p.Self is true, in which case catalog 1 is matched
// against itself and i==j pairs are excluded (doc.go's "Self-match" note).
func CrossMatch(ra1, dec1, ra2, dec2 []float64, p Params) (Result, error) {
	if len(ra1) != len(dec1) {
		return Result{}, &ErrShapeMismatch{Catalog: "catalog1", LenRA: len(ra1), LenDec: len(dec1)}
	}
	if !p.Self && len(ra2) != len(dec2) {
		return Result{}, &ErrShapeMismatch{Catalog: "catalog2", LenRA: len(ra2), LenDec: len(dec2)}
	}
	if p.Self {
		ra2, dec2 = ra1, dec1
	}
	if p.K <= 0 {
		return Result{}, &ErrInvalidK{K: p.K}
	}
	n1, n2 := len(ra1), len(ra2)
	if (n1 == 0) != (n2 == 0) {
		if n1 == 0 {
			return Result{}, &ErrEmptyInput{Catalog: "catalog1"}
		}
		return Result{}, &ErrEmptyInput{Catalog: "catalog2"}
	}

	applyDefaults(&p)

	k := p.K
	if k > n2 {
		k = n2 // spec §7: K is clamped to N2 when N2 < K.
	}

	res := newResult(k, n1, n2, p.Self)
	if n1 == 0 {
		return res, nil
	}

	var progress atomic.Int64
	total := int64(n1)
	if !p.Self {
		total += int64(n2)
	}

	var bar *progressbar.Bar
	if p.Verbose {
		bar = progressbar.New(os.Stdout, total)
		done := make(chan struct{})
		defer func() {
			close(done)
			bar.Finish()
		}()
		go func() {
			t := time.NewTicker(progressPollInterval * time.Millisecond)
			defer t.Stop()
			for {
				select {
				case <-t.C:
					bar.Paint(progress.Load())
				case <-done:
					return
				}
			}
		}()
	}
	tick := func(n int) { progress.Add(int64(n)) }

	pts1 := toPoints(ra1, dec1)
	pts2 := toPoints(ra2, dec2)

	var err error
	if p.BruteForce {
		err = runBruteForce(pts1, pts2, p, k, &res, tick)
	} else {
		g := buildGrid(ra1, dec1, ra2, dec2, k)
		err = runBucketed(ra1, dec1, ra2, dec2, pts1, pts2, g, p, k, &res, tick)
	}
	if err != nil {
		return Result{}, err
	}

	return res, nil
}

// CrossMatchSelf is the (catalog, params) convenience shape for self-match
// cross-matching: equivalent to CrossMatch(catalog.RA(), catalog.Dec(),
// nil, nil, p) with p.Self forced to true.
func CrossMatchSelf(catalog Catalog, p Params) (Result, error) {
	p.Self = true
	return CrossMatch(catalog.RA(), catalog.Dec(), nil, nil, p)
}

// CrossMatchCatalogs is the (catalog1, catalog2, params) convenience shape.
func CrossMatchCatalogs(c1, c2 Catalog, p Params) (Result, error) {
	return CrossMatch(c1.RA(), c1.Dec(), c2.RA(), c2.Dec(), p)
}
