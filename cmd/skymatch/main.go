// Command skymatch cross-matches two CSV catalogs of (ra, dec) coordinates
// and writes the nearest-neighbor result to CSV.
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/andromeda-survey/skymatch"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		threads  int
		k        int
		self     bool
		brute    bool
		verbose  bool
		catalog2 string
	)

	cmd := &cobra.Command{
		Use:   "skymatch <catalog1.csv> [catalog2.csv]",
		Short: "Cross-match two catalogs of celestial coordinates",
		Long: "skymatch reads one or two CSV files of \"ra,dec\" rows (degrees), " +
			"finds the K nearest neighbors of every catalog-1 point in catalog-2, " +
			"and writes \"id,d,rid,rd\" to standard output.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ra1, dec1, err := readCatalog(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			p := skymatch.DefaultParams()
			p.Threads = threads
			p.K = k
			p.BruteForce = brute
			p.Verbose = verbose

			var res skymatch.Result
			if len(args) == 2 {
				catalog2 = args[1]
			}
			switch {
			case self && catalog2 != "":
				return fmt.Errorf("--self is incompatible with a second catalog argument")
			case self:
				res, err = skymatch.CrossMatch(ra1, dec1, nil, nil, p)
			case catalog2 != "":
				ra2, dec2, err2 := readCatalog(catalog2)
				if err2 != nil {
					return fmt.Errorf("reading %s: %w", catalog2, err2)
				}
				res, err = skymatch.CrossMatch(ra1, dec1, ra2, dec2, p)
			default:
				return fmt.Errorf("a second catalog is required unless --self is set")
			}
			if err != nil {
				return err
			}

			return writeResult(os.Stdout, res)
		},
	}

	cmd.Flags().IntVar(&threads, "threads", 1, "number of parallel workers")
	cmd.Flags().IntVar(&k, "k", 1, "number of nearest neighbors per catalog-1 point")
	cmd.Flags().BoolVar(&self, "self", false, "match catalog-1 against itself")
	cmd.Flags().BoolVar(&brute, "brute-force", false, "use the brute-force kernel instead of the bucketed grid search")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "print a progress bar to standard output")

	return cmd
}

// readCatalog reads a two-column "ra,dec" CSV file, skipping a header row
// if either field of the first row does not parse as a float.
func readCatalog(path string) (ra, dec []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2

	first := true
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		a, errA := strconv.ParseFloat(rec[0], 64)
		d, errD := strconv.ParseFloat(rec[1], 64)
		if first && (errA != nil || errD != nil) {
			first = false
			continue // header row
		}
		first = false
		if errA != nil {
			return nil, nil, errA
		}
		if errD != nil {
			return nil, nil, errD
		}
		ra = append(ra, a)
		dec = append(dec, d)
	}
	return ra, dec, nil
}

// writeResult writes the K=1 forward match and the reverse match to w as
// "id,d,rid,rd" CSV rows, one per catalog-1 point.
func writeResult(w io.Writer, res skymatch.Result) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"id", "d", "rid", "rd"}); err != nil {
		return err
	}

	for i := 0; i < res.N1; i++ {
		id := res.IDAt(0, i)
		d := res.DAt(0, i)

		var rid string
		var rd string
		if res.RID != nil && int(id) < len(res.RID) && id != skymatch.MISSING {
			rid = strconv.FormatUint(uint64(res.RID[id]), 10)
			rd = strconv.FormatFloat(res.RD[id], 'g', -1, 64)
		}

		row := []string{
			formatID(id),
			formatDist(d),
			rid,
			rd,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}

func formatID(id uint32) string {
	if id == skymatch.MISSING {
		return ""
	}
	return strconv.FormatUint(uint64(id), 10)
}

func formatDist(d float64) string {
	if d > 1e300 {
		return ""
	}
	return strconv.FormatFloat(d, 'g', -1, 64)
}
