package skymatch

import "testing"

func TestPartitionRanges_CoversWholeRangeWithoutOverlap(t *testing.T) {
	ranges := partitionRanges(17, 4)
	covered := make([]bool, 17)
	for _, r := range ranges {
		for i := r[0]; i < r[1]; i++ {
			if covered[i] {
				t.Fatalf("index %d covered by more than one range", i)
			}
			covered[i] = true
		}
	}
	for i, c := range covered {
		if !c {
			t.Fatalf("index %d not covered by any range", i)
		}
	}
}

func TestPartitionRanges_MoreWorkersThanItems(t *testing.T) {
	ranges := partitionRanges(2, 8)
	total := 0
	for _, r := range ranges {
		total += r[1] - r[0]
	}
	if total != 2 {
		t.Errorf("expected ranges to sum to 2 items, got %d", total)
	}
}

func TestPartitionRanges_ZeroItemsReturnsNoRanges(t *testing.T) {
	if ranges := partitionRanges(0, 4); ranges != nil {
		t.Errorf("expected no ranges for n=0, got %v", ranges)
	}
}

func TestRunRanges_InlineForSingleRange(t *testing.T) {
	var calls int
	err := runRanges([][2]int{{0, 5}}, func(beg, end int) error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected exactly one call, got %d", calls)
	}
}

func TestRunRanges_FanOutRunsEveryRange(t *testing.T) {
	ranges := partitionRanges(100, 4)
	seen := make(chan [2]int, len(ranges))
	err := runRanges(ranges, func(beg, end int) error {
		seen <- [2]int{beg, end}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	close(seen)
	count := 0
	for range seen {
		count++
	}
	if count != len(ranges) {
		t.Errorf("expected %d calls, got %d", len(ranges), count)
	}
}
