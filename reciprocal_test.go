package skymatch

import "testing"

func TestReciprocalBest_MutualPairIsPaired(t *testing.T) {
	// N1 = N2 = 2, k=1: 0 <-> 1 mutual, point nothing else to test.
	id := []uint32{1, 0}  // flat K=1 x N1=2: id[0]=1, id[1]=0
	rid := []uint32{1, 0} // N2=2: rid[0]=1, rid[1]=0

	pairedLeft, pairedRight, lost := ReciprocalBest(id, rid, 2)
	if len(lost) != 0 {
		t.Fatalf("expected no lost points, got %v", lost)
	}
	if len(pairedLeft) != 2 {
		t.Fatalf("expected 2 paired points, got %v", pairedLeft)
	}
	if pairedLeft[0] != 0 || pairedRight[0] != 1 {
		t.Errorf("unexpected pair: (%v, %v)", pairedLeft[0], pairedRight[0])
	}
}

func TestReciprocalBest_NonMutualIsLost(t *testing.T) {
	// Three catalog-1 points all nearest to the same catalog-2 point 0, whose
	// own reverse match is catalog-1 point 1 — only i=1 is reciprocal.
	id := []uint32{0, 0, 0}              // N1=3
	rid := []uint32{1, MISSING, MISSING} // N2=3

	pairedLeft, pairedRight, lost := ReciprocalBest(id, rid, 3)
	if len(pairedLeft) != 1 || pairedLeft[0] != 1 || pairedRight[0] != 0 {
		t.Fatalf("expected the single mutual pair (1, 0), got %v/%v", pairedLeft, pairedRight)
	}
	if len(lost) != 2 {
		t.Fatalf("expected 2 points lost, got %v", lost)
	}
}

func TestReciprocalBest_PartitionSumsToN1(t *testing.T) {
	id := []uint32{2, MISSING, 0, 1}
	rid := []uint32{2, 3, 0, MISSING}

	pairedLeft, _, lost := ReciprocalBest(id, rid, 4)
	if len(pairedLeft)+len(lost) != 4 {
		t.Fatalf("paired (%d) + lost (%d) should sum to N1=4", len(pairedLeft), len(lost))
	}
}

func TestReciprocalBest_MissingNeighborIsLost(t *testing.T) {
	id := []uint32{MISSING}
	rid := []uint32{}

	pairedLeft, _, lost := ReciprocalBest(id, rid, 1)
	if len(pairedLeft) != 0 || len(lost) != 1 {
		t.Errorf("expected the single point with no neighbor to be lost")
	}
}
