package skymatch

// ReciprocalBest classifies every catalog-1 point as paired or lost (spec
// §4.8): point i is paired with j = id[0*N1+i] when the reverse map agrees
// that j's nearest catalog-1 point is i (rid[j] == i); otherwise i is lost.
// pairedLeft and pairedRight are parallel arrays of equal length; lost holds
// every unpaired catalog-1 index. len(pairedLeft)+len(lost) == N1 always.
func ReciprocalBest(id []uint32, rid []uint32, n1 int) (pairedLeft, pairedRight, lost []uint32) {
	for i := 0; i < n1; i++ {
		j := id[i] // k=0 row of the flat K x N1 matrix: id[0*n1+i] == id[i]
		if j != MISSING && int(j) < len(rid) && rid[j] == uint32(i) {
			pairedLeft = append(pairedLeft, uint32(i))
			pairedRight = append(pairedRight, j)
			continue
		}
		lost = append(lost, uint32(i))
	}
	return pairedLeft, pairedRight, lost
}
