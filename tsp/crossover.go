package tsp

// Crossover recombines t and other in place. It draws an inclusive segment
// lo ≤ hi uniformly (lo first, then hi in [lo, n)) and delegates to
// CrossoverAt. Both tours must be over the same map.
func (t *Tour) Crossover(other *Tour, rng Rand) {
	n := len(t.order)
	lo := rng.Intn(n)
	hi := lo + rng.Intn(n-lo)

	t.CrossoverAt(other, lo, hi)
}

// CrossoverAt swaps the segment [lo, hi] between t and other, then repairs
// both orders so each is again a permutation.
//
// After the swap, a city at an outside position of t may also appear in t's
// new segment. Such duplicates are exchanged with the partner's duplicates:
// outside positions are visited in order (before lo, then after hi), and a
// single cursor walks the same position list on the partner. For each
// duplicate in t, the cursor advances one position at a time until it has
// passed the first partner duplicate, which is then exchanged. The cursor is
// never rewound, so the k-th duplicate in t pairs with the k-th duplicate in
// other.
//
// Precondition: 0 ≤ lo ≤ hi < n, and both tours have n cities.
//
// Complexity: O(n) time, O(n) space.
func (t *Tour) CrossoverAt(other *Tour, lo, hi int) {
	a, b := t.order, other.order
	n := len(a)

	var k int
	for k = lo; k <= hi; k++ {
		a[k], b[k] = b[k], a[k]
	}

	// Segment membership after the swap; the repair never touches [lo, hi].
	inA := make([]bool, n)
	inB := make([]bool, n)
	for k = lo; k <= hi; k++ {
		inA[a[k]] = true
		inB[b[k]] = true
	}

	outside := make([]int, 0, n-(hi-lo+1))
	for k = 0; k < lo; k++ {
		outside = append(outside, k)
	}
	for k = hi + 1; k < n; k++ {
		outside = append(outside, k)
	}

	var cursor, j int
	for _, i := range outside {
		if !inA[a[i]] {
			continue
		}
		for cursor < len(outside) {
			j = outside[cursor]
			cursor++
			if inB[b[j]] {
				a[i], b[j] = b[j], a[i]
				break
			}
		}
	}
}
