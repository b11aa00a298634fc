// Package tsp - 2-opt local search for polishing a finished tour.
//
// TwoOpt performs deterministic first-improvement 2-opt on the cyclic order:
// removing edges (a,b) and (c,d), with a=T[i−1], b=T[i], c=T[k], d=T[k+1]
// (indices modulo n), and reconnecting as (a,c),(b,d) by reversing T[i..k].
//
//	Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d); a move is applied iff Δ < −twoOptEps.
//
// The map is symmetric, so reversal never changes the cost of interior edges.
// Evolution never calls it; it is an optional post-pass over the final best tour.
//
// Complexity: O(n²) candidate checks per pass; O(n) per accepted move.
package tsp

// twoOptEps is the strict improvement threshold; it stops cycling on
// floating-point noise.
const twoOptEps = 1e-12

// TwoOpt returns a 2-opt local optimum reached from t and the number of moves
// applied. t itself is not modified. maxMoves ≤ 0 means "until no move improves".
func TwoOpt(t *Tour, maxMoves int) (*Tour, int) {
	cur := t.Order()
	n := len(cur)
	at := t.m.Distance

	var (
		moves      int
		a, b, c, d int
		delta      float64
		i, k       int
	)
	for {
		improved := false
		for i = 0; i <= n-2 && !improved; i++ {
			for k = i + 1; k <= n-1; k++ {
				if i == 0 && k == n-1 {
					continue // reversing the whole cycle is the same tour
				}
				a = cur[(i-1+n)%n]
				b = cur[i]
				c = cur[k]
				d = cur[(k+1)%n]

				delta = (at(a, c) + at(b, d)) - (at(a, b) + at(c, d))
				if delta >= -twoOptEps {
					continue
				}
				reverseInPlace(cur, i, k)
				moves++
				improved = true
				break
			}
		}
		if !improved || (maxMoves > 0 && moves >= maxMoves) {
			break
		}
	}

	return &Tour{order: cur, m: t.m}, moves
}

// reverseInPlace reverses the inclusive segment a[i..k].
func reverseInPlace(a []int, i, k int) {
	for i < k {
		a[i], a[k] = a[k], a[i]
		i++
		k--
	}
}
