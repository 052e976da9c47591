package molgraph

// Combinations returns all k-combinations with replacement drawn from
// pool, in lexicographic order over pool positions. The initial-guess
// generator uses it to enumerate every way of placing |charge| extra
// charges over the candidate atoms. An empty pool or k <= 0 yields nil.
func Combinations(pool []int, k int) [][]int {
	if k <= 0 || len(pool) == 0 {
		return nil
	}

	idx := make([]int, k) // positions into pool, non-decreasing
	var out [][]int
	for {
		combo := make([]int, k)
		for i, p := range idx {
			combo[i] = pool[p]
		}
		out = append(out, combo)

		// Advance the rightmost position that can still grow, then
		// level everything after it.
		i := k - 1
		for i >= 0 && idx[i] == len(pool)-1 {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[i]
		}
	}

	return out
}
