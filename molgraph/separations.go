package molgraph

// Unreachable marks pairs with no connecting path in a separation
// matrix. It is larger than any meaningful bond-hop radius, so locality
// gates of the form sep < radius never admit disconnected pairs.
const Unreachable = 1 << 30

// Separations computes the pairwise graph distance (bond hop count)
// matrix for the given adjacency matrix via one BFS per vertex.
// sep[i][i] is 0; disconnected pairs hold Unreachable.
func Separations(adj [][]int) ([][]int, error) {
	if err := Validate(adj); err != nil {
		return nil, err
	}

	n := len(adj)
	sep := make([][]int, n)
	queue := make([]int, 0, n)
	for s := 0; s < n; s++ {
		row := make([]int, n)
		for i := range row {
			row[i] = Unreachable
		}
		row[s] = 0

		queue = append(queue[:0], s)
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for w := 0; w < n; w++ {
				if w == v || adj[v][w] == 0 {
					continue
				}
				if row[w] == Unreachable {
					row[w] = row[v] + 1
					queue = append(queue, w)
				}
			}
		}
		sep[s] = row
	}

	return sep, nil
}

// ZeroSeparations returns an n×n all-zero matrix. Passing it in place
// of real separations disables locality gating: every pair appears to
// be adjacent, which is how non-local charge transfer is enabled.
func ZeroSeparations(n int) [][]int {
	sep := make([][]int, n)
	for i := range sep {
		sep[i] = make([]int, n)
	}

	return sep
}
