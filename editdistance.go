package ffuzzy

import "sync"

// dpRowPool pools the two-row scratch buffers used by editDistance so that
// repeated comparisons (the common case when scoring many digests against
// each other) don't churn small allocations.
var dpRowPool = sync.Pool{
	New: func() any {
		rows := make([]int, 2*(spamSumLength+1))
		return &rows
	},
}

// editDistance computes the insertion/deletion-only edit distance between
// s1 and s2: substitution is modeled as delete-then-insert (cost 2), a
// plain insertion or deletion costs 1. Both operands must be at most
// spamSumLength bytes. Pass the shorter string as s1 for better cache
// behavior on the inner loop.
func editDistance(s1, s2 []byte) int {
	n1, n2 := len(s1), len(s2)
	if n1 == 0 {
		return n2
	}
	if n2 == 0 {
		return n1
	}

	rowsPtr := dpRowPool.Get().(*[]int)
	rows := *rowsPtr
	defer dpRowPool.Put(rowsPtr)

	prev, cur := rows[:spamSumLength+1], rows[spamSumLength+1:]
	for j := 0; j <= n2; j++ {
		prev[j] = j
	}
	for i := 1; i <= n1; i++ {
		cur[0] = i
		for j := 1; j <= n2; j++ {
			insertCost := prev[j] + 1
			deleteCost := cur[j-1] + 1
			matchCost := prev[j-1]
			if s1[i-1] != s2[j-1] {
				matchCost += 2
			}
			cur[j] = min(insertCost, deleteCost, matchCost)
		}
		prev, cur = cur, prev
	}
	return prev[n2]
}
