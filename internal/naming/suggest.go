package naming

import "slices"

// Distance returns the edit distance between a and b: the fewest single byte
// insertions, deletions and substitutions that turn one into the other.
func Distance(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	if len(a) == 0 {
		return len(b)
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Suggest returns the candidate closest to name, for "did you mean" hints. Candidates
// further than a third of name's length (at least one edit) are never suggested; ties
// go to the candidate that sorts first.
func Suggest(name string, candidates []string) (string, bool) {
	limit := max(1, len(name)/3)
	best, bestDist := "", limit+1

	sorted := slices.Clone(candidates)
	slices.Sort(sorted)

	for _, c := range sorted {
		if d := Distance(name, c); d < bestDist && c != name {
			best, bestDist = c, d
		}
	}

	return best, best != ""
}
