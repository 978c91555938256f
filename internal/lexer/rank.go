package lexer

// totalWeight sums the weights of the matched rules. Weight grows with
// letters explained, so a higher total means a more complete explanation.
func (r *Result) totalWeight() int {
	total := 0
	for _, m := range r.Matches {
		total += m.Rule.Weight
	}
	return total
}

// coverage is the distance from the first matched rule's start to the last
// one's end. Edge-to-edge explanations of the word beat ones that leave its
// ends unexplained.
func (r *Result) coverage() int {
	if len(r.Matches) == 0 {
		return 0
	}
	first := r.Matches[0].Start
	last := r.Matches[len(r.Matches)-1]
	return last.Start + last.Length - first
}

// better reports whether a is a more likely explanation than b. The
// criteria apply in order, most significant first:
//
//  1. fewest keys unmatched,
//  2. greatest total rule weight (most letters explained),
//  3. fewest rules (prefer large matches over fragments),
//  4. greatest word coverage,
//  5. fewest keys overall (between spellings of one word).
//
// A full tie reports false, so folding with better keeps the result
// discovered first.
func better(a, b *Result) bool {
	if d := len(a.KeysLeft) - len(b.KeysLeft); d != 0 {
		return d < 0
	}
	if d := a.totalWeight() - b.totalWeight(); d != 0 {
		return d > 0
	}
	if d := len(a.Matches) - len(b.Matches); d != 0 {
		return d < 0
	}
	if d := a.coverage() - b.coverage(); d != 0 {
		return d > 0
	}
	return len(a.Keys) < len(b.Keys)
}

// Best returns the index of the highest ranked result. Ties keep the
// earliest index, so the ordering of the input pins the outcome. It returns
// -1 for an empty slice.
func Best(results []Result) int {
	if len(results) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(results); i++ {
		if better(&results[i], &results[best]) {
			best = i
		}
	}
	return best
}
