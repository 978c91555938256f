package lexer

import (
	"strings"

	"stenolex/internal/rules"
)

// DefaultStateBudget bounds the number of worklist states one search may
// explore. Pruning keeps ordinary queries far below it; the budget is a
// safety valve against pathological rule sets.
const DefaultStateBudget = 100000

// Match records one rule applied at a position in the letters. Length is
// zero for special rules, which consume keys but explain no letters.
type Match struct {
	Rule   *rules.Rule
	Start  int
	Length int
}

// Result is one explanation discovered by a search: the rules matched in
// order and whatever keys no rule could explain. Keys holds the full s-keys
// string the search started from.
type Result struct {
	Matches  []Match
	KeysLeft string
	Keys     string
}

// Complete reports whether every key was matched.
func (r *Result) Complete() bool {
	return r.KeysLeft == ""
}

// state is one point in the search: the keys still unmatched, the rules
// matched so far, the position reached in the letters, and the number of
// letters those rules explained.
type state struct {
	keysLeft    string
	matches     []Match
	wordPtr     int
	letterCount int
	strokeStart bool
}

// Searcher runs worklist searches over one immutable RuleIndex. It holds no
// per-query state, so one Searcher serves concurrent queries.
type Searcher struct {
	index     *RuleIndex
	special   *SpecialMatcher
	sep       byte
	maxStates int
}

// SearcherOption configures a Searcher.
type SearcherOption func(*Searcher)

// WithSpecialMatcher resolves ambiguous special keys through m before
// ordinary matching.
func WithSpecialMatcher(m *SpecialMatcher) SearcherOption {
	return func(s *Searcher) { s.special = m }
}

// WithStateBudget overrides DefaultStateBudget. A budget of zero or less
// removes the bound entirely.
func WithStateBudget(n int) SearcherOption {
	return func(s *Searcher) { s.maxStates = n }
}

// NewSearcher creates a searcher over an index built for the same layout.
func NewSearcher(index *RuleIndex, sep byte, opts ...SearcherOption) *Searcher {
	s := &Searcher{
		index:     index,
		sep:       sep,
		maxStates: DefaultStateBudget,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search returns every explanation of skeys producing letters that survives
// pruning: each branch either matches all keys (a complete result) or runs
// out of candidates (an incomplete one). At least one result is always
// returned. The worklist is a stack, so among equally ranked explanations
// the one whose first differing rule consumed more keys is discovered first.
func (s *Searcher) Search(skeys, letters string) []Result {
	// Sentence beginnings and proper names must still match, so all letter
	// comparisons run on the folded form.
	folded := strings.ToLower(letters)
	var results []Result
	best := 0
	explored := 0
	stack := []state{{keysLeft: skeys, strokeStart: true}}
	for len(stack) > 0 {
		st := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		explored++
		if s.maxStates > 0 && explored > s.maxStates {
			break
		}
		keysLeft, matches := st.keysLeft, st.matches
		wordPtr, letterCount := st.wordPtr, st.letterCount
		strokeStart := st.strokeStart

		// A pending special key is resolved before ordinary matching, so
		// ordinary rules never reason about its ambiguity.
		if s.special != nil {
			if r, rest, ok := s.special.Match(keysLeft, skeys, letters); ok {
				matches = appendMatch(matches, Match{Rule: r, Start: wordPtr})
				keysLeft = rest
			}
		}
		// Stroke separators carry no letters of their own.
		for len(keysLeft) > 0 && keysLeft[0] == s.sep {
			keysLeft = keysLeft[1:]
			strokeStart = true
		}
		if keysLeft == "" {
			if letterCount > best {
				best = letterCount
			}
			results = append(results, Result{Matches: matches, Keys: skeys})
			continue
		}

		lettersLeft := folded[wordPtr:]
		cands := s.index.Match(keysLeft, lettersLeft,
			strokeStart || len(matches) == 0, wordStart(folded, wordPtr))
		// A candidate that skips more letters than the best complete result
		// leaves room for can never tie it.
		spaceLeft := len(lettersLeft) - (best - letterCount)
		pushed := false
		for _, c := range cands {
			if c.Start > spaceLeft {
				continue
			}
			stack = append(stack, state{
				keysLeft:    c.KeysLeft,
				matches:     appendMatch(matches, Match{Rule: c.Rule, Start: wordPtr + c.Start, Length: c.Length}),
				wordPtr:     wordPtr + c.Start + c.Length,
				letterCount: letterCount + c.Length,
				strokeStart: strings.HasSuffix(c.Rule.Keys, string(s.sep)),
			})
			pushed = true
		}
		if !pushed {
			results = append(results, Result{Matches: matches, KeysLeft: keysLeft, Keys: skeys})
		}
	}
	if len(results) == 0 {
		// The state budget ran out before any branch terminated.
		results = append(results, Result{KeysLeft: skeys, Keys: skeys})
	}
	return results
}

// wordStart reports whether the position sits at the start of a
// whitespace-delimited word.
func wordStart(folded string, ptr int) bool {
	if ptr == 0 {
		return true
	}
	if ptr < len(folded) && folded[ptr] == ' ' {
		return true
	}
	return folded[ptr-1] == ' '
}

// appendMatch copies on append. Sibling states share their common prefix of
// matches, so appending in place would corrupt other branches.
func appendMatch(matches []Match, m Match) []Match {
	out := make([]Match, len(matches)+1)
	copy(out, matches)
	out[len(matches)] = m
	return out
}
