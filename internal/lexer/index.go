package lexer

import (
	"bytes"
	"strings"

	"stenolex/internal/rules"
)

// Candidate is one rule the index proposes as the next match. Start and
// Length locate the rule's letters within the letters that were searched;
// KeysLeft is what remains of the keys after the rule's own are removed.
type Candidate struct {
	Rule     *rules.Rule
	KeysLeft string
	Start    int
	Length   int
}

type strokeEntry struct {
	letters string
	rule    *rules.Rule
}

type wordEntry struct {
	keys string
	rule *rules.Rule
}

// RuleIndex is the three-tier lookup structure behind the search. Stroke
// rules are keyed by their full s-keys, word rules by their letters, and
// every other matchable rule lives in a prefix tree keyed over its ordered
// keys. Build it once with Add, then any number of Match calls may run
// concurrently.
type RuleIndex struct {
	sep       byte
	unordered string
	strokes   map[string]strokeEntry
	words     map[string]wordEntry
	tree      trie
}

// NewRuleIndex creates an empty index for a layout's stroke separator and
// unordered key set.
func NewRuleIndex(sep byte, unordered string) *RuleIndex {
	return &RuleIndex{
		sep:       sep,
		unordered: unordered,
		strokes:   make(map[string]strokeEntry),
		words:     make(map[string]wordEntry),
	}
}

// Add indexes a resolved rule in the tier its category calls for. Internal
// rules are never matched directly and are not indexed at all. Every indexed
// rule must consume at least one key and one letter or the search could spin
// in place, so empty ones are skipped.
func (x *RuleIndex) Add(r *rules.Rule) {
	if r.Keys == "" || r.Letters == "" {
		return
	}
	letters := strings.ToLower(r.Letters)
	switch r.Category {
	case rules.Internal:
		return
	case rules.Stroke:
		x.strokes[r.Keys] = strokeEntry{letters: letters, rule: r}
	case rules.Word:
		x.words[letters] = wordEntry{keys: r.Keys, rule: r}
	default:
		ordered, extra := x.splitUnordered(r.Keys)
		x.tree.add(ordered, trieEntry{rule: r, keys: r.Keys, letters: letters, extra: extra})
	}
}

// Match returns every indexed rule that could be the next match for the
// remaining keys and letters. lettersLeft must already be case-folded.
// Trie candidates come back shortest key prefix first.
func (x *RuleIndex) Match(keysLeft, lettersLeft string, strokeStart, wordStart bool) []Candidate {
	var out []Candidate
	if strokeStart {
		out = x.matchStroke(out, keysLeft, lettersLeft)
	}
	if wordStart {
		out = x.matchWord(out, keysLeft, lettersLeft)
	}
	return x.matchPrefix(out, keysLeft, lettersLeft)
}

// matchStroke matches the leading stroke of the keys against the exact
// stroke tier.
func (x *RuleIndex) matchStroke(out []Candidate, keysLeft, lettersLeft string) []Candidate {
	fs := keysLeft
	if i := strings.IndexByte(keysLeft, x.sep); i >= 0 {
		fs = keysLeft[:i]
	}
	e, ok := x.strokes[fs]
	if !ok {
		return out
	}
	i := strings.Index(lettersLeft, e.letters)
	if i < 0 {
		return out
	}
	return append(out, Candidate{
		Rule:     e.rule,
		KeysLeft: keysLeft[len(fs):],
		Start:    i,
		Length:   len(e.letters),
	})
}

// matchWord matches the next whitespace-delimited word of the letters
// against the exact word tier.
func (x *RuleIndex) matchWord(out []Candidate, keysLeft, lettersLeft string) []Candidate {
	fields := strings.Fields(lettersLeft)
	if len(fields) == 0 {
		return out
	}
	word := fields[0]
	e, ok := x.words[word]
	if !ok || !strings.HasPrefix(keysLeft, e.keys) {
		return out
	}
	return append(out, Candidate{
		Rule:     e.rule,
		KeysLeft: keysLeft[len(e.keys):],
		Start:    strings.Index(lettersLeft, word),
		Length:   len(word),
	})
}

// matchPrefix walks the trie along the ordered portion of the keys and keeps
// every entry whose letters occur in the remaining letters and whose
// required unordered characters are actually present.
func (x *RuleIndex) matchPrefix(out []Candidate, keysLeft, lettersLeft string) []Candidate {
	ordered, extra := x.splitUnordered(keysLeft)
	for _, e := range x.tree.match(ordered) {
		if !containsAll(extra, e.extra) {
			continue
		}
		i := strings.Index(lettersLeft, e.letters)
		if i < 0 {
			continue
		}
		out = append(out, Candidate{
			Rule:     e.rule,
			KeysLeft: removeKeys(keysLeft, e.keys),
			Start:    i,
			Length:   len(e.letters),
		})
	}
	return out
}

// splitUnordered removes the unordered characters from the leading stroke of
// an s-keys string, returning the ordered remainder and the characters that
// were removed. Unordered keys are only exempt from steno order within the
// stroke being matched.
func (x *RuleIndex) splitUnordered(skeys string) (ordered, extra string) {
	fs := skeys
	rest := ""
	if i := strings.IndexByte(skeys, x.sep); i >= 0 {
		fs, rest = skeys[:i], skeys[i:]
	}
	if !strings.ContainsAny(fs, x.unordered) {
		return skeys, ""
	}
	o := make([]byte, 0, len(fs))
	var e []byte
	for i := 0; i < len(fs); i++ {
		if strings.IndexByte(x.unordered, fs[i]) >= 0 {
			e = append(e, fs[i])
		} else {
			o = append(o, fs[i])
		}
	}
	return string(o) + rest, string(e)
}

// containsAll reports whether every character of want occurs in have, with
// multiplicity.
func containsAll(have, want string) bool {
	if want == "" {
		return true
	}
	b := []byte(have)
	for i := 0; i < len(want); i++ {
		j := bytes.IndexByte(b, want[i])
		if j < 0 {
			return false
		}
		b = append(b[:j], b[j+1:]...)
	}
	return true
}

// removeKeys removes the first occurrence of each key character from an
// s-keys string. Unordered characters need not be contiguous, so keys are
// removed one at a time rather than by slicing off a prefix.
func removeKeys(from, keys string) string {
	b := []byte(from)
	for i := 0; i < len(keys); i++ {
		if j := bytes.IndexByte(b, keys[i]); j >= 0 {
			b = append(b[:j], b[j+1:]...)
		}
	}
	return string(b)
}
