package lexer

import (
	"strings"

	"stenolex/internal/rules"
)

// Names for the special single-key rules, matched by heuristic rather than
// by keys or letters. A rule is registered under its key and name joined by
// a colon, e.g. "*:AB" for an asterisk marking an abbreviation.
const (
	SpecialAbbreviation = "AB"
	SpecialProperNoun   = "PR"
	SpecialAffix        = "PS"
	SpecialUnknown      = "??"
)

// SpecialMatcher resolves a lone modifier key whose meaning is ambiguous out
// of context. Each heuristic is a pure test over the remaining keys and the
// full translation, tried in a fixed priority order; the first test that
// passes names the rule to match. None of these rules consume any letters.
type SpecialMatcher struct {
	sep   byte
	key   byte
	rules map[string]*rules.Rule
}

// NewSpecialMatcher creates a matcher for one special key.
func NewSpecialMatcher(sep, key byte) *SpecialMatcher {
	return &SpecialMatcher{
		sep:   sep,
		key:   key,
		rules: make(map[string]*rules.Rule),
	}
}

// Add registers the rule to match under a heuristic name. Its letters are
// ignored.
func (m *SpecialMatcher) Add(name string, r *rules.Rule) {
	m.rules[name] = r
}

// Pending reports whether the next key to resolve is the special key, alone
// or at the end of its stroke. The key must always be resolved before
// ordinary matching proceeds.
func (m *SpecialMatcher) Pending(keysLeft string) bool {
	if keysLeft == "" || keysLeft[0] != m.key {
		return false
	}
	return len(keysLeft) == 1 || keysLeft[1] == m.sep
}

// Match consumes the pending special key and returns the rule chosen by the
// heuristics along with the remaining keys. It returns ok false when no key
// is pending or no rule is registered under the chosen name.
func (m *SpecialMatcher) Match(keysLeft, allKeys, allLetters string) (*rules.Rule, string, bool) {
	if !m.Pending(keysLeft) {
		return nil, "", false
	}
	r, ok := m.rules[m.classify(keysLeft, allKeys, allLetters)]
	if !ok {
		return nil, "", false
	}
	return r, keysLeft[1:], true
}

// classify guesses the meaning of the special key from the full translation
// and the stroke position.
func (m *SpecialMatcher) classify(keysLeft, allKeys, allLetters string) string {
	// A period in the word marks an abbreviation.
	if strings.Contains(allLetters, ".") {
		return SpecialAbbreviation
	}
	// Uppercase letters mark a proper noun.
	if allLetters != strings.ToLower(allLetters) {
		return SpecialProperNoun
	}
	// On the first or last stroke of a multi-stroke translation (but not
	// both, which would make it single-stroke), the key marks an affix.
	sep := string(m.sep)
	first := strings.Count(keysLeft, sep) == strings.Count(allKeys, sep)
	last := !strings.Contains(keysLeft, sep)
	if first != last {
		return SpecialAffix
	}
	return SpecialUnknown
}
