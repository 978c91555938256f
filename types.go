package stenolex

// KeyLayout describes a steno key layout. All key sets are strings of
// distinct ASCII characters in their public uppercase form.
type KeyLayout struct {
	// Sep is the single character separating strokes.
	Sep string

	// Split is the single character marking the left/right boundary inside
	// a stroke when no center key does.
	Split string

	// Left, Center and Right are the key banks in steno order.
	Left   string
	Center string
	Right  string

	// Unordered lists keys exempt from steno order during matching.
	Unordered string

	// Aliases maps a shorthand character (such as a digit) to the two-key
	// shift+real expansion it stands for.
	Aliases map[string]string
}

// RuleDefinition is one unresolved rule as loaded by the caller.
type RuleDefinition struct {
	// Keys is the rule's steno keys in public notation.
	Keys string

	// Pattern is the rule's text, with bracketed references to other rules:
	// (childId) substitutes the child's letters, [literal|childId]
	// substitutes the literal while crediting the span to the child.
	Pattern string

	// Flags classifies the rule. Recognized flags: STRK (matches whole
	// strokes only), WORD (matches whole words only), REF and SPEC (only
	// referenced inside other rules, never matched directly).
	Flags []string

	// Info is an optional description.
	Info string
}

// Match is one rule applied at a position in the queried word. Length is
// zero for special modifier rules, which consume keys but no letters.
type Match struct {
	// RuleID identifies the matched rule.
	RuleID string

	// Keys is the rule's steno keys in public notation.
	Keys string

	// Letters is the rule's literal text.
	Letters string

	// Start and Length locate the match in the queried word.
	Start  int
	Length int
}

// Result is the best explanation found for one query.
type Result struct {
	// Matches lists the applied rules in the order their keys occur.
	Matches []Match

	// UnmatchedKeys holds the keys no rule could explain, in public
	// notation. It is empty for a complete explanation.
	UnmatchedKeys string
}

// Complete reports whether every key was explained.
func (r *Result) Complete() bool {
	return r.UnmatchedKeys == ""
}
