package rules

// Category classifies how the lexer may match a rule. It replaces the raw
// flag strings with a closed set resolved once at load time.
type Category uint8

const (
	// Ordinary rules are matched through the ordered-prefix tree.
	Ordinary Category = iota

	// Stroke rules only match an entire stroke, never part of one. They are
	// matched by exact stroke lookup.
	Stroke

	// Word rules only match an entire whitespace-delimited word. They are
	// matched by exact word lookup.
	Word

	// Internal rules exist solely to be referenced inside other rules and
	// are never matched directly.
	Internal
)

// String returns the flag name for the category.
func (c Category) String() string {
	switch c {
	case Stroke:
		return "STRK"
	case Word:
		return "WORD"
	case Internal:
		return "REF"
	default:
		return ""
	}
}

// categoryFromFlags resolves a raw flag list into a Category.
// Unrecognized flags are ignored; they belong to display layers.
func categoryFromFlags(flags []string) Category {
	for _, f := range flags {
		switch f {
		case "SPEC", "REF":
			return Internal
		case "STRK":
			return Stroke
		case "WORD":
			return Word
		}
	}
	return Ordinary
}

// RawRule holds the unresolved string fields of a single rule definition.
type RawRule struct {
	// Keys is the RTFCRE formatted series of steno strokes.
	Keys string

	// Pattern is the text pattern, consisting of raw letters as well as
	// bracketed references to other rules.
	Pattern string

	// Flags is an optional list of flag strings.
	Flags []string

	// Info is an optional human-readable description.
	Info string
}

// Connection records that a child rule explains a span of its parent's
// letters. Connections are ordered by Start and never overlap.
type Connection struct {
	// Child is the rule occupying the span.
	Child *Rule

	// Start is the index of the first letter of the span in the parent.
	Start int

	// Length is the number of letters the child spans. It may be zero for
	// rules that consume keys without producing letters.
	Length int
}

// Rule is a resolved, immutable mapping from steno keys to literal text.
// Rules are created once at build time and shared read-only afterwards, so
// any number of queries may use them concurrently.
type Rule struct {
	// ID is the identifier the rule was defined under.
	ID string

	// Keys is the rule's key string in internal s-keys form.
	Keys string

	// Letters is the literal text the rule produces.
	Letters string

	// Weight is the ranking weight: ten points per letter, with a one point
	// bonus for word rules so they win over otherwise-equal affix rules.
	Weight int

	// Category controls which lookup tier may match the rule.
	Category Category

	// Info is the rule's description.
	Info string

	// Connections is the ordered substitution map of child rules.
	Connections []Connection
}

// String returns the standard keys → letters representation of the rule.
func (r *Rule) String() string {
	return r.Keys + " → " + r.Letters
}
