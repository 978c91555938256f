package rules

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"stenolex/internal/keys"
)

// refPattern matches one bracketed reference: a left bracket, one or more
// non-bracket characters, and a right bracket.
var refPattern = regexp.MustCompile(`[(\[][^()\[\]]+?[)\]]`)

// aliasDelim separates literal text from the rule identifier inside a
// [literal|childId] reference.
const aliasDelim = "|"

// Parser resolves raw rule definitions into immutable Rule values.
// All definitions must be added up front so references can be resolved in
// any order; resolution is memoized and cycle-checked.
type Parser struct {
	conv      *keys.Converter
	raw       map[string]RawRule
	memo      map[string]*Rule
	resolving []string // identifiers currently being resolved, outermost first
}

// NewParser creates a parser over a complete raw definition map.
// The converter translates each rule's RTFCRE keys into s-keys.
func NewParser(raw map[string]RawRule, conv *keys.Converter) *Parser {
	return &Parser{
		conv: conv,
		raw:  raw,
		memo: make(map[string]*Rule, len(raw)),
	}
}

// ResolveAll resolves every definition and returns the finished rules
// ordered by identifier. The first resolution failure aborts the build.
func (p *Parser) ResolveAll() ([]*Rule, error) {
	ids := make([]string, 0, len(p.raw))
	for id := range p.raw {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]*Rule, 0, len(ids))
	for _, id := range ids {
		r, err := p.Resolve(id)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// Resolve returns the finished rule for an identifier, resolving it and any
// referenced children first if necessary.
func (p *Parser) Resolve(id string) (*Rule, error) {
	if r, ok := p.memo[id]; ok {
		return r, nil
	}
	raw, ok := p.raw[id]
	if !ok {
		return nil, &UnknownReferenceError{Child: id}
	}

	// A reference to an identifier already on the resolution stack closes a
	// cycle. Report the chain from its first occurrence.
	for i, active := range p.resolving {
		if active == id {
			chain := append(append([]string(nil), p.resolving[i:]...), id)
			return nil, &CircularReferenceError{Chain: chain}
		}
	}
	p.resolving = append(p.resolving, id)
	defer func() { p.resolving = p.resolving[:len(p.resolving)-1] }()

	letters, conns, err := p.substitute(id, raw.Pattern)
	if err != nil {
		return nil, err
	}
	if err := verifySpans(id, letters, conns); err != nil {
		return nil, err
	}

	category := categoryFromFlags(raw.Flags)
	// Weight is assigned based on letters matched. Word rules may be
	// otherwise equal to some prefixes and suffixes; they need more weight
	// to win.
	weight := 10 * len(letters)
	if category == Word {
		weight++
	}

	r := &Rule{
		ID:          id,
		Keys:        p.conv.ToInternal(raw.Keys),
		Letters:     letters,
		Weight:      weight,
		Category:    category,
		Info:        raw.Info,
		Connections: conns,
	}
	p.memo[id] = r
	return r, nil
}

// substitute replaces every bracketed reference in a pattern with its chosen
// letters, accumulating the substitution map as it goes. The pattern is
// re-scanned after each replacement since substitution shifts the offsets of
// any remaining brackets.
func (p *Parser) substitute(parent, pattern string) (string, []Connection, error) {
	var conns []Connection
	for {
		loc := refPattern.FindStringIndex(pattern)
		if loc == nil {
			break
		}
		token := pattern[loc[0]+1 : loc[1]-1]

		var literal, childID string
		if pattern[loc[0]] == '(' {
			// (childId): substitute the child's own letters.
			childID = token
		} else {
			// [literal|childId]: substitute the literal, attribute the span
			// to the child.
			delim := strings.Index(token, aliasDelim)
			if delim < 0 {
				return "", nil, fmt.Errorf("rule %s: reference %q is missing the %q delimiter", parent, token, aliasDelim)
			}
			literal, childID = token[:delim], token[delim+1:]
		}

		if _, ok := p.raw[childID]; !ok {
			return "", nil, &UnknownReferenceError{Parent: parent, Child: childID}
		}
		child, err := p.Resolve(childID)
		if err != nil {
			return "", nil, err
		}
		if pattern[loc[0]] == '(' {
			literal = child.Letters
		}

		conns = append(conns, Connection{Child: child, Start: loc[0], Length: len(literal)})
		pattern = pattern[:loc[0]] + literal + pattern[loc[1]:]
	}
	return pattern, conns, nil
}

// verifySpans checks the substitution map invariants: spans stay inside the
// parent's letters, starts never decrease, and spans never overlap.
func verifySpans(id, letters string, conns []Connection) error {
	end := 0
	for _, c := range conns {
		if c.Start < end || c.Length < 0 || c.Start+c.Length > len(letters) {
			return fmt.Errorf("rule %s: substitution span %d:%d is out of order or out of bounds",
				id, c.Start, c.Start+c.Length)
		}
		end = c.Start + c.Length
	}
	return nil
}

// Render reconstructs a bracketed pattern string from a resolved rule's
// letters and substitution map. Spans are rewritten right to left so the
// offsets of earlier spans stay valid. Children whose tracked letters differ
// from their own are rendered in [literal|childId] form, so Render is the
// inverse of pattern substitution.
func Render(r *Rule) string {
	pattern := r.Letters
	for i := len(r.Connections) - 1; i >= 0; i-- {
		c := r.Connections[i]
		// Spans with no letters have nothing to attach a reference to.
		if c.Length == 0 || c.Child.ID == "" {
			continue
		}
		end := c.Start + c.Length
		span := pattern[c.Start:end]
		ref := "(" + c.Child.ID + ")"
		if span != c.Child.Letters {
			ref = "[" + span + aliasDelim + c.Child.ID + "]"
		}
		pattern = pattern[:c.Start] + ref + pattern[end:]
	}
	return pattern
}
