package stenolex

import (
	"strings"

	"stenolex/internal/keys"
	"stenolex/internal/lexer"
	"stenolex/internal/rules"
)

// Engine matches steno keys to the letters they produce. It is immutable
// after Build and safe for unlimited concurrent use.
type Engine struct {
	conv     *keys.Converter
	searcher *lexer.Searcher
	rules    []*rules.Rule
}

// Option configures Build.
type Option func(*buildConfig)

type buildConfig struct {
	stateBudget int
}

// WithStateBudget bounds the number of search states one query may explore,
// overriding the default. A budget of zero or less removes the bound.
func WithStateBudget(n int) Option {
	return func(c *buildConfig) { c.stateBudget = n }
}

// Build constructs an engine from already-loaded rule definitions and a key
// layout. The layout is verified and every rule reference is resolved;
// LayoutError, UnknownReferenceError and CircularReferenceError abort the
// build, since a broken rule set must never silently produce wrong matches.
func Build(defs map[string]RuleDefinition, layout KeyLayout, opts ...Option) (*Engine, error) {
	cfg := buildConfig{stateBudget: lexer.DefaultStateBudget}
	for _, opt := range opts {
		opt(&cfg)
	}

	l := &keys.Layout{
		Sep:       layout.Sep,
		Split:     layout.Split,
		Left:      layout.Left,
		Center:    layout.Center,
		Right:     layout.Right,
		Unordered: layout.Unordered,
		Aliases:   layout.Aliases,
	}
	if err := l.Verify(); err != nil {
		return nil, err
	}
	conv := keys.NewConverter(l)

	raw := make(map[string]rules.RawRule, len(defs))
	for id, d := range defs {
		raw[id] = rules.RawRule{Keys: d.Keys, Pattern: d.Pattern, Flags: d.Flags, Info: d.Info}
	}
	resolved, err := rules.NewParser(raw, conv).ResolveAll()
	if err != nil {
		return nil, err
	}

	sep := l.Sep[0]
	index := lexer.NewRuleIndex(sep, l.Unordered)
	for _, r := range resolved {
		index.Add(r)
	}

	searchOpts := []lexer.SearcherOption{lexer.WithStateBudget(cfg.stateBudget)}
	if m := specialMatcher(resolved, l, sep); m != nil {
		searchOpts = append(searchOpts, lexer.WithSpecialMatcher(m))
	}
	return &Engine{
		conv:     conv,
		searcher: lexer.NewSearcher(index, sep, searchOpts...),
		rules:    resolved,
	}, nil
}

// specialMatcher collects the heuristic rules for the first unordered key.
// They are registered under identifiers of the form "*:AB". Nil when the
// rule set defines none.
func specialMatcher(resolved []*rules.Rule, l *keys.Layout, sep byte) *lexer.SpecialMatcher {
	if l.Unordered == "" {
		return nil
	}
	prefix := l.Unordered[:1] + ":"
	var m *lexer.SpecialMatcher
	for _, r := range resolved {
		if !strings.HasPrefix(r.ID, prefix) {
			continue
		}
		if m == nil {
			m = lexer.NewSpecialMatcher(sep, l.Unordered[0])
		}
		m.Add(strings.TrimPrefix(r.ID, prefix), r)
	}
	return m
}

// QueryOption configures a single query.
type QueryOption func(*queryConfig)

type queryConfig struct {
	strict bool
}

// Strict makes a query accept only complete explanations. If none exists the
// query returns a zero-rule result with every key unmatched, rather than a
// partial explanation.
func Strict() QueryOption {
	return func(c *queryConfig) { c.strict = true }
}

// Query explains how keys produce letters and returns the highest ranked
// explanation. It never fails: unrecognized key characters are dropped
// during normalization, and input that matches nothing yields a zero-rule
// result with all keys unmatched.
func (e *Engine) Query(keyString, letters string, opts ...QueryOption) Result {
	var cfg queryConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	skeys := e.conv.ToInternal(keyString)
	results := e.searcher.Search(skeys, letters)
	if cfg.strict {
		complete := results[:0:0]
		for _, r := range results {
			if r.Complete() {
				complete = append(complete, r)
			}
		}
		if len(complete) == 0 {
			return Result{UnmatchedKeys: e.conv.ToExternal(skeys)}
		}
		results = complete
	}
	return e.publicResult(results[lexer.Best(results)])
}

// BestOf reports which of several alternative key spellings best explains
// the same letters, by the same ranking Query uses. It fails fast with
// ErrNoCandidates when the candidate list is empty.
func (e *Engine) BestOf(keyCandidates []string, letters string) (int, error) {
	if len(keyCandidates) == 0 {
		return 0, ErrNoCandidates
	}
	best := make([]lexer.Result, len(keyCandidates))
	for i, k := range keyCandidates {
		results := e.searcher.Search(e.conv.ToInternal(k), letters)
		r := results[lexer.Best(results)]
		// Clamp leftover keys to one so a long spelling that matched most
		// of its keys is not ranked below a short one that matched none.
		if len(r.KeysLeft) > 1 {
			r.KeysLeft = r.KeysLeft[:1]
		}
		best[i] = r
	}
	return lexer.Best(best), nil
}

// Normalize returns the canonical public notation for a key string,
// dropping unrecognized characters and expanding aliases.
func (e *Engine) Normalize(keyString string) string {
	return e.conv.ToExternal(e.conv.ToInternal(keyString))
}

// publicResult converts a search result to public notation.
func (e *Engine) publicResult(r lexer.Result) Result {
	out := Result{UnmatchedKeys: e.conv.ToExternal(r.KeysLeft)}
	if len(r.Matches) == 0 {
		return out
	}
	out.Matches = make([]Match, len(r.Matches))
	for i, m := range r.Matches {
		out.Matches[i] = Match{
			RuleID:  m.Rule.ID,
			Keys:    e.conv.ToExternal(m.Rule.Keys),
			Letters: m.Rule.Letters,
			Start:   m.Start,
			Length:  m.Length,
		}
	}
	return out
}
