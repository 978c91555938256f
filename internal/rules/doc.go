// Package rules defines the steno rule model and the resolver that turns raw
// rule definitions into immutable Rule values.
//
// A raw rule maps an RTFCRE key string to a text pattern. The pattern may
// contain references to other rules in two bracketed forms:
//
//   - (childId) substitutes the child rule's own letters:
//     "(.d)e(.s)" becomes "des" with '.d' at 0 and '.s' at 2.
//   - [literal|childId] substitutes the given literal text while still
//     attributing the span to the child: "(q.)[u|w.]" becomes "qu" with
//     'q.' at 0 and 'w.' at 1.
//
// The Parser resolves references recursively with memoization and an
// explicit in-progress set, so an unknown reference or a reference cycle is
// reported as a deterministic error instead of a crash. Resolution is the
// only time rules are mutated; the finished Rule values are immutable and
// safe to share between any number of concurrent queries.
//
// Render is the inverse of resolution: it reconstructs a bracketed pattern
// from a rule's letters and substitution map, which together with EncodeRaw
// lets an external persistence layer round-trip rule sets it loaded through
// DecodeRaw.
package rules
