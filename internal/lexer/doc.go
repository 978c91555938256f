// Package lexer implements the trial-and-error search that matches steno
// keys to the letters they produce.
//
// A RuleIndex holds every matchable rule in three tiers: an exact-stroke map,
// an exact-word map, and a prefix tree keyed over the ordered portion of each
// rule's s-keys. A Searcher drives a worklist over the index, trying every
// candidate rule against the remaining keys and letters until all branches
// terminate, then the ranking in this package picks the explanation most
// likely to be correct.
//
// Everything here operates on s-keys and is pure: the index and its rules are
// built once and read-only afterwards, so any number of searches may run
// concurrently over the same index.
package lexer
