// Package stenolex explains stenographic translations. Given the steno keys
// for a word and the word itself, it searches a set of known sub-word rules
// for the combination that best explains how the keys produce the text, and
// reports which rule applies to which span of the word.
//
// An Engine is built once from a key layout and a rule set and is immutable
// afterwards; queries allocate all of their state locally, so any number of
// them may run concurrently on one Engine.
//
// The engine performs no I/O. Loading rule and layout definitions from disk,
// rendering results, and any user-facing front end belong to the caller.
package stenolex
