// Package keys provides the steno key layout and conversion between the two
// string formats used for steno keys:
//
//   - RTFCRE: the public, human-readable notation. Keys are all uppercase and
//     a hyphen disambiguates the left and right sides of the board. Center
//     keys may also delimit the sides, in which case the hyphen is omitted.
//     Most steno dictionaries (e.g. for use in Plover) are in this format.
//   - s-keys: the internal notation used for rule matching. Every key is a
//     single unique character; right-side keys are lowercased so there is no
//     ambiguity over sides even without a hyphen.
//
// # Layouts
//
// A Layout declares the separator and split delimiters, the left, center,
// right and unordered key sets, and an alias table mapping shorthand
// characters (such as digits) to a shift-key/real-key pair. Layout.Verify
// checks the structural rules a layout must satisfy before a Converter may
// be built from it.
//
// # Conversion
//
// Converter.ToInternal and Converter.ToExternal transform whole key strings
// stroke by stroke. ToInternal is deliberately lossy: characters that are not
// part of the layout are dropped rather than rejected, since lexer input may
// come straight from a user. ToExternal is idempotent.
package keys
