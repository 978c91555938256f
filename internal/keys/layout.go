package keys

import "strings"

// Layout describes every character class a steno key string may contain.
// All key characters are single-byte ASCII; the two formats share the left
// and center characters, while right-side keys are uppercase in RTFCRE and
// lowercase in s-keys.
type Layout struct {
	// Sep is the stroke delimiter. It is the same in either format.
	Sep string

	// Split is the RTFCRE board split delimiter between the left/center
	// section and the right section. It never appears in s-keys.
	Split string

	// Left holds the left-side keys in steno order.
	Left string

	// Center holds the center keys in steno order. Center keys may delimit
	// the board sides in RTFCRE, making the split delimiter optional.
	Center string

	// Right holds the right-side keys in steno order, in RTFCRE (uppercase)
	// form.
	Right string

	// Unordered holds the keys exempt from steno-order constraints during
	// matching, such as the asterisk. Every unordered key must also appear
	// in one of the three key sets.
	Unordered string

	// Aliases maps a single shorthand character to the two-character
	// shift-key/real-key pair that produces it. The canonical example is a
	// digit: "5" expands to the number key plus "P".
	Aliases map[string]string
}

// Verify checks the structural rules a layout must satisfy.
// It returns a *LayoutError describing the first violation found.
func (l *Layout) Verify() error {
	if len(l.Sep) != 1 {
		return &LayoutError{Field: "Sep", Reason: "must be exactly one character"}
	}
	if len(l.Split) != 1 {
		return &LayoutError{Field: "Split", Reason: "must be exactly one character"}
	}
	if l.Left == "" && l.Center == "" && l.Right == "" {
		return &LayoutError{Field: "Left", Reason: "layout has no keys"}
	}
	left := l.Left
	center := l.Center
	right := l.Right
	rightLower := strings.ToLower(right)

	// The center keys must not share any characters with the sides, and the
	// left and right sides must not collide after casing.
	if overlap(center, left) || overlap(center, right) {
		return &LayoutError{Field: "Center", Reason: "center keys overlap a side"}
	}
	if overlap(left, rightLower) {
		return &LayoutError{Field: "Right", Reason: "right keys collide with left keys after lowercasing"}
	}
	if hasDuplicates(left) || hasDuplicates(center) || hasDuplicates(right) {
		return &LayoutError{Field: "Left", Reason: "key sets may not contain duplicate characters"}
	}

	normal := left + center + right
	for _, set := range []struct{ field, chars string }{
		{"Sep", l.Sep},
		{"Split", l.Split},
	} {
		if strings.ContainsAny(normal, set.chars) {
			return &LayoutError{Field: set.field, Reason: "delimiter is also a key"}
		}
	}

	// Unordered keys must all be real keys.
	for _, c := range l.Unordered {
		if !strings.ContainsRune(normal, c) {
			return &LayoutError{Field: "Unordered", Reason: "unordered key " + string(c) + " is not in the layout"}
		}
	}

	// Each alias must map an otherwise unused character to a shift key and a
	// real key, both valid s-keys.
	skeys := left + center + rightLower
	for alias, pair := range l.Aliases {
		if len(alias) != 1 || len(pair) != 2 {
			return &LayoutError{Field: "Aliases", Reason: "alias " + alias + " must map one character to a two-character expansion"}
		}
		if strings.ContainsAny(skeys, alias) {
			return &LayoutError{Field: "Aliases", Reason: "alias " + alias + " shadows a real key"}
		}
		if !strings.ContainsAny(skeys, pair[:1]) || !strings.ContainsAny(skeys, pair[1:]) {
			return &LayoutError{Field: "Aliases", Reason: "alias " + alias + " expands to characters outside the layout"}
		}
	}
	return nil
}

// overlap reports whether two character sets share any character.
func overlap(a, b string) bool {
	return b != "" && strings.ContainsAny(a, b)
}

// hasDuplicates reports whether a character set lists any character twice.
func hasDuplicates(s string) bool {
	for i := range s {
		if strings.IndexByte(s[i+1:], s[i]) >= 0 {
			return true
		}
	}
	return false
}
