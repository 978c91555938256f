package keys

import (
	"bytes"
	"strings"
)

// Converter transforms steno key strings between RTFCRE and s-keys form.
// It is built once from a verified Layout and is safe for concurrent use.
type Converter struct {
	sep    byte
	split  byte
	center string // center keys, shared by both formats
	valid  string // every character allowed inside an RTFCRE stroke
	rlower string // right-side keys in s-keys (lowercase) form
	order  string // every s-key in steno order; index gives the ordinal

	// aliases maps a shorthand character to its shift-key/real-key pair.
	aliases map[byte]string
}

// NewConverter builds a Converter from a layout.
// The layout must have passed Verify.
func NewConverter(l *Layout) *Converter {
	aliases := make(map[byte]string, len(l.Aliases))
	for alias, pair := range l.Aliases {
		aliases[alias[0]] = pair
	}
	rlower := strings.ToLower(l.Right)
	return &Converter{
		sep:     l.Sep[0],
		split:   l.Split[0],
		center:  l.Center,
		valid:   l.Left + l.Center + l.Right + l.Split,
		rlower:  rlower,
		order:   l.Left + l.Center + rlower,
		aliases: aliases,
	}
}

// ToInternal transforms an RTFCRE steno key string to s-keys.
//
// Each stroke is cleansed first: alias characters are expanded to their real
// keys (with the shift key prepended once if it is not already present) and
// characters outside the layout are dropped. Input close to the user cannot
// be trusted, so this is deliberately lossy rather than an error. The
// resulting s-keys are deduplicated and sorted into steno order, so the
// internal form is canonical even when the input was not.
func (c *Converter) ToInternal(s string) string {
	return c.mapStrokes(s, c.strokeToInternal)
}

// ToExternal transforms an s-keys string back to RTFCRE.
// It is idempotent: applying it to an RTFCRE string returns it unchanged.
func (c *Converter) ToExternal(s string) string {
	return c.mapStrokes(s, c.strokeToExternal)
}

// mapStrokes applies a per-stroke conversion to every stroke in a key string
// and rejoins the results on the stroke separator.
func (c *Converter) mapStrokes(s string, fn func(string) string) string {
	sep := string(c.sep)
	if !strings.Contains(s, sep) {
		return fn(s)
	}
	strokes := strings.Split(s, sep)
	for i, stroke := range strokes {
		strokes[i] = fn(stroke)
	}
	return strings.Join(strokes, sep)
}

func (c *Converter) strokeToInternal(s string) string {
	return c.sortStroke(c.convertCase(c.cleanse(s)))
}

// cleanse removes characters that are invalid in an RTFCRE stroke and
// expands alias characters into their real keys. Shift keys required by the
// expansions are prepended, each at most once.
func (c *Converter) cleanse(s string) string {
	b := make([]byte, 0, len(s))
	var shifts []byte
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if pair, ok := c.aliases[ch]; ok {
			if bytes.IndexByte(shifts, pair[0]) < 0 {
				shifts = append(shifts, pair[0])
			}
			b = append(b, pair[1])
			continue
		}
		if strings.IndexByte(c.valid, ch) >= 0 {
			b = append(b, ch)
		}
	}
	// Prepend missing shift keys, keeping their first-seen order.
	for i := len(shifts) - 1; i >= 0; i-- {
		if bytes.IndexByte(b, shifts[i]) < 0 {
			b = append([]byte{shifts[i]}, b...)
		}
	}
	return string(b)
}

// convertCase turns a cleansed RTFCRE stroke into case-distinct s-keys.
// The left/right boundary is the split delimiter if present, otherwise the
// last center key. Everything right of the boundary is lowercased and the
// split delimiter itself is removed.
func (c *Converter) convertCase(s string) string {
	if i := strings.LastIndexByte(s, c.split); i >= 0 {
		return s[:i] + strings.ToLower(s[i+1:])
	}
	// Allowable key combinations are L, LC, LCR and CR, so the last center
	// key in the stroke (if any) marks the boundary.
	for i := len(s) - 1; i >= 0; i-- {
		if strings.IndexByte(c.center, s[i]) >= 0 {
			return s[:i+1] + strings.ToLower(s[i+1:])
		}
	}
	// No center keys narrows it to left side only. Nothing to do.
	return s
}

// sortStroke sorts a converted stroke into steno order and drops duplicate
// keys, making the s-keys form canonical. Insertion sort is stable and the
// strokes are tiny.
func (c *Converter) sortStroke(s string) string {
	if len(s) < 2 {
		return s
	}
	b := []byte(s)
	for i := 1; i < len(b); i++ {
		for j := i; j > 0 && c.rank(b[j-1]) > c.rank(b[j]); j-- {
			b[j-1], b[j] = b[j], b[j-1]
		}
	}
	out := b[:1]
	for _, ch := range b[1:] {
		if ch != out[len(out)-1] {
			out = append(out, ch)
		}
	}
	return string(out)
}

// rank returns a key's steno ordinal.
func (c *Converter) rank(ch byte) int {
	return strings.IndexByte(c.order, ch)
}

// strokeToExternal finds the first right-side key in an s-keys stroke. If it
// does not directly follow a center key, the split delimiter is inserted
// before it. The stroke is only uppercased if right-side keys exist.
func (c *Converter) strokeToExternal(s string) string {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(c.rlower, s[i]) >= 0 {
			if i == 0 || strings.IndexByte(c.center, s[i-1]) < 0 {
				s = s[:i] + string(c.split) + s[i:]
			}
			return strings.ToUpper(s)
		}
	}
	return s
}
