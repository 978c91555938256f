package rules

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"stenolex/internal/keys"
)

// DecodeRaw decodes a raw rule map from JSON bytes the caller has already
// loaded. Each entry is a compact array of string fields:
//
//	"ruleId": [keys, pattern, flags?, info?]
//
// where flags is an optional array of flag strings. No file handling happens
// here; the engine never touches disk.
func DecodeRaw(data []byte) (map[string]RawRule, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("rules data is not valid JSON")
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, fmt.Errorf("rules data is not a JSON object")
	}

	out := make(map[string]RawRule)
	var err error
	doc.ForEach(func(key, value gjson.Result) bool {
		if !value.IsArray() {
			err = fmt.Errorf("rule %s: entry is not an array", key.String())
			return false
		}
		fields := value.Array()
		if len(fields) < 2 {
			err = fmt.Errorf("rule %s: not enough data fields", key.String())
			return false
		}
		if len(fields) > 4 {
			err = fmt.Errorf("rule %s: too many data fields", key.String())
			return false
		}
		raw := RawRule{
			Keys:    fields[0].String(),
			Pattern: fields[1].String(),
		}
		if len(fields) > 2 {
			for _, f := range fields[2].Array() {
				raw.Flags = append(raw.Flags, f.String())
			}
		}
		if len(fields) > 3 {
			raw.Info = fields[3].String()
		}
		out[key.String()] = raw
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// EncodeRaw encodes resolved rules back into the compact raw JSON form
// accepted by DecodeRaw, reconstructing each pattern with Render and each
// key string with the converter. The result is suitable for an external
// persistence layer to store.
func EncodeRaw(rules []*Rule, conv *keys.Converter) ([]byte, error) {
	out := []byte("{}")
	var err error
	for _, r := range rules {
		fields := []interface{}{conv.ToExternal(r.Keys), Render(r)}
		if flag := r.Category.String(); flag != "" {
			fields = append(fields, []string{flag})
		} else if r.Info != "" {
			fields = append(fields, []string{})
		}
		if r.Info != "" {
			fields = append(fields, r.Info)
		}
		out, err = sjson.SetBytes(out, escapePath(r.ID), fields)
		if err != nil {
			return nil, fmt.Errorf("encoding rule %s: %w", r.ID, err)
		}
	}
	return out, nil
}

// escapePath escapes sjson path syntax characters in a rule identifier so it
// is treated as a single literal object key.
func escapePath(id string) string {
	var b strings.Builder
	for _, c := range id {
		switch c {
		case '.', '|', '#', '@', '*', '?', ':', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}
	return b.String()
}
