package stenolex

import "stenolex/internal/rules"

// DecodeRuleDefinitions decodes rule definitions from JSON bytes the caller
// has already loaded. Each entry is a compact array of string fields:
//
//	"ruleId": [keys, pattern, flags?, info?]
//
// where flags is an optional array of flag strings. The result feeds
// straight into Build. No file handling happens here; loading the bytes is
// the caller's concern.
func DecodeRuleDefinitions(data []byte) (map[string]RuleDefinition, error) {
	raw, err := rules.DecodeRaw(data)
	if err != nil {
		return nil, err
	}
	defs := make(map[string]RuleDefinition, len(raw))
	for id, r := range raw {
		defs[id] = RuleDefinition{Keys: r.Keys, Pattern: r.Pattern, Flags: r.Flags, Info: r.Info}
	}
	return defs, nil
}

// EncodeRules encodes the engine's resolved rules back into the JSON form
// accepted by DecodeRuleDefinitions, reconstructing each pattern with
// bracketed references in place of the spans its child rules occupy. Key
// strings come back in canonical public notation, so the output is suitable
// for a persistence layer to store.
func (e *Engine) EncodeRules() ([]byte, error) {
	return rules.EncodeRaw(e.rules, e.conv)
}
