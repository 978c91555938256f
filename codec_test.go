package stenolex

import (
	"reflect"
	"testing"
)

func TestDecodeRuleDefinitions(t *testing.T) {
	data := []byte(`{
		"is":  ["S", "is"],
		"the": ["T", "the", ["WORD"], "a common word"]
	}`)

	defs, err := DecodeRuleDefinitions(data)
	if err != nil {
		t.Fatalf("DecodeRuleDefinitions() error = %v", err)
	}
	want := map[string]RuleDefinition{
		"is":  {Keys: "S", Pattern: "is"},
		"the": {Keys: "T", Pattern: "the", Flags: []string{"WORD"}, Info: "a common word"},
	}
	if !reflect.DeepEqual(defs, want) {
		t.Fatalf("DecodeRuleDefinitions() = %v, want %v", defs, want)
	}

	// The decoded definitions feed straight into Build.
	e, err := Build(defs, englishLayout())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got := e.Query("S", "is"); !got.Complete() || len(got.Matches) != 1 {
		t.Errorf("Query(S, is) = %+v, want one complete match", got)
	}
}

func TestDecodeRuleDefinitionsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `{"is": ["S"`},
		{"not an object", `["S", "is"]`},
		{"entry not array", `{"is": "is"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeRuleDefinitions([]byte(tt.data)); err == nil {
				t.Errorf("DecodeRuleDefinitions(%s) error = nil, want error", tt.data)
			}
		})
	}
}

func TestEncodeRulesRoundTrip(t *testing.T) {
	e := toyEngine(t)

	data, err := e.EncodeRules()
	if err != nil {
		t.Fatalf("EncodeRules() error = %v", err)
	}
	defs, err := DecodeRuleDefinitions(data)
	if err != nil {
		t.Fatalf("DecodeRuleDefinitions() error = %v", err)
	}
	if want := toyDefs(); !reflect.DeepEqual(defs, want) {
		t.Fatalf("round trip = %v, want %v", defs, want)
	}

	// A rebuilt engine answers queries identically.
	rebuilt, err := Build(defs, englishLayout())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got, want := rebuilt.Query("ST", "is the"), e.Query("ST", "is the"); !reflect.DeepEqual(got, want) {
		t.Errorf("rebuilt Query = %+v, want %+v", got, want)
	}
}
