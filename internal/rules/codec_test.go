package rules

import (
	"reflect"
	"testing"
)

func TestDecodeRaw(t *testing.T) {
	data := []byte(`{
		"is":  ["S", "is"],
		"the": ["T", "the", ["WORD"]],
		".s":  ["-S", "s", ["REF"], "plural suffix"]
	}`)

	got, err := DecodeRaw(data)
	if err != nil {
		t.Fatalf("DecodeRaw() error = %v", err)
	}
	want := map[string]RawRule{
		"is":  {Keys: "S", Pattern: "is"},
		"the": {Keys: "T", Pattern: "the", Flags: []string{"WORD"}},
		".s":  {Keys: "-S", Pattern: "s", Flags: []string{"REF"}, Info: "plural suffix"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DecodeRaw() = %v, want %v", got, want)
	}
}

func TestDecodeRawErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `{"is": ["S", "is"`},
		{"not an object", `[["S", "is"]]`},
		{"entry not array", `{"is": "is"}`},
		{"too few fields", `{"is": ["S"]}`},
		{"too many fields", `{"is": ["S", "is", [], "x", "y"]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeRaw([]byte(tt.data)); err == nil {
				t.Errorf("DecodeRaw(%s) error = nil, want error", tt.data)
			}
		})
	}
}

func TestEncodeRawRoundTrip(t *testing.T) {
	raw := map[string]RawRule{
		".d":  {Keys: "TK-", Pattern: "d", Flags: []string{"REF"}},
		".s":  {Keys: "-S", Pattern: "s", Flags: []string{"REF"}},
		"des": {Keys: "TKES", Pattern: "(.d)e(.s)", Info: "a common chunk"},
		"the": {Keys: "T", Pattern: "the", Flags: []string{"WORD"}},
	}
	conv := testConverter(t)
	parser := NewParser(raw, conv)
	resolved, err := parser.ResolveAll()
	if err != nil {
		t.Fatalf("ResolveAll() error = %v", err)
	}

	data, err := EncodeRaw(resolved, conv)
	if err != nil {
		t.Fatalf("EncodeRaw() error = %v", err)
	}
	got, err := DecodeRaw(data)
	if err != nil {
		t.Fatalf("DecodeRaw() error = %v", err)
	}

	// Keys come back in canonical RTFCRE form, so the hyphen-suffixed
	// left-bank originals lose their trailing hyphen.
	want := map[string]RawRule{
		".d":  {Keys: "TK", Pattern: "d", Flags: []string{"REF"}},
		".s":  {Keys: "-S", Pattern: "s", Flags: []string{"REF"}},
		"des": {Keys: "TKES", Pattern: "(.d)e(.s)", Info: "a common chunk"},
		"the": {Keys: "T", Pattern: "the", Flags: []string{"WORD"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip = %v, want %v", got, want)
	}
}

func TestEncodeRawEscapesIdentifiers(t *testing.T) {
	raw := map[string]RawRule{
		"w.|x": {Keys: "W", Pattern: "w"},
	}
	conv := testConverter(t)
	parser := NewParser(raw, conv)
	resolved, err := parser.ResolveAll()
	if err != nil {
		t.Fatalf("ResolveAll() error = %v", err)
	}

	data, err := EncodeRaw(resolved, conv)
	if err != nil {
		t.Fatalf("EncodeRaw() error = %v", err)
	}
	got, err := DecodeRaw(data)
	if err != nil {
		t.Fatalf("DecodeRaw() error = %v", err)
	}
	if _, ok := got["w.|x"]; !ok {
		t.Errorf("round trip lost the dotted identifier: %v", got)
	}
}
