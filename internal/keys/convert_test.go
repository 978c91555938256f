package keys

import "testing"

// testLayout returns the standard English steno layout used across tests.
func testLayout() *Layout {
	return &Layout{
		Sep:       "/",
		Split:     "-",
		Left:      "#STKPWHR",
		Center:    "AO*EU",
		Right:     "FRPBLGTSDZ",
		Unordered: "*",
		Aliases: map[string]string{
			"0": "#O", "1": "#S", "2": "#T", "3": "#P", "4": "#H",
			"5": "#A", "6": "#F", "7": "#P", "8": "#L", "9": "#T",
		},
	}
}

func testConverter(t *testing.T) *Converter {
	t.Helper()
	layout := testLayout()
	if err := layout.Verify(); err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	return NewConverter(layout)
}

func TestToInternal(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"S", "S"},
		{"TH", "TH"},
		{"-F", "f"},
		{"AFT", "Aft"},
		{"STROEBG", "STROEbg"},
		{"KPA*", "KPA*"},
		{"S-G", "Sg"},
		{"THAEU/PWOEUL", "THAEU/PWOEUl"},
		// A hyphen with no right side simply disappears.
		{"S-", "S"},
		// Strokes convert independently.
		{"-F/-F", "f/f"},
	}

	conv := testConverter(t)
	for _, tt := range tests {
		if got := conv.ToInternal(tt.in); got != tt.want {
			t.Errorf("ToInternal(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToInternalDropsGarbage(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"S!X@", "S"},
		{"  TK  ", "TK"},
		{"??", ""},
		{"", ""},
	}

	conv := testConverter(t)
	for _, tt := range tests {
		if got := conv.ToInternal(tt.in); got != tt.want {
			t.Errorf("ToInternal(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToInternalCanonicalOrder(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		// Keys out of steno order are sorted into it.
		{"TS", "ST"},
		{"*KPA", "KPA*"},
		{"EAU", "AEU"},
		// Duplicate keys collapse.
		{"SS", "S"},
		{"STST", "ST"},
	}

	conv := testConverter(t)
	for _, tt := range tests {
		if got := conv.ToInternal(tt.in); got != tt.want {
			t.Errorf("ToInternal(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToInternalNumberAliases(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		// Digits expand to their real keys with the shift key prepended once.
		{"2", "#T"},
		{"25", "#TA"},
		{"0-9", "#Ot"},
		// The shift key is not prepended twice if already present.
		{"#2", "#T"},
	}

	conv := testConverter(t)
	for _, tt := range tests {
		if got := conv.ToInternal(tt.in); got != tt.want {
			t.Errorf("ToInternal(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToExternal(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"S", "S"},
		{"f", "-F"},
		{"Aft", "AFT"},
		{"STROEbg", "STROEBG"},
		{"Sg", "S-G"},
		{"THAEU/PWOEUl", "THAEU/PWOEUL"},
	}

	conv := testConverter(t)
	for _, tt := range tests {
		if got := conv.ToExternal(tt.in); got != tt.want {
			t.Errorf("ToExternal(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToExternalIdempotent(t *testing.T) {
	conv := testConverter(t)
	for _, s := range []string{"S", "-F", "AFT", "STROEBG", "S-G", "THAEU/PWOEUL", "KPA*"} {
		if got := conv.ToExternal(s); got != s {
			t.Errorf("ToExternal(%q) = %q, want unchanged", s, got)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	conv := testConverter(t)
	for _, s := range []string{"S", "-F", "AFT", "STROEBG", "S-G", "THAEU/PWOEUL", "KPA*", "TH"} {
		internal := conv.ToInternal(s)
		if got := conv.ToExternal(internal); got != s {
			t.Errorf("ToExternal(ToInternal(%q)) = %q, want %q", s, got, s)
		}
	}
}

func TestLayoutVerify(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Layout)
		wantErr bool
	}{
		{"valid", func(*Layout) {}, false},
		{"empty separator", func(l *Layout) { l.Sep = "" }, true},
		{"long split", func(l *Layout) { l.Split = "--" }, true},
		{"center overlaps left", func(l *Layout) { l.Center = "SA" }, true},
		{"left collides with right after casing", func(l *Layout) { l.Left = "#STKPWHRz" }, true},
		{"separator is a key", func(l *Layout) { l.Sep = "S" }, true},
		{"unordered key not in layout", func(l *Layout) { l.Unordered = "!" }, true},
		{"alias shadows a key", func(l *Layout) { l.Aliases = map[string]string{"S": "#T"} }, true},
		{"alias expansion invalid", func(l *Layout) { l.Aliases = map[string]string{"1": "#!"} }, true},
		{"duplicate key", func(l *Layout) { l.Left = "#STKPWHRR" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := testLayout()
			tt.mutate(layout)
			err := layout.Verify()
			if (err != nil) != tt.wantErr {
				t.Errorf("Verify() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
