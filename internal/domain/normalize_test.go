package domain

import "testing"

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trim spaces", input: "  Chile  ", want: "Chile"},
		{name: "case preserved", input: "South America", want: "South America"},
		{name: "compress multiple spaces", input: "South    America", want: "South America"},
		{name: "tabs and newlines", input: "\tSouth\t\n America\n", want: "South America"},
		{name: "diacritics preserved", input: "Perú", want: "Perú"},
		{name: "hyphens preserved", input: "Guinea-Bissau", want: "Guinea-Bissau"},
		{name: "apostrophes preserved", input: "Côte d'Ivoire", want: "Côte d'Ivoire"},
		{name: "empty string", input: "", want: ""},
		{name: "only whitespace", input: " \t\n ", want: ""},
		{name: "non-breaking space", input: "Costa\u00a0Rica", want: "Costa Rica"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"", " ", "Chile", "  south   america ", "\tA\n\nB\tC ", "Perú  ", "a  b", "x  y  z",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}

func TestNormalizeKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercase", input: "CHILE", want: "chile"},
		{name: "trim and lowercase", input: " CHILE ", want: "chile"},
		{name: "collapse and lowercase", input: "  south   AMERICA ", want: "south america"},
		{name: "unicode lowercase", input: "PERÚ", want: "perú"},
		{name: "empty", input: "   ", want: ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeKey(tt.input); got != tt.want {
				t.Errorf("NormalizeKey(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
