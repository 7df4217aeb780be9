package frlex

import (
	"reflect"
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
		desc     string
	}{
		{"Je mange une pomme.", []string{"Je", "mange", "une", "pomme", "."}, "Simple sentence"},
		{"L'homme qu'il a vu.", []string{"L'", "homme", "qu'", "il", "a", "vu", "."}, "Elisions"},
		{"Lorsqu'elle arrive, j'écoute.", []string{"Lorsqu'", "elle", "arrive", ",", "j'", "écoute", "."}, "Long elision"},
		{"l’école", []string{"l'", "école"}, "Typographic apostrophe"},
		{"Mange-t-il du pain ?", []string{"Mange", "-t-il", "du", "pain", "?"}, "Inverted subject"},
		{"«Bonjour», dit-elle.", []string{"«", "Bonjour", "»", ",", "dit", "-elle", "."}, "Guillemets and clitic"},
		{"Quoi ?!", []string{"Quoi", "?", "!"}, "Stacked punctuation"},
		{"Il y a 3,5 km.", []string{"Il", "y", "a", "3,5", "km", "."}, "Decimal comma"},
		{"M. Dupont arrive.", []string{"M.", "Dupont", "arrive", "."}, "Abbreviation"},
		{"Attendez...", []string{"Attendez", "..."}, "Ellipsis"},
		{"(voir p. 12)", []string{"(", "voir", "p.", "12", ")"}, "Parentheses"},
		{"peut-être", []string{"peut-être"}, "Hyphenated word"},
		{"", nil, "Empty"},
		{"   \n\t ", nil, "Whitespace only"},
	}

	tokenizer := NewIterTokenizer()

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := tokenizer.Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Tokenize(%q)\nExpected: %q\nGot: %q", tt.input, tt.expected, got)
			}
		})
	}
}

func TestTokenizeOptions(t *testing.T) {
	tokenizer := NewIterTokenizer(
		UsingElisions([]string{}),
		UsingIsUnsplittable(func(s string) bool { return strings.HasPrefix(s, "#") }),
	)

	got := tokenizer.Tokenize("l'homme #paris.")
	expected := []string{"l'homme", "#paris."}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected: %q\nGot: %q", expected, got)
	}
}

func TestTokenizeRepeatedWords(t *testing.T) {
	tokenizer := NewIterTokenizer()

	got := tokenizer.Tokenize("oui, oui, oui.")
	expected := []string{"oui", ",", "oui", ",", "oui", "."}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected: %q\nGot: %q", expected, got)
	}
}
