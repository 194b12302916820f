package textutil

import (
	"strings"
	"testing"
)

func TestSentenceCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"dotted release words", "Tv Show Name", "Tv Show Name"},
		{"shouting", "MOVIE NAME", "Movie Name"},
		{"minor words", "RETURN OF THE KING AND A HOBBIT", "Return of the King and a Hobbit"},
		{"leading minor word", "The Matrix", "the Matrix"},
		{"year", "movie name (2022)", "Movie Name (2022)"},
		{"numeric", "1923", "1923"},
		{"mixed case", "mIxEd CaSe", "Mixed Case"},
		{"unicode", "élan vital", "Élan Vital"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SentenceCase(tt.input); got != tt.want {
				t.Errorf("SentenceCase(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSentenceCaseIdempotent(t *testing.T) {
	inputs := []string{
		"Tv Show Name",
		"return of the king",
		"WITH LOVE TO RUSSIA",
		"Movie Name (2022)",
		"x-men: first class",
		"ß straße",
		"ǆungla",
	}
	for _, input := range inputs {
		once := SentenceCase(input)
		twice := SentenceCase(once)
		if once != twice {
			t.Errorf("SentenceCase not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}

func TestEqualFoldAny(t *testing.T) {
	if !EqualFoldAny("WebRip", "720p", "webrip") {
		t.Error("expected case-insensitive match")
	}
	if EqualFoldAny("x264", "720p", "webrip") {
		t.Error("unexpected match")
	}
	if EqualFoldAny("anything") {
		t.Error("expected no match without candidates")
	}
}

func TestSentenceCaseTitleCasesFirstRune(t *testing.T) {
	// ß has no single-rune uppercase form; upper-casing it yields "SS".
	got := SentenceCase("ß straße")
	if strings.HasPrefix(got, "SS") {
		t.Fatalf("SentenceCase upper-cased the first rune: %q", got)
	}
	if !strings.HasSuffix(got, " Straße") {
		t.Fatalf("SentenceCase(%q) = %q", "ß straße", got)
	}
	// Digraphs have a distinct title-case form.
	if got := SentenceCase("ǆungla"); got != "ǅungla" {
		t.Fatalf("SentenceCase(%q) = %q, want %q", "ǆungla", got, "ǅungla")
	}
}
