package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// minorWords stay lowercase wherever they appear in a sentence-cased title.
var minorWords = []string{"a", "the", "of", "with", "to", "and"}

// EqualFoldAny reports whether value equals any candidate, ignoring case.
func EqualFoldAny(value string, candidates ...string) bool {
	for _, candidate := range candidates {
		if strings.EqualFold(value, candidate) {
			return true
		}
	}
	return false
}

// SentenceCase splits text on single spaces, lowercases minor words, and gives
// every other word a title-cased first letter followed by lowercase letters.
// Applying it to its own output returns the same string.
func SentenceCase(text string) string {
	if text == "" {
		return ""
	}
	title := cases.Title(language.Und)
	lower := cases.Lower(language.Und)

	words := strings.Split(text, " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		if EqualFoldAny(word, minorWords...) {
			words[i] = lower.String(word)
			continue
		}
		first, rest := splitFirstRune(word)
		words[i] = title.String(first) + lower.String(rest)
	}
	return strings.Join(words, " ")
}

func splitFirstRune(word string) (string, string) {
	for i := range word {
		if i > 0 {
			return word[:i], word[i:]
		}
	}
	return word, ""
}
