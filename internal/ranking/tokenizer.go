package ranking

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize lowercases text and returns every maximal run of two or more word
// characters (letters, digits, underscore). Any other rune is a separator,
// so "a" or "C" never become tokens.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	raw := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isWordRune(r)
	})

	var tokens []string
	for _, t := range raw {
		if utf8.RuneCountInString(t) > 1 {
			tokens = append(tokens, t)
		}
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}

// TermFrequency computes count(t)/len(tokens) for every distinct token.
func TermFrequency(tokens []string) map[string]float64 {
	tf := make(map[string]float64, len(tokens))
	if len(tokens) == 0 {
		return tf
	}
	for _, t := range tokens {
		tf[t]++
	}
	n := float64(len(tokens))
	for k := range tf {
		tf[k] /= n
	}
	return tf
}
