// Package naming derives identifiers from app slugs. Words are split on any
// rune that is not a letter or digit, on lower to upper transitions, on the
// last capital of an acronym ("HTTPServer") and between letters and digits.
package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Words splits input into its case-insensitive word segments.
func Words(input string) []string {
	var (
		words   []string
		current []rune
	)
	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}

	runes := []rune(input)
	for i, r := range runes {
		if !isAlnum(r) {
			flush()
			continue
		}
		if len(current) > 0 && isBoundary(runes, i) {
			flush()
		}
		current = append(current, r)
	}
	flush()
	return words
}

// UpperCase joins the upper-cased words with underscores: "my-app" becomes
// "MY_APP".
func UpperCase(input string) string {
	words := Words(input)
	for i, word := range words {
		words[i] = strings.ToUpper(word)
	}
	return strings.Join(words, "_")
}

// TitleCase capitalises every word and concatenates them: "my-app" becomes
// "MyApp".
func TitleCase(input string) string {
	words := Words(input)
	var out strings.Builder
	for _, word := range words {
		out.WriteString(titleWord(word))
	}
	return out.String()
}

// Label produces a human-friendly label ("my-app" becomes "My App").
func Label(input string) string {
	words := Words(input)
	for i, word := range words {
		words[i] = titleWord(word)
	}
	return strings.Join(words, " ")
}

// Compact lower-cases and concatenates the words, the shape Go package names
// take: "my-app" becomes "myapp".
func Compact(input string) string {
	return strings.ToLower(strings.Join(Words(input), ""))
}

// IsIdentifier reports whether s is usable as an identifier in both Go and
// TypeScript sources.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

func titleWord(word string) string {
	// Casers are stateful, so each call gets its own.
	return cases.Title(language.Und).String(word)
}

func isBoundary(runes []rune, index int) bool {
	prev, r := runes[index-1], runes[index]
	switch {
	case unicode.IsLower(prev) && unicode.IsUpper(r):
		return true
	case unicode.IsLetter(prev) && unicode.IsDigit(r):
		return true
	case unicode.IsDigit(prev) && unicode.IsLetter(r):
		return true
	case unicode.IsUpper(prev) && unicode.IsUpper(r):
		next := index + 1
		return next < len(runes) && unicode.IsLower(runes[next])
	}
	return false
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
