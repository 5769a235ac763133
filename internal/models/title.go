package models

import (
	"regexp"
	"strings"
	"unicode"
)

// Word boundaries for camel-cased handler names, applied in order:
// lowercase-to-uppercase-run, lowercase/digit-to-uppercase, and
// letter-to-digit.
var camelBoundaries = []*regexp.Regexp{
	regexp.MustCompile(`(.)([A-Z][a-z]+)`),
	regexp.MustCompile(`([a-z0-9])([A-Z])`),
	regexp.MustCompile(`([a-zA-Z])([0-9])`),
}

// deriveTitle turns a handler identifier into a label: underscores (or
// camel-case boundaries) segment words, the first word is capitalized
// and the rest lowered, except that all-uppercase words such as
// acronyms are kept as written.
func deriveTitle(handlerName string) string {
	title := strings.Trim(handlerName, "_")

	if !strings.Contains(title, "_") {
		for _, boundary := range camelBoundaries {
			title = boundary.ReplaceAllString(title, "${1}_${2}")
		}
	}

	words := strings.Split(title, "_")
	out := make([]string, len(words))
	for i, word := range words {
		if i == 0 {
			out[i] = capitalizeWord(word)
			continue
		}
		out[i] = lowerWord(word)
	}
	return strings.Join(out, " ")
}

// lowerWord lowers a word unless it is entirely uppercase.
func lowerWord(word string) string {
	if isUpperWord(word) {
		return word
	}
	return strings.ToLower(word)
}

// capitalizeWord upcases the first letter and leaves the rest alone.
func capitalizeWord(word string) string {
	if word == "" {
		return word
	}
	runes := []rune(word)
	return string(unicode.ToUpper(runes[0])) + string(runes[1:])
}

// isUpperWord reports whether the word has at least one cased character
// and no lowercase ones.
func isUpperWord(word string) bool {
	hasCased := false
	for _, r := range word {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasCased = true
		}
	}
	return hasCased
}
