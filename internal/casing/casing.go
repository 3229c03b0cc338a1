// Package casing converts identifiers between the naming conventions used by
// source components and the host.
package casing

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Words splits s into words at non-alphanumeric separators and at case
// boundaries ("fooBar", "HTMLParser" -> "HTML", "Parser").
func Words(s string) []string {
	var words []string
	var cur []rune
	runes := []rune(s)

	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if unicode.IsUpper(r) && len(cur) > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}

// LowerCamel converts s to lowerCamelCase ("max-length" -> "maxLength").
func LowerCamel(s string) string {
	// Casers carry state, so each call gets its own.
	lower, title := cases.Lower(language.Und), cases.Title(language.Und)
	words := Words(s)
	var b strings.Builder
	for i, w := range words {
		if i == 0 {
			b.WriteString(lower.String(w))
			continue
		}
		b.WriteString(title.String(w))
	}
	return b.String()
}

// EventProp returns the handler prop name for an emitted event.
// Colons are treated as dashes: "update:value" -> "onUpdateValue".
func EventProp(event string) string {
	return LowerCamel("on-" + strings.ReplaceAll(event, ":", "-"))
}

// Kebab converts s to kebab-case ("backgroundColor" -> "background-color").
func Kebab(s string) string {
	lower := cases.Lower(language.Und)
	words := Words(s)
	for i, w := range words {
		words[i] = lower.String(w)
	}
	return strings.Join(words, "-")
}
