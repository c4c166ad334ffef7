package casing

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Casers carry state and must not be shared between goroutines, so each
// conversion builds its own.
func lower(s string) string { return cases.Lower(language.Und).String(s) }
func upper(s string) string { return cases.Upper(language.Und).String(s) }
func title(s string) string { return cases.Title(language.Und).String(s) }

// Words splits an identifier or file stem into its words. Separators
// (hyphen, underscore, dot, space) and case boundaries both split:
//
//	Words("orderCard")      // ["order", "Card"]
//	Words("HTTPServer")     // ["HTTP", "Server"]
//	Words("order_card-v2")  // ["order", "card", "v2"]
func Words(s string) []string {
	runes := []rune(normalize(s))
	var words []string
	var cur []rune

	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	for i, r := range runes {
		if r == '-' || r == '_' || r == '.' || unicode.IsSpace(r) {
			flush()
			continue
		}
		if len(cur) > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			// fooBar -> foo|Bar, HTTPServer -> HTTP|Server
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}

// ToKebab converts s to kebab-case.
func ToKebab(s string) string {
	words := Words(s)
	for i, w := range words {
		words[i] = lower(w)
	}
	return strings.Join(words, "-")
}

// ToPascal converts s to PascalCase. All-caps words are title-cased, so
// "HTTP_SERVER" becomes "HttpServer".
func ToPascal(s string) string {
	var sb strings.Builder
	for _, w := range Words(s) {
		sb.WriteString(title(w))
	}
	return sb.String()
}

// ToCamel converts s to camelCase.
func ToCamel(s string) string {
	words := Words(s)
	if len(words) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(lower(words[0]))
	for _, w := range words[1:] {
		sb.WriteString(title(w))
	}
	return sb.String()
}

// ToScreamingSnake converts s to SCREAMING_SNAKE_CASE.
func ToScreamingSnake(s string) string {
	words := Words(s)
	for i, w := range words {
		words[i] = upper(w)
	}
	return strings.Join(words, "_")
}

// Convert converts s to the given style. Unknown styles return s unchanged.
func Convert(s string, style Style) string {
	switch style {
	case Kebab:
		return ToKebab(s)
	case Pascal:
		return ToPascal(s)
	case Camel:
		return ToCamel(s)
	case ScreamingSnake:
		return ToScreamingSnake(s)
	default:
		return s
	}
}
